package live

import (
	"testing"
	"time"
)

func recvEvent(t *testing.T, c chan Event) Event {
	t.Helper()
	select {
	case ev := <-c:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	hub.Publish(CollectionProducts)

	ev := recvEvent(t, sub.C)
	if ev.Collection != CollectionProducts {
		t.Errorf("Collection = %q, want %q", ev.Collection, CollectionProducts)
	}
}

func TestHubCollectionFilter(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(CollectionTransactions)
	defer sub.Close()

	hub.Publish(CollectionProducts)
	hub.Publish(CollectionTransactions)

	ev := recvEvent(t, sub.C)
	if ev.Collection != CollectionTransactions {
		t.Errorf("filtered subscriber got %q", ev.Collection)
	}

	select {
	case ev := <-sub.C:
		t.Errorf("unexpected extra event %q", ev.Collection)
	default:
	}
}

func TestHubCloseDetaches(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	if hub.SubscriberCount() != 1 {
		t.Fatalf("SubscriberCount = %d, want 1", hub.SubscriberCount())
	}

	sub.Close()
	if hub.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount after close = %d, want 0", hub.SubscriberCount())
	}

	// Double close must not panic
	sub.Close()
}

func TestHubPublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	// Overfill the buffer; publishes past capacity are dropped, not blocked
	for i := 0; i < subscriptionBuffer*2; i++ {
		hub.Publish(CollectionStockLogs)
	}

	if len(sub.C) != subscriptionBuffer {
		t.Errorf("buffered events = %d, want %d", len(sub.C), subscriptionBuffer)
	}
}

func TestHubMultipleSubscribers(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe(CollectionParties)
	b := hub.Subscribe()
	defer a.Close()
	defer b.Close()

	hub.Publish(CollectionParties)

	if ev := recvEvent(t, a.C); ev.Collection != CollectionParties {
		t.Errorf("subscriber a got %q", ev.Collection)
	}
	if ev := recvEvent(t, b.C); ev.Collection != CollectionParties {
		t.Errorf("subscriber b got %q", ev.Collection)
	}
}
