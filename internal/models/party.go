package models

import "time"

// PartyType distinguishes customers from suppliers
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
)

// Party is a customer or supplier counterparty. Balance is not stored: it is
// derived from the party's transaction due amounts at read time.
type Party struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      PartyType `json:"type"`
	Phone     string    `json:"phone"`
	Balance   float64   `json:"balance"` // Sum of outstanding dues, computed per query
	CreatedAt time.Time `json:"created_at"`
}

type CreatePartyRequest struct {
	Name  string    `json:"name"`
	Type  PartyType `json:"type"`
	Phone string    `json:"phone"`
}

// PartyHistory is the recent-transactions window shown for one party.
type PartyHistory struct {
	Party        *Party        `json:"party"`
	TotalSpent   float64       `json:"total_spent"`
	TotalDue     float64       `json:"total_due"`
	Transactions []Transaction `json:"transactions"`
}
