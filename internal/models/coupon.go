package models

import "time"

type Coupon struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Discount  float64   `json:"discount"` // Percentage
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCouponRequest struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// SMSBroadcast is one bulk promotional message. Delivery is simulated: the
// broadcast is logged with its recipient count and never leaves the system.
type SMSBroadcast struct {
	ID         int       `json:"id"`
	Message    string    `json:"message"`
	Recipients int       `json:"recipients"`
	CreatedAt  time.Time `json:"created_at"`
}
