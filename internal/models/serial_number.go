package models

import "time"

// SerialNumber tags one physical unit of a product. Serials are an auxiliary
// list only: adding or deleting one never touches the product's stock count.
type SerialNumber struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Serial    string    `json:"serial"`
	Status    string    `json:"status"` // available, sold
	AddedAt   time.Time `json:"added_at"`
}

type AddSerialRequest struct {
	ProductID int    `json:"product_id"`
	Serial    string `json:"serial"`
}
