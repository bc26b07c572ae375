package models

import "time"

// Ticket is a support request. Status is set to Open at creation and never
// transitioned through this API.
type Ticket struct {
	ID        int       `json:"id"`
	TicketID  string    `json:"ticket_id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTicketRequest struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}
