package dto

// ReassignDTO reassigns a batch of tickets to one handler.
type ReassignDTO struct {
	TicketIDs []string `json:"ticketIds" binding:"required,min=1"`
	HandlerID uint     `json:"handlerId" binding:"required"`
}

// Reassign outcomes, one per ticket.
const (
	ReassignSuccess       = "success"
	ReassignForbidden     = "forbidden"
	ReassignClosed        = "closed"
	ReassignNonAssignable = "nonassignable"
)

// ReassignResult groups ticket IDs by outcome.
type ReassignResult struct {
	Error     string   `json:"error,omitempty"`
	TicketIDs []string `json:"ticketIds"`
}

type ReassignResponse struct {
	Handler HandlerDTO       `json:"handler"`
	Results []ReassignResult `json:"results"`
}

type HandlerDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type AbandonDTO struct {
	TicketIDs []string `json:"ticketIds" binding:"required,min=1"`
}
