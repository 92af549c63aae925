package models

import "time"

// Status is the lifecycle state shared by orders and bookings.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// allowedTransitions encodes the legal lifecycle:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
// Completed and cancelled are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidTransition reports whether moving from one status to another is legal.
func ValidTransition(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusChange is one entry in an order's append-only status history.
type StatusChange struct {
	Status    Status    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
	Comment   string    `json:"comment,omitempty"`
}
