package models

import "time"

// CartItem is one yacht rental selection in a user's cart. The yacht record
// is denormalized so the cart stays readable after catalog edits.
type CartItem struct {
	YachtID   string    `json:"yachtId"`
	Yacht     Yacht     `json:"yacht"`
	StartDate time.Time `json:"startDate"`
	Days      int       `json:"days"`
	Price     float64   `json:"price"` // PricePerDay * Days at selection time
}
