package models

import "time"

// ContactInfo is the checkout contact block attached to an order.
type ContactInfo struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=5"`
}

// Order is an immutable snapshot of a cart taken at checkout. Only the
// status history may grow afterwards; CurrentStatus mirrors its last entry.
type Order struct {
	ID            string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string         `json:"userId" gorm:"index;type:varchar(36)"`
	Items         []CartItem     `json:"items" gorm:"serializer:json"`
	TotalPrice    float64        `json:"totalPrice"`
	CreatedAt     time.Time      `json:"createdAt"`
	StatusHistory []StatusChange `json:"statusHistory" gorm:"serializer:json"`
	CurrentStatus Status         `json:"currentStatus" gorm:"type:varchar(20)"`
	ContactInfo   ContactInfo    `json:"contactInfo" gorm:"serializer:json"`
}
