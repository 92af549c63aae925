package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a customer or administrator account.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string    `json:"name" validate:"required,min=2,max=100"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Phone        string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Role         string    `json:"role" validate:"omitempty,oneof=user admin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserFilter narrows admin user listings.
type UserFilter struct {
	Role     string // "user", "admin" or "" for all
	Search   string // substring match on name or email
	DateFrom time.Time
	DateTo   time.Time
}

// PaginatedUsers is the envelope for paginated admin user listings.
type PaginatedUsers struct {
	Data       []User `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}
