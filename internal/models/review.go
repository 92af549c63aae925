package models

import "time"

// Review moderation states.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Review is a customer review of a yacht, visible in the catalog only
// after admin approval.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"index;type:varchar(36)"`
	UserName  string    `json:"userName"`
	YachtID   string    `json:"yachtId" gorm:"index;type:varchar(36)"`
	YachtName string    `json:"yachtName"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Content   string    `json:"content" validate:"required,min=3,max=2000"`
	Status    string    `json:"status" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
