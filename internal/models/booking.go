package models

import "time"

// RentalService is an additional service offered with a booking
// (captain, catering, transfer and so on).
type RentalService struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

// Booking is a dated rental of a single yacht, priced from the day count
// plus any selected additional services.
type Booking struct {
	ID                 string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	YachtID            string          `json:"yachtId" gorm:"index;type:varchar(36)"`
	UserID             string          `json:"userId" gorm:"index;type:varchar(36)"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
	Guests             int             `json:"guests"`
	AdditionalServices []RentalService `json:"additionalServices,omitempty" gorm:"serializer:json"`
	SpecialRequests    string          `json:"specialRequests,omitempty"`
	TotalPrice         float64         `json:"totalPrice"`
	Status             Status          `json:"status" gorm:"type:varchar(20)"`
	CancelReason       string          `json:"cancelReason,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// Days is the billable day count for the booking, never less than one.
func (b Booking) Days() int {
	days := int(b.EndDate.Sub(b.StartDate).Hours() / 24)
	if b.EndDate.Sub(b.StartDate)%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

// BookingFilter narrows booking listings. Zero values mean "no constraint".
type BookingFilter struct {
	YachtID string
	UserID  string
	Status  Status
}
