package repositories

import (
	"time"

	"moreyacht/internal/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	List(filter models.BookingFilter) ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	// ListOverlapping returns pending or confirmed bookings of the yacht whose
	// date range intersects [start, end).
	ListOverlapping(yachtID string, start, end time.Time) ([]models.Booking, error)
}
