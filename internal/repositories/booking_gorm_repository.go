package repositories

import (
	"fmt"
	"time"

	"moreyacht/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// List retrieves bookings matching every set constraint of the filter.
func (r *GORMBookingRepository) List(filter models.BookingFilter) ([]models.Booking, error) {
	query := r.db.Model(&models.Booking{})
	if filter.YachtID != "" {
		query = query.Where("yacht_id = ?", filter.YachtID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var bookings []models.Booking
	if err := query.Order("created_at").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetByID retrieves a single booking by its ID from the database.
func (r *GORMBookingRepository) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("booking with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking by ID %s: %w", id, err)
	}
	return &booking, nil
}

// Create creates a new booking in the database.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Update updates an existing booking in the database.
func (r *GORMBookingRepository) Update(booking *models.Booking) error {
	res := r.db.Save(booking)
	if res.Error != nil {
		return fmt.Errorf("failed to update booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %s: %w", booking.ID, ErrNotFound)
	}
	return nil
}

// ListOverlapping returns pending or confirmed bookings of the yacht whose
// date range intersects [start, end).
func (r *GORMBookingRepository) ListOverlapping(yachtID string, start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("yacht_id = ?", yachtID).
		Where("status IN ?", []models.Status{models.StatusPending, models.StatusConfirmed}).
		Where("start_date < ? AND end_date > ?", end, start).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping bookings for yacht %s: %w", yachtID, err)
	}
	return bookings, nil
}
