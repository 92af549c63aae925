package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"moreyacht/internal/models"

	"github.com/google/uuid"
)

// MockBookingRepository is an in-memory implementation of BookingRepository.
type MockBookingRepository struct {
	bookings map[string]models.Booking
	mu       sync.RWMutex
}

// NewMockBookingRepository creates a new instance of MockBookingRepository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]models.Booking),
	}
}

// List returns bookings matching every set constraint of the filter.
func (r *MockBookingRepository) List(filter models.BookingFilter) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.YachtID != "" && b.YachtID != filter.YachtID {
			continue
		}
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		matched = append(matched, b)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	return matched, nil
}

// GetByID returns a booking by its ID.
func (r *MockBookingRepository) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with ID %s: %w", id, ErrNotFound)
	}
	return &booking, nil
}

// Create adds a new booking.
func (r *MockBookingRepository) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now
	r.bookings[booking.ID] = *booking
	return nil
}

// Update modifies an existing booking.
func (r *MockBookingRepository) Update(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.bookings[booking.ID]
	if !ok {
		return fmt.Errorf("booking with ID %s: %w", booking.ID, ErrNotFound)
	}
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = *booking
	return nil
}

// ListOverlapping returns pending or confirmed bookings of the yacht whose
// date range intersects [start, end).
func (r *MockBookingRepository) ListOverlapping(yachtID string, start, end time.Time) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if b.YachtID != yachtID {
			continue
		}
		if b.Status != models.StatusPending && b.Status != models.StatusConfirmed {
			continue
		}
		if b.StartDate.Before(end) && b.EndDate.After(start) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}
