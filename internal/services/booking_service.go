package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"

	"github.com/google/uuid"
)

// AvailabilityWindowDays is the rolling window the availability endpoint
// reports on.
const AvailabilityWindowDays = 60

// BookingRequest carries the fields a customer submits from the booking form.
type BookingRequest struct {
	YachtID         string    `json:"yachtId" validate:"required"`
	StartDate       time.Time `json:"startDate" validate:"required"`
	EndDate         time.Time `json:"endDate" validate:"required"`
	Guests          int       `json:"guests" validate:"required,min=1"`
	ServiceIDs      []string  `json:"serviceIds"`
	SpecialRequests string    `json:"specialRequests" validate:"omitempty,max=1000"`
}

// BookingService handles business logic for dated yacht rentals.
type BookingService struct {
	bookingRepo repositories.BookingRepository
	yachtRepo   repositories.YachtRepository
	serviceRepo repositories.RentalServiceRepository
	mqClient    EventPublisher
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repositories.BookingRepository,
	yachtRepo repositories.YachtRepository,
	serviceRepo repositories.RentalServiceRepository,
	mqClient EventPublisher,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		yachtRepo:   yachtRepo,
		serviceRepo: serviceRepo,
		mqClient:    mqClient,
	}
}

// CreateBooking validates the request against the yacht and the calendar,
// prices it and stores it as pending. The total is pricePerDay times the
// billable day count (never less than one day) plus the selected services.
func (s *BookingService) CreateBooking(userID string, req BookingRequest) (*models.Booking, error) {
	yacht, err := s.yachtRepo.GetByID(req.YachtID)
	if err != nil {
		return nil, err
	}
	if !yacht.Available {
		return nil, fmt.Errorf("yacht %s is not open for booking: %w", yacht.ID, repositories.ErrConflict)
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("end date must be after start date: %w", repositories.ErrInvalid)
	}
	if req.Guests < 1 || req.Guests > yacht.Capacity {
		return nil, fmt.Errorf("guest count must be between 1 and %d: %w", yacht.Capacity, repositories.ErrInvalid)
	}

	overlapping, err := s.bookingRepo.ListOverlapping(req.YachtID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, fmt.Errorf("yacht %s is already booked in the requested range: %w", req.YachtID, repositories.ErrConflict)
	}

	var services []models.RentalService
	var servicesPrice float64
	for _, serviceID := range req.ServiceIDs {
		service, err := s.serviceRepo.GetByID(serviceID)
		if err != nil {
			return nil, err
		}
		services = append(services, *service)
		servicesPrice += service.Price
	}

	now := time.Now()
	booking := &models.Booking{
		ID:                 uuid.New().String(),
		YachtID:            req.YachtID,
		UserID:             userID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Guests:             req.Guests,
		AdditionalServices: services,
		SpecialRequests:    req.SpecialRequests,
		Status:             models.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	booking.TotalPrice = yacht.PricePerDay*float64(booking.Days()) + servicesPrice

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking in repository: %w", err)
	}

	s.publish("booking.created", map[string]interface{}{
		"bookingID": booking.ID,
		"yachtID":   booking.YachtID,
		"userID":    booking.UserID,
		"total":     booking.TotalPrice,
	})
	return booking, nil
}

// ListBookings retrieves bookings matching the filter.
func (s *BookingService) ListBookings(filter models.BookingFilter) ([]models.Booking, error) {
	return s.bookingRepo.List(filter)
}

// GetBookingByID retrieves a single booking by its ID.
func (s *BookingService) GetBookingByID(id string) (*models.Booking, error) {
	return s.bookingRepo.GetByID(id)
}

// UpdateBookingStatus moves a booking along the shared status lifecycle.
func (s *BookingService) UpdateBookingStatus(id string, status models.Status) (*models.Booking, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown booking status %q: %w", status, repositories.ErrInvalid)
	}

	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !models.ValidTransition(booking.Status, status) {
		return nil, fmt.Errorf("booking %s cannot move from %s to %s: %w",
			id, booking.Status, status, repositories.ErrInvalid)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()
	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to update booking status for booking %s: %w", id, err)
	}

	s.publish("booking.status_changed", map[string]interface{}{
		"bookingID": booking.ID,
		"status":    booking.Status,
	})
	return booking, nil
}

// CancelBooking cancels a booking and records the reason.
func (s *BookingService) CancelBooking(id, reason string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !models.ValidTransition(booking.Status, models.StatusCancelled) {
		return nil, fmt.Errorf("booking %s cannot be cancelled from %s: %w",
			id, booking.Status, repositories.ErrInvalid)
	}

	booking.Status = models.StatusCancelled
	booking.CancelReason = reason
	booking.UpdatedAt = time.Now()
	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}

	s.publish("booking.status_changed", map[string]interface{}{
		"bookingID": booking.ID,
		"status":    booking.Status,
		"reason":    reason,
	})
	return booking, nil
}

// AvailableDates returns the dates within the rolling window, starting at
// from, on which the yacht has no pending or confirmed booking. Dates are
// formatted as YYYY-MM-DD.
func (s *BookingService) AvailableDates(yachtID string, from time.Time) ([]string, error) {
	if _, err := s.yachtRepo.GetByID(yachtID); err != nil {
		return nil, err
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := start.AddDate(0, 0, AvailabilityWindowDays)

	booked, err := s.bookingRepo.ListOverlapping(yachtID, start, end)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, AvailabilityWindowDays)
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		free := true
		for _, b := range booked {
			if !day.Before(b.StartDate) && day.Before(b.EndDate) {
				free = false
				break
			}
		}
		if free {
			available = append(available, day.Format("2006-01-02"))
		}
	}
	return available, nil
}

// ListServices retrieves the additional rental service catalog.
func (s *BookingService) ListServices() ([]models.RentalService, error) {
	return s.serviceRepo.GetAll()
}

// GetServiceByID retrieves a single rental service by its ID.
func (s *BookingService) GetServiceByID(id string) (*models.RentalService, error) {
	return s.serviceRepo.GetByID(id)
}

// CreateService adds a rental service to the catalog.
func (s *BookingService) CreateService(service *models.RentalService) error {
	return s.serviceRepo.Create(service)
}

func (s *BookingService) publish(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event to JSON: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
