package services_test

import (
	"testing"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
	"moreyacht/internal/services"

	"github.com/stretchr/testify/assert"
)

func newBookingFixture(t *testing.T) (*services.BookingService, *repositories.MockBookingRepository, *recordingPublisher) {
	t.Helper()

	yachtRepo := repositories.NewMockYachtRepository()
	assert.NoError(t, yachtRepo.Create(&models.Yacht{
		ID: "1", Name: "Test Yacht", Type: "Sailing", Capacity: 6,
		PricePerDay: 25000, Available: true, Location: "Sevastopol",
	}))
	assert.NoError(t, yachtRepo.Create(&models.Yacht{
		ID: "2", Name: "Docked Yacht", Type: "Motor", Capacity: 8,
		PricePerDay: 40000, Available: false, Location: "Yalta",
	}))

	serviceRepo := repositories.NewMockRentalServiceRepository()
	assert.NoError(t, serviceRepo.Create(&models.RentalService{ID: "captain", Name: "Captain", Price: 5000}))
	assert.NoError(t, serviceRepo.Create(&models.RentalService{ID: "catering", Name: "Catering", Price: 3000}))

	bookingRepo := repositories.NewMockBookingRepository()
	publisher := &recordingPublisher{}
	return services.NewBookingService(bookingRepo, yachtRepo, serviceRepo, publisher), bookingRepo, publisher
}

func TestBookingService_CreateBooking(t *testing.T) {
	bookingService, _, publisher := newBookingFixture(t)

	booking, err := bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID:    "1",
		StartDate:  time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
		Guests:     4,
		ServiceIDs: []string{"captain", "catering"},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.StatusPending, booking.Status)
	// 3 days at 25000 plus the captain and catering services.
	assert.Equal(t, 83000.0, booking.TotalPrice)
	assert.Len(t, booking.AdditionalServices, 2)
	assert.Equal(t, []string{"booking.created"}, publisher.routingKeys())
}

func TestBookingService_CreateBooking_PartialDayRoundsUp(t *testing.T) {
	bookingService, _, _ := newBookingFixture(t)

	booking, err := bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID:   "1",
		StartDate: time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	assert.NoError(t, err)
	// An eight hour rental still bills a full day.
	assert.Equal(t, 25000.0, booking.TotalPrice)
}

func TestBookingService_CreateBooking_Validation(t *testing.T) {
	bookingService, _, publisher := newBookingFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC)

	// Unknown yacht.
	_, err := bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID: "missing", StartDate: start, EndDate: end, Guests: 2,
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Yacht withdrawn from the charter offering.
	_, err = bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID: "2", StartDate: start, EndDate: end, Guests: 2,
	})
	assert.ErrorIs(t, err, repositories.ErrConflict)

	// End date not after start date.
	_, err = bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID: "1", StartDate: end, EndDate: start, Guests: 2,
	})
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	// Guest count above capacity.
	_, err = bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID: "1", StartDate: start, EndDate: end, Guests: 7,
	})
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	// Unknown additional service.
	_, err = bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID: "1", StartDate: start, EndDate: end, Guests: 2,
		ServiceIDs: []string{"helicopter"},
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.Empty(t, publisher.routingKeys())
}

func TestBookingService_CreateBooking_OverlapConflict(t *testing.T) {
	bookingService, _, _ := newBookingFixture(t)

	_, err := bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID:   "1",
		StartDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	assert.NoError(t, err)

	// Overlapping range on the same yacht.
	_, err = bookingService.CreateBooking("user-2", services.BookingRequest{
		YachtID:   "1",
		StartDate: time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	assert.ErrorIs(t, err, repositories.ErrConflict)

	// Back-to-back is allowed, the end date is exclusive.
	_, err = bookingService.CreateBooking("user-2", services.BookingRequest{
		YachtID:   "1",
		StartDate: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	assert.NoError(t, err)
}

func TestBookingService_CancelledBookingFreesTheDates(t *testing.T) {
	bookingService, _, _ := newBookingFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)

	booking, err := bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID: "1", StartDate: start, EndDate: end, Guests: 2,
	})
	assert.NoError(t, err)

	cancelled, err := bookingService.CancelBooking(booking.ID, "changed plans")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, "changed plans", cancelled.CancelReason)

	// The same range can be booked again.
	_, err = bookingService.CreateBooking("user-2", services.BookingRequest{
		YachtID: "1", StartDate: start, EndDate: end, Guests: 2,
	})
	assert.NoError(t, err)
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	bookingService, _, _ := newBookingFixture(t)

	booking, err := bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID:   "1",
		StartDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	assert.NoError(t, err)

	updated, err := bookingService.UpdateBookingStatus(booking.ID, models.StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)

	// confirmed -> pending is not a legal move.
	_, err = bookingService.UpdateBookingStatus(booking.ID, models.StatusPending)
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	_, err = bookingService.UpdateBookingStatus("missing", models.StatusConfirmed)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestBookingService_AvailableDates(t *testing.T) {
	bookingService, _, _ := newBookingFixture(t)
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	_, err := bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID:   "1",
		StartDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	assert.NoError(t, err)

	dates, err := bookingService.AvailableDates("1", from)
	assert.NoError(t, err)
	assert.Len(t, dates, services.AvailabilityWindowDays-3)
	assert.Contains(t, dates, "2026-07-09")
	assert.NotContains(t, dates, "2026-07-10")
	assert.NotContains(t, dates, "2026-07-12")
	assert.Contains(t, dates, "2026-07-13")

	_, err = bookingService.AvailableDates("missing", from)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestBookingService_ListBookingsByFilter(t *testing.T) {
	bookingService, _, _ := newBookingFixture(t)

	first, err := bookingService.CreateBooking("user-1", services.BookingRequest{
		YachtID:   "1",
		StartDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	assert.NoError(t, err)
	_, err = bookingService.CreateBooking("user-2", services.BookingRequest{
		YachtID:   "1",
		StartDate: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 22, 0, 0, 0, 0, time.UTC),
		Guests:    2,
	})
	assert.NoError(t, err)

	_, err = bookingService.UpdateBookingStatus(first.ID, models.StatusConfirmed)
	assert.NoError(t, err)

	byUser, err := bookingService.ListBookings(models.BookingFilter{UserID: "user-1"})
	assert.NoError(t, err)
	assert.Len(t, byUser, 1)

	byStatus, err := bookingService.ListBookings(models.BookingFilter{Status: models.StatusConfirmed})
	assert.NoError(t, err)
	assert.Len(t, byStatus, 1)
	assert.Equal(t, first.ID, byStatus[0].ID)

	all, err := bookingService.ListBookings(models.BookingFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
