package handlers

import (
	"log"

	"moreyacht/internal/models"
	"moreyacht/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles HTTP requests for dated bookings and rental services.
type BookingHandler struct {
	bookingService *services.BookingService
	validate       *validator.Validate
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validate:       validator.New(),
	}
}

// RegisterPublicRoutes registers the routes available without authentication.
func (h *BookingHandler) RegisterPublicRoutes(router fiber.Router) {
	serviceRoutes := router.Group("/services")
	serviceRoutes.Get("/", h.HandleGetServices)
	serviceRoutes.Get("/:id", h.HandleGetService)
}

// RegisterRoutes registers the customer-facing booking routes.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Get("/", h.HandleGetMyBookings)
	bookingRoutes.Post("/", h.HandleCreateBooking)
	bookingRoutes.Get("/:id", h.HandleGetBooking)
	bookingRoutes.Post("/:id/cancel", h.HandleCancelBooking)
}

// RegisterAdminRoutes registers the back-office booking routes.
func (h *BookingHandler) RegisterAdminRoutes(router fiber.Router) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Get("/", h.HandleGetAllBookings)
	bookingRoutes.Put("/:id/status", h.HandleUpdateBookingStatus)

	router.Post("/services", h.HandleCreateService)
}

// UpdateBookingStatusRequest moves a booking along its lifecycle.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CancelBookingRequest optionally records why the booking was cancelled.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// HandleCreateBooking books a yacht for a date range with optional services.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req services.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing booking body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	booking, err := h.bookingService.CreateBooking(userID, req)
	if err != nil {
		log.Printf("Error creating booking for yacht %s: %v", req.YachtID, err)
		return failJSON(c, "Could not create booking", err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// HandleGetMyBookings lists the current user's bookings.
func (h *BookingHandler) HandleGetMyBookings(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	bookings, err := h.bookingService.ListBookings(models.BookingFilter{UserID: userID})
	if err != nil {
		log.Printf("Error listing bookings for user %s: %v", userID, err)
		return failJSON(c, "Could not list bookings", err)
	}

	return c.JSON(bookings)
}

// HandleGetAllBookings lists bookings with optional yacht and status filters.
func (h *BookingHandler) HandleGetAllBookings(c *fiber.Ctx) error {
	filter := models.BookingFilter{
		YachtID: c.Query("yachtId"),
		Status:  models.Status(c.Query("status")),
	}

	bookings, err := h.bookingService.ListBookings(filter)
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		return failJSON(c, "Could not list bookings", err)
	}

	return c.JSON(bookings)
}

// HandleGetBooking returns a single booking. Customers can only see their own.
func (h *BookingHandler) HandleGetBooking(c *fiber.Ctx) error {
	id := c.Params("id")

	booking, err := h.bookingService.GetBookingByID(id)
	if err != nil {
		log.Printf("Error getting booking %s: %v", id, err)
		return failJSON(c, "Could not get booking", err)
	}

	role, _ := c.Locals("role").(string)
	userID, _ := c.Locals("user_id").(string)
	if role != models.RoleAdmin && booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied",
		})
	}

	return c.JSON(booking)
}

// HandleCancelBooking cancels the current user's booking.
func (h *BookingHandler) HandleCancelBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("user_id").(string)

	booking, err := h.bookingService.GetBookingByID(id)
	if err != nil {
		log.Printf("Error getting booking %s: %v", id, err)
		return failJSON(c, "Could not get booking", err)
	}

	role, _ := c.Locals("role").(string)
	if role != models.RoleAdmin && booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied",
		})
	}

	var req CancelBookingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing cancel body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	booking, err = h.bookingService.CancelBooking(id, req.Reason)
	if err != nil {
		log.Printf("Error cancelling booking %s: %v", id, err)
		return failJSON(c, "Could not cancel booking", err)
	}

	return c.JSON(booking)
}

// HandleUpdateBookingStatus moves a booking to a new lifecycle status.
func (h *BookingHandler) HandleUpdateBookingStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	booking, err := h.bookingService.UpdateBookingStatus(id, models.Status(req.Status))
	if err != nil {
		log.Printf("Error updating status of booking %s: %v", id, err)
		return failJSON(c, "Could not update booking status", err)
	}

	return c.JSON(booking)
}

// HandleGetServices lists the extra rental services offered with a booking.
func (h *BookingHandler) HandleGetServices(c *fiber.Ctx) error {
	rentalServices, err := h.bookingService.ListServices()
	if err != nil {
		log.Printf("Error listing rental services: %v", err)
		return failJSON(c, "Could not list services", err)
	}

	return c.JSON(rentalServices)
}

// HandleGetService returns a single rental service.
func (h *BookingHandler) HandleGetService(c *fiber.Ctx) error {
	id := c.Params("id")

	service, err := h.bookingService.GetServiceByID(id)
	if err != nil {
		log.Printf("Error getting rental service %s: %v", id, err)
		return failJSON(c, "Could not get service", err)
	}

	return c.JSON(service)
}

// HandleCreateService adds a rental service to the offering.
func (h *BookingHandler) HandleCreateService(c *fiber.Ctx) error {
	var service models.RentalService
	if err := c.BodyParser(&service); err != nil {
		log.Printf("Error parsing service body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(service); err != nil {
		return validationError(c, err)
	}

	if err := h.bookingService.CreateService(&service); err != nil {
		log.Printf("Error creating rental service: %v", err)
		return failJSON(c, "Could not create service", err)
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}
