package handlers

import (
	"log"
	"time"

	"moreyacht/internal/export"
	"moreyacht/internal/models"
	"moreyacht/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// YachtHandler handles HTTP requests for the yacht catalog.
type YachtHandler struct {
	catalogService *services.CatalogService
	bookingService *services.BookingService
	reviewService  *services.ReviewService
	validate       *validator.Validate
}

// NewYachtHandler creates a new YachtHandler.
func NewYachtHandler(
	catalogService *services.CatalogService,
	bookingService *services.BookingService,
	reviewService *services.ReviewService,
) *YachtHandler {
	return &YachtHandler{
		catalogService: catalogService,
		bookingService: bookingService,
		reviewService:  reviewService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *YachtHandler) RegisterRoutes(router fiber.Router) {
	yachtRoutes := router.Group("/yachts")
	yachtRoutes.Get("/", h.HandleListYachts)
	yachtRoutes.Get("/:id", h.HandleGetYachtByID)
	yachtRoutes.Get("/:id/available-dates", h.HandleAvailableDates)
	yachtRoutes.Get("/:id/reviews", h.HandleListReviews)
}

// RegisterAdminRoutes registers the catalog management routes.
func (h *YachtHandler) RegisterAdminRoutes(router fiber.Router) {
	yachtRoutes := router.Group("/yachts")
	yachtRoutes.Post("/", h.HandleCreateYacht)
	yachtRoutes.Put("/:id", h.HandleUpdateYacht)
	yachtRoutes.Delete("/:id", h.HandleDeleteYacht)
	yachtRoutes.Get("/export/excel", h.HandleExportExcel)
}

// HandleListYachts retrieves the fleet, optionally narrowed by the
// type, minCapacity, maxPrice and location query parameters.
func (h *YachtHandler) HandleListYachts(c *fiber.Ctx) error {
	filter := models.YachtFilter{
		Type:        c.Query("type"),
		MinCapacity: c.QueryInt("minCapacity"),
		MaxPrice:    float64(c.QueryInt("maxPrice")),
		Location:    c.Query("location"),
	}

	yachts, err := h.catalogService.FilterYachts(c.UserContext(), filter)
	if err != nil {
		log.Printf("Error listing yachts: %v", err)
		return failJSON(c, "Could not retrieve yachts", err)
	}
	return c.JSON(yachts)
}

// HandleGetYachtByID retrieves a single yacht.
func (h *YachtHandler) HandleGetYachtByID(c *fiber.Ctx) error {
	yacht, err := h.catalogService.GetYachtByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting yacht %s: %v", c.Params("id"), err)
		return failJSON(c, "Could not retrieve yacht", err)
	}
	return c.JSON(yacht)
}

// HandleAvailableDates returns the bookable dates of a yacht over the
// rolling window, based on its pending and confirmed bookings.
func (h *YachtHandler) HandleAvailableDates(c *fiber.Ctx) error {
	from := time.Now()
	if v := c.Query("from"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid from date",
				"error":   err.Error(),
			})
		}
		from = parsed
	}

	dates, err := h.bookingService.AvailableDates(c.Params("id"), from)
	if err != nil {
		log.Printf("Error computing available dates for yacht %s: %v", c.Params("id"), err)
		return failJSON(c, "Could not compute available dates", err)
	}
	return c.JSON(fiber.Map{
		"yachtId": c.Params("id"),
		"dates":   dates,
	})
}

// HandleListReviews returns the approved reviews of a yacht.
func (h *YachtHandler) HandleListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.ListYachtReviews(c.Params("id"))
	if err != nil {
		log.Printf("Error listing reviews for yacht %s: %v", c.Params("id"), err)
		return failJSON(c, "Could not retrieve reviews", err)
	}
	return c.JSON(reviews)
}

// HandleCreateYacht adds a yacht to the fleet.
func (h *YachtHandler) HandleCreateYacht(c *fiber.Ctx) error {
	var yacht models.Yacht
	if err := c.BodyParser(&yacht); err != nil {
		log.Printf("Error parsing yacht create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(yacht); err != nil {
		return validationError(c, err)
	}

	if err := h.catalogService.CreateYacht(c.UserContext(), &yacht); err != nil {
		log.Printf("Error creating yacht: %v", err)
		return failJSON(c, "Could not create yacht", err)
	}
	return c.Status(fiber.StatusCreated).JSON(yacht)
}

// HandleUpdateYacht updates a fleet entry.
func (h *YachtHandler) HandleUpdateYacht(c *fiber.Ctx) error {
	var yacht models.Yacht
	if err := c.BodyParser(&yacht); err != nil {
		log.Printf("Error parsing yacht update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	yacht.ID = c.Params("id")
	if err := h.validate.Struct(yacht); err != nil {
		return validationError(c, err)
	}

	if err := h.catalogService.UpdateYacht(c.UserContext(), &yacht); err != nil {
		log.Printf("Error updating yacht %s: %v", yacht.ID, err)
		return failJSON(c, "Could not update yacht", err)
	}
	return c.JSON(yacht)
}

// HandleDeleteYacht removes a yacht from the fleet.
func (h *YachtHandler) HandleDeleteYacht(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.catalogService.DeleteYacht(c.UserContext(), id); err != nil {
		log.Printf("Error deleting yacht %s: %v", id, err)
		return failJSON(c, "Could not delete yacht", err)
	}
	return c.JSON(fiber.Map{
		"message": "Yacht " + id + " deleted successfully",
	})
}

// HandleExportExcel streams the fleet as an Excel workbook.
func (h *YachtHandler) HandleExportExcel(c *fiber.Ctx) error {
	yachts, err := h.catalogService.GetAllYachts(c.UserContext())
	if err != nil {
		log.Printf("Error exporting fleet: %v", err)
		return failJSON(c, "Could not export fleet", err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="yachts.xlsx"`)
	if err := export.WriteFleetExcel(c.Response().BodyWriter(), yachts); err != nil {
		log.Printf("Error writing fleet workbook: %v", err)
		return failJSON(c, "Could not write fleet workbook", err)
	}
	return nil
}
