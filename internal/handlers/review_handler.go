package handlers

import (
	"log"

	"moreyacht/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for yacht reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the customer-facing review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/reviews", h.HandleCreateReview)
}

// RegisterAdminRoutes registers the moderation routes.
func (h *ReviewHandler) RegisterAdminRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleGetAllReviews)
	reviewRoutes.Put("/:id/status", h.HandleModerateReview)
}

// CreateReviewRequest is the request body for submitting a review.
type CreateReviewRequest struct {
	YachtID string `json:"yachtId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"required,min=3,max=2000"`
}

// ModerateReviewRequest approves or rejects a pending review.
type ModerateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// HandleCreateReview submits a review, held for moderation.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	review, err := h.reviewService.CreateReview(userID, req.YachtID, req.Rating, req.Content)
	if err != nil {
		log.Printf("Error creating review for yacht %s: %v", req.YachtID, err)
		return failJSON(c, "Could not create review", err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleGetAllReviews lists every review regardless of moderation status.
func (h *ReviewHandler) HandleGetAllReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.ListAllReviews()
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return failJSON(c, "Could not list reviews", err)
	}

	return c.JSON(reviews)
}

// HandleModerateReview sets a review's moderation status.
func (h *ReviewHandler) HandleModerateReview(c *fiber.Ctx) error {
	id := c.Params("id")

	var req ModerateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing moderation body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	review, err := h.reviewService.ModerateReview(id, req.Status)
	if err != nil {
		log.Printf("Error moderating review %s: %v", id, err)
		return failJSON(c, "Could not update review status", err)
	}

	return c.JSON(review)
}
