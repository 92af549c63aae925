package handlers

import (
	"log"
	"time"

	"moreyacht/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the current user's cart.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAddToCart)
	cartRoutes.Put("/:yachtId", h.HandleUpdateCartItem)
	cartRoutes.Delete("/:yachtId", h.HandleRemoveFromCart)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// CartItemRequest represents the request body for cart add and update.
type CartItemRequest struct {
	YachtID   string    `json:"yachtId" validate:"required"`
	StartDate time.Time `json:"startDate" validate:"required"`
	Days      int       `json:"days" validate:"required,min=1"`
}

// HandleGetCart returns the cart items and the running total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	return c.JSON(fiber.Map{
		"items": h.cartService.GetCart(userID),
		"total": h.cartService.GetCartTotal(userID),
	})
}

// HandleAddToCart puts a rental selection in the cart, overwriting any
// existing selection of the same yacht.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart add body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	item, err := h.cartService.AddToCart(userID, req.YachtID, req.StartDate, req.Days)
	if err != nil {
		log.Printf("Error adding yacht %s to cart: %v", req.YachtID, err)
		return failJSON(c, "Could not add to cart", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item":  item,
		"total": h.cartService.GetCartTotal(userID),
	})
}

// HandleUpdateCartItem recomputes an existing cart item.
func (h *CartHandler) HandleUpdateCartItem(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	yachtID := c.Params("yachtId")

	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	req.YachtID = yachtID
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	item, err := h.cartService.UpdateCartItem(userID, yachtID, req.StartDate, req.Days)
	if err != nil {
		log.Printf("Error updating cart item %s: %v", yachtID, err)
		return failJSON(c, "Could not update cart item", err)
	}

	return c.JSON(fiber.Map{
		"item":  item,
		"total": h.cartService.GetCartTotal(userID),
	})
}

// HandleRemoveFromCart drops the selection for a yacht, if present.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	h.cartService.RemoveFromCart(userID, c.Params("yachtId"))
	return c.JSON(fiber.Map{
		"items": h.cartService.GetCart(userID),
		"total": h.cartService.GetCartTotal(userID),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	h.cartService.ClearCart(userID)
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
