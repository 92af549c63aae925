package handlers

import (
	"log"

	"moreyacht/internal/models"
	"moreyacht/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the customer-facing order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetMyOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrder)
}

// RegisterAdminRoutes registers the back-office order routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetAllOrders)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// CreateOrderRequest carries the checkout contact details.
type CreateOrderRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle.
type UpdateOrderStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment"`
}

// HandleCreateOrder checks out the current cart into a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	order, err := h.orderService.CreateOrder(userID, models.ContactInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		log.Printf("Error creating order for user %s: %v", userID, err)
		return failJSON(c, "Could not create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetMyOrders lists the current user's orders.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	orders, err := h.orderService.GetOrdersByUserID(userID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", userID, err)
		return failJSON(c, "Could not list orders", err)
	}

	return c.JSON(orders)
}

// HandleGetAllOrders lists every order in the ledger.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return failJSON(c, "Could not list orders", err)
	}

	return c.JSON(orders)
}

// HandleGetOrder returns a single order. Customers can only see their own.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		log.Printf("Error getting order %s: %v", id, err)
		return failJSON(c, "Could not get order", err)
	}

	role, _ := c.Locals("role").(string)
	userID, _ := c.Locals("user_id").(string)
	if role != models.RoleAdmin && order.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied",
		})
	}

	return c.JSON(order)
}

// HandleUpdateOrderStatus appends a status change to the order's history.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateOrderStatusRequest
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

	order, err := h.orderService.UpdateOrderStatus(id, models.Status(req.Status), req.Comment)
	if err != nil {
		log.Printf("Error updating status of order %s: %v", id, err)
		return failJSON(c, "Could not update order status", err)
	}

	return c.JSON(order)
}
