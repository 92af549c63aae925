package handlers

import (
	"log"

	"moreyacht/internal/models"
	"moreyacht/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminUserHandler handles back-office user management requests.
type AdminUserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewAdminUserHandler creates a new AdminUserHandler.
func NewAdminUserHandler(userService *services.UserService) *AdminUserHandler {
	return &AdminUserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user management routes under the admin group.
func (h *AdminUserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleListUsers)
	userRoutes.Get("/:id", h.HandleGetUser)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// CreateUserRequest is the admin request body for creating an account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateUserRequest carries partial account updates. Empty fields keep
// their current values.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// HandleListUsers lists accounts with role, search and registration date
// filters, paginated.
func (h *AdminUserHandler) HandleListUsers(c *fiber.Ctx) error {
	filter := models.UserFilter{
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}
	if from := c.Query("dateFrom"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return failJSON(c, "Invalid dateFrom", err)
		}
		filter.DateFrom = t
	}
	if to := c.Query("dateTo"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return failJSON(c, "Invalid dateTo", err)
		}
		filter.DateTo = t
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	users, err := h.userService.ListUsers(filter, page, limit)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return failJSON(c, "Could not list users", err)
	}

	return c.JSON(users)
}

// HandleGetUser returns a single account.
func (h *AdminUserHandler) HandleGetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		log.Printf("Error getting user %s: %v", id, err)
		return failJSON(c, "Could not get user", err)
	}

	return c.JSON(user)
}

// HandleCreateUser creates an account with an assignable role.
func (h *AdminUserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing user body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}
	if err := h.userService.CreateUser(&user, req.Password); err != nil {
		log.Printf("Error creating user %s: %v", req.Email, err)
		return failJSON(c, "Could not create user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser applies partial updates to an account.
func (h *AdminUserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing user body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	user, err := h.userService.UpdateUser(id, req.Name, req.Email, req.Phone, req.Role, req.Password)
	if err != nil {
		log.Printf("Error updating user %s: %v", id, err)
		return failJSON(c, "Could not update user", err)
	}

	return c.JSON(user)
}

// HandleDeleteUser removes an account.
func (h *AdminUserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.userService.DeleteUser(id); err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		return failJSON(c, "Could not delete user", err)
	}

	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
