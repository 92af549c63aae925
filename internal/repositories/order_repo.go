package repositories

import (
	"moreyacht/internal/models"
)

// OrderRepository defines the interface for order ledger data access.
// Orders are never deleted; Update exists only to persist status history
// appends.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
}
