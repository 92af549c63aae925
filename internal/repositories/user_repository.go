package repositories

import "moreyacht/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	List(filter models.UserFilter, page, limit int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id string) error
}
