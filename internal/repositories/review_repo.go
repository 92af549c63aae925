package repositories

import "moreyacht/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	GetAll() ([]models.Review, error)
	GetByID(id string) (*models.Review, error)
	ListByYacht(yachtID string, onlyApproved bool) ([]models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
}
