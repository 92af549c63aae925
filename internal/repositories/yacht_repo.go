package repositories

import (
	"moreyacht/internal/models"
)

// YachtRepository defines the interface for yacht catalog data access.
type YachtRepository interface {
	GetAll() ([]models.Yacht, error)
	GetByID(id string) (*models.Yacht, error)
	Filter(filter models.YachtFilter) ([]models.Yacht, error)
	Create(yacht *models.Yacht) error
	Update(yacht *models.Yacht) error
	Delete(id string) error
}
