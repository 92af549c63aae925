package repositories

import "moreyacht/internal/models"

// RentalServiceRepository defines the interface for additional rental
// service data access.
type RentalServiceRepository interface {
	GetAll() ([]models.RentalService, error)
	GetByID(id string) (*models.RentalService, error)
	Create(service *models.RentalService) error
}
