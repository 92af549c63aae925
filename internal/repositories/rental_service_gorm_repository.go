package repositories

import (
	"fmt"

	"moreyacht/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRentalServiceRepository is a GORM implementation of RentalServiceRepository.
type GORMRentalServiceRepository struct {
	db *gorm.DB
}

// NewGORMRentalServiceRepository creates a new instance of GORMRentalServiceRepository.
func NewGORMRentalServiceRepository(db *gorm.DB) *GORMRentalServiceRepository {
	return &GORMRentalServiceRepository{
		db: db,
	}
}

// GetAll retrieves all rental services from the database.
func (r *GORMRentalServiceRepository) GetAll() ([]models.RentalService, error) {
	var services []models.RentalService
	if err := r.db.Order("name").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get all rental services: %w", err)
	}
	return services, nil
}

// GetByID retrieves a single rental service by its ID from the database.
func (r *GORMRentalServiceRepository) GetByID(id string) (*models.RentalService, error) {
	var service models.RentalService
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("rental service with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rental service by ID %s: %w", id, err)
	}
	return &service, nil
}

// Create creates a new rental service in the database.
func (r *GORMRentalServiceRepository) Create(service *models.RentalService) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	if err := r.db.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create rental service: %w", err)
	}
	return nil
}
