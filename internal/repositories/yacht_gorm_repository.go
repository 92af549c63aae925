package repositories

import (
	"fmt"

	"moreyacht/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMYachtRepository is a GORM implementation of YachtRepository.
type GORMYachtRepository struct {
	db *gorm.DB
}

// NewGORMYachtRepository creates a new instance of GORMYachtRepository.
func NewGORMYachtRepository(db *gorm.DB) *GORMYachtRepository {
	return &GORMYachtRepository{
		db: db,
	}
}

// GetAll retrieves all yachts from the database.
func (r *GORMYachtRepository) GetAll() ([]models.Yacht, error) {
	var yachts []models.Yacht
	if err := r.db.Order("name").Find(&yachts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all yachts: %w", err)
	}
	return yachts, nil
}

// GetByID retrieves a single yacht by its ID from the database.
func (r *GORMYachtRepository) GetByID(id string) (*models.Yacht, error) {
	var yacht models.Yacht
	if err := r.db.First(&yacht, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("yacht with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get yacht by ID %s: %w", id, err)
	}
	return &yacht, nil
}

// Filter retrieves yachts matching every set constraint of the filter.
func (r *GORMYachtRepository) Filter(filter models.YachtFilter) ([]models.Yacht, error) {
	query := r.db.Model(&models.Yacht{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.MinCapacity > 0 {
		query = query.Where("capacity >= ?", filter.MinCapacity)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price_per_day <= ?", filter.MaxPrice)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}

	var yachts []models.Yacht
	if err := query.Order("name").Find(&yachts).Error; err != nil {
		return nil, fmt.Errorf("failed to filter yachts: %w", err)
	}
	return yachts, nil
}

// Create creates a new yacht in the database.
func (r *GORMYachtRepository) Create(yacht *models.Yacht) error {
	if yacht.ID == "" {
		yacht.ID = uuid.New().String()
	}
	if err := r.db.Create(yacht).Error; err != nil {
		return fmt.Errorf("failed to create yacht: %w", err)
	}
	return nil
}

// Update updates an existing yacht in the database.
func (r *GORMYachtRepository) Update(yacht *models.Yacht) error {
	res := r.db.Save(yacht)
	if res.Error != nil {
		return fmt.Errorf("failed to update yacht: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("yacht with ID %s: %w", yacht.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a yacht by its ID from the database.
func (r *GORMYachtRepository) Delete(id string) error {
	res := r.db.Delete(&models.Yacht{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete yacht: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("yacht with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
