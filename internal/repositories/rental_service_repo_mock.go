package repositories

import (
	"fmt"
	"sort"
	"sync"

	"moreyacht/internal/models"

	"github.com/google/uuid"
)

// MockRentalServiceRepository is an in-memory implementation of
// RentalServiceRepository.
type MockRentalServiceRepository struct {
	services map[string]models.RentalService
	mu       sync.RWMutex
}

// NewMockRentalServiceRepository creates a new instance of
// MockRentalServiceRepository.
func NewMockRentalServiceRepository() *MockRentalServiceRepository {
	return &MockRentalServiceRepository{
		services: make(map[string]models.RentalService),
	}
}

// GetAll returns all rental services sorted by name.
func (r *MockRentalServiceRepository) GetAll() ([]models.RentalService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serviceList := make([]models.RentalService, 0, len(r.services))
	for _, s := range r.services {
		serviceList = append(serviceList, s)
	}
	sort.Slice(serviceList, func(i, j int) bool { return serviceList[i].Name < serviceList[j].Name })
	return serviceList, nil
}

// GetByID returns a rental service by its ID.
func (r *MockRentalServiceRepository) GetByID(id string) (*models.RentalService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("rental service with ID %s: %w", id, ErrNotFound)
	}
	return &service, nil
}

// Create adds a new rental service.
func (r *MockRentalServiceRepository) Create(service *models.RentalService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	r.services[service.ID] = *service
	return nil
}
