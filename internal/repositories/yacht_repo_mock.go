package repositories

import (
	"fmt"
	"sort"
	"sync"

	"moreyacht/internal/models"

	"github.com/google/uuid"
)

// MockYachtRepository is an in-memory implementation of YachtRepository.
type MockYachtRepository struct {
	yachts map[string]models.Yacht
	mu     sync.RWMutex
}

// NewMockYachtRepository creates a new instance of MockYachtRepository.
func NewMockYachtRepository() *MockYachtRepository {
	return &MockYachtRepository{
		yachts: make(map[string]models.Yacht),
	}
}

// GetAll returns all yachts sorted by name.
func (r *MockYachtRepository) GetAll() ([]models.Yacht, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	yachtList := make([]models.Yacht, 0, len(r.yachts))
	for _, y := range r.yachts {
		yachtList = append(yachtList, y)
	}
	sort.Slice(yachtList, func(i, j int) bool { return yachtList[i].Name < yachtList[j].Name })
	return yachtList, nil
}

// GetByID returns a yacht by its ID.
func (r *MockYachtRepository) GetByID(id string) (*models.Yacht, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	yacht, ok := r.yachts[id]
	if !ok {
		return nil, fmt.Errorf("yacht with ID %s: %w", id, ErrNotFound)
	}
	return &yacht, nil
}

// Filter returns yachts matching every set constraint of the filter.
func (r *MockYachtRepository) Filter(filter models.YachtFilter) ([]models.Yacht, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Yacht, 0, len(all))
	for _, y := range all {
		if filter.Matches(y) {
			matched = append(matched, y)
		}
	}
	return matched, nil
}

// Create adds a new yacht.
func (r *MockYachtRepository) Create(yacht *models.Yacht) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if yacht.ID == "" {
		yacht.ID = uuid.New().String()
	}
	r.yachts[yacht.ID] = *yacht
	return nil
}

// Update modifies an existing yacht.
func (r *MockYachtRepository) Update(yacht *models.Yacht) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.yachts[yacht.ID]
	if !ok {
		return fmt.Errorf("yacht with ID %s: %w", yacht.ID, ErrNotFound)
	}
	r.yachts[yacht.ID] = *yacht
	return nil
}

// Delete removes a yacht by its ID.
func (r *MockYachtRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.yachts[id]
	if !ok {
		return fmt.Errorf("yacht with ID %s: %w", id, ErrNotFound)
	}
	delete(r.yachts, id)
	return nil
}
