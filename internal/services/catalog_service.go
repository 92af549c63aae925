package services

import (
	"context"
	"log"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
)

// CatalogCache caches full fleet reads. A nil cache disables caching.
type CatalogCache interface {
	GetYachts(ctx context.Context) ([]models.Yacht, error)
	SetYachts(ctx context.Context, yachts []models.Yacht) error
	InvalidateYachts(ctx context.Context) error
}

// CatalogService handles business logic for the yacht catalog.
type CatalogService struct {
	repo  repositories.YachtRepository
	cache CatalogCache
}

// NewCatalogService creates a new CatalogService. cache may be nil.
func NewCatalogService(repo repositories.YachtRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

// GetAllYachts retrieves the whole fleet, through the cache when one is
// configured. Cache failures fall through to the repository.
func (s *CatalogService) GetAllYachts(ctx context.Context) ([]models.Yacht, error) {
	if s.cache != nil {
		cached, err := s.cache.GetYachts(ctx)
		if err != nil {
			log.Printf("Yacht cache read failed, falling back to repository: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	yachts, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetYachts(ctx, yachts); err != nil {
			log.Printf("Yacht cache write failed: %v", err)
		}
	}
	return yachts, nil
}

// FilterYachts retrieves yachts matching the filter. The filter is applied
// over the (possibly cached) fleet, mirroring how the storefront filters.
func (s *CatalogService) FilterYachts(ctx context.Context, filter models.YachtFilter) ([]models.Yacht, error) {
	if filter == (models.YachtFilter{}) {
		return s.GetAllYachts(ctx)
	}

	fleet, err := s.GetAllYachts(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Yacht, 0, len(fleet))
	for _, y := range fleet {
		if filter.Matches(y) {
			matched = append(matched, y)
		}
	}
	return matched, nil
}

// GetYachtByID retrieves a single yacht by its ID.
func (s *CatalogService) GetYachtByID(id string) (*models.Yacht, error) {
	return s.repo.GetByID(id)
}

// CreateYacht creates a new yacht and invalidates the fleet cache.
func (s *CatalogService) CreateYacht(ctx context.Context, yacht *models.Yacht) error {
	if err := s.repo.Create(yacht); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// UpdateYacht updates an existing yacht and invalidates the fleet cache.
func (s *CatalogService) UpdateYacht(ctx context.Context, yacht *models.Yacht) error {
	if err := s.repo.Update(yacht); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteYacht deletes a yacht by its ID and invalidates the fleet cache.
func (s *CatalogService) DeleteYacht(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateYachts(ctx); err != nil {
		log.Printf("Yacht cache invalidation failed: %v", err)
	}
}
