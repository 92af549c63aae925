package services_test

import (
	"context"
	"testing"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
	"moreyacht/internal/services"

	"github.com/stretchr/testify/assert"
)

// fakeCatalogCache is an in-process stand-in for the Redis fleet cache.
type fakeCatalogCache struct {
	yachts      []models.Yacht
	hits        int
	misses      int
	invalidated int
}

func (c *fakeCatalogCache) GetYachts(ctx context.Context) ([]models.Yacht, error) {
	if c.yachts == nil {
		c.misses++
		return nil, nil
	}
	c.hits++
	return c.yachts, nil
}

func (c *fakeCatalogCache) SetYachts(ctx context.Context, yachts []models.Yacht) error {
	c.yachts = yachts
	return nil
}

func (c *fakeCatalogCache) InvalidateYachts(ctx context.Context) error {
	c.yachts = nil
	c.invalidated++
	return nil
}

func newCatalogFixture(t *testing.T) (*services.CatalogService, *repositories.MockYachtRepository, *fakeCatalogCache) {
	t.Helper()

	yachtRepo := repositories.NewMockYachtRepository()
	assert.NoError(t, yachtRepo.Create(&models.Yacht{
		ID: "1", Name: "Sailing One", Type: "Sailing", Capacity: 6,
		PricePerDay: 25000, Available: true, Location: "Sevastopol",
	}))
	assert.NoError(t, yachtRepo.Create(&models.Yacht{
		ID: "2", Name: "Motor One", Type: "Motor", Capacity: 8,
		PricePerDay: 40000, Available: true, Location: "Yalta",
	}))

	cache := &fakeCatalogCache{}
	return services.NewCatalogService(yachtRepo, cache), yachtRepo, cache
}

func TestCatalogService_GetAllYachts_CacheThrough(t *testing.T) {
	catalogService, _, cache := newCatalogFixture(t)
	ctx := context.Background()

	// First read misses and fills the cache.
	yachts, err := catalogService.GetAllYachts(ctx)
	assert.NoError(t, err)
	assert.Len(t, yachts, 2)
	assert.Equal(t, 1, cache.misses)
	assert.Equal(t, 0, cache.hits)

	// Second read is served from the cache.
	yachts, err = catalogService.GetAllYachts(ctx)
	assert.NoError(t, err)
	assert.Len(t, yachts, 2)
	assert.Equal(t, 1, cache.hits)
}

func TestCatalogService_FilterYachts(t *testing.T) {
	catalogService, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	// Each constraint must hold at once.
	yachts, err := catalogService.FilterYachts(ctx, models.YachtFilter{Type: "Sailing", MaxPrice: 30000})
	assert.NoError(t, err)
	assert.Len(t, yachts, 1)
	assert.Equal(t, "Sailing One", yachts[0].Name)

	yachts, err = catalogService.FilterYachts(ctx, models.YachtFilter{Type: "Sailing", MinCapacity: 8})
	assert.NoError(t, err)
	assert.Empty(t, yachts)

	// An empty filter returns the whole fleet.
	yachts, err = catalogService.FilterYachts(ctx, models.YachtFilter{})
	assert.NoError(t, err)
	assert.Len(t, yachts, 2)
}

func TestCatalogService_WritesInvalidateCache(t *testing.T) {
	catalogService, _, cache := newCatalogFixture(t)
	ctx := context.Background()

	_, err := catalogService.GetAllYachts(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, cache.yachts)

	assert.NoError(t, catalogService.CreateYacht(ctx, &models.Yacht{
		ID: "3", Name: "Catamaran One", Type: "Catamaran", Capacity: 10,
		PricePerDay: 35000, Available: true, Location: "Sochi",
	}))
	assert.Equal(t, 1, cache.invalidated)
	assert.Nil(t, cache.yachts)

	// The next read sees the new yacht.
	yachts, err := catalogService.GetAllYachts(ctx)
	assert.NoError(t, err)
	assert.Len(t, yachts, 3)

	yacht, err := catalogService.GetYachtByID("3")
	assert.NoError(t, err)
	yacht.PricePerDay = 36000
	assert.NoError(t, catalogService.UpdateYacht(ctx, yacht))
	assert.Equal(t, 2, cache.invalidated)

	assert.NoError(t, catalogService.DeleteYacht(ctx, "3"))
	assert.Equal(t, 3, cache.invalidated)

	_, err = catalogService.GetYachtByID("3")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
