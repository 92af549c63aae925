package services_test

import (
	"testing"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
	"moreyacht/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockYachtRepository) {
	t.Helper()
	yachtRepo := repositories.NewMockYachtRepository()
	err := yachtRepo.Create(&models.Yacht{
		ID: "1", Name: "Test Yacht", Type: "Sailing", Capacity: 6,
		PricePerDay: 25000, Available: true, Location: "Sevastopol",
	})
	assert.NoError(t, err)
	return services.NewCartService(yachtRepo), yachtRepo
}

func TestCartService_AddToCart(t *testing.T) {
	cartService, _ := newCartFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	item, err := cartService.AddToCart("user-1", "1", start, 3)
	assert.NoError(t, err)
	assert.Equal(t, 75000.0, item.Price)
	assert.Equal(t, 75000.0, cartService.GetCartTotal("user-1"))
	assert.Len(t, cartService.GetCart("user-1"), 1)
}

func TestCartService_AddToCart_OverwritesSameYacht(t *testing.T) {
	cartService, _ := newCartFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 3)
	assert.NoError(t, err)

	// Re-adding the same yacht replaces the item instead of duplicating it.
	item, err := cartService.AddToCart("user-1", "1", start, 5)
	assert.NoError(t, err)
	assert.Equal(t, 125000.0, item.Price)
	assert.Len(t, cartService.GetCart("user-1"), 1)
	assert.Equal(t, 125000.0, cartService.GetCartTotal("user-1"))
}

func TestCartService_AddToCart_InvalidInput(t *testing.T) {
	cartService, _ := newCartFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 0)
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	_, err = cartService.AddToCart("user-1", "missing", start, 2)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.Empty(t, cartService.GetCart("user-1"))
}

func TestCartService_UpdateCartItem(t *testing.T) {
	cartService, _ := newCartFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 3)
	assert.NoError(t, err)

	item, err := cartService.UpdateCartItem("user-1", "1", start, 5)
	assert.NoError(t, err)
	assert.Equal(t, 125000.0, item.Price)
	assert.Equal(t, 125000.0, cartService.GetCartTotal("user-1"))

	// Updating an item that was never added is rejected.
	_, err = cartService.UpdateCartItem("user-1", "missing", start, 2)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	cartService, _ := newCartFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 3)
	assert.NoError(t, err)

	// Removing an absent yacht is a no-op.
	cartService.RemoveFromCart("user-1", "missing")
	assert.Len(t, cartService.GetCart("user-1"), 1)

	cartService.RemoveFromCart("user-1", "1")
	assert.Empty(t, cartService.GetCart("user-1"))
	assert.Equal(t, 0.0, cartService.GetCartTotal("user-1"))

	_, err = cartService.AddToCart("user-1", "1", start, 3)
	assert.NoError(t, err)
	cartService.ClearCart("user-1")
	assert.Empty(t, cartService.GetCart("user-1"))
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	cartService, _ := newCartFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 3)
	assert.NoError(t, err)

	assert.Empty(t, cartService.GetCart("user-2"))
	assert.Equal(t, 0.0, cartService.GetCartTotal("user-2"))
}
