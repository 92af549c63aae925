package services

import (
	"fmt"
	"sync"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
)

// CartService holds transient pre-checkout carts, one per user. Carts are
// session state and are not persisted; an order snapshots and clears them.
type CartService struct {
	yachtRepo repositories.YachtRepository
	mu        sync.RWMutex
	carts     map[string][]models.CartItem
}

// NewCartService creates a new CartService.
func NewCartService(yachtRepo repositories.YachtRepository) *CartService {
	return &CartService{
		yachtRepo: yachtRepo,
		carts:     make(map[string][]models.CartItem),
	}
}

// AddToCart puts a rental selection in the user's cart. A cart holds at most
// one item per yacht; re-adding overwrites the dates, day count and price.
func (s *CartService) AddToCart(userID, yachtID string, startDate time.Time, days int) (*models.CartItem, error) {
	if days < 1 {
		return nil, fmt.Errorf("days must be at least 1: %w", repositories.ErrInvalid)
	}

	yacht, err := s.yachtRepo.GetByID(yachtID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		YachtID:   yachtID,
		Yacht:     *yacht,
		StartDate: startDate,
		Days:      days,
		Price:     yacht.PricePerDay * float64(days),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].YachtID == yachtID {
			cart[i] = item
			return &item, nil
		}
	}
	s.carts[userID] = append(cart, item)
	return &item, nil
}

// UpdateCartItem recomputes an existing cart item's dates, day count and
// price. Unlike AddToCart it refuses to create the item.
func (s *CartService) UpdateCartItem(userID, yachtID string, startDate time.Time, days int) (*models.CartItem, error) {
	if days < 1 {
		return nil, fmt.Errorf("days must be at least 1: %w", repositories.ErrInvalid)
	}

	s.mu.Lock()
	exists := false
	for _, item := range s.carts[userID] {
		if item.YachtID == yachtID {
			exists = true
			break
		}
	}
	s.mu.Unlock()

	if !exists {
		return nil, fmt.Errorf("cart item for yacht %s: %w", yachtID, repositories.ErrNotFound)
	}
	return s.AddToCart(userID, yachtID, startDate, days)
}

// RemoveFromCart deletes the item for the yacht. Removing an absent item is
// a no-op.
func (s *CartService) RemoveFromCart(userID, yachtID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	filtered := cart[:0]
	for _, item := range cart {
		if item.YachtID != yachtID {
			filtered = append(filtered, item)
		}
	}
	s.carts[userID] = filtered
}

// GetCart returns a defensive copy of the user's cart.
func (s *CartService) GetCart(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.carts[userID]
	copied := make([]models.CartItem, len(cart))
	copy(copied, cart)
	return copied
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// GetCartTotal sums the item prices of the user's cart.
func (s *CartService) GetCartTotal(userID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.carts[userID] {
		total += item.Price
	}
	return total
}
