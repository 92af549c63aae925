package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes domain events. Satisfied by *rabbitmq.Client;
// a nil publisher skips events.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService converts carts into immutable orders and walks their status
// lifecycle.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cart      *CartService
	mqClient  EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, cart *CartService, mqClient EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cart:      cart,
		mqClient:  mqClient,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByUserID retrieves all orders placed by a user.
func (s *OrderService) GetOrdersByUserID(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// CreateOrder snapshots the user's cart into an immutable order, seeds the
// status history with a pending entry and clears the cart.
func (s *OrderService) CreateOrder(userID string, contactInfo models.ContactInfo) (*models.Order, error) {
	items := s.cart.GetCart(userID)
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", repositories.ErrInvalid)
	}

	now := time.Now()
	newOrder := &models.Order{
		ID:         uuid.New().String(),
		UserID:     userID,
		Items:      items,
		TotalPrice: s.cart.GetCartTotal(userID),
		CreatedAt:  now,
		StatusHistory: []models.StatusChange{
			{Status: models.StatusPending, UpdatedAt: now, Comment: "order created"},
		},
		CurrentStatus: models.StatusPending,
		ContactInfo:   contactInfo,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.cart.ClearCart(userID)
	s.publish("order.created", map[string]interface{}{
		"orderID": newOrder.ID,
		"userID":  newOrder.UserID,
		"status":  newOrder.CurrentStatus,
		"total":   newOrder.TotalPrice,
	})

	return newOrder, nil
}

// UpdateOrderStatus appends a status entry to an existing order. Unknown
// orders leave the ledger untouched; illegal lifecycle transitions are
// rejected.
func (s *OrderService) UpdateOrderStatus(id string, status models.Status, comment string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown order status %q: %w", status, repositories.ErrInvalid)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !models.ValidTransition(order.CurrentStatus, status) {
		return nil, fmt.Errorf("order %s cannot move from %s to %s: %w",
			id, order.CurrentStatus, status, repositories.ErrInvalid)
	}

	order.StatusHistory = append(order.StatusHistory, models.StatusChange{
		Status:    status,
		UpdatedAt: time.Now(),
		Comment:   comment,
	})
	order.CurrentStatus = status

	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publish("order.status_changed", map[string]interface{}{
		"orderID": order.ID,
		"status":  order.CurrentStatus,
		"comment": comment,
	})
	return order, nil
}

func (s *OrderService) publish(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event to JSON: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
