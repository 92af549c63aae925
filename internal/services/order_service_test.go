package services_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
	"moreyacht/internal/services"

	"github.com/stretchr/testify/assert"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	RoutingKey string
	Body       map[string]interface{}
}

func (p *recordingPublisher) Publish(exchange, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var payload map[string]interface{}
	_ = json.Unmarshal(body, &payload)
	p.events = append(p.events, publishedEvent{RoutingKey: routingKey, Body: payload})
	return nil
}

func (p *recordingPublisher) routingKeys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.RoutingKey)
	}
	return keys
}

func newOrderFixture(t *testing.T) (*services.OrderService, *services.CartService, *recordingPublisher) {
	t.Helper()
	cartService, _ := newCartFixture(t)
	publisher := &recordingPublisher{}
	orderService := services.NewOrderService(repositories.NewMockOrderRepository(), cartService, publisher)
	return orderService, cartService, publisher
}

func TestOrderService_CreateOrder(t *testing.T) {
	orderService, cartService, publisher := newOrderFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 3)
	assert.NoError(t, err)
	_, err = cartService.UpdateCartItem("user-1", "1", start, 5)
	assert.NoError(t, err)

	order, err := orderService.CreateOrder("user-1", models.ContactInfo{
		Name: "Ivan", Email: "ivan@example.com", Phone: "+7 900 000-00-00",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 125000.0, order.TotalPrice)
	assert.Equal(t, models.StatusPending, order.CurrentStatus)
	assert.Len(t, order.StatusHistory, 1)
	assert.Equal(t, models.StatusPending, order.StatusHistory[0].Status)

	// Checkout empties the cart.
	assert.Empty(t, cartService.GetCart("user-1"))
	assert.Equal(t, []string{"order.created"}, publisher.routingKeys())
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	orderService, _, publisher := newOrderFixture(t)

	_, err := orderService.CreateOrder("user-1", models.ContactInfo{Name: "Ivan"})
	assert.ErrorIs(t, err, repositories.ErrInvalid)
	assert.Empty(t, publisher.routingKeys())
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderService, cartService, publisher := newOrderFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 2)
	assert.NoError(t, err)
	order, err := orderService.CreateOrder("user-1", models.ContactInfo{Name: "Ivan"})
	assert.NoError(t, err)

	updated, err := orderService.UpdateOrderStatus(order.ID, models.StatusConfirmed, "payment received")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.CurrentStatus)
	assert.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, "payment received", updated.StatusHistory[1].Comment)

	updated, err = orderService.UpdateOrderStatus(order.ID, models.StatusCompleted, "")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.CurrentStatus)
	assert.Len(t, updated.StatusHistory, 3)

	assert.Equal(t, []string{"order.created", "order.status_changed", "order.status_changed"}, publisher.routingKeys())
}

func TestOrderService_UpdateOrderStatus_UnknownOrder(t *testing.T) {
	orderService, _, _ := newOrderFixture(t)

	_, err := orderService.UpdateOrderStatus("missing", models.StatusConfirmed, "")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// The ledger stays untouched.
	orders, err := orderService.GetAllOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateOrderStatus_IllegalTransition(t *testing.T) {
	orderService, cartService, _ := newOrderFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 2)
	assert.NoError(t, err)
	order, err := orderService.CreateOrder("user-1", models.ContactInfo{Name: "Ivan"})
	assert.NoError(t, err)

	// pending -> completed skips confirmation.
	_, err = orderService.UpdateOrderStatus(order.ID, models.StatusCompleted, "")
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	// Unknown status value.
	_, err = orderService.UpdateOrderStatus(order.ID, models.Status("shipped"), "")
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	// Terminal states reject further transitions.
	_, err = orderService.UpdateOrderStatus(order.ID, models.StatusCancelled, "changed plans")
	assert.NoError(t, err)
	_, err = orderService.UpdateOrderStatus(order.ID, models.StatusConfirmed, "")
	assert.ErrorIs(t, err, repositories.ErrInvalid)

	current, err := orderService.GetOrderByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, current.CurrentStatus)
	assert.Len(t, current.StatusHistory, 2)
}

func TestOrderService_GetOrdersByUserID(t *testing.T) {
	orderService, cartService, _ := newOrderFixture(t)
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	_, err := cartService.AddToCart("user-1", "1", start, 2)
	assert.NoError(t, err)
	_, err = orderService.CreateOrder("user-1", models.ContactInfo{Name: "Ivan"})
	assert.NoError(t, err)

	orders, err := orderService.GetOrdersByUserID("user-1")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = orderService.GetOrdersByUserID("user-2")
	assert.NoError(t, err)
	assert.Empty(t, orders)
}
