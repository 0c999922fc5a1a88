package memory

import (
	"sort"
	"sync"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
	"github.com/kavidoi/murallayes-production/pkg/domain/repositories"
)

// OrderRepository provides in-memory production order storage. Orders
// are deep-copied on the way in and out, so callers can never mutate
// stored state except through SaveOrder.
type OrderRepository struct {
	mutex  sync.RWMutex
	orders map[string]*entities.ProductionOrder
}

// NewOrderRepository creates a new in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*entities.ProductionOrder),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// SaveOrder stores a deep copy of the order, replacing any previous
// version.
func (r *OrderRepository) SaveOrder(order *entities.ProductionOrder) error {
	if order == nil || order.ID == "" {
		return &entities.ValidationError{Field: "order id", Message: "cannot be empty"}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.orders[order.ID] = order.Clone()
	return nil
}

// GetOrder returns a deep copy of one order.
func (r *OrderRepository) GetOrder(id string) (*entities.ProductionOrder, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, &entities.NotFoundError{Kind: "order", ID: id}
	}
	return order.Clone(), nil
}

// GetAllOrders returns deep copies of all orders, oldest first.
func (r *OrderRepository) GetAllOrders() ([]*entities.ProductionOrder, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	orders := make([]*entities.ProductionOrder, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order.Clone())
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID < orders[j].ID
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return orders, nil
}
