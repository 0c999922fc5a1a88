package repositories

import "github.com/kavidoi/murallayes-production/pkg/domain/entities"

// OrderRepository owns persisted production orders. Implementations must
// isolate stored state from callers: a saved order is copied in, and a
// fetched order is safe to mutate without affecting the store.
type OrderRepository interface {
	GetOrder(id string) (*entities.ProductionOrder, error)
	GetAllOrders() ([]*entities.ProductionOrder, error)
	SaveOrder(order *entities.ProductionOrder) error
}
