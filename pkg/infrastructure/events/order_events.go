package events

import (
	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
)

// Lifecycle event types published by the order service. Streams are
// keyed by order id.
const (
	OrderCreatedEvent   = "order.created"
	OrderEditedEvent    = "order.edited"
	OrderStartedEvent   = "order.started"
	OrderCompletedEvent = "order.completed"
	OrderCancelledEvent = "order.cancelled"

	ShortageDetectedEvent = "shortage.detected"
)

type OrderCreated struct {
	Order entities.ProductionOrder `json:"order"`
}

type OrderEdited struct {
	OldOrder entities.ProductionOrder `json:"old_order"`
	NewOrder entities.ProductionOrder `json:"new_order"`
}

type OrderStarted struct {
	OrderID     string `json:"order_id"`
	StartedBy   string `json:"started_by"`
	SeededLines int    `json:"seeded_lines"`
}

type OrderCompleted struct {
	Order      entities.ProductionOrder `json:"order"`
	ActualCost decimal.Decimal          `json:"actual_cost"`
}

type OrderCancelled struct {
	OrderID     string `json:"order_id"`
	CancelledBy string `json:"cancelled_by"`
	Reason      string `json:"reason"`
}

type ShortageDetected struct {
	OrderID string                  `json:"order_id"`
	Check   entities.InventoryCheck `json:"check"`
}
