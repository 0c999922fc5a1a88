package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a production order.
type OrderStatus string

const (
	StatusPlanned    OrderStatus = "PLANNED"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// String returns the string representation of OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo checks if the lifecycle permits moving to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case StatusPlanned:
		return target == StatusInProgress || target == StatusCancelled
	case StatusInProgress:
		return target == StatusCompleted || target == StatusCancelled
	case StatusCompleted, StatusCancelled:
		return false
	}
	return false
}

// ProductionOrder tracks one production run of a product from planning
// through completion or cancellation. The embedded InventoryCheck and
// ActualUsage sequence are exclusively owned by the order; Product and
// Ingredient are shared references captured only as numeric snapshots.
type ProductionOrder struct {
	ID              string          `json:"id"`
	ProductID       ProductID       `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	PlannedQuantity decimal.Decimal `json:"planned_quantity"`
	Status          OrderStatus     `json:"status"`
	Priority        string          `json:"priority,omitempty"`
	Assignee        string          `json:"assignee,omitempty"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
	ActualCost      decimal.Decimal `json:"actual_cost"`
	AdditionalCosts decimal.Decimal `json:"additional_costs"`
	InventoryCheck  *InventoryCheck `json:"inventory_check,omitempty"`
	ActualUsage     []UsageLine     `json:"actual_usage,omitempty"`
	LotCode         string          `json:"lot_code,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CreatedBy       string          `json:"created_by,omitempty"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	StartedBy       string          `json:"started_by,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CompletedBy     string          `json:"completed_by,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CancelledBy     string          `json:"cancelled_by,omitempty"`
	CancelReason    string          `json:"cancel_reason,omitempty"`
}

// Clone returns a deep copy of the order. Mutating the copy never
// affects the original.
func (o *ProductionOrder) Clone() *ProductionOrder {
	if o == nil {
		return nil
	}
	clone := *o
	clone.InventoryCheck = o.InventoryCheck.Clone()
	if o.ActualUsage != nil {
		clone.ActualUsage = make([]UsageLine, len(o.ActualUsage))
		copy(clone.ActualUsage, o.ActualUsage)
	}
	clone.StartedAt = cloneTime(o.StartedAt)
	clone.CompletedAt = cloneTime(o.CompletedAt)
	clone.CancelledAt = cloneTime(o.CancelledAt)
	return &clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
