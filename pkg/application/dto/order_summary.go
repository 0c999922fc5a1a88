package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
)

// OrderSummary is the read model handed to display surfaces: one order's
// status, inventory feasibility, and cost figures, flattened for
// rendering and JSON round-tripping.
type OrderSummary struct {
	OrderID            string                   `json:"order_id"`
	ProductID          string                   `json:"product_id"`
	ProductName        string                   `json:"product_name,omitempty"`
	Status             string                   `json:"status"`
	Priority           string                   `json:"priority,omitempty"`
	Assignee           string                   `json:"assignee,omitempty"`
	PlannedQuantity    decimal.Decimal          `json:"planned_quantity"`
	EstimatedCost      decimal.Decimal          `json:"estimated_cost"`
	ActualCost         decimal.Decimal          `json:"actual_cost"`
	AdditionalCosts    decimal.Decimal          `json:"additional_costs"`
	CostVariance       decimal.Decimal          `json:"cost_variance"`
	HasEnoughInventory bool                     `json:"has_enough_inventory"`
	ShortageCount      int                      `json:"shortage_count"`
	TotalShortageCost  decimal.Decimal          `json:"total_shortage_cost"`
	InventoryCheck     *entities.InventoryCheck `json:"inventory_check,omitempty"`
	ActualUsage        []entities.UsageLine     `json:"actual_usage,omitempty"`
	LotCode            string                   `json:"lot_code,omitempty"`
}

// NewOrderSummary flattens an order into its display view. CostVariance
// is zero until the order completes.
func NewOrderSummary(order *entities.ProductionOrder) *OrderSummary {
	summary := &OrderSummary{
		OrderID:           order.ID,
		ProductID:         string(order.ProductID),
		ProductName:       order.ProductName,
		Status:            order.Status.String(),
		Priority:          order.Priority,
		Assignee:          order.Assignee,
		PlannedQuantity:   order.PlannedQuantity,
		EstimatedCost:     order.EstimatedCost,
		ActualCost:        order.ActualCost,
		AdditionalCosts:   order.AdditionalCosts,
		InventoryCheck:    order.InventoryCheck,
		ActualUsage:       order.ActualUsage,
		LotCode:           order.LotCode,
		TotalShortageCost: decimal.Zero,
	}
	if order.Status == entities.StatusCompleted {
		summary.CostVariance = order.ActualCost.Sub(order.EstimatedCost)
	}
	if order.InventoryCheck != nil {
		summary.HasEnoughInventory = order.InventoryCheck.HasEnoughInventory
		summary.ShortageCount = len(order.InventoryCheck.ShortageLines())
		summary.TotalShortageCost = order.InventoryCheck.TotalShortageCost()
	}
	return summary
}
