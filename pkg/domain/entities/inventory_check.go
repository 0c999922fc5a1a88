package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryCheckLine is the per-ingredient result of reconciling a scaled
// recipe against current stock. Stock and cost values are snapshots
// captured when the check ran, not live references.
type InventoryCheckLine struct {
	IngredientID   IngredientID    `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Unit           string          `json:"unit,omitempty"`
	Needed         decimal.Decimal `json:"needed"`
	Available      decimal.Decimal `json:"available"`
	Shortage       decimal.Decimal `json:"shortage"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	ShortageCost   decimal.Decimal `json:"shortage_cost"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
}

// PurchaseRecommendation suggests a buy that covers one shortage line.
type PurchaseRecommendation struct {
	IngredientID   IngredientID    `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	SupplierID     string          `json:"supplier_id,omitempty"`
	QuantityToBuy  decimal.Decimal `json:"quantity_to_buy"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
}

// InventoryCheck is the full stock feasibility picture for one order at
// one point in time. It is embedded in a ProductionOrder and replaced
// wholesale on every recomputation, never patched.
// PurchaseRecommendations is nil when no line is short.
type InventoryCheck struct {
	Lines                   []InventoryCheckLine     `json:"lines"`
	HasEnoughInventory      bool                     `json:"has_enough_inventory"`
	PurchaseRecommendations []PurchaseRecommendation `json:"purchase_recommendations,omitempty"`
	CheckedAt               time.Time                `json:"checked_at"`
}

// EstimatedCost returns the cost of the full scaled recipe at the unit
// costs captured when the check ran.
func (c *InventoryCheck) EstimatedCost() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.EstimatedCost)
	}
	return total
}

// TotalShortageCost returns the summed cost of all shortage quantities.
func (c *InventoryCheck) TotalShortageCost() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.ShortageCost)
	}
	return total
}

// ShortageLines returns only the lines with a positive shortage.
func (c *InventoryCheck) ShortageLines() []InventoryCheckLine {
	var short []InventoryCheckLine
	for _, line := range c.Lines {
		if line.Shortage.IsPositive() {
			short = append(short, line)
		}
	}
	return short
}

// Clone returns a deep copy of the check.
func (c *InventoryCheck) Clone() *InventoryCheck {
	if c == nil {
		return nil
	}
	clone := &InventoryCheck{
		HasEnoughInventory: c.HasEnoughInventory,
		CheckedAt:          c.CheckedAt,
	}
	if c.Lines != nil {
		clone.Lines = make([]InventoryCheckLine, len(c.Lines))
		copy(clone.Lines, c.Lines)
	}
	if c.PurchaseRecommendations != nil {
		clone.PurchaseRecommendations = make([]PurchaseRecommendation, len(c.PurchaseRecommendations))
		copy(clone.PurchaseRecommendations, c.PurchaseRecommendations)
	}
	return clone
}
