package entities

import "github.com/shopspring/decimal"

// UsageLine records actual consumption of one ingredient against the
// estimate it was seeded from. Variance is actual minus estimated;
// VariancePercent is zero when the estimate is zero.
type UsageLine struct {
	IngredientID      IngredientID    `json:"ingredient_id"`
	IngredientName    string          `json:"ingredient_name,omitempty"`
	EstimatedQuantity decimal.Decimal `json:"estimated_quantity"`
	ActualQuantity    decimal.Decimal `json:"actual_quantity"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
	ActualCost        decimal.Decimal `json:"actual_cost"`
	Variance          decimal.Decimal `json:"variance"`
	VariancePercent   decimal.Decimal `json:"variance_percent"`
}

// ActualUsageInput is the operator-reported final consumption for one
// ingredient, supplied at completion. Lines omitted by the operator
// default to their estimated quantity.
type ActualUsageInput struct {
	IngredientID   IngredientID    `json:"ingredient_id"`
	ActualQuantity decimal.Decimal `json:"actual_quantity"`
}
