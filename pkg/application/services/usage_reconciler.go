package services

import (
	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
)

var oneHundred = decimal.NewFromInt(100)

// UsageReconciler rolls up actual ingredient consumption and cost at
// execution time. It is pure with respect to its inputs and never
// deducts stock; stock movement on completion belongs to the external
// inventory ledger.
type UsageReconciler struct{}

// NewUsageReconciler creates a new usage reconciler.
func NewUsageReconciler() *UsageReconciler {
	return &UsageReconciler{}
}

// Reconcile matches operator-reported consumption against the order's
// seeded usage estimate and returns the finalized usage lines plus the
// order's actual cost (sum of line costs plus additionalCosts).
//
// Only ingredients present in the estimate are reconciled; a final-usage
// entry for anything else is not accepted into the order. Estimate lines
// the operator omitted keep their current actual quantity, which
// defaults to the estimate at start. Line costs are computed at the unit
// costs in the supplied ingredient snapshot.
func (r *UsageReconciler) Reconcile(
	estimate []entities.UsageLine,
	finalUsage []entities.ActualUsageInput,
	additionalCosts decimal.Decimal,
	ingredients map[entities.IngredientID]*entities.Ingredient,
) ([]entities.UsageLine, decimal.Decimal, error) {
	reported := make(map[entities.IngredientID]decimal.Decimal, len(finalUsage))
	for _, input := range finalUsage {
		if input.IngredientID == "" {
			return nil, decimal.Zero, &entities.ValidationError{Field: "ingredient id", Message: "cannot be empty"}
		}
		if input.ActualQuantity.IsNegative() {
			return nil, decimal.Zero, &entities.ValidationError{
				Field:   "actual quantity",
				Message: "cannot be negative, got " + input.ActualQuantity.String(),
			}
		}
		reported[input.IngredientID] = input.ActualQuantity
	}

	usage := make([]entities.UsageLine, 0, len(estimate))
	totalCost := additionalCosts
	for _, line := range estimate {
		ingredient, ok := ingredients[line.IngredientID]
		if !ok || ingredient == nil {
			return nil, decimal.Zero, &entities.UnknownIngredientError{IngredientID: line.IngredientID}
		}

		actualQty := line.ActualQuantity
		if qty, ok := reported[line.IngredientID]; ok {
			actualQty = qty
		}

		variance := actualQty.Sub(line.EstimatedQuantity)
		variancePercent := decimal.Zero
		if !line.EstimatedQuantity.IsZero() {
			variancePercent = variance.Div(line.EstimatedQuantity).Mul(oneHundred)
		}

		actualCost := actualQty.Mul(ingredient.UnitCost)
		usage = append(usage, entities.UsageLine{
			IngredientID:      line.IngredientID,
			IngredientName:    ingredient.Name,
			EstimatedQuantity: line.EstimatedQuantity,
			ActualQuantity:    actualQty,
			EstimatedCost:     line.EstimatedCost,
			ActualCost:        actualCost,
			Variance:          variance,
			VariancePercent:   variancePercent,
		})
		totalCost = totalCost.Add(actualCost)
	}

	return usage, totalCost, nil
}
