package services

import (
	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
)

// ScaledLine is one recipe line scaled to a target production quantity.
type ScaledLine struct {
	IngredientID entities.IngredientID
	Needed       decimal.Decimal
}

// RecipeScaler scales a product's recipe from its reference batch to an
// arbitrary target quantity. Scaling is pure and deterministic; it is
// safe to call repeatedly with the same inputs.
type RecipeScaler struct{}

// NewRecipeScaler creates a new recipe scaler.
func NewRecipeScaler() *RecipeScaler {
	return &RecipeScaler{}
}

// Scale returns, per recipe line, the ingredient quantity one production
// run of targetQuantity consumes:
//
//	needed = quantityPerBatch * targetQuantity / batchYield
//
// Lines are returned in recipe order.
func (s *RecipeScaler) Scale(product *entities.Product, targetQuantity decimal.Decimal) ([]ScaledLine, error) {
	if product == nil {
		return nil, &entities.ValidationError{Field: "product", Message: "cannot be nil"}
	}
	if !product.BatchYield.IsPositive() {
		return nil, &entities.InvalidProductError{
			ProductID: product.ID,
			Reason:    "batch yield must be positive, got " + product.BatchYield.String(),
		}
	}
	if !targetQuantity.IsPositive() {
		return nil, &entities.ValidationError{
			Field:   "target quantity",
			Message: "must be positive, got " + targetQuantity.String(),
		}
	}

	batches := targetQuantity.Div(product.BatchYield)
	lines := make([]ScaledLine, 0, len(product.Recipe))
	for _, line := range product.Recipe {
		lines = append(lines, ScaledLine{
			IngredientID: line.IngredientID,
			Needed:       line.QuantityPerBatch.Mul(batches),
		})
	}
	return lines, nil
}
