package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
	"github.com/kavidoi/murallayes-production/pkg/domain/services"
)

// CheckConfig holds the purchase recommendation heuristics. The console
// historically buys twice the shortage and never less than ten units;
// both knobs are overridable per checker instance.
type CheckConfig struct {
	// ShortageBuyMultiplier scales a shortage into a recommended buy quantity.
	ShortageBuyMultiplier decimal.Decimal
	// MinimumReorderQty is the floor applied to every recommended buy.
	MinimumReorderQty decimal.Decimal
}

// DefaultCheckConfig returns the console's standard heuristics.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		ShortageBuyMultiplier: decimal.NewFromInt(2),
		MinimumReorderQty:     decimal.NewFromInt(10),
	}
}

// InventoryChecker reconciles a product's scaled recipe against current
// ingredient stock, producing the complete feasibility picture embedded
// in a production order.
type InventoryChecker struct {
	scaler *services.RecipeScaler
	config CheckConfig
}

// NewInventoryChecker creates a checker with the default heuristics.
func NewInventoryChecker() *InventoryChecker {
	return NewInventoryCheckerWithConfig(DefaultCheckConfig())
}

// NewInventoryCheckerWithConfig creates a checker with custom heuristics.
func NewInventoryCheckerWithConfig(config CheckConfig) *InventoryChecker {
	return &InventoryChecker{
		scaler: services.NewRecipeScaler(),
		config: config,
	}
}

// Check scales the product's recipe to targetQuantity and reconciles it
// against the ingredient snapshot. Every recipe line must resolve in the
// snapshot or the check fails with UnknownIngredientError.
//
// The result is always a complete replacement InventoryCheck; callers
// embed it wholesale so no stale shortage line can survive a
// recomputation. The checker reads the snapshot once and holds no locks:
// two checks racing a concurrent stock movement can observe different
// ingredient states, and callers needing stronger consistency must
// re-run the check immediately before committing a transition.
func (c *InventoryChecker) Check(
	ctx context.Context,
	product *entities.Product,
	targetQuantity decimal.Decimal,
	ingredients map[entities.IngredientID]*entities.Ingredient,
) (*entities.InventoryCheck, error) {
	scaled, err := c.scaler.Scale(product, targetQuantity)
	if err != nil {
		return nil, err
	}

	check := &entities.InventoryCheck{
		Lines:              make([]entities.InventoryCheckLine, 0, len(scaled)),
		HasEnoughInventory: true,
		CheckedAt:          time.Now().UTC(),
	}

	var recommendations []entities.PurchaseRecommendation
	for _, line := range scaled {
		ingredient, ok := ingredients[line.IngredientID]
		if !ok || ingredient == nil {
			return nil, &entities.UnknownIngredientError{IngredientID: line.IngredientID}
		}

		shortage := line.Needed.Sub(ingredient.CurrentStock)
		if shortage.IsNegative() {
			shortage = decimal.Zero
		}

		check.Lines = append(check.Lines, entities.InventoryCheckLine{
			IngredientID:   ingredient.ID,
			IngredientName: ingredient.Name,
			Unit:           ingredient.Unit,
			Needed:         line.Needed,
			Available:      ingredient.CurrentStock,
			Shortage:       shortage,
			UnitCost:       ingredient.UnitCost,
			ShortageCost:   shortage.Mul(ingredient.UnitCost),
			EstimatedCost:  line.Needed.Mul(ingredient.UnitCost),
		})

		if shortage.IsPositive() {
			check.HasEnoughInventory = false
			quantityToBuy := shortage.Mul(c.config.ShortageBuyMultiplier)
			if quantityToBuy.LessThan(c.config.MinimumReorderQty) {
				quantityToBuy = c.config.MinimumReorderQty
			}
			recommendations = append(recommendations, entities.PurchaseRecommendation{
				IngredientID:   ingredient.ID,
				IngredientName: ingredient.Name,
				SupplierID:     ingredient.SupplierID,
				QuantityToBuy:  quantityToBuy,
				EstimatedCost:  quantityToBuy.Mul(ingredient.UnitCost),
			})
		}
	}

	// Nil, not empty, when fully stocked: the recommendations block is
	// omitted entirely from the serialized order.
	check.PurchaseRecommendations = recommendations

	return check, nil
}
