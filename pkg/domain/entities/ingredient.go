package entities

import "github.com/shopspring/decimal"

// IngredientID uniquely identifies a raw ingredient.
type IngredientID string

// Ingredient is a raw material tracked by stock quantity and unit cost.
// Ingredients are mutated externally by inventory movements and are
// read-only to the production engine; the engine only captures numeric
// snapshots of them at computation time.
type Ingredient struct {
	ID           IngredientID
	Name         string
	Unit         string
	CurrentStock decimal.Decimal
	UnitCost     decimal.Decimal
	SupplierID   string // preferred supplier, may be empty
}

// NewIngredient creates a validated Ingredient.
func NewIngredient(id IngredientID, name, unit string, currentStock, unitCost decimal.Decimal, supplierID string) (*Ingredient, error) {
	if id == "" {
		return nil, &ValidationError{Field: "ingredient id", Message: "cannot be empty"}
	}
	if name == "" {
		return nil, &ValidationError{Field: "ingredient name", Message: "cannot be empty"}
	}
	if currentStock.IsNegative() {
		return nil, &ValidationError{Field: "current stock", Message: "cannot be negative, got " + currentStock.String()}
	}
	if unitCost.IsNegative() {
		return nil, &ValidationError{Field: "unit cost", Message: "cannot be negative, got " + unitCost.String()}
	}

	return &Ingredient{
		ID:           id,
		Name:         name,
		Unit:         unit,
		CurrentStock: currentStock,
		UnitCost:     unitCost,
		SupplierID:   supplierID,
	}, nil
}
