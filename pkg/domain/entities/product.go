package entities

import "github.com/shopspring/decimal"

// ProductID uniquely identifies a sellable product.
type ProductID string

// RecipeLine fixes how much of one ingredient a single reference batch of
// a product consumes.
type RecipeLine struct {
	IngredientID     IngredientID
	QuantityPerBatch decimal.Decimal
}

// NewRecipeLine creates a validated RecipeLine.
func NewRecipeLine(ingredientID IngredientID, quantityPerBatch decimal.Decimal) (*RecipeLine, error) {
	if ingredientID == "" {
		return nil, &ValidationError{Field: "ingredient id", Message: "cannot be empty"}
	}
	if !quantityPerBatch.IsPositive() {
		return nil, &ValidationError{Field: "quantity per batch", Message: "must be positive, got " + quantityPerBatch.String()}
	}

	return &RecipeLine{
		IngredientID:     ingredientID,
		QuantityPerBatch: quantityPerBatch,
	}, nil
}

// Product describes a producible good: how much one execution of the
// recipe yields, and the ordered ingredient lines that execution consumes.
type Product struct {
	ID         ProductID
	Name       string
	BatchYield decimal.Decimal
	Recipe     []RecipeLine
}

// NewProduct creates a validated Product. Ingredient references must be
// unique within the recipe.
func NewProduct(id ProductID, name string, batchYield decimal.Decimal, recipe []RecipeLine) (*Product, error) {
	if id == "" {
		return nil, &ValidationError{Field: "product id", Message: "cannot be empty"}
	}
	if name == "" {
		return nil, &ValidationError{Field: "product name", Message: "cannot be empty"}
	}
	if !batchYield.IsPositive() {
		return nil, &InvalidProductError{ProductID: id, Reason: "batch yield must be positive, got " + batchYield.String()}
	}

	seen := make(map[IngredientID]bool, len(recipe))
	for _, line := range recipe {
		if line.IngredientID == "" {
			return nil, &ValidationError{Field: "ingredient id", Message: "cannot be empty"}
		}
		if !line.QuantityPerBatch.IsPositive() {
			return nil, &ValidationError{Field: "quantity per batch", Message: "must be positive, got " + line.QuantityPerBatch.String()}
		}
		if seen[line.IngredientID] {
			return nil, &ValidationError{Field: "recipe", Message: "duplicate ingredient reference: " + string(line.IngredientID)}
		}
		seen[line.IngredientID] = true
	}

	return &Product{
		ID:         id,
		Name:       name,
		BatchYield: batchYield,
		Recipe:     recipe,
	}, nil
}

// IngredientIDs returns the ingredient references of the recipe in order.
func (p *Product) IngredientIDs() []IngredientID {
	ids := make([]IngredientID, 0, len(p.Recipe))
	for _, line := range p.Recipe {
		ids = append(ids, line.IngredientID)
	}
	return ids
}
