package memory

import (
	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
	"github.com/kavidoi/murallayes-production/pkg/domain/repositories"
)

// IngredientRepository provides in-memory ingredient storage.
type IngredientRepository struct {
	ingredients []entities.Ingredient
	index       map[entities.IngredientID]int
}

// NewIngredientRepository creates a new in-memory ingredient repository.
func NewIngredientRepository(expectedIngredients int) *IngredientRepository {
	return &IngredientRepository{
		ingredients: make([]entities.Ingredient, 0, expectedIngredients),
		index:       make(map[entities.IngredientID]int, expectedIngredients),
	}
}

// Verify interface compliance
var _ repositories.IngredientRepository = (*IngredientRepository)(nil)

// LoadIngredients loads ingredients into the repository.
func (r *IngredientRepository) LoadIngredients(ingredients []*entities.Ingredient) error {
	for _, ingredient := range ingredients {
		r.AddIngredient(*ingredient)
	}
	return nil
}

// AddIngredient adds or replaces an ingredient.
func (r *IngredientRepository) AddIngredient(ingredient entities.Ingredient) {
	if i, exists := r.index[ingredient.ID]; exists {
		r.ingredients[i] = ingredient
		return
	}
	r.index[ingredient.ID] = len(r.ingredients)
	r.ingredients = append(r.ingredients, ingredient)
}

// GetIngredient returns one ingredient by id.
func (r *IngredientRepository) GetIngredient(id entities.IngredientID) (*entities.Ingredient, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, &entities.NotFoundError{Kind: "ingredient", ID: string(id)}
	}
	ingredient := r.ingredients[i]
	return &ingredient, nil
}

// GetIngredients resolves a set of ids. Unknown ids are absent from the
// returned map.
func (r *IngredientRepository) GetIngredients(ids []entities.IngredientID) (map[entities.IngredientID]*entities.Ingredient, error) {
	result := make(map[entities.IngredientID]*entities.Ingredient, len(ids))
	for _, id := range ids {
		if i, exists := r.index[id]; exists {
			ingredient := r.ingredients[i]
			result[id] = &ingredient
		}
	}
	return result, nil
}

// GetAllIngredients returns all ingredients.
func (r *IngredientRepository) GetAllIngredients() ([]*entities.Ingredient, error) {
	ingredients := make([]*entities.Ingredient, 0, len(r.ingredients))
	for i := range r.ingredients {
		ingredient := r.ingredients[i]
		ingredients = append(ingredients, &ingredient)
	}
	return ingredients, nil
}
