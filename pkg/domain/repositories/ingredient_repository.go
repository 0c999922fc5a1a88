package repositories

import "github.com/kavidoi/murallayes-production/pkg/domain/entities"

// IngredientRepository provides read access to the ingredient catalog.
// The engine treats what it reads as a point-in-time snapshot; stock is
// mutated elsewhere by inventory movements.
type IngredientRepository interface {
	GetIngredient(id entities.IngredientID) (*entities.Ingredient, error)

	// GetIngredients resolves a set of ids. Unknown ids are absent from
	// the returned map rather than an error; callers decide whether a
	// missing reference is fatal.
	GetIngredients(ids []entities.IngredientID) (map[entities.IngredientID]*entities.Ingredient, error)

	GetAllIngredients() ([]*entities.Ingredient, error)
	LoadIngredients(ingredients []*entities.Ingredient) error
}
