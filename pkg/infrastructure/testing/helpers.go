package testing

import (
	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
	"github.com/kavidoi/murallayes-production/pkg/infrastructure/repositories/memory"
)

// BuildBakeryTestData builds the bakery scenario used across the service
// tests: a small ingredient catalog and two products, one fully stocked
// and one guaranteed to come up short.
func BuildBakeryTestData() (*memory.IngredientRepository, *memory.ProductRepository, *memory.OrderRepository) {
	ingredientRepo := memory.NewIngredientRepository(5)
	productRepo := memory.NewProductRepository(2)
	orderRepo := memory.NewOrderRepository()

	ingredients := []*entities.Ingredient{
		{
			ID:           "FLOUR",
			Name:         "Wheat Flour",
			Unit:         "kg",
			CurrentStock: decimal.NewFromInt(100),
			UnitCost:     decimal.NewFromInt(2),
			SupplierID:   "SUP-MOLINO",
		},
		{
			ID:           "BUTTER",
			Name:         "Butter",
			Unit:         "kg",
			CurrentStock: decimal.NewFromInt(30),
			UnitCost:     decimal.NewFromInt(8),
			SupplierID:   "SUP-LACTEOS",
		},
		{
			ID:           "SUGAR",
			Name:         "Sugar",
			Unit:         "kg",
			CurrentStock: decimal.NewFromInt(50),
			UnitCost:     decimal.NewFromInt(3),
			SupplierID:   "SUP-MOLINO",
		},
		{
			// The scarce ingredient: stock 5, unit cost 100, so the
			// brownie order below produces the canonical shortage case.
			ID:           "COCOA",
			Name:         "Cocoa Powder",
			Unit:         "kg",
			CurrentStock: decimal.NewFromInt(5),
			UnitCost:     decimal.NewFromInt(100),
			SupplierID:   "SUP-IMPORT",
		},
	}
	_ = ingredientRepo.LoadIngredients(ingredients)

	products := []*entities.Product{
		{
			ID:         "SOURDOUGH",
			Name:       "Sourdough Loaf",
			BatchYield: decimal.NewFromInt(10),
			Recipe: []entities.RecipeLine{
				{IngredientID: "FLOUR", QuantityPerBatch: decimal.NewFromInt(8)},
				{IngredientID: "BUTTER", QuantityPerBatch: decimal.NewFromInt(1)},
			},
		},
		{
			// One batch of 10 brownies takes 8 kg of cocoa; at 20 units
			// planned that is 16 kg needed against 5 in stock.
			ID:         "BROWNIE",
			Name:       "Chocolate Brownie",
			BatchYield: decimal.NewFromInt(10),
			Recipe: []entities.RecipeLine{
				{IngredientID: "COCOA", QuantityPerBatch: decimal.NewFromInt(8)},
			},
		},
	}
	_ = productRepo.LoadProducts(products)

	return ingredientRepo, productRepo, orderRepo
}

// IngredientSnapshot resolves a repository's full catalog into the
// snapshot map the checker and reconciler consume.
func IngredientSnapshot(repo *memory.IngredientRepository) map[entities.IngredientID]*entities.Ingredient {
	all, _ := repo.GetAllIngredients()
	snapshot := make(map[entities.IngredientID]*entities.Ingredient, len(all))
	for _, ingredient := range all {
		snapshot[ingredient.ID] = ingredient
	}
	return snapshot
}
