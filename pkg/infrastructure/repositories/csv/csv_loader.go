package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
)

// Loader handles loading production scenario data from CSV files.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadIngredients loads the ingredient catalog from a CSV file.
func (l *Loader) LoadIngredients(filename string) ([]*entities.Ingredient, error) {
	records, err := readAll(filename, "ingredients")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"ingredient_id", "name", "unit", "current_stock", "unit_cost", "supplier_id"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("ingredients CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var ingredients []*entities.Ingredient
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("ingredients CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		ingredient, err := parseIngredient(record)
		if err != nil {
			return nil, fmt.Errorf("ingredients CSV row %d: %w", i+2, err)
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients, nil
}

// LoadProducts loads products and their recipes from two CSV files: one
// row per product, and one row per recipe line keyed by product id.
func (l *Loader) LoadProducts(productsFile, recipesFile string) ([]*entities.Product, error) {
	productRecords, err := readAll(productsFile, "products")
	if err != nil {
		return nil, err
	}
	productHeader := []string{"product_id", "name", "batch_yield"}
	if !validateHeader(productRecords[0], productHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", productHeader, productRecords[0])
	}

	recipeRecords, err := readAll(recipesFile, "recipes")
	if err != nil {
		return nil, err
	}
	recipeHeader := []string{"product_id", "ingredient_id", "quantity_per_batch"}
	if !validateHeader(recipeRecords[0], recipeHeader) {
		return nil, fmt.Errorf("recipes CSV header mismatch. Expected: %v, Got: %v", recipeHeader, recipeRecords[0])
	}

	recipes := make(map[entities.ProductID][]entities.RecipeLine)
	for i, record := range recipeRecords[1:] {
		if len(record) != len(recipeHeader) {
			return nil, fmt.Errorf("recipes CSV row %d: expected %d columns, got %d", i+2, len(recipeHeader), len(record))
		}
		productID := entities.ProductID(record[0])
		quantity, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("recipes CSV row %d: invalid quantity_per_batch %q: %w", i+2, record[2], err)
		}
		line, err := entities.NewRecipeLine(entities.IngredientID(record[1]), quantity)
		if err != nil {
			return nil, fmt.Errorf("recipes CSV row %d: %w", i+2, err)
		}
		recipes[productID] = append(recipes[productID], *line)
	}

	var products []*entities.Product
	for i, record := range productRecords[1:] {
		if len(record) != len(productHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(productHeader), len(record))
		}
		productID := entities.ProductID(record[0])
		batchYield, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: invalid batch_yield %q: %w", i+2, record[2], err)
		}
		product, err := entities.NewProduct(productID, record[1], batchYield, recipes[productID])
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}
		products = append(products, product)
	}

	return products, nil
}

func readAll(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}
	return records, nil
}

func parseIngredient(record []string) (*entities.Ingredient, error) {
	stock, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid current_stock %q: %w", record[3], err)
	}
	unitCost, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid unit_cost %q: %w", record[4], err)
	}
	return entities.NewIngredient(
		entities.IngredientID(record[0]),
		record[1],
		record[2],
		stock,
		unitCost,
		record[5],
	)
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, column := range expected {
		if header[i] != column {
			return false
		}
	}
	return true
}
