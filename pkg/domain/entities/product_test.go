package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProduct_Validation(t *testing.T) {
	recipe := []RecipeLine{
		{IngredientID: "FLOUR", QuantityPerBatch: decimal.NewFromInt(500)},
		{IngredientID: "BUTTER", QuantityPerBatch: decimal.NewFromInt(200)},
	}

	validProduct, err := NewProduct("SOURDOUGH", "Sourdough Loaf", decimal.NewFromInt(10), recipe)
	if err != nil {
		t.Fatalf("Expected valid product creation to succeed: %v", err)
	}
	if len(validProduct.Recipe) != 2 {
		t.Errorf("Expected 2 recipe lines, got %d", len(validProduct.Recipe))
	}

	testCases := []struct {
		name        string
		id          ProductID
		productName string
		batchYield  decimal.Decimal
		recipe      []RecipeLine
		expectError string
	}{
		{
			"empty product id",
			"", "Sourdough Loaf", decimal.NewFromInt(10), recipe,
			"invalid product id: cannot be empty",
		},
		{
			"empty product name",
			"SOURDOUGH", "", decimal.NewFromInt(10), recipe,
			"invalid product name: cannot be empty",
		},
		{
			"zero batch yield",
			"SOURDOUGH", "Sourdough Loaf", decimal.Zero, recipe,
			"invalid product SOURDOUGH: batch yield must be positive, got 0",
		},
		{
			"negative batch yield",
			"SOURDOUGH", "Sourdough Loaf", decimal.NewFromInt(-1), recipe,
			"invalid product SOURDOUGH: batch yield must be positive, got -1",
		},
		{
			"zero quantity per batch",
			"SOURDOUGH", "Sourdough Loaf", decimal.NewFromInt(10),
			[]RecipeLine{{IngredientID: "FLOUR", QuantityPerBatch: decimal.Zero}},
			"invalid quantity per batch: must be positive, got 0",
		},
		{
			"duplicate ingredient",
			"SOURDOUGH", "Sourdough Loaf", decimal.NewFromInt(10),
			[]RecipeLine{
				{IngredientID: "FLOUR", QuantityPerBatch: decimal.NewFromInt(500)},
				{IngredientID: "FLOUR", QuantityPerBatch: decimal.NewFromInt(100)},
			},
			"invalid recipe: duplicate ingredient reference: FLOUR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProduct(tc.id, tc.productName, tc.batchYield, tc.recipe)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestNewProduct_NonPositiveYieldIsInvalidProductError(t *testing.T) {
	_, err := NewProduct("BROWNIE", "Brownie", decimal.Zero, nil)
	var invalidProduct *InvalidProductError
	if !errors.As(err, &invalidProduct) {
		t.Fatalf("Expected InvalidProductError, got %T: %v", err, err)
	}
	if invalidProduct.ProductID != "BROWNIE" {
		t.Errorf("Expected product id BROWNIE in error, got %s", invalidProduct.ProductID)
	}
}

func TestNewIngredient_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		id          IngredientID
		ingName     string
		stock       decimal.Decimal
		unitCost    decimal.Decimal
		expectError string
	}{
		{"empty id", "", "Flour", decimal.NewFromInt(5), decimal.NewFromInt(100), "invalid ingredient id: cannot be empty"},
		{"empty name", "FLOUR", "", decimal.NewFromInt(5), decimal.NewFromInt(100), "invalid ingredient name: cannot be empty"},
		{"negative stock", "FLOUR", "Flour", decimal.NewFromInt(-1), decimal.NewFromInt(100), "invalid current stock: cannot be negative, got -1"},
		{"negative unit cost", "FLOUR", "Flour", decimal.NewFromInt(5), decimal.NewFromInt(-2), "invalid unit cost: cannot be negative, got -2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewIngredient(tc.id, tc.ingName, "kg", tc.stock, tc.unitCost, "")
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}

	ing, err := NewIngredient("FLOUR", "Flour", "kg", decimal.Zero, decimal.Zero, "SUP-01")
	if err != nil {
		t.Fatalf("Expected zero stock and zero cost to be valid: %v", err)
	}
	if ing.SupplierID != "SUP-01" {
		t.Errorf("Expected supplier SUP-01, got %s", ing.SupplierID)
	}
}

func TestUnknownIngredientError_MatchesNotFound(t *testing.T) {
	var err error = &UnknownIngredientError{IngredientID: "COCOA"}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatal("Expected UnknownIngredientError to match NotFoundError")
	}
	if notFound.ID != "COCOA" {
		t.Errorf("Expected ingredient id COCOA, got %s", notFound.ID)
	}
}
