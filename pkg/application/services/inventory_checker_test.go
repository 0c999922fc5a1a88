package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
)

func cocoaSnapshot(stock int64) map[entities.IngredientID]*entities.Ingredient {
	return map[entities.IngredientID]*entities.Ingredient{
		"COCOA": {
			ID:           "COCOA",
			Name:         "Cocoa Powder",
			Unit:         "kg",
			CurrentStock: decimal.NewFromInt(stock),
			UnitCost:     decimal.NewFromInt(100),
			SupplierID:   "SUP-IMPORT",
		},
	}
}

func brownieProduct(t *testing.T) *entities.Product {
	t.Helper()
	product, err := entities.NewProduct("BROWNIE", "Chocolate Brownie", decimal.NewFromInt(10), []entities.RecipeLine{
		{IngredientID: "COCOA", QuantityPerBatch: decimal.NewFromInt(8)},
	})
	if err != nil {
		t.Fatalf("Failed to build product: %v", err)
	}
	return product
}

// The canonical shortage scenario: batchYield=10, quantityPerBatch=8,
// stock=5, unitCost=100, planned quantity 20.
func TestInventoryChecker_ShortageScenario(t *testing.T) {
	checker := NewInventoryChecker()
	check, err := checker.Check(context.Background(), brownieProduct(t), decimal.NewFromInt(20), cocoaSnapshot(5))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if check.HasEnoughInventory {
		t.Error("Expected insufficient inventory")
	}
	if len(check.Lines) != 1 {
		t.Fatalf("Expected 1 check line, got %d", len(check.Lines))
	}

	line := check.Lines[0]
	if !line.Needed.Equal(decimal.NewFromInt(16)) {
		t.Errorf("Expected needed 16, got %s", line.Needed)
	}
	if !line.Available.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected available 5, got %s", line.Available)
	}
	if !line.Shortage.Equal(decimal.NewFromInt(11)) {
		t.Errorf("Expected shortage 11, got %s", line.Shortage)
	}
	if !line.ShortageCost.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("Expected shortage cost 1100, got %s", line.ShortageCost)
	}
	if !line.EstimatedCost.Equal(decimal.NewFromInt(1600)) {
		t.Errorf("Expected estimated line cost 1600, got %s", line.EstimatedCost)
	}

	if len(check.PurchaseRecommendations) != 1 {
		t.Fatalf("Expected 1 purchase recommendation, got %d", len(check.PurchaseRecommendations))
	}
	rec := check.PurchaseRecommendations[0]
	if !rec.QuantityToBuy.Equal(decimal.NewFromInt(22)) {
		t.Errorf("Expected quantity to buy max(22, 10) = 22, got %s", rec.QuantityToBuy)
	}
	if !rec.EstimatedCost.Equal(decimal.NewFromInt(2200)) {
		t.Errorf("Expected recommended cost 2200, got %s", rec.EstimatedCost)
	}
	if rec.SupplierID != "SUP-IMPORT" {
		t.Errorf("Expected preferred supplier SUP-IMPORT, got %s", rec.SupplierID)
	}

	if !check.EstimatedCost().Equal(decimal.NewFromInt(1600)) {
		t.Errorf("Expected total estimated cost 1600, got %s", check.EstimatedCost())
	}
	if !check.TotalShortageCost().Equal(decimal.NewFromInt(1100)) {
		t.Errorf("Expected total shortage cost 1100, got %s", check.TotalShortageCost())
	}
}

func TestInventoryChecker_ReorderFloor(t *testing.T) {
	// Stock 15 against 16 needed leaves a shortage of 1; twice the
	// shortage is below the floor, so the floor wins.
	checker := NewInventoryChecker()
	check, err := checker.Check(context.Background(), brownieProduct(t), decimal.NewFromInt(20), cocoaSnapshot(15))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if len(check.PurchaseRecommendations) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(check.PurchaseRecommendations))
	}
	rec := check.PurchaseRecommendations[0]
	if !rec.QuantityToBuy.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected floor quantity 10, got %s", rec.QuantityToBuy)
	}
	if !rec.EstimatedCost.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected recommended cost 1000, got %s", rec.EstimatedCost)
	}
}

func TestInventoryChecker_CustomConfig(t *testing.T) {
	checker := NewInventoryCheckerWithConfig(CheckConfig{
		ShortageBuyMultiplier: decimal.NewFromInt(3),
		MinimumReorderQty:     decimal.NewFromInt(50),
	})
	check, err := checker.Check(context.Background(), brownieProduct(t), decimal.NewFromInt(20), cocoaSnapshot(5))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	// 3 * 11 = 33, below the raised floor of 50.
	if !check.PurchaseRecommendations[0].QuantityToBuy.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected 50, got %s", check.PurchaseRecommendations[0].QuantityToBuy)
	}
}

func TestInventoryChecker_SufficientStock(t *testing.T) {
	checker := NewInventoryChecker()
	check, err := checker.Check(context.Background(), brownieProduct(t), decimal.NewFromInt(20), cocoaSnapshot(40))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if !check.HasEnoughInventory {
		t.Error("Expected sufficient inventory")
	}
	line := check.Lines[0]
	if !line.Shortage.IsZero() {
		t.Errorf("Expected zero shortage, got %s", line.Shortage)
	}
	if !line.ShortageCost.IsZero() {
		t.Errorf("Expected zero shortage cost, got %s", line.ShortageCost)
	}
	if check.PurchaseRecommendations != nil {
		t.Errorf("Expected recommendations to be omitted (nil), got %v", check.PurchaseRecommendations)
	}
}

func TestInventoryChecker_UnknownIngredient(t *testing.T) {
	checker := NewInventoryChecker()
	_, err := checker.Check(context.Background(), brownieProduct(t), decimal.NewFromInt(20), map[entities.IngredientID]*entities.Ingredient{})

	var unknown *entities.UnknownIngredientError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownIngredientError, got %v", err)
	}
	if unknown.IngredientID != "COCOA" {
		t.Errorf("Expected ingredient COCOA, got %s", unknown.IngredientID)
	}
}

func TestInventoryChecker_TotalReplacement(t *testing.T) {
	// Two checks at different quantities share no state: each result is
	// complete for its own inputs.
	checker := NewInventoryChecker()
	product := brownieProduct(t)

	first, err := checker.Check(context.Background(), product, decimal.NewFromInt(20), cocoaSnapshot(5))
	if err != nil {
		t.Fatalf("First check failed: %v", err)
	}
	second, err := checker.Check(context.Background(), product, decimal.NewFromInt(5), cocoaSnapshot(5))
	if err != nil {
		t.Fatalf("Second check failed: %v", err)
	}

	if !second.Lines[0].Needed.Equal(decimal.NewFromInt(4)) {
		t.Errorf("Expected needed 4 after quantity change, got %s", second.Lines[0].Needed)
	}
	if !second.HasEnoughInventory {
		t.Error("Expected the smaller order to be coverable")
	}
	if second.PurchaseRecommendations != nil {
		t.Error("Expected no stale recommendations on the replacement check")
	}
	if !first.Lines[0].Needed.Equal(decimal.NewFromInt(16)) {
		t.Error("Expected the first check to be unaffected by the second")
	}
}
