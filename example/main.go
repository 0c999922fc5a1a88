package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/application/services"
	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
	"github.com/kavidoi/murallayes-production/pkg/infrastructure/events"
	"github.com/kavidoi/murallayes-production/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	ingredientRepo := memory.NewIngredientRepository(4)
	productRepo := memory.NewProductRepository(1)
	orderRepo := memory.NewOrderRepository()
	eventStore := events.NewInMemoryStore()

	// Set up a small bakery catalog
	if err := setupBakeryCatalog(ingredientRepo, productRepo); err != nil {
		fmt.Printf("❌ Catalog setup failed: %v\n", err)
		return
	}

	service := services.NewOrderService(productRepo, ingredientRepo, orderRepo, eventStore)

	fmt.Println("🍫 Planning a brownie production run...")
	fmt.Println()

	// Draft an order for 20 brownies
	order, err := service.CreateOrder(ctx, services.CreateOrderInput{
		ProductID:       "BROWNIE",
		PlannedQuantity: decimal.NewFromInt(20),
		Priority:        "high",
		Assignee:        "ana",
		CreatedBy:       "demo",
	})
	if err != nil {
		fmt.Printf("❌ Order creation failed: %v\n", err)
		return
	}

	fmt.Println("📝 Order drafted:")
	fmt.Printf("  ID: %s\n", order.ID)
	fmt.Printf("  Status: %s\n", order.Status)
	fmt.Printf("  Estimated cost: %s\n", order.EstimatedCost.String())
	fmt.Printf("  Enough inventory: %t\n", order.InventoryCheck.HasEnoughInventory)
	fmt.Println()

	// Show shortages and what to buy
	if len(order.InventoryCheck.PurchaseRecommendations) > 0 {
		fmt.Println("🚨 Purchase recommendations:")
		for _, rec := range order.InventoryCheck.PurchaseRecommendations {
			fmt.Printf("  %s (%s): buy %s for %s from %s\n",
				rec.IngredientName,
				rec.IngredientID,
				rec.QuantityToBuy.String(),
				rec.EstimatedCost.String(),
				rec.SupplierID)
		}
		fmt.Println()
	}

	// Start production
	if _, err := service.StartOrder(ctx, order.ID, "ana"); err != nil {
		fmt.Printf("❌ Start failed: %v\n", err)
		return
	}
	fmt.Println("🏭 Production started.")
	fmt.Println()

	// Complete with real consumption slightly under the estimate
	completed, err := service.CompleteOrder(ctx, order.ID, "ana",
		[]entities.ActualUsageInput{
			{IngredientID: "COCOA", ActualQuantity: decimal.NewFromInt(15)},
		},
		decimal.NewFromInt(200), // packaging and labor
		"LOT-2026-001",
	)
	if err != nil {
		fmt.Printf("❌ Completion failed: %v\n", err)
		return
	}

	fmt.Println("📊 Reconciliation:")
	for _, line := range completed.ActualUsage {
		fmt.Printf("  %s: estimated %s, used %s (variance %s, %s%%)\n",
			line.IngredientName,
			line.EstimatedQuantity.String(),
			line.ActualQuantity.String(),
			line.Variance.String(),
			line.VariancePercent.String())
	}
	fmt.Printf("  Estimated cost: %s\n", completed.EstimatedCost.String())
	fmt.Printf("  Actual cost:    %s\n", completed.ActualCost.String())
	fmt.Println()

	// Replay the order's event stream
	stream, err := eventStore.Read(completed.ID)
	if err == nil {
		fmt.Println("📜 Event stream:")
		for _, event := range stream {
			fmt.Printf("  v%d %s\n", event.Version, event.Type)
		}
		fmt.Println()
	}

	fmt.Println("✅ Production run complete!")
}

func setupBakeryCatalog(ingredientRepo *memory.IngredientRepository, productRepo *memory.ProductRepository) error {
	cocoa, err := entities.NewIngredient(
		"COCOA",
		"Cocoa Powder",
		"kg",
		decimal.NewFromInt(5),
		decimal.NewFromInt(100),
		"SUP-IMPORT",
	)
	if err != nil {
		return err
	}
	if err := ingredientRepo.LoadIngredients([]*entities.Ingredient{cocoa}); err != nil {
		return err
	}

	line, err := entities.NewRecipeLine("COCOA", decimal.NewFromInt(8))
	if err != nil {
		return err
	}
	brownie, err := entities.NewProduct(
		"BROWNIE",
		"Chocolate Brownie",
		decimal.NewFromInt(10), // one batch yields 10 units
		[]entities.RecipeLine{*line},
	)
	if err != nil {
		return err
	}
	return productRepo.LoadProducts([]*entities.Product{brownie})
}
