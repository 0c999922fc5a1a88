package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kavidoi/murallayes-production/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders an order summary in the specified format.
func Generate(summary *dto.OrderSummary, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(summary, config)
	case "json":
		return generateJSONOutput(summary, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(summary *dto.OrderSummary, config Config) error {
	fmt.Printf("Production Order %s\n", summary.OrderID)
	fmt.Printf("==================\n\n")

	fmt.Printf("Product:          %s (%s)\n", summary.ProductName, summary.ProductID)
	fmt.Printf("Status:           %s\n", summary.Status)
	fmt.Printf("Planned Quantity: %s\n", summary.PlannedQuantity)
	fmt.Printf("Estimated Cost:   %s\n", summary.EstimatedCost)
	if summary.Status == "COMPLETED" {
		fmt.Printf("Actual Cost:      %s (additional: %s, variance: %s)\n",
			summary.ActualCost, summary.AdditionalCosts, summary.CostVariance)
	}
	if summary.LotCode != "" {
		fmt.Printf("Lot Code:         %s\n", summary.LotCode)
	}
	fmt.Println()

	if summary.InventoryCheck != nil {
		if summary.HasEnoughInventory {
			fmt.Printf("Inventory: sufficient stock for all %d ingredients\n\n", len(summary.InventoryCheck.Lines))
		} else {
			fmt.Printf("Inventory: %d ingredient(s) short, shortage cost %s\n\n", summary.ShortageCount, summary.TotalShortageCost)
		}

		fmt.Printf("%-12s %-20s %-10s %-10s %-10s %-12s\n",
			"Ingredient", "Name", "Needed", "Available", "Shortage", "Line Cost")
		fmt.Printf("%-12s %-20s %-10s %-10s %-10s %-12s\n",
			"------------", "--------------------", "----------", "----------", "----------", "------------")
		for _, line := range summary.InventoryCheck.Lines {
			fmt.Printf("%-12s %-20s %-10s %-10s %-10s %-12s\n",
				line.IngredientID,
				line.IngredientName,
				line.Needed,
				line.Available,
				line.Shortage,
				line.EstimatedCost)
		}
		fmt.Println()

		if len(summary.InventoryCheck.PurchaseRecommendations) > 0 {
			fmt.Printf("Purchase Recommendations:\n")
			for _, rec := range summary.InventoryCheck.PurchaseRecommendations {
				fmt.Printf("  %s: buy %s (est. %s)", rec.IngredientName, rec.QuantityToBuy, rec.EstimatedCost)
				if rec.SupplierID != "" {
					fmt.Printf(" from %s", rec.SupplierID)
				}
				fmt.Println()
			}
			fmt.Println()
		}
	}

	if config.Verbose && len(summary.ActualUsage) > 0 {
		fmt.Printf("Actual Usage:\n")
		fmt.Printf("%-12s %-12s %-12s %-12s %-12s\n",
			"Ingredient", "Estimated", "Actual", "Variance", "Variance %")
		fmt.Printf("%-12s %-12s %-12s %-12s %-12s\n",
			"------------", "------------", "------------", "------------", "------------")
		for _, line := range summary.ActualUsage {
			fmt.Printf("%-12s %-12s %-12s %-12s %-12s\n",
				line.IngredientID,
				line.EstimatedQuantity,
				line.ActualQuantity,
				line.Variance,
				line.VariancePercent)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates machine-readable JSON output
func generateJSONOutput(summary *dto.OrderSummary, config Config) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(config.OutputDir, fmt.Sprintf("order_%s.json", summary.OrderID))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Results written to %s\n", path)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
