package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/application/services"
	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
	"github.com/kavidoi/murallayes-production/pkg/infrastructure/events"
	csvrepo "github.com/kavidoi/murallayes-production/pkg/infrastructure/repositories/csv"
	"github.com/kavidoi/murallayes-production/pkg/infrastructure/repositories/memory"
	"github.com/kavidoi/murallayes-production/pkg/interfaces/cli/output"
)

// Config holds configuration for the order command
type Config struct {
	IngredientsFile string
	ProductsFile    string
	RecipesFile     string
	ProductID       string
	Quantity        string
	Simulate        bool
	OutputDir       string
	Format          string
	Verbose         bool
	Help            bool
}

// OrderCommand drafts a production order from a CSV scenario and reports
// its inventory feasibility. With -simulate it also walks the order
// through start and completion at the estimated quantities.
type OrderCommand struct {
	config Config
	logger *slog.Logger
}

// NewOrderCommand creates a new order command with the given configuration
func NewOrderCommand(config Config) *OrderCommand {
	level := slog.LevelWarn
	if config.Verbose {
		level = slog.LevelDebug
	}
	return &OrderCommand{
		config: config,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// Execute runs the order command
func (c *OrderCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if err := c.validateConfig(); err != nil {
		return err
	}

	quantity, err := decimal.NewFromString(c.config.Quantity)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", c.config.Quantity, err)
	}

	loader := csvrepo.NewLoader()

	ingredients, err := loader.LoadIngredients(c.config.IngredientsFile)
	if err != nil {
		return fmt.Errorf("failed to load ingredients: %w", err)
	}
	c.logger.Debug("loaded ingredients", "count", len(ingredients))

	products, err := loader.LoadProducts(c.config.ProductsFile, c.config.RecipesFile)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	c.logger.Debug("loaded products", "count", len(products))

	ingredientRepo := memory.NewIngredientRepository(len(ingredients))
	if err := ingredientRepo.LoadIngredients(ingredients); err != nil {
		return fmt.Errorf("failed to load ingredient repository: %w", err)
	}
	productRepo := memory.NewProductRepository(len(products))
	if err := productRepo.LoadProducts(products); err != nil {
		return fmt.Errorf("failed to load product repository: %w", err)
	}
	orderRepo := memory.NewOrderRepository()
	eventStore := events.NewInMemoryStore()

	service := services.NewOrderService(productRepo, ingredientRepo, orderRepo, eventStore)

	order, err := service.CreateOrder(ctx, services.CreateOrderInput{
		ProductID:       entities.ProductID(c.config.ProductID),
		PlannedQuantity: quantity,
		CreatedBy:       "cli",
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	c.logger.Info("order created",
		"order_id", order.ID,
		"product", order.ProductID,
		"estimated_cost", order.EstimatedCost.String(),
		"has_enough_inventory", order.InventoryCheck.HasEnoughInventory)

	if c.config.Simulate {
		if _, err := service.StartOrder(ctx, order.ID, "cli"); err != nil {
			return fmt.Errorf("failed to start order: %w", err)
		}
		c.logger.Info("order started", "order_id", order.ID)

		completed, err := service.CompleteOrder(ctx, order.ID, "cli", nil, decimal.Zero, "LOT-SIM")
		if err != nil {
			return fmt.Errorf("failed to complete order: %w", err)
		}
		c.logger.Info("order completed",
			"order_id", completed.ID,
			"actual_cost", completed.ActualCost.String())
	}

	summary, err := service.GetOrderSummary(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("failed to summarize order: %w", err)
	}

	return output.Generate(summary, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	})
}

func (c *OrderCommand) validateConfig() error {
	if c.config.IngredientsFile == "" || c.config.ProductsFile == "" || c.config.RecipesFile == "" {
		return fmt.Errorf("ingredients, products, and recipes files are all required (see -help)")
	}
	if c.config.ProductID == "" {
		return fmt.Errorf("product id is required")
	}
	if c.config.Quantity == "" {
		return fmt.Errorf("quantity is required")
	}
	return nil
}

func (c *OrderCommand) showHelp() {
	fmt.Println(`production - draft and simulate production orders from CSV scenarios

Usage:
  production -ingredients <file> -products <file> -recipes <file> -product <id> -quantity <n> [flags]

Flags:
  -ingredients  Path to ingredients CSV (ingredient_id,name,unit,current_stock,unit_cost,supplier_id)
  -products     Path to products CSV (product_id,name,batch_yield)
  -recipes      Path to recipes CSV (product_id,ingredient_id,quantity_per_batch)
  -product      Product id to order
  -quantity     Planned production quantity
  -simulate     Also start and complete the order at estimated usage
  -output       Directory for JSON output (stdout when empty)
  -format       Output format: text, json
  -verbose      Enable verbose output
  -help         Show this help message`)
}
