package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kavidoi/murallayes-production/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		ingredientsFile = flag.String("ingredients", "", "Path to ingredients CSV file")
		productsFile    = flag.String("products", "", "Path to products CSV file")
		recipesFile     = flag.String("recipes", "", "Path to recipes CSV file")
		productID       = flag.String("product", "", "Product id to order")
		quantity        = flag.String("quantity", "", "Planned production quantity")
		simulate        = flag.Bool("simulate", false, "Start and complete the order at estimated usage")
		outputDir       = flag.String("output", "", "Output directory for results (optional)")
		format          = flag.String("format", "text", "Output format: text, json")
		verbose         = flag.Bool("verbose", false, "Enable verbose output")
		help            = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		IngredientsFile: *ingredientsFile,
		ProductsFile:    *productsFile,
		RecipesFile:     *recipesFile,
		ProductID:       *productID,
		Quantity:        *quantity,
		Simulate:        *simulate,
		OutputDir:       *outputDir,
		Format:          *format,
		Verbose:         *verbose,
		Help:            *help,
	}

	// Create and execute command
	cmd := commands.NewOrderCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
