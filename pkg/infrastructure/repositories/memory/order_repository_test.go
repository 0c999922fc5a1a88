package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
)

func TestOrderRepository_Isolation(t *testing.T) {
	repo := NewOrderRepository()
	order := &entities.ProductionOrder{
		ID:              "ord-1",
		ProductID:       "BROWNIE",
		PlannedQuantity: decimal.NewFromInt(20),
		Status:          entities.StatusPlanned,
		CreatedAt:       time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		InventoryCheck: &entities.InventoryCheck{
			Lines: []entities.InventoryCheckLine{{IngredientID: "COCOA", Needed: decimal.NewFromInt(16)}},
		},
	}
	if err := repo.SaveOrder(order); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}

	// Mutating the caller's copy after save must not touch the store.
	order.Status = entities.StatusCancelled
	order.InventoryCheck.Lines[0].Needed = decimal.NewFromInt(99)

	stored, err := repo.GetOrder("ord-1")
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if stored.Status != entities.StatusPlanned {
		t.Error("Expected stored status to be isolated from caller mutation")
	}
	if !stored.InventoryCheck.Lines[0].Needed.Equal(decimal.NewFromInt(16)) {
		t.Error("Expected stored check to be isolated from caller mutation")
	}

	// Mutating a fetched copy must not touch the store either.
	stored.Status = entities.StatusInProgress
	again, _ := repo.GetOrder("ord-1")
	if again.Status != entities.StatusPlanned {
		t.Error("Expected fetched orders to be independent copies")
	}
}

func TestOrderRepository_NotFound(t *testing.T) {
	repo := NewOrderRepository()
	_, err := repo.GetOrder("missing")
	var notFound *entities.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestOrderRepository_GetAllOrders_SortedByCreation(t *testing.T) {
	repo := NewOrderRepository()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"ord-b", "ord-a", "ord-c"} {
		if err := repo.SaveOrder(&entities.ProductionOrder{
			ID:              id,
			ProductID:       "BROWNIE",
			PlannedQuantity: decimal.NewFromInt(1),
			Status:          entities.StatusPlanned,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("SaveOrder failed: %v", err)
		}
	}

	orders, err := repo.GetAllOrders()
	if err != nil {
		t.Fatalf("GetAllOrders failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("Expected 3 orders, got %d", len(orders))
	}
	if orders[0].ID != "ord-b" || orders[1].ID != "ord-a" || orders[2].ID != "ord-c" {
		t.Errorf("Expected creation order, got %s, %s, %s", orders[0].ID, orders[1].ID, orders[2].ID)
	}
}

func TestOrderRepository_RejectsEmptyID(t *testing.T) {
	repo := NewOrderRepository()
	err := repo.SaveOrder(&entities.ProductionOrder{})
	var validation *entities.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
}
