package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kavidoi/murallayes-production/pkg/application/dto"
	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
	"github.com/kavidoi/murallayes-production/pkg/domain/repositories"
	"github.com/kavidoi/murallayes-production/pkg/infrastructure/events"
)

// OrderService owns the production order lifecycle:
//
//	PLANNED -> IN_PROGRESS -> COMPLETED
//	PLANNED | IN_PROGRESS -> CANCELLED
//
// Every operation runs to completion before returning and replaces
// derived sub-structures (inventory check, cost totals) wholesale. A
// failed operation leaves the stored order exactly as it was: mutations
// happen on a copy that is only persisted on success.
type OrderService struct {
	products    repositories.ProductRepository
	ingredients repositories.IngredientRepository
	orders      repositories.OrderRepository
	checker     *InventoryChecker
	reconciler  *UsageReconciler
	eventStore  events.Store
}

// NewOrderService creates an order service with the default inventory
// heuristics. The event store is optional; pass nil to disable
// lifecycle event publication.
func NewOrderService(
	products repositories.ProductRepository,
	ingredients repositories.IngredientRepository,
	orders repositories.OrderRepository,
	eventStore events.Store,
) *OrderService {
	return NewOrderServiceWithConfig(products, ingredients, orders, eventStore, DefaultCheckConfig())
}

// NewOrderServiceWithConfig creates an order service with custom
// inventory heuristics.
func NewOrderServiceWithConfig(
	products repositories.ProductRepository,
	ingredients repositories.IngredientRepository,
	orders repositories.OrderRepository,
	eventStore events.Store,
	config CheckConfig,
) *OrderService {
	return &OrderService{
		products:    products,
		ingredients: ingredients,
		orders:      orders,
		checker:     NewInventoryCheckerWithConfig(config),
		reconciler:  NewUsageReconciler(),
		eventStore:  eventStore,
	}
}

// CreateOrderInput carries the caller-supplied fields for a new order.
type CreateOrderInput struct {
	ProductID       entities.ProductID
	PlannedQuantity decimal.Decimal
	Priority        string
	Assignee        string
	CreatedBy       string
}

// EditOrderInput carries the fields an edit may change. Nil fields are
// left untouched.
type EditOrderInput struct {
	PlannedQuantity *decimal.Decimal
	ProductID       *entities.ProductID
	Priority        *string
	Assignee        *string
}

// CreateOrder drafts a new order in PLANNED with a freshly computed
// inventory check and estimated cost. Inventory insufficiency is
// advisory, not blocking: the order is created even when stock is short,
// and a shortage.detected event flags it.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*entities.ProductionOrder, error) {
	if !input.PlannedQuantity.IsPositive() {
		return nil, &entities.ValidationError{
			Field:   "planned quantity",
			Message: "must be positive, got " + input.PlannedQuantity.String(),
		}
	}

	product, err := s.products.GetProduct(input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s: %w", input.ProductID, err)
	}

	check, err := s.computeCheck(ctx, product, input.PlannedQuantity)
	if err != nil {
		return nil, err
	}

	order := &entities.ProductionOrder{
		ID:              uuid.NewString(),
		ProductID:       product.ID,
		ProductName:     product.Name,
		PlannedQuantity: input.PlannedQuantity,
		Status:          entities.StatusPlanned,
		Priority:        input.Priority,
		Assignee:        input.Assignee,
		EstimatedCost:   check.EstimatedCost(),
		InventoryCheck:  check,
		CreatedAt:       time.Now().UTC(),
		CreatedBy:       input.CreatedBy,
	}

	if err := s.orders.SaveOrder(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(order.ID, events.OrderCreatedEvent, events.OrderCreated{Order: *order.Clone()})
	if !check.HasEnoughInventory {
		s.publish(order.ID, events.ShortageDetectedEvent, events.ShortageDetected{OrderID: order.ID, Check: *check.Clone()})
	}

	return order, nil
}

// EditOrder changes the planned quantity and/or product of a PLANNED
// order. The inventory check and estimated cost are re-derived from
// scratch; no part of the previous check survives.
func (s *OrderService) EditOrder(ctx context.Context, orderID string, input EditOrderInput) (*entities.ProductionOrder, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entities.StatusPlanned {
		return nil, &entities.InvalidTransitionError{From: order.Status, Requested: entities.StatusPlanned}
	}

	previous := order.Clone()
	updated := order.Clone()
	if input.ProductID != nil {
		updated.ProductID = *input.ProductID
	}
	if input.PlannedQuantity != nil {
		updated.PlannedQuantity = *input.PlannedQuantity
	}
	if input.Priority != nil {
		updated.Priority = *input.Priority
	}
	if input.Assignee != nil {
		updated.Assignee = *input.Assignee
	}

	if !updated.PlannedQuantity.IsPositive() {
		return nil, &entities.ValidationError{
			Field:   "planned quantity",
			Message: "must be positive, got " + updated.PlannedQuantity.String(),
		}
	}

	product, err := s.products.GetProduct(updated.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s: %w", updated.ProductID, err)
	}
	updated.ProductName = product.Name

	check, err := s.computeCheck(ctx, product, updated.PlannedQuantity)
	if err != nil {
		return nil, err
	}
	updated.InventoryCheck = check
	updated.EstimatedCost = check.EstimatedCost()

	if err := s.orders.SaveOrder(updated); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(updated.ID, events.OrderEditedEvent, events.OrderEdited{OldOrder: *previous, NewOrder: *updated.Clone()})
	if !check.HasEnoughInventory {
		s.publish(updated.ID, events.ShortageDetectedEvent, events.ShortageDetected{OrderID: updated.ID, Check: *check.Clone()})
	}

	return updated, nil
}

// StartOrder moves a PLANNED order to IN_PROGRESS and seeds its actual
// usage from the embedded inventory check, one line per estimated
// ingredient with the actual quantity defaulted to the estimate. The
// operator adjusts those quantities before completion.
//
// Start does not re-check stock; callers wanting the documented
// re-validation step run RevalidateInventory first.
func (s *OrderService) StartOrder(ctx context.Context, orderID, actorID string) (*entities.ProductionOrder, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(entities.StatusInProgress) {
		return nil, &entities.InvalidTransitionError{From: order.Status, Requested: entities.StatusInProgress}
	}

	updated := order.Clone()
	check := updated.InventoryCheck
	if check == nil {
		// Orders drafted through CreateOrder always carry a check; this
		// guards externally loaded records.
		product, err := s.products.GetProduct(updated.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %s: %w", updated.ProductID, err)
		}
		check, err = s.computeCheck(ctx, product, updated.PlannedQuantity)
		if err != nil {
			return nil, err
		}
		updated.InventoryCheck = check
		updated.EstimatedCost = check.EstimatedCost()
	}

	usage := make([]entities.UsageLine, 0, len(check.Lines))
	for _, line := range check.Lines {
		usage = append(usage, entities.UsageLine{
			IngredientID:      line.IngredientID,
			IngredientName:    line.IngredientName,
			EstimatedQuantity: line.Needed,
			ActualQuantity:    line.Needed,
			EstimatedCost:     line.EstimatedCost,
		})
	}

	now := time.Now().UTC()
	updated.Status = entities.StatusInProgress
	updated.StartedAt = &now
	updated.StartedBy = actorID
	updated.ActualUsage = usage

	if err := s.orders.SaveOrder(updated); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(updated.ID, events.OrderStartedEvent, events.OrderStarted{
		OrderID:     updated.ID,
		StartedBy:   actorID,
		SeededLines: len(usage),
	})

	return updated, nil
}

// CompleteOrder moves an IN_PROGRESS order to COMPLETED, reconciling
// operator-reported consumption into final usage lines and the order's
// actual cost. Stock deduction is the external inventory ledger's
// responsibility, triggered by the completed transition.
func (s *OrderService) CompleteOrder(
	ctx context.Context,
	orderID, actorID string,
	finalUsage []entities.ActualUsageInput,
	additionalCosts decimal.Decimal,
	lotCode string,
) (*entities.ProductionOrder, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(entities.StatusCompleted) {
		return nil, &entities.InvalidTransitionError{From: order.Status, Requested: entities.StatusCompleted}
	}
	if additionalCosts.IsNegative() {
		return nil, &entities.ValidationError{
			Field:   "additional costs",
			Message: "cannot be negative, got " + additionalCosts.String(),
		}
	}

	updated := order.Clone()
	snapshot, err := s.ingredientSnapshot(usageIngredientIDs(updated.ActualUsage))
	if err != nil {
		return nil, err
	}

	usage, actualCost, err := s.reconciler.Reconcile(updated.ActualUsage, finalUsage, additionalCosts, snapshot)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated.Status = entities.StatusCompleted
	updated.ActualUsage = usage
	updated.ActualCost = actualCost
	updated.AdditionalCosts = additionalCosts
	updated.LotCode = lotCode
	updated.CompletedAt = &now
	updated.CompletedBy = actorID

	if err := s.orders.SaveOrder(updated); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(updated.ID, events.OrderCompletedEvent, events.OrderCompleted{
		Order:      *updated.Clone(),
		ActualCost: actualCost,
	})

	return updated, nil
}

// CancelOrder moves a PLANNED or IN_PROGRESS order to CANCELLED. No cost
// reconciliation occurs.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, actorID, reason string) (*entities.ProductionOrder, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(entities.StatusCancelled) {
		return nil, &entities.InvalidTransitionError{From: order.Status, Requested: entities.StatusCancelled}
	}

	now := time.Now().UTC()
	updated := order.Clone()
	updated.Status = entities.StatusCancelled
	updated.CancelledAt = &now
	updated.CancelledBy = actorID
	updated.CancelReason = reason

	if err := s.orders.SaveOrder(updated); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.publish(updated.ID, events.OrderCancelledEvent, events.OrderCancelled{
		OrderID:     updated.ID,
		CancelledBy: actorID,
		Reason:      reason,
	})

	return updated, nil
}

// RevalidateInventory recomputes a PLANNED order's inventory check and
// estimated cost against a fresh ingredient snapshot without changing
// status. This is the re-validation hook for callers that want current
// stock figures immediately before starting an order.
func (s *OrderService) RevalidateInventory(ctx context.Context, orderID string) (*entities.ProductionOrder, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entities.StatusPlanned {
		return nil, &entities.InvalidTransitionError{From: order.Status, Requested: entities.StatusPlanned}
	}

	product, err := s.products.GetProduct(order.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s: %w", order.ProductID, err)
	}

	check, err := s.computeCheck(ctx, product, order.PlannedQuantity)
	if err != nil {
		return nil, err
	}

	updated := order.Clone()
	updated.InventoryCheck = check
	updated.EstimatedCost = check.EstimatedCost()

	if err := s.orders.SaveOrder(updated); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if !check.HasEnoughInventory {
		s.publish(updated.ID, events.ShortageDetectedEvent, events.ShortageDetected{OrderID: updated.ID, Check: *check.Clone()})
	}

	return updated, nil
}

// GetOrder returns one order by id.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*entities.ProductionOrder, error) {
	return s.orders.GetOrder(orderID)
}

// GetOrderSummary returns the display view of one order: current
// inventory check, shortage totals, and cost figures.
func (s *OrderService) GetOrderSummary(ctx context.Context, orderID string) (*dto.OrderSummary, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderSummary(order), nil
}

// computeCheck snapshots the recipe's ingredients and runs the checker.
func (s *OrderService) computeCheck(ctx context.Context, product *entities.Product, quantity decimal.Decimal) (*entities.InventoryCheck, error) {
	snapshot, err := s.ingredientSnapshot(product.IngredientIDs())
	if err != nil {
		return nil, err
	}
	return s.checker.Check(ctx, product, quantity, snapshot)
}

func (s *OrderService) ingredientSnapshot(ids []entities.IngredientID) (map[entities.IngredientID]*entities.Ingredient, error) {
	snapshot, err := s.ingredients.GetIngredients(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot ingredients: %w", err)
	}
	return snapshot, nil
}

func (s *OrderService) publish(streamID, eventType string, data interface{}) {
	if s.eventStore == nil {
		return
	}
	// Event publication is observational; a store error never rolls back
	// an already-persisted transition.
	_, _ = s.eventStore.Append(streamID, eventType, data)
}

func usageIngredientIDs(usage []entities.UsageLine) []entities.IngredientID {
	ids := make([]entities.IngredientID, 0, len(usage))
	for _, line := range usage {
		ids = append(ids, line.IngredientID)
	}
	return ids
}
