package entities

import "fmt"

// ValidationError reports a rejected input value, such as a non-positive
// quantity or a missing required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports an unresolved product or ingredient reference.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InvalidProductError reports a product that cannot be produced, such as
// one with a non-positive batch yield.
type InvalidProductError struct {
	ProductID ProductID
	Reason    string
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("invalid product %s: %s", e.ProductID, e.Reason)
}

// UnknownIngredientError reports a recipe line whose ingredient reference
// does not resolve against the supplied ingredient snapshot. This
// indicates a stale recipe and is never silently skipped.
type UnknownIngredientError struct {
	IngredientID IngredientID
}

func (e *UnknownIngredientError) Error() string {
	return fmt.Sprintf("unknown ingredient in recipe: %s", e.IngredientID)
}

// Unwrap lets callers treat an unknown ingredient as a NotFoundError via
// errors.As without losing the more specific type.
func (e *UnknownIngredientError) Unwrap() error {
	return &NotFoundError{Kind: "ingredient", ID: string(e.IngredientID)}
}

// InvalidTransitionError reports an illegal lifecycle move, naming the
// order's current status and the one requested.
type InvalidTransitionError struct {
	From      OrderStatus
	Requested OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition from %s to %s", e.From, e.Requested)
}
