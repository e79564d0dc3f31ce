package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup for a product id that is not in the store.
// Typically the UI selection went stale; the operation had no effect.
var ErrNotFound = errors.New("inventory: product not found")

// ValidationError rejects operator input before any state changes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("inventory: invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError rejects a sale that would drive a product's
// quantity negative. A business-rule rejection, not a defect.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("inventory: product %s has %d in stock, cannot sell %d",
		e.ProductID, e.Available, e.Requested)
}

// PersistenceError wraps a failure to read or write the durable document.
// When it surfaces after a mutation the in-memory state may lead the file
// until the next successful save.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("inventory: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
