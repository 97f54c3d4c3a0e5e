package reminder

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("item not found")
	ErrDuplicateID = errors.New("duplicate item id")
	ErrAmbiguousID = errors.New("ambiguous item id")
)

// ValidationError rejects an entity at construction time. The entity is
// never admitted to the collection.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseWarning reports a stored reminder whose date or time cannot be
// parsed. The reminder is treated as not due.
type ParseWarning struct {
	ItemID string
	Field  string
	Value  string
	Err    error
}

func (w *ParseWarning) Error() string {
	return fmt.Sprintf("item %s: cannot parse %s %q: %v", w.ItemID, w.Field, w.Value, w.Err)
}

func (w *ParseWarning) Unwrap() error {
	return w.Err
}
