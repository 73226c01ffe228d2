package model

import "fmt"

// NotFoundError reports that no model is registered for an identity.
type NotFoundError struct {
	Identity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model not found for identity %q", e.Identity)
}

// InvalidSortError reports a sort expression that is not a schema column
// name with an optional ASC/DESC direction. Sort strings can come straight
// from API clients, so anything else is rejected before it reaches the
// store.
type InvalidSortError struct {
	Sort string
}

func (e *InvalidSortError) Error() string {
	return fmt.Sprintf("invalid sort expression %q, want \"<column> [ASC|DESC]\"", e.Sort)
}
