package store

import "fmt"

// ErrNotFound indicates the requested record does not exist.
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.ID)
}
