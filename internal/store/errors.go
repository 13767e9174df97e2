package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store operations. The service layer maps
// these onto coded domain errors with user-facing messages.
var (
	// ErrNotFound is returned when no entity exists for the given key.
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists is returned when a create or update would
	// violate the primary key or a unique index.
	ErrAlreadyExists = errors.New("store: already exists")
)

// IndexConflictError reports which unique index rejected a write. It
// unwraps to ErrAlreadyExists so existing errors.Is checks keep
// working; services inspect Index to pick the right message.
type IndexConflictError struct {
	Index string
	Value string
}

func (e *IndexConflictError) Error() string {
	return fmt.Sprintf("store: index %s conflict on %q: already exists", e.Index, e.Value)
}

func (e *IndexConflictError) Unwrap() error { return ErrAlreadyExists }

// ConflictIndex returns the name of the unique index that caused err,
// or "" when err is not an index conflict.
func ConflictIndex(err error) string {
	var conflict *IndexConflictError
	if errors.As(err, &conflict) {
		return conflict.Index
	}
	return ""
}
