package database

import "errors"

// ErrNotFound is returned when an update or delete references an id that does
// not exist in the store. It points at a stale in-memory reference in the
// caller rather than a user-facing condition.
var ErrNotFound = errors.New("source not found")
