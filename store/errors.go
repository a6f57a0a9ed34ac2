package store

import "errors"

// ErrNotFound is returned by DB.Get and DB.Delete when no automaton exists
// under the requested id.
var ErrNotFound = errors.New("automaton not found")
