package idgen

import "github.com/google/uuid"

// NewFunc returns a new globally unique identifier.
var NewFunc = func() string { return uuid.New().String() }

// New returns NewFunc().
func New() string { return NewFunc() }

// RunID returns an identifier for a generation batch.
func RunID() string { return "run-" + New() }
