package buildkeep

import "errors"

// Archiving errors.
var (
	// ErrNoIncludes indicates the include pattern is empty. Archiving
	// requires at least one include pattern.
	ErrNoIncludes = errors.New("no include pattern configured for archiving")
)
