package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgRecipeNotFound       = "recipe not found"
	ErrMsgUnknownComponentKind = "unknown recipe component type"

	// Recipe instance errors
	ErrMsgInvalidClockSpeed   = "invalid clock speed"
	ErrMsgInvalidMachineCount = "invalid machine count"
	ErrMsgInstanceNotFound    = "recipe instance not found"

	// Production line errors
	ErrMsgLineNotFound    = "production line not found"
	ErrMsgInvalidLineName = "invalid production line name"
	ErrMsgDuplicateSlug   = "production line slug already exists"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrRecipeNotFound       = errors.New(ErrMsgRecipeNotFound)
	ErrUnknownComponentKind = errors.New(ErrMsgUnknownComponentKind)

	ErrInvalidClockSpeed   = errors.New(ErrMsgInvalidClockSpeed)
	ErrInvalidMachineCount = errors.New(ErrMsgInvalidMachineCount)
	ErrInstanceNotFound    = errors.New(ErrMsgInstanceNotFound)

	ErrLineNotFound    = errors.New(ErrMsgLineNotFound)
	ErrInvalidLineName = errors.New(ErrMsgInvalidLineName)
	ErrDuplicateSlug   = errors.New(ErrMsgDuplicateSlug)

	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
