package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgHeroNotFound  = "hero not found"
	ErrMsgItemNotFound  = "item not found"
	ErrMsgBuildNotFound = "client version not found"

	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrHeroNotFound  = errors.New(ErrMsgHeroNotFound)
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrBuildNotFound = errors.New(ErrMsgBuildNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
