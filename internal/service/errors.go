package service

import "errors"

var (
	// ErrInvalidCycle is returned for malformed or out-of-window cycle months.
	ErrInvalidCycle = errors.New("invalid cycle month")
	// ErrTemplateNotFound is returned when no active template applies.
	ErrTemplateNotFound = errors.New("no applicable template")
	// ErrInvalidSubmission is returned for rating entries that do not fit
	// their template.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrStorageFailure wraps any error coming back from a repository.
	ErrStorageFailure = errors.New("storage failure")
)
