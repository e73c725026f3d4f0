package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCollaborator marks a failure of the macro-data or market-data service.
	ErrCollaborator = errors.New("collaborator fault")
)

// InputError describes which request field was rejected and why.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) hold for every InputError.
func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// CollaboratorError wraps err so that errors.Is(err, ErrCollaborator) holds.
func CollaboratorError(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCollaborator, name, err)
}
