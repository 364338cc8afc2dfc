package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailError_Format(t *testing.T) {
	err := NewValidationError("unknown server type: rails", "my-app", "serverType", "Valid types: express, koa, hapi")

	msg := err.Error()
	assert.Contains(t, msg, "Error: validation failed")
	assert.Contains(t, msg, "Location: my-app")
	assert.Contains(t, msg, "Field: serverType")
	assert.Contains(t, msg, "unknown server type: rails")
	assert.Contains(t, msg, "Hint: Valid types: express, koa, hapi")
}

func TestDetailError_UnwrapsSentinel(t *testing.T) {
	err := NewNotFoundError("no such generator", "plugins", "")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestExitError_Unwrap(t *testing.T) {
	inner := NewValidationError("bad name", "", "name", "")
	exitErr := &ExitError{Code: ExitValidationError, Err: inner}

	assert.Equal(t, inner.Error(), exitErr.Error())
	assert.True(t, errors.Is(exitErr, ErrValidation))

	var detail *DetailError
	assert.True(t, errors.As(exitErr, &detail))
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrPermission, "writing manifest")
	assert.True(t, errors.Is(err, ErrPermission))
	assert.Equal(t, "writing manifest: permission denied", err.Error())
}
