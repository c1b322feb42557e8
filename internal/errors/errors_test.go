package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "status", Message: "unknown status"},
		{Field: "reason", Message: "required field"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestInvalidTransitionError_Creation(t *testing.T) {
	err := NewInvalidTransitionError("pending", "ready")

	assert.Equal(t, "pending", err.From)
	assert.Equal(t, "ready", err.To)
	assert.Equal(t, "invalid transition from pending to ready", err.Error())

	te, ok := IsInvalidTransitionError(err)
	assert.True(t, ok)
	assert.NotNil(t, te)
}

func TestInvalidTransitionError_WithOtherError(t *testing.T) {
	te, ok := IsInvalidTransitionError(errors.New("boom"))
	assert.False(t, ok)
	assert.Nil(t, te)
}

func TestNoOpTransitionError_Creation(t *testing.T) {
	err := NewNoOpTransitionError("accepted")

	assert.Equal(t, "accepted", err.Status)
	assert.Equal(t, "order is already accepted", err.Error())

	ne, ok := IsNoOpTransitionError(err)
	assert.True(t, ok)
	assert.NotNil(t, ne)
}

func TestNoOpTransition_IsNotInvalidTransition(t *testing.T) {
	err := NewNoOpTransitionError("ready")

	_, ok := IsInvalidTransitionError(err)
	assert.False(t, ok)
}

func TestDeviceBusyError_Creation(t *testing.T) {
	err := NewDeviceBusyError("a print session is already open")

	assert.Equal(t, "a print session is already open", err.Error())

	be, ok := IsDeviceBusyError(err)
	assert.True(t, ok)
	assert.NotNil(t, be)
}

func TestDeviceUnavailableError_Creation(t *testing.T) {
	err := NewDeviceUnavailableError("no usable print path")

	assert.Equal(t, "no usable print path", err.Error())

	de, ok := IsDeviceUnavailableError(err)
	assert.True(t, ok)
	assert.NotNil(t, de)
}

func TestPrintCommandFailedError_Creation(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPrintCommandFailedError("printText", cause)

	assert.Contains(t, err.Error(), "printText")
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))

	pe, ok := IsPrintCommandFailedError(err)
	assert.True(t, ok)
	assert.Equal(t, "printText", pe.Command)
}

func TestPrintCommandFailedError_NilCause(t *testing.T) {
	err := NewPrintCommandFailedError("cut", nil)

	assert.Equal(t, "print command cut failed", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}
