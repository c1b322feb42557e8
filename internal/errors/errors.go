package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if ne, ok := err.(*NotFoundError); ok {
		return ne, true
	}
	return nil, false
}

// InvalidTransitionError reports a status change outside the allowed
// transition table.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func IsInvalidTransitionError(err error) (*InvalidTransitionError, bool) {
	if te, ok := err.(*InvalidTransitionError); ok {
		return te, true
	}
	return nil, false
}

// NoOpTransitionError reports re-applying a status the order already holds.
// It is a distinct type so callers can tell a caller bug apart from a rule
// violation; it is never silently swallowed.
type NoOpTransitionError struct {
	Status string
}

func (e *NoOpTransitionError) Error() string {
	return fmt.Sprintf("order is already %s", e.Status)
}

func NewNoOpTransitionError(status string) *NoOpTransitionError {
	return &NoOpTransitionError{Status: status}
}

func IsNoOpTransitionError(err error) (*NoOpTransitionError, bool) {
	if ne, ok := err.(*NoOpTransitionError); ok {
		return ne, true
	}
	return nil, false
}

// DeviceBusyError reports a print job requested while another session holds
// the device.
type DeviceBusyError struct {
	Message string
}

func (e *DeviceBusyError) Error() string {
	return e.Message
}

func NewDeviceBusyError(message string) *DeviceBusyError {
	return &DeviceBusyError{Message: message}
}

func IsDeviceBusyError(err error) (*DeviceBusyError, bool) {
	if be, ok := err.(*DeviceBusyError); ok {
		return be, true
	}
	return nil, false
}

// DeviceUnavailableError is reserved for hard-failure modes where neither
// the hardware nor the mock path can serve a job.
type DeviceUnavailableError struct {
	Message string
}

func (e *DeviceUnavailableError) Error() string {
	return e.Message
}

func NewDeviceUnavailableError(message string) *DeviceUnavailableError {
	return &DeviceUnavailableError{Message: message}
}

func IsDeviceUnavailableError(err error) (*DeviceUnavailableError, bool) {
	if de, ok := err.(*DeviceUnavailableError); ok {
		return de, true
	}
	return nil, false
}

// PrintCommandFailedError wraps the failure of a single print instruction
// mid-transaction.
type PrintCommandFailedError struct {
	Command string
	Cause   error
}

func (e *PrintCommandFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print command %s failed: %v", e.Command, e.Cause)
	}
	return fmt.Sprintf("print command %s failed", e.Command)
}

func (e *PrintCommandFailedError) Unwrap() error {
	return e.Cause
}

func NewPrintCommandFailedError(command string, cause error) *PrintCommandFailedError {
	return &PrintCommandFailedError{Command: command, Cause: cause}
}

func IsPrintCommandFailedError(err error) (*PrintCommandFailedError, bool) {
	if pe, ok := err.(*PrintCommandFailedError); ok {
		return pe, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
