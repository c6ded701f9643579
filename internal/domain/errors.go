package domain

import (
	"errors"
	"fmt"
)

// Predefined domain errors
var (
	// ErrValidation form input rejected before any request is made
	ErrValidation = errors.New("validation failed")
	// ErrRequest login request failed (transport, non-2xx status or bad body)
	ErrRequest = errors.New("request failed")
	// ErrStorage durable session store failure
	ErrStorage = errors.New("storage failure")
	// ErrSubmitInFlight a submission is already pending
	ErrSubmitInFlight = errors.New("login already in progress")
	// ErrNotLoggedIn no session is stored
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidRole role is neither staff nor student
	ErrInvalidRole = errors.New("invalid role")
)

// MsgSelectUserType is shown when submit is attempted without a role.
const MsgSelectUserType = "Select User Type"

// DomainError carries a machine code, a user-facing message and the cause.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (used for logs)
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the message meant for the error strip
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error
func NewValidationError(message string) error {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
		Err:     ErrValidation,
	}
}

// NewStorageError creates a storage error
func NewStorageError(op string, err error) error {
	return &DomainError{
		Code:    "STORAGE",
		Message: fmt.Sprintf("could not %s saved session", op),
		Err:     fmt.Errorf("%w: %v", ErrStorage, err),
	}
}

// NewInvalidRoleError creates an invalid role error
func NewInvalidRoleError(role string) error {
	return &DomainError{
		Code:    "INVALID_ROLE",
		Message: fmt.Sprintf("unknown user type '%s', expected staff or student", role),
		Err:     ErrInvalidRole,
	}
}

// RequestError describes a failed login request. StatusCode is zero when
// no response was received.
type RequestError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("request failed: %v", e.Err)
	case e.Err != nil:
		return fmt.Sprintf("request failed with HTTP status: %d: %v", e.StatusCode, e.Err)
	case len(e.Body) > 0:
		return fmt.Sprintf("request failed with HTTP status: %d, body: %s", e.StatusCode, string(e.Body))
	default:
		return fmt.Sprintf("request failed with HTTP status: %d", e.StatusCode)
	}
}

// Unwrap lets errors.Is match both ErrRequest and the transport cause.
func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequest}
	}
	return []error{ErrRequest, e.Err}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsRequest reports whether err is a request error
func IsRequest(err error) bool {
	return errors.Is(err, ErrRequest)
}

// IsStorage reports whether err is a storage error
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsNotLoggedIn reports whether err means no session is stored
func IsNotLoggedIn(err error) bool {
	return errors.Is(err, ErrNotLoggedIn)
}
