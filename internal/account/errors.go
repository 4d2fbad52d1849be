package account

import "errors"

// Error kinds. Match them with errors.Is; show FieldError.Message to users.
var (
	ErrEmptyField        = errors.New("empty field")
	ErrInvalidFormat     = errors.New("invalid format")
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("not found")
	ErrMismatch          = errors.New("mismatch")
)

// Field names used in FieldError.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldConfirm  = "confirm_password"
	FieldTask     = "task"
)

// FieldError is a user-recoverable failure on one input.
type FieldError struct {
	Field   string
	Kind    error
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// Unwrap returns the error kind.
func (e *FieldError) Unwrap() error { return e.Kind }

func fieldError(field string, kind error, msg string) *FieldError {
	return &FieldError{Field: field, Kind: kind, Message: msg}
}

// NewFieldError builds a FieldError for callers outside the package.
func NewFieldError(field string, kind error, msg string) error {
	return fieldError(field, kind, msg)
}

// Message returns the user-facing text of err: the FieldError message if
// err wraps one, otherwise err.Error().
func Message(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
