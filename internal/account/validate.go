package account

import (
	"regexp"
	"strings"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{2,19}$`)
	passwordPattern = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]{8,20}$`)
)

// User-facing messages.
const (
	MsgUsernameEmpty     = "Username cannot be empty"
	MsgUsernameFormat    = "Username must be 3-20 characters, start with a letter, and contain only Latin letters, digits, and '_'"
	MsgUsernameInUse     = "Username is already in use"
	MsgPasswordEmpty     = "Password cannot be empty"
	MsgPasswordFormat    = "Password must be 8-20 characters of Latin letters, digits, or @$!%*?&"
	MsgPasswordsMismatch = "Passwords do not match"
	MsgWrongCredentials  = "Wrong login or password"
	MsgAccountNotFound   = "Account not found"
	MsgTaskEmpty         = "Task cannot be empty"
)

// checkUsernameFormat applies the rules that do not depend on existing
// accounts.
func checkUsernameFormat(candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return fieldError(FieldUsername, ErrEmptyField, MsgUsernameEmpty)
	}
	if !usernamePattern.MatchString(candidate) {
		return fieldError(FieldUsername, ErrInvalidFormat, MsgUsernameFormat)
	}
	return nil
}

// ValidatePassword checks a password candidate. Surrounding whitespace is
// not trimmed before the format check, so any space is rejected.
func ValidatePassword(candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return fieldError(FieldPassword, ErrEmptyField, MsgPasswordEmpty)
	}
	if !passwordPattern.MatchString(candidate) {
		return fieldError(FieldPassword, ErrInvalidFormat, MsgPasswordFormat)
	}
	return nil
}
