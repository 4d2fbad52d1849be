package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/account"
	"todo/internal/exitcode"
	"todo/internal/session"
)

// NotLoggedInMessage is printed when a command needs a session and none
// exists.
const NotLoggedInMessage = "error: not logged in (run: todo login <username>)"

// reportError prints err to errOut and returns the exit code for it.
func reportError(errOut io.Writer, err error) int {
	var fe *account.FieldError
	var oor errOutOfRange

	switch {
	case errors.Is(err, session.ErrNotLoggedIn):
		fmt.Fprintln(errOut, NotLoggedInMessage)
		return exitcode.AuthError
	case errors.Is(err, session.ErrAlreadyLoggedIn):
		fmt.Fprintln(errOut, "error: already logged in")
		return exitcode.UserError
	case errors.As(err, &oor):
		fmt.Fprintf(errOut, "error: %v\n", oor)
		return exitcode.UserError
	case errors.As(err, &fe):
		fmt.Fprintf(errOut, "error: %s\n", fe.Message)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
}

// reportTaskRefError prints a task reference parse error.
func reportTaskRefError(errOut io.Writer, err error) int {
	if errors.Is(err, ErrTaskRefRequired) {
		fmt.Fprintln(errOut, "error: task reference required")
	} else {
		fmt.Fprintf(errOut, "error: %v\n", err)
	}
	return exitcode.UserError
}
