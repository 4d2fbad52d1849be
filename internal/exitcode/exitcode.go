// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, failed validation).
	UserError = 1

	// AuthError indicates a login failure or a missing session.
	AuthError = 2

	// StorageError indicates the snapshot could not be read or written.
	StorageError = 3
)
