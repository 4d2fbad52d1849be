package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/account"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	password string
}

func (c *LoginCmd) Name() string       { return "login" }
func (c *LoginCmd) Aliases() []string  { return nil }
func (c *LoginCmd) Synopsis() string   { return "Log in to an account" }
func (c *LoginCmd) Usage() string      { return "todo login [--password <p>] <username>" }
func (c *LoginCmd) NeedsService() bool { return true }
func (c *LoginCmd) NeedsAuth() bool    { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	username := ""
	if len(args) > 0 {
		username = args[0]
	}

	// A session survives until the process exits
	if current, err := svc.Whoami(ctx); err == nil {
		if current == username {
			if !cfg.Quiet {
				fmt.Fprintln(out, "already logged in")
			}
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: already logged in as %s (run: todo logout)\n", current)
		return exitcode.UserError
	}

	password, err := promptSecret(lineReader(in), errOut, "Password: ", c.password)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := svc.LogIn(ctx, username, password); err != nil {
		if errors.Is(err, account.ErrMismatch) {
			fmt.Fprintf(errOut, "error: %s\n", account.Message(err))
			return exitcode.AuthError
		}
		return reportError(errOut, err)
	}

	if _, err := cfg.SaveSession(username, password); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
