package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todo help" }
func (c *HelpCmd) NeedsService() bool { return false }
func (c *HelpCmd) NeedsAuth() bool    { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                          List tasks
  todo list [common flags] [--summary]          List tasks
  todo add [common flags] <text...>             Create a task
  todo done [common flags] <ref>                Toggle a task between pending and done
  todo edit [common flags] <ref> <text...>      Replace the text of a task
  todo rm [common flags] <ref>                  Delete a task
  todo clear [common flags]                     Delete every completed task
  todo signup [common flags] [--password <p>] [--confirm <p>] <username>
  todo login [common flags] [--password <p>] <username>
  todo logout [common flags]
  todo whoami [common flags]
  todo shell [common flags]                     Run commands interactively
  todo help
  todo version

A <ref> is the task number shown by todo list, optionally prefixed with '#'.
Passwords not given as flags are read from standard input.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
