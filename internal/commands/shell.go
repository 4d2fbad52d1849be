package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/task"
)

// shellPrompt is printed before every line unless quiet is set.
const shellPrompt = "todo> "

func init() {
	Register(&ShellCmd{})
}

// ShellCmd implements the interactive shell. Every line runs as a command
// against the same service, so a login lasts until the shell exits. Once
// logged in, the list is redrawn after each change.
type ShellCmd struct {
	registry *Registry
}

// SetRegistry sets the registry lines are looked up in (for testing).
func (c *ShellCmd) SetRegistry(r *Registry) {
	c.registry = r
}

func (c *ShellCmd) Name() string       { return "shell" }
func (c *ShellCmd) Aliases() []string  { return []string{"repl"} }
func (c *ShellCmd) Synopsis() string   { return "Run commands interactively" }
func (c *ShellCmd) Usage() string      { return "todo shell" }
func (c *ShellCmd) NeedsService() bool { return true }
func (c *ShellCmd) NeedsAuth() bool    { return false }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	registry := c.registry
	if registry == nil {
		registry = DefaultRegistry
	}
	r := lineReader(in)

	var unsubscribe func()
	defer func() {
		if unsubscribe != nil {
			unsubscribe()
		}
	}()

	// attach subscribes the renderer once a session exists.
	attach := func() {
		if unsubscribe != nil {
			return
		}
		name, err := svc.Whoami(ctx)
		if err != nil {
			return
		}
		unsub, err := svc.Subscribe(ctx, func(tasks []task.Task) {
			renderList(out, name, tasks)
		})
		if err != nil {
			return
		}
		unsubscribe = unsub
		if tasks, err := svc.Tasks(ctx); err == nil {
			renderList(out, name, tasks)
		}
	}
	attach()

	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}
		if !cfg.Quiet {
			fmt.Fprint(out, shellPrompt)
		}

		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}

		fields := strings.Fields(line)
		if len(fields) > 0 {
			if fields[0] == "exit" || fields[0] == "quit" {
				return exitcode.Success
			}
			c.exec(ctx, registry, cfg, svc, fields, r, out, errOut)
			attach()
		}

		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintln(out)
			}
			return exitcode.Success
		}
	}
}

// exec runs one shell line. Errors are printed; the shell keeps going.
func (c *ShellCmd) exec(ctx context.Context, registry *Registry, cfg *config.Config, svc service.Service, fields []string, in io.Reader, out, errOut io.Writer) int {
	cmd, ok := registry.Find(fields[0])
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", fields[0])
		return exitcode.UserError
	}
	if _, nested := cmd.(*ShellCmd); nested {
		fmt.Fprintln(errOut, "error: already in shell")
		return exitcode.UserError
	}

	var common CommonFlags
	fs := NewFlagSet(cmd, &common)
	args, ok := ParseArgs(fs, fields[1:], errOut)
	if !ok {
		return exitcode.UserError
	}
	if common.ConfigDir != "" && common.ConfigDir != cfg.Dir {
		fmt.Fprintln(errOut, "error: --config cannot change inside the shell")
		return exitcode.UserError
	}

	// Common flags apply to this line only
	lineCfg := *cfg
	lineCfg.Quiet = cfg.Quiet || common.Quiet
	lineCfg.Debug = cfg.Debug || common.Debug

	if cmd.NeedsAuth() {
		if _, err := svc.Whoami(ctx); err != nil {
			return reportError(errOut, err)
		}
	}

	var cmdSvc service.Service
	if cmd.NeedsService() {
		cmdSvc = svc
	}
	return cmd.Run(ctx, &lineCfg, cmdSvc, args, in, out, errOut)
}
