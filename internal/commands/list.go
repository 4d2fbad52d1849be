package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. It also runs for `todo` with no
// arguments.
type ListCmd struct {
	summary bool
}

// SetSummary sets the summary flag (for testing).
func (c *ListCmd) SetSummary(summary bool) {
	c.summary = summary
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "todo list [--summary]" }
func (c *ListCmd) NeedsService() bool { return true }
func (c *ListCmd) NeedsAuth() bool    { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.summary, "summary", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, in io.Reader, out, errOut io.Writer) int {
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	output.FormatTasks(out, tasks, cfg.Quiet)
	if c.summary && len(tasks) > 0 {
		output.FormatSummary(out, tasks)
	}
	return exitcode.Success
}

// renderList writes the header and the numbered tasks of one account.
func renderList(w io.Writer, username string, tasks []task.Task) {
	output.FormatListHeader(w, username)
	output.FormatTasks(w, tasks, false)
}
