package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// CommonFlags are accepted by every command.
type CommonFlags struct {
	ConfigDir string
	Quiet     bool
	Debug     bool
}

// NewFlagSet returns a flag set holding the common flags and the flags of
// cmd. Parse errors are left to ParseArgs.
func NewFlagSet(cmd Command, common *CommonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	fs.StringVar(&common.ConfigDir, "config", "", "")
	fs.BoolVar(&common.Quiet, "quiet", false, "")
	fs.BoolVar(&common.Debug, "debug", false, "")

	cmd.RegisterFlags(fs)
	return fs
}

// ParseArgs parses args into fs and returns the positional arguments.
// On failure it prints the error and returns false; the exit code is
// exitcode.UserError.
func ParseArgs(fs *flag.FlagSet, args []string, errOut io.Writer) ([]string, bool) {
	if err := fs.Parse(args); err != nil {
		reportFlagError(errOut, err)
		return nil, false
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return nil, false
	}
	return positional, true
}

func reportFlagError(errOut io.Writer, err error) {
	errStr := err.Error()

	switch {
	case strings.HasPrefix(errStr, "flag needs an argument:"):
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
	case strings.HasPrefix(errStr, "flag provided but not defined:"):
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
	default:
		fmt.Fprintf(errOut, "error: %s\n", errStr)
	}
}
