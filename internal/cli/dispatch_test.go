package cli_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"todo/internal/backend/local"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Service, error) {
		return svc, nil
	}
}

// localFactory opens the real backend, like cmd/todo does.
func localFactory(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Service, error) {
	app, err := local.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func run(d *cli.Dispatcher, stdin string, args ...string) (stdout, stderr string, code int) {
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, strings.NewReader(stdin), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	_, stderr, code := run(dispatcher, "", "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	_, stderr, code := run(dispatcher, "", "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(dispatcher, "", "help", "--config", t.TempDir())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	stdout, stderr, code := run(dispatcher, "", "version", "--config", t.TempDir())

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(dispatcher, "", "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(dispatcher, "", "help", "--config")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoArgsRunsList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.LogInAs("alice")
	svc.AddAccount("alice", "Password1")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stdout, stderr, code := run(dispatcher, "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if !svc.Closed() {
		t.Error("expected service to be closed after the command")
	}
}

func TestDispatcher_RequiresLogin(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeService()))

	stdout, stderr, code := run(dispatcher, "", "add", "--config", t.TempDir(), "x")

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != commands.NotLoggedInMessage+"\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Service, error) {
		return nil, errors.New("database is locked")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	_, stderr, code := run(dispatcher, "", "list", "--config", t.TempDir())

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if stderr != "error: storage error: database is locked\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_InvalidEnvConfig(t *testing.T) {
	t.Setenv("TODO_STORAGE", "postgres")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	_, stderr, code := run(dispatcher, "", "version", "--config", t.TempDir())

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown storage backend: postgres\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// TestDispatcher_LocalBackend drives a full session through one-shot
// commands against the on-disk backend.
func TestDispatcher_LocalBackend(t *testing.T) {
	for _, storage := range []string{config.StorageJSON, config.StorageSQLite} {
		t.Run(storage, func(t *testing.T) {
			t.Setenv("TODO_STORAGE", storage)
			dir := t.TempDir()
			dispatcher := cli.NewDispatcher(commands.DefaultRegistry, localFactory)

			steps := []struct {
				stdin    string
				args     []string
				wantCode int
				wantOut  string
			}{
				{"", []string{"list"}, exitcode.AuthError, ""},
				{"Password1\nPassword1\n", []string{"signup", "alice"}, exitcode.Success, "account created\n"},
				{"", []string{"signup", "--password", "Password1", "--confirm", "Password1", "alice"}, exitcode.UserError, ""},
				{"", []string{"login", "--password", "wrongpass1", "alice"}, exitcode.AuthError, ""},
				{"Password1\n", []string{"login", "alice"}, exitcode.Success, "ok\n"},
				{"", []string{"whoami"}, exitcode.Success, "alice\n"},
				{"", []string{"add", "buy", "milk"}, exitcode.Success, "ok\n"},
				{"", []string{"add", "call mom"}, exitcode.Success, "ok\n"},
				{"", []string{"done", "1"}, exitcode.Success, "ok\n"},
				{"", []string{"edit", "2", "call dad"}, exitcode.Success, "ok\n"},
				{"", []string{"ls"}, exitcode.Success, "   1  [x] Buy milk\n   2  [ ] Call dad\n"},
				{"", []string{"clear"}, exitcode.Success, "removed 1\n"},
				{"", []string{"done", "5"}, exitcode.UserError, ""},
				{"", []string{"list"}, exitcode.Success, "   1  [ ] Call dad\n"},
				{"", []string{"logout"}, exitcode.Success, "ok\n"},
				{"", []string{"list"}, exitcode.AuthError, ""},
			}

			for _, step := range steps {
				args := append([]string{step.args[0], "--config", dir}, step.args[1:]...)
				stdout, stderr, code := run(dispatcher, step.stdin, args...)
				if code != step.wantCode {
					t.Fatalf("%v: expected exit code %d, got %d (stderr %q)", step.args, step.wantCode, code, stderr)
				}
				if stdout != step.wantOut {
					t.Fatalf("%v: expected stdout %q, got %q", step.args, step.wantOut, stdout)
				}
			}
		})
	}
}

func TestDispatcher_ShellWithLocalBackend(t *testing.T) {
	dir := t.TempDir()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, localFactory)

	input := strings.Join([]string{
		"signup --password Password1 --confirm Password1 alice",
		"login --password Password1 alice",
		"add buy milk",
		"done 1",
		"exit",
	}, "\n") + "\n"

	stdout, stderr, code := run(dispatcher, input, "shell", "--config", dir, "--quiet")
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if !strings.HasSuffix(stdout, "------------\nalice\n------------\n   1  [x] Buy milk\n") {
		t.Errorf("unexpected shell output %q", stdout)
	}

	// The shell's login is remembered for one-shot commands
	stdout, _, code = run(dispatcher, "", "list", "--config", dir)
	if code != exitcode.Success || stdout != "   1  [x] Buy milk\n" {
		t.Errorf("expected persisted task, got %q (%d)", stdout, code)
	}
}
