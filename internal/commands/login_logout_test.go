package commands_test

import (
	"testing"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/testutil"
)

func newAliceService() *testutil.FakeService {
	svc := testutil.NewFakeService()
	svc.AddAccount("alice", "Password1")
	return svc
}

func TestLoginCommand_RemembersSession(t *testing.T) {
	svc := newAliceService()
	cfg := config.New(t.TempDir())

	stdout, stderr, code := runWithConfig(t, &commands.LoginCmd{}, cfg, svc, []string{"--password", "Password1", "alice"}, "")
	assertResult(t, code, exitcode.Success, stdout, "ok\n", stderr, "")

	if !cfg.HasSession() {
		t.Fatal("expected session file to be written")
	}
	login, err := cfg.LoadSession()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if login.Username != "alice" || login.Password != "Password1" || login.ID == "" {
		t.Errorf("unexpected remembered login %+v", login)
	}
}

func TestLoginCommand_PromptsForPassword(t *testing.T) {
	svc := newAliceService()

	stdout, stderr, code := runCommand(t, &commands.LoginCmd{}, svc, []string{"alice"}, "Password1\n", false)
	assertResult(t, code, exitcode.Success, stdout, "ok\n", stderr, "Password: ")
}

func TestLoginCommand_WrongPassword(t *testing.T) {
	svc := newAliceService()
	cfg := config.New(t.TempDir())

	stdout, stderr, code := runWithConfig(t, &commands.LoginCmd{}, cfg, svc, []string{"--password", "Password2", "alice"}, "")
	assertResult(t, code, exitcode.AuthError, stdout, "", stderr, "error: Wrong login or password\n")

	if cfg.HasSession() {
		t.Error("failed login must not write a session file")
	}
}

func TestLoginCommand_UnknownUser(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.LoginCmd{}, newAliceService(), []string{"--password", "Password1", "bob"}, "", false)
	assertResult(t, code, exitcode.AuthError, stdout, "", stderr, "error: Wrong login or password\n")
}

func TestLoginCommand_AlreadyLoggedInSameUser(t *testing.T) {
	svc := newAliceService()
	svc.LogInAs("alice")

	stdout, stderr, code := runCommand(t, &commands.LoginCmd{}, svc, []string{"alice"}, "", false)
	assertResult(t, code, exitcode.Success, stdout, "already logged in\n", stderr, "")
}

func TestLoginCommand_AlreadyLoggedInOtherUser(t *testing.T) {
	svc := newAliceService()
	svc.LogInAs("bob")

	stdout, stderr, code := runCommand(t, &commands.LoginCmd{}, svc, []string{"alice"}, "", false)
	assertResult(t, code, exitcode.UserError, stdout, "", stderr, "error: already logged in as bob (run: todo logout)\n")
}

func TestLogoutCommand_RemovesSession(t *testing.T) {
	cfg := config.New(t.TempDir())
	if _, err := cfg.SaveSession("alice", "Password1"); err != nil {
		t.Fatalf("save session: %v", err)
	}

	stdout, stderr, code := runWithConfig(t, &commands.LogoutCmd{}, cfg, nil, nil, "")
	assertResult(t, code, exitcode.Success, stdout, "ok\n", stderr, "")

	if cfg.HasSession() {
		t.Error("expected session file to be removed")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.LogoutCmd{}, nil, nil, "", false)
	assertResult(t, code, exitcode.Success, stdout, "not logged in\n", stderr, "")
}

func TestLogoutCommand_Quiet(t *testing.T) {
	cfg := config.New(t.TempDir())
	cfg.Quiet = true
	if _, err := cfg.SaveSession("alice", "Password1"); err != nil {
		t.Fatalf("save session: %v", err)
	}

	stdout, stderr, code := runWithConfig(t, &commands.LogoutCmd{}, cfg, nil, nil, "")
	assertResult(t, code, exitcode.Success, stdout, "", stderr, "")
}
