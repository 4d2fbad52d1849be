// Package session tracks which account, if any, is authenticated.
//
// The state is a closed sum: LoggedOut or LoggedIn. A session moves from
// LoggedOut to LoggedIn through Authenticate and never moves back within
// the life of a process.
package session

import (
	"errors"
	"strings"

	"todo/internal/account"
)

var (
	// ErrNotLoggedIn is returned when an operation needs an account.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrAlreadyLoggedIn is returned by LogIn once a session is bound.
	ErrAlreadyLoggedIn = errors.New("already logged in")
)

// State is either LoggedOut or LoggedIn.
type State interface {
	state()
}

// LoggedOut is the initial state.
type LoggedOut struct{}

// LoggedIn holds the authenticated account.
type LoggedIn struct {
	Account *account.Account
}

func (LoggedOut) state() {}
func (LoggedIn) state()  {}

// Finder looks accounts up by exact username.
type Finder interface {
	Find(username string) (*account.Account, error)
}

// Authenticate checks credentials against dir. Empty fields get their own
// messages; an unknown user and a wrong password share one.
func Authenticate(dir Finder, username, password string) (*account.Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, account.NewFieldError(account.FieldUsername, account.ErrEmptyField, account.MsgUsernameEmpty)
	}
	if strings.TrimSpace(password) == "" {
		return nil, account.NewFieldError(account.FieldPassword, account.ErrEmptyField, account.MsgPasswordEmpty)
	}

	acc, err := dir.Find(username)
	if err != nil || acc.Password != password {
		return nil, account.NewFieldError(account.FieldPassword, account.ErrMismatch, account.MsgWrongCredentials)
	}
	return acc, nil
}

// Session is the authentication state of one process.
type Session struct {
	state State
}

// New returns a logged-out session.
func New() *Session {
	return &Session{state: LoggedOut{}}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// LogIn authenticates and binds the session on success. A failed attempt
// leaves the session logged out.
func (s *Session) LogIn(dir Finder, username, password string) (*account.Account, error) {
	if _, ok := s.state.(LoggedIn); ok {
		return nil, ErrAlreadyLoggedIn
	}

	acc, err := Authenticate(dir, username, password)
	if err != nil {
		return nil, err
	}
	s.state = LoggedIn{Account: acc}
	return acc, nil
}

// Current returns the authenticated account.
func (s *Session) Current() (*account.Account, error) {
	switch st := s.state.(type) {
	case LoggedIn:
		return st.Account, nil
	case LoggedOut:
		return nil, ErrNotLoggedIn
	default:
		return nil, ErrNotLoggedIn
	}
}
