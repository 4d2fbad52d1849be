// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strings"
	"sync"

	"todo/internal/account"
	"todo/internal/service"
	"todo/internal/session"
	"todo/internal/store"
	"todo/internal/task"
)

// FakeService is an in-memory implementation of service.Service for testing.
// All accounts share one task store.
type FakeService struct {
	mu       sync.Mutex
	accounts map[string]string // username -> password
	user     string
	tasks    *store.Store
	closed   bool

	// Error injection for testing
	SignUpErr         error
	LogInErr          error
	TasksErr          error
	AddTaskErr        error
	DeleteTaskErr     error
	ToggleTaskErr     error
	EditTaskErr       error
	ClearCompletedErr error
}

var _ service.Service = (*FakeService)(nil)

// NewFakeService creates a new FakeService with no accounts.
func NewFakeService() *FakeService {
	return &FakeService{
		accounts: make(map[string]string),
		tasks:    store.New(nil),
	}
}

// AddAccount registers an account without validation.
func (f *FakeService) AddAccount(username, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[username] = password
}

// LogInAs registers username if needed and binds the session to it.
func (f *FakeService) LogInAs(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[username]; !ok {
		f.accounts[username] = "Password1"
	}
	f.user = username
}

// Seed appends a task with the given text and status.
func (f *FakeService) Seed(text string, status task.Status) task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := task.New(f.tasks.NextID(), text)
	t.Status = status
	f.tasks.Dispatch(store.AddTask{Task: t})
	return t
}

// Snapshot returns the current tasks regardless of the session.
func (f *FakeService) Snapshot() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tasks.Tasks()
}

// HasAccount reports whether username has signed up.
func (f *FakeService) HasAccount(username string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.accounts[username]
	return ok
}

// Closed reports whether Close was called.
func (f *FakeService) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Close implements io.Closer.
func (f *FakeService) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// SignUp implements service.Service.
func (f *FakeService) SignUp(ctx context.Context, username, password, confirm string) error {
	if f.SignUpErr != nil {
		return f.SignUpErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.accounts[username]; ok {
		return account.NewFieldError(account.FieldUsername, account.ErrDuplicateUsername, account.MsgUsernameInUse)
	}
	if password != confirm {
		return account.NewFieldError(account.FieldConfirm, account.ErrMismatch, account.MsgPasswordsMismatch)
	}
	f.accounts[username] = password
	return nil
}

// LogIn implements service.Service.
func (f *FakeService) LogIn(ctx context.Context, username, password string) error {
	if f.LogInErr != nil {
		return f.LogInErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if pw, ok := f.accounts[username]; !ok || pw != password {
		return account.NewFieldError(account.FieldUsername, account.ErrMismatch, account.MsgWrongCredentials)
	}
	if f.user != "" {
		return session.ErrAlreadyLoggedIn
	}
	f.user = username
	return nil
}

// Whoami implements service.Service.
func (f *FakeService) Whoami(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == "" {
		return "", session.ErrNotLoggedIn
	}
	return f.user, nil
}

// Tasks implements service.Service.
func (f *FakeService) Tasks(ctx context.Context) ([]task.Task, error) {
	if f.TasksErr != nil {
		return nil, f.TasksErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == "" {
		return nil, session.ErrNotLoggedIn
	}
	return f.tasks.Tasks(), nil
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, text string) (task.Task, error) {
	if f.AddTaskErr != nil {
		return task.Task{}, f.AddTaskErr
	}
	if err := f.check(); err != nil {
		return task.Task{}, err
	}
	if strings.TrimSpace(text) == "" {
		return task.Task{}, account.NewFieldError(account.FieldTask, account.ErrEmptyField, account.MsgTaskEmpty)
	}
	return f.tasks.Add(text), nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	return f.dispatch(store.DeleteTask{ID: id})
}

// ToggleTask implements service.Service.
func (f *FakeService) ToggleTask(ctx context.Context, id int64) error {
	if f.ToggleTaskErr != nil {
		return f.ToggleTaskErr
	}
	return f.dispatch(store.ToggleTask{ID: id})
}

// EditTask implements service.Service.
func (f *FakeService) EditTask(ctx context.Context, id int64, text string) error {
	if f.EditTaskErr != nil {
		return f.EditTaskErr
	}
	if err := f.check(); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return account.NewFieldError(account.FieldTask, account.ErrEmptyField, account.MsgTaskEmpty)
	}
	return f.dispatch(store.EditTask{ID: id, Text: text})
}

// ClearCompleted implements service.Service.
func (f *FakeService) ClearCompleted(ctx context.Context) (int, error) {
	if f.ClearCompletedErr != nil {
		return 0, f.ClearCompletedErr
	}
	before := f.tasks.Len()
	if err := f.dispatch(store.ClearCompleted{}); err != nil {
		return 0, err
	}
	return before - f.tasks.Len(), nil
}

// Subscribe implements service.Service.
func (f *FakeService) Subscribe(ctx context.Context, render service.RenderFunc) (func(), error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return f.tasks.Subscribe(func(s store.State) {
		render(s.Tasks)
	}), nil
}

func (f *FakeService) check() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.user == "" {
		return session.ErrNotLoggedIn
	}
	return nil
}

// dispatch runs outside the lock so subscribers may call back in.
func (f *FakeService) dispatch(action store.Action) error {
	if err := f.check(); err != nil {
		return err
	}
	f.tasks.Dispatch(action)
	return nil
}
