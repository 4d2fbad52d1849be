// Package service defines the command surface the front end drives.
package service

import (
	"context"

	"todo/internal/task"
)

// RenderFunc receives the current task sequence after every change.
type RenderFunc func(tasks []task.Task)

// Service defines the operations available to the presentation layer.
// Commands never import a backend directly.
//
// Validation failures wrap *account.FieldError; task operations while
// logged out return session.ErrNotLoggedIn.
type Service interface {
	// SignUp creates an account after checking the username, the password
	// and that confirm equals password.
	SignUp(ctx context.Context, username, password, confirm string) error

	// LogIn authenticates and binds the session.
	LogIn(ctx context.Context, username, password string) error

	// Whoami returns the username bound to the session.
	Whoami(ctx context.Context) (string, error)

	// Tasks returns the current account's tasks in display order.
	Tasks(ctx context.Context) ([]task.Task, error)

	// AddTask appends a pending task. Blank text is rejected.
	AddTask(ctx context.Context, text string) (task.Task, error)

	// DeleteTask removes the task with id. Unknown ids are ignored.
	DeleteTask(ctx context.Context, id int64) error

	// ToggleTask flips the task's status. Unknown ids are ignored.
	ToggleTask(ctx context.Context, id int64) error

	// EditTask replaces the task's text. Unknown ids are ignored; blank
	// text is rejected.
	EditTask(ctx context.Context, id int64, text string) error

	// ClearCompleted removes every done task and returns how many.
	ClearCompleted(ctx context.Context) (int, error)

	// Subscribe registers render to run after every change to the current
	// account's tasks.
	Subscribe(ctx context.Context, render RenderFunc) (unsubscribe func(), err error)
}
