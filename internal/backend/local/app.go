// Package local implements service.Service over the on-disk account
// directory.
//
// App is the application context: it is built once at start-up, owns the
// directory and the session, and persists the whole directory after every
// change.
package local

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"todo/internal/account"
	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/session"
	"todo/internal/storage"
	"todo/internal/storage/file"
	"todo/internal/storage/sqlite"
	"todo/internal/store"
	"todo/internal/task"
)

// App implements service.Service.
type App struct {
	repo    *storage.Repository
	dir     *account.Directory
	session *session.Session
	logger  *slog.Logger
}

var _ service.Service = (*App)(nil)

// New creates an App over repo. Call Restore before use to load existing
// accounts.
func New(repo *storage.Repository, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		repo:    repo,
		dir:     account.NewDirectory(repo),
		session: session.New(),
		logger:  logger,
	}
}

// Open selects the storage backend from cfg, restores the directory and
// replays a remembered login if there is one.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	backend, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}

	app := New(storage.NewRepository(backend), logger)
	if err := app.Restore(ctx); err != nil {
		backend.Close()
		return nil, err
	}
	app.logger.Debug("accounts restored",
		slog.String("backend", cfg.Storage),
		slog.String("path", cfg.DataPath()),
		slog.Int("accounts", app.dir.Len()))

	if cfg.HasSession() {
		app.resume(ctx, cfg)
	}
	return app, nil
}

func openBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("create config dir: %w", err)
		}
		return sqlite.Open(cfg.DataPath())
	case config.StorageJSON, "":
		return file.New(cfg.DataPath()), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

// resume logs in with the remembered credentials. A stale login is
// dropped and the session stays logged out.
func (a *App) resume(ctx context.Context, cfg *config.Config) {
	login, err := cfg.LoadSession()
	if err != nil {
		a.logger.Warn("ignoring remembered login", slog.Any("err", err))
		return
	}
	if err := a.LogIn(ctx, login.Username, login.Password); err != nil {
		a.logger.Warn("remembered login rejected",
			slog.String("session_id", login.ID),
			slog.String("username", login.Username),
			slog.String("reason", account.Message(err)))
		if err := cfg.RemoveSession(); err != nil {
			a.logger.Warn("remove session file", slog.Any("err", err))
		}
		return
	}
	// Every later log line of this invocation carries the session id
	a.logger = a.logger.With(slog.String("session_id", login.ID))
	a.logger.Debug("session resumed", slog.String("username", login.Username))
}

// Restore loads the persisted accounts.
func (a *App) Restore(ctx context.Context) error {
	return a.dir.Restore(ctx)
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.repo.Close()
}

// Directory returns the account directory.
func (a *App) Directory() *account.Directory {
	return a.dir
}

// Session returns the process session.
func (a *App) Session() *session.Session {
	return a.session
}

// SignUp implements service.Service.
func (a *App) SignUp(ctx context.Context, username, password, confirm string) error {
	if _, err := a.dir.SignUp(ctx, username, password, confirm); err != nil {
		a.logger.Debug("sign-up rejected", slog.String("username", username), slog.Any("err", err))
		return err
	}
	a.logger.Info("account created", slog.String("username", username))
	return nil
}

// LogIn implements service.Service.
func (a *App) LogIn(ctx context.Context, username, password string) error {
	acc, err := a.session.LogIn(a.dir, username, password)
	if err != nil {
		return err
	}
	a.logger.Info("logged in", slog.String("username", acc.Username))
	return nil
}

// Whoami implements service.Service.
func (a *App) Whoami(ctx context.Context) (string, error) {
	acc, err := a.session.Current()
	if err != nil {
		return "", err
	}
	return acc.Username, nil
}

// Tasks implements service.Service.
func (a *App) Tasks(ctx context.Context) ([]task.Task, error) {
	acc, err := a.session.Current()
	if err != nil {
		return nil, err
	}
	return acc.Tasks.Tasks(), nil
}

// AddTask implements service.Service.
func (a *App) AddTask(ctx context.Context, text string) (task.Task, error) {
	acc, err := a.session.Current()
	if err != nil {
		return task.Task{}, err
	}
	if strings.TrimSpace(text) == "" {
		return task.Task{}, account.NewFieldError(account.FieldTask, account.ErrEmptyField, account.MsgTaskEmpty)
	}

	t := task.New(acc.Tasks.NextID(), text)
	if err := a.commit(ctx, acc, store.AddTask{Task: t}); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// DeleteTask implements service.Service.
func (a *App) DeleteTask(ctx context.Context, id int64) error {
	return a.dispatch(ctx, store.DeleteTask{ID: id})
}

// ToggleTask implements service.Service.
func (a *App) ToggleTask(ctx context.Context, id int64) error {
	return a.dispatch(ctx, store.ToggleTask{ID: id})
}

// EditTask implements service.Service.
func (a *App) EditTask(ctx context.Context, id int64, text string) error {
	if strings.TrimSpace(text) == "" {
		if _, err := a.session.Current(); err != nil {
			return err
		}
		return account.NewFieldError(account.FieldTask, account.ErrEmptyField, account.MsgTaskEmpty)
	}
	return a.dispatch(ctx, store.EditTask{ID: id, Text: text})
}

// ClearCompleted implements service.Service.
func (a *App) ClearCompleted(ctx context.Context) (int, error) {
	acc, err := a.session.Current()
	if err != nil {
		return 0, err
	}
	before := acc.Tasks.Len()
	if err := a.dispatch(ctx, store.ClearCompleted{}); err != nil {
		return 0, err
	}
	return before - acc.Tasks.Len(), nil
}

// Subscribe implements service.Service.
func (a *App) Subscribe(ctx context.Context, render service.RenderFunc) (func(), error) {
	acc, err := a.session.Current()
	if err != nil {
		return nil, err
	}
	return acc.Tasks.Subscribe(func(s store.State) {
		render(s.Tasks)
	}), nil
}

// dispatch sends action to the current account's store and persists.
func (a *App) dispatch(ctx context.Context, action store.Action) error {
	acc, err := a.session.Current()
	if err != nil {
		return err
	}
	return a.commit(ctx, acc, action)
}

// commit applies action and persists. A change that cannot be saved is
// reverted, so memory never runs ahead of the snapshot.
func (a *App) commit(ctx context.Context, acc *account.Account, action store.Action) error {
	prev := acc.Tasks.State()
	acc.Tasks.Dispatch(action)
	a.logger.Debug("dispatched", slog.String("username", acc.Username), slog.String("action", action.Type()))

	if err := a.persist(ctx); err != nil {
		acc.Tasks.Dispatch(store.ReplaceTasks{Tasks: prev.Tasks})
		a.logger.Debug("reverted", slog.String("username", acc.Username), slog.String("action", action.Type()))
		return err
	}
	return nil
}

func (a *App) persist(ctx context.Context) error {
	if err := a.dir.Persist(ctx); err != nil {
		a.logger.Error("persist failed", slog.Any("err", err))
		return err
	}
	return nil
}
