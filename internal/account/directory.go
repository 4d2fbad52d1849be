// Package account manages user accounts and the tasks each one owns.
//
// A Directory holds every account in memory. It is loaded once with
// Restore and written back in full with Persist; there are no partial
// writes.
//
// Passwords are stored and compared as plaintext. This is a known defect
// of the persisted format, not a security feature.
package account

import (
	"context"
	"fmt"
	"slices"

	"todo/internal/storage"
	"todo/internal/store"
	"todo/internal/task"
)

// Account is a credential pair bound to one task store.
type Account struct {
	Username string
	Password string
	Tasks    *store.Store
}

// New creates an account with an empty task store.
func New(username, password string) *Account {
	return &Account{
		Username: username,
		Password: password,
		Tasks:    store.New(nil),
	}
}

// Persister loads and saves the full set of account records.
type Persister interface {
	Load(ctx context.Context) ([]storage.AccountRecord, error)
	Save(ctx context.Context, accounts []storage.AccountRecord) error
}

// Directory is the set of all accounts.
type Directory struct {
	persister Persister
	accounts  []*Account
	byName    map[string]*Account
}

// NewDirectory creates an empty directory backed by p.
func NewDirectory(p Persister) *Directory {
	return &Directory{
		persister: p,
		byName:    make(map[string]*Account),
	}
}

// Accounts returns the accounts in creation order.
func (d *Directory) Accounts() []*Account {
	out := make([]*Account, len(d.accounts))
	copy(out, d.accounts)
	return out
}

// Len returns the number of accounts.
func (d *Directory) Len() int {
	return len(d.accounts)
}

// ValidateUsername checks a username candidate, including uniqueness.
func (d *Directory) ValidateUsername(candidate string) error {
	if err := checkUsernameFormat(candidate); err != nil {
		return err
	}
	if _, exists := d.byName[candidate]; exists {
		return fieldError(FieldUsername, ErrDuplicateUsername, MsgUsernameInUse)
	}
	return nil
}

// ValidatePassword checks a password candidate.
func (d *Directory) ValidatePassword(candidate string) error {
	return ValidatePassword(candidate)
}

// CreateAccount validates the credentials, adds a new account with an
// empty task store, and persists the directory. If the directory cannot
// be saved the account is not kept.
func (d *Directory) CreateAccount(ctx context.Context, username, password string) (*Account, error) {
	if err := d.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	acc := New(username, password)
	d.add(acc)

	if err := d.Persist(ctx); err != nil {
		d.remove(acc)
		return nil, err
	}
	return acc, nil
}

// SignUp runs the sign-up checks in order: username, password,
// confirmation. On success the account is created and persisted.
func (d *Directory) SignUp(ctx context.Context, username, password, confirm string) (*Account, error) {
	if err := d.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if confirm != password {
		return nil, fieldError(FieldConfirm, ErrMismatch, MsgPasswordsMismatch)
	}
	return d.CreateAccount(ctx, username, password)
}

// Find returns the account with exactly this username.
func (d *Directory) Find(username string) (*Account, error) {
	acc, ok := d.byName[username]
	if !ok {
		return nil, fieldError(FieldUsername, ErrNotFound, MsgAccountNotFound)
	}
	return acc, nil
}

func (d *Directory) add(acc *Account) {
	d.accounts = append(d.accounts, acc)
	d.byName[acc.Username] = acc
}

func (d *Directory) remove(acc *Account) {
	d.accounts = slices.DeleteFunc(d.accounts, func(a *Account) bool { return a == acc })
	delete(d.byName, acc.Username)
}

// Persist overwrites the stored snapshot with every account.
func (d *Directory) Persist(ctx context.Context) error {
	records := make([]storage.AccountRecord, 0, len(d.accounts))
	for _, acc := range d.accounts {
		records = append(records, toRecord(acc))
	}
	if err := d.persister.Save(ctx, records); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}

// Restore replaces the in-memory accounts with the stored snapshot. An
// absent snapshot leaves the directory empty.
func (d *Directory) Restore(ctx context.Context) error {
	records, err := d.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore accounts: %w", err)
	}

	accounts := make([]*Account, 0, len(records))
	byName := make(map[string]*Account, len(records))
	for _, rec := range records {
		if _, dup := byName[rec.Username]; dup {
			return fmt.Errorf("restore accounts: duplicate username %q in snapshot", rec.Username)
		}
		acc := fromRecord(rec)
		accounts = append(accounts, acc)
		byName[acc.Username] = acc
	}

	d.accounts = accounts
	d.byName = byName
	return nil
}

func toRecord(acc *Account) storage.AccountRecord {
	tasks := acc.Tasks.Tasks()
	rec := storage.AccountRecord{
		Username: acc.Username,
		Password: acc.Password,
		Tasks:    make([]storage.TaskRecord, 0, len(tasks)),
	}
	for _, t := range tasks {
		rec.Tasks = append(rec.Tasks, storage.TaskRecord{
			ID:     t.ID,
			Task:   t.Text,
			Status: string(t.Status),
		})
	}
	return rec
}

// fromRecord rebuilds an account. Unknown statuses restore as pending.
func fromRecord(rec storage.AccountRecord) *Account {
	tasks := make([]task.Task, 0, len(rec.Tasks))
	for _, tr := range rec.Tasks {
		status := task.Status(tr.Status)
		if !status.Valid() {
			status = task.StatusPending
		}
		tasks = append(tasks, task.Task{ID: tr.ID, Text: tr.Task, Status: status})
	}
	return &Account{
		Username: rec.Username,
		Password: rec.Password,
		Tasks:    store.New(tasks),
	}
}
