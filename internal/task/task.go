// Package task defines the to-do item owned by an account's task store.
package task

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the lifecycle state of a task.
type Status string

const (
	// StatusPending is the initial status of every task.
	StatusPending Status = "pending"

	// StatusDone marks a completed task. Done tasks are removed by clear.
	StatusDone Status = "done"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusDone
}

// Task is a single to-do item.
type Task struct {
	ID     int64
	Text   string
	Status Status
}

// New creates a pending task. The text is stored in its display form.
func New(id int64, text string) Task {
	return Task{
		ID:     id,
		Text:   Capitalize(text),
		Status: StatusPending,
	}
}

// MarkDone sets the status to done.
func (t *Task) MarkDone() {
	t.Status = StatusDone
}

// MarkPending sets the status to pending.
func (t *Task) MarkPending() {
	t.Status = StatusPending
}

// Done reports whether the task is completed.
func (t Task) Done() bool {
	return t.Status == StatusDone
}

// Toggled returns a copy of t with the status flipped.
func (t Task) Toggled() Task {
	if t.Done() {
		t.MarkPending()
	} else {
		t.MarkDone()
	}
	return t
}

// Capitalize trims text and upper-cases its first character.
// Full case mapping is used, so a leading "ß" becomes "SS".
func Capitalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return text
	}
	return cases.Upper(language.Und).String(text[:size]) + text[size:]
}
