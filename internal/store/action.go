package store

import "todo/internal/task"

// Action is a request to change a store's state.
// The set of actions is closed; see the types below.
type Action interface {
	// Type returns the action name used in logs.
	Type() string

	action()
}

// AddTask appends Task to the end of the sequence.
type AddTask struct {
	Task task.Task
}

// DeleteTask removes every task with ID.
type DeleteTask struct {
	ID int64
}

// ToggleTask flips the status of the task with ID.
type ToggleTask struct {
	ID int64
}

// EditTask replaces the text of the task with ID.
type EditTask struct {
	ID   int64
	Text string
}

// ClearCompleted drops every done task.
type ClearCompleted struct{}

// ReplaceTasks sets the whole sequence. It restores an earlier state when
// a change could not be saved.
type ReplaceTasks struct {
	Tasks []task.Task
}

func (AddTask) Type() string        { return "add_task" }
func (DeleteTask) Type() string     { return "delete_task" }
func (ToggleTask) Type() string     { return "toggle_task" }
func (EditTask) Type() string       { return "edit_task" }
func (ClearCompleted) Type() string { return "clear_completed" }
func (ReplaceTasks) Type() string   { return "replace_tasks" }

func (AddTask) action()        {}
func (DeleteTask) action()     {}
func (ToggleTask) action()     {}
func (EditTask) action()       {}
func (ClearCompleted) action() {}
func (ReplaceTasks) action()   {}
