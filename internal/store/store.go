// Package store holds an account's ordered task list behind a reducer.
//
// All changes go through Dispatch, which folds an Action through Reduce and
// then notifies subscribers synchronously, in the order they subscribed.
// A Store is not safe for concurrent use.
package store

import "todo/internal/task"

// Subscriber is called with the new state after every dispatch.
type Subscriber func(State)

type subscription struct {
	id int
	fn Subscriber
}

// Store owns the current State of one task list.
type Store struct {
	state  State
	nextID int64

	subs    []subscription
	nextSub int
}

// New creates a store holding tasks. The id counter starts after the
// largest id present.
func New(tasks []task.Task) *Store {
	s := &Store{
		state:  State{Tasks: clone(tasks)},
		nextID: 1,
	}
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// State returns the current state. The returned slice is a copy.
func (s *Store) State() State {
	return State{Tasks: clone(s.state.Tasks)}
}

// Tasks returns a copy of the current task sequence.
func (s *Store) Tasks() []task.Task {
	return clone(s.state.Tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.state.Tasks)
}

// NextID reserves and returns an id that is unique within the store.
func (s *Store) NextID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// Dispatch applies a to the current state and notifies subscribers.
func (s *Store) Dispatch(a Action) State {
	s.state = Reduce(s.state, a)
	if add, ok := a.(AddTask); ok && add.Task.ID >= s.nextID {
		s.nextID = add.Task.ID + 1
	}

	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(s.State())
	}
	return s.State()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Add creates a pending task with a fresh id and appends it.
func (s *Store) Add(text string) task.Task {
	t := task.New(s.NextID(), text)
	s.Dispatch(AddTask{Task: t})
	return t
}

// Delete removes the task with id, if any.
func (s *Store) Delete(id int64) {
	s.Dispatch(DeleteTask{ID: id})
}

// Toggle flips the status of the task with id, if any.
func (s *Store) Toggle(id int64) {
	s.Dispatch(ToggleTask{ID: id})
}

// Edit replaces the text of the task with id, if any.
func (s *Store) Edit(id int64, text string) {
	s.Dispatch(EditTask{ID: id, Text: text})
}

// ClearCompleted removes every done task.
func (s *Store) ClearCompleted() {
	s.Dispatch(ClearCompleted{})
}

// Find returns the task with id.
func (s *Store) Find(id int64) (task.Task, bool) {
	for _, t := range s.state.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}
