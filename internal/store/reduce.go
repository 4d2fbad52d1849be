package store

import "todo/internal/task"

// State is the immutable snapshot held by a Store.
type State struct {
	Tasks []task.Task
}

// Reduce returns the state that results from applying a to s.
// It never modifies s; the returned state always has its own task slice.
// Actions naming an unknown id leave the sequence unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddTask:
		tasks := make([]task.Task, len(s.Tasks), len(s.Tasks)+1)
		copy(tasks, s.Tasks)
		return State{Tasks: append(tasks, a.Task)}

	case DeleteTask:
		return State{Tasks: filter(s.Tasks, func(t task.Task) bool { return t.ID != a.ID })}

	case ToggleTask:
		return State{Tasks: mapTasks(s.Tasks, a.ID, task.Task.Toggled)}

	case EditTask:
		return State{Tasks: mapTasks(s.Tasks, a.ID, func(t task.Task) task.Task {
			t.Text = task.Capitalize(a.Text)
			return t
		})}

	case ClearCompleted:
		return State{Tasks: filter(s.Tasks, func(t task.Task) bool { return !t.Done() })}

	case ReplaceTasks:
		return State{Tasks: clone(a.Tasks)}

	default:
		return State{Tasks: clone(s.Tasks)}
	}
}

func filter(tasks []task.Task, keep func(task.Task) bool) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// mapTasks applies fn to the tasks whose id matches.
func mapTasks(tasks []task.Task, id int64, fn func(task.Task) task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t = fn(t)
		}
		out[i] = t
	}
	return out
}

func clone(tasks []task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	return out
}
