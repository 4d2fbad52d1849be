package store_test

import (
	"reflect"
	"testing"

	"todo/internal/store"
	"todo/internal/task"
)

func pending(id int64, text string) task.Task {
	return task.Task{ID: id, Text: text, Status: task.StatusPending}
}

func done(id int64, text string) task.Task {
	return task.Task{ID: id, Text: text, Status: task.StatusDone}
}

func TestReduce(t *testing.T) {
	base := store.State{Tasks: []task.Task{pending(1, "A"), done(2, "B"), pending(3, "C")}}

	tests := []struct {
		name   string
		action store.Action
		want   []task.Task
	}{
		{
			name:   "add appends",
			action: store.AddTask{Task: pending(4, "D")},
			want:   []task.Task{pending(1, "A"), done(2, "B"), pending(3, "C"), pending(4, "D")},
		},
		{
			name:   "delete removes match",
			action: store.DeleteTask{ID: 2},
			want:   []task.Task{pending(1, "A"), pending(3, "C")},
		},
		{
			name:   "delete unknown id is a no-op",
			action: store.DeleteTask{ID: 99},
			want:   []task.Task{pending(1, "A"), done(2, "B"), pending(3, "C")},
		},
		{
			name:   "toggle pending to done",
			action: store.ToggleTask{ID: 1},
			want:   []task.Task{done(1, "A"), done(2, "B"), pending(3, "C")},
		},
		{
			name:   "toggle done to pending",
			action: store.ToggleTask{ID: 2},
			want:   []task.Task{pending(1, "A"), pending(2, "B"), pending(3, "C")},
		},
		{
			name:   "toggle unknown id is a no-op",
			action: store.ToggleTask{ID: 99},
			want:   []task.Task{pending(1, "A"), done(2, "B"), pending(3, "C")},
		},
		{
			name:   "edit replaces and capitalizes text",
			action: store.EditTask{ID: 3, Text: "call mom"},
			want:   []task.Task{pending(1, "A"), done(2, "B"), pending(3, "Call mom")},
		},
		{
			name:   "edit unknown id is a no-op",
			action: store.EditTask{ID: 99, Text: "x"},
			want:   []task.Task{pending(1, "A"), done(2, "B"), pending(3, "C")},
		},
		{
			name:   "clear completed keeps pending in order",
			action: store.ClearCompleted{},
			want:   []task.Task{pending(1, "A"), pending(3, "C")},
		},
		{
			name:   "replace sets the whole sequence",
			action: store.ReplaceTasks{Tasks: []task.Task{done(7, "Z")}},
			want:   []task.Task{done(7, "Z")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]task.Task(nil), base.Tasks...)

			got := store.Reduce(base, tt.action)

			if !reflect.DeepEqual(got.Tasks, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, got.Tasks)
			}
			if !reflect.DeepEqual(base.Tasks, before) {
				t.Errorf("reduce mutated its input: %+v", base.Tasks)
			}
		})
	}
}

func TestReduce_ReturnsFreshSlice(t *testing.T) {
	base := store.State{Tasks: []task.Task{pending(1, "A")}}

	got := store.Reduce(base, store.ToggleTask{ID: 99})
	got.Tasks[0].Text = "changed"

	if base.Tasks[0].Text != "A" {
		t.Error("reduced state shares its backing array with the input")
	}
}

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	s := store.New(nil)

	a := s.Add("first")
	b := s.Add("second")

	if a.ID == b.ID {
		t.Fatalf("expected unique ids, both were %d", a.ID)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", s.Len())
	}
	tasks := s.Tasks()
	if tasks[0].Text != "First" || tasks[1].Text != "Second" {
		t.Errorf("expected append order, got %+v", tasks)
	}
}

func TestStore_IDsContinueAfterRestoredTasks(t *testing.T) {
	s := store.New([]task.Task{pending(5, "A"), pending(2, "B")})

	got := s.Add("c")

	if got.ID != 6 {
		t.Errorf("expected id 6, got %d", got.ID)
	}
}

func TestStore_SubscribersNotifiedInOrder(t *testing.T) {
	s := store.New(nil)

	var calls []string
	s.Subscribe(func(st store.State) { calls = append(calls, "first") })
	s.Subscribe(func(st store.State) { calls = append(calls, "second") })

	s.Add("x")

	want := []string{"first", "second"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("expected %v, got %v", want, calls)
	}
}

func TestStore_SubscriberSeesNewState(t *testing.T) {
	s := store.New(nil)

	var seen int
	s.Subscribe(func(st store.State) { seen = len(st.Tasks) })

	s.Add("x")
	if seen != 1 {
		t.Errorf("expected subscriber to see 1 task, saw %d", seen)
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	s := store.New(nil)

	var first, second int
	unsubscribe := s.Subscribe(func(store.State) { first++ })
	s.Subscribe(func(store.State) { second++ })

	s.Add("x")
	unsubscribe()
	unsubscribe()
	s.Add("y")

	if first != 1 {
		t.Errorf("expected removed subscriber to run once, ran %d times", first)
	}
	if second != 2 {
		t.Errorf("expected remaining subscriber to run twice, ran %d times", second)
	}
}

func TestStore_ToggleUnknownLeavesTasksUnchanged(t *testing.T) {
	s := store.New([]task.Task{pending(1, "A"), done(2, "B")})
	before := s.Tasks()

	s.Toggle(42)

	if !reflect.DeepEqual(s.Tasks(), before) {
		t.Errorf("expected %+v, got %+v", before, s.Tasks())
	}
}

func TestStore_EndToEnd(t *testing.T) {
	s := store.New(nil)

	added := s.Add("buy milk")
	s.Toggle(added.ID)

	got, ok := s.Find(added.ID)
	if !ok || got.Status != task.StatusDone {
		t.Fatalf("expected done task, got %+v (found=%v)", got, ok)
	}

	s.Edit(added.ID, "buy oat milk")
	if got, _ := s.Find(added.ID); got.Text != "Buy oat milk" {
		t.Errorf("expected edited text, got %q", got.Text)
	}

	s.ClearCompleted()
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %+v", s.Tasks())
	}
}

func TestStore_TasksReturnsCopy(t *testing.T) {
	s := store.New([]task.Task{pending(1, "A")})

	tasks := s.Tasks()
	tasks[0].Text = "changed"

	if got, _ := s.Find(1); got.Text != "A" {
		t.Error("Tasks exposed the store's internal slice")
	}
}
