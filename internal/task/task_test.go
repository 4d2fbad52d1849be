package task_test

import (
	"testing"

	"todo/internal/task"
)

func TestNew(t *testing.T) {
	got := task.New(7, "buy milk")

	if got.ID != 7 {
		t.Errorf("expected id 7, got %d", got.ID)
	}
	if got.Text != "Buy milk" {
		t.Errorf("expected %q, got %q", "Buy milk", got.Text)
	}
	if got.Status != task.StatusPending {
		t.Errorf("expected pending, got %q", got.Status)
	}
}

func TestMarkDone_Idempotent(t *testing.T) {
	tk := task.New(1, "x")
	tk.MarkDone()
	tk.MarkDone()

	if tk.Status != task.StatusDone {
		t.Errorf("expected done, got %q", tk.Status)
	}
}

func TestMarkPending_Idempotent(t *testing.T) {
	tk := task.New(1, "x")
	tk.MarkPending()

	if tk.Status != task.StatusPending {
		t.Errorf("expected pending, got %q", tk.Status)
	}
}

func TestToggled(t *testing.T) {
	tk := task.New(1, "x")

	done := tk.Toggled()
	if !done.Done() {
		t.Errorf("expected done after toggle, got %q", done.Status)
	}
	if tk.Done() {
		t.Error("toggled must not modify the receiver")
	}

	back := done.Toggled()
	if back.Status != task.StatusPending {
		t.Errorf("expected pending after second toggle, got %q", back.Status)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"buy milk", "Buy milk"},
		{"Buy milk", "Buy milk"},
		{"  call mom  ", "Call mom"},
		{"", ""},
		{"   ", ""},
		{"élan", "Élan"},
		{"ßig", "SSig"},
		{"1st place", "1st place"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := task.Capitalize(tt.in); got != tt.want {
				t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	if !task.StatusPending.Valid() || !task.StatusDone.Valid() {
		t.Error("expected known statuses to be valid")
	}
	if task.Status("completed").Valid() {
		t.Error("expected unknown status to be invalid")
	}
}
