package commands

import (
	"context"
	"fmt"

	"todo/internal/service"
	"todo/internal/task"
)

// errOutOfRange is returned when a task number does not match a task.
type errOutOfRange int

func (e errOutOfRange) Error() string {
	return fmt.Sprintf("task number out of range: %d", int(e))
}

// findTaskByNumber resolves a 1-based list position to a task.
func findTaskByNumber(ctx context.Context, svc service.Service, num int) (task.Task, error) {
	if num < 1 {
		return task.Task{}, errOutOfRange(num)
	}

	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return task.Task{}, err
	}
	if num > len(tasks) {
		return task.Task{}, errOutOfRange(num)
	}
	return tasks[num-1], nil
}
