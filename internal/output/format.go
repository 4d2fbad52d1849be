// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/task"
)

const (
	// ListSeparator is the separator line around a list header.
	ListSeparator = "------------"

	// EmptyMessage is printed when there are no tasks.
	EmptyMessage = "no tasks found"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }] {TEXT}\n" (4-wide right-aligned number, two spaces, checkbox, text)
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s %s\n", num, checkbox(t), normalizeText(t.Text))
}

// FormatTasks writes every task numbered from 1. An empty list prints
// EmptyMessage unless quiet is set.
func FormatTasks(w io.Writer, tasks []task.Task, quiet bool) {
	if len(tasks) == 0 {
		if !quiet {
			fmt.Fprintln(w, EmptyMessage)
		}
		return
	}
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// FormatListHeader formats the header shown above an account's list.
func FormatListHeader(w io.Writer, title string) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, normalizeListTitle(title))
	fmt.Fprintln(w, ListSeparator)
}

// FormatSummary writes "N pending, M done".
func FormatSummary(w io.Writer, tasks []task.Task) {
	var done int
	for _, t := range tasks {
		if t.Done() {
			done++
		}
	}
	fmt.Fprintf(w, "%d pending, %d done\n", len(tasks)-done, done)
}

func checkbox(t task.Task) string {
	if t.Done() {
		return "[x]"
	}
	return "[ ]"
}

// normalizeText normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}

// normalizeListTitle normalizes a list title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
