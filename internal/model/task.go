package model

import (
	"strings"
	"time"
)

// Priority is the urgency classification of a task.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Status is the workflow state of a task.
type Status string

const (
	StatusToDo       Status = "to_do"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Task is a persisted task record.
type Task struct {
	ID              string
	Title           string
	Description     string
	Status          Status
	Priority        Priority
	DueDate         *time.Time
	VoiceTranscript string
	IsVoiceCreated  bool
	CalendarLink    string
	CalendarEventID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ParsePriority normalizes user input ("High", " critical ") into a Priority.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return p, true
	}
	return "", false
}

// ParseStatus normalizes user input into a Status. Display forms such as
// "To Do" and "In Progress" are accepted alongside the canonical values.
func ParseStatus(s string) (Status, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch st := Status(normalized); st {
	case StatusToDo, StatusInProgress, StatusDone:
		return st, true
	case "todo":
		return StatusToDo, true
	}
	return "", false
}
