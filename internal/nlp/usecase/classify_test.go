package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/nlp/usecase"
)

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Priority
	}{
		{"critical keyword", "server is down, this is an emergency", model.PriorityCritical},
		{"asap", "send the invoice ASAP", model.PriorityCritical},
		{"critical beats low regardless of position", "this is urgent but also low priority", model.PriorityCritical},
		{"low before urgent still critical", "low effort but urgent", model.PriorityCritical},
		{"high priority phrase", "book flights, high priority", model.PriorityHigh},
		{"important", "important: renew the domain", model.PriorityHigh},
		{"high beats low", "high value, low effort", model.PriorityHigh},
		{"low", "clean the garage whenever", model.PriorityLow},
		{"minor", "minor typo on the landing page", model.PriorityLow},
		{"default medium", "buy milk", model.PriorityMedium},
		{"whole word only", "drive on the highway to the lowlands", model.PriorityMedium},
		{"case insensitive", "CRITICAL patch", model.PriorityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.ClassifyPriority(tt.text))
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Status
	}{
		{"in progress", "report is in progress", model.StatusInProgress},
		{"working on", "I'm working on the slides", model.StatusInProgress},
		{"started", "Started the migration", model.StatusInProgress},
		{"doing", "doing the dishes", model.StatusInProgress},
		{"done", "laundry is done", model.StatusDone},
		{"completed", "COMPLETED the survey", model.StatusDone},
		{"finished", "finished reading chapter two", model.StatusDone},
		{"in progress beats done", "started yesterday, almost done", model.StatusInProgress},
		{"default to do", "call mom", model.StatusToDo},
		{"whole word only", "don't forget the donut", model.StatusToDo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.ClassifyStatus(tt.text))
		})
	}
}
