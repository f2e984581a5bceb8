package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	"voice-task-tracker/internal/task/usecase"
	"voice-task-tracker/pkg/log"
)

func TestList(t *testing.T) {
	r := newMockRepo(
		model.Task{ID: "a", Status: model.StatusToDo, Priority: model.PriorityHigh},
		model.Task{ID: "b", Status: model.StatusDone, Priority: model.PriorityHigh},
	)
	uc := usecase.New(log.NewNop(), r, nil, "")
	voice := true

	out, err := uc.List(context.Background(), task.ListInput{Status: "To Do", Priority: "high", IsVoiceCreated: &voice, Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Equal(t, model.StatusToDo, r.lastList.Status)
	assert.Equal(t, model.PriorityHigh, r.lastList.Priority)
	assert.Equal(t, &voice, r.lastList.IsVoiceCreated)
	assert.Equal(t, 10, out.Limit)
	assert.Equal(t, 5, out.Offset)
	assert.Equal(t, 1, out.Total)

	_, err = uc.List(context.Background(), task.ListInput{Status: "blocked"})
	assert.ErrorIs(t, err, task.ErrInvalidStatus)

	_, err = uc.List(context.Background(), task.ListInput{Priority: "p0"})
	assert.ErrorIs(t, err, task.ErrInvalidPriority)
}

func TestByPriority(t *testing.T) {
	r := newMockRepo(
		model.Task{ID: "a", Priority: model.PriorityCritical},
		model.Task{ID: "b", Priority: model.PriorityLow},
	)
	uc := usecase.New(log.NewNop(), r, nil, "")

	got, err := uc.ByPriority(context.Background(), "CRITICAL")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	_, err = uc.ByPriority(context.Background(), "urgent")
	assert.ErrorIs(t, err, task.ErrInvalidPriority)
}

func TestSearch(t *testing.T) {
	uc := usecase.New(log.NewNop(), newMockRepo(), nil, "")

	got, err := uc.Search(context.Background(), "  milk ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "milk", got[0].Title)

	_, err = uc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, task.ErrEmptyQuery)
}

func TestUpcoming(t *testing.T) {
	r := newMockRepo()
	uc := usecase.New(log.NewNop(), r, nil, "")

	_, err := uc.Upcoming(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, r.lastDue.After)
	assert.Equal(t, r.lastDue.After.AddDate(0, 0, 7), r.lastDue.Before)
	assert.Equal(t, model.StatusDone, r.lastDue.ExcludeStatus)

	_, err = uc.Upcoming(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, r.lastDue.After.AddDate(0, 0, 3), r.lastDue.Before)

	for _, days := range []int{-1, 366} {
		_, err = uc.Upcoming(context.Background(), days)
		assert.ErrorIs(t, err, task.ErrInvalidDays, "days=%d", days)
	}
}

func TestOverdue(t *testing.T) {
	r := newMockRepo()
	uc := usecase.New(log.NewNop(), r, nil, "")

	_, err := uc.Overdue(context.Background())
	require.NoError(t, err)
	assert.Nil(t, r.lastDue.After)
	assert.False(t, r.lastDue.Before.IsZero())
	assert.Equal(t, model.StatusDone, r.lastDue.ExcludeStatus)
}

func TestStats(t *testing.T) {
	r := newMockRepo(
		model.Task{ID: "a", Status: model.StatusToDo},
		model.Task{ID: "b", Status: model.StatusToDo},
		model.Task{ID: "c", Status: model.StatusInProgress},
		model.Task{ID: "d", Status: model.StatusDone},
	)
	uc := usecase.New(log.NewNop(), r, nil, "")

	got, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, task.Stats{Total: 4, ToDo: 2, InProgress: 1, Done: 1}, got)

	r.failAll = true
	_, err = uc.Stats(context.Background())
	assert.ErrorIs(t, err, errDB)
}
