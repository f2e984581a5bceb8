package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-task-tracker/internal/model"
	repo "voice-task-tracker/internal/task/repository"
	"voice-task-tracker/pkg/gcalendar"
)

var errDB = errors.New("db error")

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	tasks   map[string]model.Task
	nextID  int
	failAll bool

	lastList repo.ListTasksOptions
	lastDue  repo.ListDueOptions
	updates  []repo.UpdateTaskOptions
	deleted  []string
}

func newMockRepo(seed ...model.Task) *mockRepo {
	m := &mockRepo{tasks: make(map[string]model.Task)}
	for _, t := range seed {
		m.tasks[t.ID] = t
	}
	return m
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.failAll {
		return model.Task{}, errDB
	}
	m.nextID++
	t := model.Task{
		ID:              fmt.Sprintf("task-%d", m.nextID),
		Title:           opt.Title,
		Description:     opt.Description,
		Status:          opt.Status,
		Priority:        opt.Priority,
		DueDate:         opt.DueDate,
		VoiceTranscript: opt.VoiceTranscript,
		IsVoiceCreated:  opt.IsVoiceCreated,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	if m.failAll {
		return model.Task{}, errDB
	}
	return m.tasks[id], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	m.lastList = opt
	if m.failAll {
		return nil, 0, errDB
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.Priority != "" && t.Priority != opt.Priority {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	m.updates = append(m.updates, opt)
	if m.failAll {
		return model.Task{}, errDB
	}
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t.Title = opt.Title
	t.Description = opt.Description
	t.Status = opt.Status
	t.Priority = opt.Priority
	t.DueDate = opt.DueDate
	t.CalendarLink = opt.CalendarLink
	t.CalendarEventID = opt.CalendarEventID
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	if m.failAll {
		return errDB
	}
	delete(m.tasks, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockRepo) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	if m.failAll {
		return nil, errDB
	}
	return []model.Task{{ID: "hit", Title: query}}, nil
}

func (m *mockRepo) ListDue(ctx context.Context, opt repo.ListDueOptions) ([]model.Task, error) {
	m.lastDue = opt
	if m.failAll {
		return nil, errDB
	}
	return []model.Task{}, nil
}

func (m *mockRepo) CountByStatus(ctx context.Context) (map[model.Status]int, error) {
	if m.failAll {
		return nil, errDB
	}
	counts := make(map[model.Status]int)
	for _, t := range m.tasks {
		counts[t.Status]++
	}
	return counts, nil
}

type mockCalendar struct {
	fail      bool
	created   []gcalendar.CreateEventRequest
	deletedID []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.created = append(m.created, req)
	if m.fail {
		return nil, errors.New("calendar down")
	}
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar.example/evt-1", StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deletedID = append(m.deletedID, eventID)
	if m.fail {
		return errors.New("calendar down")
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func dueAt(hour int) *time.Time {
	return ptr(time.Date(2024, 5, 2, hour, 0, 0, 0, time.UTC))
}
