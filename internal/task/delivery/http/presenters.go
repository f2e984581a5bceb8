package http

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// dueDateLayouts are tried in order; zone-less layouts are read in local time.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, errInvalidDueDate
}

// --- Request DTOs ---

type createReq struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	DueDate         *string `json:"due_date"`
	VoiceTranscript string  `json:"voice_transcript"`
	IsVoiceCreated  bool    `json:"is_voice_created"`

	dueDate *time.Time
}

func (r *createReq) validate() error {
	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) != "" {
		due, err := parseDueDate(*r.DueDate)
		if err != nil {
			return err
		}
		r.dueDate = due
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:           r.Title,
		Description:     r.Description,
		Status:          r.Status,
		Priority:        r.Priority,
		DueDate:         r.dueDate,
		VoiceTranscript: r.VoiceTranscript,
		IsVoiceCreated:  r.IsVoiceCreated,
	}
}

// ---

type listReq struct {
	Status         string `form:"status"`
	Priority       string `form:"priority"`
	IsVoiceCreated string `form:"is_voice_created"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`

	isVoiceCreated *bool
}

func (r *listReq) validate() error {
	if r.IsVoiceCreated != "" {
		b, err := strconv.ParseBool(r.IsVoiceCreated)
		if err != nil {
			return errInvalidBool
		}
		r.isVoiceCreated = &b
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		Status:         r.Status,
		Priority:       r.Priority,
		IsVoiceCreated: r.isVoiceCreated,
		Limit:          limit,
		Offset:         r.Offset,
	}
}

// ---

// updateReq keeps due_date raw so that an explicit null clears the date
// while an absent key leaves it untouched.
type updateReq struct {
	ID          string          `json:"-"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	Priority    *string         `json:"priority"`
	DueDate     json.RawMessage `json:"due_date"`

	dueDate      *time.Time
	clearDueDate bool
}

func (r *updateReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	if len(r.DueDate) == 0 {
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(r.DueDate), []byte("null")) {
		r.clearDueDate = true
		return nil
	}

	var raw string
	if err := json.Unmarshal(r.DueDate, &raw); err != nil {
		return errInvalidDueDate
	}
	if strings.TrimSpace(raw) == "" {
		r.clearDueDate = true
		return nil
	}
	due, err := parseDueDate(raw)
	if err != nil {
		return err
	}
	r.dueDate = due
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Status:       r.Status,
		Priority:     r.Priority,
		DueDate:      r.dueDate,
		ClearDueDate: r.clearDueDate,
	}
}

// ---

type searchReq struct {
	Query string `json:"query" form:"q"`
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	DueDate         *time.Time `json:"due_date"`
	VoiceTranscript string     `json:"voice_transcript,omitempty"`
	IsVoiceCreated  bool       `json:"is_voice_created"`
	CalendarLink    string     `json:"calendar_link,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          string(t.Status),
		Priority:        string(t.Priority),
		DueDate:         t.DueDate,
		VoiceTranscript: t.VoiceTranscript,
		IsVoiceCreated:  t.IsVoiceCreated,
		CalendarLink:    t.CalendarLink,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks:  newTaskResps(out.Tasks),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type tasksResp struct {
	Count int        `json:"count"`
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newTasksResp(tasks []model.Task) tasksResp {
	return tasksResp{Count: len(tasks), Tasks: newTaskResps(tasks)}
}

type statsResp struct {
	Total      int `json:"total"`
	ToDo       int `json:"to_do"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
}

func (h *handler) newStatsResp(s task.Stats) statsResp {
	return statsResp{
		Total:      s.Total,
		ToDo:       s.ToDo,
		InProgress: s.InProgress,
		Done:       s.Done,
	}
}
