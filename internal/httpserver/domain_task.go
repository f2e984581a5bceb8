package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"voice-task-tracker/internal/middleware"
	taskHTTP "voice-task-tracker/internal/task/delivery/http"
	taskRepo "voice-task-tracker/internal/task/repository/sqlite"
	taskUC "voice-task-tracker/internal/task/usecase"
	voiceHTTP "voice-task-tracker/internal/voice/delivery/http"
	voiceUC "voice-task-tracker/internal/voice/usecase"
)

// setupTaskDomain wires the task and voice domains and registers their routes
// under /api/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	tasks := api.Group("/tasks")

	// Task CRUD and queries
	repo := taskRepo.New(srv.db, srv.l)
	tUC := taskUC.New(srv.l, repo, srv.calendar, srv.calendarID)
	taskHTTP.RegisterRoutes(tasks, taskHTTP.New(srv.l, tUC), mw)

	// Voice parsing and transcription
	vUC := voiceUC.New(srv.l, srv.transcriber, srv.parser, srv.transcriptionTimeout)
	voiceHTTP.RegisterRoutes(tasks, voiceHTTP.New(srv.l, vUC, srv.maxUploadBytes), mw)

	if srv.transcriber == nil {
		srv.l.Warnf(ctx, "Transcription not configured, audio endpoints will return 503")
	}
	if srv.calendar == nil {
		srv.l.Infof(ctx, "Google Calendar not configured, reminders disabled")
	}

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
