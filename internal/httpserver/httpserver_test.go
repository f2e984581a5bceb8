package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-tracker/internal/middleware"
	"voice-task-tracker/internal/nlp/phrase"
	nlpUC "voice-task-tracker/internal/nlp/usecase"
	taskRepo "voice-task-tracker/internal/task/repository/sqlite"
	"voice-task-tracker/pkg/database"
	"voice-task-tracker/pkg/datemath"
	"voice-task-tracker/pkg/log"
	"voice-task-tracker/pkg/response"
)

func newTestServer(t *testing.T) (*HTTPServer, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m, err := taskRepo.NewMigrator(db, log.NewNop())
	require.NoError(t, err)
	_, err = m.Migrate(ctx)
	require.NoError(t, err)

	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	srv, err := New(log.NewNop(), Config{
		Port:       8080,
		Mode:       "test",
		DB:         db,
		Parser:     nlpUC.New(log.NewNop(), phrase.New(parser, now)),
		Middleware: middleware.Config{RequestsPerMin: 60},
	})
	require.NoError(t, err)
	return srv, db
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]any)
	return data
}

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv, db := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}

	w := serve(srv, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route /nope not found")

	require.NoError(t, db.Close())
	assert.Equal(t, http.StatusServiceUnavailable, serve(srv, http.MethodGet, "/ready", "").Code)
}

func TestVoiceToTaskFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	w := serve(srv, http.MethodPost, "/api/tasks/parse",
		`{"transcript":"Remind me to review the pull request by tomorrow evening, it's high priority"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	parsed := dataOf(t, w)["parsed"].(map[string]any)
	assert.Equal(t, "Review the pull request", parsed["title"])
	assert.Equal(t, "high", parsed["priority"])
	assert.Equal(t, "2024-05-02T18:00:00Z", parsed["due_date"])

	create, err := json.Marshal(map[string]any{
		"title":            parsed["title"],
		"priority":         parsed["priority"],
		"status":           parsed["status"],
		"due_date":         parsed["due_date"],
		"voice_transcript": parsed["voice_transcript"],
		"is_voice_created": true,
	})
	require.NoError(t, err)

	w = serve(srv, http.MethodPost, "/api/tasks", string(create))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := dataOf(t, w)["task"].(map[string]any)
	id := created["id"].(string)
	assert.NotEmpty(t, id)

	w = serve(srv, http.MethodGet, "/api/tasks/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Review the pull request", dataOf(t, w)["task"].(map[string]any)["title"])

	w = serve(srv, http.MethodGet, "/api/tasks?is_voice_created=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, dataOf(t, w)["total"])

	w = serve(srv, http.MethodGet, "/api/tasks/search/query?q=pull", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, dataOf(t, w)["count"])

	w = serve(srv, http.MethodGet, "/api/tasks/get/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, dataOf(t, w)["to_do"])

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodDelete, "/api/tasks/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(srv, http.MethodGet, "/api/tasks/"+id, "").Code)
}

func TestTranscriptionDisabled(t *testing.T) {
	srv, _ := newTestServer(t)

	w := serve(srv, http.MethodPost, "/api/tasks/transcribe", "")
	// No multipart body: rejected before the transcriber is consulted.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
