package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-task-tracker/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	require.NoError(t, err)
	return client
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("unsupported format", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), "")
		assert.ErrorIs(t, err, gcalendar.ErrUnsupportedCredentials)
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), filepath.Join(dir, "missing.json"))
		assert.ErrorIs(t, err, gcalendar.ErrMissingToken)
	})

	t.Run("installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600))

		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath)
		assert.NoError(t, err)
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "bad-token.json")
		require.NoError(t, os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600))

		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath)
		assert.Error(t, err)
	})

	t.Run("missing credentials file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(dir, "nope.json"), "")
		assert.Error(t, err)
	})
}

func TestCreateEvent(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/calendar/v3/calendars/primary/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"event-123","htmlLink":"https://calendar.google.com/event-uri","summary":"Review"}`))
	})

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	start := time.Date(2024, 5, 2, 18, 0, 0, 0, loc)

	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Review",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "event-123", event.ID)
	assert.Equal(t, "https://calendar.google.com/event-uri", event.HtmlLink)

	startBody := body["start"].(map[string]any)
	assert.Equal(t, "2024-05-02T18:00:00+07:00", startBody["dateTime"])
	assert.Equal(t, "Asia/Ho_Chi_Minh", startBody["timeZone"])

	reminders := body["reminders"].(map[string]any)
	assert.Equal(t, false, reminders["useDefault"])
	overrides := reminders["overrides"].([]any)
	require.Len(t, overrides, 1)
	assert.EqualValues(t, 10, overrides[0].(map[string]any)["minutes"])
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "primary"})
	assert.Error(t, err)
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/calendar/v3/calendars/team/events/evt-1":
			w.WriteHeader(http.StatusNoContent)
		case "/calendar/v3/calendars/team/events/gone":
			w.WriteHeader(http.StatusGone)
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	})

	ctx := context.Background()
	assert.NoError(t, client.DeleteEvent(ctx, "team", "evt-1"))
	assert.NoError(t, client.DeleteEvent(ctx, "team", "gone"))
	assert.Error(t, client.DeleteEvent(ctx, "team", "forbidden"))
}
