package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "debug", cfg.HTTPServer.Mode)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, "UTC", cfg.NLP.Timezone)
	assert.Equal(t, int64(25<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 3*time.Second, cfg.Transcription.PollInterval)
	assert.Equal(t, "en", cfg.Transcription.LanguageCode)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
http_server:
  port: 9090
  mode: release
nlp:
  timezone: Asia/Ho_Chi_Minh
cors:
  allowed_origins: "http://a.local, http://b.local"
transcription:
  api_key: from-file
  poll_interval: 500ms
`)
	t.Setenv("ASSEMBLY_API_KEY", "from-env")
	t.Setenv("DATABASE_DSN", ":memory:")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.NLP.Timezone)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "from-env", cfg.Transcription.APIKey)
	assert.Equal(t, 500*time.Millisecond, cfg.Transcription.PollInterval)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad port", "http_server:\n  port: 70000\n"},
		{"bad mode", "http_server:\n  mode: verbose\n"},
		{"bad timezone", "nlp:\n  timezone: Mars/Olympus\n"},
		{"zero upload", "upload:\n  max_bytes: 0\n"},
		{"zero poll", "transcription:\n  poll_interval: 0s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(viper.New(), writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	_, err := load(viper.New(), writeConfig(t, "http_server: [unterminated"))
	assert.Error(t, err)
}
