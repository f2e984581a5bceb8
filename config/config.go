package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig
	Upload     UploadConfig

	// Voice task tracking
	NLP            NLPConfig
	Database       DatabaseConfig
	Transcription  TranscriptionConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type UploadConfig struct {
	MaxBytes int64
}

// NLPConfig controls how relative dates ("tomorrow evening") are resolved.
type NLPConfig struct {
	Timezone string
}

type DatabaseConfig struct {
	DSN string
}

// TranscriptionConfig configures the AssemblyAI client. An empty APIKey
// disables the audio endpoints.
type TranscriptionConfig struct {
	APIKey        string
	UploadURL     string
	TranscriptURL string
	LanguageCode  string
	PollInterval  time.Duration
	Timeout       time.Duration
}

// GoogleCalendarConfig is optional; an empty CredentialsPath disables reminders.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}
	return load(viper.New(), "./config", ".", "/etc/app/")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.Upload.MaxBytes = v.GetInt64("upload.max_bytes")

	// Voice task tracking
	cfg.NLP.Timezone = v.GetString("nlp.timezone")
	cfg.Database.DSN = v.GetString("database.dsn")

	cfg.Transcription.APIKey = v.GetString("transcription.api_key")
	cfg.Transcription.UploadURL = v.GetString("transcription.upload_url")
	cfg.Transcription.TranscriptURL = v.GetString("transcription.transcript_url")
	cfg.Transcription.LanguageCode = v.GetString("transcription.language_code")
	cfg.Transcription.PollInterval = v.GetDuration("transcription.poll_interval")
	cfg.Transcription.Timeout = v.GetDuration("transcription.timeout")
	if key := v.GetString("assembly_api_key"); key != "" {
		cfg.Transcription.APIKey = key
	}
	if url := v.GetString("assembly_api_upload_url"); url != "" {
		cfg.Transcription.UploadURL = url
	}
	if url := v.GetString("assembly_api_transcript_url"); url != "" {
		cfg.Transcription.TranscriptURL = url
	}

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("upload.max_bytes", 25<<20)

	v.SetDefault("nlp.timezone", "UTC")
	v.SetDefault("database.dsn", "file:data/tasks.db")
	v.SetDefault("transcription.language_code", "en")
	v.SetDefault("transcription.poll_interval", "3s")
	v.SetDefault("transcription.timeout", "5m")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}
	switch cfg.HTTPServer.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http_server.mode must be debug, release or test, got %q", cfg.HTTPServer.Mode)
	}
	if _, err := time.LoadLocation(cfg.NLP.Timezone); err != nil {
		return fmt.Errorf("nlp.timezone: %w", err)
	}
	if cfg.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if cfg.Upload.MaxBytes <= 0 {
		return errors.New("upload.max_bytes must be positive")
	}
	if cfg.Transcription.PollInterval <= 0 {
		return errors.New("transcription.poll_interval must be positive")
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return errors.New("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
