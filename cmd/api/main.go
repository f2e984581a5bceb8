package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"voice-task-tracker/config"
	_ "voice-task-tracker/docs" // Swagger docs
	"voice-task-tracker/internal/httpserver"
	"voice-task-tracker/internal/middleware"
	"voice-task-tracker/internal/nlp/phrase"
	nlpUC "voice-task-tracker/internal/nlp/usecase"
	taskRepo "voice-task-tracker/internal/task/repository/sqlite"
	taskUC "voice-task-tracker/internal/task/usecase"
	"voice-task-tracker/pkg/assemblyai"
	"voice-task-tracker/pkg/database"
	"voice-task-tracker/pkg/datemath"
	"voice-task-tracker/pkg/gcalendar"
	"voice-task-tracker/pkg/log"
)

// @title       Voice Task Tracker API
// @description Turns spoken or typed utterances into structured tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database + migrations
	db, err := database.OpenSQLite(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	migrator, err := taskRepo.NewMigrator(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load migrations: ", err)
		return
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	// 4. NLP parser
	dateMathParser, err := datemath.NewParser(cfg.NLP.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid nlp.timezone: ", err)
		return
	}
	parser := nlpUC.New(logger, phrase.New(dateMathParser, nil))

	// 5. Transcription (optional)
	var transcriber assemblyai.ITranscriber
	if cfg.Transcription.APIKey != "" {
		client, err := assemblyai.New(cfg.Transcription.APIKey)
		if err != nil {
			logger.Error(ctx, "Failed to create transcription client: ", err)
			return
		}
		transcriber = client.
			WithUploadURL(cfg.Transcription.UploadURL).
			WithTranscriptURL(cfg.Transcription.TranscriptURL).
			WithLanguageCode(cfg.Transcription.LanguageCode).
			WithPollInterval(cfg.Transcription.PollInterval)
		logger.Info(ctx, "Transcription initialized")
	} else {
		logger.Warn(ctx, "ASSEMBLY_API_KEY is missing, audio endpoints disabled")
	}

	// 6. Google Calendar client (optional)
	var calendar taskUC.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "Run `voicetask calendar-auth` to generate a token")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		DB:                   db,
		Calendar:             calendar,
		CalendarID:           cfg.GoogleCalendar.CalendarID,
		Parser:               parser,
		Transcriber:          transcriber,
		TranscriptionTimeout: cfg.Transcription.Timeout,
		MaxUploadBytes:       cfg.Upload.MaxBytes,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
