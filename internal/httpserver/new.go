package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-tracker/internal/middleware"
	"voice-task-tracker/internal/nlp"
	taskUC "voice-task-tracker/internal/task/usecase"
	"voice-task-tracker/pkg/assemblyai"
	"voice-task-tracker/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Storage
	db *sql.DB

	// Task domain
	calendar   taskUC.Calendar
	calendarID string

	// Voice domain
	parser               nlp.UseCase
	transcriber          assemblyai.ITranscriber
	transcriptionTimeout time.Duration
	maxUploadBytes       int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config

	// Storage
	DB *sql.DB

	// Task domain. Calendar is optional.
	Calendar   taskUC.Calendar
	CalendarID string

	// Voice domain. Transcriber is optional; Parser is required.
	Parser               nlp.UseCase
	Transcriber          assemblyai.ITranscriber
	TranscriptionTimeout time.Duration
	MaxUploadBytes       int64
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                    logger,
		gin:                  gin.New(),
		port:                 cfg.Port,
		mode:                 cfg.Mode,
		environment:          cfg.Environment,
		shutdownTimeout:      shutdownTimeout,
		mw:                   middleware.New(logger, cfg.Middleware),
		db:                   cfg.DB,
		calendar:             cfg.Calendar,
		calendarID:           cfg.CalendarID,
		parser:               cfg.Parser,
		transcriber:          cfg.Transcriber,
		transcriptionTimeout: cfg.TranscriptionTimeout,
		maxUploadBytes:       cfg.MaxUploadBytes,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.parser == nil {
		return errors.New("parser is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
