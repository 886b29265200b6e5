package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	eventHTTP "calendar-assistant/internal/event/delivery/http"
	"calendar-assistant/internal/event/extractor"
	"calendar-assistant/internal/event/usecase"
	"calendar-assistant/internal/event/validator"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/groq"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/recorder"
)

// @title       Calendar Assistant API
// @description Natural language and voice scheduling for Google Calendar, backed by a Groq-hosted LLM.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Groq chat backend
	groqClient, err := groq.New(groq.Config{
		APIKey:     cfg.Groq.APIKey,
		Model:      cfg.Groq.Model,
		BaseURL:    cfg.Groq.BaseURL,
		MaxRetries: cfg.Groq.MaxRetries,
		RetryDelay: time.Duration(cfg.Groq.RetryDelaySeconds) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Groq client: %v", err)
		return
	}
	logger.Infof(ctx, "Groq client ready (model: %s)", groqClient.Model())

	// 4. Google Calendar client
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "google_calendar.credentials_path is required")
		return
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Calendar: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	// 5. Event pipeline
	ex := extractor.New(logger, groqClient, cfg.Scheduler.Timezone)
	val := validator.New(validator.Config{
		TimeZone: cfg.Scheduler.Timezone,
		Offset:   cfg.Scheduler.TimezoneOffset,
	})
	eventUC := usecase.New(logger, ex, val, calendarClient, cfg.GoogleCalendar.CalendarID)

	// 6. Voice transcription (same API key as chat)
	var transcriber recorder.Transcriber
	if t, tErr := groq.NewTranscriber(groq.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
	}); tErr != nil {
		logger.Warnf(ctx, "Voice scheduling disabled: %v", tErr)
	} else {
		transcriber = t
	}
	rec := recorder.New(cfg.Voice.CaptureDir)

	// 7. HTTP delivery
	eventHandler := eventHTTP.New(logger, eventUC, rec, transcriber)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		EventHandler:    eventHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
