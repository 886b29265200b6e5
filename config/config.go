package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar assistant specifics
	Groq           GroqConfig
	GoogleCalendar GoogleCalendarConfig
	Scheduler      SchedulerConfig
	Voice          VoiceConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GroqConfig struct {
	APIKey            string
	Model             string
	BaseURL           string
	MaxRetries        int
	RetryDelaySeconds int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// SchedulerConfig controls how extracted events are repaired. Timezone is
// the IANA name stamped on events, TimezoneOffset the matching fixed UTC
// offset used in canonical timestamps.
type SchedulerConfig struct {
	Timezone       string
	TimezoneOffset string
}

type VoiceConfig struct {
	// CaptureDir holds temporary audio captures. Empty means the OS temp dir.
	CaptureDir string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Groq chat backend
	cfg.Groq.APIKey = viper.GetString("groq.api_key")
	cfg.Groq.Model = viper.GetString("groq.model")
	cfg.Groq.BaseURL = viper.GetString("groq.base_url")
	cfg.Groq.MaxRetries = viper.GetInt("groq.max_retries")
	cfg.Groq.RetryDelaySeconds = viper.GetInt("groq.retry_delay_seconds")
	if groqKey := viper.GetString("groq_api_key"); groqKey != "" {
		cfg.Groq.APIKey = groqKey
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.TimezoneOffset = viper.GetString("scheduler.timezone_offset")

	cfg.Voice.CaptureDir = viper.GetString("voice.capture_dir")

	if cfg.Groq.APIKey == "" {
		return nil, fmt.Errorf("groq.api_key is required - set GROQ_API_KEY or add it to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Groq defaults
	viper.SetDefault("groq.model", "llama3-70b-8192")
	viper.SetDefault("groq.max_retries", 5)
	viper.SetDefault("groq.retry_delay_seconds", 10)

	// Calendar defaults
	viper.SetDefault("google_calendar.calendar_id", "primary")

	// Scheduler defaults
	viper.SetDefault("scheduler.timezone", "Asia/Kolkata")
	viper.SetDefault("scheduler.timezone_offset", "+05:30")
}
