package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"log/slog"
)

// Settings holds all scanner configuration.
type Settings struct {
	// Output settings
	OutputFile  string
	Format      string // "json", "yaml" or "text"
	PrettyPrint bool

	// Scan behavior
	ExcludePatterns []string
	LanguageHint    string
	RulesDir        string // optional: extra catalogs loaded from disk
	FailUnder       int    // exit non-zero when a quality score drops below this
	NoCodeStats     bool

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		OutputFile:      "",
		Format:          "json",
		PrettyPrint:     true,
		ExcludePatterns: []string{},
		FailUnder:       0,
		LogLevel:        slog.LevelError,
		LogFormat:       "text",
		LogFile:         "",
	}
}

// LoadSettings creates settings from defaults and applies environment
// variable overrides. Flags layer on top of the returned values.
func LoadSettings() *Settings {
	settings := DefaultSettings()

	if outputFile := os.Getenv("CODEGAUGE_OUTPUT"); outputFile != "" {
		settings.OutputFile = outputFile
	}

	if format := os.Getenv("CODEGAUGE_FORMAT"); format != "" {
		settings.Format = strings.ToLower(format)
	}

	if exclude := os.Getenv("CODEGAUGE_EXCLUDE"); exclude != "" {
		settings.ExcludePatterns = strings.Split(exclude, ",")
		for i, pattern := range settings.ExcludePatterns {
			settings.ExcludePatterns[i] = strings.TrimSpace(pattern)
		}
	}

	if rulesDir := os.Getenv("CODEGAUGE_RULES_DIR"); rulesDir != "" {
		settings.RulesDir = rulesDir
	}

	if failUnder := os.Getenv("CODEGAUGE_FAIL_UNDER"); failUnder != "" {
		if n, err := strconv.Atoi(failUnder); err == nil {
			settings.FailUnder = n
		}
	}

	if pretty := os.Getenv("CODEGAUGE_PRETTY"); pretty != "" {
		settings.PrettyPrint = strings.ToLower(pretty) == "true"
	}

	if logLevel := os.Getenv("CODEGAUGE_LOG_LEVEL"); logLevel != "" {
		if level, err := ParseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("CODEGAUGE_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("CODEGAUGE_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	return settings
}

// ParseLogLevel converts a string log level to slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// SetupLogging configures the default slog logger from the settings and
// returns a closer for the log file, if one was opened.
func (s *Settings) SetupLogging() (io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer

	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f
	}

	opts := &slog.HandlerOptions{Level: s.LogLevel}
	var handler slog.Handler
	if strings.ToLower(s.LogFormat) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	return closer, nil
}
