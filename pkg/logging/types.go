package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LogLevel represents the severity of a log message
type LogLevel string

const (
	// LogLevelDebug is for debug messages
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is for informational messages
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is for warning messages
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is for error messages
	LogLevelError LogLevel = "error"
	// LogLevelPanic is for panic messages
	LogLevelPanic LogLevel = "panic"
)

var levelRank = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelPanic: 4,
}

// ParseLevel validates a level name, case-insensitively. An empty name is info.
func ParseLevel(s string) (LogLevel, error) {
	if s == "" {
		return LogLevelInfo, nil
	}
	level := LogLevel(strings.ToLower(s))
	if _, ok := levelRank[level]; !ok {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// Config holds logging configuration
type Config struct {
	Level           LogLevel
	AppLogPath      string // empty logs to stderr
	DecisionLogPath string // empty discards decisions
}

var (
	// App is the global application logger
	App *AppLogger
	// Decisions is the global access decision logger
	Decisions DecisionLogger

	closers []io.Closer
)

func init() {
	App = NewAppLogger(os.Stderr, LogLevelWarn)
	Decisions = NewDecisionLogger(io.Discard)
}

// Initialize sets up the global loggers
func Initialize(config *Config) error {
	level := config.Level
	if level == "" {
		level = LogLevelInfo
	}
	if _, ok := levelRank[level]; !ok {
		return fmt.Errorf("unknown log level %q", level)
	}

	var appWriter io.Writer = os.Stderr
	if config.AppLogPath != "" {
		f, err := openAppend(config.AppLogPath)
		if err != nil {
			return fmt.Errorf("opening app log: %w", err)
		}
		appWriter = f
		closers = append(closers, f)
	}

	var decisionWriter io.Writer = io.Discard
	if config.DecisionLogPath != "" {
		f, err := openAppend(config.DecisionLogPath)
		if err != nil {
			return fmt.Errorf("opening decision log: %w", err)
		}
		decisionWriter = f
		closers = append(closers, f)
	}

	App = NewAppLogger(appWriter, level)
	Decisions = NewDecisionLogger(decisionWriter)
	return nil
}

// Close closes any log files opened by Initialize
func Close() error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	closers = nil
	return first
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

// formatValue formats a value for logfmt, quoting if necessary
func formatValue(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if s == "" || strings.ContainsAny(s, " =\"") {
		s = strings.ReplaceAll(s, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}

// formatPairs renders key/value pairs as logfmt, ignoring a dangling key
func formatPairs(keyvals []interface{}) string {
	var parts []string
	for i := 0; i+1 < len(keyvals); i += 2 {
		parts = append(parts, fmt.Sprintf("%s=%s", toString(keyvals[i]), formatValue(toString(keyvals[i+1]))))
	}
	return strings.Join(parts, " ")
}

func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	// keep each entry on one line
	return strings.Join(strings.Fields(fmt.Sprintf("%v", v)), " ")
}
