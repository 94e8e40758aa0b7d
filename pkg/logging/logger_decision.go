package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// DecisionLogger records the outcome of access checks, one logfmt line each
type DecisionLogger interface {
	LogDecision(op string, path string, status string, details ...interface{})
}

type decisionLogger struct {
	logger *log.Logger
}

// NewDecisionLogger creates a decision logger writing to w
func NewDecisionLogger(w io.Writer) DecisionLogger {
	return &decisionLogger{logger: log.New(w, "", 0)}
}

func (l *decisionLogger) LogDecision(op string, path string, status string, details ...interface{}) {
	parts := []string{fmt.Sprintf("op=%s", formatValue(op))}
	if path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", formatValue(path)))
	}
	parts = append(parts, fmt.Sprintf("status=%s", formatValue(status)))
	if kv := formatPairs(details); kv != "" {
		parts = append(parts, kv)
	}

	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 -0700")
	l.logger.Printf("%s %s", timestamp, strings.Join(parts, " "))
}
