package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the caller identity from context
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if userID, ok := ctx.Value("user_id").(string); ok && userID != "" {
		logger.Entry = logger.Entry.WithField("user", userID)
	} else if email, ok := ctx.Value("email").(string); ok && email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}

	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
