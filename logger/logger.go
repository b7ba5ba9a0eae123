// Package logger wraps logrus with the settings used by the server.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a leveled, structured logger.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger writing to stderr.
func New(level, format string) *Logger {
	return NewWithWriter(os.Stderr, level, format)
}

func NewWithWriter(w io.Writer, level, format string) *Logger {
	l := logrus.New()
	l.Out = w

	switch format {
	case "json":
		l.Formatter = &logrus.JSONFormatter{}
	default:
		l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.Level = lvl

	return &Logger{entry: logrus.NewEntry(l)}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.entry.Debugf(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.entry.Infof(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.entry.Warnf(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.entry.Errorf(msg, args...)
}

// WithField returns a child logger carrying key=value.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// Writer exposes the underlying output, used for net/http's ErrorLog.
func (l *Logger) Writer() *io.PipeWriter {
	return l.entry.WriterLevel(logrus.ErrorLevel)
}
