package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Levels re-exported for callers that do not import charm/log
const (
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file.
// When debug is set the level drops to Debug and output is also sent to stderr.
func NewFileLogger(path string, debug bool) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = f
	level := InfoLevel
	if debug {
		w = io.MultiWriter(f, os.Stderr)
		level = DebugLevel
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(w, level), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// NoteAdded logs a newly created note
func (l *Logger) NoteAdded(id int, uid string) {
	l.Info("note added",
		"id", id,
		"uid", uid)
}

// NoteEdited logs an edit; unchanged is set when empty input kept the old text
func (l *Logger) NoteEdited(id int, unchanged bool) {
	l.Info("note edited",
		"id", id,
		"unchanged", unchanged)
}

// NoteDeleted logs a deletion
func (l *Logger) NoteDeleted(id int) {
	l.Info("note deleted",
		"id", id)
}

// NotesLoaded logs the notes read from the store
func (l *Logger) NotesLoaded(key string, count int) {
	l.Debug("notes loaded",
		"key", key,
		"count", count)
}

// StoreOpened logs the storage backend in use
func (l *Logger) StoreOpened(backend, path string) {
	l.Debug("store opened",
		"backend", backend,
		"path", path)
}

// StoreError logs a storage failure
func (l *Logger) StoreError(operation string, err error) {
	l.Error("store error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(backend, path, key string) {
	l.Debug("config loaded",
		"store_backend", backend,
		"store_path", path,
		"app_key", key)
}
