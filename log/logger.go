// File: logger.go
// Description: Logger is the structured logger threaded through the
//              parser and CLI. Adapted from the platform logger
//              this codebase otherwise uses, scoped down to what a single
//              short-lived CLI invocation needs: level filtering, a
//              chosen output format, persistent fields, and a
//              LogDiagnostic helper that understands errors.Diagnostic.
//              Async buffering and caller-frame capture are dropped —
//              there is no long-running server loop here to amortize
//              their cost against.
package log

import (
	"io"
	"os"
	"sync"

	lcierrors "github.com/rubicks/lci/errors"
)

// Logger is a structured logger safe for concurrent use.
type Logger struct {
	mutex         sync.RWMutex
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields
}

// Config configures a new Logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a Logger at LevelInfo, text format, writing to stderr.
func New() *Logger {
	return &Logger{
		level:         LevelInfo,
		formatter:     TextFormatter{},
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a Logger from an explicit Config.
func NewWithConfig(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level:         cfg.Level,
		formatter:     GetFormatter(cfg.Format),
		output:        out,
		name:          cfg.Name,
		contextFields: make(Fields),
	}
}

func (l *Logger) clone() *Logger {
	c := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: make(Fields),
	}
	for k, v := range l.contextFields {
		c.contextFields[k] = v
	}
	return c
}

// WithName returns a copy of l tagged with name.
func (l *Logger) WithName(name string) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy of l with key=value attached to every
// subsequent entry.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	c := l.clone()
	c.contextFields[key] = value
	return c
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Err = err
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fs := range fields {
		for k, v := range fs {
			entry.Fields[k] = v
		}
	}

	out, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.output.Write(out)
}

func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields...) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, fields...) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, fields...) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields...) }

// LogDiagnostic logs a parser diagnostic at a level derived from its
// severity, attaching its code, id, and position as fields.
func (l *Logger) LogDiagnostic(d *lcierrors.Diagnostic) {
	if d == nil {
		return
	}
	fields := Fields{
		"diagnostic_id":   d.ID.String(),
		"diagnostic_code": d.Code.String(),
		"position":        d.Pos.String(),
	}
	level := LevelError
	if d.Severity == lcierrors.SeverityFatal {
		level = LevelFatal
	}
	l.log(level, d.Error(), nil, fields)
}

// IsLevelEnabled reports whether level would currently be emitted.
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level.ShouldLog(l.level)
}
