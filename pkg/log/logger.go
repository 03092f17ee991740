package log

import (
	"fmt"
	"os"
	"time"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug", "DEBUG":
		return DebugLevel, nil
	case "info", "INFO", "":
		return InfoLevel, nil
	case "warn", "WARN", "warning":
		return WarnLevel, nil
	case "error", "ERROR":
		return ErrorLevel, nil
	case "fatal", "FATAL":
		return FatalLevel, nil
	}
	return InfoLevel, fmt.Errorf("log: unknown level %q", s)
}

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field { return Field{Key: key, Value: value} }

// Err builds the conventional error field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Str builds a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Entry represents a single log entry.
type Entry struct {
	Level     Level
	Message   string
	Fields    []Field
	Timestamp time.Time
	Component string
}

// Logger is the logging interface ulid-tool components depend on.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// Fatal logs and exits the process with status 1.
	Fatal(msg string, fields ...Field)

	// With returns a Logger that attaches the fields to every entry.
	With(fields ...Field) Logger
	// WithComponent tags entries with a component name.
	WithComponent(component string) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// Formatter renders an entry to bytes.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Output receives formatted entries.
type Output interface {
	Write(entry *Entry, formatted []byte) error
	Close() error
}

// LoggerOption configures a logger.
type LoggerOption func(*BaseLogger)

// BaseLogger implements Logger.
type BaseLogger struct {
	level     Level
	fields    []Field
	component string
	formatter Formatter
	outputs   []Output
	exit      func(int)
}

// NewLogger creates a logger. Defaults: InfoLevel, text format, console
// output.
func NewLogger(options ...LoggerOption) Logger {
	logger := &BaseLogger{
		level:     InfoLevel,
		formatter: &TextFormatter{},
		exit:      os.Exit,
	}
	for _, option := range options {
		option(logger)
	}
	if len(logger.outputs) == 0 {
		logger.outputs = append(logger.outputs, NewConsoleOutput())
	}
	return logger
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(l *BaseLogger) { l.level = level }
}

// WithFormatter sets the log formatter.
func WithFormatter(formatter Formatter) LoggerOption {
	return func(l *BaseLogger) { l.formatter = formatter }
}

// WithOutput adds an output to the logger.
func WithOutput(output Output) LoggerOption {
	return func(l *BaseLogger) { l.outputs = append(l.outputs, output) }
}

func (l *BaseLogger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}
	entry := &Entry{
		Level:     level,
		Message:   msg,
		Fields:    append(append([]Field(nil), l.fields...), fields...),
		Timestamp: time.Now(),
		Component: l.component,
	}
	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return
	}
	for _, out := range l.outputs {
		_ = out.Write(entry, formatted)
	}
}

func (l *BaseLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *BaseLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *BaseLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *BaseLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

func (l *BaseLogger) Fatal(msg string, fields ...Field) {
	l.log(FatalLevel, msg, fields)
	l.exit(1)
}

func (l *BaseLogger) With(fields ...Field) Logger {
	clone := *l
	clone.fields = append(append([]Field(nil), l.fields...), fields...)
	return &clone
}

func (l *BaseLogger) WithComponent(component string) Logger {
	clone := *l
	clone.component = component
	return &clone
}

func (l *BaseLogger) SetLevel(level Level) { l.level = level }
func (l *BaseLogger) GetLevel() Level      { return l.level }
