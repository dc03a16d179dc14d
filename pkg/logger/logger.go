// Package logger provides leveled, per-component logging for the battle
// simulator
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	// DEBUG level for dice rolls and other verbose detail
	DEBUG LogLevel = iota
	// INFO level for battle milestones
	INFO
	// WARN level for recoverable problems
	WARN
	// ERROR level for failures
	ERROR
	// FATAL level for errors that terminate the program
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String returns the string representation of a LogLevel
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel converts a name such as "debug" or "WARN" into a LogLevel
func ParseLevel(s string) (LogLevel, error) {
	for level, name := range levelNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return level, nil
		}
	}
	if strings.EqualFold(s, "warning") {
		return WARN, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger writes messages at or above its level to the console and/or a file
type Logger struct {
	level   LogLevel
	prefix  string
	logger  *log.Logger
	mu      sync.Mutex
	console io.Writer
	logFile *os.File
	exit    func(int)
}

// New creates a console logger with the given level and component prefix
func New(level LogLevel, prefix string) *Logger {
	return &Logger{
		level:   level,
		prefix:  prefix,
		logger:  log.New(os.Stderr, "", 0),
		console: os.Stderr,
		exit:    os.Exit,
	}
}

// SetOutput replaces the console writer; nil disables console output
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = w
	l.updateOutput()
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current minimum level
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetFile additionally writes to filename; an empty name closes the file
func (l *Logger) SetFile(filename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}

	if filename != "" {
		f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.logFile = f
	}

	l.updateOutput()
	return nil
}

// updateOutput must be called with l.mu held
func (l *Logger) updateOutput() {
	var writers []io.Writer
	if l.console != nil {
		writers = append(writers, l.console)
	}
	if l.logFile != nil {
		writers = append(writers, l.logFile)
	}

	switch len(writers) {
	case 0:
		l.logger.SetOutput(io.Discard)
	case 1:
		l.logger.SetOutput(writers[0])
	default:
		l.logger.SetOutput(io.MultiWriter(writers...))
	}
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s: %s", timestamp, level, l.prefix, message)

	if level == FATAL {
		l.exit(1)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
}

// Default logger instances for the simulator's components
var (
	Game        = New(WARN, "GAME")
	Catalog     = New(WARN, "CATALOG")
	Persistence = New(WARN, "PERSISTENCE")
	CLI         = New(WARN, "CLI")
)

func all() []*Logger {
	return []*Logger{Game, Catalog, Persistence, CLI}
}

// InitializeFileLogging directs every default logger to a dated file in
// directory, creating the directory when needed
func InitializeFileLogging(directory string) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile := filepath.Join(directory, fmt.Sprintf("battle_%s.log", time.Now().Format("2006-01-02")))
	for _, l := range all() {
		if err := l.SetFile(logFile); err != nil {
			return err
		}
	}
	return nil
}

// SetGlobalLogLevel sets the log level for all default loggers
func SetGlobalLogLevel(level LogLevel) {
	for _, l := range all() {
		l.SetLevel(level)
	}
}

// SetGlobalOutput sets the console writer for all default loggers
func SetGlobalOutput(w io.Writer) {
	for _, l := range all() {
		l.SetOutput(w)
	}
}
