package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default file names and rotation limits
const (
	DefaultLogFile    = "album-dl.log"
	DefaultErrorFile  = "error.log"
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 30
)

// Logger wraps zerolog for application logging.
type Logger struct {
	zerolog.Logger
	rotators []*lumberjack.Logger
}

// Config holds logger configuration.
type Config struct {
	Level      string
	Format     string // "console" or "json"
	Path       string // directory for log files; empty disables the full log file
	ErrorFile  string // error-level log, relative to Path or absolute
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Console    io.Writer // defaults to os.Stderr
}

var (
	mu          sync.Mutex
	initialized bool
	global      = &Logger{Logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()}
)

// Init configures the process-wide logger. Only the first call has an effect;
// later calls return the logger built by the first one.
func Init(cfg Config) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return global
	}
	global = New(cfg)
	initialized = true
	return global
}

// Get returns the process-wide logger. Before Init it logs to stderr at the
// default level.
func Get() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return global
}

// New creates a new logger instance.
func New(cfg Config) *Logger {
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	var consoleOutput io.Writer = console
	if cfg.Format != "json" {
		consoleOutput = zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		}
	}

	writers := []io.Writer{consoleOutput}
	var rotators []*lumberjack.Logger

	if cfg.Path != "" {
		if err := os.MkdirAll(cfg.Path, 0755); err == nil {
			r := newRotator(filepath.Join(cfg.Path, DefaultLogFile), cfg)
			rotators = append(rotators, r)
			writers = append(writers, r)
		}
	}

	if errPath := errorFilePath(cfg); errPath != "" {
		if err := os.MkdirAll(filepath.Dir(errPath), 0755); err == nil {
			r := newRotator(errPath, cfg)
			rotators = append(rotators, r)
			writers = append(writers, &minLevelWriter{w: r, min: zerolog.ErrorLevel})
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger, rotators: rotators}
}

func newRotator(path string, cfg Config) *lumberjack.Logger {
	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = DefaultMaxSizeMB
	}
	maxBackups := cfg.MaxBackups
	if maxBackups <= 0 {
		maxBackups = DefaultMaxBackups
	}
	maxAge := cfg.MaxAgeDays
	if maxAge <= 0 {
		maxAge = DefaultMaxAgeDays
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
}

func errorFilePath(cfg Config) string {
	if cfg.ErrorFile == "" {
		return ""
	}
	if filepath.IsAbs(cfg.ErrorFile) || cfg.Path == "" {
		return cfg.ErrorFile
	}
	return filepath.Join(cfg.Path, cfg.ErrorFile)
}

// minLevelWriter forwards only events at or above min
type minLevelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (m *minLevelWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (m *minLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < m.min || level == zerolog.NoLevel {
		return len(p), nil
	}
	return m.w.Write(p)
}

// Close closes the log files if any are open.
func (l *Logger) Close() error {
	var firstErr error
	for _, r := range l.rotators {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent returns a new logger with component field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}

// Component is a shorthand for Get().WithComponent(name).Logger
func Component(name string) zerolog.Logger {
	return Get().WithComponent(name).Logger
}
