//go:generate mockgen -destination=mock_logger.go -package=${GOPACKAGE} -source=logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

type LoggerInterface interface {
	AddFuncName(name string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Logger keeps the name of the function currently handling the request and
// stamps it on every record.
type Logger struct {
	mu       sync.RWMutex
	base     *slog.Logger
	funcName string
}

// New creates a logger writing text to stderr and JSON to file. The returned
// cleanup closes the file.
func New(level, file, service, env string) (*Logger, func() error) {
	lvl := ParseLevel(level)
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Error("failed to open log file, using stderr only", "error", err, "file", file)
		return Wrap(slog.New(stderrHandler).With("service", service, "env", env)), func() error { return nil }
	}

	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl})
	base := slog.New(slogmulti.Fanout(stderrHandler, fileHandler)).With("service", service, "env", env)

	return Wrap(base), f.Close
}

// NewWithWriters is New with custom writers.
func NewWithWriters(stderr, file io.Writer, level string) *Logger {
	lvl := ParseLevel(level)
	return Wrap(slog.New(slogmulti.Fanout(
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}),
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: lvl}),
	)))
}

func Wrap(base *slog.Logger) *Logger {
	return &Logger{base: base}
}

// With returns a child logger; the function name is not inherited.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{base: l.base.With(args...)}
}

func (l *Logger) AddFuncName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.funcName = name
}

func (l *Logger) Debug(msg string) { l.log(slog.LevelDebug, msg) }
func (l *Logger) Info(msg string)  { l.log(slog.LevelInfo, msg) }
func (l *Logger) Warn(msg string)  { l.log(slog.LevelWarn, msg) }
func (l *Logger) Error(msg string) { l.log(slog.LevelError, msg) }

func (l *Logger) log(level slog.Level, msg string) {
	l.mu.RLock()
	funcName := l.funcName
	l.mu.RUnlock()

	if funcName != "" {
		l.base.Log(context.Background(), level, msg, "func", funcName)
		return
	}
	l.base.Log(context.Background(), level, msg)
}

// FromContext returns the logger stored under key, or a logger over
// slog.Default when none was attached.
func FromContext(ctx context.Context, key any) LoggerInterface {
	if l, ok := ctx.Value(key).(LoggerInterface); ok && l != nil {
		return l
	}
	return Wrap(slog.Default())
}

func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
