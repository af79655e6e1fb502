package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
)

type Logger struct {
	service   string
	hostname  string
	requestID string
	handler   *slog.Logger
}

type Option func(*options)

type options struct {
	out   io.Writer
	level slog.Level
}

// WithOutput redirects log lines, stdout by default.
func WithOutput(w io.Writer) Option { return func(o *options) { o.out = w } }

// WithLevel sets the minimum level: debug, info, warn or error.
func WithLevel(level string) Option { return func(o *options) { o.level = ParseLevel(level) } }

func New(service string, opts ...Option) *Logger {
	o := options{out: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&o)
	}
	hostname, _ := os.Hostname()
	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  slog.New(slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: o.level})),
	}
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a copy of l that stamps every entry with id.
func (l *Logger) WithRequestID(id string) *Logger {
	c := *l
	c.requestID = id
	return &c
}

func (l *Logger) RequestID() string { return l.requestID }

// NewRequestID returns a fresh correlation id.
func NewRequestID() string { return uuid.NewString() }

func (l *Logger) log(level slog.Level, action string, fields map[string]any, err error) {
	attrs := []slog.Attr{
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("request_id", l.requestID),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	if err != nil {
		attrs = append(attrs, slog.Group("error",
			slog.String("msg", err.Error()),
			slog.String("stack", string(debug.Stack())),
		))
	}
	l.handler.LogAttrs(context.Background(), level, action, attrs...)
}

func (l *Logger) Info(action string, fields map[string]any)  { l.log(slog.LevelInfo, action, fields, nil) }
func (l *Logger) Debug(action string, fields map[string]any) { l.log(slog.LevelDebug, action, fields, nil) }
func (l *Logger) Warn(action string, fields map[string]any)  { l.log(slog.LevelWarn, action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log(slog.LevelError, action, fields, err)
}
