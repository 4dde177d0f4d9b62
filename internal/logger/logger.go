package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FieldRunID = "run_id"
	FieldVideo = "video"
)

type contextKey string

const (
	runIDKey contextKey = FieldRunID
	videoKey contextKey = FieldVideo
)

type implLogger struct {
	logger zerolog.Logger
}

// New creates a Logger writing to stderr.
func New(level, format string) Logger {
	return NewWithWriter(level, format, os.Stderr)
}

// NewWithWriter creates a Logger writing to w. Format "json" emits one JSON
// object per line; anything else uses the human-readable console writer.
func NewWithWriter(level, format string, w io.Writer) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	return &implLogger{
		logger: zerolog.New(out).Level(lvl).With().Timestamp().Logger(),
	}
}

// WithRunID returns a ctx whose log entries carry the batch run id.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// WithVideo returns a ctx whose log entries carry the video being processed.
func WithVideo(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, videoKey, name)
}

func (l *implLogger) event(ctx context.Context, e *zerolog.Event) *zerolog.Event {
	if ctx == nil {
		return e
	}
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		e = e.Str(FieldRunID, v)
	}
	if v, ok := ctx.Value(videoKey).(string); ok && v != "" {
		e = e.Str(FieldVideo, v)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.logger.Debug()).Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.logger.Info()).Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.logger.Warn()).Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.event(ctx, l.logger.Error()).Msgf(msg, args...)
}
