package logger

import "context"

// Logger is a leveled printf-style logger. Fields attached to ctx with
// WithRunID and WithVideo are added to every entry.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
