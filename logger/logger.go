// Package logger builds the zap logger and carries it through contexts.
// The terminal owns stdout, so an enabled logger writes to a file only.
package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FileName is the log file created inside the log directory
	FileName = "text-animator.log"

	// MaxSize triggers rotation at startup
	MaxSize = 10 * 1024 * 1024

	// DefaultDir is used when Options.Dir is empty
	DefaultDir = "logs"
)

// Options selects whether and where to log
type Options struct {
	Debug bool
	Dir   string
}

// Setup returns a file logger when debug is enabled and a no-op logger otherwise
// The returned func flushes and closes the sink
func Setup(opts Options) (*zap.Logger, func(), error) {
	if !opts.Debug {
		return zap.NewNop(), func() {}, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	l := zap.New(core, zap.AddCaller())

	cleanup := func() {
		_ = l.Sync()
		_ = f.Close()
	}
	return l, cleanup, nil
}

// rotate moves an oversized log aside, keeping a single previous generation
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxSize {
		return nil
	}
	if err := os.Rename(path, path+".old"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

type ctxKey struct{}

// NewContext returns a context carrying l
func NewContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, if any
func FromContext(ctx context.Context) (*zap.Logger, bool) {
	l, ok := ctx.Value(ctxKey{}).(*zap.Logger)
	return l, ok && l != nil
}

// L returns the logger stored in ctx, or the global zap logger
func L(ctx context.Context) *zap.Logger {
	if l, ok := FromContext(ctx); ok {
		return l
	}
	return zap.L()
}
