// Package padctx carries a structured logger on a context.Context,
// adapted from the teacher's internal/dcontext package: every operation
// that touches the padset logs through a logger pulled from its context
// rather than a package-global, so a caller embedding this module in a
// larger service can thread its own logrus fields through.
package padctx

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	defaultLogger   = logrus.NewEntry(logrus.StandardLogger())
	defaultLoggerMu sync.RWMutex
)

// Logger is the leveled-logging interface used throughout padnetotp.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	WithError(err error) *logrus.Entry
}

type loggerKey struct{}

// WithLogger returns a new context carrying the given logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the logger carried by ctx, or a package default if
// none was attached.
func GetLogger(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// GetLoggerWithFields returns a logger derived from ctx's logger with
// the given fields attached, without modifying ctx.
func GetLoggerWithFields(ctx context.Context, fields map[string]any) Logger {
	lfields := make(logrus.Fields, len(fields))
	for k, v := range fields {
		lfields[k] = v
	}
	entry, ok := GetLogger(ctx).(*logrus.Entry)
	if !ok {
		entry = defaultLogger
	}
	return entry.WithFields(lfields)
}

// SetDefaultLogger overrides the package default used when no logger is
// attached to a context.
func SetDefaultLogger(logger *logrus.Entry) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// WithIndexField is a convenience used by every package that logs against a
// specific PadIndex-shaped thing, so log lines stay uniform:
// "index=[n,p,pg,l]".
func WithIndexField(ctx context.Context, index fmt.Stringer) Logger {
	return GetLoggerWithFields(ctx, map[string]any{"index": index.String()})
}
