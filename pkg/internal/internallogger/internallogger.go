// Package internallogger adapts zap to the types.Logger interface used across
// the SDK. The adapter owns a set of named sinks (stdout, files) combined into
// a single tee core, with level changes applied atomically at runtime.
package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/joeydtaylor/filament/pkg/internal/types"
)

// LoggerOption configures the adapter at construction time.
type LoggerOption func(*loggerSettings)

type loggerSettings struct {
	level       zapcore.Level
	development bool
	callerDepth int
}

// ZapLoggerAdapter implements types.Logger on top of zap.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	sinks       map[string]zapcore.Core
	base        zapcore.Core
}

// NewLogger builds an adapter writing JSON lines to stdout by default.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	settings := &loggerSettings{
		level:       zapcore.InfoLevel,
		callerDepth: 2,
	}
	for _, option := range options {
		if option != nil {
			option(settings)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if settings.development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	atomicLevel := zap.NewAtomicLevelAt(settings.level)
	base := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(os.Stdout), atomicLevel)

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerDepth: settings.callerDepth,
		sinks:       make(map[string]zapcore.Core),
		base:        base,
	}
	z.logger = zap.New(base, zap.AddCaller(), zap.AddCallerSkip(settings.callerDepth))
	return z
}

// WithLevel sets the minimum level emitted by the logger.
func WithLevel(level types.LogLevel) LoggerOption {
	return func(s *loggerSettings) {
		s.level = ConvertLevel(level)
	}
}

// WithDevelopment switches to the console-friendly development encoder.
func WithDevelopment(enabled bool) LoggerOption {
	return func(s *loggerSettings) {
		s.development = enabled
	}
}

// WithCallerDepth overrides the caller-skip applied to every entry.
func WithCallerDepth(depth int) LoggerOption {
	return func(s *loggerSettings) {
		s.callerDepth = depth
	}
}

// rebuild recombines the base core with all registered sinks. Caller holds mu.
func (z *ZapLoggerAdapter) rebuild() {
	cores := make([]zapcore.Core, 0, len(z.sinks)+1)
	cores = append(cores, z.base)
	for _, core := range z.sinks {
		cores = append(cores, core)
	}
	z.logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(z.callerDepth))
}
