// Package builder is the public assembly surface: every component constructor
// and option is re-exported here so applications import one package and wire a
// writer without touching internal paths.
package builder

import (
	internalLogger "github.com/joeydtaylor/filament/pkg/internal/internallogger"
	"github.com/joeydtaylor/filament/pkg/internal/types"
)

type LoggerOption = internalLogger.LoggerOption

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

const (
	FileSink   SinkType = types.FileSink
	StdoutSink SinkType = types.StdoutSink
)

type LogLevel = types.LogLevel

const (
	DebugLevel  LogLevel = types.DebugLevel
	InfoLevel   LogLevel = types.InfoLevel
	WarnLevel   LogLevel = types.WarnLevel
	ErrorLevel  LogLevel = types.ErrorLevel
	DPanicLevel LogLevel = types.DPanicLevel
	PanicLevel  LogLevel = types.PanicLevel
	FatalLevel  LogLevel = types.FatalLevel
)

func NewLogger(options ...LoggerOption) types.Logger {
	return internalLogger.NewLogger(options...)
}

// LoggerWithLevel sets the minimum level the logger emits.
func LoggerWithLevel(level LogLevel) LoggerOption {
	return internalLogger.WithLevel(level)
}

// LoggerWithDevelopment enables or disables development mode.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.WithDevelopment(dev)
}

// LoggerWithCallerDepth adjusts the reported call site.
func LoggerWithCallerDepth(depth int) LoggerOption {
	return internalLogger.WithCallerDepth(depth)
}
