// Package logger builds the process logger.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing info (and debug, when debug is set) to
// stdout and warnings and errors to stderr.
func New(debug bool) *zap.Logger {
	return NewWithWriters(debug, os.Stdout, os.Stderr)
}

// NewWithWriters is New with explicit destinations.
func NewWithWriters(debug bool, stdout, stderr io.Writer) *zap.Logger {
	// debug and info level enabler
	lowLevel := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zapcore.InfoLevel || (debug && level == zapcore.DebugLevel)
	})

	// warn, error and fatal level enabler
	highLevel := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= zapcore.WarnLevel
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	if debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(stdout)), lowLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(stderr)), highLevel),
	)
	return zap.New(core)
}
