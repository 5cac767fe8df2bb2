// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package logging builds the structured logger used across the client.
// User-facing output goes to stdout via fmt; the zap logger carries
// diagnostics (dropped records, HTTP failures) on stderr.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production-encoded logger writing to stderr. With debug
// enabled the level drops to Debug and output switches to the console
// encoder for readability.
func New(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
