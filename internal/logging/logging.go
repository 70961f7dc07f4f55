// Package logging builds the app's file logger. The TUI owns the terminal,
// so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a debug-level file logger under dir, or a no-op logger when
// debug is off. Every entry carries a run id so interleaved sessions in the
// same file stay separable.
func New(debug bool, dir string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	path := filepath.Join(dir, "timerdeck.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(file),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	return zap.New(core).With(zap.String("run_id", uuid.NewString())), nil
}
