package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-snake/config"
)

// maxLogSize triggers rotation of the previous run's log at start-up
const maxLogSize = 10 * 1024 * 1024

// setupLogging builds the logger from the logging section
// The terminal owns stdout and stderr: output goes to cfg.File when debug is on, otherwise it is discarded
// The returned file is nil when logging is off
func setupLogging(cfg config.LoggingConfig) (*zap.Logger, *os.File, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	if err := rotateLog(cfg.File); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", cfg.File, err)
	}

	return newLogger(cfg, zapcore.AddSync(f)), f, nil
}

// rotateLog renames an oversized log to a timestamped sibling
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log %s: %w", path, err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log %s: %w", path, err)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig, out zapcore.WriteSyncer) *zap.Logger {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encCfg.ConsoleSeparator = "  "
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(enc, out, zap.NewAtomicLevelAt(level)))
}
