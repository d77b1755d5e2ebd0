package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-snake/config"
)

func testLoggingConfig(t *testing.T) config.LoggingConfig {
	t.Helper()
	return config.LoggingConfig{
		Level:  "debug",
		Format: "console",
		File:   filepath.Join(t.TempDir(), "logs", "vi-snake.log"),
		Debug:  true,
	}
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	cfg := config.Defaults().Logging
	log, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging error: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Expected a no-op logger when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	cfg := testLoggingConfig(t)

	log, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging error: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if _, err := os.Stat(filepath.Dir(cfg.File)); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	log.Info("session started")
	log.Sync()

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("Log file missing message: %q", data)
	}
}

func TestSetupLogging_JSON(t *testing.T) {
	cfg := testLoggingConfig(t)
	cfg.Format = "json"

	log, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging error: %v", err)
	}
	defer logFile.Close()

	log.Warn("no free spot for ball, using fallback position")
	log.Sync()

	data, _ := os.ReadFile(cfg.File)
	if !strings.Contains(string(data), `"level":"warn"`) {
		t.Errorf("Expected JSON output, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	cfg := testLoggingConfig(t)
	dir := filepath.Dir(cfg.File)

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	// Write just over 10MB
	data := make([]byte, maxLogSize+1)
	if err := os.WriteFile(cfg.File, data, 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging error: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != filepath.Base(cfg.File) && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(cfg.File)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_LevelFilter(t *testing.T) {
	cfg := testLoggingConfig(t)
	cfg.Level = "warn"

	log, logFile, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging error: %v", err)
	}
	defer logFile.Close()

	log.Debug("speed up")
	log.Sync()

	data, _ := os.ReadFile(cfg.File)
	if strings.Contains(string(data), "speed up") {
		t.Error("Debug entry written at warn level")
	}
}
