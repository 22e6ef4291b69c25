// Package debug owns the process logger used by layoutctl.
//
// Until Init is called, Logger returns a no-op logger, so library code may
// log unconditionally.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the level, encoding and optional rotated log file.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // console or json
	File       string // Empty disables the file sink
	MaxSizeMB  int
	MaxBackups int
}

var (
	mu     sync.Mutex
	logger = zap.NewNop()
	file   *lumberjack.Logger
)

// Init builds the process logger from cfg. Console output goes to stderr so
// it never mixes with rendered layouts on stdout. Calling Init again
// replaces the previous logger.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
	} else {
		level.SetLevel(zap.WarnLevel)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(cfg.Format), zapcore.Lock(os.Stderr), level),
	}

	closeFileLocked()
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
		}
		file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		cores = append(cores, zapcore.NewCore(encoder("json"), zapcore.AddSync(file), level))
	}

	logger = zap.New(zapcore.NewTee(cores...)).Named("layoutctl")
	return nil
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// Logger returns the current process logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Logf writes a formatted debug message.
func Logf(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}

// Close flushes the logger and closes the log file. The logger reverts to a
// no-op.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	// Sync on a terminal stderr reports EINVAL on some platforms.
	_ = logger.Sync()
	err := closeFileLocked()
	logger = zap.NewNop()
	return err
}

func closeFileLocked() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}
