// SPDX-License-Identifier: EPL-2.0

// Package logger holds the process-wide zap logger used by the CLI and the
// speech generator.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// L is the global sugared logger.
	L *zap.SugaredLogger
	// Z is the global structured logger.
	Z *zap.Logger

	rotator *lumberjack.Logger
)

func init() {
	Z = zap.NewNop()
	L = Z.Sugar()
}

// Config selects level and destination. An empty File logs to Output only.
type Config struct {
	Level      string // debug, info, warn, error
	File       string
	MaxSize    int // megabytes per file
	MaxBackups int
	MaxAge     int // days
	Compress   bool

	// Output receives console logs; nil means os.Stderr.
	Output io.Writer
}

// ParseLevel maps a level name to a zap level. The empty string is info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unsupported log level %q", s)
	}
}

// New builds a logger from cfg without touching the globals. The returned
// closer releases the rotating file, if any.
func New(cfg Config) (*zap.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}

		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSize, 64),
			MaxBackups: orDefault(cfg.MaxBackups, 3),
			MaxAge:     orDefault(cfg.MaxAge, 7),
			Compress:   cfg.Compress,
		}
		closer = file
		output = io.MultiWriter(output, file)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(output),
		level,
	)

	return zap.New(core), closer, nil
}

// Init replaces the global loggers.
func Init(cfg Config) error {
	z, closer, err := New(cfg)
	if err != nil {
		return err
	}

	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}
	if lj, ok := closer.(*lumberjack.Logger); ok {
		rotator = lj
	}

	Z = z
	L = z.Sugar()
	return nil
}

// Sync flushes buffered entries and closes the rotating file. Call it before
// the process exits.
func Sync() {
	if Z != nil {
		_ = Z.Sync()
	}
	if rotator != nil {
		_ = rotator.Close()
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
