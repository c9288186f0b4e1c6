// Package logging provides the zap logger shared by the courselab binaries.
//
// By default records go to stderr at warn level so they never interleave with
// the menus on stdout. Setting a file switches the sink to a lumberjack
// rotated file.
package logging

import (
	"errors"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelEnv overrides the configured level when set.
const LevelEnv = "COURSELAB_LOGGING_LEVEL"

var ErrUnknownLevel = errors.New("logging: unknown level")

// Logger is the subset of *zap.SugaredLogger the application calls.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type Config struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func DefaultConfig() Config {
	return Config{Level: "warn", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28}
}

var (
	defaultLogger Logger = zap.NewNop().Sugar()
	flushLogs            = func() error { return nil }
)

// ParseLevel maps a level name to its zap level. The empty string is warn.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.WarnLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, errors.Join(ErrUnknownLevel, err)
	}
	return lvl, nil
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return ec
}

// New builds a logger for cfg and returns it with its flush function.
func New(cfg Config) (*zap.SugaredLogger, func() error, error) {
	name := cfg.Level
	if env := os.Getenv(LevelEnv); env != "" {
		name = env
	}
	lvl, err := ParseLevel(name)
	if err != nil {
		return nil, nil, err
	}

	if cfg.File == "" {
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stderr), lvl)
		logger := zap.New(core).Sugar()
		// Sync on a terminal stderr fails with EINVAL on some platforms.
		return logger, func() error { _ = logger.Sync(); return nil }, nil
	}

	fileSink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(fileSink), lvl)
	logger := zap.New(core, zap.AddCaller()).Sugar()
	return logger, logger.Sync, nil
}

// Init replaces the package default logger.
func Init(cfg Config) error {
	logger, flush, err := New(cfg)
	if err != nil {
		return err
	}
	defaultLogger, flushLogs = logger, flush
	return nil
}

// SetDefault installs an already built logger, e.g. zaptest's in tests.
func SetDefault(l Logger) {
	defaultLogger = l
	flushLogs = func() error { return nil }
}

func Default() Logger { return defaultLogger }

// Flush writes buffered records.
func Flush() error { return flushLogs() }

func Debugf(format string, args ...any) { defaultLogger.Debugf(format, args...) }

func Infof(format string, args ...any) { defaultLogger.Infof(format, args...) }

func Warnf(format string, args ...any) { defaultLogger.Warnf(format, args...) }

func Errorf(format string, args ...any) { defaultLogger.Errorf(format, args...) }
