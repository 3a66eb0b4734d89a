// Package logging builds the diagnostic logger. The terminal belongs
// to the screen, so log output only ever goes to rotated files, and
// only when debug mode asks for them; otherwise the logger is a no-op.
package logging

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFmt = "2006/01/02 15:04:05.000"

type Config struct {
	Debug bool
	Dir   string
	App   string
}

// New returns the process logger. Callers always get a usable logger;
// with Debug off every call is a no-op.
func New(cfg Config) *zap.Logger {
	if !cfg.Debug {
		return zap.NewNop()
	}
	if cfg.Dir == "" {
		cfg.Dir = "logs"
	}
	if cfg.App == "" {
		cfg.App = "prizewheel"
	}

	name := filepath.Join(cfg.Dir, cfg.App)
	core := zapcore.NewTee(
		fileCore(name+".log", zap.NewAtomicLevelAt(zap.DebugLevel)),
		fileCore(name+"_error.log", zap.ErrorLevel),
	)
	return zap.New(core, zap.AddCaller())
}

func fileCore(file string, lv zapcore.LevelEnabler) zapcore.Core {
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg()),
		zapcore.AddSync(w),
		lv,
	)
}

func encCfg() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeCaller = zapcore.FullCallerEncoder
	cfg.ConsoleSeparator = " "
	return cfg
}
