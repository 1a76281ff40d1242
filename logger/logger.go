package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

func init() {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	log = l.Sugar()
}

func Info(msg string, kv ...interface{})  { log.Infow(msg, kv...) }
func Warn(msg string, kv ...interface{})  { log.Warnw(msg, kv...) }
func Error(msg string, kv ...interface{}) { log.Errorw(msg, kv...) }

func Sync() { _ = log.Sync() }
