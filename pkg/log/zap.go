package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger  *zap.Logger
	sugared *zap.SugaredLogger
)

func init() {
	logger = newLogger(os.Getenv("APPLICATION_NAME"), levelFromEnv())
	sugared = logger.Sugar()
}

// newLogger builds a JSON logger on stdout with ECS-like keys
func newLogger(appName string, level zapcore.Level) *zap.Logger {
	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "@timestamp"
	encoder.MessageKey = "msg"
	encoder.CallerKey = "logger_name"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoder), zapcore.AddSync(os.Stdout), level)
	return zap.New(core,
		zap.Fields(zap.String("logName", appName)),
		zap.AddCaller(),
		zap.AddCallerSkip(1))
}

// levelFromEnv reads LOG_LEVEL (debug, info, warn, error), defaulting to info
func levelFromEnv() zapcore.Level {
	level, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return zap.InfoLevel
	}
	return level
}

func Debug(message string, fields ...zap.Field) { logger.Debug(message, fields...) }

func Debugf(template string, args ...any) { sugared.Debugf(template, args...) }

func Info(message string, fields ...zap.Field) { logger.Info(message, fields...) }

func Warn(message string, fields ...zap.Field) { logger.Warn(message, fields...) }

func Warnf(template string, args ...any) { sugared.Warnf(template, args...) }

func Error(message string, fields ...zap.Field) { logger.Error(message, fields...) }

func Errorf(template string, args ...any) { sugared.Errorf(template, args...) }

// Fatal logs at FatalLevel and exits the process
func Fatal(message string, fields ...zap.Field) { logger.Fatal(message, fields...) }

func Fatalf(template string, args ...any) { sugared.Fatalf(template, args...) }

// Sync flushes buffered entries; call it before the process exits
func Sync() {
	_ = logger.Sync()
}
