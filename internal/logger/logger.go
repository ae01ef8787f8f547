// Package logger provides the shared zap sugared logger for the client.
// Level and encoding are picked from the LOG_LEVEL and ENVIRONMENT
// environment variables.
package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.SugaredLogger
	once sync.Once
)

// GetLogger returns the process-wide sugared logger, initializing it on
// first use.
func GetLogger() *zap.SugaredLogger {
	once.Do(initLogger)
	return log
}

func initLogger() {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if os.Getenv("ENVIRONMENT") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}

	zapLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	log = zapLogger.Sugar()
}

// Sync flushes any buffered log entries. Call it before exiting.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
