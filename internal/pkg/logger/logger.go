package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	once sync.Once
)

// Setup builds the process logger: console output with debug level in
// development, JSON in production.
func Setup(dev bool) error {
	var config zap.Config
	if dev {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config = zap.NewProductionConfig()
	}

	l, err := config.Build()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger. Before Setup it is a no-op logger.
func L() *zap.Logger {
	once.Do(func() {
		if log == nil {
			log = zap.NewNop()
		}
	})
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
