package app

import (
	"time"

	"github.com/saradorri/pokerbankroll/internal/config"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}

// InitClock provides wall clock time to the use cases
func (a *application) InitClock() domain.Clock {
	return time.Now
}
