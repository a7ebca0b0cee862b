package app

import (
	"github.com/saradorri/pokerbankroll/internal/http/middleware"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
