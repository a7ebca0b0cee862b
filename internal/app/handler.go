package app

import (
	"github.com/saradorri/pokerbankroll/internal/domain"
	bankrollhttp "github.com/saradorri/pokerbankroll/internal/http"
	"github.com/saradorri/pokerbankroll/internal/http/handlers"
	"github.com/saradorri/pokerbankroll/internal/http/web"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
)

func (a *application) InitHandlers(
	uc domain.UserUseCase,
	tc domain.TournamentUseCase,
	ac domain.AdjustmentUseCase,
	dc domain.DashboardUseCase,
	jwt auth.JWTService,
	clock domain.Clock,
	log *logger.Logger,
) bankrollhttp.Handlers {
	return bankrollhttp.Handlers{
		User:       handlers.NewUserHandler(uc, log),
		Tournament: handlers.NewTournamentHandler(tc, log),
		Adjustment: handlers.NewAdjustmentHandler(ac, log),
		Dashboard:  handlers.NewDashboardHandler(dc, log),
		Web: web.NewHandler(uc, tc, ac, dc, jwt, clock, web.Options{
			SecureCookie: a.config.Server.SecureCookie,
			SessionTTL:   a.config.JWT.Expiry,
		}, log),
	}
}
