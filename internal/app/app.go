package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/fx"

	"github.com/saradorri/pokerbankroll/internal/config"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Poker Bankroll Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(a.Module(), fx.Invoke(a.StartHTTPServer))
	app.Run()
}

// Module provides every component of the service
func (a *application) Module() fx.Option {
	return fx.Options(
		fx.Provide(
			a.InitLogger,
			a.InitClock,
			a.InitDatabase,
			a.InitRepository,
			a.InitTransactor,
			a.InitLedger,
			a.InitJWTService,
			a.InitPasswordHasher,
			a.InitUserUseCase,
			a.InitTournamentUseCase,
			a.InitAdjustmentUseCase,
			a.InitDashboardUseCase,
			a.InitErrorHandler,
			a.InitHandlers,
			a.InitHTTPServer,
		),
	)
}
