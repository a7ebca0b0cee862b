// Package main Poker Bankroll API
//
// Poker Bankroll tracks the tournament results and manual bankroll adjustments of poker players.
// Every result moves the player's bankroll by its net amount, and the service reports ROI,
// in-the-money rates and a daily balance history over named periods.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/saradorri/pokerbankroll/docs"
	"github.com/saradorri/pokerbankroll/internal/app"
)

// @title Poker Bankroll API
// @version 1.0
// @description Poker Bankroll records tournament results and bankroll adjustments and reports statistics per period.

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
