package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/http/middleware"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
)

// DashboardHandler handles the overview endpoints
type DashboardHandler struct {
	dashboardUseCase domain.DashboardUseCase
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUseCase domain.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// Dashboard handles the per-period overview
// @Summary Dashboard
// @Description Balance, statistics, adjustment totals and recent activity for a period
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param period query string false "Period key" Enums(week, month, year, all)
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	d, err := h.dashboardUseCase.Dashboard(c.Request.Context(), actor, c.Query("period"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Period:        d.Period.Key,
		PeriodDisplay: d.Period.Label,
		User:          newUserResponse(d.User),
		Stats: DashboardStats{
			StatsResponse:   newStatsResponse(d.Stats),
			SummaryResponse: newSummaryResponse(d.Totals),
		},
		RecentTournaments: newTournamentResponses(d.RecentTournaments),
		RecentAdjustments: newAdjustmentResponses(d.RecentAdjustments),
	})
}

// History handles the daily bankroll series
// @Summary Bankroll history
// @Description Closing balance of each of the last days, oldest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of days (1-365)" default(30)
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/bankroll_history [get]
func (h *DashboardHandler) History(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			middleware.RespondError(c, domain.NewValidationError("days", "A valid integer is required."))
			return
		}
		if n == 0 {
			// zero selects the default inside the use case; an explicit zero is out of range
			n = -1
		}
		days = n
	}

	history, err := h.dashboardUseCase.History(c.Request.Context(), actor, days)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	resp := HistoryResponse{
		Days:   history.Days,
		Labels: make([]string, 0, len(history.Points)),
		Data:   make([]float64, 0, len(history.Points)),
		Points: make([]HistoryPoint, 0, len(history.Points)),
	}
	for _, p := range history.Points {
		label := p.Date.Format(time.DateOnly)
		balance := amount(p.Balance)
		resp.Labels = append(resp.Labels, label)
		resp.Data = append(resp.Data, balance)
		resp.Points = append(resp.Points, HistoryPoint{Date: label, Balance: balance})
	}

	c.JSON(http.StatusOK, resp)
}
