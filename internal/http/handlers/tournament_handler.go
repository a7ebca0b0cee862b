package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/http/middleware"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TournamentHandler handles HTTP requests for tournament results
type TournamentHandler struct {
	tournamentUseCase domain.TournamentUseCase
	logger            *logger.Logger
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(tournamentUseCase domain.TournamentUseCase, logger *logger.Logger) *TournamentHandler {
	return &TournamentHandler{
		tournamentUseCase: tournamentUseCase,
		logger:            logger,
	}
}

// TournamentRequest represents a tournament result body; omitted fields are absent
type TournamentRequest struct {
	Date          *string          `json:"date" swaggertype:"string" example:"2024-02-20"`
	BuyIn         *decimal.Decimal `json:"buy_in" swaggertype:"number" example:"50.00"`
	CashedFor     *decimal.Decimal `json:"cashed_for" swaggertype:"number" example:"150.00"`
	PlaceFinished *int             `json:"place_finished" example:"3"`
}

func (r TournamentRequest) input() (domain.TournamentInput, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return domain.TournamentInput{}, err
	}
	return domain.TournamentInput{
		Date:          date,
		BuyIn:         r.BuyIn,
		CashedFor:     r.CashedFor,
		PlaceFinished: r.PlaceFinished,
	}, nil
}

// Create handles logging a tournament result
// @Summary Log a tournament result
// @Description Store the result and add its net amount to the bankroll
// @Tags tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TournamentRequest true "Tournament result"
// @Success 201 {object} TournamentResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /tournaments [post]
func (h *TournamentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	t, err := h.tournamentUseCase.Create(c.Request.Context(), actor, in)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTournamentResponse(t))
}

// List handles listing tournament results
// @Summary List tournament results
// @Description Newest first, filtered by period (week, month, year, all)
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param period query string false "Period key" Enums(week, month, year, all)
// @Success 200 {object} TournamentListResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /tournaments [get]
func (h *TournamentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	list, err := h.tournamentUseCase.List(c.Request.Context(), actor, c.Query("period"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TournamentListResponse{
		Period:        list.Period.Key,
		PeriodDisplay: list.Period.Label,
		TotalCount:    list.TotalCount,
		TotalProfit:   amount(list.TotalProfit),
		Results:       newTournamentResponses(list.Tournaments),
	})
}

// Get handles fetching one tournament result
// @Summary Get tournament result
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tournament ID"
// @Success 200 {object} TournamentResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /tournaments/{id} [get]
func (h *TournamentHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := parseID(c, "Tournament")
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	t, err := h.tournamentUseCase.Get(c.Request.Context(), actor, id)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTournamentResponse(t))
}

// Update handles replacing a tournament result
// @Summary Replace tournament result
// @Description Every field is required; the bankroll moves by the net difference
// @Tags tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tournament ID"
// @Param request body TournamentRequest true "Tournament result"
// @Success 200 {object} TournamentResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /tournaments/{id} [put]
func (h *TournamentHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// Patch handles partially updating a tournament result
// @Summary Update tournament result
// @Description Supplied fields are merged over the stored result before validation
// @Tags tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tournament ID"
// @Param request body TournamentRequest true "Fields to change"
// @Success 200 {object} TournamentResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /tournaments/{id} [patch]
func (h *TournamentHandler) Patch(c *gin.Context) {
	h.update(c, true)
}

func (h *TournamentHandler) update(c *gin.Context, partial bool) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := parseID(c, "Tournament")
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	t, err := h.tournamentUseCase.Update(c.Request.Context(), actor, id, in, partial)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTournamentResponse(t))
}

// Delete handles removing a tournament result
// @Summary Delete tournament result
// @Description Removes the result and reverses its net amount
// @Tags tournaments
// @Security BearerAuth
// @Param id path int true "Tournament ID"
// @Success 204
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /tournaments/{id} [delete]
func (h *TournamentHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := parseID(c, "Tournament")
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	if err := h.tournamentUseCase.Delete(c.Request.Context(), actor, id); err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats handles tournament statistics
// @Summary Tournament statistics
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param period query string false "Period key" Enums(week, month, year, all)
// @Success 200 {object} StatsResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /tournaments/stats [get]
func (h *TournamentHandler) Stats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	stats, err := h.tournamentUseCase.Stats(c.Request.Context(), actor, c.Query("period"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStatsResponse(*stats))
}

func (h *TournamentHandler) bindInput(c *gin.Context) (domain.TournamentInput, bool) {
	var req TournamentRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Debug("Invalid tournament body", zap.Error(err))
		middleware.RespondError(c, err)
		return domain.TournamentInput{}, false
	}

	in, err := req.input()
	if err != nil {
		middleware.RespondError(c, err)
		return domain.TournamentInput{}, false
	}
	return in, true
}
