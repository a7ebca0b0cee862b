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

// AdjustmentHandler handles HTTP requests for manual bankroll adjustments
type AdjustmentHandler struct {
	adjustmentUseCase domain.AdjustmentUseCase
	logger            *logger.Logger
}

// NewAdjustmentHandler creates a new adjustment handler
func NewAdjustmentHandler(adjustmentUseCase domain.AdjustmentUseCase, logger *logger.Logger) *AdjustmentHandler {
	return &AdjustmentHandler{
		adjustmentUseCase: adjustmentUseCase,
		logger:            logger,
	}
}

// AdjustmentRequest represents the adjustment request body
type AdjustmentRequest struct {
	Amount          *decimal.Decimal `json:"amount" swaggertype:"number" example:"500.00"`
	TransactionType string           `json:"transaction_type" example:"deposit"`
	Description     string           `json:"description" example:"Monthly top up"`
}

// Create handles applying an adjustment
// @Summary Apply a bankroll adjustment
// @Description Deposit and withdrawal move the balance; correction sets it to the amount
// @Tags adjustments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdjustmentRequest true "Adjustment"
// @Success 201 {object} AdjustmentResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /adjustments [post]
func (h *AdjustmentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req AdjustmentRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, err)
		return
	}

	a, err := h.adjustmentUseCase.Create(c.Request.Context(), actor, domain.AdjustmentInput{
		Amount:          req.Amount,
		TransactionType: domain.TransactionType(req.TransactionType),
		Description:     req.Description,
	})
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Debug("Adjustment rejected",
			zap.String("transaction_type", req.TransactionType), zap.Error(err))
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAdjustmentResponse(a))
}

// List handles listing adjustments
// @Summary List adjustments
// @Tags adjustments
// @Produce json
// @Security BearerAuth
// @Param period query string false "Period key" Enums(week, month, year, all)
// @Success 200 {object} AdjustmentListResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /adjustments [get]
func (h *AdjustmentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	list, err := h.adjustmentUseCase.List(c.Request.Context(), actor, c.Query("period"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AdjustmentListResponse{
		Period:        list.Period.Key,
		PeriodDisplay: list.Period.Label,
		Results:       newAdjustmentResponses(list.Adjustments),
	})
}

// Get handles fetching one adjustment
// @Summary Get adjustment
// @Tags adjustments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Adjustment ID"
// @Success 200 {object} AdjustmentResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /adjustments/{id} [get]
func (h *AdjustmentHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := parseID(c, "Adjustment")
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	a, err := h.adjustmentUseCase.Get(c.Request.Context(), actor, id)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAdjustmentResponse(a))
}

// Summary handles deposit and withdrawal totals
// @Summary Adjustment totals
// @Tags adjustments
// @Produce json
// @Security BearerAuth
// @Param period query string false "Period key" Enums(week, month, year, all)
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /adjustments/summary [get]
func (h *AdjustmentHandler) Summary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	totals, err := h.adjustmentUseCase.Summary(c.Request.Context(), actor, c.Query("period"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newSummaryResponse(*totals))
}
