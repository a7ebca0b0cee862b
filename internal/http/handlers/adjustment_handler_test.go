package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/domain/mocks"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newAdjustmentRouter(t *testing.T) (*mocks.MockAdjustmentUseCase, http.Handler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockAdjustmentUseCase(ctrl)
	h := NewAdjustmentHandler(uc, logger.NewNop())

	r := newTestRouter(false)
	r.GET("/adjustments", h.List)
	r.POST("/adjustments", h.Create)
	r.GET("/adjustments/summary", h.Summary)
	r.GET("/adjustments/:id", h.Get)
	return uc, r
}

func TestAdjustmentHandler_Create(t *testing.T) {
	uc, r := newAdjustmentRouter(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, in domain.AdjustmentInput) (*domain.Adjustment, error) {
			assert.Equal(t, domain.TransactionTypeDeposit, in.TransactionType)
			assert.True(t, in.Amount.Equal(decimal.RequireFromString("500")))
			return &domain.Adjustment{
				ID: 8, UserID: 1, Amount: *in.Amount, TransactionType: in.TransactionType,
				Description: in.Description, CreatedAt: created,
			}, nil
		})

	w := doJSON(r, http.MethodPost, "/adjustments", `{"amount":500,"transaction_type":"deposit","description":"top up"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":8,"user":1,"amount":500,"transaction_type":"deposit","description":"top up","date":"2024-03-01T12:00:00Z"}`, w.Body.String())
}

func TestAdjustmentHandler_CreateInvalidType(t *testing.T) {
	uc, r := newAdjustmentRouter(t)
	uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).
		Return(nil, domain.NewValidationError("transaction_type", "Invalid transaction type. Must be one of: deposit, withdrawal, correction"))

	w := doJSON(r, http.MethodPost, "/adjustments", `{"amount":5,"transaction_type":"bonus"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Error.Fields, "transaction_type")
}

func TestAdjustmentHandler_ConcurrentCorrection(t *testing.T) {
	uc, r := newAdjustmentRouter(t)
	uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).
		Return(nil, domain.NewConflictError(domain.ErrCodeConcurrentModification, "Bankroll was modified concurrently"))

	w := doJSON(r, http.MethodPost, "/adjustments", `{"amount":1000,"transaction_type":"correction"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.ErrCodeConcurrentModification, decodeError(t, w).Error.Code)
}

func TestAdjustmentHandler_ListGetSummary(t *testing.T) {
	uc, r := newAdjustmentRouter(t)
	uc.EXPECT().List(gomock.Any(), testActor, "week").Return(&domain.AdjustmentList{
		Period: domain.Period{Key: "week", Label: "Last 7 days"},
		Adjustments: []*domain.Adjustment{
			{ID: 2, UserID: 1, Amount: decimal.RequireFromString("200"), TransactionType: domain.TransactionTypeWithdrawal},
		},
	}, nil)
	uc.EXPECT().Get(gomock.Any(), testActor, int64(2)).Return(nil, domain.NewNotFoundError("Adjustment"))
	uc.EXPECT().Summary(gomock.Any(), testActor, "").Return(&domain.AdjustmentTotals{
		TotalDeposits:    decimal.RequireFromString("500"),
		TotalWithdrawals: decimal.RequireFromString("200"),
	}, nil)

	w := doJSON(r, http.MethodGet, "/adjustments?period=week", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list := decode[AdjustmentListResponse](t, w)
	assert.Equal(t, "Last 7 days", list.PeriodDisplay)
	assert.Len(t, list.Results, 1)

	w = doJSON(r, http.MethodGet, "/adjustments/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/adjustments/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_deposits":500,"total_withdrawals":200,"net_adjustments":300}`, w.Body.String())
}
