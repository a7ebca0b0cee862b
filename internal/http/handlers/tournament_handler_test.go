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
	"github.com/stretchr/testify/require"
)

func newTournamentRouter(t *testing.T) (*mocks.MockTournamentUseCase, http.Handler) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockTournamentUseCase(ctrl)
	h := NewTournamentHandler(uc, logger.NewNop())

	r := newTestRouter(false)
	r.GET("/tournaments", h.List)
	r.POST("/tournaments", h.Create)
	r.GET("/tournaments/stats", h.Stats)
	r.GET("/tournaments/:id", h.Get)
	r.PUT("/tournaments/:id", h.Update)
	r.PATCH("/tournaments/:id", h.Patch)
	r.DELETE("/tournaments/:id", h.Delete)
	return uc, r
}

func storedTournament() *domain.Tournament {
	return &domain.Tournament{
		ID:            3,
		UserID:        1,
		Date:          time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		BuyIn:         decimal.RequireFromString("50.00"),
		CashedFor:     decimal.RequireFromString("150.00"),
		PlaceFinished: 3,
	}
}

func TestTournamentHandler_Create(t *testing.T) {
	uc, r := newTournamentRouter(t)
	uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, in domain.TournamentInput) (*domain.Tournament, error) {
			require.NotNil(t, in.Date)
			assert.Equal(t, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), *in.Date)
			assert.True(t, in.BuyIn.Equal(decimal.RequireFromString("50")))
			assert.True(t, in.CashedFor.Equal(decimal.RequireFromString("150")))
			assert.Equal(t, 3, *in.PlaceFinished)
			return storedTournament(), nil
		})

	w := doJSON(r, http.MethodPost, "/tournaments", `{"date":"2024-02-20","buy_in":50,"cashed_for":"150.00","place_finished":3}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"id": 3, "player": 1, "date": "2024-02-20",
		"buy_in": 50, "cashed_for": 150, "place_finished": 3,
		"net_amount": 100, "display_net": "+$100.00", "is_itm": true
	}`, w.Body.String())
}

func TestTournamentHandler_CreateBadDate(t *testing.T) {
	_, r := newTournamentRouter(t)

	w := doJSON(r, http.MethodPost, "/tournaments", `{"date":"20/02/2024","buy_in":50,"place_finished":3}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeError(t, w)
	assert.Contains(t, env.Error.Fields, "date")
}

func TestTournamentHandler_CreateValidationFromUseCase(t *testing.T) {
	uc, r := newTournamentRouter(t)
	uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).
		Return(nil, domain.NewValidationError("buy_in", "Minimum buy-in is $0.10"))

	w := doJSON(r, http.MethodPost, "/tournaments", `{"date":"2024-02-20","buy_in":0.05,"place_finished":3}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Minimum buy-in is $0.10"}, decodeError(t, w).Error.Fields["buy_in"])
}

func TestTournamentHandler_List(t *testing.T) {
	uc, r := newTournamentRouter(t)
	uc.EXPECT().List(gomock.Any(), testActor, "month").Return(&domain.TournamentList{
		Period:      domain.Period{Key: "month", Label: "Last 30 Days"},
		Tournaments: []*domain.Tournament{storedTournament()},
		TotalCount:  1,
		TotalProfit: decimal.RequireFromString("100.00"),
	}, nil)

	w := doJSON(r, http.MethodGet, "/tournaments?period=month", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[TournamentListResponse](t, w)
	assert.Equal(t, "month", got.Period)
	assert.Equal(t, "Last 30 Days", got.PeriodDisplay)
	assert.Equal(t, 1, got.TotalCount)
	assert.Equal(t, 100.0, got.TotalProfit)
	require.Len(t, got.Results, 1)
	assert.Equal(t, int64(3), got.Results[0].ID)
}

func TestTournamentHandler_UpdateModes(t *testing.T) {
	uc, r := newTournamentRouter(t)
	uc.EXPECT().Update(gomock.Any(), testActor, int64(3), gomock.Any(), false).Return(storedTournament(), nil)
	uc.EXPECT().Update(gomock.Any(), testActor, int64(3), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, _ domain.Actor, _ int64, in domain.TournamentInput, _ bool) (*domain.Tournament, error) {
			assert.Nil(t, in.Date)
			assert.Nil(t, in.BuyIn)
			assert.Equal(t, 1, *in.PlaceFinished)
			return storedTournament(), nil
		})

	w := doJSON(r, http.MethodPut, "/tournaments/3", `{"date":"2024-02-20","buy_in":50,"cashed_for":150,"place_finished":3}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPatch, "/tournaments/3", `{"place_finished":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTournamentHandler_GetAndDelete(t *testing.T) {
	uc, r := newTournamentRouter(t)
	uc.EXPECT().Get(gomock.Any(), testActor, int64(99)).Return(nil, domain.NewNotFoundError("Tournament"))
	uc.EXPECT().Delete(gomock.Any(), testActor, int64(3)).Return(nil)

	w := doJSON(r, http.MethodGet, "/tournaments/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeNotFound, decodeError(t, w).Error.Code)

	w = doJSON(r, http.MethodDelete, "/tournaments/3", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTournamentHandler_Stats(t *testing.T) {
	uc, r := newTournamentRouter(t)
	uc.EXPECT().Stats(gomock.Any(), testActor, "").Return(&domain.TournamentStats{
		TotalTournaments: 2,
		TotalBuyIns:      decimal.RequireFromString("100"),
		TotalCash:        decimal.RequireFromString("150"),
		TotalProfit:      decimal.RequireFromString("50"),
		ROI:              decimal.RequireFromString("50"),
		ITMCount:         1,
		ITMPercentage:    decimal.RequireFromString("50"),
		AvgBuyIn:         decimal.RequireFromString("50"),
	}, nil)

	w := doJSON(r, http.MethodGet, "/tournaments/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	got := decode[StatsResponse](t, w)
	assert.Equal(t, 2, got.TotalTournaments)
	assert.Equal(t, 50.0, got.ROI)
	assert.Equal(t, 50.0, got.ITMPercentage)
}
