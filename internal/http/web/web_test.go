package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/saradorri/pokerbankroll/internal/config"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/domain/mocks"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	router      *gin.Engine
	users       *mocks.MockUserUseCase
	tournaments *mocks.MockTournamentUseCase
	adjustments *mocks.MockAdjustmentUseCase
	dashboard   *mocks.MockDashboardUseCase
	token       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "web-secret", Expiry: time.Hour})
	token, err := jwtSvc.GenerateToken(1, "testplayer")
	require.NoError(t, err)

	f := &fixture{
		users:       mocks.NewMockUserUseCase(ctrl),
		tournaments: mocks.NewMockTournamentUseCase(ctrl),
		adjustments: mocks.NewMockAdjustmentUseCase(ctrl),
		dashboard:   mocks.NewMockDashboardUseCase(ctrl),
		token:       token,
	}

	tmpl, err := Templates()
	require.NoError(t, err)

	f.router = gin.New()
	f.router.SetHTMLTemplate(tmpl)
	NewHandler(f.users, f.tournaments, f.adjustments, f.dashboard, jwtSvc,
		func() time.Time { return fixedNow }, Options{}, logger.NewNop()).Register(f.router)
	return f
}

func (f *fixture) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return f.serve(req, cookies)
}

func (f *fixture) post(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.serve(req, cookies)
}

func (f *fixture) serve(req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) session() *http.Cookie {
	return &http.Cookie{Name: sessionCookie, Value: f.token}
}

func cookieValue(t *testing.T, w *httptest.ResponseRecorder, name string) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			v, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			return v
		}
	}
	return ""
}

func TestPagesRequireLogin(t *testing.T) {
	f := newFixture(t)

	w := f.get("/add_tournament/")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login/?next=%2Fadd_tournament%2F", w.Header().Get("Location"))
}

func TestInvalidSessionIsCleared(t *testing.T) {
	f := newFixture(t)

	w := f.get("/", &http.Cookie{Name: sessionCookie, Value: "garbage"})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Values("Set-Cookie")[0], sessionCookie+"=;")
}

func TestLogin(t *testing.T) {
	t.Run("success redirects to next", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Authenticate(gomock.Any(), "testplayer", "password123").Return("tok", &domain.User{ID: 1}, nil)

		w := f.post(LoginPath, url.Values{"username": {"testplayer"}, "password": {"password123"}, "next": {"/tournaments/"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/tournaments/", w.Header().Get("Location"))
		assert.Equal(t, "tok", cookieValue(t, w, sessionCookie))
	})

	t.Run("bad credentials re-render", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Authenticate(gomock.Any(), "testplayer", "nope").
			Return("", nil, domain.NewUnauthorizedError("Invalid username or password"))

		w := f.post(LoginPath, url.Values{"username": {"testplayer"}, "password": {"nope"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Please enter a correct username and password.")
		assert.Empty(t, cookieValue(t, w, sessionCookie))
	})
}

func TestLogout(t *testing.T) {
	f := newFixture(t)

	w := f.post("/accounts/logout/", nil, f.session())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestSignUp(t *testing.T) {
	t.Run("mismatched passwords", func(t *testing.T) {
		f := newFixture(t)

		w := f.post("/signup/", url.Values{"username": {"newbie"}, "password1": {"abcdefgh1"}, "password2": {"abcdefgh2"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The two password fields didn&#39;t match.")
	})

	t.Run("welcome flash and session", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().SignUp(gomock.Any(), "newbie", "abcdefgh1").
			Return(&domain.User{ID: 9, Username: "newbie", Bankroll: domain.DefaultBankroll}, nil)
		f.users.EXPECT().Authenticate(gomock.Any(), "newbie", "abcdefgh1").Return("tok", &domain.User{ID: 9}, nil)

		w := f.post("/signup/", url.Values{"username": {"newbie"}, "password1": {"abcdefgh1"}, "password2": {"abcdefgh1"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, DashboardPath, w.Header().Get("Location"))
		assert.Equal(t, "Welcome newbie!", cookieValue(t, w, flashCookie))
		assert.Equal(t, "tok", cookieValue(t, w, sessionCookie))
	})

	t.Run("password rules shown on the first password field", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().SignUp(gomock.Any(), "newbie", "12345678").
			Return(nil, domain.NewValidationError("password", "This password is entirely numeric."))

		w := f.post("/signup/", url.Values{"username": {"newbie"}, "password1": {"12345678"}, "password2": {"12345678"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "This password is entirely numeric.")
	})
}

func TestDashboardShowsBankrollAndFlash(t *testing.T) {
	f := newFixture(t)
	f.dashboard.EXPECT().Dashboard(gomock.Any(), domain.Actor{UserID: 1, Username: "testplayer"}, "week").
		Return(&domain.Dashboard{
			Period: domain.Period{Key: "week", Label: "Last 7 days"},
			User:   &domain.User{ID: 1, Username: "testplayer", Bankroll: decimal.RequireFromString("1234.5")},
			RecentTournaments: []*domain.Tournament{{
				ID: 1, Date: fixedNow, BuyIn: decimal.RequireFromString("50"), CashedFor: decimal.RequireFromString("150"), PlaceFinished: 2,
			}},
		}, nil)

	w := f.get("/?period=week", f.session(), &http.Cookie{Name: flashCookie, Value: url.QueryEscape("Deposited 500.00$")})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "$1,234.50")
	assert.Contains(t, body, "&#43;$100.00")
	assert.Contains(t, body, "Deposited 500.00$")
	assert.Contains(t, body, `<option value="week" selected>`)
}

func TestAddTournament(t *testing.T) {
	t.Run("stored and flashed", func(t *testing.T) {
		f := newFixture(t)
		f.tournaments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Actor, in domain.TournamentInput) (*domain.Tournament, error) {
				assert.Nil(t, in.CashedFor)
				assert.Equal(t, 12, *in.PlaceFinished)
				return &domain.Tournament{BuyIn: *in.BuyIn, CashedFor: decimal.RequireFromString("150")}, nil
			})

		w := f.post("/add_tournament/", url.Values{
			"date": {"2024-03-10"}, "buy_in": {"50"}, "cashed_for": {""}, "place_finished": {"12"},
		}, f.session())

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, DashboardPath, w.Header().Get("Location"))
		assert.Equal(t, "Tournament added! Net: +$100.00", cookieValue(t, w, flashCookie))
	})

	t.Run("unparseable values re-render with every field error", func(t *testing.T) {
		f := newFixture(t)

		w := f.post("/add_tournament/", url.Values{
			"date": {"2024-03-10"}, "buy_in": {"fifty"}, "place_finished": {""},
		}, f.session())

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Enter a number.")
		assert.Contains(t, body, "Finish position is required")
		assert.NotContains(t, body, "Buy-in amount is required")
	})

	t.Run("use case validation re-renders", func(t *testing.T) {
		f := newFixture(t)
		f.tournaments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("date", "Tournament date cannot be in the future"))

		w := f.post("/add_tournament/", url.Values{
			"date": {"2030-01-01"}, "buy_in": {"50"}, "place_finished": {"1"},
		}, f.session())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Tournament date cannot be in the future")
		assert.Contains(t, w.Body.String(), `value="2030-01-01"`)
	})
}

func TestEditAndDeleteTournament(t *testing.T) {
	stored := &domain.Tournament{
		ID: 4, UserID: 1, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		BuyIn: decimal.RequireFromString("20"), CashedFor: decimal.Zero, PlaceFinished: 40,
	}

	t.Run("edit form is prefilled", func(t *testing.T) {
		f := newFixture(t)
		f.tournaments.EXPECT().Get(gomock.Any(), gomock.Any(), int64(4)).Return(stored, nil)

		w := f.get("/tournaments/4/edit/", f.session())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="20.00"`)
		assert.Contains(t, w.Body.String(), `action="/tournaments/4/edit/"`)
	})

	t.Run("edit submits a full update", func(t *testing.T) {
		f := newFixture(t)
		f.tournaments.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4), gomock.Any(), false).Return(stored, nil)

		w := f.post("/tournaments/4/edit/", url.Values{
			"date": {"2024-03-01"}, "buy_in": {"20"}, "cashed_for": {"0"}, "place_finished": {"40"},
		}, f.session())

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, TournamentListPath, w.Header().Get("Location"))
		assert.Equal(t, "Tournament updated successfully!", cookieValue(t, w, flashCookie))
	})

	t.Run("someone else's tournament is not found", func(t *testing.T) {
		f := newFixture(t)
		f.tournaments.EXPECT().Get(gomock.Any(), gomock.Any(), int64(5)).Return(nil, domain.NewNotFoundError("Tournament"))

		w := f.get("/tournaments/5/delete/", f.session())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete confirms then removes", func(t *testing.T) {
		f := newFixture(t)
		f.tournaments.EXPECT().Get(gomock.Any(), gomock.Any(), int64(4)).Return(stored, nil)
		f.tournaments.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(4)).Return(nil)

		w := f.get("/tournaments/4/delete/", f.session())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "-$20.00")

		w = f.post("/tournaments/4/delete/", nil, f.session())
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "Tournament deleted successfully!", cookieValue(t, w, flashCookie))
	})
}

func TestAddAdjustmentMessages(t *testing.T) {
	tests := []struct {
		kind   domain.TransactionType
		amount string
		want   string
	}{
		{domain.TransactionTypeDeposit, "500", "Deposited 500.00$"},
		{domain.TransactionTypeWithdrawal, "200", "Withdrew 200.00$"},
		{domain.TransactionTypeCorrection, "1000", "Bankroll corrected to 1000.00$"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			f := newFixture(t)
			f.adjustments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ domain.Actor, in domain.AdjustmentInput) (*domain.Adjustment, error) {
					return &domain.Adjustment{Amount: *in.Amount, TransactionType: in.TransactionType}, nil
				})

			w := f.post("/add_adjustment/", url.Values{
				"amount": {tt.amount}, "transaction_type": {string(tt.kind)},
			}, f.session())

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.want, cookieValue(t, w, flashCookie))
		})
	}
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/tournaments/", safeNext("/tournaments/"))
	assert.Equal(t, DashboardPath, safeNext(""))
	assert.Equal(t, DashboardPath, safeNext("//evil.example"))
	assert.Equal(t, DashboardPath, safeNext("https://evil.example"))
}
