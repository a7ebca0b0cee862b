package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/http/middleware"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/saradorri/pokerbankroll/internal/usecase/stats"
	"go.uber.org/zap"
)

// Page paths
const (
	DashboardPath      = "/"
	TournamentListPath = "/tournaments/"
	LoginPath          = "/accounts/login/"
)

const badCredentialsMessage = "Please enter a correct username and password. Note that both fields may be case-sensitive."

// Options tune the session cookie
type Options struct {
	SecureCookie bool
	SessionTTL   time.Duration
}

// Handler serves the server-rendered pages
type Handler struct {
	users       domain.UserUseCase
	tournaments domain.TournamentUseCase
	adjustments domain.AdjustmentUseCase
	dashboard   domain.DashboardUseCase
	jwtService  auth.JWTService
	clock       domain.Clock
	opts        Options
	logger      *logger.Logger
}

// NewHandler creates the HTML page handler
func NewHandler(
	users domain.UserUseCase,
	tournaments domain.TournamentUseCase,
	adjustments domain.AdjustmentUseCase,
	dashboard domain.DashboardUseCase,
	jwtService auth.JWTService,
	clock domain.Clock,
	opts Options,
	logger *logger.Logger,
) *Handler {
	if clock == nil {
		clock = time.Now
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	return &Handler{
		users:       users,
		tournaments: tournaments,
		adjustments: adjustments,
		dashboard:   dashboard,
		jwtService:  jwtService,
		clock:       clock,
		opts:        opts,
		logger:      logger,
	}
}

// Register mounts the pages on r; r must carry the parsed Templates
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/signup/", h.SignUpPage)
	r.POST("/signup/", h.SignUp)
	r.GET(LoginPath, h.LoginPage)
	r.POST(LoginPath, h.Login)
	r.GET("/accounts/logout/", h.Logout)
	r.POST("/accounts/logout/", h.Logout)

	pages := r.Group("/")
	pages.Use(h.requireLogin())
	{
		pages.GET(DashboardPath, h.Dashboard)
		pages.GET("/add_tournament/", h.AddTournamentPage)
		pages.POST("/add_tournament/", h.AddTournament)
		pages.GET(TournamentListPath, h.TournamentList)
		pages.GET("/tournaments/:id/edit/", h.EditTournamentPage)
		pages.POST("/tournaments/:id/edit/", h.EditTournament)
		pages.GET("/tournaments/:id/delete/", h.DeleteTournamentPage)
		pages.POST("/tournaments/:id/delete/", h.DeleteTournament)
		pages.GET("/add_adjustment/", h.AddAdjustmentPage)
		pages.POST("/add_adjustment/", h.AddAdjustment)
	}
}

type periodOption struct {
	Key   string
	Label string
}

func (h *Handler) periodOptions() []periodOption {
	now := h.clock()
	out := make([]periodOption, 0, len(stats.PeriodKeys))
	for _, key := range stats.PeriodKeys {
		out = append(out, periodOption{Key: key, Label: stats.PeriodFilter(key, now).Label})
	}
	return out
}

// render executes a page template with the shared layout data
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flash"] = h.popFlash(c)
	if actor, ok := middleware.GetActor(c); ok {
		data["Username"] = actor.Username
	}
	c.HTML(status, name, data)
}

// renderError shows an error page; validation errors are handled by the forms
func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong."
	if appErr, ok := domain.IsAppError(err); ok {
		status = appErr.HTTPStatus
		if status < http.StatusInternalServerError {
			message = appErr.Message
		}
	}
	if status >= http.StatusInternalServerError {
		h.logger.WithContext(c.Request.Context()).Error("Page failed",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	h.render(c, status, "error.html", gin.H{"Title": http.StatusText(status), "Message": message})
}

func (h *Handler) actor(c *gin.Context) domain.Actor {
	actor, _ := middleware.GetActor(c)
	return actor
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewNotFoundError("Tournament")
	}
	return id, nil
}
