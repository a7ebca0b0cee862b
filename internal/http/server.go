package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/http/handlers"
	"github.com/saradorri/pokerbankroll/internal/http/middleware"
	"github.com/saradorri/pokerbankroll/internal/http/web"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every request handler mounted by the server
type Handlers struct {
	User       *handlers.UserHandler
	Tournament *handlers.TournamentHandler
	Adjustment *handlers.AdjustmentHandler
	Dashboard  *handlers.DashboardHandler
	Web        *web.Handler
}

// Options configure the listener
type Options struct {
	Address        string
	ReadTimeout    time.Duration
	RequestTimeout time.Duration
}

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	jwtService auth.JWTService
	handlers   Handlers
	logger     *logger.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	h Handlers,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	opts Options,
) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	handlers.RegisterValidatorTagNames()

	router := gin.New()
	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(opts.RequestTimeout))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	if opts.Address == "" {
		opts.Address = ":8080"
	}

	server := &Server{
		router:     router,
		jwtService: jwtService,
		handlers:   h,
		logger:     log,
		httpServer: &http.Server{
			Addr:        opts.Address,
			Handler:     router,
			ReadTimeout: opts.ReadTimeout,
		},
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", s.handlers.User.SignUp)
			authRoutes.POST("/login", s.handlers.User.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("", s.handlers.User.List)
				userRoutes.GET("/me", s.handlers.User.GetMe)
				userRoutes.GET("/dashboard", s.handlers.Dashboard.Dashboard)
				userRoutes.GET("/bankroll_history", s.handlers.Dashboard.History)
				userRoutes.GET("/:id", s.handlers.User.GetByID)
			}

			tournamentRoutes := protected.Group("/tournaments")
			{
				tournamentRoutes.GET("", s.handlers.Tournament.List)
				tournamentRoutes.POST("", s.handlers.Tournament.Create)
				tournamentRoutes.GET("/stats", s.handlers.Tournament.Stats)
				tournamentRoutes.GET("/:id", s.handlers.Tournament.Get)
				tournamentRoutes.PUT("/:id", s.handlers.Tournament.Update)
				tournamentRoutes.PATCH("/:id", s.handlers.Tournament.Patch)
				tournamentRoutes.DELETE("/:id", s.handlers.Tournament.Delete)
			}

			adjustmentRoutes := protected.Group("/adjustments")
			{
				adjustmentRoutes.GET("", s.handlers.Adjustment.List)
				adjustmentRoutes.POST("", s.handlers.Adjustment.Create)
				adjustmentRoutes.GET("/summary", s.handlers.Adjustment.Summary)
				adjustmentRoutes.GET("/:id", s.handlers.Adjustment.Get)
			}
		}
	}

	if s.handlers.Web != nil {
		s.handlers.Web.Register(s.router)
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
