package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/http/middleware"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUseCase domain.UserUseCase
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// CredentialsRequest represents the signup and login request body
type CredentialsRequest struct {
	Username string `json:"username" binding:"required,max=150" example:"player1"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  UserResponse `json:"user"`
}

// SignUp handles account registration
// @Summary Register a player
// @Description Create an account with the opening bankroll
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Account credentials"
// @Success 201 {object} UserResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /auth/signup [post]
func (h *UserHandler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, err)
		return
	}

	user, err := h.userUseCase.SignUp(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Login handles user authentication
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, err)
		return
	}

	token, user, err := h.userUseCase.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Warn("Login failed", zap.String("username", req.Username))
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: newUserResponse(user)})
}

// GetMe handles getting the current user
// @Summary Get current user
// @Description Get the authenticated player and bankroll
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetMe(c.Request.Context(), actor)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// List handles listing visible users
// @Summary List users
// @Description Only the authenticated player is visible
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), actor)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

// GetByID handles fetching a user by id
// @Summary Get user
// @Description Any id other than the caller's own reads as not found
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := parseID(c, "User")
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	user, err := h.userUseCase.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// requireActor reads the authenticated identity, rendering 401 when absent
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		middleware.RespondError(c, domain.NewUnauthorizedError("User not authenticated"))
	}
	return actor, ok
}
