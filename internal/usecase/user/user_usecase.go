package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo       domain.UserRepository
	ledger         domain.BankrollLedger
	jwtSvc         auth.JWTService
	hasher         auth.PasswordHasher
	openingBalance decimal.Decimal
	logger         *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(
	userRepo domain.UserRepository,
	ledger domain.BankrollLedger,
	jwtSvc auth.JWTService,
	hasher auth.PasswordHasher,
	openingBalance decimal.Decimal,
	logger *logger.Logger,
) domain.UserUseCase {
	return &UserUseCase{
		userRepo:       userRepo,
		ledger:         ledger,
		jwtSvc:         jwtSvc,
		hasher:         hasher,
		openingBalance: openingBalance,
		logger:         logger,
	}
}

// SignUp registers a new player with the opening bankroll
func (uc *UserUseCase) SignUp(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if err := validateSignUp(username, password); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Error("Failed to look up username", zap.String("username", username), zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if existing != nil {
		uc.logger.Warn("Signup with taken username", zap.String("username", username))
		return nil, domain.NewValidationError("username", domain.UsernameTakenMessage)
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		Username: username,
		Password: hash,
		Bankroll: uc.openingBalance,
	}
	if err := uc.ledger.OpenAccount(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User signed up",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("bankroll", user.Bankroll.StringFixed(domain.MoneyPlaces)))
	return user, nil
}

// Authenticate validates user credentials and returns a JWT token
func (uc *UserUseCase) Authenticate(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		uc.logger.Warn("Authentication attempt with empty credentials",
			zap.String("username", username),
			zap.Bool("has_password", password != ""))
		return "", nil, invalidCredentials()
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		uc.logger.Error("Failed to get user from database during authentication",
			zap.String("username", username),
			zap.Error(err))
		return "", nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil || !uc.hasher.Verify(user.Password, password) {
		uc.logger.Warn("Authentication failed", zap.String("username", username))
		return "", nil, invalidCredentials()
	}

	token, err := uc.jwtSvc.GenerateToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate JWT token", zap.Int64("user_id", user.ID), zap.Error(err))
		return "", nil, domain.NewInternalError("Token generation failed", err)
	}

	uc.logger.Info("User authentication successful", zap.Int64("user_id", user.ID))
	return token, user, nil
}

// GetMe returns the authenticated player
func (uc *UserUseCase) GetMe(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		uc.logger.Error("Failed to get user from database", zap.Int64("user_id", actor.UserID), zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User")
	}
	return user, nil
}

// GetByID returns a player by id; any id but the actor's own reads as not found
func (uc *UserUseCase) GetByID(ctx context.Context, actor domain.Actor, id int64) (*domain.User, error) {
	if id != actor.UserID {
		return nil, domain.NewNotFoundError("User")
	}
	return uc.GetMe(ctx, actor)
}

// List returns the players visible to the actor, which is only the actor
func (uc *UserUseCase) List(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	user, err := uc.GetMe(ctx, actor)
	if err != nil {
		return nil, err
	}
	return []*domain.User{user}, nil
}

func invalidCredentials() *domain.AppError {
	return domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
}

func validateSignUp(username, password string) error {
	errs := domain.FieldErrors{}

	switch {
	case username == "":
		errs.Add("username", "This field is required.")
	case len([]rune(username)) > domain.MaxUsernameLength:
		errs.Add("username", fmt.Sprintf("Ensure this value has at most %d characters.", domain.MaxUsernameLength))
	case !usernamePattern.MatchString(username):
		errs.Add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}

	switch {
	case password == "":
		errs.Add("password", "This field is required.")
	case len([]rune(password)) < domain.MinPasswordLength:
		errs.Add("password", fmt.Sprintf("This password is too short. It must contain at least %d characters.", domain.MinPasswordLength))
	case len(password) > domain.MaxPasswordBytes:
		errs.Add("password", fmt.Sprintf("Ensure this value has at most %d bytes.", domain.MaxPasswordBytes))
	case isNumeric(password):
		errs.Add("password", "This password is entirely numeric.")
	case strings.EqualFold(password, username):
		errs.Add("password", "The password is too similar to the username.")
	}

	return errs.Err()
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
