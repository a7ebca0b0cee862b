package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saradorri/pokerbankroll/internal/config"
	"github.com/saradorri/pokerbankroll/internal/domain"
)

const issuer = "pokerbankroll"

var (
	// ErrNoSecret is returned when signing without a configured jwt.secret
	ErrNoSecret = errors.New("jwt secret is not configured")
	// ErrExpired wraps tokens rejected only because they are past their expiry
	ErrExpired = errors.New("token has expired")
)

// Claims identifies the player a session token was issued to
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Actor returns the identity the token authenticates
func (c *Claims) Actor() domain.Actor {
	return domain.Actor{UserID: c.UserID, Username: c.Username}
}

// JWTService issues and checks session tokens for both the API and the HTML views
type JWTService interface {
	GenerateToken(userID int64, username string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type jwtService struct {
	key    []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTService creates a HS256 token service
func NewJWTService(cfg *config.JWTConfig) JWTService {
	return &jwtService{key: []byte(cfg.Secret), expiry: cfg.Expiry, now: time.Now}
}

func (j *jwtService) GenerateToken(userID int64, username string) (string, error) {
	if len(j.key) == 0 {
		return "", ErrNoSecret
	}

	issued := j.now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(j.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.key)
}

func (j *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return j.key, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %w", ErrExpired, err)
	case err != nil:
		return nil, fmt.Errorf("invalid token: %w", err)
	case claims.UserID <= 0 || claims.Subject != strconv.FormatInt(claims.UserID, 10):
		return nil, errors.New("token does not identify a player")
	}
	return &claims, nil
}
