package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/pokerbankroll/internal/config"
	"github.com/saradorri/pokerbankroll/internal/domain"
	"github.com/saradorri/pokerbankroll/internal/domain/mocks"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/auth"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userFixture struct {
	repo   *mocks.MockUserRepository
	ledger *mocks.MockBankrollLedger
	jwt    auth.JWTService
	hasher auth.PasswordHasher
	uc     domain.UserUseCase
}

func newUserFixture(t *testing.T) *userFixture {
	ctrl := gomock.NewController(t)
	f := &userFixture{
		repo:   mocks.NewMockUserRepository(ctrl),
		ledger: mocks.NewMockBankrollLedger(ctrl),
		jwt:    auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour}),
		hasher: auth.NewBcryptHasher(bcrypt.MinCost),
	}
	f.uc = NewUserUseCase(f.repo, f.ledger, f.jwt, f.hasher, domain.DefaultBankroll, logger.NewNop())
	return f
}

func createTestUser(t *testing.T, hasher auth.PasswordHasher) *domain.User {
	hash, err := hasher.Hash("testpass123")
	require.NoError(t, err)
	return &domain.User{
		ID:       1,
		Username: "testplayer",
		Password: hash,
		Bankroll: domain.DefaultBankroll,
	}
}

func TestUserUseCase_SignUp(t *testing.T) {
	f := newUserFixture(t)

	f.repo.EXPECT().GetByUsername(gomock.Any(), "newbie").Return(nil, nil)
	f.ledger.EXPECT().
		OpenAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			u.ID = 5
			return nil
		})

	user, err := f.uc.SignUp(context.Background(), " newbie ", "testpass123")

	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, "newbie", user.Username)
	assert.True(t, domain.DefaultBankroll.Equal(user.Bankroll))
	assert.NotEqual(t, "testpass123", user.Password)
	assert.True(t, f.hasher.Verify(user.Password, "testpass123"))
}

func TestUserUseCase_SignUp_TakenUsername(t *testing.T) {
	f := newUserFixture(t)
	f.repo.EXPECT().GetByUsername(gomock.Any(), "testplayer").Return(&domain.User{ID: 1}, nil)

	_, err := f.uc.SignUp(context.Background(), "testplayer", "testpass123")

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, []string{domain.UsernameTakenMessage}, appErr.Fields["username"])
}

func TestUserUseCase_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		field    string
	}{
		{name: "Empty_Username", username: "", password: "testpass123", field: "username"},
		{name: "Long_Username", username: strings.Repeat("a", 151), password: "testpass123", field: "username"},
		{name: "Bad_Characters", username: "bad name!", password: "testpass123", field: "username"},
		{name: "Empty_Password", username: "player", password: "", field: "password"},
		{name: "Short_Password", username: "player", password: "short", field: "password"},
		{name: "Numeric_Password", username: "player", password: "12345678", field: "password"},
		{name: "Password_Over_Bcrypt_Limit", username: "player", password: strings.Repeat("pw", 41), field: "password"},
		{name: "Password_Equals_Username", username: "longplayer", password: "LongPlayer", field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)

			_, err := f.uc.SignUp(context.Background(), tt.username, tt.password)

			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}
}

func TestUserUseCase_Authenticate(t *testing.T) {
	f := newUserFixture(t)
	stored := createTestUser(t, f.hasher)
	f.repo.EXPECT().GetByUsername(gomock.Any(), "testplayer").Return(stored, nil)

	token, user, err := f.uc.Authenticate(context.Background(), "testplayer", "testpass123")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
	claims, err := f.jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "testplayer", claims.Username)
}

func TestUserUseCase_Authenticate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		setup    func(f *userFixture)
		code     string
	}{
		{
			name: "Empty_Credentials", username: "", password: "",
			setup: func(f *userFixture) {},
			code:  domain.ErrCodeInvalidCredentials,
		},
		{
			name: "Unknown_User", username: "ghost", password: "testpass123",
			setup: func(f *userFixture) { f.repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil) },
			code:  domain.ErrCodeInvalidCredentials,
		},
		{
			name: "Wrong_Password", username: "testplayer", password: "wrongpass",
			setup: func(f *userFixture) {
				f.repo.EXPECT().GetByUsername(gomock.Any(), "testplayer").Return(createTestUser(t, f.hasher), nil)
			},
			code: domain.ErrCodeInvalidCredentials,
		},
		{
			name: "Database_Error", username: "testplayer", password: "testpass123",
			setup: func(f *userFixture) {
				f.repo.EXPECT().GetByUsername(gomock.Any(), "testplayer").Return(nil, errors.New("db down"))
			},
			code: domain.ErrCodeDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			tt.setup(f)

			token, user, err := f.uc.Authenticate(context.Background(), tt.username, tt.password)

			assert.Empty(t, token)
			assert.Nil(t, user)
			appErr, ok := domain.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestUserUseCase_GetByID_OnlySelf(t *testing.T) {
	f := newUserFixture(t)
	actor := domain.Actor{UserID: 1, Username: "testplayer"}
	stored := &domain.User{ID: 1, Username: "testplayer", Bankroll: domain.DefaultBankroll}
	f.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil).Times(2)

	user, err := f.uc.GetByID(context.Background(), actor, 1)
	require.NoError(t, err)
	assert.Equal(t, stored, user)

	_, err = f.uc.GetByID(context.Background(), actor, 2)
	assert.True(t, domain.IsNotFound(err))

	users, err := f.uc.List(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, []*domain.User{stored}, users)
}
