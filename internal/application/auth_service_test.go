package application

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyadharma/registration-service/internal/infrastructure/memory"
	"github.com/satyadharma/registration-service/pkg/helpers"
)

func newTestAuthService(t *testing.T) (*AuthService, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	// nil Redis: session recording is skipped, token flow still works
	return NewAuthService(repo, jwt, nil, logger), repo
}

func registerTestUser(t *testing.T, repo *memory.UserRepository, email, password string) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	uc := NewRegisterUser(repo, noopNotifier{}, logger)
	_, err := uc.Execute(context.Background(), RegistrationRequest{Name: "Ada", Email: email, Password: password})
	require.NoError(t, err)
}

type noopNotifier struct{}

func (noopNotifier) SendWelcomeEmail(ctx context.Context, email, name string) error { return nil }

func TestAuthenticate(t *testing.T) {
	svc, repo := newTestAuthService(t)
	registerTestUser(t, repo, "ada@example.com", "secret1")

	u, err := svc.Authenticate(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.NotEmpty(t, u.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	registerTestUser(t, repo, "ada@example.com", "secret1")

	_, err := svc.Authenticate(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmailIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email and wrong password look the same")
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, repo := newTestAuthService(t)
	registerTestUser(t, repo, "ada@example.com", "secret1")

	res, pair, err := svc.Login(context.Background(), "ada@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", res.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessTokenExpiry.After(time.Now()))

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, claims.UserID)
}

func TestGetProfile(t *testing.T) {
	svc, repo := newTestAuthService(t)
	registerTestUser(t, repo, "ada@example.com", "secret1")

	res, err := svc.GetProfile(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", res.Name)
	assert.NotEmpty(t, res.ID)
}

func TestGetProfileUnknown(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.GetProfile(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchUsersWithoutDirectory(t *testing.T) {
	svc, _ := newTestAuthService(t)

	// No ES configured: search degrades to an empty result, not an error
	hits, err := svc.SearchUsers(context.Background(), "ada", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
