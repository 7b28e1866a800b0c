package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyadharma/registration-service/internal/application"
	"github.com/satyadharma/registration-service/internal/infrastructure/memory"
	handlers "github.com/satyadharma/registration-service/internal/interface/http"
	"github.com/satyadharma/registration-service/internal/notification"
	"github.com/satyadharma/registration-service/internal/router"
	"github.com/satyadharma/registration-service/internal/router/modules"
	"github.com/satyadharma/registration-service/pkg/helpers"
)

func newTestServer(t *testing.T) (*gin.Engine, *memory.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo := memory.NewUserRepository()
	notifier := notification.NewLogNotifier(logger)
	registerUC := application.NewRegisterUser(repo, notifier, logger)
	jwt := helpers.NewJWTManager("access", "refresh", time.Hour, 24*time.Hour)
	authSvc := application.NewAuthService(repo, jwt, nil, logger)
	handler := handlers.NewUserHandler(registerUC, authSvc, logger, "localhost", false)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	// nil Redis: rate limiting is a no-op and auth-protected routes 401
	reg.Add(modules.NewUserModule(handler, jwt, nil))
	reg.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
	reg.RegisterAll()

	return engine, repo
}

func postJSON(t *testing.T, engine *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func TestRegisterEndpointCreatesUser(t *testing.T) {
	engine, repo := newTestServer(t)

	w := postJSON(t, engine, "/api/register", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	var data struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.NotEmpty(t, data.ID)
	assert.Equal(t, "Ada", data.Name)
	assert.Equal(t, "ada@example.com", data.Email)
	assert.NotContains(t, w.Body.String(), "password")

	assert.Equal(t, 1, repo.Len())
}

func TestRegisterEndpointValidationFailure(t *testing.T) {
	engine, repo := newTestServer(t)

	w := postJSON(t, engine, "/api/register", map[string]string{
		"name":     "",
		"email":    "",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)

	var violations []string
	require.NoError(t, json.Unmarshal(resp.Error, &violations))
	assert.Equal(t, []string{
		"name is required",
		"email is required",
		"password must be at least 6 characters long",
	}, violations)

	assert.Equal(t, 0, repo.Len(), "nothing persists when validation fails")
}

func TestRegisterEndpointMalformedJSON(t *testing.T) {
	engine, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpointIsNotIdempotent(t *testing.T) {
	engine, repo := newTestServer(t)

	payload := map[string]string{"name": "Ada", "email": "ada@example.com", "password": "secret1"}
	first := postJSON(t, engine, "/api/register", payload)
	second := postJSON(t, engine, "/api/register", payload)

	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 2, repo.Len())
}

func TestLoginEndpoint(t *testing.T) {
	engine, _ := newTestServer(t)

	w := postJSON(t, engine, "/api/register", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, engine, "/api/login", map[string]string{
		"email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookies := w.Result().Cookies()
	names := make([]string, 0, len(cookies))
	for _, c := range cookies {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "access_token")
	assert.Contains(t, names, "refresh_token")
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	engine, _ := newTestServer(t)

	w := postJSON(t, engine, "/api/login", map[string]string{
		"email": "nobody@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthz(t *testing.T) {
	engine, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
