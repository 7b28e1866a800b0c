package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/satyadharma/registration-service/internal/application"
	"github.com/satyadharma/registration-service/internal/domain/repository"
	"github.com/satyadharma/registration-service/pkg/helpers"
	"github.com/satyadharma/registration-service/pkg/response"
	"github.com/satyadharma/registration-service/pkg/validation"
)

// UserHandler maps transport-level input onto the registration and auth
// use cases and maps their errors to status codes. All domain validation
// happens inside the use case; binding here only decodes JSON.
type UserHandler struct {
	Register *application.RegisterUser
	Auth     *application.AuthService
	Logger   *logrus.Logger
	Cookies  *helpers.Manager
}

func NewUserHandler(reg *application.RegisterUser, auth *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Register: reg, Auth: auth, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser handles POST /api/register.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req application.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Register.Execute(c.Request.Context(), req)
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			response.Error[any](c, http.StatusBadRequest, "validation failed", verr.Violations)
			return
		}
		var perr *repository.PersistenceError
		if errors.As(err, &perr) {
			if h.Logger != nil {
				h.Logger.WithError(err).Error("registration persistence failed")
			}
			response.Error[any](c, http.StatusBadGateway, "could not save user", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("registration failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	response.Success(c, http.StatusCreated, res, "user registered", nil)
}

// Login handles POST /api/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, pair, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, res, "login successful", map[string]any{"access_expires_at": pair.AccessTokenExpiry, "refresh_expires_at": pair.RefreshTokenExpiry})
}

// Logout handles POST /api/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	h.Auth.Logout(c.Request.Context(), c.GetString("userID"))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}

// GetProfile handles GET /api/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	email := c.GetString("userEmail")
	res, err := h.Auth.GetProfile(c.Request.Context(), email)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "profile", nil)
}

// Search handles GET /api/users/search?q=...&size=...
func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Auth.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("user search failed")
		}
		response.Error[any](c, http.StatusBadGateway, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
