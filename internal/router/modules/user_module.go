package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/satyadharma/registration-service/internal/interface/http"
	"github.com/satyadharma/registration-service/internal/interface/middleware"
	"github.com/satyadharma/registration-service/pkg/helpers"
)

// UserModule wires the registration and auth routes.
// Public: POST /api/register, POST /api/login
// Protected: POST /api/logout, GET /api/profile, GET /api/users/search
// Collaborators arrive explicitly; no ambient singletons.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP())

	rg.POST("/register", registerLimiter, m.Handler.RegisterUser)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Redis, m.JWT))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.GET("/users/search", m.Handler.Search)
	}
}
