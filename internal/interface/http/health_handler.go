package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satyadharma/registration-service/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Healthz(c *gin.Context) {
	response.Success[any](c, http.StatusOK, map[string]any{"ok": true}, "healthy", nil)
}
