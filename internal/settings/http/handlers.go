package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmgportfolio/backend/internal/settings/domain"
)

type Repository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

type Handler struct {
	repo Repository
}

func Register(rg *gin.RouterGroup, repo Repository, admin gin.HandlerFunc) {
	h := &Handler{repo: repo}

	rg.GET("", h.get)
	rg.PUT("", admin, h.put)
}

func (h *Handler) get(c *gin.Context) {
	s, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("settings get: %v", err)
		c.JSON(http.StatusOK, domain.Defaults())
		return
	}
	c.JSON(http.StatusOK, s)
}

// put replaces the whole settings document with the given body.
func (h *Handler) put(c *gin.Context) {
	var s domain.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	if err := h.repo.Save(c.Request.Context(), s); err != nil {
		log.Printf("settings put: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": s})
}
