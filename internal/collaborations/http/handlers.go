package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bmgportfolio/backend/internal/settings/domain"
)

// SettingsRepository is the slice of the settings store the
// collaboration handlers need: collaborations live embedded inside the
// settings singleton, so every mutation is a load/modify/save of the
// whole settings document.
type SettingsRepository interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

type Handler struct {
	repo SettingsRepository
}

func Register(rg *gin.RouterGroup, repo SettingsRepository, admin gin.HandlerFunc) {
	h := &Handler{repo: repo}

	rg.GET("", h.list)
	rg.POST("", admin, h.upsert)
	rg.PUT("", admin, h.replace)
	rg.DELETE("", admin, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	s, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("collaborations list: %v", err)
		c.JSON(http.StatusOK, []domain.Collaboration{})
		return
	}
	if s.Collaborations == nil {
		s.Collaborations = []domain.Collaboration{}
	}
	c.JSON(http.StatusOK, s.Collaborations)
}

// upsert creates a collaboration when the body has no id, and updates
// the matching one in place when it does.
func (h *Handler) upsert(c *gin.Context) {
	var body domain.Collaboration
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	if body.Name == "" || body.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and image are required"})
		return
	}

	s, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("collaborations upsert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save collaboration"})
		return
	}

	if body.ID != "" {
		for i := range s.Collaborations {
			if s.Collaborations[i].ID == body.ID {
				s.Collaborations[i] = body
			}
		}
	} else {
		body.ID = uuid.NewString()
		s.Collaborations = append(s.Collaborations, body)
	}

	if err := h.repo.Save(c.Request.Context(), s); err != nil {
		log.Printf("collaborations upsert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save collaboration"})
		return
	}

	c.JSON(http.StatusOK, body)
}

type replaceReq struct {
	Items []domain.Collaboration `json:"items"`
}

// replace persists the given list verbatim (reorder/full replace).
func (h *Handler) replace(c *gin.Context) {
	var req replaceReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	s, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("collaborations replace: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save collaborations"})
		return
	}

	s.Collaborations = req.Items
	if err := h.repo.Save(c.Request.Context(), s); err != nil {
		log.Printf("collaborations replace: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save collaborations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// delete filters the id out of the embedded list. An unknown id is a
// silent no-op success, matching the historical filter semantics other
// clients depend on.
func (h *Handler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
		return
	}

	s, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("collaborations delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collaboration"})
		return
	}

	kept := make([]domain.Collaboration, 0, len(s.Collaborations))
	for _, collab := range s.Collaborations {
		if collab.ID != id {
			kept = append(kept, collab)
		}
	}

	s.Collaborations = kept
	if err := h.repo.Save(c.Request.Context(), s); err != nil {
		log.Printf("collaborations delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collaboration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
