package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmgportfolio/backend/internal/ids"
	"github.com/bmgportfolio/backend/internal/skills/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Skill, error)
	ReplaceAll(ctx context.Context, skills []domain.Skill) error
}

type Handler struct {
	repo Repository
}

func Register(rg *gin.RouterGroup, repo Repository, admin gin.HandlerFunc) {
	h := &Handler{repo: repo}

	rg.GET("", h.list)
	rg.POST("", admin, h.create)
	rg.PUT("", admin, h.update)
	rg.DELETE("", admin, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	skills, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("skills list: %v", err)
		c.JSON(http.StatusOK, []domain.Skill{})
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *Handler) create(c *gin.Context) {
	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	skills, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("skills create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	skill.ID = ids.New("skill")
	if err := h.repo.ReplaceAll(c.Request.Context(), append(skills, skill)); err != nil {
		log.Printf("skills create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "skill": skill})
}

type updateReq struct {
	domain.Skill
	Reorder bool           `json:"reorder"`
	Items   []domain.Skill `json:"items"`
}

// update doubles as the reorder endpoint, same contract as reviews:
// reorder+items persists the given list verbatim.
func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	if req.Reorder && req.Items != nil {
		if err := h.repo.ReplaceAll(c.Request.Context(), req.Items); err != nil {
			log.Printf("skills reorder: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	skills, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("skills update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	for i := range skills {
		if skills[i].ID == req.Skill.ID {
			skills[i] = req.Skill
			if err := h.repo.ReplaceAll(c.Request.Context(), skills); err != nil {
				log.Printf("skills update: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "skill": req.Skill})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	skills, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("skills delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	for i := range skills {
		if skills[i].ID == id {
			if err := h.repo.ReplaceAll(c.Request.Context(), append(skills[:i:i], skills[i+1:]...)); err != nil {
				log.Printf("skills delete: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
