package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmgportfolio/backend/internal/ids"
	"github.com/bmgportfolio/backend/internal/reviews/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Review, error)
	ReplaceAll(ctx context.Context, reviews []domain.Review) error
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
	reviews, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("reviews list: %v", err)
		c.JSON(http.StatusOK, []domain.Review{})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) create(c *gin.Context) {
	var review domain.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	reviews, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("reviews create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	review.ID = ids.New("rev")
	if err := h.repo.ReplaceAll(c.Request.Context(), append(reviews, review)); err != nil {
		log.Printf("reviews create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
}

type updateReq struct {
	domain.Review
	Reorder bool            `json:"reorder"`
	Items   []domain.Review `json:"items"`
}

// update doubles as the reorder endpoint: with reorder+items set the
// given list is persisted verbatim (full replace, no permutation
// check), otherwise the body is a single review replaced in place.
func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	if req.Reorder && req.Items != nil {
		if err := h.repo.ReplaceAll(c.Request.Context(), req.Items); err != nil {
			log.Printf("reviews reorder: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	reviews, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("reviews update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	for i := range reviews {
		if reviews[i].ID == req.Review.ID {
			reviews[i] = req.Review
			if err := h.repo.ReplaceAll(c.Request.Context(), reviews); err != nil {
				log.Printf("reviews update: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "review": req.Review})
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

	reviews, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("reviews delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	for i := range reviews {
		if reviews[i].ID == id {
			if err := h.repo.ReplaceAll(c.Request.Context(), append(reviews[:i:i], reviews[i+1:]...)); err != nil {
				log.Printf("reviews delete: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
