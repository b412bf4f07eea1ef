package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmgportfolio/backend/internal/ids"
	"github.com/bmgportfolio/backend/internal/portfolio/domain"
)

// Repository is the storage contract the handlers need: whole-document
// load and save, nothing finer grained.
type Repository interface {
	Load(ctx context.Context) (domain.Data, error)
	Save(ctx context.Context, data domain.Data) error
}

type Handler struct {
	repo Repository
}

// Register attaches the portfolio routes. GET is public; every
// mutation goes through the admin guard.
func Register(rg *gin.RouterGroup, repo Repository, admin gin.HandlerFunc) {
	h := &Handler{repo: repo}

	rg.GET("", h.list)
	rg.POST("", admin, h.create)
	rg.PUT("", admin, h.update)
	rg.DELETE("", admin, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	data, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("portfolio list: %v", err)
		c.JSON(http.StatusOK, domain.Defaults())
		return
	}
	c.JSON(http.StatusOK, data)
}

type createReq struct {
	Category string      `json:"category"`
	Item     domain.Item `json:"item"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	data, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("portfolio create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	items, ok := data.Category(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	item := req.Item
	item.ID = ids.New(req.Category[:3])
	data.SetCategory(req.Category, append(items, item))

	if err := h.repo.Save(c.Request.Context(), data); err != nil {
		log.Printf("portfolio create: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

type updateReq struct {
	Category string        `json:"category"`
	Item     *domain.Item  `json:"item"`
	Items    []domain.Item `json:"items"`
	Reorder  bool          `json:"reorder"`
}

// update handles both single-item replacement and full-category
// reorder. A reorder persists the given list verbatim: it is a full
// replace, not validated to be a permutation of the existing items.
func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	data, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("portfolio update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	items, ok := data.Category(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	if req.Reorder && req.Items != nil {
		data.SetCategory(req.Category, req.Items)
		if err := h.repo.Save(c.Request.Context(), data); err != nil {
			log.Printf("portfolio reorder: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if req.Item != nil {
		for i := range items {
			if items[i].ID == req.Item.ID {
				items[i] = *req.Item
				data.SetCategory(req.Category, items)
				if err := h.repo.Save(c.Request.Context(), data); err != nil {
					log.Printf("portfolio update: %v", err)
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
					return
				}
				c.JSON(http.StatusOK, gin.H{"success": true, "item": req.Item})
				return
			}
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
}

func (h *Handler) delete(c *gin.Context) {
	category := c.Query("category")
	id := c.Query("id")
	if category == "" || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing params"})
		return
	}

	data, err := h.repo.Load(c.Request.Context())
	if err != nil {
		log.Printf("portfolio delete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}

	items, ok := data.Category(category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	for i := range items {
		if items[i].ID == id {
			data.SetCategory(category, append(items[:i:i], items[i+1:]...))
			if err := h.repo.Save(c.Request.Context(), data); err != nil {
				log.Printf("portfolio delete: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
