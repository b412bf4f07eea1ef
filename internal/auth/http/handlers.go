package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmgportfolio/backend/internal/auth"
)

type Handler struct {
	guard *auth.Guard
}

// Register attaches the login/logout routes to the given router group.
func Register(rg *gin.RouterGroup, guard *auth.Guard) {
	h := &Handler{guard: guard}

	rg.POST("", h.login)
	rg.DELETE("", h.logout)
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request"})
		return
	}

	if !h.guard.ValidatePassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid password"})
		return
	}

	http.SetCookie(c.Writer, h.guard.SessionCookie())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) logout(c *gin.Context) {
	http.SetCookie(c.Writer, h.guard.ClearSessionCookie())
	c.JSON(http.StatusOK, gin.H{"success": true})
}
