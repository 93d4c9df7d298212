package handler

import (
	"net/http"

	"eodly/internal/view"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	router *view.Router
}

func NewViewHandler(router *view.Router) *ViewHandler {
	return &ViewHandler{router: router}
}

func (h *ViewHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": h.router.Current()})
}

func (h *ViewHandler) Navigate(c *gin.Context) {
	var req struct {
		View view.View `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !view.Valid(req.View) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": h.router.Navigate(req.View)})
}
