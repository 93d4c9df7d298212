package handler

import (
	"net/http"
	"sync/atomic"

	"eodly/internal/model"
	"eodly/internal/service"

	"github.com/gin-gonic/gin"
)

type PolishHandler struct {
	polisher service.Polisher
	journal  *service.Journal
	busy     atomic.Bool
}

func NewPolishHandler(polisher service.Polisher, journal *service.Journal) *PolishHandler {
	return &PolishHandler{polisher: polisher, journal: journal}
}

// Polish refines the report fields into prose. One call at a time per
// instance; a second trigger while one is in flight gets 409 instead of
// racing the first.
func (h *PolishHandler) Polish(c *gin.Context) {
	var req model.PolishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.UserName == "" {
		req.UserName = c.GetString("user_name")
	}

	if !h.busy.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{"error": "optimization already in progress"})
		return
	}
	defer h.busy.Store(false)

	summary, fallback := h.polisher.Polish(c.Request.Context(), req)
	c.JSON(http.StatusOK, model.PolishResponse{Summary: summary, Fallback: fallback})
}

// Summarize produces the short executive summary over today's submitted
// reports.
func (h *PolishHandler) Summarize(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"summary": h.polisher.SummarizeTeam(c.Request.Context(), h.journal.Submitted()),
	})
}
