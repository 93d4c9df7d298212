package handler

import (
	"net/http"
	"time"

	"eodly/internal/model"
	"eodly/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	journal *service.Journal
}

func NewReportHandler(journal *service.Journal) *ReportHandler {
	return &ReportHandler{journal: journal}
}

// Create adds a report or saves a draft. The journal silently ignores the
// call without a session; surface that as 401 here since the route is behind
// auth anyway.
func (h *ReportHandler) Create(c *gin.Context) {
	var input model.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	r := h.journal.Add(input, input.IsDraft)
	if r == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReportHandler) Active(c *gin.Context) {
	c.JSON(http.StatusOK, h.journal.Active())
}

func (h *ReportHandler) Submitted(c *gin.Context) {
	c.JSON(http.StatusOK, h.journal.Submitted())
}

func (h *ReportHandler) History(c *gin.Context) {
	uid := c.GetString("user_id")
	c.JSON(http.StatusOK, h.journal.History(uid, c.Query("q")))
}

func (h *ReportHandler) Drafts(c *gin.Context) {
	uid := c.GetString("user_id")
	c.JSON(http.StatusOK, h.journal.Drafts(uid))
}

func (h *ReportHandler) Trash(c *gin.Context) {
	uid := c.GetString("user_id")
	c.JSON(http.StatusOK, h.journal.Trash(uid))
}

func (h *ReportHandler) MoveToTrash(c *gin.Context) {
	id := c.Param("id")
	if h.journal.Get(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	h.journal.MoveToTrash(id)
	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"undo": "/api/reports/" + id + "/restore",
	})
}

func (h *ReportHandler) Restore(c *gin.Context) {
	id := c.Param("id")
	if h.journal.Get(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	h.journal.Restore(id)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ReportHandler) EmptyTrash(c *gin.Context) {
	h.journal.EmptyTrash(c.GetString("user_id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ReportHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, service.BuildStats(h.journal.Submitted(), time.Now()))
}
