package handler

import (
	"net/http"
	"time"

	"eodly/internal/export"
	"eodly/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	journal *service.Journal
}

func NewExportHandler(journal *service.Journal) *ExportHandler {
	return &ExportHandler{journal: journal}
}

func (h *ExportHandler) selection(c *gin.Context) export.Selection {
	today := time.Now().Format("2006-01-02")
	sel := export.Selection{
		UserID:    c.DefaultQuery("user", "all"),
		StartDate: c.DefaultQuery("date", today),
		RangeMode: c.Query("range") == "true",
	}
	sel.EndDate = c.DefaultQuery("end", sel.StartDate)
	if sel.EndDate < sel.StartDate {
		sel.StartDate, sel.EndDate = sel.EndDate, sel.StartDate
	}
	return sel
}

func (h *ExportHandler) serve(c *gin.Context, data []byte, err error, filename, contentType string) {
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No submitted EOD records found for the selected date(s)."})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

func (h *ExportHandler) CSV(c *gin.Context) {
	sel := h.selection(c)
	reports := export.Filter(h.journal.Submitted(), sel)
	data, err := export.CSV(reports)
	h.serve(c, data, err, "EODly_Report_"+sel.RangeLabel()+".csv", "text/csv; charset=utf-8")
}

func (h *ExportHandler) XLSX(c *gin.Context) {
	sel := h.selection(c)
	reports := export.Filter(h.journal.Submitted(), sel)
	data, err := export.XLSX(reports)
	h.serve(c, data, err, "EODly_Report_"+sel.RangeLabel()+".xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (h *ExportHandler) PrintableHTML(c *gin.Context) {
	sel := h.selection(c)
	reports := export.Filter(h.journal.Submitted(), sel)
	data, err := export.PrintableHTML(reports, sel)
	h.serve(c, data, err, "EODly_PDF_Report_"+sel.RangeLabel()+".html", "text/html; charset=utf-8")
}

func (h *ExportHandler) SummaryHTML(c *gin.Context) {
	sel := h.selection(c)
	reports := export.Filter(h.journal.Submitted(), sel)
	data, err := export.SummaryHTML(reports)
	h.serve(c, data, err, "EODly_GoogleDoc_"+sel.RangeLabel()+".html", "text/html; charset=utf-8")
}

// MailLink returns the Gmail compose deep link for one report; the client
// opens it, nothing is sent from here.
func (h *ExportHandler) MailLink(c *gin.Context) {
	r := h.journal.Get(c.Query("report"))
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	body := r.OptimizedSummary
	if body == "" {
		body = r.Content
	}
	c.JSON(http.StatusOK, gin.H{"url": export.MailComposeURL(r.UserName, r.Date, body)})
}
