package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/services"
)

// ReportHandler serves aggregate reports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport handles the per-account expense report.
// @Summary     Expense report
// @Description Expense total per account; accounts without expenses are omitted
// @Tags        reports
// @Produce     json
// @Success     200 {object} map[string]interface{} "Report lines"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GenerateReport()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
