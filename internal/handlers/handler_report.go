package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler schedules statistics reports and serves their results.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := &reportHandler{reportService: reportService}

	reports := rg.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("/:reportID", h.getReport)
	}
}

// createReport godoc
// @Summary Schedule a statistics report
// @Description Creates the report and generates it in the background. Poll GET /reports/{reportID} for the result.
// @Tags reports
// @Produce  json
// @Success 202 {object} dto.CreateReportResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports [post]
func (h *reportHandler) createReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reportID, err := h.reportService.CreateReport(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	h.reportService.GenerateReportAsync(c.Request.Context(), reportID)

	logger.Info("Report scheduled", slog.String("report_id", reportID))
	c.JSON(http.StatusAccepted, dto.CreateReportResponse{
		ID:      reportID,
		Message: "Report generation started",
	})
}

// getReport godoc
// @Summary Get a report
// @Description Returns the rendered HTML once the report is COMPLETED, otherwise its status.
// @Description Polling always answers 200; a failed generation is reported in the body.
// @Tags reports
// @Produce  json,html
// @Param   reportID path string true "Report ID"
// @Success 200 {string} string "Rendered report"
// @Success 200 {object} dto.ReportStatusResponse "Still generating or failed"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/{reportID} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("reportID")
	logger = logger.With(slog.String("report_id", reportID))

	report, err := h.reportService.GetReport(c.Request.Context(), reportID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	content := ""
	if report.Content != nil {
		content = *report.Content
	}

	switch report.Status {
	case domain.ReportCompleted:
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(content))
	case domain.ReportError:
		c.JSON(http.StatusOK, dto.ReportStatusResponse{
			Status:  report.Status,
			Message: "Report generation failed",
			Error:   content,
		})
	default:
		c.JSON(http.StatusOK, dto.ReportStatusResponse{
			Status:  report.Status,
			Message: "Report is still being generated",
		})
	}
}
