package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autocarcare/garage-api/internal/application/service"
	"github.com/autocarcare/garage-api/internal/presentation/http/dto/response"
)

// ReportHandler handles GST report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SlabReport builds the per-invoice GST slab report. With format=csv or
// format=xlsx the report is streamed as a download instead of JSON.
// @Summary GST Slab Report
// @Description Per-invoice tax amounts bucketed by GST slab over a date range
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param format query string false "Output format: json, csv or xlsx"
// @Success 200 {object} response.APIResponse
// @Router /reports/gst-slabs [get]
func (h *ReportHandler) SlabReport(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	from, ok := parseDateQuery(c, "start")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "end")
	if !ok {
		return
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		response.BadRequest(c, "End date must not be before start date")
		return
	}

	input := &service.SlabReportInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		From:         from,
		To:           to,
	}

	switch c.Query("format") {
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename("csv")))
		c.Header("Content-Type", "text/csv")
		if err := h.reportService.WriteSlabReportCSV(c.Request.Context(), input, c.Writer); err != nil {
			response.Error(c, err)
		}
	case "xlsx":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename("xlsx")))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := h.reportService.WriteSlabReportXLSX(c.Request.Context(), input, c.Writer); err != nil {
			response.Error(c, err)
		}
	case "", "json":
		report, err := h.reportService.BuildSlabReport(c.Request.Context(), input)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Report generated successfully", report)
	default:
		response.BadRequest(c, "Unknown format. Use json, csv or xlsx")
	}
}

func reportFilename(ext string) string {
	return fmt.Sprintf("gst-slab-report-%s.%s", time.Now().Format("20060102"), ext)
}
