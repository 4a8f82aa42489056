package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billigi/lending-api/internal/api/metrics"
	"github.com/billigi/lending-api/internal/core/ports"
)

// ReportHandler handles HTTP requests for lost-and-found reports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// List handles GET /api/lostfound.
//
// @Summary      List lost and found reports
// @Tags         lostfound
// @Produce      json
// @Success      200  {array}   domain.Report
// @Failure      500  {object}  errorResponse
// @Router       /api/lostfound [get]
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.service.ListReports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// Create handles POST /api/lostfound.
//
// @Summary      File a lost or found report
// @Tags         lostfound
// @Accept       json
// @Produce      json
// @Param        body  body      createReportRequest  true  "Report"
// @Success      200   {object}  domain.Report
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/lostfound [post]
func (h *ReportHandler) Create(c echo.Context) error {
	name, err := actingName(c)
	if err != nil {
		return err
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.service.CreateReport(c.Request().Context(), ports.CreateReportInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		ActingName:  name,
	})
	if err != nil {
		return err
	}

	metrics.ReportsCreatedTotal.WithLabelValues(string(report.Status)).Inc()
	return c.JSON(http.StatusOK, report)
}

// Delete handles DELETE /api/lostfound/:id.
//
// @Summary      Delete a report
// @Tags         lostfound
// @Produce      json
// @Param        id   path      string  true  "Report id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/lostfound/{id} [delete]
func (h *ReportHandler) Delete(c echo.Context) error {
	name, err := actingName(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteReport(c.Request().Context(), c.Param("id"), name); err != nil {
		return err
	}

	metrics.ListingsDeletedTotal.WithLabelValues("report").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Report deleted successfully"})
}
