package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/invoice_reporting/internal/apperrors"
	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_reporting/internal/core/ports/services"
	"github.com/SscSPs/invoice_reporting/internal/dto"
	"github.com/SscSPs/invoice_reporting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// periodHandler handles HTTP requests related to reporting periods
type periodHandler struct {
	periodService    portssvc.PeriodSvcFacade
	defaultYearsBack int
}

// newPeriodHandler creates a new periodHandler
func newPeriodHandler(ps portssvc.PeriodSvcFacade, defaultYearsBack int) *periodHandler {
	return &periodHandler{
		periodService:    ps,
		defaultYearsBack: defaultYearsBack,
	}
}

// RegisterPeriodRoutes registers routes related to reporting periods
func RegisterPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade, defaultYearsBack int) {
	h := newPeriodHandler(periodService, defaultYearsBack)

	periods := rg.Group("/periods")
	{
		periods.GET("/quarter", h.getQuarterRange)
		periods.GET("/current", h.getCurrentQuarter)
		periods.GET("/years", h.getYearOptions)
		periods.GET("/format-range", h.formatDateRange)
	}
}

// getQuarterRange godoc
// @Summary Get the date range of a quarter
// @Description Returns the inclusive calendar range of a fiscal quarter. Defaults to the current quarter and year.
// @Tags periods
// @Produce json
// @Param quarter query int false "Quarter (1-4)"
// @Param year query int false "Year"
// @Success 200 {object} dto.QuarterRangeResponse
// @Failure 400 {object} map[string]string "Invalid quarter"
// @Router /periods/quarter [get]
func (h *periodHandler) getQuarterRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.QuarterRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for getQuarterRange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	var quarter, year int
	if query.Quarter != nil {
		quarter = *query.Quarter
	} else {
		quarter = h.periodService.CurrentQuarter()
	}
	if query.Year != nil {
		year = *query.Year
	} else {
		year = h.periodService.CurrentYear()
	}

	logger = logger.With(slog.Int("quarter", quarter), slog.Int("year", year))

	r, err := h.periodService.QuarterDateRange(quarter, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidArgument) {
			logger.Warn("Invalid quarter requested", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quarter must be between 1 and 4"})
		} else {
			logger.Error("Failed to compute quarter range", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute quarter range"})
		}
		return
	}

	label := h.periodService.FormatDateRange(r.Start, r.End)
	logger.Debug("Quarter range computed", slog.String("startDate", r.StartDate()), slog.String("endDate", r.EndDate()))
	c.JSON(http.StatusOK, dto.ToQuarterRangeResponse(domain.QuarterSpec{Quarter: quarter, Year: year}, r, label))
}

// getCurrentQuarter godoc
// @Summary Get the current quarter
// @Description Returns the quarter containing today in the configured timezone
// @Tags periods
// @Produce json
// @Success 200 {object} dto.QuarterRangeResponse
// @Router /periods/current [get]
func (h *periodHandler) getCurrentQuarter(c *gin.Context) {
	r := h.periodService.CurrentQuarterRange()
	spec := h.periodService.QuarterOf(r.Start)
	label := h.periodService.FormatDateRange(r.Start, r.End)
	c.JSON(http.StatusOK, dto.ToQuarterRangeResponse(spec, r, label))
}

// getYearOptions godoc
// @Summary List selectable report years
// @Description Returns the current year followed by previous years, newest first
// @Tags periods
// @Produce json
// @Param yearsBack query int false "Number of previous years" default(5)
// @Success 200 {object} dto.YearOptionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /periods/years [get]
func (h *periodHandler) getYearOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.YearOptionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for getYearOptions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	yearsBack := h.defaultYearsBack
	if query.YearsBack != nil {
		yearsBack = *query.YearsBack
	}

	c.JSON(http.StatusOK, dto.YearOptionsResponse{Years: h.periodService.YearOptions(yearsBack)})
}

// formatDateRange godoc
// @Summary Render a date range
// @Description Renders two calendar dates as "Jan 1, 2024 - Mar 31, 2024"
// @Tags periods
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.FormatRangeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /periods/format-range [get]
func (h *periodHandler) formatDateRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.FormatRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for formatDateRange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	start, err := time.Parse(domain.DateLayout, query.StartDate)
	if err != nil {
		logger.Warn("Invalid start date format", slog.String("startDate", query.StartDate), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate format. Use YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(domain.DateLayout, query.EndDate)
	if err != nil {
		logger.Warn("Invalid end date format", slog.String("endDate", query.EndDate), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate format. Use YYYY-MM-DD"})
		return
	}

	if start.After(end) {
		logger.Warn("Invalid date range", slog.String("startDate", query.StartDate), slog.String("endDate", query.EndDate))
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be before or equal to endDate"})
		return
	}

	c.JSON(http.StatusOK, dto.FormatRangeResponse{Label: h.periodService.FormatDateRange(start, end)})
}
