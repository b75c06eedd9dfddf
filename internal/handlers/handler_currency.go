package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_reporting/internal/core/ports/services"
	"github.com/SscSPs/invoice_reporting/internal/dto"
	"github.com/SscSPs/invoice_reporting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies and amount formatting.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}

	formatting := rg.Group("/formatting")
	{
		formatting.GET("/currency", h.formatCurrency)
		formatting.POST("/currency/batch", h.formatCurrencyBatch)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the curated list of currencies offered in pickers
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.SupportedCurrencies()
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrencyByCode godoc
// @Summary Get display data for a currency
// @Description Returns symbol, name and symbol placement. Unknown codes fall back to the code itself.
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := strings.ToUpper(c.Param("code"))

	if len(currencyCode) != 3 {
		logger.Warn("Rejected malformed currency code", slog.String("currency_code", currencyCode))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(domain.Currency{
		CurrencyCode: currencyCode,
		Symbol:       h.currencyService.CurrencySymbol(currencyCode),
		Name:         h.currencyService.CurrencyName(currencyCode),
	}))
}

// formatCurrency godoc
// @Summary Format an amount
// @Description Renders an amount with grouping and the currency symbol. Malformed amounts are formatted as zero.
// @Tags formatting
// @Produce  json
// @Param amount query string false "Amount"
// @Param code query string false "ISO 4217 code"
// @Param showSymbol query bool false "Include the symbol" default(true)
// @Param showCode query bool false "Append the ISO code" default(false)
// @Param decimals query int false "Fractional digits (0-20)" default(2)
// @Success 200 {object} dto.FormatCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid options"
// @Router /formatting/currency [get]
func (h *currencyHandler) formatCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.FormatCurrencyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for formatCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	opts := formatOptions(query.ShowSymbol, query.ShowCode, query.Decimals)
	c.JSON(http.StatusOK, dto.FormatCurrencyResponse{
		Formatted: h.currencyService.FormatCurrency(query.Amount, query.Code, opts...),
	})
}

// formatCurrencyBatch godoc
// @Summary Format many amounts
// @Description Renders a list of amounts with shared options, preserving order
// @Tags formatting
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatCurrencyBatchRequest true "Amounts to format"
// @Success 200 {object} dto.FormatCurrencyBatchResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /formatting/currency/batch [post]
func (h *currencyHandler) formatCurrencyBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FormatCurrencyBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for formatCurrencyBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	opts := formatOptions(req.ShowSymbol, req.ShowCode, req.Decimals)
	resp := dto.FormatCurrencyBatchResponse{Items: make([]dto.FormatCurrencyResponse, len(req.Items))}
	for i, item := range req.Items {
		resp.Items[i].Formatted = h.currencyService.FormatCurrency(item.Amount, item.CurrencyCode, opts...)
	}

	logger.Debug("Formatted currency batch", slog.Int("count", len(resp.Items)))
	c.JSON(http.StatusOK, resp)
}

func formatOptions(showSymbol, showCode *bool, decimals *int) []portssvc.FormatOption {
	var opts []portssvc.FormatOption
	if showSymbol != nil {
		opts = append(opts, portssvc.WithSymbol(*showSymbol))
	}
	if showCode != nil && *showCode {
		opts = append(opts, portssvc.WithCode())
	}
	if decimals != nil {
		opts = append(opts, portssvc.WithDecimals(*decimals))
	}
	return opts
}
