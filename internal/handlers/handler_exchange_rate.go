package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
	"github.com/kyawswarhtun/currency_exchange_app/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/maps", h.getRateMaps)
		rates.GET("/convert", h.convertToMMK)
		rates.PUT("", h.updateRate)
		rates.PUT("/bulk", h.updateRates)
	}
}

// listRates godoc
// @Summary List exchange rates
// @Description Lists the current MMK reference rate for every supported currency, MMK itself included
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.ListRatesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list rates"
// @Security BearerAuth
// @Router /rates [get]
func (h *exchangeRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRatesResponse(rates))
}

// getRateMaps godoc
// @Summary Get rate maps
// @Description Returns the to-MMK and from-MMK rate for every tracked currency, MMK pinned to 1
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateMapsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to load rates"
// @Security BearerAuth
// @Router /rates/maps [get]
func (h *exchangeRateHandler) getRateMaps(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	toMMK, err := h.rateService.RatesToMMK(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load rates")
		return
	}
	fromMMK, err := h.rateService.RatesFromMMK(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load rates")
		return
	}

	c.JSON(http.StatusOK, dto.RateMapsResponse{ToMMK: toMMK, FromMMK: fromMMK})
}

// convertToMMK godoc
// @Summary Convert an amount to MMK
// @Description Values an amount of a supported currency in MMK at the current rate
// @Tags rates
// @Produce  json
// @Param   amount query string true "Amount in the source currency"
// @Param   currency query string true "Source currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to convert"
// @Security BearerAuth
// @Router /rates/convert [get]
func (h *exchangeRateHandler) convertToMMK(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ConvertToMMK", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	amountMMK, err := h.rateService.ConvertToMMK(c.Request.Context(), params.Amount, domain.Currency(params.Currency))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to convert")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    params.Amount,
		Currency:  domain.Currency(params.Currency),
		AmountMMK: amountMMK,
	})
}

// updateRate godoc
// @Summary Update an exchange rate
// @Description Sets the MMK reference rate for a single currency
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpdateRateRequest true "Rate to store"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to update rate"
// @Security BearerAuth
// @Router /rates [put]
func (h *exchangeRateHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.rateService.UpdateRate(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update rate")
		return
	}

	logger.Info("Exchange rate updated", slog.String("currency", string(rate.Currency)))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateRates godoc
// @Summary Bulk update exchange rates
// @Description Sets the MMK reference rate for several currencies in one call
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rates body dto.BulkUpdateRatesRequest true "Rates to store"
// @Success 200 {object} dto.ListRatesResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to update rates"
// @Security BearerAuth
// @Router /rates/bulk [put]
func (h *exchangeRateHandler) updateRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.BulkUpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rates, err := h.rateService.UpdateRates(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update rates")
		return
	}

	logger.Info("Exchange rates updated", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListRatesResponse(rates))
}
