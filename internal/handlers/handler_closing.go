package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
	"github.com/kyawswarhtun/currency_exchange_app/internal/middleware"
)

// closingHandler handles HTTP requests related to daily closings.
type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
}

func newClosingHandler(cs portssvc.ClosingSvcFacade) *closingHandler {
	return &closingHandler{closingService: cs}
}

// registerClosingRoutes registers routes related to daily closings.
func registerClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvcFacade) {
	h := newClosingHandler(closingService)

	closings := rg.Group("/closings")
	{
		closings.POST("", h.createClosing)
		closings.GET("", h.listClosings)
	}
}

// createClosing godoc
// @Summary Close an account for the day
// @Description Records the counted cash for an account, snapshots its ledger balance and the day's profit, and locks the day. An account can be closed at most once per day.
// @Tags closings
// @Accept  json
// @Produce  json
// @Param   closing body dto.CreateClosingRequest true "Closing details"
// @Success 201 {object} dto.ClosingResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Account already closed today"
// @Failure 500 {object} ErrorResponse "Failed to create closing"
// @Security BearerAuth
// @Router /closings [post]
func (h *closingHandler) createClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClosing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	closing, err := h.closingService.CreateClosing(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create closing")
		return
	}

	logger.Info("Daily closing recorded",
		slog.String("account_id", closing.AccountID),
		slog.String("difference", closing.Difference.String()))
	c.JSON(http.StatusCreated, dto.ToClosingResponse(closing))
}

// listClosings godoc
// @Summary List daily closings
// @Description Lists the caller's closing history across all their accounts, newest first
// @Tags closings
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Offset"
// @Success 200 {object} dto.ListClosingsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list closings"
// @Security BearerAuth
// @Router /closings [get]
func (h *closingHandler) listClosings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListClosingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	closings, err := h.closingService.ListClosings(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list closings")
		return
	}

	c.JSON(http.StatusOK, closings)
}
