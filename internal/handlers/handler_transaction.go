package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
	"github.com/kyawswarhtun/currency_exchange_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to exchange transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/exchange", h.createExchange)
		transactions.POST("/cross", h.createCrossExchange)
		transactions.GET("/history", h.listHistory)
		transactions.GET("/:kind/:id", h.getTransaction)
	}
}

// createExchange godoc
// @Summary Execute a standard exchange
// @Description Moves value between two of the caller's accounts at a quoted rate, debiting one and crediting the other atomically
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateExchangeRequest true "Exchange details"
// @Success 201 {object} dto.ExchangeTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Failure 500 {object} ErrorResponse "Failed to execute exchange"
// @Security BearerAuth
// @Router /transactions/exchange [post]
func (h *transactionHandler) createExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.txnService.CreateExchange(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute exchange")
		return
	}

	logger.Info("Exchange executed", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToExchangeTransactionResponse(txn))
}

// createCrossExchange godoc
// @Summary Execute a cross exchange
// @Description Executes a supplier-brokered trade between the caller's bridge account and a foreign-currency account
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateCrossExchangeRequest true "Cross exchange details"
// @Success 201 {object} dto.CrossTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account or supplier not found"
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Failure 500 {object} ErrorResponse "Failed to execute cross exchange"
// @Security BearerAuth
// @Router /transactions/cross [post]
func (h *transactionHandler) createCrossExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCrossExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCrossExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.txnService.CreateCrossExchange(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to execute cross exchange")
		return
	}

	logger.Info("Cross exchange executed", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToCrossTransactionResponse(txn))
}

// listHistory godoc
// @Summary List transaction history
// @Description Lists the caller's transactions across all kinds, newest first
// @Tags transactions
// @Produce  json
// @Param   page query int false "Page number (1-based)"
// @Param   limit query int false "Page size"
// @Success 200 {object} dto.ListHistoryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list history"
// @Security BearerAuth
// @Router /transactions/history [get]
func (h *transactionHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	history, err := h.txnService.ListHistory(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// getTransaction godoc
// @Summary Get a transaction by kind and ID
// @Description Retrieves one of the caller's transactions. Kind is "standard" or "cross".
// @Tags transactions
// @Produce  json
// @Param   kind path string true "Transaction kind" Enums(standard, cross)
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.HistoryItemResponse
// @Failure 400 {object} ErrorResponse "Unknown kind"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{kind}/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var kind domain.TransactionKind
	switch strings.ToLower(c.Param("kind")) {
	case "standard":
		kind = domain.KindStandard
	case "cross":
		kind = domain.KindCross
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown transaction kind: " + c.Param("kind")})
		return
	}

	rec, err := h.txnService.GetTransaction(c.Request.Context(), kind, c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryItemResponse(*rec))
}
