package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/services"
)

// TransferHandler handles fund transfers between accounts.
type TransferHandler struct {
	transferService services.TransferServicer
	auditService    services.AuditServicer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferService services.TransferServicer, auditService services.AuditServicer) *TransferHandler {
	return &TransferHandler{transferService: transferService, auditService: auditService}
}

// TransferRequest represents the request payload for a transfer.
type TransferRequest struct {
	From   string      `json:"from" binding:"required"`
	To     string      `json:"to" binding:"required"`
	Amount json.Number `json:"amount" binding:"required,decimal" swaggertype:"string"`
}

// Transfer handles moving funds between two accounts.
// @Summary     Transfer funds
// @Description Debit one account and credit another atomically
// @Tags        transfers
// @Accept      json
// @Produce     json
// @Param       request body TransferRequest true "Transfer details"
// @Success     200 {object} MessageResponse "Transfer completed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Transaction failed and was rolled back"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transfers [post]
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidAmount, err))
		return
	}

	if err := h.transferService.TransferFunds(req.From, req.To, amount); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("TRANSFER", "account", 0, map[string]interface{}{
		"from":   req.From,
		"to":     req.To,
		"amount": amount.String(),
	})

	c.JSON(http.StatusOK, MessageResponse{Message: "Transfer completed"})
}
