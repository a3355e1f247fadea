package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"swap-marketplace/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetBalance
// @Summary Get credit balance
// @Description Returns the caller's current credit balance
// @Tags credits
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /credits/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID := callerID(c)

	balance, err := h.creditService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.BalanceResponse{
		UserID:  userID,
		Balance: balance.StringFixed(2),
	})
}

// AddCredits
// @Summary Add credits
// @Description Credits the caller's account
// @Tags credits
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param body body model.CreditAmountRequest true "Amount to add"
// @Success 200 {object} model.CreditMutationResponse
// @Failure 400 {object} model.ErrorResponse "Invalid amount"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /credits/add [post]
func (h *Handler) AddCredits(c *gin.Context) {
	h.mutateCredits(c, model.TypeCreditAdd)
}

// DeductCredits
// @Summary Deduct credits
// @Description Debits the caller's account
// @Tags credits
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param body body model.CreditAmountRequest true "Amount to deduct"
// @Success 200 {object} model.CreditMutationResponse
// @Failure 402 {object} model.ErrorResponse "Insufficient credits"
// @Router /credits/deduct [post]
func (h *Handler) DeductCredits(c *gin.Context) {
	h.mutateCredits(c, model.TypeCreditDeduct)
}

func (h *Handler) mutateCredits(c *gin.Context, transType model.TransactionType) {
	userID := callerID(c)

	var req model.CreditAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.handleError(c, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error()))
		return
	}

	description := req.Description
	ctx := c.Request.Context()

	var newBalance decimal.Decimal
	if transType == model.TypeCreditDeduct {
		newBalance, err = h.creditService.DeductCredits(ctx, userID, amount, transType, description)
	} else {
		newBalance, err = h.creditService.AddCredits(ctx, userID, amount, transType, description)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.CreditMutationResponse{
		UserID:     userID,
		Amount:     amount.StringFixed(2),
		NewBalance: newBalance.StringFixed(2),
	})
}

// GetTransactions
// @Summary List ledger entries
// @Description Returns the caller's transactions, newest first
// @Tags credits
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /credits/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	userID := callerID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	// Out-of-range values would be a Postgres error, not a bad request
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := h.creditService.ListTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// Reconcile
// @Summary Reconcile balance
// @Description Recomputes the caller's balance from the ledger and overwrites the cached value
// @Tags credits
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /credits/reconcile [post]
func (h *Handler) Reconcile(c *gin.Context) {
	userID := callerID(c)

	balance, err := h.creditService.Reconcile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.BalanceResponse{
		UserID:  userID,
		Balance: balance.StringFixed(2),
	})
}
