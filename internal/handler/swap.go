package handler

import (
	"net/http"

	"swap-marketplace/internal/model"

	"github.com/gin-gonic/gin"
)

// RequestSwap
// @Summary Request a swap
// @Description Creates a swap request for an item, reserving it and holding the caller's credits
// @Tags swaps
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param id path string true "Item ID"
// @Success 201 {object} model.SwapActionResponse
// @Failure 400 {object} model.ErrorResponse "Item not available or pending limit exceeded"
// @Failure 402 {object} model.ErrorResponse "Insufficient credits"
// @Failure 403 {object} model.ErrorResponse "Own item"
// @Failure 409 {object} model.ErrorResponse "Duplicate request"
// @Router /swaps/items/{id}/request [post]
func (h *Handler) RequestSwap(c *gin.Context) {
	req, err := h.swapService.RequestSwap(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.SwapActionResponse{
		Status:          "requested",
		Message:         "Swap request created. Waiting for owner approval.",
		RequestID:       req.ID,
		ItemID:          req.ItemID,
		CreditsRequired: req.CreditsRequired.StringFixed(2),
	})
}

// ApproveSwap
// @Summary Approve a swap request
// @Description Transfers the held credits to the owner and marks the item swapped
// @Tags swaps
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param id path string true "Item ID"
// @Param request_id path string true "Swap request ID"
// @Success 200 {object} model.SwapActionResponse
// @Failure 400 {object} model.ErrorResponse "Request not pending"
// @Failure 403 {object} model.ErrorResponse "Not the owner"
// @Router /swaps/items/{id}/requests/{request_id}/approve [post]
func (h *Handler) ApproveSwap(c *gin.Context) {
	itemID := c.Param("id")
	requestID := c.Param("request_id")

	if err := h.swapService.ApproveSwap(c.Request.Context(), itemID, requestID, callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SwapActionResponse{
		Status:    "approved",
		Message:   "Swap request approved. Credits transferred.",
		RequestID: requestID,
		ItemID:    itemID,
	})
}

// RejectSwap
// @Summary Reject a swap request
// @Description Refunds the held credits and reverts the item when no pending requests remain
// @Tags swaps
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param id path string true "Item ID"
// @Param request_id path string true "Swap request ID"
// @Success 200 {object} model.SwapActionResponse
// @Failure 400 {object} model.ErrorResponse "Request not pending"
// @Failure 403 {object} model.ErrorResponse "Not the owner"
// @Router /swaps/items/{id}/requests/{request_id}/reject [post]
func (h *Handler) RejectSwap(c *gin.Context) {
	itemID := c.Param("id")
	requestID := c.Param("request_id")

	if err := h.swapService.RejectSwap(c.Request.Context(), itemID, requestID, callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SwapActionResponse{
		Status:    "rejected",
		Message:   "Swap request rejected.",
		RequestID: requestID,
		ItemID:    itemID,
	})
}

// CancelSwap
// @Summary Cancel own swap request
// @Description Cancels the caller's pending request for an item and refunds the hold
// @Tags swaps
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param id path string true "Item ID"
// @Success 200 {object} model.SwapActionResponse
// @Failure 404 {object} model.ErrorResponse "No pending request"
// @Router /swaps/items/{id}/cancel [post]
func (h *Handler) CancelSwap(c *gin.Context) {
	req, err := h.swapService.CancelSwap(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.SwapActionResponse{
		Status:    "cancelled",
		Message:   "Swap request cancelled successfully.",
		RequestID: req.ID,
		ItemID:    req.ItemID,
	})
}

// GetSwapRequests
// @Summary List swap requests
// @Description Returns pending requests on the caller's items and requests the caller made
// @Tags swaps
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Success 200 {object} model.SwapRequestsResponse
// @Router /swaps/requests [get]
func (h *Handler) GetSwapRequests(c *gin.Context) {
	resp, err := h.swapService.ListRequests(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSwapHistory
// @Summary Swap history
// @Description Returns approved swaps where the caller was owner or requester
// @Tags swaps
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Success 200 {array} model.SwapRequest
// @Router /swaps/history [get]
func (h *Handler) GetSwapHistory(c *gin.Context) {
	swaps, err := h.swapService.SwapHistory(c.Request.Context(), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, swaps)
}
