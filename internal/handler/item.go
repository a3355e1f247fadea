package handler

import (
	"net/http"

	"swap-marketplace/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateItem
// @Summary List a new item
// @Description Creates an item and awards the listing credit to the owner
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param body body model.CreateItemRequest true "Item details"
// @Success 201 {object} model.Item
// @Failure 400 {object} model.ErrorResponse "Invalid body"
// @Router /items [post]
func (h *Handler) CreateItem(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), callerID(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeleteItem
// @Summary Delete an item
// @Description Deletes an available item, clawing back the listing credit
// @Tags items
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param id path string true "Item ID"
// @Success 204 "Deleted"
// @Failure 400 {object} model.ErrorResponse "Item not available"
// @Failure 403 {object} model.ErrorResponse "Not the owner"
// @Router /items/{id} [delete]
func (h *Handler) DeleteItem(c *gin.Context) {
	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LockItem
// @Summary Lock an item
// @Description Reserves an available item for the caller for 24 hours without moving credits
// @Tags items
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param id path string true "Item ID"
// @Success 200 {object} model.Item
// @Failure 400 {object} model.ErrorResponse "Already locked"
// @Failure 403 {object} model.ErrorResponse "Own item"
// @Router /items/{id}/lock [post]
func (h *Handler) LockItem(c *gin.Context) {
	item, err := h.itemService.LockItem(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UnlockItem
// @Summary Unlock an item
// @Description Owner-only reversal of a direct lock
// @Tags items
// @Produce json
// @Param X-User-ID header int true "Verified caller id"
// @Param id path string true "Item ID"
// @Success 200 {object} model.SwapActionResponse
// @Failure 400 {object} model.ErrorResponse "Not locked"
// @Failure 403 {object} model.ErrorResponse "Not the owner"
// @Router /items/{id}/unlock [post]
func (h *Handler) UnlockItem(c *gin.Context) {
	if err := h.itemService.UnlockItem(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "available"})
}
