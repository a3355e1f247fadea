package handler

import (
	"errors"
	"net/http"

	"swap-marketplace/internal/model"
	"swap-marketplace/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	creditService service.CreditService
	swapService   service.SwapService
	itemService   service.ItemService
	logger        zerolog.Logger
}

func NewHandler(
	creditService service.CreditService,
	swapService service.SwapService,
	itemService service.ItemService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		creditService: creditService,
		swapService:   swapService,
		itemService:   itemService,
		logger:        logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		MetricsMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes; the identity collaborator upstream verifies the caller and
	// forwards their user id
	v1 := router.Group("/api/v1", IdentityMiddleware())

	items := v1.Group("/items")
	items.POST("", h.CreateItem)
	items.DELETE("/:id", h.DeleteItem)
	items.POST("/:id/lock", h.LockItem)
	items.POST("/:id/unlock", h.UnlockItem)

	swaps := v1.Group("/swaps")
	swaps.POST("/items/:id/request", h.RequestSwap)
	swaps.POST("/items/:id/requests/:request_id/approve", h.ApproveSwap)
	swaps.POST("/items/:id/requests/:request_id/reject", h.RejectSwap)
	swaps.POST("/items/:id/cancel", h.CancelSwap)
	swaps.GET("/requests", h.GetSwapRequests)
	swaps.GET("/history", h.GetSwapHistory)

	credits := v1.Group("/credits")
	credits.GET("/balance", h.GetBalance)
	credits.POST("/add", h.AddCredits)
	credits.POST("/deduct", h.DeductCredits)
	credits.GET("/transactions", h.GetTransactions)
	credits.POST("/reconcile", h.Reconcile)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrCompensationFailed):
		// The most severe kind: a hold exists without its compensating
		// movement. Stays a 500 but with its own code, and is logged below.
		code = "COMPENSATION_FAILED"
		resp.Details = "A compensating credit movement could not be applied; the account needs reconciliation"
	case errors.Is(err, model.ErrInsufficientCredits):
		status = http.StatusPaymentRequired
		code = "INSUFFICIENT_CREDITS"
	case errors.Is(err, model.ErrPendingLimitExceeded):
		status = http.StatusBadRequest
		code = "PENDING_LIMIT_EXCEEDED"
	case errors.Is(err, model.ErrDuplicateRequest):
		status = http.StatusConflict
		code = "DUPLICATE_REQUEST"
	case errors.Is(err, model.ErrItemNotAvailable):
		status = http.StatusBadRequest
		code = "ITEM_NOT_AVAILABLE"
	case errors.Is(err, model.ErrInvalidState):
		status = http.StatusBadRequest
		code = "INVALID_STATE"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidTransactionType):
		status = http.StatusBadRequest
		code = "INVALID_TRANSACTION_TYPE"
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
		code = "FORBIDDEN"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrItemNotFound):
		status = http.StatusNotFound
		code = "ITEM_NOT_FOUND"
	case errors.Is(err, model.ErrRequestNotFound):
		status = http.StatusNotFound
		code = "REQUEST_NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("code", code).Msg("internal server error")
	}

	c.JSON(status, resp)
}
