package service

import (
	"context"

	"swap-marketplace/internal/model"

	"github.com/shopspring/decimal"
)

// CreditService is the only mutator of account balances. Every mutation
// appends a ledger entry and updates the cached balance as one unit.
type CreditService interface {
	// AddCredits credits a user and returns the new balance
	AddCredits(ctx context.Context, userID int64, amount decimal.Decimal, transType model.TransactionType, description string) (decimal.Decimal, error)

	// DeductCredits debits a user and returns the new balance
	DeductCredits(ctx context.Context, userID int64, amount decimal.Decimal, transType model.TransactionType, description string) (decimal.Decimal, error)

	// RefundCredits returns previously held credits. A refund is a credit
	// addition with an appropriate type, not a separate code path.
	RefundCredits(ctx context.Context, userID int64, amount decimal.Decimal, description string) (decimal.Decimal, error)

	// GetBalance serves the cached balance (fast path)
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)

	// ComputeBalance recomputes the balance from the ledger (audit slow path)
	ComputeBalance(ctx context.Context, userID int64) (decimal.Decimal, error)

	ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)

	// Reconcile overwrites the cached balance with the ledger sum and
	// returns it. The authoritative repair tool for drift.
	Reconcile(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// SwapService drives the swap-request state machine.
type SwapService interface {
	RequestSwap(ctx context.Context, itemID string, requesterID int64) (*model.SwapRequest, error)
	ApproveSwap(ctx context.Context, itemID, requestID string, callerID int64) error
	RejectSwap(ctx context.Context, itemID, requestID string, callerID int64) error
	CancelSwap(ctx context.Context, itemID string, callerID int64) (*model.SwapRequest, error)

	// ListRequests returns pending requests against the user's items and all
	// requests the user has made.
	ListRequests(ctx context.Context, userID int64) (*model.SwapRequestsResponse, error)

	// SwapHistory returns approved swaps the user took part in.
	SwapHistory(ctx context.Context, userID int64) ([]*model.SwapRequest, error)
}

// ItemService covers the item lifecycle operations that touch credits or
// item status: listing, deletion with clawback, direct lock/unlock.
type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, req *model.CreateItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, itemID string, callerID int64) error
	LockItem(ctx context.Context, itemID string, callerID int64) (*model.Item, error)
	UnlockItem(ctx context.Context, itemID string, callerID int64) error
}

// Notifier is the narrow interface to the notification collaborator.
// Deliveries are fire-and-forget: callers log failures and move on.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}
