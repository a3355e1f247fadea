package repository

import (
	"context"
	"time"

	"swap-marketplace/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides multi-write atomicity for the ledger. Two strategies
// exist: a real database transaction, and a sequential fallback for stores
// without multi-statement transactions. Under the fallback the function runs
// with a nil tx and every write goes straight to the pool in call order, so
// callers must write the ledger entry before the balance - a crash then
// leaves an under-applied balance that reconciliation can repair, never a
// balance without an audit trail.
type DBManager interface {
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// AccountRepository manages the cached per-user credit balance. All balance
// mutation in the system funnels through these methods.
type AccountRepository interface {
	// GetAccountForUpdate retrieves an account with a row-level lock (must be in transaction)
	GetAccountForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error)

	// GetBalance retrieves the cached balance for a user (read-only fast path)
	GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error)

	// UpdateBalance overwrites the cached balance
	UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error
}

// LedgerRepository manages the append-only transaction log.
type LedgerRepository interface {
	// InsertTransaction appends one immutable ledger entry
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// ListByUser retrieves ledger entries for a user, newest first
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)

	// SumByUser computes the directional sum of all entries for a user (audit slow path)
	SumByUser(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error)

	// ListActiveUserIDs returns users with recent ledger activity, for the reconciliation sweep
	ListActiveUserIDs(ctx context.Context, limit int) ([]int64, error)
}

// ItemRepository manages item records. Every status transition is a single
// conditional UPDATE so that concurrent writers race at the storage layer,
// not in application code.
type ItemRepository interface {
	GetItem(ctx context.Context, itemID string, tx ...pgx.Tx) (*model.Item, error)

	InsertItem(ctx context.Context, item *model.Item) error

	// Reserve transitions available -> pending and returns the updated item,
	// or ErrItemNotAvailable if the item is in any other status.
	Reserve(ctx context.Context, itemID string) (*model.Item, error)

	// Release reverts pending -> available. Reports whether a row changed.
	Release(ctx context.Context, itemID string) (bool, error)

	// MarkSwapped transitions pending -> swapped. Reports whether a row changed.
	MarkSwapped(ctx context.Context, itemID string) (bool, error)

	// Lock transitions available -> locked, stamping who holds the lock and
	// when it expires. Reports whether a row changed.
	Lock(ctx context.Context, itemID string, lockedBy int64, lockedUntil time.Time) (bool, error)

	// Unlock reverts locked -> available and clears the lock metadata.
	Unlock(ctx context.Context, itemID string) (bool, error)

	DeleteItem(ctx context.Context, itemID string) error
}

// SwapRequestRepository manages swap request records. Terminal transitions go
// through FinishRequest, whose status guard makes terminal states immutable.
type SwapRequestRepository interface {
	InsertRequest(ctx context.Context, req *model.SwapRequest) error

	GetRequest(ctx context.Context, requestID string) (*model.SwapRequest, error)

	// FinishRequest moves a pending request to a terminal status. Reports
	// false when the request is already terminal (or absent).
	FinishRequest(ctx context.Context, requestID string, status model.SwapStatus) (bool, error)

	// GetPendingForItemAndRequester returns the live request a user holds on
	// an item, or ErrRequestNotFound.
	GetPendingForItemAndRequester(ctx context.Context, itemID string, requesterID int64) (*model.SwapRequest, error)

	ListPendingForItem(ctx context.Context, itemID string) ([]*model.SwapRequest, error)

	CountPendingByRequester(ctx context.Context, requesterID int64) (int, error)

	ListByRequester(ctx context.Context, requesterID int64) ([]*model.SwapRequest, error)

	// ListPendingForOwner returns pending requests against items the user owns.
	ListPendingForOwner(ctx context.Context, ownerID int64) ([]*model.SwapRequest, error)

	// ListApprovedForUser returns approved swaps where the user was requester or item owner.
	ListApprovedForUser(ctx context.Context, userID int64) ([]*model.SwapRequest, error)
}
