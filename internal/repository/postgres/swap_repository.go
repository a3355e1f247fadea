package postgres

import (
	"context"
	"errors"
	"fmt"

	"swap-marketplace/internal/model"
	"swap-marketplace/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.SwapRequestRepository = (*SwapRequestRepositoryImpl)(nil)

// SwapRequestRepositoryImpl is the PostgreSQL implementation of SwapRequestRepository
type SwapRequestRepositoryImpl struct {
	*TransactionManager
}

func NewSwapRequestRepository(pool *pgxpool.Pool) repository.SwapRequestRepository {
	return &SwapRequestRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const swapColumns = `id, item_id, requester_id, credits_required, status, created_at, updated_at`

func scanRequest(row pgx.Row) (*model.SwapRequest, error) {
	req := &model.SwapRequest{}
	err := row.Scan(&req.ID, &req.ItemID, &req.RequesterID, &req.CreditsRequired,
		&req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *SwapRequestRepositoryImpl) collectRequests(ctx context.Context, query string, args ...any) ([]*model.SwapRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query swap requests: %w", err)
	}
	defer rows.Close()

	var requests []*model.SwapRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan swap request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// InsertRequest creates a new swap request. The partial unique index on
// (item_id, requester_id) WHERE status = 'pending' turns a lost
// creation race into ErrDuplicateRequest.
func (r *SwapRequestRepositoryImpl) InsertRequest(ctx context.Context, req *model.SwapRequest) error {
	query := `
        INSERT INTO swap_requests (id, item_id, requester_id, credits_required, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, req.ID, req.ItemID, req.RequesterID, req.CreditsRequired, req.Status).
		Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateRequest
		}
		return fmt.Errorf("failed to insert swap request: %w", err)
	}
	return nil
}

func (r *SwapRequestRepositoryImpl) GetRequest(ctx context.Context, requestID string) (*model.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE id = $1`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get swap request: %w", err)
	}
	return req, nil
}

// FinishRequest moves a pending request into a terminal status. The status
// guard in the WHERE clause is what makes terminal states immutable: a second
// approve/reject/cancel matches zero rows.
func (r *SwapRequestRepositoryImpl) FinishRequest(ctx context.Context, requestID string, status model.SwapStatus) (bool, error) {
	query := `
        UPDATE swap_requests
        SET status = $2, updated_at = NOW()
        WHERE id = $1 AND status = 'pending'`

	tag, err := r.pool.Exec(ctx, query, requestID, status)
	if err != nil {
		return false, fmt.Errorf("failed to finish swap request: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SwapRequestRepositoryImpl) GetPendingForItemAndRequester(ctx context.Context, itemID string, requesterID int64) (*model.SwapRequest, error) {
	query := `
        SELECT ` + swapColumns + ` FROM swap_requests
        WHERE item_id = $1 AND requester_id = $2 AND status = 'pending'`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, itemID, requesterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get pending swap request: %w", err)
	}
	return req, nil
}

func (r *SwapRequestRepositoryImpl) ListPendingForItem(ctx context.Context, itemID string) ([]*model.SwapRequest, error) {
	query := `
        SELECT ` + swapColumns + ` FROM swap_requests
        WHERE item_id = $1 AND status = 'pending'
        ORDER BY created_at`

	return r.collectRequests(ctx, query, itemID)
}

func (r *SwapRequestRepositoryImpl) CountPendingByRequester(ctx context.Context, requesterID int64) (int, error) {
	query := `SELECT COUNT(*) FROM swap_requests WHERE requester_id = $1 AND status = 'pending'`

	var count int
	if err := r.pool.QueryRow(ctx, query, requesterID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending swap requests: %w", err)
	}
	return count, nil
}

func (r *SwapRequestRepositoryImpl) ListByRequester(ctx context.Context, requesterID int64) ([]*model.SwapRequest, error) {
	query := `
        SELECT ` + swapColumns + ` FROM swap_requests
        WHERE requester_id = $1
        ORDER BY created_at DESC`

	return r.collectRequests(ctx, query, requesterID)
}

func (r *SwapRequestRepositoryImpl) ListPendingForOwner(ctx context.Context, ownerID int64) ([]*model.SwapRequest, error) {
	query := `
        SELECT sr.id, sr.item_id, sr.requester_id, sr.credits_required, sr.status, sr.created_at, sr.updated_at
        FROM swap_requests sr
        JOIN items i ON i.id = sr.item_id
        WHERE i.owner_id = $1 AND sr.status = 'pending'
        ORDER BY sr.created_at DESC`

	return r.collectRequests(ctx, query, ownerID)
}

func (r *SwapRequestRepositoryImpl) ListApprovedForUser(ctx context.Context, userID int64) ([]*model.SwapRequest, error) {
	query := `
        SELECT sr.id, sr.item_id, sr.requester_id, sr.credits_required, sr.status, sr.created_at, sr.updated_at
        FROM swap_requests sr
        LEFT JOIN items i ON i.id = sr.item_id
        WHERE sr.status = 'approved' AND (sr.requester_id = $1 OR i.owner_id = $1)
        ORDER BY sr.updated_at DESC`

	return r.collectRequests(ctx, query, userID)
}
