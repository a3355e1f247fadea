package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swap-marketplace/internal/model"
	"swap-marketplace/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.ItemRepository = (*ItemRepositoryImpl)(nil)

// ItemRepositoryImpl is the PostgreSQL implementation of ItemRepository.
// Status transitions are single conditional UPDATEs; the WHERE clause on the
// current status is what closes the race between concurrent writers.
type ItemRepositoryImpl struct {
	*TransactionManager
}

func NewItemRepository(pool *pgxpool.Pool) repository.ItemRepository {
	return &ItemRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const itemColumns = `id, owner_id, title, description, credits, status, locked_by, locked_until, created_at, updated_at`

func scanItem(row pgx.Row) (*model.Item, error) {
	item := &model.Item{}
	err := row.Scan(&item.ID, &item.OwnerID, &item.Title, &item.Description, &item.Credits,
		&item.Status, &item.LockedBy, &item.LockedUntil, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemRepositoryImpl) GetItem(ctx context.Context, itemID string, tx ...pgx.Tx) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.getExecutor(tx...).QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func (r *ItemRepositoryImpl) InsertItem(ctx context.Context, item *model.Item) error {
	query := `
        INSERT INTO items (id, owner_id, title, description, credits, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, item.ID, item.OwnerID, item.Title, item.Description, item.Credits, item.Status).
		Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// Reserve atomically claims an available item for a swap request. Exactly one
// concurrent caller can win; everyone else sees ErrItemNotAvailable.
func (r *ItemRepositoryImpl) Reserve(ctx context.Context, itemID string) (*model.Item, error) {
	query := `
        UPDATE items
        SET status = 'pending', updated_at = NOW()
        WHERE id = $1 AND status = 'available'
        RETURNING ` + itemColumns

	item, err := scanItem(r.pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotAvailable
		}
		return nil, fmt.Errorf("failed to reserve item: %w", err)
	}
	return item, nil
}

// Release reverts a reservation
func (r *ItemRepositoryImpl) Release(ctx context.Context, itemID string) (bool, error) {
	query := `
        UPDATE items
        SET status = 'available', updated_at = NOW()
        WHERE id = $1 AND status = 'pending'`

	tag, err := r.pool.Exec(ctx, query, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to release item: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkSwapped finalizes a reserved item after an approved swap
func (r *ItemRepositoryImpl) MarkSwapped(ctx context.Context, itemID string) (bool, error) {
	query := `
        UPDATE items
        SET status = 'swapped', updated_at = NOW()
        WHERE id = $1 AND status = 'pending'`

	tag, err := r.pool.Exec(ctx, query, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to mark item swapped: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Lock claims an available item directly, outside the swap-request flow.
// The expiry stamp is advisory metadata; nothing in the core sweeps it.
func (r *ItemRepositoryImpl) Lock(ctx context.Context, itemID string, lockedBy int64, lockedUntil time.Time) (bool, error) {
	query := `
        UPDATE items
        SET status = 'locked', locked_by = $2, locked_until = $3, updated_at = NOW()
        WHERE id = $1 AND status = 'available'`

	tag, err := r.pool.Exec(ctx, query, itemID, lockedBy, lockedUntil)
	if err != nil {
		return false, fmt.Errorf("failed to lock item: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ItemRepositoryImpl) Unlock(ctx context.Context, itemID string) (bool, error) {
	query := `
        UPDATE items
        SET status = 'available', locked_by = NULL, locked_until = NULL, updated_at = NOW()
        WHERE id = $1 AND status = 'locked'`

	tag, err := r.pool.Exec(ctx, query, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to unlock item: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ItemRepositoryImpl) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}
