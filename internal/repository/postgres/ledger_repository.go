package postgres

import (
	"context"
	"fmt"

	"swap-marketplace/internal/model"
	"swap-marketplace/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository.
// The transactions table is append-only: no update or delete statements
// exist here on purpose.
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertTransaction appends one immutable ledger entry
func (r *LedgerRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (user_id, amount, type, description)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	err := r.getExecutor(tx).QueryRow(ctx, query, trans.UserID, trans.Amount, trans.Type, trans.Description).
		Scan(&trans.ID, &trans.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// ListByUser retrieves ledger entries for a user, newest first
func (r *LedgerRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT id, user_id, amount, type, description, created_at
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans := &model.Transaction{}
		if err := rows.Scan(&trans.ID, &trans.UserID, &trans.Amount, &trans.Type, &trans.Description, &trans.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}

// SumByUser computes the directional sum of all entries for a user. This is
// the slow audit path; it must agree with users.credits. The CASE branch
// mirrors TransactionType.IsCredit.
func (r *LedgerRepositoryImpl) SumByUser(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(
            CASE WHEN type IN ('credit_add', 'swap_credit', 'item_upload')
                 THEN amount ELSE -amount END
        ), 0)
        FROM transactions WHERE user_id = $1`

	var sum decimal.Decimal
	executor := r.getExecutor(tx...)
	if err := executor.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return sum, nil
}

// ListActiveUserIDs returns users with the most recent ledger activity
func (r *LedgerRepositoryImpl) ListActiveUserIDs(ctx context.Context, limit int) ([]int64, error) {
	query := `
        SELECT user_id FROM transactions
        GROUP BY user_id
        ORDER BY MAX(created_at) DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query active users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
