package postgres

import (
	"context"
	"errors"
	"fmt"

	"swap-marketplace/internal/model"
	"swap-marketplace/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

// AccountRepositoryImpl is the PostgreSQL implementation of AccountRepository
type AccountRepositoryImpl struct {
	*TransactionManager
}

func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetAccountForUpdate retrieves an account with a row-level lock
func (r *AccountRepositoryImpl) GetAccountForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Account, error) {
	query := `SELECT id, credits, version, created_at, updated_at FROM users WHERE id = $1 FOR UPDATE`

	acc := &model.Account{}
	executor := r.getExecutor(tx)
	err := executor.QueryRow(ctx, query, userID).Scan(&acc.UserID, &acc.Credits, &acc.Version, &acc.CreatedAt, &acc.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get account for update: %w", err)
	}
	return acc, nil
}

// GetBalance gets the cached balance for a user
func (r *AccountRepositoryImpl) GetBalance(ctx context.Context, userID int64, tx ...pgx.Tx) (decimal.Decimal, error) {
	query := `SELECT credits FROM users WHERE id = $1`
	var balance decimal.Decimal
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// UpdateBalance overwrites the cached balance
func (r *AccountRepositoryImpl) UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET credits = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := r.getExecutor(tx).Exec(ctx, query, balance, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT credits_non_negative CHECK (credits >= 0) is the last
		// line of defense against persisting a negative balance
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return model.ErrInsufficientCredits
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
