package service

import (
	"context"
	"fmt"

	"swap-marketplace/internal/model"
	"swap-marketplace/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CreditServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	dbManager   repository.DBManager
	logger      zerolog.Logger
}

func NewCreditService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) CreditService {
	return &CreditServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		dbManager:   dbManager,
		logger:      logger,
	}
}

// AddCredits credits a user. The ledger entry is written before the balance
// inside one logical transaction; under a sequential DBManager that ordering
// is what keeps a crash auditable.
func (s *CreditServiceImpl) AddCredits(ctx context.Context, userID int64, amount decimal.Decimal, transType model.TransactionType, description string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	// A ledger entry whose type disagrees with the applied direction would
	// poison every reconciliation of this account
	if !transType.IsCredit() {
		return decimal.Zero, fmt.Errorf("%w: %s does not credit the balance", model.ErrInvalidTransactionType, transType)
	}

	var newBalance decimal.Decimal
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		acc, err := s.accountRepo.GetAccountForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}

		trans := &model.Transaction{
			UserID:      userID,
			Amount:      amount,
			Type:        transType,
			Description: description,
		}
		if err := s.ledgerRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		newBalance = acc.Credits.Add(amount)
		if err := s.accountRepo.UpdateBalance(ctx, userID, newBalance, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		s.logger.Info().Int64("user_id", userID).
			Str("type", transType.String()).
			Str("amount", amount.StringFixed(2)).
			Str("new_balance", newBalance.StringFixed(2)).
			Msg("credits added")
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// DeductCredits debits a user. The sufficiency check runs against the
// row-locked fresh read, never a stale cache.
func (s *CreditServiceImpl) DeductCredits(ctx context.Context, userID int64, amount decimal.Decimal, transType model.TransactionType, description string) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if transType.IsCredit() {
		return decimal.Zero, fmt.Errorf("%w: %s does not debit the balance", model.ErrInvalidTransactionType, transType)
	}

	var newBalance decimal.Decimal
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		acc, err := s.accountRepo.GetAccountForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}

		if acc.Credits.LessThan(amount) {
			return model.ErrInsufficientCredits
		}

		trans := &model.Transaction{
			UserID:      userID,
			Amount:      amount,
			Type:        transType,
			Description: description,
		}
		if err := s.ledgerRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		newBalance = acc.Credits.Sub(amount)
		if err := s.accountRepo.UpdateBalance(ctx, userID, newBalance, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		s.logger.Info().Int64("user_id", userID).
			Str("type", transType.String()).
			Str("amount", amount.StringFixed(2)).
			Str("new_balance", newBalance.StringFixed(2)).
			Msg("credits deducted")
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// RefundCredits returns held credits to a user
func (s *CreditServiceImpl) RefundCredits(ctx context.Context, userID int64, amount decimal.Decimal, description string) (decimal.Decimal, error) {
	return s.AddCredits(ctx, userID, amount, model.TypeCreditAdd, description)
}

func (s *CreditServiceImpl) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	balance, err := s.accountRepo.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// ComputeBalance sums the ledger instead of reading the cached field. Used
// by integrity audits; must agree with GetBalance.
func (s *CreditServiceImpl) ComputeBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	// Existence check first so an absent user is not reported as zero
	if _, err := s.accountRepo.GetBalance(ctx, userID); err != nil {
		return decimal.Zero, err
	}

	sum, err := s.ledgerRepo.SumByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum transactions: %w", err)
	}
	return sum, nil
}

func (s *CreditServiceImpl) ListTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	transactions, err := s.ledgerRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

// Reconcile recomputes the balance from the ledger and overwrites the cached
// field under a row lock. Drift is logged; the ledger wins.
func (s *CreditServiceImpl) Reconcile(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		acc, err := s.accountRepo.GetAccountForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}

		sum, err := s.ledgerRepo.SumByUser(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("sum transactions: %w", err)
		}

		if !acc.Credits.Equal(sum) {
			s.logger.Warn().Int64("user_id", userID).
				Str("cached_balance", acc.Credits.StringFixed(2)).
				Str("ledger_balance", sum.StringFixed(2)).
				Msg("balance drift detected, repairing from ledger")
		}

		if err := s.accountRepo.UpdateBalance(ctx, userID, sum, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		balance = sum
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}
