package worker

import (
	"context"
	"testing"
	"time"

	"swap-marketplace/mocks/repository"
	svcmocks "swap-marketplace/mocks/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunOnce_ReportsDriftWithoutRepair(t *testing.T) {
	ctx := context.Background()

	mockCredits := svcmocks.NewCreditService(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	mockLedgerRepo.On("ListActiveUserIDs", ctx, 50).Return([]int64{1, 2}, nil)
	// User 1 is consistent, user 2 drifted
	mockCredits.On("GetBalance", ctx, int64(1)).Return(decimal.NewFromInt(10), nil)
	mockCredits.On("ComputeBalance", ctx, int64(1)).Return(decimal.NewFromInt(10), nil)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.NewFromInt(20), nil)
	mockCredits.On("ComputeBalance", ctx, int64(2)).Return(decimal.NewFromInt(15), nil)

	w := NewReconcileWorker(mockCredits, mockLedgerRepo, time.Minute, 50, false, zerolog.Nop())

	require.NoError(t, w.runOnce(ctx))
	mockCredits.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything)
}

func TestRunOnce_RepairsDriftWhenEnabled(t *testing.T) {
	ctx := context.Background()

	mockCredits := svcmocks.NewCreditService(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	mockLedgerRepo.On("ListActiveUserIDs", ctx, 50).Return([]int64{2}, nil)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.NewFromInt(20), nil)
	mockCredits.On("ComputeBalance", ctx, int64(2)).Return(decimal.NewFromInt(15), nil)
	mockCredits.On("Reconcile", ctx, int64(2)).Return(decimal.NewFromInt(15), nil)

	w := NewReconcileWorker(mockCredits, mockLedgerRepo, time.Minute, 50, true, zerolog.Nop())

	require.NoError(t, w.runOnce(ctx))
}

func TestRunOnce_SkipsUserOnReadFailure(t *testing.T) {
	ctx := context.Background()

	mockCredits := svcmocks.NewCreditService(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	mockLedgerRepo.On("ListActiveUserIDs", ctx, 50).Return([]int64{1, 2}, nil)
	mockCredits.On("GetBalance", ctx, int64(1)).Return(decimal.Zero, context.DeadlineExceeded)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.NewFromInt(5), nil)
	mockCredits.On("ComputeBalance", ctx, int64(2)).Return(decimal.NewFromInt(5), nil)

	w := NewReconcileWorker(mockCredits, mockLedgerRepo, time.Minute, 50, true, zerolog.Nop())

	require.NoError(t, w.runOnce(ctx))
}

func TestStartStop(t *testing.T) {
	mockCredits := svcmocks.NewCreditService(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)

	w := NewReconcileWorker(mockCredits, mockLedgerRepo, time.Hour, 50, false, zerolog.Nop())
	w.Start(context.Background())
	w.Stop()
}
