package worker

import (
	"context"
	"sync"
	"time"

	"swap-marketplace/internal/repository"
	"swap-marketplace/internal/service"

	"github.com/rs/zerolog"
)

// ReconcileWorker periodically audits invariant "ledger sum == cached
// balance" over recently active accounts. In repair mode it overwrites
// drifted balances from the ledger; otherwise it only reports them.
type ReconcileWorker struct {
	credits    service.CreditService
	ledgerRepo repository.LedgerRepository
	interval   time.Duration
	batch      int
	repair     bool
	logger     zerolog.Logger
	stopChan   chan struct{}
	wg         *sync.WaitGroup
}

func NewReconcileWorker(
	credits service.CreditService,
	ledgerRepo repository.LedgerRepository,
	interval time.Duration,
	batch int,
	repair bool,
	logger zerolog.Logger,
) *ReconcileWorker {
	return &ReconcileWorker{
		credits:    credits,
		ledgerRepo: ledgerRepo,
		interval:   interval,
		batch:      batch,
		repair:     repair,
		logger:     logger,
		stopChan:   make(chan struct{}),
		wg:         &sync.WaitGroup{},
	}
}

func (w *ReconcileWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Bool("repair", w.repair).
			Msg("Reconciliation worker started")

		for {
			select {
			case <-ticker.C:
				if err := w.runOnce(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to run reconciliation sweep")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Reconciliation worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Reconciliation worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *ReconcileWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

func (w *ReconcileWorker) runOnce(ctx context.Context) error {
	userIDs, err := w.ledgerRepo.ListActiveUserIDs(ctx, w.batch)
	if err != nil {
		return err
	}

	var drifted int
	for _, userID := range userIDs {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cached, err := w.credits.GetBalance(ctx, userID)
		if err != nil {
			w.logger.Error().Err(err).Int64("user_id", userID).Msg("audit: balance read failed")
			continue
		}
		computed, err := w.credits.ComputeBalance(ctx, userID)
		if err != nil {
			w.logger.Error().Err(err).Int64("user_id", userID).Msg("audit: ledger sum failed")
			continue
		}
		if cached.Equal(computed) {
			continue
		}

		drifted++
		w.logger.Warn().Int64("user_id", userID).
			Str("cached_balance", cached.StringFixed(2)).
			Str("ledger_balance", computed.StringFixed(2)).
			Msg("audit: balance drift detected")

		if w.repair {
			if _, err := w.credits.Reconcile(ctx, userID); err != nil {
				w.logger.Error().Err(err).Int64("user_id", userID).Msg("audit: repair failed")
			}
		}
	}

	w.logger.Debug().Int("audited", len(userIDs)).Int("drifted", drifted).
		Msg("reconciliation sweep completed")
	return nil
}
