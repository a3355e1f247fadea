package service

import (
	"context"
	"errors"
	"fmt"

	"swap-marketplace/internal/model"
	"swap-marketplace/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SwapServiceImpl coordinates item reservation, credit holds and the swap
// request lifecycle. Credits move only through the credit service; item and
// request status transitions are conditional updates at the storage layer, so
// concurrent callers race there and exactly one wins.
type SwapServiceImpl struct {
	itemRepo repository.ItemRepository
	swapRepo repository.SwapRequestRepository
	credits  CreditService
	notifier Notifier
	logger   zerolog.Logger
}

func NewSwapService(
	itemRepo repository.ItemRepository,
	swapRepo repository.SwapRequestRepository,
	credits CreditService,
	notifier Notifier,
	logger zerolog.Logger,
) SwapService {
	return &SwapServiceImpl{
		itemRepo: itemRepo,
		swapRepo: swapRepo,
		credits:  credits,
		notifier: notifier,
		logger:   logger,
	}
}

// RequestSwap validates the request, atomically reserves the item, holds the
// requester's credits and records the swap request. Any failure after the
// hold triggers the compensating refund and reservation release.
func (s *SwapServiceImpl) RequestSwap(ctx context.Context, itemID string, requesterID int64) (*model.SwapRequest, error) {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID == requesterID {
		return nil, fmt.Errorf("%w: cannot request a swap for your own item", model.ErrForbidden)
	}

	if item.Status != model.ItemAvailable {
		return nil, model.ErrItemNotAvailable
	}

	// One live request per (item, requester)
	_, err = s.swapRepo.GetPendingForItemAndRequester(ctx, itemID, requesterID)
	if err == nil {
		return nil, model.ErrDuplicateRequest
	}
	if !errors.Is(err, model.ErrRequestNotFound) {
		return nil, fmt.Errorf("check existing request: %w", err)
	}

	creditsRequired := creditsRequiredFor(item)

	balance, err := s.credits.GetBalance(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(creditsRequired) {
		return nil, model.ErrInsufficientCredits
	}

	// Credits cap the number of simultaneous holds a user may have
	pendingCount, err := s.swapRepo.CountPendingByRequester(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("count pending requests: %w", err)
	}
	if int64(pendingCount) >= balance.Floor().IntPart() {
		return nil, model.ErrPendingLimitExceeded
	}

	// The reservation is the per-item serialization point: only one of two
	// concurrent requests can move the item out of 'available'.
	item, err = s.itemRepo.Reserve(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// Hold the credits for the lifetime of the pending request
	_, err = s.credits.DeductCredits(ctx, requesterID, creditsRequired, model.TypeSwapDebit,
		fmt.Sprintf("Credits held for swap request of item: %s", item.Title))
	if err != nil {
		if released, relErr := s.itemRepo.Release(ctx, itemID); relErr != nil || !released {
			s.logger.Error().Err(relErr).Str("item_id", itemID).
				Msg("failed to release reservation after hold failure")
			return nil, fmt.Errorf("%w: reservation not released after failed hold: %v", model.ErrCompensationFailed, err)
		}
		return nil, err
	}

	req := &model.SwapRequest{
		ID:              uuid.NewString(),
		ItemID:          itemID,
		RequesterID:     requesterID,
		CreditsRequired: creditsRequired,
		Status:          model.SwapPending,
	}
	if err := s.swapRepo.InsertRequest(ctx, req); err != nil {
		// Held credits and a reserved item with no request backing them is a
		// fund-loss bug: refund and release, loudly, before surfacing the
		// original error.
		if compErr := s.compensateFailedCreate(ctx, itemID, requesterID, creditsRequired, item.Title); compErr != nil {
			return nil, compErr
		}
		return nil, err
	}

	s.logger.Info().Str("request_id", req.ID).Str("item_id", itemID).
		Int64("requester_id", requesterID).
		Str("credits_required", creditsRequired.StringFixed(2)).
		Msg("swap request created")

	s.notify(ctx, model.Notification{
		UserID:        item.OwnerID,
		Event:         model.EventNewRequest,
		RequestID:     req.ID,
		ItemID:        itemID,
		ItemTitle:     item.Title,
		OtherUserID:   requesterID,
		RequestStatus: model.SwapPending,
	})

	return req, nil
}

// compensateFailedCreate undoes the credit hold and the reservation after a
// failed request insert.
func (s *SwapServiceImpl) compensateFailedCreate(ctx context.Context, itemID string, requesterID int64, amount decimal.Decimal, title string) error {
	if _, err := s.credits.RefundCredits(ctx, requesterID, amount,
		fmt.Sprintf("Credits refunded after failed swap request creation for item: %s", title)); err != nil {
		s.logger.Error().Err(err).Str("item_id", itemID).Int64("requester_id", requesterID).
			Str("amount", amount.StringFixed(2)).
			Msg("refund after failed swap request creation could not be processed")
		return fmt.Errorf("%w: held credits not refunded: %v", model.ErrCompensationFailed, err)
	}

	if released, err := s.itemRepo.Release(ctx, itemID); err != nil || !released {
		s.logger.Error().Err(err).Str("item_id", itemID).
			Msg("failed to release reservation after failed swap request creation")
		return fmt.Errorf("%w: reservation not released", model.ErrCompensationFailed)
	}
	return nil
}

// ApproveSwap transfers the held credits to the owner and finalizes the item.
// The pending -> approved transition claims the request; a concurrent
// approve, reject or cancel loses that race and fails with ErrInvalidState.
func (s *SwapServiceImpl) ApproveSwap(ctx context.Context, itemID, requestID string, callerID int64) error {
	item, req, err := s.loadForDecision(ctx, itemID, requestID, callerID)
	if err != nil {
		return err
	}

	claimed, err := s.swapRepo.FinishRequest(ctx, requestID, model.SwapApproved)
	if err != nil {
		return fmt.Errorf("finish request: %w", err)
	}
	if !claimed {
		return fmt.Errorf("%w: swap request is no longer pending", model.ErrInvalidState)
	}

	// The requester's debit happened at request time; approval only credits
	// the seller.
	if _, err := s.credits.AddCredits(ctx, item.OwnerID, req.CreditsRequired, model.TypeSwapCredit,
		fmt.Sprintf("Credits received from approved swap of item: %s", item.Title)); err != nil {
		s.logger.Error().Err(err).Str("request_id", requestID).Int64("owner_id", item.OwnerID).
			Str("amount", req.CreditsRequired.StringFixed(2)).
			Msg("owner payout failed after approval was recorded")
		return fmt.Errorf("%w: owner payout not applied: %v", model.ErrCompensationFailed, err)
	}

	// Everyone else who was queued on this item gets their hold back
	if err := s.cancelOtherPending(ctx, item, requestID); err != nil {
		return err
	}

	if updated, err := s.itemRepo.MarkSwapped(ctx, itemID); err != nil {
		return fmt.Errorf("mark item swapped: %w", err)
	} else if !updated {
		s.logger.Warn().Str("item_id", itemID).Msg("item was not pending when marked swapped")
	}

	s.logger.Info().Str("request_id", requestID).Str("item_id", itemID).
		Int64("requester_id", req.RequesterID).
		Str("credits", req.CreditsRequired.StringFixed(2)).
		Msg("swap request approved")

	s.notify(ctx, model.Notification{
		UserID:        req.RequesterID,
		Event:         model.EventApproved,
		RequestID:     requestID,
		ItemID:        itemID,
		ItemTitle:     item.Title,
		OtherUserID:   item.OwnerID,
		RequestStatus: model.SwapApproved,
	})
	return nil
}

// RejectSwap refunds the requester's hold and reverts the item when no other
// pending requests remain.
func (s *SwapServiceImpl) RejectSwap(ctx context.Context, itemID, requestID string, callerID int64) error {
	item, req, err := s.loadForDecision(ctx, itemID, requestID, callerID)
	if err != nil {
		return err
	}

	claimed, err := s.swapRepo.FinishRequest(ctx, requestID, model.SwapRejected)
	if err != nil {
		return fmt.Errorf("finish request: %w", err)
	}
	if !claimed {
		return fmt.Errorf("%w: swap request is no longer pending", model.ErrInvalidState)
	}

	if _, err := s.credits.RefundCredits(ctx, req.RequesterID, req.CreditsRequired,
		fmt.Sprintf("Credits refunded for rejected swap request of item: %s", item.Title)); err != nil {
		s.logger.Error().Err(err).Str("request_id", requestID).Int64("requester_id", req.RequesterID).
			Str("amount", req.CreditsRequired.StringFixed(2)).
			Msg("refund failed after rejection was recorded")
		return fmt.Errorf("%w: held credits not refunded: %v", model.ErrCompensationFailed, err)
	}

	if err := s.releaseIfNoPending(ctx, itemID); err != nil {
		return err
	}

	s.logger.Info().Str("request_id", requestID).Str("item_id", itemID).
		Int64("requester_id", req.RequesterID).
		Msg("swap request rejected")

	s.notify(ctx, model.Notification{
		UserID:        req.RequesterID,
		Event:         model.EventRejected,
		RequestID:     requestID,
		ItemID:        itemID,
		ItemTitle:     item.Title,
		OtherUserID:   item.OwnerID,
		RequestStatus: model.SwapRejected,
	})
	return nil
}

// CancelSwap lets a requester withdraw their own pending request.
func (s *SwapServiceImpl) CancelSwap(ctx context.Context, itemID string, callerID int64) (*model.SwapRequest, error) {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	req, err := s.swapRepo.GetPendingForItemAndRequester(ctx, itemID, callerID)
	if err != nil {
		return nil, err
	}

	claimed, err := s.swapRepo.FinishRequest(ctx, req.ID, model.SwapCancelled)
	if err != nil {
		return nil, fmt.Errorf("finish request: %w", err)
	}
	if !claimed {
		return nil, fmt.Errorf("%w: swap request is no longer pending", model.ErrInvalidState)
	}

	if _, err := s.credits.RefundCredits(ctx, callerID, req.CreditsRequired,
		fmt.Sprintf("Credits refunded for cancelled swap request of item: %s", item.Title)); err != nil {
		s.logger.Error().Err(err).Str("request_id", req.ID).Int64("requester_id", callerID).
			Str("amount", req.CreditsRequired.StringFixed(2)).
			Msg("refund failed after cancellation was recorded")
		return nil, fmt.Errorf("%w: held credits not refunded: %v", model.ErrCompensationFailed, err)
	}

	if err := s.releaseIfNoPending(ctx, itemID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", req.ID).Str("item_id", itemID).
		Int64("requester_id", callerID).
		Msg("swap request cancelled")

	s.notify(ctx, model.Notification{
		UserID:        item.OwnerID,
		Event:         model.EventRequestCancelled,
		RequestID:     req.ID,
		ItemID:        itemID,
		ItemTitle:     item.Title,
		OtherUserID:   callerID,
		RequestStatus: model.SwapCancelled,
	})

	req.Status = model.SwapCancelled
	return req, nil
}

func (s *SwapServiceImpl) ListRequests(ctx context.Context, userID int64) (*model.SwapRequestsResponse, error) {
	asOwner, err := s.swapRepo.ListPendingForOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests as owner: %w", err)
	}

	asRequester, err := s.swapRepo.ListByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests as requester: %w", err)
	}

	return &model.SwapRequestsResponse{AsOwner: asOwner, AsRequester: asRequester}, nil
}

func (s *SwapServiceImpl) SwapHistory(ctx context.Context, userID int64) ([]*model.SwapRequest, error) {
	swaps, err := s.swapRepo.ListApprovedForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list approved swaps: %w", err)
	}
	return swaps, nil
}

// loadForDecision runs the shared ownership and state checks for the owner's
// approve/reject actions.
func (s *SwapServiceImpl) loadForDecision(ctx context.Context, itemID, requestID string, callerID int64) (*model.Item, *model.SwapRequest, error) {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	if item.OwnerID != callerID {
		return nil, nil, fmt.Errorf("%w: only the item owner can decide swap requests", model.ErrForbidden)
	}

	req, err := s.swapRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	if req.ItemID != itemID {
		return nil, nil, fmt.Errorf("%w: swap request does not match item", model.ErrInvalidState)
	}
	if req.Status.Terminal() {
		return nil, nil, fmt.Errorf("%w: swap request is %s", model.ErrInvalidState, req.Status)
	}

	return item, req, nil
}

// cancelOtherPending drains the remaining pending requests for an item after
// one was approved, refunding each hold through the shared refund path.
func (s *SwapServiceImpl) cancelOtherPending(ctx context.Context, item *model.Item, approvedID string) error {
	pending, err := s.swapRepo.ListPendingForItem(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("list pending requests: %w", err)
	}

	var compErr error
	for _, other := range pending {
		if other.ID == approvedID {
			continue
		}

		claimed, err := s.swapRepo.FinishRequest(ctx, other.ID, model.SwapCancelled)
		if err != nil {
			return fmt.Errorf("cancel competing request: %w", err)
		}
		if !claimed {
			continue
		}

		if _, err := s.credits.RefundCredits(ctx, other.RequesterID, other.CreditsRequired,
			fmt.Sprintf("Credits refunded for cancelled swap request of item: %s", item.Title)); err != nil {
			s.logger.Error().Err(err).Str("request_id", other.ID).
				Int64("requester_id", other.RequesterID).
				Str("amount", other.CreditsRequired.StringFixed(2)).
				Msg("refund failed while cancelling competing request")
			compErr = fmt.Errorf("%w: competing request %s not refunded: %v", model.ErrCompensationFailed, other.ID, err)
			continue
		}

		s.notify(ctx, model.Notification{
			UserID:        other.RequesterID,
			Event:         model.EventRequestCancelled,
			RequestID:     other.ID,
			ItemID:        item.ID,
			ItemTitle:     item.Title,
			OtherUserID:   item.OwnerID,
			RequestStatus: model.SwapCancelled,
		})
	}
	return compErr
}

// releaseIfNoPending reverts the item to available once its last pending
// request reached a terminal state.
func (s *SwapServiceImpl) releaseIfNoPending(ctx context.Context, itemID string) error {
	pending, err := s.swapRepo.ListPendingForItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("list pending requests: %w", err)
	}
	if len(pending) > 0 {
		return nil
	}

	if _, err := s.itemRepo.Release(ctx, itemID); err != nil {
		return fmt.Errorf("release item: %w", err)
	}
	return nil
}

// notify is fire-and-forget: a notification failure never fails the swap.
func (s *SwapServiceImpl) notify(ctx context.Context, n model.Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn().Err(err).Str("event", n.Event.String()).
			Str("request_id", n.RequestID).
			Msg("notification delivery failed")
	}
}
