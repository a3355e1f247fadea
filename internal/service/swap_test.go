package service

import (
	"context"
	"errors"
	"testing"

	"swap-marketplace/internal/model"
	"swap-marketplace/mocks/repository"
	svcmocks "swap-marketplace/mocks/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testItemID    = "9f0c2f4e-7a30-4f0b-b7a9-0f6d6a1c1a01"
	testRequestID = "3b6b1d62-45a8-4a5f-9c77-2d1f3e4a5b02"
)

func availableItem(ownerID int64, price int64) *model.Item {
	return &model.Item{
		ID:      testItemID,
		OwnerID: ownerID,
		Title:   "Vintage camera",
		Credits: decimal.NullDecimal{Decimal: decimal.NewFromInt(price), Valid: true},
		Status:  model.ItemAvailable,
	}
}

func pendingRequest(requesterID int64, price int64) *model.SwapRequest {
	return &model.SwapRequest{
		ID:              testRequestID,
		ItemID:          testItemID,
		RequesterID:     requesterID,
		CreditsRequired: decimal.NewFromInt(price),
		Status:          model.SwapPending,
	}
}

func TestRequestSwap_HappyPath(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(nil, model.ErrRequestNotFound)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.NewFromInt(10), nil)
	mockSwapRepo.On("CountPendingByRequester", ctx, int64(2)).Return(1, nil)

	reserved := availableItem(1, 3)
	reserved.Status = model.ItemPending
	mockItemRepo.On("Reserve", ctx, testItemID).Return(reserved, nil)
	mockCredits.On("DeductCredits", ctx, int64(2), decimal.NewFromInt(3), model.TypeSwapDebit, mock.Anything).Return(decimal.NewFromInt(7), nil)
	mockSwapRepo.On("InsertRequest", ctx, mock.MatchedBy(func(req *model.SwapRequest) bool {
		return req.ItemID == testItemID &&
			req.RequesterID == 2 &&
			req.CreditsRequired.Equal(decimal.NewFromInt(3)) &&
			req.Status == model.SwapPending
	})).Return(nil)
	mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n model.Notification) bool {
		return n.UserID == 1 && n.Event == model.EventNewRequest && n.OtherUserID == 2
	})).Return(nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	req, err := service.RequestSwap(ctx, testItemID, 2)

	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, model.SwapPending, req.Status)
	assert.Equal(t, "3.00", req.CreditsRequired.StringFixed(2))
}

func TestRequestSwap_OwnItem(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(availableItem(2, 3), nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestRequestSwap_ItemNotAvailable(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	item.Status = model.ItemSwapped
	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrItemNotAvailable)
}

func TestRequestSwap_DuplicateRequest(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(availableItem(1, 3), nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(pendingRequest(2, 3), nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicateRequest)
}

func TestRequestSwap_InsufficientCredits(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(availableItem(1, 5), nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(nil, model.ErrRequestNotFound)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.NewFromInt(2), nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInsufficientCredits)
	mockItemRepo.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestRequestSwap_PendingLimitExceeded(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(availableItem(1, 1), nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(nil, model.ErrRequestNotFound)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.RequireFromString("3.50"), nil)
	mockSwapRepo.On("CountPendingByRequester", ctx, int64(2)).Return(3, nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPendingLimitExceeded)
	mockItemRepo.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestRequestSwap_PendingCapUsesBalanceAfterEarlierHolds(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	// One price-1 hold already debited the requester from 2.50 down to 1.50,
	// so the cap floors to 1 and the existing hold fills it
	mockItemRepo.On("GetItem", ctx, testItemID).Return(availableItem(1, 1), nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(nil, model.ErrRequestNotFound)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.RequireFromString("1.50"), nil)
	mockSwapRepo.On("CountPendingByRequester", ctx, int64(2)).Return(1, nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPendingLimitExceeded)
	mockItemRepo.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestRequestSwap_LostReservationRace(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(availableItem(1, 3), nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(nil, model.ErrRequestNotFound)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.NewFromInt(10), nil)
	mockSwapRepo.On("CountPendingByRequester", ctx, int64(2)).Return(0, nil)
	// Another requester reserved the item between the status read and here
	mockItemRepo.On("Reserve", ctx, testItemID).Return(nil, model.ErrItemNotAvailable)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrItemNotAvailable)
	mockCredits.AssertNotCalled(t, "DeductCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestSwap_InsertFails_CompensationSucceeds(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(nil, model.ErrRequestNotFound)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.NewFromInt(10), nil)
	mockSwapRepo.On("CountPendingByRequester", ctx, int64(2)).Return(0, nil)
	mockItemRepo.On("Reserve", ctx, testItemID).Return(item, nil)
	mockCredits.On("DeductCredits", ctx, int64(2), decimal.NewFromInt(3), model.TypeSwapDebit, mock.Anything).Return(decimal.NewFromInt(7), nil)

	insertErr := errors.New("insert failed")
	mockSwapRepo.On("InsertRequest", ctx, mock.Anything).Return(insertErr)
	mockCredits.On("RefundCredits", ctx, int64(2), decimal.NewFromInt(3), mock.Anything).Return(decimal.NewFromInt(10), nil)
	mockItemRepo.On("Release", ctx, testItemID).Return(true, nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, insertErr)
	assert.NotErrorIs(t, err, model.ErrCompensationFailed)
}

func TestRequestSwap_InsertFails_RefundFails(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(nil, model.ErrRequestNotFound)
	mockCredits.On("GetBalance", ctx, int64(2)).Return(decimal.NewFromInt(10), nil)
	mockSwapRepo.On("CountPendingByRequester", ctx, int64(2)).Return(0, nil)
	mockItemRepo.On("Reserve", ctx, testItemID).Return(item, nil)
	mockCredits.On("DeductCredits", ctx, int64(2), decimal.NewFromInt(3), model.TypeSwapDebit, mock.Anything).Return(decimal.NewFromInt(7), nil)

	mockSwapRepo.On("InsertRequest", ctx, mock.Anything).Return(errors.New("insert failed"))
	mockCredits.On("RefundCredits", ctx, int64(2), decimal.NewFromInt(3), mock.Anything).Return(decimal.Zero, errors.New("refund failed"))

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.RequestSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCompensationFailed)
}

func TestApproveSwap_HappyPath(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	item.Status = model.ItemPending
	req := pendingRequest(2, 3)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetRequest", ctx, testRequestID).Return(req, nil)
	mockSwapRepo.On("FinishRequest", ctx, testRequestID, model.SwapApproved).Return(true, nil)
	mockCredits.On("AddCredits", ctx, int64(1), decimal.NewFromInt(3), model.TypeSwapCredit, mock.Anything).Return(decimal.NewFromInt(3), nil)
	mockSwapRepo.On("ListPendingForItem", ctx, testItemID).Return([]*model.SwapRequest{req}, nil)
	mockItemRepo.On("MarkSwapped", ctx, testItemID).Return(true, nil)
	mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n model.Notification) bool {
		return n.UserID == 2 && n.Event == model.EventApproved && n.RequestStatus == model.SwapApproved
	})).Return(nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	err := service.ApproveSwap(ctx, testItemID, testRequestID, 1)

	require.NoError(t, err)
}

func TestApproveSwap_CancelsCompetingRequests(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	item.Status = model.ItemPending
	winner := pendingRequest(2, 3)
	loser := &model.SwapRequest{
		ID:              "c1d2e3f4-0a1b-4c2d-8e3f-556677889903",
		ItemID:          testItemID,
		RequesterID:     3,
		CreditsRequired: decimal.NewFromInt(3),
		Status:          model.SwapPending,
	}

	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetRequest", ctx, testRequestID).Return(winner, nil)
	mockSwapRepo.On("FinishRequest", ctx, testRequestID, model.SwapApproved).Return(true, nil)
	mockCredits.On("AddCredits", ctx, int64(1), decimal.NewFromInt(3), model.TypeSwapCredit, mock.Anything).Return(decimal.NewFromInt(3), nil)
	mockSwapRepo.On("ListPendingForItem", ctx, testItemID).Return([]*model.SwapRequest{winner, loser}, nil)
	mockSwapRepo.On("FinishRequest", ctx, loser.ID, model.SwapCancelled).Return(true, nil)
	mockCredits.On("RefundCredits", ctx, int64(3), decimal.NewFromInt(3), mock.Anything).Return(decimal.NewFromInt(3), nil)
	mockItemRepo.On("MarkSwapped", ctx, testItemID).Return(true, nil)
	mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n model.Notification) bool {
		return n.UserID == 3 && n.Event == model.EventRequestCancelled
	})).Return(nil)
	mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n model.Notification) bool {
		return n.UserID == 2 && n.Event == model.EventApproved
	})).Return(nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	err := service.ApproveSwap(ctx, testItemID, testRequestID, 1)

	require.NoError(t, err)
}

func TestApproveSwap_NotOwner(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(availableItem(1, 3), nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	err := service.ApproveSwap(ctx, testItemID, testRequestID, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestApproveSwap_AlreadyTerminal(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	req := pendingRequest(2, 3)
	req.Status = model.SwapRejected

	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetRequest", ctx, testRequestID).Return(req, nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	err := service.ApproveSwap(ctx, testItemID, testRequestID, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidState)
	mockCredits.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveSwap_LostClaimRace(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	req := pendingRequest(2, 3)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetRequest", ctx, testRequestID).Return(req, nil)
	// A concurrent cancel reached the request first
	mockSwapRepo.On("FinishRequest", ctx, testRequestID, model.SwapApproved).Return(false, nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	err := service.ApproveSwap(ctx, testItemID, testRequestID, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidState)
	mockCredits.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveSwap_PayoutFails(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	req := pendingRequest(2, 3)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetRequest", ctx, testRequestID).Return(req, nil)
	mockSwapRepo.On("FinishRequest", ctx, testRequestID, model.SwapApproved).Return(true, nil)
	mockCredits.On("AddCredits", ctx, int64(1), decimal.NewFromInt(3), model.TypeSwapCredit, mock.Anything).Return(decimal.Zero, errors.New("payout failed"))

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	err := service.ApproveSwap(ctx, testItemID, testRequestID, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCompensationFailed)
}

func TestRejectSwap_HappyPath(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	item.Status = model.ItemPending
	req := pendingRequest(2, 3)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetRequest", ctx, testRequestID).Return(req, nil)
	mockSwapRepo.On("FinishRequest", ctx, testRequestID, model.SwapRejected).Return(true, nil)
	mockCredits.On("RefundCredits", ctx, int64(2), decimal.NewFromInt(3), mock.Anything).Return(decimal.NewFromInt(10), nil)
	mockSwapRepo.On("ListPendingForItem", ctx, testItemID).Return([]*model.SwapRequest{}, nil)
	mockItemRepo.On("Release", ctx, testItemID).Return(true, nil)
	mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n model.Notification) bool {
		return n.UserID == 2 && n.Event == model.EventRejected
	})).Return(nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	err := service.RejectSwap(ctx, testItemID, testRequestID, 1)

	require.NoError(t, err)
}

func TestRejectSwap_KeepsItemPendingWhenOthersRemain(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	item.Status = model.ItemPending
	req := pendingRequest(2, 3)
	other := &model.SwapRequest{
		ID:          "c1d2e3f4-0a1b-4c2d-8e3f-556677889903",
		ItemID:      testItemID,
		RequesterID: 3,
		Status:      model.SwapPending,
	}

	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetRequest", ctx, testRequestID).Return(req, nil)
	mockSwapRepo.On("FinishRequest", ctx, testRequestID, model.SwapRejected).Return(true, nil)
	mockCredits.On("RefundCredits", ctx, int64(2), decimal.NewFromInt(3), mock.Anything).Return(decimal.NewFromInt(10), nil)
	mockSwapRepo.On("ListPendingForItem", ctx, testItemID).Return([]*model.SwapRequest{other}, nil)
	mockNotifier.On("Notify", ctx, mock.Anything).Return(nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	err := service.RejectSwap(ctx, testItemID, testRequestID, 1)

	require.NoError(t, err)
	mockItemRepo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestCancelSwap_HappyPath(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	item := availableItem(1, 3)
	item.Status = model.ItemPending
	req := pendingRequest(2, 3)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(item, nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(req, nil)
	mockSwapRepo.On("FinishRequest", ctx, testRequestID, model.SwapCancelled).Return(true, nil)
	mockCredits.On("RefundCredits", ctx, int64(2), decimal.NewFromInt(3), mock.Anything).Return(decimal.NewFromInt(10), nil)
	mockSwapRepo.On("ListPendingForItem", ctx, testItemID).Return([]*model.SwapRequest{}, nil)
	mockItemRepo.On("Release", ctx, testItemID).Return(true, nil)
	mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n model.Notification) bool {
		return n.UserID == 1 && n.Event == model.EventRequestCancelled && n.OtherUserID == 2
	})).Return(nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	cancelled, err := service.CancelSwap(ctx, testItemID, 2)

	require.NoError(t, err)
	assert.Equal(t, model.SwapCancelled, cancelled.Status)
}

func TestCancelSwap_NoPendingRequest(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	mockItemRepo.On("GetItem", ctx, testItemID).Return(availableItem(1, 3), nil)
	mockSwapRepo.On("GetPendingForItemAndRequester", ctx, testItemID, int64(2)).Return(nil, model.ErrRequestNotFound)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	_, err := service.CancelSwap(ctx, testItemID, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrRequestNotFound)
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	asOwner := []*model.SwapRequest{pendingRequest(2, 3)}
	asRequester := []*model.SwapRequest{pendingRequest(1, 5)}
	mockSwapRepo.On("ListPendingForOwner", ctx, int64(1)).Return(asOwner, nil)
	mockSwapRepo.On("ListByRequester", ctx, int64(1)).Return(asRequester, nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	resp, err := service.ListRequests(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, asOwner, resp.AsOwner)
	assert.Equal(t, asRequester, resp.AsRequester)
}

func TestSwapHistory(t *testing.T) {
	ctx := context.Background()

	mockItemRepo := mocks.NewItemRepository(t)
	mockSwapRepo := mocks.NewSwapRequestRepository(t)
	mockCredits := svcmocks.NewCreditService(t)
	mockNotifier := svcmocks.NewNotifier(t)

	approved := pendingRequest(2, 3)
	approved.Status = model.SwapApproved
	mockSwapRepo.On("ListApprovedForUser", ctx, int64(2)).Return([]*model.SwapRequest{approved}, nil)

	service := NewSwapService(mockItemRepo, mockSwapRepo, mockCredits, mockNotifier, zerolog.Nop())

	swaps, err := service.SwapHistory(ctx, 2)

	require.NoError(t, err)
	require.Len(t, swaps, 1)
	assert.Equal(t, model.SwapApproved, swaps[0].Status)
}
