package service

import (
	"context"
	"fmt"
	"time"

	"swap-marketplace/internal/model"
	"swap-marketplace/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// lockDuration is how long a direct lock advertises itself as held. Expiry
// is advisory metadata; enforcement belongs to an external scheduled task.
const lockDuration = 24 * time.Hour

// uploadReward is the flat credit awarded for listing an item, and the
// amount clawed back when an available item is deleted.
var uploadReward = decimal.NewFromInt(1)

type ItemServiceImpl struct {
	itemRepo repository.ItemRepository
	credits  CreditService
	logger   zerolog.Logger
}

func NewItemService(itemRepo repository.ItemRepository, credits CreditService, logger zerolog.Logger) ItemService {
	return &ItemServiceImpl{
		itemRepo: itemRepo,
		credits:  credits,
		logger:   logger,
	}
}

// CreateItem lists a new item and awards the listing credit. A failed award
// is logged but does not undo the listing.
func (s *ItemServiceImpl) CreateItem(ctx context.Context, ownerID int64, req *model.CreateItemRequest) (*model.Item, error) {
	credits := decimal.NullDecimal{Decimal: defaultItemCredits, Valid: true}
	if req.Credits != "" {
		price, err := decimal.NewFromString(req.Credits)
		if err != nil || price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: credits must be a positive number", model.ErrInvalidAmount)
		}
		credits.Decimal = price
	}

	item := &model.Item{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Credits:     credits,
		Status:      model.ItemAvailable,
	}
	if err := s.itemRepo.InsertItem(ctx, item); err != nil {
		return nil, err
	}

	if _, err := s.credits.AddCredits(ctx, ownerID, uploadReward, model.TypeItemUpload,
		fmt.Sprintf("Credits awarded for uploading item: %s", item.Title)); err != nil {
		s.logger.Error().Err(err).Int64("owner_id", ownerID).Str("item_id", item.ID).
			Msg("failed to award upload credit")
	}

	s.logger.Info().Str("item_id", item.ID).Int64("owner_id", ownerID).
		Str("credits", credits.Decimal.StringFixed(2)).
		Msg("item created")
	return item, nil
}

// DeleteItem removes an owner's item. Only available items may be deleted,
// and doing so claws back the listing credit so items cannot be farmed and
// dropped; pending, locked and swapped items stay until their state resolves.
func (s *ItemServiceImpl) DeleteItem(ctx context.Context, itemID string, callerID int64) error {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	if item.OwnerID != callerID {
		return fmt.Errorf("%w: only the item owner can delete this item", model.ErrForbidden)
	}

	if item.Status != model.ItemAvailable {
		return fmt.Errorf("%w: item is %s", model.ErrInvalidState, item.Status)
	}

	if _, err := s.credits.DeductCredits(ctx, callerID, uploadReward, model.TypeItemDeletion,
		fmt.Sprintf("Credits deducted for deleting available item: %s", item.Title)); err != nil {
		// Deletion still proceeds; the clawback shortfall is visible in the
		// ledger and the logs.
		s.logger.Warn().Err(err).Str("item_id", itemID).Int64("owner_id", callerID).
			Msg("failed to claw back upload credit on deletion")
	}

	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	s.logger.Info().Str("item_id", itemID).Int64("owner_id", callerID).Msg("item deleted")
	return nil
}

// LockItem reserves an available item directly for the caller for 24 hours,
// outside the swap-request flow. No credits move.
func (s *ItemServiceImpl) LockItem(ctx context.Context, itemID string, callerID int64) (*model.Item, error) {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID == callerID {
		return nil, fmt.Errorf("%w: cannot lock your own item", model.ErrForbidden)
	}
	if item.Status == model.ItemLocked {
		return nil, fmt.Errorf("%w: already locked", model.ErrInvalidState)
	}

	locked, err := s.itemRepo.Lock(ctx, itemID, callerID, time.Now().Add(lockDuration))
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, model.ErrItemNotAvailable
	}

	s.logger.Info().Str("item_id", itemID).Int64("locked_by", callerID).Msg("item locked")
	return s.itemRepo.GetItem(ctx, itemID)
}

// UnlockItem is owner-only and reverses a direct lock.
func (s *ItemServiceImpl) UnlockItem(ctx context.Context, itemID string, callerID int64) error {
	item, err := s.itemRepo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	if item.OwnerID != callerID {
		return fmt.Errorf("%w: only the item owner can unlock this item", model.ErrForbidden)
	}
	if item.Status != model.ItemLocked {
		return fmt.Errorf("%w: not locked", model.ErrInvalidState)
	}

	unlocked, err := s.itemRepo.Unlock(ctx, itemID)
	if err != nil {
		return err
	}
	if !unlocked {
		return fmt.Errorf("%w: not locked", model.ErrInvalidState)
	}

	s.logger.Info().Str("item_id", itemID).Int64("owner_id", callerID).Msg("item unlocked")
	return nil
}
