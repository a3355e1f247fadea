package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	UserID    int64           `json:"user_id"`
	Credits   decimal.Decimal `json:"credits"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Transaction is one immutable ledger entry. Amount is always positive; the
// type carries the direction (see TransactionType.IsCredit).
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

type Item struct {
	ID      string     `json:"id"`
	OwnerID int64      `json:"owner_id"`
	Title   string     `json:"title"`
	// Description may embed a legacy "Credits: N" price when Credits is unset.
	Description string              `json:"description"`
	Credits     decimal.NullDecimal `json:"credits"`
	Status      ItemStatus          `json:"status"`
	LockedBy    *int64              `json:"locked_by,omitempty"`
	LockedUntil *time.Time          `json:"locked_until,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type SwapRequest struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	RequesterID     int64           `json:"requester_id"`
	CreditsRequired decimal.Decimal `json:"credits_required"`
	Status          SwapStatus      `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Notification is the closed, typed event handed to the notification
// collaborator. One struct per delivery; no open metadata map.
type Notification struct {
	UserID        int64             `json:"user_id"`
	Event         NotificationEvent `json:"event"`
	RequestID     string            `json:"request_id"`
	ItemID        string            `json:"item_id"`
	ItemTitle     string            `json:"item_title"`
	OtherUserID   int64             `json:"other_user_id"`
	RequestStatus SwapStatus        `json:"request_status"`
}

type CreateItemRequest struct {
	Title       string `json:"title" binding:"required" example:"Mountain bike"`
	Description string `json:"description" example:"Barely used"`
	Credits     string `json:"credits" example:"2.0"`
}

type CreditAmountRequest struct {
	Amount      string `json:"amount" binding:"required" example:"5.0"`
	Description string `json:"description" example:"promo credits"`
}

type BalanceResponse struct {
	UserID  int64  `json:"user_id" example:"1"`
	Balance string `json:"balance" example:"10.00"`
}

type CreditMutationResponse struct {
	UserID     int64  `json:"user_id" example:"1"`
	Amount     string `json:"amount" example:"5.00"`
	NewBalance string `json:"new_balance" example:"15.00"`
}

type SwapActionResponse struct {
	Status          string `json:"status" example:"requested"`
	Message         string `json:"message,omitempty"`
	RequestID       string `json:"request_id"`
	ItemID          string `json:"item_id"`
	CreditsRequired string `json:"credits_required,omitempty" example:"2.00"`
}

type SwapRequestsResponse struct {
	AsOwner     []*SwapRequest `json:"as_owner"`
	AsRequester []*SwapRequest `json:"as_requester"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient credits"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_CREDITS"`
	Details string `json:"details,omitempty"`
}

// Price returns the listed price of the item when the structured field is
// present. The boolean is false for legacy rows that predate the field.
func (i *Item) Price() (decimal.Decimal, bool) {
	if i.Credits.Valid {
		return i.Credits.Decimal, true
	}
	return decimal.Zero, false
}
