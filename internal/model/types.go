package model

// TransactionType tags a ledger entry with its business reason and direction.
// Amounts are always stored positive; the type decides whether the entry adds
// to or subtracts from the balance.
type TransactionType string

const (
	TypeCreditAdd    TransactionType = "credit_add"
	TypeCreditDeduct TransactionType = "credit_deduct"
	TypeItemUpload   TransactionType = "item_upload"
	TypeSwapCredit   TransactionType = "swap_credit"
	TypeSwapDebit    TransactionType = "swap_debit"
	TypeItemDeletion TransactionType = "item_deletion"
)

func (t TransactionType) String() string {
	return string(t)
}

// IsCredit reports whether entries of this type increase the balance.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TypeCreditAdd, TypeSwapCredit, TypeItemUpload:
		return true
	default:
		return false
	}
}

type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemPending   ItemStatus = "pending"
	ItemLocked    ItemStatus = "locked"
	ItemSwapped   ItemStatus = "swapped"
)

func (s ItemStatus) String() string {
	return string(s)
}

type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapApproved  SwapStatus = "approved"
	SwapRejected  SwapStatus = "rejected"
	SwapCancelled SwapStatus = "cancelled"
)

func (s SwapStatus) String() string {
	return string(s)
}

// Terminal reports whether the status admits no further transitions.
func (s SwapStatus) Terminal() bool {
	return s == SwapApproved || s == SwapRejected || s == SwapCancelled
}

// NotificationEvent identifies what happened to a swap request.
type NotificationEvent string

const (
	EventNewRequest       NotificationEvent = "new_request"
	EventApproved         NotificationEvent = "approved"
	EventRejected         NotificationEvent = "rejected"
	EventRequestCancelled NotificationEvent = "request_cancelled"
)

func (e NotificationEvent) String() string {
	return string(e)
}
