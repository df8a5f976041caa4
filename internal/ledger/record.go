package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	UngroupedName          = "Non-group expense"
	NoDescription          = "No description"
	DefaultCurrency        = "INR"
	DefaultPageSize        = 100
	remoteTimestampLayout  = time.RFC3339
	remoteDatePrefixLength = len(time.DateOnly)
)

// Record is the canonical form of one remote expense.
type Record struct {
	RemoteID       int64
	Description    string
	Amount         decimal.Decimal
	UserShare      decimal.Decimal
	Currency       string
	OccurredOn     time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	GroupID        *int64
	GroupName      string
	SourceCategory *string
	PayerID        *int64
	PayerName      *string
	IsPayment      bool
}
