package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const transactionsTable = "transactions"

// Transaction is one row of the transactions table.
type Transaction struct {
	ID               uuid.UUID       `db:"id"`
	RemoteID         int64           `db:"remote_id"`
	Description      string          `db:"description"`
	Amount           decimal.Decimal `db:"amount"`
	UserShare        decimal.Decimal `db:"user_share"`
	Currency         string          `db:"currency"`
	OccurredOn       time.Time       `db:"occurred_on"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        *time.Time      `db:"updated_at"`
	DeletedAt        *time.Time      `db:"deleted_at"`
	GroupID          *int64          `db:"group_id"`
	GroupName        string          `db:"group_name"`
	SourceCategory   *string         `db:"source_category"`
	AssignedCategory *string         `db:"assigned_category"`
	PayerID          *int64          `db:"payer_id"`
	PayerName        *string         `db:"payer_name"`
	IsPayment        bool            `db:"is_payment"`
}

// TransactionUpsert carries the fields written when a remote record is
// first stored or seen again.
type TransactionUpsert struct {
	RemoteID       int64
	Description    string
	Amount         decimal.Decimal
	UserShare      decimal.Decimal
	Currency       string
	OccurredOn     time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	GroupID        *int64
	GroupName      string
	SourceCategory *string
	PayerID        *int64
	PayerName      *string
	IsPayment      bool
}

// TransactionFilter narrows the rows offered for categorization. Deleted
// rows and payments are always excluded.
type TransactionFilter struct {
	RemoteIDs         []int64
	Year              *int
	Month             *int
	UncategorizedOnly bool
}

type CategoryAssignment struct {
	ID       uuid.UUID
	Category string
}

// ITransactionTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	KnownRemoteIDs(ctx context.Context) (map[int64]struct{}, error)
	InsertIfAbsent(ctx context.Context, upsert *TransactionUpsert) (bool, error)
	Revive(ctx context.Context, upsert *TransactionUpsert, now time.Time) error
	ListForCategorization(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	SetCategory(ctx context.Context, id uuid.UUID, category string, now time.Time) error
}
