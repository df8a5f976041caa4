package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// ErrNotFound is returned when an update matches no row.
var ErrNotFound = errors.New("row not found")

var transactionColumns = []any{
	"id", "remote_id", "description", "amount", "user_share", "currency",
	"occurred_on", "created_at", "updated_at", "deleted_at", "group_id",
	"group_name", "source_category", "assigned_category", "payer_id",
	"payer_name", "is_payment",
}

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// KnownRemoteIDs returns every stored remote id, deleted rows included.
func (t *TransactionsTable) KnownRemoteIDs(ctx context.Context) (map[int64]struct{}, error) {
	q := psql.Select(
		sm.Columns("remote_id"),
		sm.From(transactionsTable),
	)
	ids, err := bob.All(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return nil, errors.Wrap(err, "select remote ids")
	}

	known := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return known, nil
}

// InsertIfAbsent inserts the row unless remote_id already exists. It reports
// whether a row was inserted.
func (t *TransactionsTable) InsertIfAbsent(ctx context.Context, u *TransactionUpsert) (bool, error) {
	q := psql.Insert(
		im.Into(transactionsTable,
			"remote_id", "description", "amount", "user_share", "currency",
			"occurred_on", "created_at", "updated_at", "group_id", "group_name",
			"source_category", "payer_id", "payer_name", "is_payment",
		),
		im.Values(psql.Arg(
			u.RemoteID, u.Description, u.Amount, u.UserShare, u.Currency,
			u.OccurredOn, u.CreatedAt, u.UpdatedAt, u.GroupID, u.GroupName,
			u.SourceCategory, u.PayerID, u.PayerName, u.IsPayment,
		)),
		im.OnConflict("remote_id").DoNothing(),
	)

	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return false, errors.Wrapf(err, "insert remote id %d", u.RemoteID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "rows affected")
	}
	return n == 1, nil
}

// Revive rewrites the mutable fields of an existing row and clears deleted_at.
// created_at and the group, payer and category columns are left alone.
func (t *TransactionsTable) Revive(ctx context.Context, u *TransactionUpsert, now time.Time) error {
	q := psql.Update(
		um.Table(transactionsTable),
		um.SetCol("description").ToArg(u.Description),
		um.SetCol("amount").ToArg(u.Amount),
		um.SetCol("occurred_on").ToArg(u.OccurredOn),
		um.SetCol("user_share").ToArg(u.UserShare),
		um.SetCol("updated_at").ToArg(now),
		um.SetCol("deleted_at").ToArg(nil),
		um.Where(psql.Quote("remote_id").EQ(psql.Arg(u.RemoteID))),
	)

	return t.execOne(ctx, q, "revive")
}

func (t *TransactionsTable) ListForCategorization(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.Where(psql.Quote("is_payment").EQ(psql.Arg(false))),
	}
	if filter != nil {
		if filter.RemoteIDs != nil {
			queryMods = append(queryMods, sm.Where(psql.Raw("remote_id = ANY(?)", pq.Array(filter.RemoteIDs))))
		}
		if filter.Year != nil {
			queryMods = append(queryMods, sm.Where(psql.Raw("EXTRACT(YEAR FROM occurred_on) = ?", *filter.Year)))
		}
		if filter.Month != nil {
			queryMods = append(queryMods, sm.Where(psql.Raw("EXTRACT(MONTH FROM occurred_on) = ?", *filter.Month)))
		}
		if filter.UncategorizedOnly {
			queryMods = append(queryMods, sm.Where(psql.Quote("assigned_category").IsNull()))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("occurred_on"),
		sm.OrderBy("remote_id"),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, errors.Wrap(err, "select transactions")
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *TransactionsTable) SetCategory(ctx context.Context, id uuid.UUID, category string, now time.Time) error {
	q := psql.Update(
		um.Table(transactionsTable),
		um.SetCol("assigned_category").ToArg(category),
		um.SetCol("updated_at").ToArg(now),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	return t.execOne(ctx, q, "set category")
}

func (t *TransactionsTable) execOne(ctx context.Context, q bob.Query, op string) error {
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return errors.Wrap(err, op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, op)
	}
	if n == 0 {
		return errors.Wrap(ErrNotFound, op)
	}
	return nil
}
