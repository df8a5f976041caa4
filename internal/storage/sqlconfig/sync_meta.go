package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// SyncMeta is the single bookkeeping row written after every reconcile.
type SyncMeta struct {
	LastSyncAt     time.Time  `db:"last_sync_at"`
	LastOccurredOn *time.Time `db:"last_occurred_on"`
	TotalSynced    int64      `db:"total_synced"`
}

//go:generate mockery --name ISyncMetaTable --output mock_ISyncMetaTable.go
type ISyncMetaTable interface {
	Get(ctx context.Context) (*SyncMeta, error)
	Record(ctx context.Context, syncedAt time.Time, lastOccurredOn *time.Time, count int) error
}

var _ ISyncMetaTable = (*SyncMetaTable)(nil)

type SyncMetaTable struct {
	exec bob.Executor
}

func NewSyncMetaTable(exec bob.Executor) *SyncMetaTable {
	return &SyncMetaTable{exec: exec}
}

// Get returns the bookkeeping row, or nil before the first sync.
func (s *SyncMetaTable) Get(ctx context.Context) (*SyncMeta, error) {
	q := psql.Select(
		sm.Columns("last_sync_at", "last_occurred_on", "total_synced"),
		sm.From("sync_meta"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(1))),
	)
	meta, err := bob.One(ctx, s.exec, q, scan.StructMapper[SyncMeta]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select sync meta")
	}
	return &meta, nil
}

// Record adds count to the running total. A nil lastOccurredOn keeps the
// previous value.
func (s *SyncMetaTable) Record(ctx context.Context, syncedAt time.Time, lastOccurredOn *time.Time, count int) error {
	q := psql.RawQuery(`
		INSERT INTO sync_meta (id, last_sync_at, last_occurred_on, total_synced)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			last_sync_at = EXCLUDED.last_sync_at,
			last_occurred_on = COALESCE(EXCLUDED.last_occurred_on, sync_meta.last_occurred_on),
			total_synced = sync_meta.total_synced + EXCLUDED.total_synced`,
		syncedAt, lastOccurredOn, count,
	)
	_, err := bob.Exec(ctx, s.exec, q)
	return errors.Wrap(err, "record sync meta")
}
