package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

//go:generate mockery --name ICategoryCacheTable --output mock_ICategoryCacheTable.go
type ICategoryCacheTable interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, description, category string) error
}

var _ ICategoryCacheTable = (*CategoryCacheTable)(nil)

// CategoryCacheTable stores resolved categories keyed by description hash.
type CategoryCacheTable struct {
	exec bob.Executor
}

func NewCategoryCacheTable(exec bob.Executor) *CategoryCacheTable {
	return &CategoryCacheTable{exec: exec}
}

func (c *CategoryCacheTable) Get(ctx context.Context, key string) (string, bool, error) {
	q := psql.Select(
		sm.Columns("category"),
		sm.From("category_cache"),
		sm.Where(psql.Quote("description_hash").EQ(psql.Arg(key))),
	)
	category, err := bob.One(ctx, c.exec, q, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "select category cache")
	}
	return category, true, nil
}

// Put upserts the entry; the last write wins.
func (c *CategoryCacheTable) Put(ctx context.Context, key, description, category string) error {
	q := psql.Insert(
		im.Into("category_cache", "description_hash", "description", "category", "updated_at"),
		im.Values(psql.Arg(key, description, category, time.Now().UTC())),
		im.OnConflict("description_hash").DoUpdate(
			im.SetExcluded("description", "category", "updated_at"),
		),
	)
	_, err := bob.Exec(ctx, c.exec, q)
	return errors.Wrap(err, "upsert category cache")
}
