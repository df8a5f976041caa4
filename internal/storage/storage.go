package storage

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-sync/internal/config"
	"github.com/carson-networks/expense-sync/internal/storage/sqlconfig"
)

type Storage struct {
	DB            bob.DB
	Transactions  sqlconfig.ITransactionTable
	SyncMeta      sqlconfig.ISyncMetaTable
	CategoryCache sqlconfig.ICategoryCacheTable

	pool *sql.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	return New(db), nil
}

// New wraps an open connection pool.
func New(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:            exec,
		Transactions:  sqlconfig.NewTransactionsTable(exec),
		SyncMeta:      sqlconfig.NewSyncMetaTable(exec),
		CategoryCache: sqlconfig.NewCategoryCacheTable(exec),
		pool:          db,
	}
}

func (s *Storage) Close() error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Close()
}

func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	writer := NewWriter(tx)
	return &writer, nil
}

// AssignCategories writes every assignment in one transaction.
func (s *Storage) AssignCategories(ctx context.Context, assignments []sqlconfig.CategoryAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	writer, err := s.Write(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, a := range assignments {
		if err := writer.Transactions.SetCategory(ctx, a.ID, a.Category, now); err != nil {
			_ = writer.Rollback(ctx)
			return errors.Wrapf(err, "assign category to %s", a.ID)
		}
	}

	return writer.Commit(ctx)
}
