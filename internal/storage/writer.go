package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-sync/internal/storage/sqlconfig"
)

// Writer groups table access bound to a single transaction.
type Writer struct {
	tx           bob.Tx
	Transactions sqlconfig.ITransactionTable
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
