package reconcile

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-sync/internal/ledger"
	"github.com/carson-networks/expense-sync/internal/storage/sqlconfig"
)

// Store is the write side of the transactions table.
type Store interface {
	InsertIfAbsent(ctx context.Context, upsert *sqlconfig.TransactionUpsert) (bool, error)
	Revive(ctx context.Context, upsert *sqlconfig.TransactionUpsert, now time.Time) error
}

// MetaRecorder keeps the running sync bookkeeping.
type MetaRecorder interface {
	Record(ctx context.Context, syncedAt time.Time, lastOccurredOn *time.Time, count int) error
}

type Result struct {
	Inserted int
	Updated  int
	// Persisted holds every record that was inserted or updated.
	Persisted []ledger.Record
}

// Reconciler upserts remote records by remote id. A conflicting insert
// becomes an edit/undelete of the stored row.
type Reconciler struct {
	store Store
	meta  MetaRecorder
	log   logrus.FieldLogger
	now   func() time.Time
}

func New(store Store, meta MetaRecorder, log logrus.FieldLogger) *Reconciler {
	return &Reconciler{
		store: store,
		meta:  meta,
		log:   log,
		now:   time.Now,
	}
}

// Reconcile processes each record independently. Records that fail are
// skipped and their errors joined into the returned error; the result still
// reflects everything that succeeded.
func (r *Reconciler) Reconcile(ctx context.Context, batch []ledger.Record) (*Result, error) {
	result := &Result{}
	var errs []error
	var newest *time.Time

	for i := range batch {
		record := batch[i]
		upsert := toUpsert(record)

		inserted, err := r.store.InsertIfAbsent(ctx, upsert)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if inserted {
			result.Inserted++
		} else {
			if err := r.store.Revive(ctx, upsert, r.now().UTC()); err != nil {
				errs = append(errs, pkgerrors.Wrapf(err, "revive remote id %d", record.RemoteID))
				continue
			}
			result.Updated++
		}

		result.Persisted = append(result.Persisted, record)
		if newest == nil || record.OccurredOn.After(*newest) {
			occurred := record.OccurredOn
			newest = &occurred
		}
	}

	if err := r.meta.Record(ctx, r.now().UTC(), newest, result.Inserted); err != nil {
		errs = append(errs, pkgerrors.Wrap(err, "record sync meta"))
	}

	r.log.WithFields(logrus.Fields{
		"batch":    len(batch),
		"inserted": result.Inserted,
		"updated":  result.Updated,
		"failed":   len(batch) - len(result.Persisted),
	}).Info("Reconciler.Reconcile complete")

	return result, errors.Join(errs...)
}

func toUpsert(r ledger.Record) *sqlconfig.TransactionUpsert {
	return &sqlconfig.TransactionUpsert{
		RemoteID:       r.RemoteID,
		Description:    r.Description,
		Amount:         r.Amount,
		UserShare:      r.UserShare,
		Currency:       r.Currency,
		OccurredOn:     r.OccurredOn,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		GroupID:        r.GroupID,
		GroupName:      r.GroupName,
		SourceCategory: r.SourceCategory,
		PayerID:        r.PayerID,
		PayerName:      r.PayerName,
		IsPayment:      r.IsPayment,
	}
}
