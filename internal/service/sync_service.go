package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-sync/internal/categorize"
	"github.com/carson-networks/expense-sync/internal/ledger"
	"github.com/carson-networks/expense-sync/internal/storage/sqlconfig"
)

// SyncService pulls new and changed records from the remote ledger, stores
// them and categorizes whatever came in without a category.
type SyncService struct {
	transactions sqlconfig.ITransactionTable
	fetcher      Fetcher
	reconciler   Reconciler
	categorizer  *CategorizeService
	opts         SyncOptions
	log          logrus.FieldLogger
}

func NewSyncService(
	transactions sqlconfig.ITransactionTable,
	fetcher Fetcher,
	reconciler Reconciler,
	categorizer *CategorizeService,
	opts SyncOptions,
	log logrus.FieldLogger,
) *SyncService {
	return &SyncService{
		transactions: transactions,
		fetcher:      fetcher,
		reconciler:   reconciler,
		categorizer:  categorizer,
		opts:         opts,
		log:          log,
	}
}

// Sync runs one ingestion pass. With datedAfter set, records already stored
// are fetched again from that date on so remote edits and undeletes land
// locally. Per-record store failures are logged and do not fail the sync.
func (s *SyncService) Sync(ctx context.Context, datedAfter *time.Time) (*SyncResult, error) {
	known, err := s.transactions.KnownRemoteIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load known remote ids")
	}

	var refetch *time.Time
	if datedAfter != nil {
		d := dateOnly(*datedAfter)
		refetch = &d
	}

	records, err := s.fetcher.FetchTransactions(ctx, ledger.FetchOptions{
		KnownRemoteIDs:    known,
		AllowRefetchAfter: refetch,
		PageSize:          s.opts.PageSize,
		MaxCount:          s.opts.MaxCount,
	})
	if err != nil {
		return nil, errors.Wrap(err, "fetch remote transactions")
	}

	reconciled, err := s.reconciler.Reconcile(ctx, records)
	if err != nil {
		s.log.WithError(err).Warn("SyncService.Sync some records were not stored")
	}
	if reconciled == nil {
		if err == nil {
			err = errors.New("reconcile returned no result")
		}
		return nil, errors.Wrap(err, "reconcile")
	}

	result := &SyncResult{
		InsertedCount: reconciled.Inserted,
		UpdatedCount:  reconciled.Updated,
	}

	remoteIDs := make([]int64, 0, len(reconciled.Persisted))
	for _, record := range reconciled.Persisted {
		if !record.IsPayment {
			remoteIDs = append(remoteIDs, record.RemoteID)
		}
	}
	if len(remoteIDs) == 0 {
		return result, nil
	}

	categorized, err := s.categorizer.categorize(ctx, &sqlconfig.TransactionFilter{
		RemoteIDs:         remoteIDs,
		UncategorizedOnly: true,
	}, categorize.Options{})
	if err != nil {
		return result, err
	}
	result.CategorizedCount = categorized

	return result, nil
}
