package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-sync/internal/categorize"
	"github.com/carson-networks/expense-sync/internal/ledger"
	"github.com/carson-networks/expense-sync/internal/reconcile"
	"github.com/carson-networks/expense-sync/internal/storage"
	"github.com/carson-networks/expense-sync/internal/storage/sqlconfig"
)

// Fetcher pulls canonical records from the remote ledger.
type Fetcher interface {
	FetchTransactions(ctx context.Context, opts ledger.FetchOptions) ([]ledger.Record, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, batch []ledger.Record) (*reconcile.Result, error)
}

// CategoryWriter persists category assignments atomically.
type CategoryWriter interface {
	AssignCategories(ctx context.Context, assignments []sqlconfig.CategoryAssignment) error
}

// Service holds all business logic services.
type Service struct {
	Sync       *SyncService
	Categorize *CategorizeService
}

// NewService creates a new Service with the given storage and pipeline parts.
func NewService(
	store *storage.Storage,
	fetcher Fetcher,
	reconciler Reconciler,
	classifier categorize.Classifier,
	opts SyncOptions,
	log logrus.FieldLogger,
) *Service {
	categorizer := NewCategorizeService(store.Transactions, store, classifier, log)
	return &Service{
		Sync:       NewSyncService(store.Transactions, fetcher, reconciler, categorizer, opts, log),
		Categorize: categorizer,
	}
}

// SyncOptions bounds a single ledger fetch.
type SyncOptions struct {
	PageSize int
	MaxCount int
}

type SyncResult struct {
	InsertedCount    int
	UpdatedCount     int
	CategorizedCount int
}

// RecategorizeFilter narrows recategorization by calendar date. A month
// without a year matches that month in every year.
type RecategorizeFilter struct {
	Year  *int
	Month *int
}

type CategorizeResult struct {
	CategorizedCount int
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
