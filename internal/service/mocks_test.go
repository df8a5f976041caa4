package service

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-sync/internal/categorize"
	"github.com/carson-networks/expense-sync/internal/ledger"
	"github.com/carson-networks/expense-sync/internal/reconcile"
	"github.com/carson-networks/expense-sync/internal/storage/sqlconfig"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchTransactions(ctx context.Context, opts ledger.FetchOptions) ([]ledger.Record, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Record), args.Error(1)
}

type mockReconciler struct {
	mock.Mock
}

func (m *mockReconciler) Reconcile(ctx context.Context, batch []ledger.Record) (*reconcile.Result, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reconcile.Result), args.Error(1)
}

type mockCategoryWriter struct {
	mock.Mock
}

func (m *mockCategoryWriter) AssignCategories(ctx context.Context, assignments []sqlconfig.CategoryAssignment) error {
	args := m.Called(ctx, assignments)
	return args.Error(0)
}

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) Classify(ctx context.Context, items []categorize.Item, opts categorize.Options) []categorize.Result {
	args := m.Called(ctx, items, opts)
	return args.Get(0).([]categorize.Result)
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
