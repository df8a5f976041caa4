package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-sync/internal/categorize"
	"github.com/carson-networks/expense-sync/internal/storage/sqlconfig"
)

func newTestCategorizer(t *testing.T) (*CategorizeService, *sqlconfig.MockITransactionTable, *mockCategoryWriter, *mockClassifier) {
	t.Helper()
	table := sqlconfig.NewMockITransactionTable(t)
	writer := &mockCategoryWriter{}
	classifier := &mockClassifier{}
	t.Cleanup(func() {
		writer.AssertExpectations(t)
		classifier.AssertExpectations(t)
	})
	return NewCategorizeService(table, writer, classifier, discardLogger()), table, writer, classifier
}

func row(description string) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{ID: uuid.Must(uuid.NewV4()), Description: description}
}

func intPtr(v int) *int {
	return &v
}

func TestRecategorize_UncategorizedOnly(t *testing.T) {
	svc, table, writer, classifier := newTestCategorizer(t)
	swiggy, unknown := row("Swiggy order"), row("xyz merchant")

	table.EXPECT().ListForCategorization(mock.Anything, &sqlconfig.TransactionFilter{
		Year:              intPtr(2024),
		Month:             intPtr(3),
		UncategorizedOnly: true,
	}).Return([]*sqlconfig.Transaction{swiggy, unknown}, nil)

	classifier.On("Classify", mock.Anything, []categorize.Item{
		{ID: swiggy.ID.String(), Description: "Swiggy order"},
		{ID: unknown.ID.String(), Description: "xyz merchant"},
	}, categorize.Options{}).Return([]categorize.Result{
		{ID: swiggy.ID.String(), Category: "Food", Source: categorize.SourceLocal},
		{ID: unknown.ID.String(), Category: categorize.Other, Source: categorize.SourceFallback},
	})

	writer.On("AssignCategories", mock.Anything, []sqlconfig.CategoryAssignment{
		{ID: swiggy.ID, Category: "Food"},
		{ID: unknown.ID, Category: categorize.Other},
	}).Return(nil)

	result, err := svc.Recategorize(context.Background(), RecategorizeFilter{Year: intPtr(2024), Month: intPtr(3)}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.CategorizedCount)
}

func TestRecategorize_ForceSkipsCacheAndIncludesCategorized(t *testing.T) {
	svc, table, writer, classifier := newTestCategorizer(t)
	r := row("Netflix")

	table.EXPECT().ListForCategorization(mock.Anything, &sqlconfig.TransactionFilter{}).
		Return([]*sqlconfig.Transaction{r}, nil)
	classifier.On("Classify", mock.Anything, mock.Anything, categorize.Options{SkipCache: true}).
		Return([]categorize.Result{{ID: r.ID.String(), Category: "Entertainment", Source: categorize.SourceLocal}})
	writer.On("AssignCategories", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Recategorize(context.Background(), RecategorizeFilter{}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CategorizedCount)
}

func TestRecategorize_NothingToDo(t *testing.T) {
	svc, table, _, _ := newTestCategorizer(t)

	table.EXPECT().ListForCategorization(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := svc.Recategorize(context.Background(), RecategorizeFilter{Month: intPtr(12)}, false)
	require.NoError(t, err)
	assert.Zero(t, result.CategorizedCount)
}

func TestRecategorize_SkipsPayments(t *testing.T) {
	svc, table, _, _ := newTestCategorizer(t)
	payment := row("Settle up")
	payment.IsPayment = true

	table.EXPECT().ListForCategorization(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{payment}, nil)

	result, err := svc.Recategorize(context.Background(), RecategorizeFilter{}, false)
	require.NoError(t, err)
	assert.Zero(t, result.CategorizedCount)
}

func TestRecategorize_InvalidFilter(t *testing.T) {
	svc, _, _, _ := newTestCategorizer(t)

	_, err := svc.Recategorize(context.Background(), RecategorizeFilter{Month: intPtr(13)}, false)
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.Recategorize(context.Background(), RecategorizeFilter{Year: intPtr(0)}, false)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestRecategorize_WriteError(t *testing.T) {
	svc, table, writer, classifier := newTestCategorizer(t)
	r := row("Uber")

	table.EXPECT().ListForCategorization(mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{r}, nil)
	classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return([]categorize.Result{{ID: r.ID.String(), Category: "Transport", Source: categorize.SourceLocal}})
	writer.On("AssignCategories", mock.Anything, mock.Anything).Return(errors.New("deadlock detected"))

	result, err := svc.Recategorize(context.Background(), RecategorizeFilter{}, false)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRecategorize_ListError(t *testing.T) {
	svc, table, _, _ := newTestCategorizer(t)

	table.EXPECT().ListForCategorization(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Recategorize(context.Background(), RecategorizeFilter{}, false)
	assert.ErrorContains(t, err, "connection refused")
}

func TestRecategorize_FallbackPersistedAsOther(t *testing.T) {
	svc, table, writer, classifier := newTestCategorizer(t)
	r := row("xyz merchant 42")

	table.EXPECT().ListForCategorization(mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{r}, nil).Once()
	classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return([]categorize.Result{{ID: r.ID.String(), Category: categorize.Other, Source: categorize.SourceFallback}}).Once()
	writer.On("AssignCategories", mock.Anything, []sqlconfig.CategoryAssignment{{ID: r.ID, Category: categorize.Other}}).
		Return(nil)

	result, err := svc.Recategorize(context.Background(), RecategorizeFilter{}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CategorizedCount)

	// the row now has a category, so only a forced run lists it again
	table.EXPECT().ListForCategorization(mock.Anything, &sqlconfig.TransactionFilter{UncategorizedOnly: true}).
		Return(nil, nil).Once()
	result, err = svc.Recategorize(context.Background(), RecategorizeFilter{}, false)
	require.NoError(t, err)
	assert.Zero(t, result.CategorizedCount)
}
