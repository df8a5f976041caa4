package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-sync/internal/categorize"
	"github.com/carson-networks/expense-sync/internal/storage/sqlconfig"
)

var ErrInvalidFilter = errors.New("invalid recategorize filter")

// CategorizeService assigns categories to stored transactions.
type CategorizeService struct {
	transactions sqlconfig.ITransactionTable
	writer       CategoryWriter
	classifier   categorize.Classifier
	log          logrus.FieldLogger
}

func NewCategorizeService(
	transactions sqlconfig.ITransactionTable,
	writer CategoryWriter,
	classifier categorize.Classifier,
	log logrus.FieldLogger,
) *CategorizeService {
	return &CategorizeService{
		transactions: transactions,
		writer:       writer,
		classifier:   classifier,
		log:          log,
	}
}

// Recategorize classifies live non-payment rows matching the filter. Without
// force only rows that have no assigned category are touched; with force
// every matching row is classified again and cached answers are bypassed.
func (s *CategorizeService) Recategorize(ctx context.Context, filter RecategorizeFilter, force bool) (*CategorizeResult, error) {
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		return nil, errors.Wrapf(ErrInvalidFilter, "month %d", *filter.Month)
	}
	if filter.Year != nil && *filter.Year < 1 {
		return nil, errors.Wrapf(ErrInvalidFilter, "year %d", *filter.Year)
	}

	count, err := s.categorize(ctx, &sqlconfig.TransactionFilter{
		Year:              filter.Year,
		Month:             filter.Month,
		UncategorizedOnly: !force,
	}, categorize.Options{SkipCache: force})
	if err != nil {
		return nil, err
	}

	return &CategorizeResult{CategorizedCount: count}, nil
}

// categorize lists the rows matching filter, classifies them in one pass and
// writes the results back in a single storage transaction.
func (s *CategorizeService) categorize(ctx context.Context, filter *sqlconfig.TransactionFilter, opts categorize.Options) (int, error) {
	rows, err := s.transactions.ListForCategorization(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "list transactions for categorization")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	items := make([]categorize.Item, 0, len(rows))
	for _, row := range rows {
		if row.IsPayment {
			continue
		}
		items = append(items, categorize.Item{ID: row.ID.String(), Description: row.Description})
	}
	if len(items) == 0 {
		return 0, nil
	}

	results := s.classifier.Classify(ctx, items, opts)

	assignments := make([]sqlconfig.CategoryAssignment, 0, len(results))
	sources := map[categorize.Source]int{}
	for _, result := range results {
		id, err := uuid.FromString(result.ID)
		if err != nil {
			return 0, errors.Wrapf(err, "classifier returned unknown id %q", result.ID)
		}
		assignments = append(assignments, sqlconfig.CategoryAssignment{ID: id, Category: result.Category})
		sources[result.Source]++
	}

	if err := s.writer.AssignCategories(ctx, assignments); err != nil {
		return 0, errors.Wrap(err, "assign categories")
	}

	s.log.WithFields(logrus.Fields{
		"categorized": len(assignments),
		"sources":     sources,
	}).Info("CategorizeService.categorize complete")

	return len(assignments), nil
}
