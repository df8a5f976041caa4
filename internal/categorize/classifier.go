package categorize

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	ModeKeyword   = "keyword"
	ModeHybrid    = "hybrid"
	ModeInference = "inference"
)

// New selects a classifier variant by mode. cache and batch may be nil for
// keyword mode.
func New(mode string, local *LocalClassifier, cache Cache, batch *BatchClassifier, log logrus.FieldLogger) (Classifier, error) {
	switch mode {
	case ModeKeyword:
		return &Keyword{local: local}, nil
	case ModeHybrid:
		return &Tiered{cache: cache, local: local, batch: batch, log: log}, nil
	case ModeInference:
		return &Tiered{cache: cache, batch: batch, log: log}, nil
	default:
		return nil, errors.Errorf("unknown categorizer mode %q", mode)
	}
}

// Keyword resolves with local rules only.
type Keyword struct {
	local *LocalClassifier
}

func (k *Keyword) Classify(_ context.Context, items []Item, _ Options) []Result {
	results := make([]Result, len(items))
	for i, item := range items {
		if category, ok := k.local.Classify(item.Description); ok {
			results[i] = Result{ID: item.ID, Category: category, Source: SourceLocal}
			continue
		}
		results[i] = Result{ID: item.ID, Category: Other, Source: SourceFallback}
	}
	return results
}

// Tiered walks cache, then local rules, then batched inference. Any tier
// may be nil and is then skipped.
type Tiered struct {
	cache Cache
	local *LocalClassifier
	batch *BatchClassifier
	log   logrus.FieldLogger
}

func (t *Tiered) Classify(ctx context.Context, items []Item, opts Options) []Result {
	results := make([]Result, len(items))
	var pending []Item
	var pendingAt []int

	for i, item := range items {
		if t.cache != nil && !opts.SkipCache {
			if category, ok := t.cache.Get(ctx, item.Description); ok {
				results[i] = Result{ID: item.ID, Category: category, Source: SourceCache}
				continue
			}
		}
		if t.local != nil {
			if category, ok := t.local.Classify(item.Description); ok {
				results[i] = Result{ID: item.ID, Category: category, Source: SourceLocal}
				continue
			}
		}
		pending = append(pending, item)
		pendingAt = append(pendingAt, i)
	}

	if len(pending) == 0 {
		return results
	}

	if t.batch == nil {
		for j, i := range pendingAt {
			results[i] = Result{ID: pending[j].ID, Category: Other, Source: SourceFallback}
		}
		return results
	}

	t.log.WithField("count", len(pending)).Debug("Tiered.sending to inference")
	for j, r := range t.batch.ClassifyBatch(ctx, pending) {
		results[pendingAt[j]] = r
		if r.Source == SourceInference && t.cache != nil {
			t.cache.Put(ctx, pending[j].Description, r.Category)
		}
	}

	return results
}
