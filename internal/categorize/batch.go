package categorize

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/expense-sync/internal/inference"
)

const (
	DefaultBatchSize = 15
	defaultMaxTokens = 200
	temperature      = 0.1
)

type BatchConfig struct {
	BatchSize   int
	Concurrency int
	MaxTokens   int
}

// BatchClassifier sends unresolved descriptions to an external model in
// bounded sub-batches. A failed sub-batch degrades to Other; it never fails
// the whole call.
type BatchClassifier struct {
	completer  inference.Completer
	categories []string
	cfg        BatchConfig
	log        logrus.FieldLogger
}

// NewBatchClassifier builds a classifier over categories. A nil completer
// resolves everything to Other.
func NewBatchClassifier(completer inference.Completer, categories []string, cfg BatchConfig, log logrus.FieldLogger) *BatchClassifier {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.MaxTokens < 1 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &BatchClassifier{
		completer:  completer,
		categories: categories,
		cfg:        cfg,
		log:        log,
	}
}

// ClassifyBatch returns exactly one result per item, ordered like items.
func (b *BatchClassifier) ClassifyBatch(ctx context.Context, items []Item) []Result {
	results := make([]Result, len(items))
	if len(items) == 0 {
		return results
	}

	if b.completer == nil {
		for i, item := range items {
			results[i] = Result{ID: item.ID, Category: Other, Source: SourceFallback}
		}
		return results
	}

	// Sub-batches write disjoint ranges of results, so no locking is needed.
	g := errgroup.Group{}
	g.SetLimit(b.cfg.Concurrency)
	for start := 0; start < len(items); start += b.cfg.BatchSize {
		end := min(start+b.cfg.BatchSize, len(items))
		g.Go(func() error {
			b.classifySubBatch(ctx, items[start:end], results[start:end])
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (b *BatchClassifier) classifySubBatch(ctx context.Context, items []Item, out []Result) {
	descriptions := make([]string, len(items))
	for i, item := range items {
		descriptions[i] = item.Description
	}

	reply, err := b.completer.Complete(ctx, inference.Request{
		System:      SystemInstruction,
		Prompt:      BuildPrompt(b.categories, descriptions),
		MaxTokens:   b.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		b.log.WithError(err).WithField("items", len(items)).Warn("BatchClassifier.complete failed, defaulting sub-batch")
		for i, item := range items {
			out[i] = Result{ID: item.ID, Category: Other, Source: SourceFallback}
		}
		return
	}

	parsed := ParseReply(reply, len(items), b.categories)
	if len(parsed.Anomalies) > 0 {
		b.log.WithFields(logrus.Fields{
			"anomalies": parsed.Anomalies,
			"format":    ReplyFormatV1,
		}).Warn("BatchClassifier.reply anomalies")
	}

	for i, item := range items {
		source := SourceInference
		if !parsed.Resolved[i] {
			source = SourceFallback
		}
		out[i] = Result{ID: item.ID, Category: parsed.Categories[i], Source: source}
	}
}
