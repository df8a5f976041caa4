package categorize

import "context"

// Other is the catch-all category assigned when no tier resolves an item.
const Other = "Other"

// Source records which tier produced a result.
type Source string

const (
	SourceCache     Source = "cache"
	SourceLocal     Source = "local"
	SourceInference Source = "inference"
	SourceFallback  Source = "fallback"
)

type Item struct {
	ID          string
	Description string
}

type Result struct {
	ID       string
	Category string
	Source   Source
}

type Options struct {
	// SkipCache ignores existing cache entries. Fresh inference results are
	// still written back.
	SkipCache bool
}

// Classifier assigns a category to every item. The output has one result per
// input, in input order.
type Classifier interface {
	Classify(ctx context.Context, items []Item, opts Options) []Result
}

// Cache is the lookup the pipeline consults before any other tier.
type Cache interface {
	Get(ctx context.Context, description string) (string, bool)
	Put(ctx context.Context, description, category string)
}
