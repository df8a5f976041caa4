package inference

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimited spaces calls to stay inside a provider's per-minute budget.
type RateLimited struct {
	next    Completer
	limiter *rate.Limiter
}

// NewRateLimited allows perMinute calls per minute. Zero or less disables limiting.
func NewRateLimited(next Completer, perMinute int) *RateLimited {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (r *RateLimited) Complete(ctx context.Context, req Request) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "rate limit wait")
	}
	return r.next.Complete(ctx, req)
}
