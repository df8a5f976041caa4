package inference

import (
	"context"

	"github.com/pkg/errors"

	"github.com/carson-networks/expense-sync/internal/config"
)

// Request is a single chat-style completion: one system instruction and one
// user prompt.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

//go:generate mockery --name Completer --output mock_Completer.go
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrEmptyReply is returned when the provider answers without any text.
var ErrEmptyReply = errors.New("inference: empty reply")

// NewFromConfig builds the configured provider behind a rate limiter. It
// returns config.ErrNotConfigured when no provider key is set.
func NewFromConfig(ctx context.Context, cfg *config.Config) (Completer, error) {
	key, err := config.Require(cfg.Credentials.ProviderAPIKey, "PROVIDER_API_KEY")
	if err != nil {
		return nil, err
	}

	var completer Completer
	switch cfg.InferenceProvider {
	case config.ProviderAnthropic:
		completer = NewAnthropicCompleter(key, cfg.InferenceModel)
	case config.ProviderGemini:
		completer, err = NewGeminiCompleter(ctx, key, cfg.InferenceModel)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown inference provider %q", cfg.InferenceProvider)
	}

	return NewRateLimited(completer, cfg.InferenceRequestsPerMinute), nil
}
