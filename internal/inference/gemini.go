package inference

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter creates a Gemini API client. baseURL overrides the
// endpoint when non-empty.
func NewGeminiCompleter(ctx context.Context, apiKey, model string, baseURL ...string) (*GeminiCompleter, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(baseURL) > 0 && baseURL[0] != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL[0]}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, errors.Wrap(err, "create genai client")
	}

	return &GeminiCompleter{client: client, model: model}, nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens:   int32(req.MaxTokens),
	})
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content")
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyReply
	}

	return text, nil
}
