package inference

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-sync/internal/config"
)

func TestRateLimited_PassesThrough(t *testing.T) {
	next := NewMockCompleter(t)
	req := Request{Prompt: "0: cab"}
	next.EXPECT().Complete(mock.Anything, req).Return("0:Transport", nil).Twice()

	limited := NewRateLimited(next, 0)
	for range 2 {
		reply, err := limited.Complete(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "0:Transport", reply)
	}
}

func TestRateLimited_HonoursCancelledContext(t *testing.T) {
	next := NewMockCompleter(t)
	next.EXPECT().Complete(mock.Anything, mock.Anything).Return("0:Food", nil).Once()

	// The first call uses the burst; the second would have to wait a minute.
	limited := NewRateLimited(next, 1)

	_, err := limited.Complete(context.Background(), Request{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = limited.Complete(ctx, Request{})
	assert.Error(t, err)
}

func TestAnthropicCompleter_Complete(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "test-model",
			"content": [{"type": "text", "text": "0:Food\n1:Other"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	completer := NewAnthropicCompleter("key", "test-model", option.WithBaseURL(server.URL))
	reply, err := completer.Complete(context.Background(), Request{
		System:      "sys",
		Prompt:      "0: swiggy\n1: xyz",
		MaxTokens:   200,
		Temperature: 0.1,
	})
	require.NoError(t, err)
	assert.Equal(t, "0:Food\n1:Other", reply)
	assert.Equal(t, "test-model", got["model"])
	assert.Equal(t, float64(200), got["max_tokens"])
}

func TestAnthropicCompleter_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`))
	}))
	defer server.Close()

	completer := NewAnthropicCompleter("key", "test-model", option.WithBaseURL(server.URL))
	_, err := completer.Complete(context.Background(), Request{Prompt: "x", MaxTokens: 10})
	assert.Error(t, err)
}

func TestGeminiCompleter_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "test-model:generateContent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"0:Grocery"}]}}]}`))
	}))
	defer server.Close()

	completer, err := NewGeminiCompleter(context.Background(), "key", "test-model", server.URL)
	require.NoError(t, err)

	reply, err := completer.Complete(context.Background(), Request{System: "sys", Prompt: "0: dmart", MaxTokens: 50, Temperature: 0.1})
	require.NoError(t, err)
	assert.Equal(t, "0:Grocery", reply)
}

func TestNewFromConfig_NotConfigured(t *testing.T) {
	_, err := NewFromConfig(context.Background(), &config.Config{InferenceProvider: config.ProviderAnthropic})
	assert.ErrorIs(t, err, config.ErrNotConfigured)
}
