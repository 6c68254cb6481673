package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 40, "output_tokens": 8},
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"phrase":"Hoan hô!"}`, "end_turn"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "Cheer for a child.",
		Messages:  []Message{{Role: RoleUser, Content: "cheer"}},
		Schema:    cheerSchema,
		MaxTokens: 64,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 48 {
		t.Errorf("expected 48 total tokens, got %d", resp.Usage.TotalTokens)
	}
	if resp.StopReason != StopEnd {
		t.Errorf("expected stop reason %q, got %q", StopEnd, resp.StopReason)
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"phra`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), Prompt("", "cheer", cheerSchema))
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
}

func TestAnthropicProvider_StatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		wantRate bool
	}{
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "nope"},
			})
		})

		_, err := p.Generate(context.Background(), Prompt("", "cheer", nil))
		var rl *ErrRateLimit
		var unavail *ErrProviderUnavailable
		switch {
		case tt.wantRate && !errors.As(err, &rl):
			t.Errorf("status %d: expected ErrRateLimit, got %T", tt.status, err)
		case !tt.wantRate && !errors.As(err, &unavail):
			t.Errorf("status %d: expected ErrProviderUnavailable, got %T", tt.status, err)
		}
	}
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
