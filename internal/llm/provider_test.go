package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

var cheerSchema = &Schema{
	Name: "test-cheer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"phrase": map[string]any{"type": "string", "maxLength": 20},
		},
		"required":             []string{"phrase"},
		"additionalProperties": false,
	},
}

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockJSON(map[string]int{"b": 2}),
	)

	resp1, err := mock.Generate(context.Background(), Prompt("", "first", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != StopEnd {
		t.Fatalf("expected stop reason %q, got %q", StopEnd, resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Prompt("", "second", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	_, _ = mock.Generate(context.Background(), Prompt("sys", "hello", nil))

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Errorf("expected system %q, got %q", "sys", mock.Calls[0].System)
	}
	if got := mock.Calls[0].Messages[0]; got.Role != RoleUser || got.Content != "hello" {
		t.Errorf("unexpected message: %+v", got)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]any{"phrase": 42}))
	_, err := mock.Generate(context.Background(), Prompt("", "cheer", cheerSchema))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestMockProvider_ConfiguredError(t *testing.T) {
	want := &ErrRateLimit{Err: errors.New("slow down")}
	mock := NewMockProvider(MockResponse{Err: want})
	_, err := mock.Generate(context.Background(), Request{})
	if !errors.Is(err, want) {
		t.Fatalf("expected configured error, got %v", err)
	}
}

func TestFinish_MaxTokens(t *testing.T) {
	_, err := finish(Request{}, json.RawMessage(`{"phr`), "m", StopMaxTokens, Usage{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("expected %q, got %q", "unknown", got)
	}
	ctx := WithPurpose(context.Background(), "cheer")
	if got := PurposeFrom(ctx); got != "cheer" {
		t.Errorf("expected %q, got %q", "cheer", got)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name   string
		models map[string]string
		want   string
	}{
		{"claude-haiku", anthropicModels, "claude-haiku-4-5-20251001"},
		{"gemini-flash", geminiModels, "gemini-2.0-flash"},
		{"gpt-4o-mini", openaiModels, "gpt-4o-mini"},
		{"some-custom-model", anthropicModels, "some-custom-model"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, tt.models); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
