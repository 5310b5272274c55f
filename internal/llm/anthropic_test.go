package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
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
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-sonnet-4-20250514",
	}
}

func anthropicMessage(text string, in, out int) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": in, "output_tokens": out},
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	const reply = `{"question":"What is the chemical symbol for sodium?","answer":["Na"]}`

	var body []byte
	handler := func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(reply, 91, 42))
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are ChemCat, a chemistry tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "Write one question about sodium."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if string(resp.Content) != reply {
		t.Errorf("content = %s, want the model reply", resp.Content)
	}
	if resp.Usage.InputTokens != 91 || resp.Usage.OutputTokens != 42 {
		t.Errorf("usage = %+v, want 91 in / 42 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want 'end'", resp.StopReason)
	}
	if !strings.Contains(string(body), "ChemCat") {
		t.Errorf("system prompt missing from request body: %s", body)
	}
	if !strings.Contains(string(body), `"max_tokens":256`) {
		t.Errorf("max_tokens missing from request body: %s", body)
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		errType string
		check   func(error) bool
	}{
		{
			name: "rate limited", status: http.StatusTooManyRequests, errType: "rate_limit_error",
			check: func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) },
		},
		{
			name: "server error", status: http.StatusInternalServerError, errType: "api_error",
			check: func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name: "overloaded", status: 529, errType: "overloaded_error",
			check: func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type":  "error",
					"error": map[string]any{"type": tt.errType, "message": tt.name},
				})
			})

			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "hi"}},
				MaxTokens: 64,
			})
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tt.check(err) {
				t.Fatalf("wrong error type: %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicProvider_ModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if p.ModelID() != "claude-sonnet-4-20250514" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
}

func TestAnthropicModelAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			if got := resolveModel(tt.alias, anthropicModels); got != tt.want {
				t.Errorf("resolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
			}
		})
	}
}
