package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

const questionJSON = `{"question":"What is the atomic number of carbon?","answer":["6"]}`

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryPolicy(t *testing.T) {
	down := func() MockResponse {
		return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	}
	ok := MockResponse{Content: json.RawMessage(questionJSON)}

	tests := []struct {
		name      string
		queue     []MockResponse
		wantCalls int
		wantOK    bool
		wantErr   func(error) bool
	}{
		{
			name:      "first attempt succeeds",
			queue:     []MockResponse{ok},
			wantCalls: 1,
			wantOK:    true,
		},
		{
			name:      "transient failure then success",
			queue:     []MockResponse{down(), ok},
			wantCalls: 2,
			wantOK:    true,
		},
		{
			name:      "gives up after max attempts",
			queue:     []MockResponse{down(), down(), down()},
			wantCalls: 3,
			wantErr:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:      "truncation is terminal",
			queue:     []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}}},
			wantCalls: 1,
			wantErr:   func(err error) bool { var e *ErrMaxTokensExceeded; return errors.As(err, &e) },
		},
		{
			name: "schema failure retried once",
			queue: []MockResponse{
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("bad")}},
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("bad")}},
				ok, // never reached
			},
			wantCalls: 2,
			wantErr:   func(err error) bool { var e *ErrInvalidResponse; return errors.As(err, &e) },
		},
		{
			name: "rate limit waits the hinted duration",
			queue: []MockResponse{
				{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
				ok,
			},
			wantCalls: 2,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.queue...)
			p := WithRetry(mock, retryConfig())

			resp, err := p.Generate(context.Background(), Request{
				Messages: []Message{{Role: RoleUser, Content: "one question about carbon"}},
			})

			if tt.wantOK {
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if string(resp.Content) != questionJSON {
					t.Errorf("content = %s", resp.Content)
				}
			} else {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !tt.wantErr(err) {
					t.Fatalf("wrong error type: %T (%v)", err, err)
				}
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(questionJSON)},
	)
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected an error after cancellation")
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q, want 'mock'", p.ModelID())
	}
}

func TestRetryStreamRetriesInitialFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Chunks: []string{"Carbon has ", "six protons."}},
	)
	p := WithRetry(mock, retryConfig())

	ch, err := p.Stream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	var got string
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("chunk error: %v", chunk.Err)
		}
		got += chunk.Text
	}
	if got != "Carbon has six protons." {
		t.Errorf("streamed text = %q", got)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}
