package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/chemcat/chemcat/internal/llm"
)

func drain(t *testing.T, ch <-chan llm.Chunk) string {
	t.Helper()
	var b strings.Builder
	for chunk := range ch {
		if chunk.Err != nil {
			t.Fatalf("stream error: %v", chunk.Err)
		}
		b.WriteString(chunk.Text)
	}
	return b.String()
}

func TestTutorSendStreamsReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Chunks: []string{"Ionic bonds ", "transfer electrons."},
	})
	tutor := NewTutor(mock, DefaultConfig())

	ch, err := tutor.Send(context.Background(), "What is an ionic bond?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	got := drain(t, ch)
	if got != "Ionic bonds transfer electrons." {
		t.Errorf("reply = %q", got)
	}
}

func TestTutorKeepsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Chunks: []string{"Protons are positive."}},
		llm.MockResponse{Chunks: []string{"Neutrons are neutral."}},
	)
	tutor := NewTutor(mock, DefaultConfig())

	ch, err := tutor.Send(context.Background(), "Tell me about protons")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	drain(t, ch)

	ch, err = tutor.Send(context.Background(), "And neutrons?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	drain(t, ch)

	hist := tutor.History()
	if len(hist) != 4 {
		t.Fatalf("history length = %d, want 4", len(hist))
	}
	if hist[1].Role != llm.RoleAssistant || hist[1].Content != "Protons are positive." {
		t.Errorf("hist[1] = %+v", hist[1])
	}

	// Second request must carry the earlier turns.
	req := mock.Calls[1]
	if len(req.Messages) != 3 {
		t.Fatalf("second request messages = %d, want 3", len(req.Messages))
	}
	if req.Messages[0].Content != "Tell me about protons" {
		t.Errorf("messages[0] = %+v", req.Messages[0])
	}
	if req.System == "" {
		t.Error("system prompt missing")
	}
}

func TestTutorRejectsEmptyMessage(t *testing.T) {
	tutor := NewTutor(llm.NewMockProvider(), DefaultConfig())
	if _, err := tutor.Send(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank message")
	}
}

func TestTutorFailedStreamLeavesHistory(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: Stream errors out
	tutor := NewTutor(mock, DefaultConfig())

	if _, err := tutor.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error from empty provider")
	}
	if len(tutor.History()) != 0 {
		t.Errorf("history = %d entries, want 0 after failure", len(tutor.History()))
	}
}

func TestTutorReset(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Chunks: []string{"hi"}})
	tutor := NewTutor(mock, DefaultConfig())

	ch, err := tutor.Send(context.Background(), "hi cat")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	drain(t, ch)

	tutor.Reset()
	if len(tutor.History()) != 0 {
		t.Error("history not cleared")
	}
}
