package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/chemcat/chemcat/internal/llm"
)

const systemPrompt = `You are ChemCat, a cheerful cat who tutors chemistry and anatomy. You explain concepts clearly and briefly, use everyday analogies, and sprinkle in the occasional cat pun. You never give away practice answers outright; you guide the learner to them. Keep answers under 150 words unless the learner asks for more depth.`

// Greeting is the tutor's opening message, shown before the learner
// says anything.
const Greeting = "Meow there! I'm ChemCat, your purr-sonal science tutor. Ask me anything about your lessons!"

// Config tunes tutor responses.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns tutor defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// Tutor is a stateful chat session with the ChemCat persona. It keeps
// the transcript so follow-up questions have context. Not safe for
// concurrent use; a session belongs to one learner.
type Tutor struct {
	provider llm.Provider
	cfg      Config
	history  []llm.Message
}

// NewTutor starts a chat session.
func NewTutor(provider llm.Provider, cfg Config) *Tutor {
	return &Tutor{provider: provider, cfg: cfg}
}

// Send streams the tutor's reply to text. The user turn and the
// assembled reply are appended to the history once the stream drains;
// a failed stream leaves the history unchanged so the learner can
// resend.
func (t *Tutor) Send(ctx context.Context, text string) (<-chan llm.Chunk, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("chat: empty message")
	}

	ctx = llm.WithPurpose(ctx, "chat")

	messages := make([]llm.Message, 0, len(t.history)+1)
	messages = append(messages, t.history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: text})

	ch, err := t.provider.Stream(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    messages,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}

	out := make(chan llm.Chunk)
	go func() {
		defer close(out)
		var reply strings.Builder
		failed := false
		for chunk := range ch {
			if chunk.Err != nil {
				failed = true
			} else {
				reply.WriteString(chunk.Text)
			}
			out <- chunk
		}
		if !failed {
			t.history = append(t.history,
				llm.Message{Role: llm.RoleUser, Content: text},
				llm.Message{Role: llm.RoleAssistant, Content: reply.String()},
			)
		}
	}()
	return out, nil
}

// History returns a copy of the transcript so far.
func (t *Tutor) History() []llm.Message {
	out := make([]llm.Message, len(t.history))
	copy(out, t.history)
	return out
}

// Reset clears the transcript.
func (t *Tutor) Reset() {
	t.history = nil
}
