package questgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chemcat/chemcat/internal/llm"
	"github.com/chemcat/chemcat/internal/practice"
)

// Config tunes question generation.
type Config struct {
	// Count is the number of questions per lesson. Unit reviews ask for
	// more.
	Count       int
	UnitCount   int
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults.
func DefaultConfig() Config {
	return Config{
		Count:       5,
		UnitCount:   10,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// GenerateInput describes what to generate questions for.
type GenerateInput struct {
	// Title is the lesson or review title, for the prompt only.
	Title string

	// Material is the study text the questions must be answerable from.
	Material string

	// TopicHints lists topics the learner got wrong before; generation
	// leans into them.
	TopicHints []string

	// Count overrides the configured question count when positive.
	Count int
}

// Generator produces practice questions from lesson material using an
// LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a question generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

const questionSystemPrompt = `You are ChemCat, a friendly cat who tutors high-school chemistry and anatomy. You write practice questions that test understanding of the provided study material, never trivia outside it.`

// Generate produces a validated set of practice questions.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) ([]practice.Question, error) {
	if llm.PurposeFrom(ctx) == llm.PurposeUnknown {
		ctx = llm.WithPurpose(ctx, "question-gen")
	}

	count := input.Count
	if count <= 0 {
		count = g.cfg.Count
	}

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionUserMessage(input, count)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	questions, err := parseQuestions(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}
	return questions, nil
}

func buildQuestionUserMessage(input GenerateInput, count int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n\n", input.Title))
	b.WriteString("Study material:\n")
	b.WriteString(input.Material)
	b.WriteString("\n")

	if len(input.TopicHints) > 0 {
		b.WriteString("\nThe learner previously struggled with:\n")
		for _, h := range input.TopicHints {
			b.WriteString(fmt.Sprintf("- %s\n", h))
		}
		b.WriteString("Weight the questions toward these weak spots.\n")
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Create exactly %d practice questions:
1. Mix the three question types; at least one multiple-choice and one fill-in-the-blank.
2. Every question must be answerable from the study material alone.
3. Multiple-choice and select-all questions need 3-5 options including the answer(s).
4. Fill-in-the-blank questions use ___ for the blank and a one-or-two-word answer; list common alternative spellings in alternatives.
5. Select-all questions have two or more correct answers.
6. Each explanation teaches why the answer is right in one or two sentences.`, count))

	return b.String()
}

type questionOutput struct {
	Type         string   `json:"type"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Answer       []string `json:"answer"`
	Alternatives []string `json:"alternatives"`
	Explanation  string   `json:"explanation"`
}

type questionsOutput struct {
	Questions []questionOutput `json:"questions"`
}

func parseQuestions(raw json.RawMessage) ([]practice.Question, error) {
	var out questionsOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("empty question set")
	}

	questions := make([]practice.Question, 0, len(out.Questions))
	for i, q := range out.Questions {
		if len(q.Answer) == 0 {
			return nil, fmt.Errorf("question %d has no answer", i)
		}
		questions = append(questions, practice.Question{
			Kind:         practice.QuestionKind(q.Type),
			Prompt:       q.Question,
			Options:      q.Options,
			Answer:       q.Answer,
			Alternatives: q.Alternatives,
			Explanation:  q.Explanation,
		})
	}
	return questions, nil
}
