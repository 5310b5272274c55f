package questgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chemcat/chemcat/internal/curriculum"
	"github.com/chemcat/chemcat/internal/llm"
	"github.com/chemcat/chemcat/internal/practice"
)

func lessonFixture(t *testing.T) curriculum.Lesson {
	t.Helper()
	l, err := curriculum.GetLesson("l1-1")
	if err != nil {
		t.Fatalf("lesson fixture: %v", err)
	}
	return l
}

const cannedQuestions = `{
	"questions": [
		{
			"type": "multiple-choice",
			"question": "Which particle has no charge?",
			"options": ["Proton", "Neutron", "Electron"],
			"answer": ["Neutron"],
			"explanation": "Neutrons are electrically neutral."
		},
		{
			"type": "fill-in-the-blank",
			"question": "The smallest unit of an element is the ___.",
			"answer": ["atom"],
			"alternatives": ["atoms"],
			"explanation": "Atoms are the basic building blocks of matter."
		}
	]
}`

func TestGeneratorGenerate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
	)
	gen := NewGenerator(mock, DefaultConfig())

	questions, err := gen.Generate(context.Background(), GenerateInput{
		Title:      "Atomic Structure",
		Material:   "Title: Atoms\nAtoms consist of protons, neutrons, and electrons.",
		TopicHints: []string{"Neutrons are electrically neutral."},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Kind != practice.KindMultipleChoice {
		t.Errorf("kind = %q", questions[0].Kind)
	}
	if questions[1].Answer[0] != "atom" || questions[1].Alternatives[0] != "atoms" {
		t.Errorf("fill-in-the-blank = %+v", questions[1])
	}

	// The prompt carries the material, the hints, and the schema.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuestionsSchema {
		t.Error("request did not carry the questions schema")
	}
	userMsg := req.Messages[0].Content
	if !strings.Contains(userMsg, "Atoms consist of protons") {
		t.Error("material missing from prompt")
	}
	if !strings.Contains(userMsg, "previously struggled") {
		t.Error("topic hints missing from prompt")
	}
}

func TestGeneratorCountOverride(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
	)
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Title:    "Review",
		Material: "stuff",
		Count:    10,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "exactly 10 practice questions") {
		t.Error("count override missing from prompt")
	}
}

func TestGeneratorRejectsEmptySet(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Title: "t", Material: "m"})
	if err == nil {
		t.Fatal("expected error for empty question set")
	}
}

func TestGeneratorRejectsAnswerlessQuestion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[{"type":"multiple-choice","question":"?","answer":[],"explanation":"e"}]}`)},
	)
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Title: "t", Material: "m"})
	if err == nil {
		t.Fatal("expected error for question without answer")
	}
}

func TestServiceUsesLessonMaterial(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(cannedQuestions)},
	)
	svc := NewService(NewGenerator(mock, DefaultConfig()), DefaultConfig())

	lessons := lessonFixture(t)
	_, err := svc.ForLesson(context.Background(), lessons, nil, false)
	if err != nil {
		t.Fatalf("ForLesson: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, lessons.Title) {
		t.Error("lesson title missing from prompt")
	}

	// Second request is served from the cache.
	_, err = svc.ForLesson(context.Background(), lessons, nil, false)
	if err != nil {
		t.Fatalf("ForLesson (cached): %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}
