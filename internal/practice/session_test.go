package practice

import (
	"errors"
	"testing"
)

func mcQuestion(prompt, answer string) Question {
	return Question{
		Kind:        KindMultipleChoice,
		Prompt:      prompt,
		Options:     []string{answer, "wrong"},
		Answer:      []string{answer},
		Explanation: "explanation for " + prompt,
	}
}

func answerCurrent(t *testing.T, s *Session, correctly bool) {
	t.Helper()
	q := s.Current()
	if q == nil {
		t.Fatal("no current question")
	}
	text := q.Answer[0]
	if !correctly {
		text = "wrong"
	}
	ok, err := s.Check(Response{Text: text})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ok != correctly {
		t.Fatalf("Check = %v, want %v", ok, correctly)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
}

func TestSessionRetryRound(t *testing.T) {
	questions := []Question{
		mcQuestion("q1", "a1"),
		mcQuestion("q2", "a2"),
		mcQuestion("q3", "a3"),
		mcQuestion("q4", "a4"),
		mcQuestion("q5", "a5"),
	}
	s := NewSession("Atoms", questions, nil)

	// First round: miss q2 and q4.
	answerCurrent(t, s, true)
	answerCurrent(t, s, false)
	answerCurrent(t, s, true)
	answerCurrent(t, s, false)
	answerCurrent(t, s, true)

	if s.Phase() != PhaseSummary {
		t.Fatalf("phase = %v, want summary", s.Phase())
	}
	sum := s.Summarize()
	if sum.Score != 60 || sum.Correct != 3 || sum.Total != 5 {
		t.Errorf("summary = %+v, want score 60, 3/5", sum)
	}
	if len(sum.Wrong) != 2 || sum.Wrong[0].Prompt != "q2" || sum.Wrong[1].Prompt != "q4" {
		t.Errorf("wrong list = %v", sum.Wrong)
	}

	// Retry round covers exactly the missed questions.
	if err := s.Retry(); err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if _, total := s.Index(); total != 2 {
		t.Fatalf("retry round size = %d, want 2", total)
	}
	answerCurrent(t, s, true)
	answerCurrent(t, s, true)

	sum = s.Summarize()
	if sum.Score != 100 || len(sum.Wrong) != 0 {
		t.Errorf("retry summary = %+v, want score 100 and empty wrong list", sum)
	}

	// Weak topics keep the first-round misses even after a clean retry.
	topics := s.WeakTopics()
	if len(topics) != 2 {
		t.Errorf("weak topics = %v, want 2 entries", topics)
	}
}

func TestSessionScoreRounding(t *testing.T) {
	questions := []Question{
		mcQuestion("q1", "a1"),
		mcQuestion("q2", "a2"),
		mcQuestion("q3", "a3"),
	}
	s := NewSession("Bonds", questions, nil)
	answerCurrent(t, s, true)
	answerCurrent(t, s, false)
	answerCurrent(t, s, true)

	// 2/3 rounds to 67, not truncated to 66.
	if sum := s.Summarize(); sum.Score != 67 {
		t.Errorf("score = %d, want 67", sum.Score)
	}
}

func TestSessionEmptyRound(t *testing.T) {
	s := NewSession("Empty", nil, nil)
	if s.Phase() != PhaseSummary {
		t.Fatalf("phase = %v, want summary", s.Phase())
	}
	if sum := s.Summarize(); sum.Score != 100 || sum.Total != 0 {
		t.Errorf("summary = %+v, want score 100, total 0", sum)
	}
	if err := s.Retry(); !errors.Is(err, ErrNothingToRetry) {
		t.Errorf("Retry = %v, want ErrNothingToRetry", err)
	}
}

func TestSessionPreconditions(t *testing.T) {
	s := NewSession("Gases", []Question{mcQuestion("q1", "a1")}, nil)

	if err := s.Advance(); !errors.Is(err, ErrNotAnswered) {
		t.Errorf("Advance before Check = %v, want ErrNotAnswered", err)
	}
	if _, err := s.Check(Response{}); !errors.Is(err, ErrEmptyAnswer) {
		t.Errorf("Check with empty response = %v, want ErrEmptyAnswer", err)
	}
	if err := s.Retry(); !errors.Is(err, ErrNotInSummary) {
		t.Errorf("Retry while active = %v, want ErrNotInSummary", err)
	}
	if err := s.Finish(); !errors.Is(err, ErrNotInSummary) {
		t.Errorf("Finish while active = %v, want ErrNotInSummary", err)
	}

	answerCurrent(t, s, true)

	if _, err := s.Check(Response{Text: "a1"}); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("Check in summary = %v, want ErrNoQuestion", err)
	}
	if s.Current() != nil {
		t.Error("Current in summary should be nil")
	}
}

func TestSessionFinishCallback(t *testing.T) {
	var calls int
	s := NewSession("Acids", []Question{mcQuestion("q1", "a1")}, func() { calls++ })
	answerCurrent(t, s, true)

	if err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if calls != 1 {
		t.Errorf("onComplete calls = %d, want 1", calls)
	}
}

func TestSessionWrongDedupByPrompt(t *testing.T) {
	// The same prompt missed twice contributes a single retry entry.
	questions := []Question{
		mcQuestion("dup", "a1"),
		mcQuestion("dup", "a1"),
	}
	s := NewSession("Dedup", questions, nil)
	answerCurrent(t, s, false)
	answerCurrent(t, s, false)

	if sum := s.Summarize(); len(sum.Wrong) != 1 {
		t.Errorf("wrong list has %d entries, want 1", len(sum.Wrong))
	}
	if topics := s.WeakTopics(); len(topics) != 1 {
		t.Errorf("weak topics has %d entries, want 1", len(topics))
	}
}

func TestSessionRejectsSecondCheck(t *testing.T) {
	s := NewSession("t", []Question{
		mcQuestion("q1", "a1"),
		mcQuestion("q2", "a2"),
	}, nil)

	// Miss q1, then try to grade it again with the right answer.
	if ok, err := s.Check(Response{Text: "wrong"}); err != nil || ok {
		t.Fatalf("Check = (%v, %v), want graded wrong", ok, err)
	}
	if _, err := s.Check(Response{Text: "a1"}); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("second Check err = %v, want ErrAlreadyAnswered", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	answerCurrent(t, s, true)

	sum := s.Summarize()
	if sum.Score != 50 || sum.Correct != 1 {
		t.Errorf("summary = %+v, want score 50 with 1 correct", sum)
	}
	if len(sum.Wrong) != 1 || sum.Wrong[0].Prompt != "q1" {
		t.Errorf("wrong list = %+v, want q1", sum.Wrong)
	}
}
