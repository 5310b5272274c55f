package practice

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

// Phase is the current state of a practice session.
type Phase int

const (
	PhaseActive  Phase = iota // serving questions
	PhaseSummary              // round finished, summary available
)

// Session state machine errors. These mark rejected preconditions — the
// caller treats them as disabled actions, never as learner-facing failures.
var (
	ErrEmptyAnswer     = errors.New("practice: answer is empty")
	ErrNotAnswered     = errors.New("practice: current question not answered")
	ErrAlreadyAnswered = errors.New("practice: current question already answered")
	ErrNoQuestion      = errors.New("practice: no current question")
	ErrNotInSummary    = errors.New("practice: session is not in summary")
	ErrNothingToRetry  = errors.New("practice: no wrong answers to retry")
)

// Session drives a learner through one practice run: a round of
// questions, an optional retry round over the wrong ones, and a final
// completion callback. Sessions are ephemeral — abandoning one has no
// side effects on stored progress.
type Session struct {
	// ID uniquely identifies this session for event logging.
	ID string

	// Title is the display name, e.g. the lesson title or "Unit 2 Review".
	Title string

	questions []Question
	index     int
	answered  []bool
	responses []Response
	correct   []bool
	phase     Phase

	// wrong accumulates this round's incorrectly answered questions,
	// deduplicated by prompt.
	wrong      []Question
	wrongSeen  map[string]bool
	roundTotal int

	// weakTopics collects explanations of wrong answers across the whole
	// session (all rounds), deduplicated by prompt.
	weakTopics []string
	weakSeen   map[string]bool

	// onComplete is invoked exactly once by Finish. Owned by the caller;
	// for first-pass lesson practice it applies the progress transition,
	// for reviews it returns to the dashboard.
	onComplete func()
}

// NewSession starts a practice session over the given questions.
// onComplete may be nil.
func NewSession(title string, questions []Question, onComplete func()) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		Title:      title,
		onComplete: onComplete,
		wrongSeen:  make(map[string]bool),
		weakSeen:   make(map[string]bool),
	}
	s.startRound(questions)
	return s
}

func (s *Session) startRound(questions []Question) {
	s.questions = questions
	s.index = 0
	s.answered = make([]bool, len(questions))
	s.responses = make([]Response, len(questions))
	s.correct = make([]bool, len(questions))
	s.wrong = nil
	s.wrongSeen = make(map[string]bool)
	s.roundTotal = len(questions)
	if len(questions) == 0 {
		// Nothing to practice; go straight to the summary.
		s.phase = PhaseSummary
	} else {
		s.phase = PhaseActive
	}
}

// Phase returns the session's current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Current returns the active question, or nil when the session is in
// its summary.
func (s *Session) Current() *Question {
	if s.phase != PhaseActive || s.index >= len(s.questions) {
		return nil
	}
	return &s.questions[s.index]
}

// Index returns the zero-based position of the current question and the
// round size, for progress display.
func (s *Session) Index() (current, total int) {
	return s.index, s.roundTotal
}

// Check grades the current question against resp and records the result.
// A wrong answer adds the question to the retry list and its explanation
// to the session's weak topics, at most once per prompt. A question is
// graded once; a second Check without an Advance is rejected, so a miss
// cannot be re-answered into the score.
func (s *Session) Check(resp Response) (bool, error) {
	if s.phase != PhaseActive {
		return false, ErrNoQuestion
	}
	if s.answered[s.index] {
		return false, ErrAlreadyAnswered
	}
	if resp.IsEmpty() {
		return false, ErrEmptyAnswer
	}

	q := &s.questions[s.index]
	ok := Evaluate(q, resp)
	s.answered[s.index] = true
	s.responses[s.index] = resp
	s.correct[s.index] = ok

	if !ok {
		if !s.weakSeen[q.Prompt] {
			s.weakSeen[q.Prompt] = true
			s.weakTopics = append(s.weakTopics, q.Explanation)
		}
		if !s.wrongSeen[q.Prompt] {
			s.wrongSeen[q.Prompt] = true
			s.wrong = append(s.wrong, *q)
		}
	}
	return ok, nil
}

// Advance moves to the next question, or to the summary when the current
// question was the last. The current question must have been answered.
func (s *Session) Advance() error {
	if s.phase != PhaseActive {
		return ErrNoQuestion
	}
	if !s.answered[s.index] {
		return ErrNotAnswered
	}
	if s.index < len(s.questions)-1 {
		s.index++
		return nil
	}
	s.phase = PhaseSummary
	return nil
}

// Retry restarts the session over exactly the questions answered wrong
// this round, discarding prior answers. Valid only from the summary with
// a non-empty wrong list.
func (s *Session) Retry() error {
	if s.phase != PhaseSummary {
		return ErrNotInSummary
	}
	if len(s.wrong) == 0 {
		return ErrNothingToRetry
	}
	s.startRound(s.wrong)
	return nil
}

// Finish completes the session, invoking the completion callback.
// Valid only from the summary.
func (s *Session) Finish() error {
	if s.phase != PhaseSummary {
		return ErrNotInSummary
	}
	if s.onComplete != nil {
		s.onComplete()
	}
	return nil
}

// WeakTopics returns the explanations of every question answered wrong
// during this session, deduplicated, in first-miss order.
func (s *Session) WeakTopics() []string {
	out := make([]string, len(s.weakTopics))
	copy(out, s.weakTopics)
	return out
}

// Summary describes the outcome of the most recent round.
type Summary struct {
	Score   int // percentage, 0-100
	Total   int
	Correct int
	Wrong   []Question
}

// Summarize builds the summary for the current round. Score is 100 for
// an empty round.
func (s *Session) Summarize() Summary {
	wrong := make([]Question, len(s.wrong))
	copy(wrong, s.wrong)

	correct := 0
	for _, ok := range s.correct {
		if ok {
			correct++
		}
	}
	score := 100
	if s.roundTotal > 0 {
		score = int(math.Round(100 * float64(correct) / float64(s.roundTotal)))
	}
	return Summary{
		Score:   score,
		Total:   s.roundTotal,
		Correct: correct,
		Wrong:   wrong,
	}
}
