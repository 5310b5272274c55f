package practice

// QuestionKind identifies how a question is answered.
type QuestionKind string

const (
	KindMultipleChoice   QuestionKind = "multiple-choice"
	KindFillInTheBlank   QuestionKind = "fill-in-the-blank"
	KindSelectAllApplies QuestionKind = "select-all-that-apply"
)

// Question is a single practice question, immutable once generated.
type Question struct {
	// Kind indicates how the learner answers this question.
	Kind QuestionKind

	// Prompt is the question text. Fill-in-the-blank prompts use "___"
	// for the blank.
	Prompt string

	// Options holds the choices for multiple-choice and select-all
	// questions. Empty for fill-in-the-blank.
	Options []string

	// Answer is the canonical correct answer. A single element for
	// multiple-choice and fill-in-the-blank; the full correct subset
	// for select-all-that-apply.
	Answer []string

	// Alternatives lists acceptable alternative answers for
	// fill-in-the-blank questions.
	Alternatives []string

	// Explanation is shown after the learner answers, and doubles as
	// the weak-topic record when the answer was wrong.
	Explanation string
}

// Response is a learner's answer to a question. Text carries the answer
// for multiple-choice and fill-in-the-blank; Selected carries the chosen
// options for select-all-that-apply.
type Response struct {
	Text     string
	Selected []string
}

// IsEmpty reports whether the response carries no answer at all.
func (r Response) IsEmpty() bool {
	return r.Text == "" && len(r.Selected) == 0
}
