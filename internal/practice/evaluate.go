package practice

import (
	"slices"
	"strings"
)

// Evaluate grades a learner's response against the question's canonical
// answer. Returns true if the response is correct.
//
// Grading rules:
// - An empty response is always wrong
// - Multiple choice: case-insensitive match against the single answer
// - Fill-in-the-blank: trimmed, lower-cased match against the answer or
//   any alternative, tolerating small typos via edit distance
// - Select-all: the selected set must equal the answer set exactly
//
// Malformed responses (e.g. selections on a fill-in-the-blank question)
// simply evaluate to false; Evaluate never errors.
func Evaluate(q *Question, resp Response) bool {
	if resp.IsEmpty() || len(q.Answer) == 0 {
		return false
	}

	switch q.Kind {
	case KindMultipleChoice:
		return strings.EqualFold(resp.Text, q.Answer[0])

	case KindFillInTheBlank:
		return checkFillInTheBlank(resp.Text, q)

	case KindSelectAllApplies:
		return checkSelectAll(resp.Selected, q.Answer)

	default:
		return false
	}
}

// checkFillInTheBlank accepts exact matches against the canonical answer
// or any alternative, then falls back to a typo check. The typo budget is
// derived from the primary answer's length: one edit per five characters,
// with a minimum of one.
func checkFillInTheBlank(text string, q *Question) bool {
	got := strings.ToLower(strings.TrimSpace(text))
	if got == "" {
		return false
	}

	candidates := make([]string, 0, 1+len(q.Alternatives))
	candidates = append(candidates, strings.ToLower(q.Answer[0]))
	for _, alt := range q.Alternatives {
		candidates = append(candidates, strings.ToLower(alt))
	}

	if slices.Contains(candidates, got) {
		return true
	}

	threshold := max(1, len([]rune(q.Answer[0]))/5)
	for _, cand := range candidates {
		if levenshtein(got, cand) <= threshold {
			return true
		}
	}
	return false
}

// checkSelectAll requires set equality: same size and, after sorting both
// sides lexicographically, positional equality.
func checkSelectAll(selected, answer []string) bool {
	if len(selected) != len(answer) {
		return false
	}
	gotSorted := slices.Clone(selected)
	wantSorted := slices.Clone(answer)
	slices.Sort(gotSorted)
	slices.Sort(wantSorted)
	return slices.Equal(gotSorted, wantSorted)
}

// levenshtein returns the edit distance between a and b with unit cost
// for insertion, deletion, and substitution, counted per rune so an
// accented character is one edit, not several. Two-row rolling
// computation.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, min(curr[j-1]+1, prev[j]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
