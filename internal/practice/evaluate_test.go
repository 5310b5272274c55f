package practice

import "testing"

func TestEvaluateMultipleChoice(t *testing.T) {
	q := &Question{
		Kind:    KindMultipleChoice,
		Prompt:  "Which particle carries a negative charge?",
		Options: []string{"Proton", "Neutron", "Electron"},
		Answer:  []string{"Electron"},
	}

	tests := []struct {
		name string
		resp Response
		want bool
	}{
		{"exact match", Response{Text: "Electron"}, true},
		{"case insensitive", Response{Text: "electron"}, true},
		{"wrong option", Response{Text: "Proton"}, false},
		{"empty", Response{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, tt.resp); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.resp.Text, got, tt.want)
			}
		})
	}
}

func TestEvaluateFillInTheBlankTypoTolerance(t *testing.T) {
	// "electron" has length 8, so the typo budget is max(1, 8/5) = 1.
	q := &Question{
		Kind:   KindFillInTheBlank,
		Prompt: "The ___ was discovered by J.J. Thomson.",
		Answer: []string{"electron"},
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact", "electron", true},
		{"trimmed and case folded", "  Electron ", true},
		{"one substitution", "elektron", true},
		{"one insertion", "electrron", true},
		{"one deletion", "eletron", true},
		{"two edits rejected", "elecktran", false},
		{"different word", "proton", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, Response{Text: tt.text}); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEvaluateFillInTheBlankAlternatives(t *testing.T) {
	q := &Question{
		Kind:         KindFillInTheBlank,
		Prompt:       "One mole contains 6.022 x 10^23 particles, a value known as ___ number.",
		Answer:       []string{"Avogadro's"},
		Alternatives: []string{"Avogadros", "avogadro"},
	}

	if !Evaluate(q, Response{Text: "avogadros"}) {
		t.Error("alternative answer rejected")
	}
	if !Evaluate(q, Response{Text: "avogadro"}) {
		t.Error("second alternative rejected")
	}
	// Typo tolerance applies to alternatives too, with the threshold
	// still computed from the primary answer.
	if !Evaluate(q, Response{Text: "avogadrus"}) {
		t.Error("near-miss on alternative rejected")
	}
}

func TestEvaluateSelectAll(t *testing.T) {
	q := &Question{
		Kind:    KindSelectAllApplies,
		Prompt:  "Select all signs of a chemical change.",
		Options: []string{"A", "B", "C", "D"},
		Answer:  []string{"A", "C"},
	}

	tests := []struct {
		name     string
		selected []string
		want     bool
	}{
		{"order independent", []string{"C", "A"}, true},
		{"subset rejected", []string{"A"}, false},
		{"superset rejected", []string{"A", "B", "C"}, false},
		{"wrong set same size", []string{"B", "D"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, Response{Selected: tt.selected}); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestEvaluateMalformed(t *testing.T) {
	// A question with no canonical answer can never be answered correctly.
	q := &Question{Kind: KindMultipleChoice, Prompt: "broken"}
	if Evaluate(q, Response{Text: "anything"}) {
		t.Error("question without answer graded correct")
	}

	// Unknown kinds evaluate to false rather than erroring.
	q2 := &Question{Kind: "essay", Prompt: "?", Answer: []string{"x"}}
	if Evaluate(q2, Response{Text: "x"}) {
		t.Error("unknown question kind graded correct")
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"electron", "elektron", 1},
		{"flask", "flasks", 1},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEvaluateFillInTheBlankNonASCII(t *testing.T) {
	// "ión" is 3 runes (5 bytes): the typo budget is max(1, 3/5) = 1,
	// and swapping the accented rune counts as one edit, not two.
	q := &Question{
		Kind:   KindFillInTheBlank,
		Prompt: "Un átomo cargado es un ___.",
		Answer: []string{"ión"},
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact", "ión", true},
		{"accent dropped is one edit", "ion", true},
		{"one deletion", "ió", true},
		{"two edits rejected", "iom", false},
		{"unrelated word", "sal", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, Response{Text: tt.text}); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
