package curriculum

import (
	"strings"
	"testing"
)

func TestSeedCatalogIsValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestGetLesson(t *testing.T) {
	l, err := GetLesson("l1-1")
	if err != nil {
		t.Fatalf("GetLesson(l1-1): %v", err)
	}
	if l.Title != "SI Units" {
		t.Errorf("Title = %q, want %q", l.Title, "SI Units")
	}
	if len(l.Dependencies) != 0 {
		t.Errorf("l1-1 should have no dependencies, got %v", l.Dependencies)
	}

	if _, err := GetLesson("no-such-lesson"); err == nil {
		t.Error("expected error for unknown lesson ID")
	}
}

func TestUnitOf(t *testing.T) {
	u, err := UnitOf("l2-3")
	if err != nil {
		t.Fatalf("UnitOf(l2-3): %v", err)
	}
	if u.ID != "unit2" {
		t.Errorf("unit = %q, want unit2", u.ID)
	}
}

func TestIsUnlocked(t *testing.T) {
	tests := []struct {
		name      string
		lessonID  string
		completed map[string]bool
		want      bool
	}{
		{"root lesson always unlocked", "l1-1", nil, true},
		{"dependency missing", "l1-2", map[string]bool{}, false},
		{"dependency satisfied", "l1-2", map[string]bool{"l1-1": true}, true},
		{"unknown lesson is locked", "nope", map[string]bool{"l1-1": true}, false},
		{"extra completions irrelevant", "l1-2", map[string]bool{"l1-1": true, "l3-1": true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnlocked(tt.lessonID, tt.completed); got != tt.want {
				t.Errorf("IsUnlocked(%q) = %v, want %v", tt.lessonID, got, tt.want)
			}
		})
	}
}

// Unlocking must be monotonic: once a lesson's dependencies are completed,
// completing more lessons can never re-lock it.
func TestUnlockMonotonicity(t *testing.T) {
	completed := make(map[string]bool)
	for _, l := range AllLessons() {
		completed[l.ID] = true
	}
	for _, l := range AllLessons() {
		if !IsUnlocked(l.ID, completed) {
			t.Errorf("lesson %q locked with every lesson completed", l.ID)
		}
	}
}

func TestLessonContext(t *testing.T) {
	l, err := GetLesson("l6-2")
	if err != nil {
		t.Fatal(err)
	}
	ctx := LessonContext(l)
	if ctx == "" {
		t.Fatal("empty lesson context")
	}
	// The interactive slides must contribute their equations.
	for _, want := range []string{"Law of Conservation of Mass", "H2 + O2 -> H2O", "CH4 + O2 -> CO2 + H2O"} {
		if !strings.Contains(ctx, want) {
			t.Errorf("context missing %q", want)
		}
	}
}

func TestUnlockedLessons(t *testing.T) {
	got := UnlockedLessons(map[string]bool{})
	// Only the two root lessons (one per subject) are unlocked initially.
	if len(got) != 2 {
		t.Fatalf("unlocked = %d lessons, want 2", len(got))
	}
	if got[0].ID != "l1-1" || got[1].ID != "a-l1-1" {
		t.Errorf("unlocked = [%s %s], want [l1-1 a-l1-1]", got[0].ID, got[1].ID)
	}
}
