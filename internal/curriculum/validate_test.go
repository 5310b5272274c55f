package curriculum

import (
	"strings"
	"testing"
)

func textSlide(content string) []Slide {
	return []Slide{{Kind: SlideText, Content: content}}
}

func TestValidateDetectsDuplicateLessonIDs(t *testing.T) {
	subjects := []Subject{{
		ID: "s", Name: "S",
		Units: []Unit{{
			ID: "u1", Title: "U1",
			Lessons: []Lesson{
				{ID: "a", Title: "A", Slides: textSlide("x")},
				{ID: "a", Title: "A again", Slides: textSlide("y")},
			},
		}},
	}}

	err := validateSubjects(subjects)
	if err == nil {
		t.Fatal("expected error for duplicate lesson ID")
	}
	if !strings.Contains(err.Error(), `duplicate lesson ID: "a"`) {
		t.Errorf("error = %v, want duplicate lesson ID mention", err)
	}
}

func TestValidateDetectsDanglingDependency(t *testing.T) {
	subjects := []Subject{{
		ID: "s", Name: "S",
		Units: []Unit{{
			ID: "u1", Title: "U1",
			Lessons: []Lesson{
				{ID: "a", Title: "A", Slides: textSlide("x"), Dependencies: []string{"ghost"}},
			},
		}},
	}}

	err := validateSubjects(subjects)
	if err == nil {
		t.Fatal("expected error for dangling dependency")
	}
	if !strings.Contains(err.Error(), `nonexistent dependency "ghost"`) {
		t.Errorf("error = %v, want dangling dependency mention", err)
	}
}

func TestValidateDetectsCycle(t *testing.T) {
	subjects := []Subject{{
		ID: "s", Name: "S",
		Units: []Unit{{
			ID: "u1", Title: "U1",
			Lessons: []Lesson{
				{ID: "a", Title: "A", Slides: textSlide("x"), Dependencies: []string{"b"}},
				{ID: "b", Title: "B", Slides: textSlide("y"), Dependencies: []string{"a"}},
			},
		}},
	}}

	err := validateSubjects(subjects)
	if err == nil {
		t.Fatal("expected error for dependency cycle")
	}
	if !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("error = %v, want cycle mention", err)
	}
}

func TestValidateDetectsInteractiveWithoutPayload(t *testing.T) {
	subjects := []Subject{{
		ID: "s", Name: "S",
		Units: []Unit{{
			ID: "u1", Title: "U1",
			Lessons: []Lesson{
				{ID: "a", Title: "A", Slides: []Slide{{Kind: SlideInteractive, Title: "Balance"}}},
			},
		}},
	}}

	err := validateSubjects(subjects)
	if err == nil {
		t.Fatal("expected error for interactive slide without payload")
	}
	if !strings.Contains(err.Error(), "interactive slide without payload") {
		t.Errorf("error = %v, want payload mention", err)
	}
}
