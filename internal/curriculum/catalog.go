package curriculum

import (
	"fmt"
	"slices"
	"strings"
)

// catalog holds all subjects with precomputed lesson indices.
type catalog struct {
	subjects   []Subject
	subjectsID map[string]*Subject
	lessonByID map[string]*Lesson
	unitByID   map[string]*Unit
	unitOfLess map[string]string // lesson ID → unit ID
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog and its indices from static subject data.
func buildCatalog(subjects []Subject) *catalog {
	ct := &catalog{
		subjects:   subjects,
		subjectsID: make(map[string]*Subject, len(subjects)),
		lessonByID: make(map[string]*Lesson),
		unitByID:   make(map[string]*Unit),
		unitOfLess: make(map[string]string),
	}
	for i := range ct.subjects {
		s := &ct.subjects[i]
		ct.subjectsID[s.ID] = s
		for j := range s.Units {
			u := &s.Units[j]
			ct.unitByID[u.ID] = u
			for k := range u.Lessons {
				l := &u.Lessons[k]
				ct.lessonByID[l.ID] = l
				ct.unitOfLess[l.ID] = u.ID
			}
		}
	}
	return ct
}

// Subjects returns all subjects in display order.
func Subjects() []Subject {
	return slices.Clone(c.subjects)
}

// GetSubject returns a subject by ID, or error if not found.
func GetSubject(id string) (Subject, error) {
	s, ok := c.subjectsID[id]
	if !ok {
		return Subject{}, fmt.Errorf("subject not found: %q", id)
	}
	return *s, nil
}

// GetLesson returns a lesson by ID, or error if not found.
func GetLesson(id string) (Lesson, error) {
	l, ok := c.lessonByID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return *l, nil
}

// GetUnit returns a unit by ID, or error if not found.
func GetUnit(id string) (Unit, error) {
	u, ok := c.unitByID[id]
	if !ok {
		return Unit{}, fmt.Errorf("unit not found: %q", id)
	}
	return *u, nil
}

// UnitOf returns the unit containing the given lesson, or error if the
// lesson is unknown.
func UnitOf(lessonID string) (Unit, error) {
	uid, ok := c.unitOfLess[lessonID]
	if !ok {
		return Unit{}, fmt.Errorf("lesson not found: %q", lessonID)
	}
	return *c.unitByID[uid], nil
}

// AllLessons returns every lesson across all subjects, in catalog order.
func AllLessons() []Lesson {
	var out []Lesson
	for i := range c.subjects {
		for j := range c.subjects[i].Units {
			out = append(out, c.subjects[i].Units[j].Lessons...)
		}
	}
	return out
}

// IsUnlocked reports whether a lesson is currently accessible: every
// dependency must be in the completed set. Unknown lesson IDs are
// treated as permanently locked rather than raising.
func IsUnlocked(lessonID string, completed map[string]bool) bool {
	l, ok := c.lessonByID[lessonID]
	if !ok {
		return false
	}
	for _, dep := range l.Dependencies {
		if !completed[dep] {
			return false
		}
	}
	return true
}

// UnlockedLessons returns all lessons accessible given the completed set,
// in catalog order.
func UnlockedLessons(completed map[string]bool) []Lesson {
	var out []Lesson
	for _, l := range AllLessons() {
		if IsUnlocked(l.ID, completed) {
			out = append(out, l)
		}
	}
	return out
}

// LessonContext concatenates a lesson's slide titles and content into the
// plain-text context string fed to question generation and the tutor.
// Interactive slides contribute their equation so the generator can ask
// about it.
func LessonContext(l Lesson) string {
	var b strings.Builder
	for i, s := range l.Slides {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if s.Title != "" {
			b.WriteString("Title: ")
			b.WriteString(s.Title)
			b.WriteString("\n")
		}
		if s.Interactive != nil {
			b.WriteString("Interactive activity: balance the equation ")
			b.WriteString(s.Interactive.Equation)
		} else {
			b.WriteString(s.Content)
		}
	}
	return b.String()
}

// UnitContext concatenates the contexts of every lesson in a unit,
// used for unit-review question generation.
func UnitContext(u Unit) string {
	var b strings.Builder
	for i, l := range u.Lessons {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Lesson: ")
		b.WriteString(l.Title)
		b.WriteString("\n")
		b.WriteString(LessonContext(l))
	}
	return b.String()
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateSubjects(c.subjects)
}
