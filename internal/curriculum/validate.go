package curriculum

import (
	"fmt"
	"strings"
)

// validateSubjects performs all structural checks on the given subjects.
// Returns a combined error describing all problems found, or nil if valid.
func validateSubjects(subjects []Subject) error {
	var errs []string

	var lessons []Lesson
	idSet := make(map[string]bool)
	unitSet := make(map[string]bool)

	for _, s := range subjects {
		for _, u := range s.Units {
			if unitSet[u.ID] {
				errs = append(errs, fmt.Sprintf("duplicate unit ID: %q", u.ID))
			}
			unitSet[u.ID] = true
			if len(u.Lessons) == 0 {
				errs = append(errs, fmt.Sprintf("unit %q has no lessons", u.ID))
			}
			for _, l := range u.Lessons {
				if idSet[l.ID] {
					errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
				}
				idSet[l.ID] = true
				lessons = append(lessons, l)
			}
		}
	}

	// Check for dangling dependencies
	for _, l := range lessons {
		for _, dep := range l.Dependencies {
			if !idSet[dep] {
				errs = append(errs, fmt.Sprintf("lesson %q references nonexistent dependency %q", l.ID, dep))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(lessons))
	adjList := make(map[string][]string)
	for _, l := range lessons {
		inDegree[l.ID] = len(l.Dependencies)
		for _, dep := range l.Dependencies {
			adjList[dep] = append(adjList[dep], l.ID)
		}
	}

	var queue []string
	for _, l := range lessons {
		if inDegree[l.ID] == 0 {
			queue = append(queue, l.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adjList[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if visited < len(lessons) {
		var cycleNodes []string
		for _, l := range lessons {
			if inDegree[l.ID] > 0 {
				cycleNodes = append(cycleNodes, l.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving lessons: %s", strings.Join(cycleNodes, ", ")))
	}

	// Every lesson needs content, and interactive slides need a payload.
	for _, l := range lessons {
		if len(l.Slides) == 0 {
			errs = append(errs, fmt.Sprintf("lesson %q has no slides", l.ID))
		}
		for i, sl := range l.Slides {
			if sl.Kind == SlideInteractive && sl.Interactive == nil {
				errs = append(errs, fmt.Sprintf("lesson %q slide %d: interactive slide without payload", l.ID, i))
			}
			if sl.Kind != SlideInteractive && sl.Content == "" {
				errs = append(errs, fmt.Sprintf("lesson %q slide %d: empty content", l.ID, i))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
