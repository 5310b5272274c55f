package questgen

import (
	"context"

	"github.com/chemcat/chemcat/internal/curriculum"
	"github.com/chemcat/chemcat/internal/llm"
	"github.com/chemcat/chemcat/internal/practice"
)

// Service combines the generator with the per-key cache. All question
// requests in the app go through here.
type Service struct {
	gen   *Generator
	cache *Cache
	cfg   Config
}

// NewService creates a question service.
func NewService(gen *Generator, cfg Config) *Service {
	return &Service{
		gen:   gen,
		cache: NewCache(),
		cfg:   cfg,
	}
}

// ForLesson returns the question set for a lesson, generating it on
// first use. topicHints bias generation toward the learner's weak
// topics. force regenerates even when a set is cached.
func (s *Service) ForLesson(ctx context.Context, l curriculum.Lesson, topicHints []string, force bool) ([]practice.Question, error) {
	return s.cache.GetOrGenerate(ctx, LessonKey(l.ID), force, func(ctx context.Context) ([]practice.Question, error) {
		return s.gen.Generate(ctx, GenerateInput{
			Title:      l.Title,
			Material:   curriculum.LessonContext(l),
			TopicHints: topicHints,
			Count:      s.cfg.Count,
		})
	})
}

// ForUnit returns the review question set spanning a whole unit.
func (s *Service) ForUnit(ctx context.Context, u curriculum.Unit, force bool) ([]practice.Question, error) {
	ctx = llm.WithPurpose(ctx, "unit-review")
	return s.cache.GetOrGenerate(ctx, UnitKey(u.ID), force, func(ctx context.Context) ([]practice.Question, error) {
		return s.gen.Generate(ctx, GenerateInput{
			Title:    u.Title + " Review",
			Material: curriculum.UnitContext(u),
			Count:    s.cfg.UnitCount,
		})
	})
}
