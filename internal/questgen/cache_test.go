package questgen

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemcat/chemcat/internal/practice"
)

func oneQuestion(prompt string) []practice.Question {
	return []practice.Question{{
		Kind:   practice.KindMultipleChoice,
		Prompt: prompt,
		Answer: []string{"x"},
	}}
}

func TestCacheSingleFlight(t *testing.T) {
	cache := NewCache()
	ctx := context.Background()

	var calls atomic.Int32
	release := make(chan struct{})
	generate := func(context.Context) ([]practice.Question, error) {
		calls.Add(1)
		<-release
		return oneQuestion("q"), nil
	}

	const waiters = 8
	var wg sync.WaitGroup
	results := make([][]practice.Question, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			qs, err := cache.GetOrGenerate(ctx, LessonKey("l1-1"), false, generate)
			require.NoError(t, err)
			results[i] = qs
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent requests must share one generation")
	for _, qs := range results {
		assert.Len(t, qs, 1)
	}
}

func TestCacheReusesResult(t *testing.T) {
	cache := NewCache()
	ctx := context.Background()

	var calls int
	generate := func(context.Context) ([]practice.Question, error) {
		calls++
		return oneQuestion("q"), nil
	}

	_, err := cache.GetOrGenerate(ctx, LessonKey("l1-1"), false, generate)
	require.NoError(t, err)
	_, err = cache.GetOrGenerate(ctx, LessonKey("l1-1"), false, generate)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// Distinct keys generate independently.
	_, err = cache.GetOrGenerate(ctx, UnitKey("unit1"), false, generate)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCacheForceRegenerates(t *testing.T) {
	cache := NewCache()
	ctx := context.Background()

	var calls int
	generate := func(context.Context) ([]practice.Question, error) {
		calls++
		return oneQuestion("q"), nil
	}

	_, err := cache.GetOrGenerate(ctx, LessonKey("l1-1"), false, generate)
	require.NoError(t, err)
	_, err = cache.GetOrGenerate(ctx, LessonKey("l1-1"), true, generate)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCacheCachesFailures(t *testing.T) {
	cache := NewCache()
	ctx := context.Background()

	boom := errors.New("provider down")
	var calls int

	_, err := cache.GetOrGenerate(ctx, LessonKey("l1-1"), false, func(context.Context) ([]practice.Question, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	// The failure is cached; the caller sees it again without a new call.
	_, err = cache.GetOrGenerate(ctx, LessonKey("l1-1"), false, func(context.Context) ([]practice.Question, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)

	// A forced retry generates again and replaces the failed entry.
	qs, err := cache.GetOrGenerate(ctx, LessonKey("l1-1"), true, func(context.Context) ([]practice.Question, error) {
		calls++
		return oneQuestion("q"), nil
	})
	require.NoError(t, err)
	assert.Len(t, qs, 1)
	assert.Equal(t, 2, calls)
}

func TestCacheInvalidate(t *testing.T) {
	cache := NewCache()
	ctx := context.Background()

	var calls int
	generate := func(context.Context) ([]practice.Question, error) {
		calls++
		return oneQuestion("q"), nil
	}

	_, _ = cache.GetOrGenerate(ctx, LessonKey("l1-1"), false, generate)
	assert.Equal(t, 1, cache.Len())

	cache.Invalidate(LessonKey("l1-1"))
	assert.Equal(t, 0, cache.Len())

	_, _ = cache.GetOrGenerate(ctx, LessonKey("l1-1"), false, generate)
	assert.Equal(t, 2, calls)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "lesson-l1-1", LessonKey("l1-1"))
	assert.Equal(t, "unit-unit2", UnitKey("unit2"))
	assert.NotEqual(t, LessonKey("x"), UnitKey("x"))
}
