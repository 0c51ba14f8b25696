package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"course_cert_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storeNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newMemoryStore() (*ProgressStore, *MemorySubstrate) {
	sub := NewMemorySubstrate()
	store := NewProgressStore(sub, "")
	store.Now = func() time.Time { return storeNow }
	return store, sub
}

func sampleProgress() *model.UserProgress {
	p := model.NewUserProgress()
	c := p.Course("react-basics")
	c.TotalVideos = 3
	score := 100.0
	c.VideosProgress["v1"] = model.VideoProgress{
		VideoID:        "v1",
		CourseID:       "react-basics",
		CurrentTime:    120,
		MaxWatchedTime: 120,
		Completed:      true,
		QuizCompleted:  true,
		QuizScore:      &score,
		LastWatched:    storeNow,
	}
	c.RecomputeCompletedVideos()
	return p
}

func TestLoad_MissingDocumentIsEmpty(t *testing.T) {
	store, _ := newMemoryStore()
	p := store.Load(context.Background(), "u1")
	require.NotNil(t, p)
	assert.NotNil(t, p.Courses)
	assert.Empty(t, p.Courses)
}

func TestSaveLoad_UsesLearnerScopedKey(t *testing.T) {
	ctx := context.Background()
	store, sub := newMemoryStore()

	store.Save(ctx, "u1", sampleProgress())

	raw, ok, err := sub.Get(ctx, "course_progress:u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"react-basics"`)

	loaded := store.Load(ctx, "u1")
	require.Contains(t, loaded.Courses, "react-basics")
	assert.Equal(t, 1, loaded.Courses["react-basics"].CompletedVideos)
	assert.Equal(t, storeNow, loaded.LastUpdated)

	assert.Empty(t, store.Load(ctx, "u2").Courses)
}

func TestSaveOfLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, sub := newMemoryStore()
	store.Save(ctx, "u1", sampleProgress())
	before, _, _ := sub.Get(ctx, "course_progress:u1")

	store.Save(ctx, "u1", store.Load(ctx, "u1"))
	after, _, _ := sub.Get(ctx, "course_progress:u1")
	assert.JSONEq(t, before, after)

	// only the timestamp moves when the clock does
	store.Now = func() time.Time { return storeNow.Add(time.Minute) }
	store.Save(ctx, "u1", store.Load(ctx, "u1"))
	moved := store.Load(ctx, "u1")
	assert.Equal(t, storeNow.Add(time.Minute), moved.LastUpdated)
	moved.LastUpdated = storeNow

	original := sampleProgress()
	original.LastUpdated = storeNow
	assert.Equal(t, original, moved)
}

func TestLoad_CorruptDocumentIsEmpty(t *testing.T) {
	ctx := context.Background()
	store, sub := newMemoryStore()
	require.NoError(t, sub.Set(ctx, "course_progress:u1", "{not json"))

	p := store.Load(ctx, "u1")
	require.NotNil(t, p)
	assert.Empty(t, p.Courses)
}

func TestLoad_NormalizesPartialDocument(t *testing.T) {
	ctx := context.Background()
	store, sub := newMemoryStore()
	require.NoError(t, sub.Set(ctx, "course_progress:u1", `{"courses":{"c1":{"totalVideos":2},"c2":null}}`))

	p := store.Load(ctx, "u1")
	require.Contains(t, p.Courses, "c1")
	assert.NotContains(t, p.Courses, "c2")
	assert.Equal(t, "c1", p.Courses["c1"].CourseID)
	assert.NotNil(t, p.Courses["c1"].VideosProgress)
}

type failingSubstrate struct{}

func (failingSubstrate) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (failingSubstrate) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

func TestStoreFailsSoft(t *testing.T) {
	store := NewProgressStore(failingSubstrate{}, "custom")
	require.NotPanics(t, func() {
		p := store.Load(context.Background(), "u1")
		assert.Empty(t, p.Courses)
		store.Save(context.Background(), "u1", sampleProgress())
		store.Save(context.Background(), "u1", nil)
	})
}

func TestCustomKeyPrefix(t *testing.T) {
	ctx := context.Background()
	sub := NewMemorySubstrate()
	store := NewProgressStore(sub, "tenant_a")
	store.Save(ctx, "u1", sampleProgress())

	_, ok, _ := sub.Get(ctx, "tenant_a:u1")
	assert.True(t, ok)
	_, ok, _ = sub.Get(ctx, "course_progress:u1")
	assert.False(t, ok)
}

func TestLoadForUpdate_ReportsUnreadableStore(t *testing.T) {
	ctx := context.Background()

	p, ok := NewProgressStore(failingSubstrate{}, "").LoadForUpdate(ctx, "u1")
	assert.False(t, ok)
	assert.Empty(t, p.Courses)

	store, sub := newMemoryStore()
	_, ok = store.LoadForUpdate(ctx, "u1")
	assert.True(t, ok, "missing document is writable")

	require.NoError(t, sub.Set(ctx, "course_progress:u1", "{not json"))
	_, ok = store.LoadForUpdate(ctx, "u1")
	assert.True(t, ok, "corrupt document is replaced on the next write")
}
