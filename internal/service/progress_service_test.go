package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"course_cert_backend/internal/model"
	"course_cert_backend/internal/repository"
	"course_cert_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestProgress() (*ProgressService, *repository.MemorySubstrate) {
	substrate := repository.NewMemorySubstrate()
	store := repository.NewProgressStore(substrate, "")
	store.Now = clockAt(fixedNow)
	svc := NewProgressService(store)
	svc.Now = clockAt(fixedNow)
	return svc, substrate
}

func f64p(v float64) *float64 { return &v }
func boolp(v bool) *bool       { return &v }

// finishVideo marks both the video and its quiz as done.
func finishVideo(ctx context.Context, svc *ProgressService, learner, course, video string) *model.CourseProgress {
	svc.MarkVideoCompleted(ctx, learner, course, video)
	return svc.MarkQuizCompleted(ctx, learner, course, video, 100)
}

func TestUpdateVideoProgress_CreatesRecordLazily(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	assert.Nil(t, svc.GetCourseProgress(ctx, "u1", "react-basics"), "first visit has no progress")

	course := svc.UpdateVideoProgress(ctx, "u1", "react-basics", "v1", model.VideoProgressUpdate{
		CurrentTime:    f64p(12),
		MaxWatchedTime: f64p(12),
	})
	require.NotNil(t, course)
	assert.Equal(t, "v1", course.LastAccessedVideoID)

	vp := svc.GetVideoProgress(ctx, "u1", "react-basics", "v1")
	require.NotNil(t, vp)
	assert.Equal(t, "v1", vp.VideoID)
	assert.Equal(t, "react-basics", vp.CourseID)
	assert.Equal(t, 12.0, vp.CurrentTime)
	assert.Equal(t, 12.0, vp.MaxWatchedTime)
	assert.False(t, vp.Completed)
	assert.Equal(t, fixedNow, vp.LastWatched)

	assert.Nil(t, svc.GetVideoProgress(ctx, "u1", "react-basics", "v2"))
}

func TestUpdateVideoProgress_MergesPartialFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	svc.UpdateVideoProgress(ctx, "u1", "c1", "v1", model.VideoProgressUpdate{CurrentTime: f64p(30), MaxWatchedTime: f64p(30)})
	svc.UpdateVideoProgress(ctx, "u1", "c1", "v1", model.VideoProgressUpdate{CurrentTime: f64p(10)})

	vp := svc.GetVideoProgress(ctx, "u1", "c1", "v1")
	require.NotNil(t, vp)
	assert.Equal(t, 10.0, vp.CurrentTime)
	assert.Equal(t, 30.0, vp.MaxWatchedTime)
}

func TestCompletedVideosIsDerived(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	course := svc.MarkVideoCompleted(ctx, "u1", "c1", "v1")
	assert.Equal(t, 0, course.CompletedVideos, "video without quiz does not count")

	course = svc.MarkQuizCompleted(ctx, "u1", "c1", "v1", 50)
	assert.Equal(t, 1, course.CompletedVideos)
	require.NotNil(t, course.VideosProgress["v1"].QuizScore)
	assert.Equal(t, 50.0, *course.VideosProgress["v1"].QuizScore)

	course = svc.MarkQuizCompleted(ctx, "u1", "c1", "v2", 100)
	assert.Equal(t, 1, course.CompletedVideos, "quiz without video does not count")

	course = svc.UpdateVideoProgress(ctx, "u1", "c1", "v1", model.VideoProgressUpdate{Completed: boolp(false)})
	assert.Equal(t, 0, course.CompletedVideos)
}

func TestSetTotalVideos_KeepsProgress(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	finishVideo(ctx, svc, "u1", "c1", "v1")
	course := svc.SetTotalVideos(ctx, "u1", "c1", 3)
	assert.Equal(t, 3, course.TotalVideos)
	assert.Equal(t, 1, course.CompletedVideos)
	assert.Len(t, course.VideosProgress, 1)

	again := svc.SetTotalVideos(ctx, "u1", "c1", 3)
	assert.Equal(t, course.VideosProgress, again.VideosProgress)
	assert.Equal(t, 3, again.TotalVideos)
}

func TestIsCourseCompleted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	assert.False(t, svc.IsCourseCompleted(ctx, "u1", "c1"))

	finishVideo(ctx, svc, "u1", "c1", "v1")
	assert.False(t, svc.IsCourseCompleted(ctx, "u1", "c1"), "totalVideos unknown")

	svc.SetTotalVideos(ctx, "u1", "c1", 2)
	assert.False(t, svc.IsCourseCompleted(ctx, "u1", "c1"))

	finishVideo(ctx, svc, "u1", "c1", "v2")
	assert.True(t, svc.IsCourseCompleted(ctx, "u1", "c1"))
}

func TestCourseCompletionIsSticky(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	svc.SetTotalVideos(ctx, "u1", "c1", 3)
	for _, v := range []string{"v1", "v2", "v3"} {
		finishVideo(ctx, svc, "u1", "c1", v)
	}
	course := svc.GetCourseProgress(ctx, "u1", "c1")
	require.True(t, course.CourseCompleted)
	require.NotNil(t, course.CompletionDate)
	assert.Equal(t, fixedNow, *course.CompletionDate)

	// a restricted reset on a finished video drops the count but not the flag
	svc.Now = clockAt(fixedNow.Add(time.Hour))
	course = svc.UpdateVideoProgress(ctx, "u1", "c1", "v2", model.VideoProgressUpdate{Completed: boolp(false)})
	assert.Equal(t, 2, course.CompletedVideos)
	assert.True(t, course.CourseCompleted)
	assert.Equal(t, fixedNow, *course.CompletionDate, "completion date is set once")
	assert.False(t, svc.IsCourseCompleted(ctx, "u1", "c1"))
}

func TestProgressIsScopedPerLearner(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	finishVideo(ctx, svc, "alice", "c1", "v1")
	assert.Nil(t, svc.GetCourseProgress(ctx, "bob", "c1"))
	assert.NotNil(t, svc.GetCourseProgress(ctx, "alice", "c1"))
}

func TestReturnedProgressIsACopy(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	course := finishVideo(ctx, svc, "u1", "c1", "v1")
	course.VideosProgress["v1"] = model.VideoProgress{}
	course.CompletedVideos = 99

	stored := svc.GetCourseProgress(ctx, "u1", "c1")
	assert.Equal(t, 1, stored.CompletedVideos)
	assert.True(t, stored.VideosProgress["v1"].Finished())
}

type brokenSubstrate struct{}

func (brokenSubstrate) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (brokenSubstrate) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

func TestOperationsSurviveStorageFaults(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(repository.NewProgressStore(brokenSubstrate{}, ""))

	require.NotPanics(t, func() {
		course := svc.UpdateVideoProgress(ctx, "u1", "c1", "v1", model.VideoProgressUpdate{CurrentTime: f64p(5)})
		assert.NotNil(t, course)
		svc.SetTotalVideos(ctx, "u1", "c1", 2)
		svc.MarkQuizCompleted(ctx, "u1", "c1", "v1", 100)
	})
	assert.Nil(t, svc.GetCourseProgress(ctx, "u1", "c1"))
	assert.False(t, svc.IsCourseCompleted(ctx, "u1", "c1"))
}

// flakySubstrate fails the next failGets reads and then behaves normally.
type flakySubstrate struct {
	*repository.MemorySubstrate
	mu       sync.Mutex
	failGets int
}

func (f *flakySubstrate) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	if f.failGets > 0 {
		f.failGets--
		f.mu.Unlock()
		return "", false, errors.New("connection reset")
	}
	f.mu.Unlock()
	return f.MemorySubstrate.Get(ctx, key)
}

func (f *flakySubstrate) failNextGet() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGets++
}

func TestTransientLoadFailureDoesNotOverwriteProgress(t *testing.T) {
	ctx := context.Background()
	substrate := &flakySubstrate{MemorySubstrate: repository.NewMemorySubstrate()}
	store := repository.NewProgressStore(substrate, "")
	store.Now = clockAt(fixedNow)
	svc := NewProgressService(store)
	svc.Now = clockAt(fixedNow)
	completion := NewCompletionService(svc)

	svc.SetTotalVideos(ctx, "u1", "a", 1)
	finishVideo(ctx, svc, "u1", "a", "v1")
	_, err := completion.IssueCertificate(ctx, "u1", "a", "Ada")
	require.NoError(t, err)

	substrate.failNextGet()
	course := svc.UpdateVideoProgress(ctx, "u1", "b", "x1", model.VideoProgressUpdate{CurrentTime: f64p(3)})
	require.NotNil(t, course)
	assert.Empty(t, course.VideosProgress, "nothing is applied while the document is unreadable")

	stored := svc.GetCourseProgress(ctx, "u1", "a")
	require.NotNil(t, stored)
	assert.True(t, stored.CourseCompleted)
	assert.True(t, stored.CertificateGenerated)
	assert.Nil(t, svc.GetCourseProgress(ctx, "u1", "b"))

	substrate.failNextGet()
	_, err = completion.IssueCertificate(ctx, "u1", "a", "Grace")
	assert.ErrorIs(t, err, util.ErrProgressUnavailable)
	data, err := completion.GetCertificateData(ctx, "u1", "a")
	require.NoError(t, err)
	assert.Equal(t, "Ada", data.StudentName)

	// 恢复后写入照常进行
	svc.UpdateVideoProgress(ctx, "u1", "b", "x1", model.VideoProgressUpdate{CurrentTime: f64p(3)})
	assert.NotNil(t, svc.GetCourseProgress(ctx, "u1", "b"))
	assert.True(t, svc.GetCourseProgress(ctx, "u1", "a").CertificateGenerated)
}

func TestConcurrentUpdatesForOneLearnerAreNotLost(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			finishVideo(ctx, svc, "u1", "c1", fmt.Sprintf("v%d", i))
		}(i)
	}
	wg.Wait()

	course := svc.GetCourseProgress(ctx, "u1", "c1")
	require.NotNil(t, course)
	assert.Len(t, course.VideosProgress, 40)
	assert.Equal(t, 40, course.CompletedVideos)
}

func TestThreeVideoCourseWalkthrough(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestProgress()

	svc.SetTotalVideos(ctx, "u1", "c1", 3)
	svc.UpdateVideoProgress(ctx, "u1", "c1", "v1", model.VideoProgressUpdate{CurrentTime: f64p(42), MaxWatchedTime: f64p(42)})

	svc.UpdateVideoProgress(ctx, "u1", "c1", "v1", model.VideoProgressUpdate{
		Completed:      boolp(true),
		CurrentTime:    f64p(120),
		MaxWatchedTime: f64p(120),
	})
	course := svc.MarkQuizCompleted(ctx, "u1", "c1", "v1", ScoreQuiz(twoQuestionQuiz(), map[string]int{"q1": 1, "q2": 0}, fixedNow).Score)

	vp := course.VideosProgress["v1"]
	assert.True(t, vp.Completed)
	assert.True(t, vp.QuizCompleted)
	assert.Equal(t, 100.0, *vp.QuizScore)
	assert.Equal(t, 1, course.CompletedVideos)
	assert.False(t, course.CourseCompleted)
}
