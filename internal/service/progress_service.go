package service

import (
	"context"
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/util"
	"course_cert_backend/pkg/logger"
	"course_cert_backend/pkg/monitoring"
	"course_cert_backend/pkg/tracing"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ProgressStore 进度文档的持久化接口，实现必须 fail-soft
type ProgressStore interface {
	Load(ctx context.Context, learnerID string) *model.UserProgress
	// LoadForUpdate reports ok=false when the stored document could not be read.
	LoadForUpdate(ctx context.Context, learnerID string) (*model.UserProgress, bool)
	Save(ctx context.Context, learnerID string, progress *model.UserProgress)
}

// ProgressService 进度引擎：进度文档的唯一写入者。
// 每次修改都是 读取-修改-重算-保存，同一学习者的修改串行执行。
type ProgressService struct {
	Store ProgressStore
	Now   func() time.Time

	locks sync.Map // learnerID -> *sync.Mutex
}

func NewProgressService(store ProgressStore) *ProgressService {
	return &ProgressService{
		Store: store,
		Now:   time.Now,
	}
}

func (s *ProgressService) lock(learnerID string) func() {
	v, _ := s.locks.LoadOrStore(learnerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// mutate runs fn against the course entry and persists the document. A
// non-nil error from fn aborts the write. When the document cannot be read
// nothing is written and the empty course entry is returned together with
// util.ErrProgressUnavailable.
func (s *ProgressService) mutate(ctx context.Context, op, learnerID, courseID string, fn func(c *model.CourseProgress, now time.Time) error) (*model.CourseProgress, error) {
	ctx, span := tracing.StartSpan(ctx, "progress."+op,
		attribute.String("learner.id", learnerID),
		attribute.String("course.id", courseID),
	)
	defer span.End()

	unlock := s.lock(learnerID)
	defer unlock()

	doc, ok := s.Store.LoadForUpdate(ctx, learnerID)
	course := doc.Course(courseID)
	if !ok {
		// 读取失败时不写回，避免空文档覆盖已有进度
		span.RecordError(util.ErrProgressUnavailable)
		return course.Clone(), util.ErrProgressUnavailable
	}
	now := s.Now().UTC()

	if err := fn(course, now); err != nil {
		span.RecordError(err)
		return nil, err
	}

	course.RecomputeCompletedVideos()
	if evaluateCompletion(course, now) {
		monitoring.Completions.WithLabelValues("course").Inc()
		logger.Log.Info("Course completed",
			zap.String("learner", learnerID),
			zap.String("course", courseID),
			zap.Int("videos", course.TotalVideos))
	}

	s.Store.Save(ctx, learnerID, doc)
	return course.Clone(), nil
}

// UpdateVideoProgress merges a partial update into the video's progress,
// creating the record on first use.
func (s *ProgressService) UpdateVideoProgress(ctx context.Context, learnerID, courseID, videoID string, update model.VideoProgressUpdate) *model.CourseProgress {
	course, _ := s.mutate(ctx, "update_video", learnerID, courseID, func(c *model.CourseProgress, now time.Time) error {
		vp, ok := c.VideosProgress[videoID]
		if !ok {
			vp = model.VideoProgress{VideoID: videoID, CourseID: courseID}
		}
		wasCompleted, wasQuizCompleted := vp.Completed, vp.QuizCompleted

		update.ApplyTo(&vp)
		vp.LastWatched = now
		c.VideosProgress[videoID] = vp
		c.LastAccessedVideoID = videoID

		if vp.Completed && !wasCompleted {
			monitoring.Completions.WithLabelValues("video").Inc()
		}
		if vp.QuizCompleted && !wasQuizCompleted {
			monitoring.Completions.WithLabelValues("quiz").Inc()
		}
		return nil
	})
	return course
}

func (s *ProgressService) MarkVideoCompleted(ctx context.Context, learnerID, courseID, videoID string) *model.CourseProgress {
	completed := true
	return s.UpdateVideoProgress(ctx, learnerID, courseID, videoID, model.VideoProgressUpdate{Completed: &completed})
}

func (s *ProgressService) MarkQuizCompleted(ctx context.Context, learnerID, courseID, videoID string, score float64) *model.CourseProgress {
	done := true
	return s.UpdateVideoProgress(ctx, learnerID, courseID, videoID, model.VideoProgressUpdate{
		QuizCompleted: &done,
		QuizScore:     &score,
	})
}

// SetTotalVideos records the course size; existing video progress is kept.
func (s *ProgressService) SetTotalVideos(ctx context.Context, learnerID, courseID string, total int) *model.CourseProgress {
	if total < 0 {
		total = 0
	}
	course, _ := s.mutate(ctx, "set_total", learnerID, courseID, func(c *model.CourseProgress, _ time.Time) error {
		c.TotalVideos = total
		return nil
	})
	return course
}

// GetCourseProgress returns nil when the learner never touched the course.
func (s *ProgressService) GetCourseProgress(ctx context.Context, learnerID, courseID string) *model.CourseProgress {
	doc := s.Store.Load(ctx, learnerID)
	c, ok := doc.Courses[courseID]
	if !ok {
		return nil
	}
	return c.Clone()
}

func (s *ProgressService) GetVideoProgress(ctx context.Context, learnerID, courseID, videoID string) *model.VideoProgress {
	c := s.GetCourseProgress(ctx, learnerID, courseID)
	if c == nil {
		return nil
	}
	vp, ok := c.VideosProgress[videoID]
	if !ok {
		return nil
	}
	return &vp
}

// IsCourseCompleted is the bare predicate; it ignores the sticky flag.
func (s *ProgressService) IsCourseCompleted(ctx context.Context, learnerID, courseID string) bool {
	c := s.GetCourseProgress(ctx, learnerID, courseID)
	return c != nil && c.MeetsCompletion()
}
