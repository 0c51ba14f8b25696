package service

import (
	"context"
	"course_cert_backend/internal/model"
	"course_cert_backend/internal/playback"
	"course_cert_backend/internal/util"
	"course_cert_backend/pkg/logger"
	"course_cert_backend/pkg/monitoring"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionView 会话快照，附带本次事件产生的副作用
type SessionView struct {
	SessionID       string                `json:"sessionId"`
	CourseID        string                `json:"courseId"`
	VideoID         string                `json:"videoId"`
	Snapshot        playback.Snapshot     `json:"snapshot"`
	Clock           string                `json:"clock"`
	WatchedFraction float64               `json:"watchedFraction"`
	Effects         []playback.Effect     `json:"effects"`
	Progress        *model.CourseProgress `json:"courseProgress,omitempty"`
}

// PlaybackService 播放会话注册表：每个打开的播放器对应一个受限播放状态机，
// 状态机产生的持久化副作用交给进度引擎执行。
type PlaybackService struct {
	Progress    *ProgressService
	Courses     *CourseService
	IdleTimeout time.Duration
	Now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*playback.Session
	stop     chan struct{}
	stopOnce sync.Once
}

func NewPlaybackService(progress *ProgressService, courses *CourseService, idleTimeout time.Duration) *PlaybackService {
	if idleTimeout <= 0 {
		idleTimeout = 2 * time.Hour
	}
	return &PlaybackService{
		Progress:    progress,
		Courses:     courses,
		IdleTimeout: idleTimeout,
		Now:         time.Now,
		sessions:    make(map[string]*playback.Session),
		stop:        make(chan struct{}),
	}
}

// Open starts a session for the video, restoring the learner's stored position.
func (s *PlaybackService) Open(ctx context.Context, learnerID, courseID, videoID string) (*SessionView, error) {
	if _, err := s.Courses.GetVideo(ctx, courseID, videoID); err != nil {
		return nil, err
	}

	prior := s.Progress.GetVideoProgress(ctx, learnerID, courseID, videoID)
	sess := playback.NewSession(uuid.New().String(), learnerID, courseID, videoID, playback.Restore(prior), s.Now())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	monitoring.ActiveSessions.Inc()

	logger.Log.Debug("Playback session opened",
		zap.String("session", sess.ID),
		zap.String("learner", learnerID),
		zap.String("course", courseID),
		zap.String("video", videoID))

	return view(sess, sess.Snapshot(), nil, nil), nil
}

func (s *PlaybackService) lookup(learnerID, sessionID string) (*playback.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	// 其他学习者的会话按不存在处理
	if !ok || sess.LearnerID != learnerID {
		return nil, util.ErrSessionNotFound
	}
	return sess, nil
}

func (s *PlaybackService) Get(learnerID, sessionID string) (*SessionView, error) {
	sess, err := s.lookup(learnerID, sessionID)
	if err != nil {
		return nil, err
	}
	return view(sess, sess.Snapshot(), nil, nil), nil
}

// Apply feeds one client event through the session's state machine and
// carries out the resulting persistence effects before returning.
func (s *PlaybackService) Apply(ctx context.Context, learnerID, sessionID string, ev playback.Event) (*SessionView, error) {
	sess, err := s.lookup(learnerID, sessionID)
	if err != nil {
		return nil, err
	}

	// 客户端断开不应打断进度写入
	persistCtx := context.WithoutCancel(ctx)
	var course *model.CourseProgress

	snap, effects, err := sess.Apply(ev, s.Now(), func(e playback.Effect) {
		if c := s.dispatch(persistCtx, sess, ev, e); c != nil {
			course = c
		}
	})
	if err != nil {
		outcome := "invalid"
		if errors.Is(err, playback.ErrEventNotAllowed) {
			outcome = "rejected"
		}
		monitoring.PlaybackEvents.WithLabelValues(string(ev.Kind), outcome).Inc()
		return nil, err
	}
	monitoring.PlaybackEvents.WithLabelValues(string(ev.Kind), "accepted").Inc()

	return view(sess, snap, effects, course), nil
}

func (s *PlaybackService) dispatch(ctx context.Context, sess *playback.Session, ev playback.Event, e playback.Effect) *model.CourseProgress {
	switch e.Kind {
	case playback.EffectPersist:
		if e.Reason == playback.ReasonRestrictedReset {
			monitoring.RestrictedResets.Inc()
			logger.Log.Info("Restricted reset after tab switch",
				zap.String("session", sess.ID),
				zap.String("learner", sess.LearnerID),
				zap.String("video", sess.VideoID))
		}
		return s.Progress.UpdateVideoProgress(ctx, sess.LearnerID, sess.CourseID, sess.VideoID, *e.Update)
	case playback.EffectComplete:
		return s.Progress.MarkVideoCompleted(ctx, sess.LearnerID, sess.CourseID, sess.VideoID)
	case playback.EffectSetPosition:
		if e.Reason == playback.ReasonForwardSeekRejected {
			monitoring.SeekRejections.Inc()
		}
	case playback.EffectPlaybackFailed:
		monitoring.PlaybackFailures.WithLabelValues(string(ev.Kind)).Inc()
		logger.Log.Warn("Playback failed",
			zap.String("session", sess.ID),
			zap.String("video", sess.VideoID),
			zap.String("reason", e.Reason))
	}
	return nil
}

func (s *PlaybackService) Close(learnerID, sessionID string) error {
	if _, err := s.lookup(learnerID, sessionID); err != nil {
		return err
	}
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if ok {
		monitoring.ActiveSessions.Dec()
	}
	return nil
}

// SweepIdle drops sessions without accepted events for IdleTimeout.
func (s *PlaybackService) SweepIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.IdleTimeout)
	removed := 0
	for id, sess := range s.sessions {
		if sess.IdleSince(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		monitoring.ActiveSessions.Sub(float64(removed))
		logger.Log.Debug("Swept idle playback sessions", zap.Int("count", removed))
	}
	return removed
}

// SetIdleTimeout applies a reloaded session_idle_timeout; non-positive values are ignored.
func (s *PlaybackService) SetIdleTimeout(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.IdleTimeout = d
	s.mu.Unlock()
}

// StartSweeper runs SweepIdle on a ticker until Stop is called.
func (s *PlaybackService) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.SweepIdle(s.Now())
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *PlaybackService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *PlaybackService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func view(sess *playback.Session, snap playback.Snapshot, effects []playback.Effect, course *model.CourseProgress) *SessionView {
	if effects == nil {
		effects = []playback.Effect{}
	}
	return &SessionView{
		SessionID:       sess.ID,
		CourseID:        sess.CourseID,
		VideoID:         sess.VideoID,
		Snapshot:        snap,
		Clock:           fmt.Sprintf("%s / %s", playback.FormatClock(snap.CurrentTime), playback.FormatClock(snap.Duration)),
		WatchedFraction: playback.WatchedFraction(snap),
		Effects:         effects,
		Progress:        course,
	}
}
