package playback

import (
	"sync"
	"time"
)

// Session is one open player for a (learner, course, video). Events are
// applied one at a time; effects are dispatched while the session lock is
// held so that persistence follows event order.
type Session struct {
	ID        string
	LearnerID string
	CourseID  string
	VideoID   string

	mu           sync.Mutex
	snapshot     Snapshot
	lastActivity time.Time
}

func NewSession(id, learnerID, courseID, videoID string, initial Snapshot, now time.Time) *Session {
	return &Session{
		ID:           id,
		LearnerID:    learnerID,
		CourseID:     courseID,
		VideoID:      videoID,
		snapshot:     initial,
		lastActivity: now,
	}
}

// Apply runs the transition and hands every produced effect to dispatch,
// in order. Rejected events do not touch the snapshot or the activity clock.
func (s *Session) Apply(ev Event, now time.Time, dispatch func(Effect)) (Snapshot, []Effect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, effects, err := Transition(s.snapshot, ev)
	if err != nil {
		return s.snapshot, nil, err
	}
	s.snapshot = next
	s.lastActivity = now

	if dispatch != nil {
		for _, e := range effects {
			dispatch(e)
		}
	}
	return next, effects, nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// IdleSince reports whether the session has seen no accepted event since cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity.Before(cutoff)
}
