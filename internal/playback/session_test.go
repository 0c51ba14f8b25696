package playback

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_DispatchesEffectsInOrder(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	sess := NewSession("s1", "learner-1", "react-basics", "v1", playingAt(110, 110), start)

	var got []EffectKind
	snap, effects, err := sess.Apply(Event{Kind: EvEnded}, start.Add(time.Second), func(e Effect) {
		got = append(got, e.Kind)
	})
	require.NoError(t, err)
	assert.Equal(t, StateEnded, snap.State)
	assert.Len(t, effects, 2)
	assert.Equal(t, []EffectKind{EffectPersist, EffectComplete}, got)
	assert.Equal(t, snap, sess.Snapshot())
}

func TestSession_RejectedEventKeepsState(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	sess := NewSession("s1", "learner-1", "react-basics", "v1", Restore(nil), start)

	dispatched := false
	_, _, err := sess.Apply(Event{Kind: EvEnded}, start.Add(time.Hour), func(Effect) { dispatched = true })
	require.ErrorIs(t, err, ErrEventNotAllowed)
	assert.False(t, dispatched)
	assert.Equal(t, StateIdle, sess.Snapshot().State)
	assert.True(t, sess.IdleSince(start.Add(time.Minute)), "rejected events do not count as activity")
}

func TestSession_IdleSince(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	sess := NewSession("s1", "learner-1", "react-basics", "v1", Restore(nil), start)
	assert.False(t, sess.IdleSince(start))

	_, _, err := sess.Apply(Event{Kind: EvLoadStarted}, start.Add(10*time.Minute), nil)
	require.NoError(t, err)
	assert.False(t, sess.IdleSince(start.Add(5*time.Minute)))
	assert.True(t, sess.IdleSince(start.Add(11*time.Minute)))
}

func TestSession_ConcurrentEventsAreSerialized(t *testing.T) {
	now := time.Now()
	sess := NewSession("s1", "learner-1", "react-basics", "v1", playingAt(0, 0), now)

	var (
		mu       sync.Mutex
		persists []float64
		wg       sync.WaitGroup
	)
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(pos float64) {
			defer wg.Done()
			_, _, _ = sess.Apply(Event{Kind: EvTimeUpdate, Position: pos}, now, func(e Effect) {
				if e.Kind == EffectPersist {
					mu.Lock()
					persists = append(persists, *e.Update.MaxWatchedTime)
					mu.Unlock()
				}
			})
		}(float64(i))
	}
	wg.Wait()

	assert.Equal(t, 100.0, sess.Snapshot().MaxWatchedTime)
	// every persisted frontier is strictly larger than the one before it
	for i := 1; i < len(persists); i++ {
		assert.Greater(t, persists[i], persists[i-1])
	}
}
