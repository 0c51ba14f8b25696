package playback

import (
	"course_cert_backend/internal/model"
	"fmt"
	"math"
)

type handler func(s Snapshot, ev Event) (Snapshot, []Effect)

// decisionTable lists, per state, the events the guard accepts. Visibility
// and focus signals come from the document and are accepted in every state.
var decisionTable = map[State]map[EventKind]bool{
	StateIdle: {
		EvLoadStarted:    true,
		EvMetadataLoaded: true,
		EvLoadFailed:     true,
	},
	StateLoading: {
		EvLoadStarted:    true,
		EvMetadataLoaded: true,
		EvLoadFailed:     true,
	},
	StateReady: {
		EvMetadataLoaded: true,
		EvLoadFailed:     true,
		EvTimeUpdate:     true,
		EvSeek:           true,
		EvRewind:         true,
		EvPlayRequested:  true,
		EvPlaying:        true,
		EvPlayFailed:     true,
		EvPause:          true,
	},
	StatePlaying: {
		EvLoadFailed:    true,
		EvTimeUpdate:    true,
		EvSeek:          true,
		EvRewind:        true,
		EvPlayRequested: true,
		EvPlaying:       true,
		EvPlayFailed:    true,
		EvPause:         true,
		EvEnded:         true,
	},
	StatePaused: {
		EvLoadFailed:    true,
		EvTimeUpdate:    true,
		EvSeek:          true,
		EvRewind:        true,
		EvPlayRequested: true,
		EvPlaying:       true,
		EvPlayFailed:    true,
		EvPause:         true,
		EvEnded:         true,
	},
	StateEnded: {
		EvTimeUpdate:    true,
		EvSeek:          true,
		EvRewind:        true,
		EvPlayRequested: true,
		EvPlaying:       true,
		EvPlayFailed:    true,
		EvPause:         true,
		EvEnded:         true,
	},
}

var handlers = map[EventKind]handler{
	EvLoadStarted:       onLoadStarted,
	EvMetadataLoaded:    onMetadataLoaded,
	EvLoadFailed:        onLoadFailed,
	EvTimeUpdate:        onTimeUpdate,
	EvSeek:              onSeek,
	EvRewind:            onRewind,
	EvPlayRequested:     onPlayRequested,
	EvPlaying:           onPlaying,
	EvPlayFailed:        onPlayFailed,
	EvPause:             onPause,
	EvVisibilityHidden:  onVisibilityHidden,
	EvVisibilityVisible: onVisibilityVisible,
	EvWindowBlur:        onWindowBlur,
	EvWindowFocus:       onWindowFocus,
	EvEnded:             onEnded,
}

func isDocumentSignal(k EventKind) bool {
	switch k {
	case EvVisibilityHidden, EvVisibilityVisible, EvWindowBlur, EvWindowFocus:
		return true
	}
	return false
}

// Allowed reports whether the guard accepts the event in the given state.
func Allowed(state State, kind EventKind) bool {
	if isDocumentSignal(kind) {
		return true
	}
	return decisionTable[state][kind]
}

// Transition applies one event to the snapshot and returns the next snapshot
// together with the side effects the caller must carry out, in order.
// A rejected event leaves the snapshot untouched.
func Transition(s Snapshot, ev Event) (Snapshot, []Effect, error) {
	h, ok := handlers[ev.Kind]
	if !ok {
		return s, nil, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, ev.Kind)
	}
	if err := validate(ev); err != nil {
		return s, nil, err
	}
	if !Allowed(s.State, ev.Kind) {
		return s, nil, fmt.Errorf("%w: state=%s event=%s", ErrEventNotAllowed, s.State, ev.Kind)
	}
	next, effects := h(s, ev)
	return next, effects, nil
}

func validate(ev Event) error {
	for name, v := range map[string]float64{"duration": ev.Duration, "position": ev.Position, "seconds": ev.Seconds} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidEvent, name)
		}
	}
	if ev.Duration < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidEvent)
	}
	if ev.Seconds < 0 {
		return fmt.Errorf("%w: negative rewind", ErrInvalidEvent)
	}
	return nil
}

func onLoadStarted(s Snapshot, _ Event) (Snapshot, []Effect) {
	s.State = StateLoading
	return s, nil
}

func onMetadataLoaded(s Snapshot, ev Event) (Snapshot, []Effect) {
	s.Duration = ev.Duration
	s.State = StateReady

	if s.CurrentTime <= 0 {
		return s, nil
	}
	pos := clamp(s.CurrentTime, 0, s.MaxWatchedTime)
	if s.Duration > 0 {
		pos = math.Min(pos, s.Duration)
	}
	s.CurrentTime = pos
	return s, []Effect{{Kind: EffectSetPosition, Position: pos, Reason: ReasonRestore}}
}

func onLoadFailed(s Snapshot, ev Event) (Snapshot, []Effect) {
	s.State = StateIdle
	return s, []Effect{failure(ev, "load_failed")}
}

func onTimeUpdate(s Snapshot, ev Event) (Snapshot, []Effect) {
	pos := nonNegative(ev.Position)
	if s.Duration > 0 {
		pos = math.Min(pos, s.Duration)
	}

	// 只有播放中的时间推进才能增长 maxWatchedTime
	if s.State != StatePlaying {
		s.CurrentTime = math.Min(pos, s.MaxWatchedTime)
		return s, nil
	}

	s.CurrentTime = pos
	if pos <= s.MaxWatchedTime {
		return s, nil
	}
	s.MaxWatchedTime = pos
	return s, []Effect{persist(ReasonProgress, model.VideoProgressUpdate{
		CurrentTime:    f64(pos),
		MaxWatchedTime: f64(pos),
	})}
}

func onSeek(s Snapshot, ev Event) (Snapshot, []Effect) {
	target := nonNegative(ev.Position)
	if target > s.MaxWatchedTime {
		s.CurrentTime = s.MaxWatchedTime
		return s, []Effect{{Kind: EffectSetPosition, Position: s.MaxWatchedTime, Reason: ReasonForwardSeekRejected}}
	}
	s.CurrentTime = target
	return s, []Effect{{Kind: EffectSetPosition, Position: target, Reason: ReasonSeek}}
}

func onRewind(s Snapshot, ev Event) (Snapshot, []Effect) {
	pos := clamp(s.CurrentTime-ev.Seconds, 0, s.MaxWatchedTime)
	s.CurrentTime = pos
	return s, []Effect{{Kind: EffectSetPosition, Position: pos, Reason: ReasonRewind}}
}

func onPlayRequested(s Snapshot, _ Event) (Snapshot, []Effect) {
	if s.State == StatePlaying {
		return s, nil
	}
	return s, []Effect{{Kind: EffectRequestPlay}}
}

func onPlaying(s Snapshot, _ Event) (Snapshot, []Effect) {
	if s.Hidden {
		s.State = StatePaused
		return s, []Effect{{Kind: EffectPauseMedia, Reason: ReasonHidden}}
	}
	s.State = StatePlaying
	return s, nil
}

func onPlayFailed(s Snapshot, ev Event) (Snapshot, []Effect) {
	if s.State == StatePlaying {
		s.State = StatePaused
	}
	return s, []Effect{failure(ev, "play_failed")}
}

func onPause(s Snapshot, _ Event) (Snapshot, []Effect) {
	if s.State == StatePlaying {
		s.State = StatePaused
	}
	return s, nil
}

func onVisibilityHidden(s Snapshot, _ Event) (Snapshot, []Effect) {
	s.Hidden = true
	return pauseIfPlaying(s, ReasonHidden)
}

func onWindowBlur(s Snapshot, _ Event) (Snapshot, []Effect) {
	s.Blurred = true
	return pauseIfPlaying(s, ReasonBlur)
}

func onWindowFocus(s Snapshot, _ Event) (Snapshot, []Effect) {
	s.Blurred = false
	return s, nil
}

// onVisibilityVisible performs the restricted reset: returning to a hidden
// tab discards all watched progress for the video. An ended video keeps its
// completion.
func onVisibilityVisible(s Snapshot, _ Event) (Snapshot, []Effect) {
	wasHidden := s.Hidden
	s.Hidden = false
	if !wasHidden {
		return s, nil
	}

	var effects []Effect
	switch s.State {
	case StateReady, StatePaused:
		s.State = StateReady
	case StatePlaying:
		effects = append(effects, Effect{Kind: EffectPauseMedia, Reason: ReasonRestrictedReset})
		s.State = StateReady
	case StateIdle, StateLoading:
		// 元数据尚未加载，只清空恢复的进度，状态不变
		if s.Completed || (s.CurrentTime == 0 && s.MaxWatchedTime == 0) {
			return s, nil
		}
	default:
		return s, nil
	}

	s.CurrentTime = 0
	s.MaxWatchedTime = 0
	effects = append(effects,
		Effect{Kind: EffectSetPosition, Position: 0, Reason: ReasonRestrictedReset},
		persist(ReasonRestrictedReset, model.VideoProgressUpdate{
			CurrentTime:    f64(0),
			MaxWatchedTime: f64(0),
		}),
	)
	return s, effects
}

func onEnded(s Snapshot, _ Event) (Snapshot, []Effect) {
	end := s.Duration
	if end <= 0 {
		end = math.Max(s.CurrentTime, s.MaxWatchedTime)
	}
	s.State = StateEnded
	s.CurrentTime = end
	s.MaxWatchedTime = end
	s.Completed = true

	completed := true
	return s, []Effect{
		persist(ReasonEnded, model.VideoProgressUpdate{
			Completed:      &completed,
			CurrentTime:    f64(end),
			MaxWatchedTime: f64(end),
		}),
		{Kind: EffectComplete},
	}
}

func pauseIfPlaying(s Snapshot, reason string) (Snapshot, []Effect) {
	if s.State != StatePlaying {
		return s, nil
	}
	s.State = StatePaused
	return s, []Effect{{Kind: EffectPauseMedia, Reason: reason}}
}

func persist(reason string, u model.VideoProgressUpdate) Effect {
	return Effect{Kind: EffectPersist, Update: &u, Reason: reason}
}

func failure(ev Event, fallback string) Effect {
	reason := ev.Reason
	if reason == "" {
		reason = fallback
	}
	return Effect{Kind: EffectPlaybackFailed, Reason: reason}
}

func f64(v float64) *float64 { return &v }
