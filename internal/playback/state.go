package playback

import (
	"course_cert_backend/internal/model"
	"errors"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateEnded   State = "ended"
)

type EventKind string

const (
	EvLoadStarted       EventKind = "load_started"
	EvMetadataLoaded    EventKind = "metadata_loaded"
	EvLoadFailed        EventKind = "load_failed"
	EvTimeUpdate        EventKind = "time_update"
	EvSeek              EventKind = "seek"
	EvRewind            EventKind = "rewind"
	EvPlayRequested     EventKind = "play_requested"
	EvPlaying           EventKind = "playing"
	EvPlayFailed        EventKind = "play_failed"
	EvPause             EventKind = "pause"
	EvVisibilityHidden  EventKind = "visibility_hidden"
	EvVisibilityVisible EventKind = "visibility_visible"
	EvWindowBlur        EventKind = "window_blur"
	EvWindowFocus       EventKind = "window_focus"
	EvEnded             EventKind = "ended"
)

// Event is one media, control or visibility signal from the client.
type Event struct {
	Kind     EventKind `json:"type" binding:"required"`
	Duration float64   `json:"duration,omitempty"` // metadata_loaded
	Position float64   `json:"position,omitempty"` // time_update, seek
	Seconds  float64   `json:"seconds,omitempty"`  // rewind
	Reason   string    `json:"reason,omitempty"`   // load_failed, play_failed
}

type EffectKind string

const (
	// EffectPersist carries a progress update for the progress engine.
	EffectPersist EffectKind = "persist_progress"
	// EffectComplete tells the caller the video reached its end (present the quiz).
	EffectComplete EffectKind = "video_completed"
	// EffectPauseMedia asks the client to pause the media element.
	EffectPauseMedia EffectKind = "pause_media"
	// EffectSetPosition asks the client to move the media element to Position.
	EffectSetPosition EffectKind = "set_position"
	// EffectRequestPlay asks the client to call play(); success is reported back as EvPlaying.
	EffectRequestPlay EffectKind = "request_play"
	// EffectPlaybackFailed surfaces a load/play failure so the caller can fall back.
	EffectPlaybackFailed EffectKind = "playback_failed"
)

const (
	ReasonForwardSeekRejected = "forward_seek_rejected"
	ReasonRestrictedReset     = "restricted_reset"
	ReasonHidden              = "hidden"
	ReasonBlur                = "blur"
	ReasonRestore             = "restore"
	ReasonRewind              = "rewind"
	ReasonSeek                = "seek"
	ReasonProgress            = "progress"
	ReasonEnded               = "ended"
)

type Effect struct {
	Kind     EffectKind                 `json:"type"`
	Update   *model.VideoProgressUpdate `json:"update,omitempty"`
	Position float64                    `json:"position,omitempty"`
	Reason   string                     `json:"reason,omitempty"`
}

// Snapshot is the complete guard state; transitions are pure functions over it.
type Snapshot struct {
	State          State   `json:"state"`
	Duration       float64 `json:"duration"`
	CurrentTime    float64 `json:"currentTime"`
	MaxWatchedTime float64 `json:"maxWatchedTime"`
	Hidden         bool    `json:"hidden"`
	Blurred        bool    `json:"blurred"`
	Completed      bool    `json:"completed"`
}

// Restore builds the initial snapshot from stored progress. The restored
// position never exceeds the restored max watched time.
func Restore(prior *model.VideoProgress) Snapshot {
	s := Snapshot{State: StateIdle}
	if prior == nil {
		return s
	}
	s.MaxWatchedTime = nonNegative(prior.MaxWatchedTime)
	s.CurrentTime = clamp(prior.CurrentTime, 0, s.MaxWatchedTime)
	s.Completed = prior.Completed
	return s
}

var (
	ErrEventNotAllowed = errors.New("event not allowed in current playback state")
	ErrInvalidEvent    = errors.New("invalid playback event")
)
