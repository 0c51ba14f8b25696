package playback

import (
	"fmt"
	"math"
)

// Rewind steps offered by the player controls, in seconds.
const (
	RewindShort = 10
	RewindLong  = 30
)

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// FormatClock renders seconds as m:ss, e.g. 125 -> "2:05".
func FormatClock(seconds float64) string {
	total := int(math.Floor(nonNegative(seconds)))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// WatchedFraction is maxWatchedTime / duration in [0,1]; 0 for unknown duration.
func WatchedFraction(s Snapshot) float64 {
	if s.Duration <= 0 {
		return 0
	}
	return clamp(s.MaxWatchedTime/s.Duration, 0, 1)
}
