package types

import "fmt"

// Millis is an integer duration in simulated milliseconds.
type Millis int64

// String renders the raw millisecond count, e.g. "1490ms".
func (m Millis) String() string { return fmt.Sprintf("%dms", int64(m)) }

// Humanized returns a human-readable string with automatic unit (ms, s, min, h).
func (m Millis) Humanized() string {
	v := float64(m)
	switch {
	case m >= 3_600_000:
		return fmt.Sprintf("%.2f h", v/3_600_000)
	case m >= 60_000:
		return fmt.Sprintf("%.2f min", v/60_000)
	case m >= 1_000:
		return fmt.Sprintf("%.2f s", v/1_000)
	default:
		return fmt.Sprintf("%d ms", int64(m))
	}
}

// Seconds returns the duration in seconds.
func (m Millis) Seconds() float64 { return float64(m) / 1_000 }

// Minutes returns the duration in minutes.
func (m Millis) Minutes() float64 { return float64(m) / 60_000 }
