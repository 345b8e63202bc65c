package models

import (
	"fmt"
	"time"
)

// TimeOfDay is a day-local time expressed as minutes from midnight (0-1439).
type TimeOfDay int

const MinutesPerDay = 24 * 60

// NewTimeOfDay builds a TimeOfDay from wall-clock hours and minutes.
func NewTimeOfDay(hours, minutes int) (TimeOfDay, error) {
	if hours < 0 || hours > 23 {
		return 0, fmt.Errorf("hours out of range: %d", hours)
	}
	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("minutes out of range: %d", minutes)
	}
	return TimeOfDay(hours*60 + minutes), nil
}

// MinutesOfDay projects a timestamp onto its minutes-from-midnight component.
func MinutesOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Hours returns the hour component (0-23).
func (t TimeOfDay) Hours() int { return int(t) / 60 }

// Minutes returns the minute component (0-59).
func (t TimeOfDay) Minutes() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours(), t.Minutes())
}

// Interval is a half-open [Start, End) window within a single day.
// An interval may not cross midnight.
type Interval struct {
	Start TimeOfDay `bson:"start" json:"start"`
	End   TimeOfDay `bson:"end" json:"end"`
}

// Validate checks the End > Start invariant and day bounds.
func (iv Interval) Validate() error {
	if iv.Start < 0 || iv.End > MinutesPerDay {
		return fmt.Errorf("interval %s-%s outside day bounds", iv.Start, iv.End)
	}
	if iv.End <= iv.Start {
		return fmt.Errorf("interval end %s must be after start %s", iv.End, iv.Start)
	}
	return nil
}

// Overlaps reports whether the two half-open intervals share any instant.
// The four textbook cases (a starts inside b, a ends inside b, a contains b,
// b contains a) all reduce to this single comparison.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Contains reports whether inner lies entirely within iv.
func (iv Interval) Contains(inner Interval) bool {
	return inner.Start >= iv.Start && inner.End <= iv.End
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return int(iv.End - iv.Start)
}
