// Package countdown derives the time remaining until a fixed target instant
// and the fraction of a range (normally one calendar year) that has already
// elapsed. Every function here is a pure function of the instant it is
// given; callers own the clock and the tick schedule.
package countdown

import (
	"fmt"
	"time"
)

// Millisecond spans used to decompose a difference.
const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining is a non-negative duration split into calendar-free units.
// Hours, Minutes and Seconds are always within [0,23], [0,59], [0,59].
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Decompose floors d to whole milliseconds and splits it into days, hours,
// minutes and seconds. Non-positive durations yield the zero Remaining.
func Decompose(d time.Duration) Remaining {
	ms := d.Milliseconds()
	if ms <= 0 {
		return Remaining{}
	}
	return Remaining{
		Days:    int(ms / msPerDay),
		Hours:   int((ms / msPerHour) % 24),
		Minutes: int((ms / msPerMinute) % 60),
		Seconds: int((ms / msPerSecond) % 60),
	}
}

// IsZero reports whether nothing remains.
func (r Remaining) IsZero() bool {
	return r == Remaining{}
}

// String formats r as "12d 3h 4m 5s".
func (r Remaining) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}

// Compact formats the most significant non-zero unit together with the
// unit below it: "73d 4h", "4h 2m", "2m 1s", or "9s".
func (r Remaining) Compact() string {
	switch {
	case r.Days > 0:
		return fmt.Sprintf("%dd %dh", r.Days, r.Hours)
	case r.Hours > 0:
		return fmt.Sprintf("%dh %dm", r.Hours, r.Minutes)
	case r.Minutes > 0:
		return fmt.Sprintf("%dm %ds", r.Minutes, r.Seconds)
	default:
		return fmt.Sprintf("%ds", r.Seconds)
	}
}

// Countdown counts down to Target and measures progress across the range
// [RangeStart, Target]. The zero value is not useful; use New or fill in
// both instants.
type Countdown struct {
	Target     time.Time
	RangeStart time.Time

	// Clamp restricts Progress to [0,100]. Without it, instants before
	// RangeStart produce negative progress.
	Clamp bool
}

// New returns a clamped Countdown whose range starts at the beginning of the
// target's year.
func New(target time.Time) Countdown {
	return Countdown{
		Target:     target,
		RangeStart: StartOfYear(target),
		Clamp:      true,
	}
}

// Remaining returns the time left until the target at now.
func (c Countdown) Remaining(now time.Time) Remaining {
	return Decompose(c.Target.Sub(now))
}

// Progress returns the elapsed percentage of the range at now:
//
//	(1 - remaining/(target - rangeStart)) * 100
//
// Once the target is reached, or when the range is empty, progress is 100.
func (c Countdown) Progress(now time.Time) float64 {
	remaining := c.Target.Sub(now).Milliseconds()
	if remaining <= 0 {
		return 100
	}
	span := c.Target.Sub(c.RangeStart).Milliseconds()
	if span <= 0 {
		return 100
	}

	p := (1 - float64(remaining)/float64(span)) * 100
	if c.Clamp {
		p = clampPercent(p)
	}
	return p
}

// Done reports whether the target has been reached at now.
func (c Countdown) Done(now time.Time) bool {
	return !now.Before(c.Target)
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// StartOfYear returns midnight on January 1st of t's year, in t's location.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns 23:59:59 on December 31st of t's year, in t's location.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 23, 59, 59, 0, t.Location())
}
