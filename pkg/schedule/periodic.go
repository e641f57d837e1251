package schedule

import (
	"time"

	"github.com/tgrange/nextwake/pkg/datemath"
	"github.com/tgrange/nextwake/pkg/unit"
)

// Periodic is an anchored recurring schedule: it occurs at its anchor and
// then every step units after it. Months step through the calendar with
// end-of-month clamping; all other units have fixed lengths. Immutable once
// constructed.
type Periodic struct {
	anchor time.Time
	unit   unit.Unit
	step   float64
}

// NewPeriodic creates an anchored periodic schedule. The step must be
// positive, and a whole number when the unit is months; violations are
// rejected here rather than coerced.
func NewPeriodic(anchor time.Time, u unit.Unit, step float64) (*Periodic, error) {
	if u < unit.Seconds || u > unit.Months {
		return nil, unit.ErrInvalidUnit
	}
	if step <= 0 {
		return nil, unit.ErrInvalidStep
	}
	if u == unit.Months {
		if _, ok := unit.Whole(step); !ok {
			return nil, unit.ErrInvalidStep
		}
	}
	return &Periodic{anchor: anchor, unit: u, step: step}, nil
}

// Anchor returns the schedule's first occurrence.
func (p *Periodic) Anchor() time.Time { return p.anchor }

// Unit returns the schedule's step unit.
func (p *Periodic) Unit() unit.Unit { return p.unit }

// Step returns the schedule's step count.
func (p *Periodic) Step() float64 { return p.step }

// Next returns the first occurrence at or after from.
//
// Before the anchor the schedule has not started, so the anchor itself is
// next. From the anchor on, fixed-length units repeat modularly and the
// result is strictly after from: an elapsed time that is an exact multiple
// of the period waits a full period rather than occurring immediately.
// Months walk the calendar from the anchor in step-sized increments until a
// candidate reaches from; a clamped candidate landing exactly on from counts
// as the next occurrence.
func (p *Periodic) Next(from time.Time) time.Time {
	if from.Before(p.anchor) {
		return p.anchor
	}

	if p.unit == unit.Months {
		step, _ := unit.Whole(p.step)
		for k := 0; ; k += step {
			if c := datemath.AddMonths(p.anchor, k); !c.Before(from) {
				return c
			}
		}
	}

	secs, _ := unit.ToSeconds(p.step, p.unit, from)
	period := time.Duration(secs * float64(time.Second))
	return from.Add(period - from.Sub(p.anchor)%period)
}
