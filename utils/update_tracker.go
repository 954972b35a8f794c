package utils

import (
	"time"

	m "pfeifer.dev/controlsd/math"
)

// UpdateTracker measures the period between updates, e.g. control cycles.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
	Lagging  bool
}

func (u *UpdateTracker) Init(maLength int) {
	u.Time = time.Now()
	u.LastTime = u.Time
	u.DiffMA.Init(maLength)
	u.Lagging = false
}

// Update records an update at now. The tracker is lagging while the average
// period exceeds expected by more than tolerance.
func (u *UpdateTracker) Update(now time.Time, expected time.Duration, tolerance float64) {
	u.LastTime = u.Time
	u.Time = now
	avg := u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
	u.Lagging = avg > expected.Seconds()*(1+tolerance)
}

// Period is the averaged update period.
func (u *UpdateTracker) Period() time.Duration {
	return time.Duration(u.DiffMA.Estimate * float64(time.Second))
}
