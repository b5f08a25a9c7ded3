// Copyright (c) 2023 Matt Way
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE THE SOFTWARE.

// Package loopstate holds the per-cycle statistics, drift tracking, and
// missed-cycle detection that back the precision loop driver.
package loopstate

import (
	"github.com/mariodivece/hpet/extent"
)

// A CycleEvent is the immutable-by-convention snapshot handed to a loop's
// cycle function at the start of every cycle. The loop driver owns the
// CycleEvent it hands out; only IsStopRequested travels back to the driver,
// via a write-read after the cycle function returns.
type CycleEvent struct {
	// EventIndex is 0-based and monotonically increases; it skips ahead when
	// cycles were missed.
	EventIndex uint64
	// MissedCount is the number of cycles missed immediately before this one.
	MissedCount uint64
	// TotalMissed is the accumulated missed-cycle count over the loop's
	// lifetime.
	TotalMissed uint64
	// Interval is the target interval currently configured for the loop.
	Interval extent.Extent
	// IntervalElapsed is the actual, drift-adjusted wall time between the
	// previous and current cycle start.
	IntervalElapsed extent.Extent
	// IntervalAverage is the windowed mean of IntervalElapsed.
	IntervalAverage extent.Extent
	// Frequency is 1/IntervalAverage in Hz, or 0 if IntervalAverage is zero.
	Frequency float64
	// IntervalJitter is the windowed standard deviation of IntervalElapsed
	// relative to Interval.
	IntervalJitter extent.Extent
	// NaturalElapsed is the wall time since the loop's first cycle start.
	NaturalElapsed extent.Extent
	// DiscreteElapsed is the sum of all IntervalElapsed values emitted so
	// far.
	DiscreteElapsed extent.Extent
	// IsStopRequested may be set by the cycle function to ask the driver to
	// stop after the current cycle. The driver reads this back after the
	// cycle function returns.
	IsStopRequested bool
}
