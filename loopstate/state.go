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

package loopstate

import (
	"math"

	"github.com/mariodivece/hpet"
	"github.com/mariodivece/hpet/clock"
	"github.com/mariodivece/hpet/extent"
	mwaymath "go.mway.dev/math"
)

// sampleThreshold is T in the source: drift correction engages once the
// window holds T/2 samples, and T is the floor for the rolling window size W.
const sampleThreshold = 10

// State is the per-loop book-keeping described by the source: drift
// tracking, the rolling sample window, and missed-cycle detection. State is
// not safe for concurrent use; it is owned exclusively by a single loop
// driver.
type State struct {
	clock clock.Clock

	interval extent.Extent
	nextDelay extent.Extent

	currentTick  hpet.Timestamp
	naturalStart hpet.Timestamp

	discreteElapsed extent.Extent
	naturalElapsed  extent.Extent

	window *sampleWindow

	eventIndex  uint64
	missedCount uint64
	totalMissed uint64

	intervalElapsed extent.Extent
	intervalAverage extent.Extent
	intervalJitter  extent.Extent
	frequency       float64

	started       bool
	stopRequested bool
}

// New returns a new State targeting interval, using clk as its time source.
// A non-positive interval is coerced to one clock tick, per the loop's
// startup contract.
func New(interval extent.Extent, clk clock.Clock) *State {
	interval = coerceInterval(interval)

	return &State{
		clock:    clk,
		interval: interval,
		// The first cycle fires immediately; Update's first call treats
		// interval_elapsed and next_delay_prev as both zero, which resolves
		// to next_delay == interval for every cycle after the first.
		nextDelay:       extent.Zero,
		currentTick:     hpet.NewTimestampFromNanos(clk.Nanotime()),
		discreteElapsed: extent.Zero,
		naturalElapsed:  extent.Zero,
		window:          newSampleWindow(windowCapacity(interval)),
		intervalElapsed: extent.Zero,
		intervalAverage: extent.Zero,
		intervalJitter:  extent.Zero,
	}
}

// Interval returns the interval currently configured for s.
func (s *State) Interval() extent.Extent {
	return s.interval
}

// SetInterval reconfigures the target interval, effective on the next
// Update. A non-positive interval is coerced to one clock tick.
func (s *State) SetInterval(interval extent.Extent) {
	interval = coerceInterval(interval)
	if interval.Equal(s.interval) {
		return
	}

	s.interval = interval
	s.window = newSampleWindow(windowCapacity(interval))
}

// NextDelay returns the residual delay the driver should wait out before the
// next cycle's user work.
func (s *State) NextDelay() extent.Extent {
	return s.nextDelay
}

// Snapshot returns an immutable copy of s's publicly visible fields, for
// handing to a loop's cycle function.
func (s *State) Snapshot() CycleEvent {
	return CycleEvent{
		EventIndex:      s.eventIndex,
		MissedCount:     s.missedCount,
		TotalMissed:     s.totalMissed,
		Interval:        s.interval,
		IntervalElapsed: s.intervalElapsed,
		IntervalAverage: s.intervalAverage,
		Frequency:       s.frequency,
		IntervalJitter:  s.intervalJitter,
		NaturalElapsed:  s.naturalElapsed,
		DiscreteElapsed: s.discreteElapsed,
	}
}

// ApplyUserFeedback reads back the parts of ev a cycle function is allowed
// to mutate. Only IsStopRequested travels from the cycle function back into
// s; every other field is the driver's own bookkeeping and is ignored here.
func (s *State) ApplyUserFeedback(ev CycleEvent) {
	s.stopRequested = s.stopRequested || ev.IsStopRequested
}

// StopRequested reports whether any cycle so far has set IsStopRequested.
func (s *State) StopRequested() bool {
	return s.stopRequested
}

// Update performs the per-cycle statistics, drift, and missed-cycle update
// described by the source, and returns the resulting snapshot. Update must
// be called exactly once per cycle, after the cycle's user work and its
// subsequent residual delay have both returned.
func (s *State) Update() CycleEvent {
	prevTick := s.currentTick

	now := s.clock.Nanotime()

	var elapsedRaw extent.Extent
	if s.started {
		elapsedRaw = extent.FromTicks(now - prevTick.UnixNano())
	} else {
		elapsedRaw = extent.Zero
	}

	s.currentTick = hpet.NewTimestampFromNanos(now)
	interval := s.interval

	// Step 1: natural drift, added to the raw elapsed before accumulating
	// into discrete_elapsed.
	var naturalDrift extent.Extent
	if s.started {
		naturalDrift = s.naturalElapsed.Sub(s.discreteElapsed).Mod(interval)
	} else {
		naturalDrift = extent.Zero
	}
	intervalElapsed := elapsedRaw.Add(naturalDrift)

	// Step 2: carry over the previous cycle's residual.
	nextDelay := interval.Sub(intervalElapsed.Sub(s.nextDelay))

	// Step 3: discrete elapsed.
	s.discreteElapsed = s.discreteElapsed.Add(intervalElapsed)

	// Step 4: natural elapsed.
	if !s.started {
		s.naturalStart = prevTick
		s.naturalElapsed = s.discreteElapsed
	} else {
		s.naturalElapsed = extent.FromTicks(now - s.naturalStart.UnixNano())
	}

	// Step 5: windowed statistics.
	s.window.push(intervalElapsed)
	average := s.window.mean()
	jitter := s.window.jitter(interval)

	var frequency float64
	if !average.IsZero() {
		frequency = 1 / average.Seconds()
	}

	// Step 6: average drift correction, once enough samples have
	// accumulated.
	if s.window.len() >= sampleThreshold/2 {
		averageDrift := average.Sub(interval).Mod(interval)
		nextDelay = nextDelay.Sub(averageDrift)
	}

	// Step 7: missed cycles.
	var missed uint64
	if nextDelay.LessOrEqual(extent.Zero) {
		ratio := math.Floor(nextDelay.Neg().Seconds() / interval.Seconds())
		missed = 1 + uint64(ratio)
		s.totalMissed += missed
		nextDelay = interval
	}

	// Step 8: advance the event index.
	s.eventIndex += 1 + missed

	s.nextDelay = nextDelay
	s.intervalElapsed = intervalElapsed
	s.intervalAverage = average
	s.intervalJitter = jitter
	s.frequency = frequency
	s.missedCount = missed
	s.started = true

	return s.Snapshot()
}

func coerceInterval(interval extent.Extent) extent.Extent {
	if interval.IsNaN() || interval.LessOrEqual(extent.Zero) {
		return extent.FromTicks(1)
	}
	return interval
}

// windowCapacity returns W = max(T, ceil(1s/interval)).
func windowCapacity(interval extent.Extent) int {
	seconds := interval.Seconds()
	if seconds <= 0 {
		return sampleThreshold
	}

	return int(mwaymath.Max(float64(sampleThreshold), math.Ceil(1/seconds)))
}
