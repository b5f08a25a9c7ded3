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

// Package extent provides Extent, a nullable, high-resolution duration value
// with arithmetic over both durations and real-valued seconds, carrying a
// distinguished NaN the way a floating-point value does.
package extent

import (
	"math"
	"strconv"
	"time"

	"github.com/mariodivece/hpet"
)

// Extent is an immutable, high-resolution duration. The zero Extent is Zero.
// Extent's tick count is nanosecond-resolution, matching [time.Duration], but
// three of its int64 values are reserved to represent NaN, positive infinity,
// and negative infinity; MinValue and MaxValue are the finite values
// adjacent to them.
type Extent struct {
	ticks int64
}

const (
	tickNaN    = int64(math.MinInt64)
	tickNegInf = int64(math.MinInt64) + 1
	tickPosInf = int64(math.MaxInt64)
	tickMin    = int64(math.MinInt64) + 2
	tickMax    = int64(math.MaxInt64) - 1
)

var (
	// Zero is the zero-length Extent.
	Zero = Extent{ticks: 0}
	// One is an Extent of exactly one second.
	One = Extent{ticks: int64(time.Second)}
	// NaN is the distinguished not-a-number Extent. Any arithmetic involving
	// NaN yields NaN; any comparison involving NaN is false.
	NaN = Extent{ticks: tickNaN}
	// PositiveInfinity is the distinguished positive-infinity Extent.
	PositiveInfinity = Extent{ticks: tickPosInf}
	// NegativeInfinity is the distinguished negative-infinity Extent.
	NegativeInfinity = Extent{ticks: tickNegInf}
	// MinValue is the smallest finite Extent representable.
	MinValue = Extent{ticks: tickMin}
	// MaxValue is the largest finite Extent representable.
	MaxValue = Extent{ticks: tickMax}
)

// FromSeconds returns an Extent of f seconds. A non-finite f (NaN or either
// infinity) yields NaN.
func FromSeconds(f float64) Extent {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NaN
	}
	return fromSecondsSaturating(f)
}

// FromMilliseconds returns an Extent of f milliseconds. A non-finite f yields
// NaN.
func FromMilliseconds(f float64) Extent {
	return FromSeconds(f / 1000)
}

// FromTicks returns an Extent of exactly n nanosecond ticks, clamped to
// [MinValue, MaxValue].
func FromTicks(n int64) Extent {
	switch {
	case n < tickMin:
		return MinValue
	case n > tickMax:
		return MaxValue
	default:
		return Extent{ticks: n}
	}
}

// FromHertz returns the period of cps cycles per second, i.e. 1/cps seconds.
// A zero or non-finite cps yields NaN.
func FromHertz(cps float64) Extent {
	return FromSeconds(1 / cps)
}

// FromDuration converts a [time.Duration] to an Extent, preserving NaN by
// mapping [time.Duration]'s sentinel minimum value back to NaN.
func FromDuration(d time.Duration) Extent {
	if int64(d) == math.MinInt64 {
		return NaN
	}
	return FromTicks(int64(d))
}

// FromElapsed returns the Extent elapsed since since, as measured by the
// package's monotonic clock source.
func FromElapsed(since hpet.Timestamp) Extent {
	return FromTicks(hpet.Nanotime() - since.UnixNano())
}

// Duration converts e to a [time.Duration], preserving NaN by mapping it to
// the platform's sentinel minimum [time.Duration] value.
func (e Extent) Duration() time.Duration {
	switch e.ticks {
	case tickNaN:
		return time.Duration(math.MinInt64)
	case tickPosInf:
		return time.Duration(math.MaxInt64)
	case tickNegInf:
		return time.Duration(math.MinInt64 + 1)
	default:
		return time.Duration(e.ticks)
	}
}

// Seconds returns e as a real-valued number of seconds.
func (e Extent) Seconds() float64 {
	switch e.ticks {
	case tickNaN:
		return math.NaN()
	case tickPosInf:
		return math.Inf(1)
	case tickNegInf:
		return math.Inf(-1)
	default:
		return float64(e.ticks) / float64(time.Second)
	}
}

// Milliseconds returns e as a real-valued number of milliseconds.
func (e Extent) Milliseconds() float64 {
	return e.Seconds() * 1000
}

// Ticks returns e's raw nanosecond tick count. For NaN and the infinities,
// this is the reserved sentinel value, not a meaningful duration.
func (e Extent) Ticks() int64 {
	return e.ticks
}

// IsNaN reports whether e is the distinguished NaN value.
func (e Extent) IsNaN() bool {
	return e.ticks == tickNaN
}

// IsInf reports whether e is positive or negative infinity.
func (e Extent) IsInf() bool {
	return e.ticks == tickPosInf || e.ticks == tickNegInf
}

// IsZero reports whether e is exactly Zero.
func (e Extent) IsZero() bool {
	return e.ticks == 0
}

// String returns e's seconds value formatted to four decimal places in an
// invariant locale. NaN formats as "NaN"; the infinities format as "+Inf" and
// "-Inf".
func (e Extent) String() string {
	switch e.ticks {
	case tickNaN:
		return "NaN"
	case tickPosInf:
		return "+Inf"
	case tickNegInf:
		return "-Inf"
	default:
		return strconv.FormatFloat(e.Seconds(), 'f', 4, 64)
	}
}

// fromSecondsSaturating converts a finite number of seconds to an Extent,
// clamping overflow to MinValue/MaxValue rather than producing an infinity:
// per the arithmetic contract, infinities are only ever explicit operands,
// never a spontaneous result of overflow.
func fromSecondsSaturating(seconds float64) Extent {
	ticks := math.Round(seconds * float64(time.Second))
	if ticks > float64(tickMax) {
		return MaxValue
	}
	if ticks < float64(tickMin) {
		return MinValue
	}
	return Extent{ticks: int64(ticks)}
}
