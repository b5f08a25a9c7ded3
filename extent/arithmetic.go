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

package extent

import (
	"math"

	mwaymath "go.mway.dev/math"
)

// Add returns e+other. If either operand is NaN, the result is NaN.
func (e Extent) Add(other Extent) Extent {
	if e.IsNaN() || other.IsNaN() {
		return NaN
	}
	if e.IsInf() || other.IsInf() {
		return signedInfinity(e.Seconds() + other.Seconds())
	}
	return fromSecondsSaturating(e.Seconds() + other.Seconds())
}

// AddSeconds returns e plus s seconds. s is interpreted as seconds.
func (e Extent) AddSeconds(s float64) Extent {
	return e.Add(FromSeconds(s))
}

// Sub returns e-other. If either operand is NaN, the result is NaN.
func (e Extent) Sub(other Extent) Extent {
	if e.IsNaN() || other.IsNaN() {
		return NaN
	}
	if e.IsInf() || other.IsInf() {
		return signedInfinity(e.Seconds() - other.Seconds())
	}
	return fromSecondsSaturating(e.Seconds() - other.Seconds())
}

// SubSeconds returns e minus s seconds. s is interpreted as seconds.
func (e Extent) SubSeconds(s float64) Extent {
	return e.Sub(FromSeconds(s))
}

// Mul returns e scaled by factor. If either operand is NaN, the result is
// NaN.
func (e Extent) Mul(factor float64) Extent {
	if e.IsNaN() || math.IsNaN(factor) {
		return NaN
	}
	return FromSeconds(e.Seconds() * factor)
}

// MulExtent multiplies e and other as real-valued seconds. Dimensionally odd,
// but supported for parity with the source's generic duration arithmetic.
func (e Extent) MulExtent(other Extent) Extent {
	if e.IsNaN() || other.IsNaN() {
		return NaN
	}
	return FromSeconds(e.Seconds() * other.Seconds())
}

// Div returns e divided by divisor. Division by zero yields NaN, matching
// the non-finite-result-is-NaN construction rule.
func (e Extent) Div(divisor float64) Extent {
	if e.IsNaN() || math.IsNaN(divisor) {
		return NaN
	}
	return FromSeconds(e.Seconds() / divisor)
}

// DivExtent divides e by other as real-valued seconds.
func (e Extent) DivExtent(other Extent) Extent {
	if e.IsNaN() || other.IsNaN() {
		return NaN
	}
	return FromSeconds(e.Seconds() / other.Seconds())
}

// Mod returns e modulo other, clamping the correction to within one other as
// the drift-correction algorithm in loopstate requires. Modulo by a zero,
// infinite, or NaN operand yields NaN.
func (e Extent) Mod(other Extent) Extent {
	if e.IsNaN() || other.IsNaN() || e.IsInf() || other.IsInf() || other.ticks == 0 {
		return NaN
	}
	return fromSecondsSaturating(math.Mod(e.Seconds(), other.Seconds()))
}

// ModSeconds returns e modulo s seconds.
func (e Extent) ModSeconds(s float64) Extent {
	return e.Mod(FromSeconds(s))
}

// Neg returns -e.
func (e Extent) Neg() Extent {
	if e.IsNaN() {
		return NaN
	}
	switch e.ticks {
	case tickPosInf:
		return NegativeInfinity
	case tickNegInf:
		return PositiveInfinity
	default:
		return fromSecondsSaturating(-e.Seconds())
	}
}

// Abs returns the absolute value of e.
func (e Extent) Abs() Extent {
	if e.Less(Zero) {
		return e.Neg()
	}
	return e
}

// Clamp returns e clamped to the inclusive range [lo, hi]. If any of e, lo,
// or hi is NaN, the result is NaN.
func (e Extent) Clamp(lo, hi Extent) Extent {
	if e.IsNaN() || lo.IsNaN() || hi.IsNaN() {
		return NaN
	}
	return Extent{ticks: mwaymath.Max(mwaymath.Min(e.ticks, hi.ticks), lo.ticks)}
}

func signedInfinity(seconds float64) Extent {
	if math.IsNaN(seconds) {
		return NaN
	}
	if seconds > 0 {
		return PositiveInfinity
	}
	if seconds < 0 {
		return NegativeInfinity
	}
	return Zero
}
