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

// Package precision defines the spin-budget setting used by the delay
// primitive to trade CPU for jitter.
package precision

// An Option controls how aggressively [delay.Wait] and [delay.WaitAsync]
// spin-wait the tail of a delay instead of sleeping through it.
type Option uint8

const (
	// Default never spins; the delay is composed entirely of chunked OS
	// sleeps. Lowest CPU cost, highest jitter.
	Default Option = iota
	// Medium spins for up to 2/3 of the platform's minimum period.
	Medium
	// High spins for up to 4/3 of the platform's minimum period.
	High
	// Maximum spins for up to 2x the platform's minimum period.
	Maximum
)

// Factor returns the fraction (as a multiple of the platform minimum period)
// of the tail of a delay that o will spin-wait rather than sleep through.
func (o Option) Factor() float64 {
	switch o {
	case Medium:
		return 2.0 / 3.0
	case High:
		return 4.0 / 3.0
	case Maximum:
		return 2
	default:
		return 0
	}
}

// String returns the name of o.
func (o Option) String() string {
	switch o {
	case Medium:
		return "Medium"
	case High:
		return "High"
	case Maximum:
		return "Maximum"
	default:
		return "Default"
	}
}
