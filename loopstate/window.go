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

	"github.com/mariodivece/hpet/extent"
)

// sampleWindow is a fixed-capacity ring buffer of interval_elapsed samples.
type sampleWindow struct {
	samples []extent.Extent
	head    int
	count   int
}

func newSampleWindow(capacity int) *sampleWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &sampleWindow{samples: make([]extent.Extent, capacity)}
}

func (w *sampleWindow) push(sample extent.Extent) {
	idx := (w.head + w.count) % len(w.samples)
	w.samples[idx] = sample
	if w.count < len(w.samples) {
		w.count++
	} else {
		w.head = (w.head + 1) % len(w.samples)
	}
}

func (w *sampleWindow) len() int {
	return w.count
}

func (w *sampleWindow) mean() extent.Extent {
	if w.count == 0 {
		return extent.Zero
	}

	sum := extent.Zero
	for i := 0; i < w.count; i++ {
		sum = sum.Add(w.samples[(w.head+i)%len(w.samples)])
	}

	return sum.Div(float64(w.count))
}

// jitter returns the population standard deviation of the window's samples
// relative to target.
func (w *sampleWindow) jitter(target extent.Extent) extent.Extent {
	if w.count == 0 {
		return extent.Zero
	}

	var sumSquares float64
	for i := 0; i < w.count; i++ {
		d := w.samples[(w.head+i)%len(w.samples)].Sub(target).Seconds()
		sumSquares += d * d
	}

	return extent.FromSeconds(math.Sqrt(sumSquares / float64(w.count)))
}
