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

// Package delay implements the precision delay primitive: a wait that
// composes chunked sub-millisecond sleeps with a final tight spin, closing
// the gap OS sleep primitives habitually overshoot by.
package delay

import (
	"context"
	"runtime"
	"time"

	"github.com/mariodivece/hpet/clock"
	"github.com/mariodivece/hpet/extent"
	"github.com/mariodivece/hpet/precision"
	"github.com/mariodivece/hpet/platform"
)

// chunk is the granularity of every non-final sleep: sleeping in pieces this
// small keeps the wait responsive to cancellation and lets the OS scheduler
// interleave other work.
const chunk = time.Millisecond

// Wait blocks the calling goroutine until dur has elapsed, ctx is done, or
// dur is non-positive, and returns the actual elapsed Extent. A non-positive
// or NaN dur returns immediately with Zero.
func Wait(ctx context.Context, dur extent.Extent, opt precision.Option, svc platform.TimerService, clk clock.Clock) extent.Extent {
	return run(ctx, dur, opt, svc, clk, clk.Sleep)
}

// WaitAsync behaves like Wait but runs on its own goroutine, delivering the
// elapsed Extent on the returned channel exactly once.
func WaitAsync(ctx context.Context, dur extent.Extent, opt precision.Option, svc platform.TimerService, clk clock.Clock) <-chan extent.Extent {
	out := make(chan extent.Extent, 1)

	go func() {
		defer close(out)
		out <- run(ctx, dur, opt, svc, clk, func(d time.Duration) {
			select {
			case <-clk.After(d):
			case <-ctx.Done():
			}
		})
	}()

	return out
}

// run implements spec's chunked-sleep-plus-spin algorithm. sleepChunk
// performs one ≤chunk wait; Wait and WaitAsync differ only in how that wait
// cooperates with the caller's goroutine.
func run(
	ctx context.Context,
	dur extent.Extent,
	opt precision.Option,
	svc platform.TimerService,
	clk clock.Clock,
	sleepChunk func(time.Duration),
) extent.Extent {
	if dur.IsNaN() || dur.LessOrEqual(extent.Zero) {
		return extent.Zero
	}

	var (
		minPeriod  = svc.MinPeriod()
		spinBudget = time.Duration(float64(minPeriod) * opt.Factor())
		start      = clk.Nanotime()
	)

	// A failure to raise the platform period is non-fatal; the algorithm
	// still runs, just with coarser sleeps.
	_ = svc.BeginPeriod(minPeriod)
	defer func() { _ = svc.EndPeriod(minPeriod) }()

	for {
		elapsed := extent.FromTicks(clk.Nanotime() - start)

		if isCancelled(ctx) || elapsed.GreaterOrEqual(dur) {
			return elapsed
		}

		remaining := dur.Sub(elapsed)
		if spinBudget > 0 && remaining.Duration() <= spinBudget {
			return spin(ctx, dur, start, clk)
		}

		sleepChunk(chunk)
	}
}

// spin busy-waits until dur has elapsed since start or ctx is cancelled,
// yielding the processor between checks.
func spin(ctx context.Context, dur extent.Extent, start int64, clk clock.Clock) extent.Extent {
	for {
		elapsed := extent.FromTicks(clk.Nanotime() - start)
		if isCancelled(ctx) || elapsed.GreaterOrEqual(dur) {
			return elapsed
		}
		runtime.Gosched()
	}
}

func isCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
