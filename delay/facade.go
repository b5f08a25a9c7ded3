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

package delay

import (
	"context"
	"sync"

	"github.com/mariodivece/hpet/clock"
	"github.com/mariodivece/hpet/extent"
	"github.com/mariodivece/hpet/platform"
	"github.com/mariodivece/hpet/precision"
)

var (
	_defaultFacadeOnce sync.Once
	_defaultClock      clock.Clock
	_defaultService    platform.TimerService
)

func defaultClockAndService() (clock.Clock, platform.TimerService) {
	_defaultFacadeOnce.Do(func() {
		_defaultClock = clock.NewMonotonicClock()
		_defaultService = platform.NewTimerService()
	})
	return _defaultClock, _defaultService
}

// Delay blocks the calling goroutine for dur, using the platform's real
// monotonic clock and native timer service. It is a thin convenience
// wrapper over [Wait] for callers that have no need to inject their own
// clock or platform.TimerService.
func Delay(ctx context.Context, dur extent.Extent, opt precision.Option) extent.Extent {
	clk, svc := defaultClockAndService()
	return Wait(ctx, dur, opt, svc, clk)
}

// DelayAsync is the asynchronous counterpart of [Delay], a thin convenience
// wrapper over [WaitAsync].
func DelayAsync(ctx context.Context, dur extent.Extent, opt precision.Option) <-chan extent.Extent {
	clk, svc := defaultClockAndService()
	return WaitAsync(ctx, dur, opt, svc, clk)
}
