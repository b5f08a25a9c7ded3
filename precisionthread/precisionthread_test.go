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

package precisionthread_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/mariodivece/hpet/clock"
	"github.com/mariodivece/hpet/extent"
	"github.com/mariodivece/hpet/loop"
	"github.com/mariodivece/hpet/loopstate"
	"github.com/mariodivece/hpet/platform"
	"github.com/mariodivece/hpet/precisionthread"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPrecisionThread_RunsCyclesUntilStopRequested(t *testing.T) {
	clk := clock.NewFakeClock()
	svc := platform.NewTimerServiceWithClock(clk)

	var count int32

	pt, err := precisionthread.New(func(ev *loopstate.CycleEvent) error {
		n := atomic.AddInt32(&count, 1)
		if n >= 3 {
			ev.IsStopRequested = true
		}
		return nil
	}, extent.FromMilliseconds(1), loop.WithClock(clk), loop.WithTimerService(svc))
	require.NoError(t, err)

	require.NoError(t, pt.Start())

	for atomic.LoadInt32(&count) < 3 {
		clk.Add(time.Millisecond)
		time.Sleep(time.Millisecond)
	}

	require.NoError(t, pt.WaitForExit())
	require.EqualValues(t, 3, atomic.LoadInt32(&count))
	require.Equal(t, loop.Disposed, pt.State())
}

func TestPrecisionThread_NilFuncRejected(t *testing.T) {
	_, err := precisionthread.New(nil, extent.FromMilliseconds(1))
	require.ErrorIs(t, err, loop.ErrNilCycleFunc)
}

func TestPrecisionThread_DisposeBeforeStart(t *testing.T) {
	pt, err := precisionthread.New(func(*loopstate.CycleEvent) error {
		return nil
	}, extent.FromMilliseconds(1))
	require.NoError(t, err)

	require.Equal(t, loop.Created, pt.State())
	pt.Dispose()
	require.Equal(t, loop.Disposed, pt.State())
}
