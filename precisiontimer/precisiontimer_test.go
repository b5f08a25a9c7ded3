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

package precisiontimer_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/mariodivece/hpet/clock"
	"github.com/mariodivece/hpet/extent"
	"github.com/mariodivece/hpet/loop"
	"github.com/mariodivece/hpet/loopstate"
	"github.com/mariodivece/hpet/platform"
	"github.com/mariodivece/hpet/precisiontimer"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type assertError struct{}

func (assertError) Error() string { return "scheduling failed" }

func TestPrecisionTimer_FiresObserverOnEachCycle(t *testing.T) {
	clk := clock.NewFakeClock()
	svc := platform.NewTimerServiceWithClock(clk)

	pt := precisiontimer.New(extent.FromMilliseconds(1), loop.WithClock(clk), loop.WithTimerService(svc))

	var fires int32
	require.NoError(t, pt.Subscribe(func(loopstate.CycleEvent) {
		atomic.AddInt32(&fires, 1)
	}))

	require.NoError(t, pt.Start())

	for atomic.LoadInt32(&fires) < 3 {
		clk.Add(time.Millisecond)
		time.Sleep(time.Millisecond)
	}

	pt.Dispose()
	require.NoError(t, pt.WaitForExit())
	require.GreaterOrEqual(t, atomic.LoadInt32(&fires), int32(3))
}

func TestPrecisionTimer_SubscribeTwiceFails(t *testing.T) {
	pt := precisiontimer.New(extent.FromMilliseconds(1))

	require.NoError(t, pt.Subscribe(func(loopstate.CycleEvent) {}))
	err := pt.Subscribe(func(loopstate.CycleEvent) {})
	require.ErrorIs(t, err, precisiontimer.ErrObserverAlreadySet)
}

func TestPrecisionTimer_SubscribeNilRejected(t *testing.T) {
	pt := precisiontimer.New(extent.FromMilliseconds(1))
	err := pt.Subscribe(nil)
	require.ErrorIs(t, err, precisiontimer.ErrNilObserver)
}

func TestPrecisionTimer_DisposeBeforeStart(t *testing.T) {
	pt := precisiontimer.New(extent.FromMilliseconds(1))

	require.Equal(t, loop.Created, pt.State())
	pt.Dispose()
	require.Equal(t, loop.Disposed, pt.State())
	require.NoError(t, pt.WaitForExit())
}

func TestPrecisionTimer_StartTwiceFails(t *testing.T) {
	clk := clock.NewFakeClock()
	svc := platform.NewTimerServiceWithClock(clk)

	pt := precisiontimer.New(extent.FromMilliseconds(1), loop.WithClock(clk), loop.WithTimerService(svc))
	require.NoError(t, pt.Subscribe(func(loopstate.CycleEvent) {}))

	require.NoError(t, pt.Start())
	require.ErrorIs(t, pt.Start(), loop.ErrAlreadyStarted)

	pt.Dispose()
	require.NoError(t, pt.WaitForExit())
}

func TestPrecisionTimer_SchedulingFailureSurfacesAsPlatformTimerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := platform.NewMockTimerService(ctrl)

	mock.EXPECT().
		ScheduleOneShot(gomock.Any(), gomock.Any()).
		Return(platform.OneShotID(0), assertError{})

	pt := precisiontimer.New(extent.FromMilliseconds(1), loop.WithTimerService(mock))
	require.NoError(t, pt.Subscribe(func(loopstate.CycleEvent) {}))

	err := pt.Start()
	require.Error(t, err)
	require.ErrorIs(t, err, loop.ErrPlatformTimer)

	err = pt.WaitForExit()
	require.Error(t, err)
	require.ErrorIs(t, err, loop.ErrPlatformTimer)
}
