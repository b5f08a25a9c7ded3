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

// Package precisiontimer implements the observer variant of the precision
// loop driver. Unlike [precisionthread.PrecisionThread] and
// [precisiontask.PrecisionTask], it does not own a goroutine at all: it is
// a reactive state machine that reschedules itself through
// platform.TimerService.ScheduleOneShot after every cycle, fan-out to a
// single subscribed observer.
package precisiontimer

import (
	"context"
	"sync"

	"github.com/mariodivece/hpet/clock"
	"github.com/mariodivece/hpet/extent"
	"github.com/mariodivece/hpet/loop"
	"github.com/mariodivece/hpet/loopstate"
	"github.com/mariodivece/hpet/platform"
	"go.mway.dev/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

var (
	// ErrNilObserver is returned by Subscribe when fn is nil.
	ErrNilObserver = errors.New("nil observer")

	// ErrObserverAlreadySet is returned by Subscribe when a PrecisionTimer
	// already has a subscriber: only a single observer slot is supported.
	ErrObserverAlreadySet = errors.New("observer already set")
)

// An Observer receives a read-only snapshot of the driver's state once per
// cycle. It has no way to request that the PrecisionTimer stop; callers
// that need that control dispose the PrecisionTimer explicitly.
type Observer func(loopstate.CycleEvent)

// A PrecisionTimer drives a single [Observer] at a drift-corrected interval
// by recursively rescheduling itself on a platform.TimerService, rather
// than blocking a dedicated goroutine. Construct with [New], attach exactly
// one subscriber with [PrecisionTimer.Subscribe], then call
// [PrecisionTimer.Start].
type PrecisionTimer struct {
	state *loopstate.State
	svc   platform.TimerService
	clk   clock.Clock

	runState atomic.Int32

	mu        sync.Mutex
	observer  Observer
	ctx       context.Context
	cancel    context.CancelFunc
	oneShotID platform.OneShotID

	finishOnce sync.Once
	doneCh     chan struct{}
	exitErr    error
}

// New returns a new PrecisionTimer targeting interval. A non-positive
// interval is coerced to one clock tick.
func New(interval extent.Extent, opts ...loop.Option) *PrecisionTimer {
	options := loop.DefaultOptions().With(opts...)

	pt := &PrecisionTimer{
		state:  loopstate.New(interval, options.Clock),
		svc:    options.TimerService,
		clk:    options.Clock,
		doneCh: make(chan struct{}),
	}
	pt.runState.Store(int32(loop.Created))

	return pt
}

// Subscribe attaches fn as pt's single observer. Subscribe returns
// ErrObserverAlreadySet if an observer is already attached; the single
// observer slot cannot be replaced once set.
func (pt *PrecisionTimer) Subscribe(fn Observer) error {
	if fn == nil {
		return ErrNilObserver
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.observer != nil {
		return ErrObserverAlreadySet
	}
	pt.observer = fn

	return nil
}

// State returns pt's current lifecycle state.
func (pt *PrecisionTimer) State() loop.RunState {
	return loop.RunState(pt.runState.Load())
}

// Start transitions pt from Created to Running and schedules its first
// cycle via the platform timer service. Start may be called at most once; a
// second call returns ErrAlreadyStarted, a call after Dispose returns
// ErrDisposed. A scheduling failure at Start time is both returned directly
// and recorded as the completion error observed by WaitForExit.
func (pt *PrecisionTimer) Start() error {
	if !pt.runState.CompareAndSwap(int32(loop.Created), int32(loop.Running)) {
		if pt.State() == loop.Disposed {
			return loop.ErrDisposed
		}
		return loop.ErrAlreadyStarted
	}

	pt.mu.Lock()
	pt.ctx, pt.cancel = context.WithCancel(context.Background())
	pt.mu.Unlock()

	return pt.scheduleNext(pt.state.NextDelay())
}

// scheduleNext asks the platform timer service to invoke fire after d, the
// single code path through which every cycle — including the first — is
// reached.
func (pt *PrecisionTimer) scheduleNext(d extent.Extent) error {
	id, err := pt.svc.ScheduleOneShot(d.Duration(), pt.fire)
	if err != nil {
		wrapped := errors.Wrap(multierr.Append(loop.ErrPlatformTimer, err), "one-shot scheduling failed")
		pt.finish(wrapped)
		return wrapped
	}

	pt.mu.Lock()
	pt.oneShotID = id
	ctx := pt.ctx
	pt.mu.Unlock()

	// Dispose may have run between the scheduling call above and here;
	// cancel the shot we just won the race to schedule.
	if ctxDone(ctx) {
		_ = pt.svc.CancelOneShot(id)
		pt.finish(nil)
	}

	return nil
}

// fire runs one cycle: it is invoked by the platform timer service, never
// directly by pt's own callers.
func (pt *PrecisionTimer) fire() {
	pt.mu.Lock()
	ctx := pt.ctx
	observer := pt.observer
	pt.mu.Unlock()

	if ctxDone(ctx) {
		pt.finish(nil)
		return
	}

	ev := pt.state.Snapshot()
	if observer != nil {
		observer(ev)
	}
	pt.state.ApplyUserFeedback(ev)
	pt.state.Update()

	if ctxDone(ctx) {
		pt.finish(nil)
		return
	}

	_ = pt.scheduleNext(pt.state.NextDelay())
}

// Dispose signals cancellation without blocking; the in-flight or
// about-to-be-scheduled cycle observes it at its next wake and the
// PrecisionTimer finishes without running another cycle. Dispose is
// idempotent. Callers that need to wait for that to complete use
// [PrecisionTimer.WaitForExit].
func (pt *PrecisionTimer) Dispose() {
	pt.mu.Lock()
	cancel := pt.cancel
	id := pt.oneShotID
	pt.mu.Unlock()

	if cancel != nil {
		cancel()
		_ = pt.svc.CancelOneShot(id)
	} else {
		// Never started: there is no scheduled shot to cancel and nothing
		// for WaitForExit to wait on.
		pt.runState.CompareAndSwap(int32(loop.Created), int32(loop.Disposed))
	}

	pt.finish(nil)
}

// WaitForExit blocks until pt has fully finished and returns the error, if
// any, that caused the exit.
func (pt *PrecisionTimer) WaitForExit() error {
	<-pt.doneCh
	return pt.exitErr
}

func (pt *PrecisionTimer) finish(err error) {
	pt.finishOnce.Do(func() {
		pt.exitErr = err
		pt.runState.Store(int32(loop.Disposed))
		close(pt.doneCh)
	})
}

func ctxDone(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
