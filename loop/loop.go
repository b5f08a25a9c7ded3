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

// Package loop implements the precision loop driver: a state machine that
// repeatedly invokes a user cycle function separated by drift-corrected
// residual delays.
package loop

import (
	"context"
	"sync"

	"github.com/mariodivece/hpet/delay"
	"github.com/mariodivece/hpet/extent"
	"github.com/mariodivece/hpet/loopstate"
	"go.mway.dev/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

// A Loop repeatedly runs a [CycleFunc] at a drift-corrected interval. A Loop
// is single-use: once started and disposed, it cannot be restarted. A Loop
// is safe for concurrent use; exactly one cycle runs at a time regardless of
// how many goroutines call its methods.
type Loop struct {
	cycleFn CycleFunc
	state   *loopstate.State
	options Options

	runState atomic.Int32

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc

	wg      sync.WaitGroup
	exitErr error
}

// New returns a new Loop that invokes fn at the given interval. A
// non-positive interval is coerced to one clock tick, per the loop's
// startup contract.
func New(fn CycleFunc, interval extent.Extent, opts ...Option) (*Loop, error) {
	if fn == nil {
		return nil, ErrNilCycleFunc
	}

	options := DefaultOptions().With(opts...)

	l := &Loop{
		cycleFn: fn,
		state:   loopstate.New(interval, options.Clock),
		options: options,
	}
	l.runState.Store(int32(Created))

	return l, nil
}

// State returns l's current lifecycle state.
func (l *Loop) State() RunState {
	return RunState(l.runState.Load())
}

// Start transitions l from Created to Running and begins invoking the cycle
// function on a dedicated goroutine. Start may be called at most once; a
// second call returns ErrAlreadyStarted, a call after Dispose returns
// ErrDisposed.
func (l *Loop) Start() error {
	return l.StartWithContext(context.Background())
}

// StartWithContext behaves like Start but additionally exits the loop when
// ctx is done.
func (l *Loop) StartWithContext(ctx context.Context) error {
	if !l.runState.CompareAndSwap(int32(Created), int32(Running)) {
		if l.State() == Disposed {
			return ErrDisposed
		}
		return ErrAlreadyStarted
	}

	l.mu.Lock()
	l.ctx, l.cancel = context.WithCancel(ctx)
	runCtx := l.ctx
	l.mu.Unlock()

	ready := make(chan struct{})

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		close(ready)
		l.run(runCtx)
	}()

	<-ready
	return nil
}

// Run executes the cycle loop synchronously on the calling goroutine,
// transitioning Created to Running itself. It is the cooperative-variant
// entry point: callers that want to own the goroutine (an errgroup, a
// dedicated OS thread) call Run directly instead of Start.
func (l *Loop) Run(ctx context.Context) error {
	if !l.runState.CompareAndSwap(int32(Created), int32(Running)) {
		if l.State() == Disposed {
			return ErrDisposed
		}
		return ErrAlreadyStarted
	}

	l.mu.Lock()
	l.ctx, l.cancel = context.WithCancel(ctx)
	runCtx := l.ctx
	l.mu.Unlock()

	l.wg.Add(1)
	defer l.wg.Done()
	l.run(runCtx)

	return l.exitErr
}

// Dispose signals cancellation to the running cycle without blocking.
// Dispose is idempotent. Callers that need to wait for the loop to fully
// exit use [Loop.WaitForExit].
func (l *Loop) Dispose() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
		return
	}

	// Never started: Created -> Disposed directly: there is no running
	// cycle to cancel and nothing for WaitForExit to wait on.
	l.runState.CompareAndSwap(int32(Created), int32(Disposed))
}

// WaitForExit blocks until the loop has fully exited (the finished hook has
// returned) and returns the error, if any, that caused the exit. A
// successful exit — including ordinary cancellation — returns nil.
func (l *Loop) WaitForExit() error {
	l.wg.Wait()
	return l.exitErr
}

// run is the per-cycle algorithm of the loop's Running state. It returns
// once cancellation, a stop request, or a fatal user error is observed.
func (l *Loop) run(ctx context.Context) {
	var exitErr error

	defer func() {
		l.runState.Store(int32(Disposed))
		l.exitErr = exitErr
		l.options.FinishedHook(exitErr)
	}()

	for {
		ev := l.state.Snapshot()
		cycleErr := l.cycleFn(ctx, &ev)

		var breakAfter bool

		if ev.IsStopRequested {
			l.mu.Lock()
			if l.cancel != nil {
				l.cancel()
			}
			l.mu.Unlock()
			breakAfter = true
		}

		if cycleErr != nil && !l.options.FailureHook(cycleErr) {
			exitErr = errors.Wrap(multierr.Append(ErrUserCycleFailed, cycleErr), "cycle function failed")
			breakAfter = true
		}

		l.state.ApplyUserFeedback(ev)

		// Step 5: the residual delay always runs, even on the branches
		// above — it is cancellation-aware and returns immediately once
		// ctx is done.
		residual := l.state.NextDelay()
		if residual.Greater(extent.Zero) {
			delay.Wait(ctx, residual, l.options.Precision, l.options.TimerService, l.options.Clock)
		}

		l.state.Update()

		if breakAfter || ctxDone(ctx) {
			l.runState.Store(int32(Finishing))
			return
		}
	}
}

func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
