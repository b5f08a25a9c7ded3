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

// Package precisionthread runs a user function on a dedicated background
// goroutine at a drift-corrected interval: the thread variant of the
// precision loop driver.
package precisionthread

import (
	"context"

	"github.com/mariodivece/hpet/extent"
	"github.com/mariodivece/hpet/loop"
	"github.com/mariodivece/hpet/loopstate"
)

// A Func performs one cycle's work. It may set ev.IsStopRequested to ask
// the PrecisionThread to stop after this cycle.
type Func func(ev *loopstate.CycleEvent) error

// A PrecisionThread runs a Func on a dedicated background goroutine at a
// drift-corrected interval.
type PrecisionThread struct {
	loop *loop.Loop
}

// New returns a new PrecisionThread invoking fn at the given interval. A
// non-positive interval is coerced to one clock tick.
func New(fn Func, interval extent.Extent, opts ...loop.Option) (*PrecisionThread, error) {
	if fn == nil {
		return nil, loop.ErrNilCycleFunc
	}

	l, err := loop.New(adapt(fn), interval, opts...)
	if err != nil {
		return nil, err
	}

	return &PrecisionThread{loop: l}, nil
}

func adapt(fn Func) loop.CycleFunc {
	return func(_ context.Context, ev *loopstate.CycleEvent) error {
		return fn(ev)
	}
}

// Start begins running fn on a dedicated goroutine. Start may be called at
// most once.
func (p *PrecisionThread) Start() error {
	return p.loop.Start()
}

// Dispose signals cancellation to the running cycle without blocking.
// Dispose is idempotent.
func (p *PrecisionThread) Dispose() {
	p.loop.Dispose()
}

// WaitForExit blocks until the PrecisionThread has fully exited and returns
// the error, if any, that caused the exit.
func (p *PrecisionThread) WaitForExit() error {
	return p.loop.WaitForExit()
}

// State returns the PrecisionThread's current lifecycle state.
func (p *PrecisionThread) State() loop.RunState {
	return p.loop.State()
}
