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

// Package precisiontask runs a user function as a managed goroutine under a
// context-scoped [golang.org/x/sync/errgroup.Group]: the cooperative variant
// of the precision loop driver, for callers that already structure their
// concurrency around an errgroup and want the cycle loop to participate in
// it rather than own a goroutine of its own.
package precisiontask

import (
	"context"

	"github.com/mariodivece/hpet/extent"
	"github.com/mariodivece/hpet/loop"
	"github.com/mariodivece/hpet/loopstate"
	"golang.org/x/sync/errgroup"
)

// A Func performs one cycle's work, cooperatively observing ctx. It may set
// ev.IsStopRequested to ask the PrecisionTask to stop after this cycle.
type Func func(ctx context.Context, ev *loopstate.CycleEvent) error

// A PrecisionTask drives a Func at a drift-corrected interval as a member of
// an errgroup.Group, so its failure cancels sibling tasks in the same group
// and a sibling's failure cancels it.
type PrecisionTask struct {
	loop *loop.Loop
}

// New returns a new PrecisionTask invoking fn at the given interval. A
// non-positive interval is coerced to one clock tick.
func New(fn Func, interval extent.Extent, opts ...loop.Option) (*PrecisionTask, error) {
	if fn == nil {
		return nil, loop.ErrNilCycleFunc
	}

	l, err := loop.New(loop.CycleFunc(fn), interval, opts...)
	if err != nil {
		return nil, err
	}

	return &PrecisionTask{loop: l}, nil
}

// Go registers the PrecisionTask's loop with g and runs it under ctx; when
// ctx is the context returned by errgroup.WithContext, a failing member task
// (including this one) cancels the others. Go does not block; the loop
// begins running on a goroutine owned by g.
func (p *PrecisionTask) Go(g *errgroup.Group, ctx context.Context) {
	g.Go(func() error {
		return p.loop.Run(ctx)
	})
}

// Dispose signals cancellation to the running cycle without blocking.
// Dispose is idempotent.
func (p *PrecisionTask) Dispose() {
	p.loop.Dispose()
}

// WaitForExit blocks until the PrecisionTask has fully exited and returns
// the error, if any, that caused the exit. Callers driving multiple
// PrecisionTasks under a shared errgroup.Group typically call g.Wait()
// instead, which aggregates all member errors.
func (p *PrecisionTask) WaitForExit() error {
	return p.loop.WaitForExit()
}

// State returns the PrecisionTask's current lifecycle state.
func (p *PrecisionTask) State() loop.RunState {
	return p.loop.State()
}

// Run drives count independent PrecisionTasks to completion under a single
// errgroup.Group derived from ctx, returning the first non-nil error from
// any of them (or nil if all exit cleanly). It is a convenience entry point
// for the common case of fanning out several related cycle loops together.
func Run(ctx context.Context, tasks ...*PrecisionTask) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task.Go(g, gctx)
	}
	return g.Wait()
}
