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

package loop

import (
	"context"

	"github.com/mariodivece/hpet/loopstate"
)

// A CycleFunc performs one cycle's user work. The driver hands it a pointer
// to the cycle's event snapshot; the cycle function may set
// ev.IsStopRequested to ask the driver to stop after this cycle. CycleFunc
// must abide by ctx: the cooperative variant awaits it directly.
type CycleFunc func(ctx context.Context, ev *loopstate.CycleEvent) error

// A FailureHook is invoked when a CycleFunc returns an error. It reports
// whether the loop should continue running; false requests exit, in which
// case the error is attached to the completion handle.
type FailureHook func(err error) (continueLoop bool)

// A FinishedHook is invoked exactly once, after the loop has fully exited,
// with the error (if any) that caused the exit.
type FinishedHook func(err error)

// defaultFailureHook always requests exit, per the loop's "errors are never
// swallowed silently" contract.
func defaultFailureHook(error) bool {
	return false
}

func defaultFinishedHook(error) {}
