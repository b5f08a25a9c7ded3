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
	"go.mway.dev/errors"
)

var (
	// ErrAlreadyStarted is returned by Start when the Loop has already left
	// the Created state.
	ErrAlreadyStarted = errors.New("loop already started")

	// ErrDisposed is returned by any method invoked after the Loop has been
	// disposed.
	ErrDisposed = errors.New("loop disposed")

	// ErrPlatformTimer wraps a one-shot scheduling failure surfaced by the
	// platform timer service. It is fatal only to the delay call that
	// produced it.
	ErrPlatformTimer = errors.New("platform timer scheduling failed")

	// ErrUserCycleFailed wraps an error returned by the user's cycle
	// function after the failure hook declined to continue.
	ErrUserCycleFailed = errors.New("user cycle function failed")

	// ErrNilCycleFunc is returned by New when no cycle function is given.
	ErrNilCycleFunc = errors.New("nil cycle function")
)
