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

// RunState is the lifecycle state of a Loop.
type RunState int32

const (
	// Created is the state a Loop is constructed in.
	Created RunState = iota
	// Running is entered by the first call to Start.
	Running
	// Finishing is entered once cancellation, a stop request, or a fatal
	// user error has been observed; the current cycle and its residual
	// delay are still allowed to complete.
	Finishing
	// Disposed is the terminal state; no further transitions are legal.
	Disposed
)

// String returns the name of s.
func (s RunState) String() string {
	switch s {
	case Created:
		return "Created"
	case Running:
		return "Running"
	case Finishing:
		return "Finishing"
	case Disposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}
