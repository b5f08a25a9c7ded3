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

// Package platform abstracts the OS-level timer facilities a precision
// delay needs: the system's minimum schedulable period, the ability to
// temporarily raise that period, and a one-shot callback scheduler.
package platform

import (
	"time"

	"go.mway.dev/errors"
)

// ErrNilCallback is returned by ScheduleOneShot when fn is nil.
var ErrNilCallback = errors.New("nil one-shot callback")

// A OneShotID identifies a scheduled one-shot callback for cancellation.
type OneShotID uint64

// A TimerService exposes the platform timer facilities a precision delay
// needs. Implementations must be safe for concurrent use.
type TimerService interface {
	// MinPeriod returns the smallest period the platform can reliably
	// schedule without raising its global timer resolution.
	MinPeriod() time.Duration

	// BeginPeriod requests that the platform raise its global timer
	// resolution to at least d. Callers must pair every BeginPeriod with a
	// matching EndPeriod.
	BeginPeriod(d time.Duration) error

	// EndPeriod releases a resolution request made by a prior BeginPeriod
	// with the same d.
	EndPeriod(d time.Duration) error

	// ScheduleOneShot schedules fn to run once, after d elapses, and
	// returns an id usable with CancelOneShot. ScheduleOneShot returns
	// ErrNilCallback if fn is nil.
	ScheduleOneShot(d time.Duration, fn func()) (OneShotID, error)

	// CancelOneShot cancels a previously scheduled one-shot callback. It is
	// not an error to cancel a callback that has already fired.
	CancelOneShot(id OneShotID) error
}

// NewTimerService returns the TimerService appropriate for the running
// platform.
func NewTimerService() TimerService {
	return newPlatformTimerService()
}
