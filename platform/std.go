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

package platform

import (
	"sync"
	"time"

	"github.com/mariodivece/hpet/clock"
	"go.uber.org/atomic"
)

// stdMinPeriod is the period most non-Windows schedulers can hit reliably
// without any global resolution request.
const stdMinPeriod = time.Millisecond

var _ TimerService = (*stdTimerService)(nil)

// stdTimerService is the TimerService used wherever the platform has no
// global timer-resolution primitive to raise. BeginPeriod/EndPeriod are
// no-ops; one-shot scheduling rides on clock.Clock.AfterFunc.
type stdTimerService struct {
	clk    clock.Clock
	nextID atomic.Uint64
	mu     sync.Mutex
	timers map[OneShotID]clock.Timer
}

func newStdTimerService(clk clock.Clock) *stdTimerService {
	return &stdTimerService{
		clk:    clk,
		timers: make(map[OneShotID]clock.Timer),
	}
}

// NewTimerServiceWithClock returns a TimerService backed by clk instead of
// the real monotonic clock, for deterministic tests.
func NewTimerServiceWithClock(clk clock.Clock) TimerService {
	return newStdTimerService(clk)
}

func (s *stdTimerService) MinPeriod() time.Duration {
	return stdMinPeriod
}

func (s *stdTimerService) BeginPeriod(time.Duration) error {
	return nil
}

func (s *stdTimerService) EndPeriod(time.Duration) error {
	return nil
}

func (s *stdTimerService) ScheduleOneShot(d time.Duration, fn func()) (OneShotID, error) {
	if fn == nil {
		return 0, ErrNilCallback
	}

	id := OneShotID(s.nextID.Add(1))
	timer := s.clk.AfterFunc(d, fn)

	s.mu.Lock()
	s.timers[id] = timer
	s.mu.Unlock()

	return id, nil
}

func (s *stdTimerService) CancelOneShot(id OneShotID) error {
	s.mu.Lock()
	timer, ok := s.timers[id]
	delete(s.timers, id)
	s.mu.Unlock()

	if ok {
		timer.Stop()
	}
	return nil
}
