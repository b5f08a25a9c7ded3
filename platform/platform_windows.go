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

//go:build windows

package platform

import (
	"sync"
	"time"
	"unsafe"

	"go.uber.org/atomic"
	"golang.org/x/sys/windows"
)

var (
	winmm                = windows.NewLazySystemDLL("winmm.dll")
	procTimeBeginPeriod  = winmm.NewProc("timeBeginPeriod")
	procTimeEndPeriod    = winmm.NewProc("timeEndPeriod")
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procSetWaitableTimer = kernel32.NewProc("SetWaitableTimerEx")
	timerExtendedAccess  = uint32(0x1F0003) // TIMER_ALL_ACCESS
)

func newPlatformTimerService() TimerService {
	return &windowsTimerService{
		timers: make(map[OneShotID]*windowsOneShot),
	}
}

var _ TimerService = (*windowsTimerService)(nil)

// windowsTimerService raises the global multimedia timer resolution via
// winmm and schedules one-shot callbacks on waitable timer objects, which
// on modern Windows can fire with sub-millisecond accuracy.
type windowsTimerService struct {
	mu     sync.Mutex
	nextID atomic.Uint64
	timers map[OneShotID]*windowsOneShot
}

type windowsOneShot struct {
	handle windows.Handle
	stop   chan struct{}
}

func (s *windowsTimerService) MinPeriod() time.Duration {
	return time.Millisecond
}

func (s *windowsTimerService) BeginPeriod(d time.Duration) error {
	ret, _, _ := procTimeBeginPeriod.Call(uintptr(d.Milliseconds()))
	if ret != 0 {
		return windows.Errno(ret)
	}
	return nil
}

func (s *windowsTimerService) EndPeriod(d time.Duration) error {
	ret, _, _ := procTimeEndPeriod.Call(uintptr(d.Milliseconds()))
	if ret != 0 {
		return windows.Errno(ret)
	}
	return nil
}

func (s *windowsTimerService) ScheduleOneShot(d time.Duration, fn func()) (OneShotID, error) {
	if fn == nil {
		return 0, ErrNilCallback
	}

	handle, err := windows.CreateWaitableTimerEx(
		nil,
		nil,
		windows.CREATE_WAITABLE_TIMER_HIGH_RESOLUTION,
		timerExtendedAccess,
	)
	if err != nil {
		return 0, err
	}

	due := -int64(d / 100) // 100ns units, negative for relative time
	ret, _, callErr := procSetWaitableTimer.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(&due)),
		0, 0, 0, 0, 0,
	)
	if ret == 0 {
		windows.CloseHandle(handle)
		return 0, callErr
	}

	one := &windowsOneShot{handle: handle, stop: make(chan struct{})}
	id := OneShotID(s.nextID.Add(1))

	s.mu.Lock()
	s.timers[id] = one
	s.mu.Unlock()

	go func() {
		events := []windows.Handle{handle}
		idx, err := windows.WaitForMultipleObjects(events, false, windows.INFINITE)
		_ = idx
		_ = err

		s.mu.Lock()
		_, stillScheduled := s.timers[id]
		delete(s.timers, id)
		s.mu.Unlock()

		windows.CloseHandle(handle)
		if stillScheduled {
			fn()
		}
	}()

	return id, nil
}

func (s *windowsTimerService) CancelOneShot(id OneShotID) error {
	s.mu.Lock()
	one, ok := s.timers[id]
	delete(s.timers, id)
	s.mu.Unlock()

	if !ok {
		return nil
	}

	return windows.CancelWaitableTimer(one.handle)
}
