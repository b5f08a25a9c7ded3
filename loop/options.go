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
	"github.com/mariodivece/hpet/clock"
	"github.com/mariodivece/hpet/platform"
	"github.com/mariodivece/hpet/precision"
)

// Options configure a Loop.
type Options struct {
	Clock        clock.Clock
	TimerService platform.TimerService
	Precision    precision.Option
	FailureHook  FailureHook
	FinishedHook FinishedHook
}

// DefaultOptions returns a new, default Options: a real monotonic clock, the
// platform's native timer service, no extra spin-wait precision, and the
// default hooks described by [FailureHook] and [FinishedHook].
func DefaultOptions() Options {
	return Options{
		Clock:        clock.NewMonotonicClock(),
		TimerService: platform.NewTimerService(),
		Precision:    precision.Default,
		FailureHook:  defaultFailureHook,
		FinishedHook: defaultFinishedHook,
	}
}

// With returns a new Options based on o with the given opts merged onto it.
func (o Options) With(opts ...Option) Options {
	for _, opt := range opts {
		opt.apply(&o)
	}

	return o
}

func (o Options) apply(other *Options) {
	if o.Clock != nil {
		other.Clock = o.Clock
	}
	if o.TimerService != nil {
		other.TimerService = o.TimerService
	}
	if o.Precision != precision.Default {
		other.Precision = o.Precision
	}
	if o.FailureHook != nil {
		other.FailureHook = o.FailureHook
	}
	if o.FinishedHook != nil {
		other.FinishedHook = o.FinishedHook
	}
}

// An Option configures a Loop.
type Option interface {
	apply(*Options)
}

// WithClock returns an Option that configures a Loop to use the given clock.
func WithClock(clk clock.Clock) Option {
	return optionFunc(func(o *Options) {
		o.Clock = clk
	})
}

// WithTimerService returns an Option that configures a Loop to use the given
// platform timer service.
func WithTimerService(svc platform.TimerService) Option {
	return optionFunc(func(o *Options) {
		o.TimerService = svc
	})
}

// WithPrecision returns an Option that configures the spin-wait aggressiveness
// of the residual delay between cycles.
func WithPrecision(p precision.Option) Option {
	return optionFunc(func(o *Options) {
		o.Precision = p
	})
}

// WithFailureHook returns an Option that installs hook as the Loop's failure
// hook.
func WithFailureHook(hook FailureHook) Option {
	return optionFunc(func(o *Options) {
		o.FailureHook = hook
	})
}

// WithFinishedHook returns an Option that installs hook as the Loop's
// finished hook.
func WithFinishedHook(hook FinishedHook) Option {
	return optionFunc(func(o *Options) {
		o.FinishedHook = hook
	})
}

type optionFunc func(*Options)

func (f optionFunc) apply(o *Options) {
	f(o)
}
