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

package clock

import (
	"github.com/mariodivece/hpet"
)

// A NanotimeFunc is a function that returns time as integer nanoseconds.
type NanotimeFunc = func() int64

// DefaultNanotimeFunc returns a new [NanotimeFunc] that uses [hpet.Nanotime]
// to tell time.
func DefaultNanotimeFunc() NanotimeFunc {
	return hpet.Nanotime
}

// Options configure a [Clock].
type Options struct {
	// NanotimeFunc configures the [NanotimeFunc] for a [Clock].
	NanotimeFunc NanotimeFunc
}

// DefaultOptions returns a new [Options] with sane defaults.
func DefaultOptions() Options {
	return Options{
		NanotimeFunc: DefaultNanotimeFunc(),
	}
}

func (o Options) apply(opts *Options) {
	if o.NanotimeFunc != nil {
		opts.NanotimeFunc = o.NanotimeFunc
	}
}

// An Option configures a Clock.
type Option interface {
	apply(*Options)
}

type optionFunc func(*Options)

func (f optionFunc) apply(o *Options) {
	f(o)
}

// WithNanotimeFunc returns an [Option] that configures a [Clock] to use f as
// its time function.
func WithNanotimeFunc(f NanotimeFunc) Option {
	return optionFunc(func(o *Options) {
		o.NanotimeFunc = f
	})
}
