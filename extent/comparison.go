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

package extent

// Less reports whether e is strictly less than other. NaN is unordered: if
// either operand is NaN, Less returns false.
func (e Extent) Less(other Extent) bool {
	if e.IsNaN() || other.IsNaN() {
		return false
	}
	return e.ticks < other.ticks
}

// Greater reports whether e is strictly greater than other. NaN is
// unordered: if either operand is NaN, Greater returns false.
func (e Extent) Greater(other Extent) bool {
	if e.IsNaN() || other.IsNaN() {
		return false
	}
	return e.ticks > other.ticks
}

// Equal reports whether e and other represent the same duration. NaN never
// equals anything, including itself.
func (e Extent) Equal(other Extent) bool {
	if e.IsNaN() || other.IsNaN() {
		return false
	}
	return e.ticks == other.ticks
}

// LessOrEqual reports whether e is less than or equal to other. NaN is
// unordered: if either operand is NaN, LessOrEqual returns false.
func (e Extent) LessOrEqual(other Extent) bool {
	return e.Less(other) || e.Equal(other)
}

// GreaterOrEqual reports whether e is greater than or equal to other. NaN is
// unordered: if either operand is NaN, GreaterOrEqual returns false.
func (e Extent) GreaterOrEqual(other Extent) bool {
	return e.Greater(other) || e.Equal(other)
}
