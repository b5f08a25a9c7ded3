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

package extent_test

import (
	"math"
	"testing"
	"time"

	"github.com/mariodivece/hpet/extent"
	"github.com/stretchr/testify/require"
)

func TestFromSeconds(t *testing.T) {
	require.InDelta(t, 1.5, extent.FromSeconds(1.5).Seconds(), 1e-9)
	require.True(t, extent.FromSeconds(math.Inf(1)).IsNaN())
	require.True(t, extent.FromSeconds(math.Inf(-1)).IsNaN())
	require.True(t, extent.FromSeconds(math.NaN()).IsNaN())
}

func TestFromMilliseconds(t *testing.T) {
	require.True(t, extent.FromMilliseconds(1500).Equal(extent.FromSeconds(1.5)))
}

func TestFromHertz(t *testing.T) {
	require.True(t, extent.FromHertz(1).Equal(extent.One))
	require.True(t, extent.FromHertz(0).IsNaN())
}

func TestFromTicks_Clamps(t *testing.T) {
	require.True(t, extent.FromTicks(math.MinInt64).Equal(extent.MinValue))
	require.True(t, extent.FromTicks(math.MaxInt64).Equal(extent.MaxValue))
}

func TestDuration_RoundTrip(t *testing.T) {
	e := extent.FromSeconds(2.5)
	require.Equal(t, 2500*time.Millisecond, e.Duration())
	require.True(t, extent.FromDuration(e.Duration()).Equal(e))
}

func TestDuration_NaN(t *testing.T) {
	require.Equal(t, time.Duration(math.MinInt64), extent.NaN.Duration())
	require.True(t, extent.FromDuration(time.Duration(math.MinInt64)).IsNaN())
}

func TestArithmetic_NaNAbsorbing(t *testing.T) {
	require.True(t, extent.NaN.Add(extent.One).IsNaN())
	require.True(t, extent.One.Add(extent.NaN).IsNaN())
	require.True(t, extent.NaN.Sub(extent.One).IsNaN())
	require.True(t, extent.NaN.Mul(2).IsNaN())
	require.True(t, extent.NaN.Div(2).IsNaN())
	require.True(t, extent.NaN.Mod(extent.One).IsNaN())
}

func TestArithmetic_SecondsMixed(t *testing.T) {
	require.True(t, extent.One.AddSeconds(1).Equal(extent.FromSeconds(2)))
	require.True(t, extent.FromSeconds(3).SubSeconds(1).Equal(extent.FromSeconds(2)))
}

func TestArithmetic_Mod(t *testing.T) {
	interval := extent.FromMilliseconds(10)
	elapsed := extent.FromMilliseconds(35)
	require.True(t, elapsed.Mod(interval).Equal(extent.FromMilliseconds(5)))
}

func TestArithmetic_Overflow_Saturates(t *testing.T) {
	require.True(t, extent.MaxValue.Add(extent.MaxValue).Equal(extent.MaxValue))
	require.True(t, extent.MinValue.Add(extent.MinValue).Equal(extent.MinValue))
}

func TestComparison_NaNUnordered(t *testing.T) {
	require.False(t, extent.NaN.Less(extent.Zero))
	require.False(t, extent.Zero.Less(extent.NaN))
	require.False(t, extent.NaN.Greater(extent.Zero))
	require.False(t, extent.NaN.Equal(extent.NaN))
}

func TestComparison_Ordering(t *testing.T) {
	require.True(t, extent.Zero.Less(extent.One))
	require.True(t, extent.One.Greater(extent.Zero))
	require.True(t, extent.One.Equal(extent.FromSeconds(1)))
}

func TestString(t *testing.T) {
	require.Equal(t, "1.5000", extent.FromSeconds(1.5).String())
	require.Equal(t, "NaN", extent.NaN.String())
	require.Equal(t, "+Inf", extent.PositiveInfinity.String())
	require.Equal(t, "-Inf", extent.NegativeInfinity.String())
}

func TestClamp(t *testing.T) {
	lo, hi := extent.Zero, extent.FromSeconds(1)
	require.True(t, extent.FromSeconds(-1).Clamp(lo, hi).Equal(lo))
	require.True(t, extent.FromSeconds(2).Clamp(lo, hi).Equal(hi))
	require.True(t, extent.FromSeconds(0.5).Clamp(lo, hi).Equal(extent.FromSeconds(0.5)))
}
