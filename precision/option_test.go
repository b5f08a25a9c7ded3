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

package precision_test

import (
	"testing"

	"github.com/mariodivece/hpet/precision"
	"github.com/stretchr/testify/require"
)

func TestOption_Factor(t *testing.T) {
	require.Zero(t, precision.Default.Factor())
	require.InDelta(t, 2.0/3.0, precision.Medium.Factor(), 1e-9)
	require.InDelta(t, 4.0/3.0, precision.High.Factor(), 1e-9)
	require.Equal(t, 2.0, precision.Maximum.Factor())
}

func TestOption_String(t *testing.T) {
	require.Equal(t, "Default", precision.Default.String())
	require.Equal(t, "Medium", precision.Medium.String())
	require.Equal(t, "High", precision.High.String())
	require.Equal(t, "Maximum", precision.Maximum.String())
	require.Equal(t, "Default", precision.Option(99).String())
}
