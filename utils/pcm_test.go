// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: math.MinInt16},
		{name: "half positive truncates", input: 0.5, want: 16383}, // 16383.5
		{name: "half negative", input: -0.5, want: -16384},
		{name: "quarter positive", input: 0.25, want: 8191}, // 8191.75
		{name: "quarter negative", input: -0.25, want: -8192},
		{name: "small positive", input: 0.001, want: 32},
		{name: "small negative truncates toward zero", input: -0.001, want: -32},
		{name: "product just below an integer", input: 0.00079348125, want: 25},
		{name: "negative product just below an integer", input: -0.00079348125, want: -26},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp under min", input: -1.5, want: math.MinInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: math.MinInt16},
		{name: "positive infinity", input: float32(math.Inf(1)), want: math.MaxInt16},
		{name: "negative infinity", input: float32(math.Inf(-1)), want: math.MinInt16},
		{name: "NaN", input: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16Range checks the full range never overflows and
// stays within one step of the ideal scale.
func TestFloat32ToInt16Range(t *testing.T) {
	t.Parallel()

	for f := -1.0; f <= 1.0; f += 0.001 {
		got := int32(Float32ToInt16(float32(f)))

		scale := 32767.0
		if f < 0 {
			scale = 32768.0
		}
		ideal := f * scale
		if math.Abs(float64(got)-ideal) > 1.01 {
			t.Errorf("Float32ToInt16(%v) = %d, want within 1 of %v", f, got, ideal)
		}
	}
}

// TestFloat32ToInt16Exact walks float32 bit patterns across [-1, 1] and
// compares against the exact product truncated toward zero.
func TestFloat32ToInt16Exact(t *testing.T) {
	t.Parallel()

	const stride = 509
	one := math.Float32bits(1)
	for bits := uint32(0); bits <= one; bits += stride {
		for _, x := range []float32{math.Float32frombits(bits), -math.Float32frombits(bits)} {
			scale := 32767.0
			if x < 0 {
				scale = 32768.0
			}
			want := int16(math.Trunc(float64(x) * scale))
			if got := Float32ToInt16(x); got != want {
				t.Fatalf("Float32ToInt16(%v) = %d, want %d", x, got, want)
			}
		}
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.999; f <= 1.0; f += 0.001 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %d, previous was %d", f, curr, prev)
		}
		prev = curr
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int16
		want  float32
	}{
		{0, 0},
		{math.MinInt16, -1},
		{math.MaxInt16, 1},
		{-16384, -0.5},
	}

	for _, tt := range tests {
		if got := Int16ToFloat32(tt.input); got != tt.want {
			t.Errorf("Int16ToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestQuantisationRoundTrip checks float -> int16 -> float stays within one
// quantisation step.
func TestQuantisationRoundTrip(t *testing.T) {
	t.Parallel()

	const step = 1.0/32767.0 + 1e-6
	for f := -1.0; f <= 1.0; f += 0.0037 {
		back := Int16ToFloat32(Float32ToInt16(float32(f)))
		if diff := math.Abs(float64(back) - f); diff > step {
			t.Errorf("round trip of %v gave %v (diff %v > %v)", f, back, diff, step)
		}
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16
	input := float32(0.5)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		result = Float32ToInt16(input)
	}

	_ = result
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.75)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
