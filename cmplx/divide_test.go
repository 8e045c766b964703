// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build !cmath_float32

package cmplx

import "testing"

func TestDivExact(t *testing.T) {
	for _, tt := range []struct {
		a, b, want Complex
	}{
		// Real denominators divide componentwise.
		{complex(5, 3), complex(2, 0), complex(2.5, 1.5)},
		{complex(-1, 4), complex(-2, 0), complex(0.5, -2)},
		// 1/i = -i.
		{complex(1, 0), complex(0, 1), complex(0, -1)},
		{complex(0, 2), complex(0, 1), complex(2, 0)},
		// Equal operands cancel exactly even when the textbook
		// denominator |b|**2 would overflow.
		{complex(1e200, 1e200), complex(1e200, 1e200), complex(1, 0)},
		// A tiny denominator must not underflow to zero first.
		{complex(1e-200, 0), complex(1e-200, 1e-200), complex(0.5, -0.5)},
	} {
		if got := div(tt.a, tt.b); !cAlike(got, tt.want) {
			t.Errorf("div(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivByZero(t *testing.T) {
	got := div(complex(1, 1), complex(0, 0))
	if !IsNaN(got) {
		t.Errorf("div(1+1i, 0) = %v, want NaN components", got)
	}
}

func TestDivAgainstNative(t *testing.T) {
	as := []Complex{2.5 + 1.5i, -3 + 0.5i, 1 - 2i, 0.25 + 3i}
	bs := []Complex{1 + 2i, -0.5 + 0.125i, 3 - 4i, -2 - 2i}
	for _, a := range as {
		for _, b := range bs {
			got := div(a, b)
			want := a / b
			if !cClose(got, want) {
				t.Errorf("div(%v, %v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestDivMulRoundTrip(t *testing.T) {
	as := []Complex{2.5 + 1.5i, -3 + 0.5i, 1e150 - 2e150i}
	bs := []Complex{1 + 2i, -0.5 + 0.125i, 4e-150 - 3e-150i}
	for _, a := range as {
		for _, b := range bs {
			if got := div(a, b) * b; !cClose(got, a) {
				t.Errorf("div(%v, %v)*%v = %v, want %v", a, b, b, got, a)
			}
		}
	}
}

func TestDivReal(t *testing.T) {
	if got := divReal(complex(3, -2), 2); !cAlike(got, complex(1.5, -1)) {
		t.Errorf("divReal(3-2i, 2) = %v, want (1.5-1i)", got)
	}
	if got := divReal(complex(3, -2), 0); !cAlike(got, complex(inf, ninf)) {
		t.Errorf("divReal(3-2i, 0) = %v, want (+Inf-Infi)", got)
	}
}
