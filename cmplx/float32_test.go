// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build cmath_float32

package cmplx

import "testing"

// cClose32 is the float32 counterpart of the float64 suite's cClose.
func cClose32(got, want Complex) bool {
	return Abs(got-want) <= 1e-5*Abs(want)
}

// The narrow build saturates Tan and Tanh at the float32 cutoffs, far
// below the float64 ones.
func TestFloat32Cutoffs(t *testing.T) {
	if got := Tan(complex(1, 60)); !cAlike(got, complex(0, 1)) {
		t.Errorf("Tan(1+60i) = %v, want (0+1i)", got)
	}
	if got := Tanh(complex(-60, 1)); !cAlike(got, complex(-1, 0)) {
		t.Errorf("Tanh(-60+1i) = %v, want (-1+0i)", got)
	}
}

func TestFloat32SqrtRescale(t *testing.T) {
	z := complex(2e38, 1.5e38)
	w := Sqrt(z)
	if IsInf(w) || IsNaN(w) {
		t.Fatalf("Sqrt(%v) = %v, want a finite value", z, w)
	}
	if got := w * w; !cClose32(got, z) {
		t.Errorf("Sqrt(%v)**2 = %v, want %v", z, got, z)
	}
}

func TestFloat32RoundTrips(t *testing.T) {
	for _, z := range []Complex{2.5 + 1.5i, -0.5 - 0.75i, 1 - 2i} {
		if got := Exp(Log(z)); !cClose32(got, z) {
			t.Errorf("Exp(Log(%v)) = %v, want %v", z, got, z)
		}
		if got := Sqrt(z) * Sqrt(z); !cClose32(got, z) {
			t.Errorf("Sqrt(%v)**2 = %v, want %v", z, got, z)
		}
	}
	// Asin inverts Sin only inside the principal strip |re| < pi/2.
	for _, z := range []Complex{0.5 + 0.5i, 1 - 2i, -1.25 + 0.3i} {
		if got := Asin(Sin(z)); !cClose32(got, z) {
			t.Errorf("Asin(Sin(%v)) = %v, want %v", z, got, z)
		}
	}
}
