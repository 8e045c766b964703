// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build cmath_float32

package cmplx

// Complex is the complex type of this build.
type Complex = complex64

const (
	// sqrtCutoff is the component magnitude above which Sqrt scales its
	// argument down before calling Hypot, whose result could otherwise
	// overflow.
	sqrtCutoff = 1e38

	// tanCutoff1 is the |imag| bound above which the real part of Tan
	// underflows to zero. tanCutoff2 is the bound above which |sinh| and
	// cosh agree to working precision. Tanh applies both bounds to |real|.
	tanCutoff1 = 53.0
	tanCutoff2 = 0x1.0A2B24p+3
)
