// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build !cmath_float32

package cmplx

// Complex is the complex type of this build.
type Complex = complex128

const (
	// sqrtCutoff is the component magnitude above which Sqrt scales its
	// argument down before calling Hypot, whose result could otherwise
	// overflow.
	sqrtCutoff = 1e308

	// tanCutoff1 is the |imag| bound above which the real part of Tan
	// underflows to zero. tanCutoff2 is the bound above which |sinh| and
	// cosh agree to working precision. Tanh applies both bounds to |real|.
	tanCutoff1 = 373.0
	tanCutoff2 = 0x1.3001004048044p+4
)
