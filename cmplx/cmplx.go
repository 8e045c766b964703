// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cmplx implements the complex elementary functions used by the
// CMath module: exponential, logarithm, square root, and the circular and
// hyperbolic functions with their inverses.
//
// Special values follow the C99 Annex G conventions: NaN and infinite
// components take dedicated result branches, and the sign bit of a zero
// component selects the side of a branch cut. The floating-point width is
// fixed at build time: Complex is complex128 by default, or complex64 when
// the cmath_float32 build tag is set.
package cmplx

import "github.com/chasonr/mruby-cmath-alt/internal/fmath"

// Float is the scalar component type of Complex.
type Float = fmath.Float

// Abs returns the absolute value (also called the modulus) of z.
func Abs(z Complex) Float { return fmath.Hypot(real(z), imag(z)) }

// IsNaN reports whether either real(z) or imag(z) is NaN
// and neither is an infinity.
func IsNaN(z Complex) bool {
	switch {
	case fmath.IsInf(real(z), 0) || fmath.IsInf(imag(z), 0):
		return false
	case fmath.IsNaN(real(z)) || fmath.IsNaN(imag(z)):
		return true
	}
	return false
}

// IsInf reports whether either real(z) or imag(z) is an infinity.
func IsInf(z Complex) bool {
	return fmath.IsInf(real(z), 0) || fmath.IsInf(imag(z), 0)
}

// NaN returns a complex "not-a-number" value.
func NaN() Complex {
	nan := fmath.NaN()
	return complex(nan, nan)
}

// Inf returns a complex infinity, complex(+Inf, +Inf).
func Inf() Complex {
	inf := fmath.Inf(1)
	return complex(inf, inf)
}
