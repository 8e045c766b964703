// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmplx

import "github.com/chasonr/mruby-cmath-alt/internal/fmath"

// squareCutoff is the component magnitude above which z*z+1 and z*z-1
// collapse to z*z at working precision; below it z*z cannot overflow.
const squareCutoff = 1e8

// Asinh returns the inverse hyperbolic sine of z,
// log(z + sqrt(z*z+1)), with the large-argument form log(z) + log 2.
func Asinh(z Complex) Complex {
	x, y := real(z), imag(z)
	if fmath.Abs(x) > squareCutoff || fmath.Abs(y) > squareCutoff {
		if fmath.Signbit(x) {
			return -addReal(fmath.Ln2, Log(-z))
		}
		return addReal(fmath.Ln2, Log(z))
	}
	return Log(z + Sqrt(addReal(1, z*z)))
}

// Acosh returns the inverse hyperbolic cosine of z,
// log(z + sqrt(z+1)*sqrt(z-1)), with the large-argument form log(z) + log 2.
// The factored square roots keep each argument on the correct side of the
// branch cut.
func Acosh(z Complex) Complex {
	x, y := real(z), imag(z)
	if fmath.Abs(x) > squareCutoff || fmath.Abs(y) > squareCutoff {
		return addReal(fmath.Ln2, Log(z))
	}
	return Log(z + Sqrt(addReal(1, z))*Sqrt(addReal(-1, z)))
}

// Atanh returns the inverse hyperbolic tangent of z,
// log((1+z)/(1-z))/2.
func Atanh(z Complex) Complex {
	return scale(0.5, Log(div(addReal(1, z), subReal(1, z))))
}

// Asin returns the arcsine of z, -i*asinh(i*z).
func Asin(z Complex) Complex {
	w := Asinh(complex(-imag(z), real(z)))
	return complex(imag(w), -real(w))
}

// Acos returns the arccosine of z, -i*acosh(z) negated when that lands on
// the wrong side of the principal branch.
func Acos(z Complex) Complex {
	w := Acosh(z)
	d := complex(imag(w), -real(w))
	if fmath.Signbit(real(d)) {
		return -d
	}
	return d
}

// Atan returns the arctangent of z, -i*atanh(i*z).
func Atan(z Complex) Complex {
	w := Atanh(complex(-imag(z), real(z)))
	return complex(imag(w), -real(w))
}
