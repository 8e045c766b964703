// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmplx

import "github.com/chasonr/mruby-cmath-alt/internal/fmath"

// Tan returns the tangent of z. Far from the real axis the shared
// denominator of the componentwise quotient would overflow, so the result
// saturates: the imaginary part becomes ±1 and the real part a zero
// carrying the sign of sin(x)cos(x).
func Tan(z Complex) Complex {
	x, y := real(z), imag(z)
	cx := fmath.Cos(x)
	sx := fmath.Sin(x)
	switch ay := fmath.Abs(y); {
	case ay > tanCutoff1:
		// Above this cutoff real(w) == 0.
		return complex(fmath.Copysign(0, sx*cx), fmath.Copysign(1, y))
	case ay > tanCutoff2:
		// Above this cutoff |sinh(y)| == cosh(y).
		cy := fmath.Cosh(y)
		// Not (sx*cx)/(cy*cy); cy*cy might overflow.
		return complex(sx*cx/cy/cy, fmath.Copysign(1, y))
	}
	cy := fmath.Cosh(y)
	sy := fmath.Sinh(y)
	d := cx*cx*cy*cy + sx*sx*sy*sy
	return complex(sx*cx/d, sy*cy/d)
}

// Tanh returns the hyperbolic tangent of z. It is Tan's construction with
// the roles of the axes exchanged: far from the imaginary axis the real
// part saturates to ±1 and the imaginary part becomes +0.
func Tanh(z Complex) Complex {
	x, y := real(z), imag(z)
	cy := fmath.Cos(y)
	sy := fmath.Sin(y)
	switch ax := fmath.Abs(x); {
	case ax > tanCutoff1:
		// Above this cutoff imag(w) == 0.
		return complex(fmath.Copysign(1, x), 0)
	case ax > tanCutoff2:
		// Above this cutoff |sinh(x)| == cosh(x).
		cx := fmath.Cosh(x)
		// Not (sy*cy)/(cx*cx); cx*cx might overflow.
		return complex(fmath.Copysign(1, x), sy*cy/cx/cx)
	}
	cx := fmath.Cosh(x)
	sx := fmath.Sinh(x)
	d := cx*cx*cy*cy + sx*sx*sy*sy
	return complex(sx*cx/d, sy*cy/d)
}
