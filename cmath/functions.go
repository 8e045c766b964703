// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmath

import (
	"github.com/chasonr/mruby-cmath-alt/cmplx"
	"github.com/chasonr/mruby-cmath-alt/internal/fmath"
)

// Sin returns the sine of z.
func Sin(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Sin(z.Complex()))
	}
	return FromFloat(fmath.Sin(z.re))
}

// Cos returns the cosine of z.
func Cos(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Cos(z.Complex()))
	}
	return FromFloat(fmath.Cos(z.re))
}

// Tan returns the tangent of z.
func Tan(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Tan(z.Complex()))
	}
	return FromFloat(fmath.Tan(z.re))
}

// Asin returns the arcsine of z. A real operand outside [-1, 1] yields a
// real NaN; it does not promote.
func Asin(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Asin(z.Complex()))
	}
	return FromFloat(fmath.Asin(z.re))
}

// Acos returns the arccosine of z. A real operand outside [-1, 1] yields
// a real NaN; it does not promote.
func Acos(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Acos(z.Complex()))
	}
	return FromFloat(fmath.Acos(z.re))
}

// Atan returns the arctangent of z.
func Atan(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Atan(z.Complex()))
	}
	return FromFloat(fmath.Atan(z.re))
}

// Sinh returns the hyperbolic sine of z.
func Sinh(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Sinh(z.Complex()))
	}
	return FromFloat(fmath.Sinh(z.re))
}

// Cosh returns the hyperbolic cosine of z.
func Cosh(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Cosh(z.Complex()))
	}
	return FromFloat(fmath.Cosh(z.re))
}

// Tanh returns the hyperbolic tangent of z.
func Tanh(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Tanh(z.Complex()))
	}
	return FromFloat(fmath.Tanh(z.re))
}

// Asinh returns the inverse hyperbolic sine of z.
func Asinh(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Asinh(z.Complex()))
	}
	return FromFloat(fmath.Asinh(z.re))
}

// Acosh returns the inverse hyperbolic cosine of z. A real operand below
// 1 yields a real NaN; it does not promote.
func Acosh(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Acosh(z.Complex()))
	}
	return FromFloat(fmath.Acosh(z.re))
}

// Atanh returns the inverse hyperbolic tangent of z. A real operand
// outside [-1, 1] yields a real NaN; it does not promote.
func Atanh(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Atanh(z.Complex()))
	}
	return FromFloat(fmath.Atanh(z.re))
}

// Exp returns e**z.
func Exp(z Number) Number {
	if z.cpx {
		return FromComplex(cmplx.Exp(z.Complex()))
	}
	return FromFloat(fmath.Exp(z.re))
}

// Log returns the natural logarithm of z, with the branch cut along the
// negative real axis. A negative real operand promotes to the complex
// principal value, so Log of -1 is i*pi rather than NaN. A real -0
// operand stays real and yields -Inf.
func Log(z Number) Number {
	if z.cpx || z.re < 0 {
		return FromComplex(cmplx.Log(z.Complex()))
	}
	return FromFloat(fmath.Log(z.re))
}

// LogBase returns the logarithm of z in the given base, Log(z)/Log(b).
// When either z or b needs the complex path the quotient is a full
// complex division; otherwise both logarithms stay scalar, and a
// negative real base yields a real NaN.
func LogBase(z, b Number) Number {
	if z.cpx || z.re < 0 || b.cpx {
		return FromComplex(cmplx.LogBase(z.Complex(), b.Complex()))
	}
	return FromFloat(fmath.Log(z.re) / fmath.Log(b.re))
}

// Log2 returns the base-2 logarithm of z, promoting a negative real
// operand the way Log does.
func Log2(z Number) Number {
	if z.cpx || z.re < 0 {
		return FromComplex(cmplx.Log2(z.Complex()))
	}
	return FromFloat(fmath.Log2(z.re))
}

// Log10 returns the base-10 logarithm of z, promoting a negative real
// operand the way Log does.
func Log10(z Number) Number {
	if z.cpx || z.re < 0 {
		return FromComplex(cmplx.Log10(z.Complex()))
	}
	return FromFloat(fmath.Log10(z.re))
}

// Sqrt returns the square root of z. A negative real operand promotes to
// the complex root on the positive imaginary side of the cut, so Sqrt of
// -4 is 2i rather than NaN. A real -0 operand stays real and yields -0.
func Sqrt(z Number) Number {
	if z.cpx || z.re < 0 {
		return FromComplex(cmplx.Sqrt(z.Complex()))
	}
	return FromFloat(fmath.Sqrt(z.re))
}
