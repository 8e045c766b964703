// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmplx

import "github.com/chasonr/mruby-cmath-alt/internal/fmath"

// Sin returns the sine of z,
// sin(x)cosh(y) + cos(x)sinh(y)i for z = x+yi.
func Sin(z Complex) Complex {
	x, y := real(z), imag(z)
	return complex(fmath.Sin(x)*fmath.Cosh(y), fmath.Cos(x)*fmath.Sinh(y))
}

// Cos returns the cosine of z,
// cos(x)cosh(y) - sin(x)sinh(y)i for z = x+yi.
func Cos(z Complex) Complex {
	x, y := real(z), imag(z)
	return complex(fmath.Cos(x)*fmath.Cosh(y), -fmath.Sin(x)*fmath.Sinh(y))
}

// Sinh returns the hyperbolic sine of z,
// sinh(x)cos(y) + cosh(x)sin(y)i for z = x+yi.
func Sinh(z Complex) Complex {
	x, y := real(z), imag(z)
	return complex(fmath.Sinh(x)*fmath.Cos(y), fmath.Cosh(x)*fmath.Sin(y))
}

// Cosh returns the hyperbolic cosine of z,
// cosh(x)cos(y) + sinh(x)sin(y)i for z = x+yi.
//
// Special cases are:
//	Cosh(NaN+0i) = NaN+0i (the zero keeps its sign)
//	Cosh(NaN+yi) = NaN+NaNi for any other y
//	Cosh(±Inf+0i) = +Inf∓0i (the zero takes the opposite sign for -Inf)
//	Cosh(±Inf+yi) = +Inf+NaNi for y NaN or ±Inf
//	Cosh(±Inf+yi) = +Inf*cos(y)±Inf*sin(y)i for finite nonzero y
//	Cosh(0+yi) = NaN+0i for y NaN or ±Inf
//	Cosh(x+yi) = NaN+NaNi for finite nonzero x and y NaN or ±Inf
func Cosh(z Complex) Complex {
	x, y := real(z), imag(z)
	switch {
	case fmath.IsNaN(x):
		if y == 0 {
			return complex(fmath.NaN(), y)
		}
		return NaN()
	case fmath.IsInf(x, 0):
		switch {
		case fmath.IsNaN(y) || fmath.IsInf(y, 0):
			return complex(fmath.Inf(1), fmath.NaN())
		case y == 0:
			if fmath.Signbit(x) {
				return complex(fmath.Inf(1), -y)
			}
			return complex(fmath.Inf(1), y)
		default:
			return complex(fmath.Inf(1)*fmath.Cos(y), x*fmath.Sin(y))
		}
	case fmath.IsNaN(y) || fmath.IsInf(y, 0):
		if x == 0 {
			return complex(fmath.NaN(), 0)
		}
		return NaN()
	}
	return complex(fmath.Cosh(x)*fmath.Cos(y), fmath.Sinh(x)*fmath.Sin(y))
}
