// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmplx

import "github.com/chasonr/mruby-cmath-alt/internal/fmath"

// Exp returns e**z, the base-e exponential of z.
//
// Special cases are:
//	Exp(NaN+0i) = NaN+0i (the zero keeps its sign)
//	Exp(NaN+yi) = NaN+NaNi for any other y
//	Exp(+Inf+0i) = +Inf+0i
//	Exp(+Inf+yi) = +Inf+NaNi for y NaN or ±Inf
//	Exp(-Inf+yi) = +0+copysign(0, y)i for y NaN or ±Inf
func Exp(z Complex) Complex {
	x, y := real(z), imag(z)
	if fmath.IsNaN(x) {
		if y == 0 {
			return complex(fmath.NaN(), y)
		}
		return NaN()
	}
	if fmath.IsInf(x, 1) {
		if fmath.IsNaN(y) || fmath.IsInf(y, 0) {
			return complex(fmath.Inf(1), fmath.NaN())
		}
		if y == 0 {
			return z
		}
	} else if fmath.IsInf(x, -1) {
		if fmath.IsNaN(y) || fmath.IsInf(y, 0) {
			return complex(0, fmath.Copysign(0, y))
		}
	}
	r := fmath.Exp(x)
	return complex(r*fmath.Cos(y), r*fmath.Sin(y))
}
