// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmplx

import "github.com/chasonr/mruby-cmath-alt/internal/fmath"

// Sqrt returns the square root of z. The result r is chosen so that
// real(r) ≥ 0; the branch cut runs along the negative real axis, and the
// sign of imag(z), sign of zero included, selects the side of the cut.
//
// Special cases are:
//	Sqrt(NaN+0i) = NaN+NaNi
//	Sqrt(x+0i) = 0+Sqrt(-x)i for x < 0
//	Sqrt(x-0i) = 0-Sqrt(-x)i for x < 0
//	Sqrt(x±Infi) = +Inf±Infi for any x, NaN included
//	Sqrt(+Inf+NaNi) = +Inf+NaNi
//	Sqrt(-Inf+NaNi) = NaN+Infi
//	Sqrt(+Inf+yi) = +Inf+copysign(0, y)i for finite nonzero y
//	Sqrt(-Inf+yi) = +0+copysign(Inf, y)i for finite nonzero y
func Sqrt(z Complex) Complex {
	x, y := real(z), imag(z)
	if y == 0 {
		switch {
		case fmath.IsNaN(x):
			return complex(x, x)
		case fmath.Signbit(x):
			return complex(0, fmath.Copysign(fmath.Sqrt(-x), y))
		default:
			return complex(fmath.Sqrt(x), y)
		}
	}
	if fmath.IsInf(y, 0) {
		return complex(fmath.Inf(1), y)
	}
	if fmath.IsInf(x, 0) {
		switch {
		case fmath.IsNaN(y):
			if fmath.Signbit(x) {
				return complex(y, fmath.Inf(1))
			}
			return z
		case fmath.Signbit(x):
			return complex(0, fmath.Copysign(fmath.Inf(1), y))
		default:
			return complex(fmath.Inf(1), fmath.Copysign(0, y))
		}
	}
	scaled := fmath.Abs(x) > sqrtCutoff || fmath.Abs(y) > sqrtCutoff
	if scaled {
		// Keep Hypot from overflowing.
		x /= 4
		y /= 4
	}
	r := fmath.Sqrt(fmath.Hypot(x, y))
	t := fmath.Atan2(y, x) / 2
	if scaled {
		r *= 2
	}
	return complex(r*fmath.Cos(t), r*fmath.Sin(t))
}
