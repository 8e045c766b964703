// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmplx

import "github.com/chasonr/mruby-cmath-alt/internal/fmath"

// div returns the quotient a/b by Smith's algorithm: the smaller
// component of b is divided by the larger, keeping the ratio at most 1 in
// magnitude, so the denominator b*(1+ratio**2) cannot overflow where the
// textbook |b|**2 would. A zero b produces NaN components.
func div(a, b Complex) Complex {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)
	if fmath.Abs(br) <= fmath.Abs(bi) {
		ratio := br / bi
		den := bi * (1 + ratio*ratio)
		return complex((ar*ratio+ai)/den, (ai*ratio-ar)/den)
	}
	ratio := bi / br
	den := br * (1 + ratio*ratio)
	return complex((ar+ai*ratio)/den, (ai-ar*ratio)/den)
}

// divReal returns z/x componentwise.
func divReal(z Complex, x Float) Complex {
	return complex(real(z)/x, imag(z)/x)
}
