// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmplx

import "github.com/chasonr/mruby-cmath-alt/internal/fmath"

// Log returns the natural logarithm of z: the real part is the logarithm
// of |z| and the imaginary part is Atan2(imag(z), real(z)), so the branch
// cut runs along the negative real axis and the imaginary part lies in
// [-Pi, Pi].
func Log(z Complex) Complex {
	return complex(fmath.Log(fmath.Hypot(real(z), imag(z))), fmath.Atan2(imag(z), real(z)))
}

// LogBase returns the base-b logarithm of z, Log(z)/Log(b). The quotient
// is a full complex division, so b may itself be negative or complex.
func LogBase(z, b Complex) Complex {
	return div(Log(z), Log(b))
}

// Log2 returns the base-2 logarithm of z.
func Log2(z Complex) Complex {
	return divReal(Log(z), fmath.Ln2)
}

// Log10 returns the base-10 logarithm of z.
func Log10(z Complex) Complex {
	return divReal(Log(z), fmath.Ln10)
}
