// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmplx

// scale returns s*z, scaling each component. Unlike a complex
// multiplication it cannot mix NaN or Inf between components.
func scale(s Float, z Complex) Complex {
	return complex(s*real(z), s*imag(z))
}

// addReal returns x+z. The imaginary part passes through untouched, so
// the sign of a zero imag(z) is preserved.
func addReal(x Float, z Complex) Complex {
	return complex(x+real(z), imag(z))
}

// subReal returns x-z. The imaginary part is negated, turning a +0 into
// a -0 and vice versa.
func subReal(x Float, z Complex) Complex {
	return complex(x-real(z), -imag(z))
}
