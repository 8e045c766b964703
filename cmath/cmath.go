// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cmath exposes the CMath function set over operands that are
// either real or complex, with the promotion rules of the mruby module it
// descends from: a complex operand always yields a complex result, a real
// operand yields a real result, and log, log2, log10 and sqrt of a
// negative real promote to the complex principal value instead of
// returning NaN.
//
// The scalar width tracks the build: float64 components by default,
// float32 under the cmath_float32 build tag.
package cmath

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/chasonr/mruby-cmath-alt/cmplx"
	"github.com/chasonr/mruby-cmath-alt/internal/fmath"
)

// Float is the scalar type of this build.
type Float = fmath.Float

// Complex is the complex type of this build.
type Complex = cmplx.Complex

// ErrNotNumeric reports a value that is neither real nor complex.
var ErrNotNumeric = errors.New("cmath: numeric value required")

// Number is a single operand or result: a real or a complex value,
// tagged with which of the two it is. The zero Number is the real
// number 0.
type Number struct {
	re, im Float
	cpx    bool
}

// FromFloat returns x as a real Number.
func FromFloat(x Float) Number { return Number{re: x} }

// FromInt returns n as a real Number.
func FromInt(n int64) Number { return Number{re: Float(n)} }

// FromComplex returns z as a complex Number.
func FromComplex(z Complex) Number {
	return Number{re: real(z), im: imag(z), cpx: true}
}

// FromParts returns the complex Number re + im*i.
func FromParts(re, im Float) Number {
	return Number{re: re, im: im, cpx: true}
}

// FromAny converts any Go numeric value to a Number: integers and floats
// become real Numbers, complex64 and complex128 become complex Numbers,
// and a Number passes through unchanged. Every other type reports
// ErrNotNumeric.
func FromAny(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromFloat(Float(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromFloat(Float(x)), nil
	case float32:
		return FromFloat(Float(x)), nil
	case float64:
		return FromFloat(Float(x)), nil
	case complex64:
		return FromComplex(Complex(x)), nil
	case complex128:
		return FromComplex(Complex(x)), nil
	}
	return Number{}, fmt.Errorf("%w, got %T", ErrNotNumeric, v)
}

// IsComplex reports whether n carries an imaginary part.
func (n Number) IsComplex() bool { return n.cpx }

// Real returns the real part of n.
func (n Number) Real() Float { return n.re }

// Imag returns the imaginary part of n; it is 0 for a real Number.
func (n Number) Imag() Float { return n.im }

// Complex returns n as the native complex type, whichever kind it is.
func (n Number) Complex() Complex { return complex(n.re, n.im) }

// String formats a real Number in the shortest form that parses back
// exactly, and a complex Number the way strconv.FormatComplex does,
// as (a+bi).
func (n Number) String() string {
	if n.cpx {
		return strconv.FormatComplex(complex128(complex(n.re, n.im)), 'g', -1, 2*fmath.FloatBits)
	}
	return strconv.FormatFloat(float64(n.re), 'g', -1, fmath.FloatBits)
}
