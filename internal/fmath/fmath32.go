// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build cmath_float32

package fmath

import "math"

// Float is the scalar floating-point type of this build.
type Float = float32

// FloatBits is the width of Float in bits, as strconv understands it.
const FloatBits = 32

// Mathematical constants at Float precision.
const (
	E    Float = math.E
	Pi   Float = math.Pi
	Ln2  Float = math.Ln2
	Ln10 Float = math.Ln10
)

func Abs(x Float) Float         { return Float(math.Abs(float64(x))) }
func Acos(x Float) Float        { return Float(math.Acos(float64(x))) }
func Acosh(x Float) Float       { return Float(math.Acosh(float64(x))) }
func Asin(x Float) Float        { return Float(math.Asin(float64(x))) }
func Asinh(x Float) Float       { return Float(math.Asinh(float64(x))) }
func Atan(x Float) Float        { return Float(math.Atan(float64(x))) }
func Atan2(y, x Float) Float    { return Float(math.Atan2(float64(y), float64(x))) }
func Atanh(x Float) Float       { return Float(math.Atanh(float64(x))) }
func Copysign(x, y Float) Float { return Float(math.Copysign(float64(x), float64(y))) }
func Cos(x Float) Float         { return Float(math.Cos(float64(x))) }
func Cosh(x Float) Float        { return Float(math.Cosh(float64(x))) }
func Exp(x Float) Float         { return Float(math.Exp(float64(x))) }
func Hypot(x, y Float) Float    { return Float(math.Hypot(float64(x), float64(y))) }
func Log(x Float) Float         { return Float(math.Log(float64(x))) }
func Log10(x Float) Float       { return Float(math.Log10(float64(x))) }
func Log2(x Float) Float        { return Float(math.Log2(float64(x))) }
func Sin(x Float) Float         { return Float(math.Sin(float64(x))) }
func Sinh(x Float) Float        { return Float(math.Sinh(float64(x))) }
func Sqrt(x Float) Float        { return Float(math.Sqrt(float64(x))) }
func Tan(x Float) Float         { return Float(math.Tan(float64(x))) }
func Tanh(x Float) Float        { return Float(math.Tanh(float64(x))) }

func Inf(sign int) Float           { return Float(math.Inf(sign)) }
func IsInf(x Float, sign int) bool { return math.IsInf(float64(x), sign) }
func IsNaN(x Float) bool           { return math.IsNaN(float64(x)) }
func NaN() Float                   { return Float(math.NaN()) }
func Signbit(x Float) bool         { return math.Signbit(float64(x)) }
