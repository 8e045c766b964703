// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build !cmath_float32

package fmath

import "math"

// Float is the scalar floating-point type of this build.
type Float = float64

// FloatBits is the width of Float in bits, as strconv understands it.
const FloatBits = 64

// Mathematical constants at Float precision.
const (
	E    Float = math.E
	Pi   Float = math.Pi
	Ln2  Float = math.Ln2
	Ln10 Float = math.Ln10
)

func Abs(x Float) Float         { return math.Abs(x) }
func Acos(x Float) Float        { return math.Acos(x) }
func Acosh(x Float) Float       { return math.Acosh(x) }
func Asin(x Float) Float        { return math.Asin(x) }
func Asinh(x Float) Float       { return math.Asinh(x) }
func Atan(x Float) Float        { return math.Atan(x) }
func Atan2(y, x Float) Float    { return math.Atan2(y, x) }
func Atanh(x Float) Float       { return math.Atanh(x) }
func Copysign(x, y Float) Float { return math.Copysign(x, y) }
func Cos(x Float) Float         { return math.Cos(x) }
func Cosh(x Float) Float        { return math.Cosh(x) }
func Exp(x Float) Float         { return math.Exp(x) }
func Hypot(x, y Float) Float    { return math.Hypot(x, y) }
func Log(x Float) Float         { return math.Log(x) }
func Log10(x Float) Float       { return math.Log10(x) }
func Log2(x Float) Float        { return math.Log2(x) }
func Sin(x Float) Float         { return math.Sin(x) }
func Sinh(x Float) Float        { return math.Sinh(x) }
func Sqrt(x Float) Float        { return math.Sqrt(x) }
func Tan(x Float) Float         { return math.Tan(x) }
func Tanh(x Float) Float        { return math.Tanh(x) }

func Inf(sign int) Float           { return math.Inf(sign) }
func IsInf(x Float, sign int) bool { return math.IsInf(x, sign) }
func IsNaN(x Float) bool           { return math.IsNaN(x) }
func NaN() Float                   { return math.NaN() }
func Signbit(x Float) bool         { return math.Signbit(x) }
