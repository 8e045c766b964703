// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fmath provides the scalar elementary functions at the
// floating-point width the module is built for.
//
// The default build computes in float64. Building with the cmath_float32
// tag narrows Float to float32; every function then computes through
// float64 and rounds once on return. The width is fixed per build, so no
// computation ever mixes widths.
package fmath
