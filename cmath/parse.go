// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmath

import (
	"fmt"
	"strconv"

	"github.com/chasonr/mruby-cmath-alt/internal/fmath"
)

// Parse reads s as a Number at the build's width. A form that
// strconv.ParseFloat accepts, NaN and the infinities included, parses as
// a real Number. Anything else must satisfy strconv.ParseComplex, for
// example 3+4i, -1.5i or (2-3i), and parses as a complex Number.
func Parse(s string) (Number, error) {
	if x, err := strconv.ParseFloat(s, fmath.FloatBits); err == nil {
		return FromFloat(Float(x)), nil
	}
	c, err := strconv.ParseComplex(s, 2*fmath.FloatBits)
	if err != nil {
		return Number{}, fmt.Errorf("cmath: parsing %q: %w", s, ErrNotNumeric)
	}
	return FromComplex(Complex(c)), nil
}
