// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command cmath evaluates the complex elementary functions from the
// command line.
//
// Usage:
//
//	cmath <function> <operand> [base]
//
// Operands use Go numeric syntax: 1.5, -2, 3+4i, Inf, NaN. A leading --
// keeps a negative operand from reading as a flag:
//
//	cmath sqrt -- -4
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
