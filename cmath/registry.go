// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmath

import (
	"fmt"
	"slices"
)

// Func describes one registered function of the module: its name, a one
// line description, and the number of operands it accepts. Only log takes
// an optional second operand, the base.
type Func struct {
	Name             string
	Doc              string
	MinArgs, MaxArgs int

	apply func(args []Number) Number
}

// Apply evaluates f on the given operands.
func (f Func) Apply(args ...Number) (Number, error) {
	if len(args) < f.MinArgs || len(args) > f.MaxArgs {
		if f.MinArgs == f.MaxArgs {
			return Number{}, fmt.Errorf("cmath: %s: wrong number of arguments (given %d, expected %d)",
				f.Name, len(args), f.MinArgs)
		}
		return Number{}, fmt.Errorf("cmath: %s: wrong number of arguments (given %d, expected %d..%d)",
			f.Name, len(args), f.MinArgs, f.MaxArgs)
	}
	return f.apply(args), nil
}

func unary(name, doc string, fn func(Number) Number) Func {
	return Func{
		Name:    name,
		Doc:     doc,
		MinArgs: 1,
		MaxArgs: 1,
		apply:   func(args []Number) Number { return fn(args[0]) },
	}
}

var functions = []Func{
	unary("sin", "sine function", Sin),
	unary("cos", "cosine function", Cos),
	unary("tan", "tangent function", Tan),

	unary("asin", "arc sine function", Asin),
	unary("acos", "arc cosine function", Acos),
	unary("atan", "arc tangent function", Atan),

	unary("sinh", "hyperbolic sine function", Sinh),
	unary("cosh", "hyperbolic cosine function", Cosh),
	unary("tanh", "hyperbolic tangent function", Tanh),

	unary("asinh", "inverse hyperbolic sine function", Asinh),
	unary("acosh", "inverse hyperbolic cosine function", Acosh),
	unary("atanh", "inverse hyperbolic tangent function", Atanh),

	unary("exp", "exponential function", Exp),
	{
		Name:    "log",
		Doc:     "natural logarithm, or the logarithm to an optional base",
		MinArgs: 1,
		MaxArgs: 2,
		apply: func(args []Number) Number {
			if len(args) == 2 {
				return LogBase(args[0], args[1])
			}
			return Log(args[0])
		},
	},
	unary("log2", "base-2 logarithm", Log2),
	unary("log10", "base-10 logarithm", Log10),
	unary("sqrt", "square root", Sqrt),
}

// Functions lists the module's functions in registration order.
func Functions() []Func {
	return slices.Clone(functions)
}

// Lookup returns the function registered under name.
func Lookup(name string) (Func, bool) {
	for _, f := range functions {
		if f.Name == name {
			return f, true
		}
	}
	return Func{}, false
}
