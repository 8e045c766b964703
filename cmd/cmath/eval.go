// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chasonr/mruby-cmath-alt/cmath"
)

// newEvalCommand wraps one registry entry as a subcommand. Operands are
// parsed with cmath.Parse, so anything strconv accepts works, Inf and
// NaN included.
func newEvalCommand(f cmath.Func) *cobra.Command {
	use := f.Name + " <z>"
	if f.MaxArgs == 2 {
		use += " [base]"
	}
	return &cobra.Command{
		Use:          use,
		Short:        f.Doc,
		Args:         cobra.RangeArgs(f.MinArgs, f.MaxArgs),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			operands := make([]cmath.Number, len(args))
			for i, a := range args {
				n, err := cmath.Parse(a)
				if err != nil {
					return err
				}
				operands[i] = n
			}
			n, err := f.Apply(operands...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
