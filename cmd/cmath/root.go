// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chasonr/mruby-cmath-alt/cmath"
)

// newRootCommand builds the command tree: one subcommand per registered
// function, plus a listing command.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmath",
		Short: "Evaluate the CMath complex elementary functions",
		Long: `cmath evaluates the CMath elementary functions on real or complex
operands. A real operand yields a real result, except that log, log2,
log10 and sqrt of a negative real promote to the complex principal
value.`,
		SilenceUsage: true,
	}
	for _, f := range cmath.Functions() {
		cmd.AddCommand(newEvalCommand(f))
	}
	cmd.AddCommand(newFunctionsCommand())
	return cmd
}

// newFunctionsCommand lists the registry in registration order.
func newFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, f := range cmath.Functions() {
				fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Doc)
			}
			return w.Flush()
		},
	}
}
