// Copyright 2026 The mruby-cmath-alt Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chasonr/mruby-cmath-alt/cmath"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestEverySubcommandRegistered(t *testing.T) {
	cmd := newRootCommand()
	for _, f := range cmath.Functions() {
		sub, _, err := cmd.Find([]string{f.Name})
		require.NoError(t, err)
		require.Equal(t, f.Name, sub.Name())
	}
	sub, _, err := cmd.Find([]string{"functions"})
	require.NoError(t, err)
	require.Equal(t, "functions", sub.Name())
}

func TestEvalBadOperand(t *testing.T) {
	_, err := runCLI(t, "sin", "bogus")
	require.ErrorIs(t, err, cmath.ErrNotNumeric)
}

func TestEvalArity(t *testing.T) {
	_, err := runCLI(t, "sin", "1", "2")
	require.Error(t, err)

	_, err = runCLI(t, "log")
	require.Error(t, err)

	// log takes an optional base.
	out, err := runCLI(t, "log", "8", "2")
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestEvalNegativeOperandAfterDashes(t *testing.T) {
	out, err := runCLI(t, "sqrt", "--", "-4")
	require.NoError(t, err)
	require.Equal(t, "(0+2i)\n", out)
}
