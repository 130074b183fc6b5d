package repl

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yulfmt/internal/dialect"
	"yulfmt/internal/format"
)

func init() {
	color.NoColor = true
}

func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	s := NewSession(dialect.MustResolve(dialect.Default), format.DefaultOptions(), &out, &errOut)
	return s, &out, &errOut
}

func TestDepth(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"{", 1},
		{"{ let a := 1 }", 0},
		{"function f() {\n  if 1 {", 2},
		{`{ let s := "{" // {`, 1},
		{"{ /* { */ }", 0},
		{"}", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Depth(tt.src), tt.src)
	}
}

func TestEvalPrintsCanonicalForm(t *testing.T) {
	s, out, errOut := newTestSession()

	require.True(t, s.Eval("let a := add(1, 2)  mstore(0, a)"))
	assert.Equal(t, "{\n    let a := add(1, 2)\n    mstore(0, a)\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestEvalPrintsDiagnostics(t *testing.T) {
	s, out, errOut := newTestSession()

	require.True(t, s.Eval("{ let a := ad(1, 2) }"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "function 'ad' not found")
	assert.Contains(t, errOut.String(), "1 error generated")
}

func TestEvalNamesDroppedDiagnostics(t *testing.T) {
	var out, errOut bytes.Buffer
	opts := format.DefaultOptions()
	opts.MaxDiagnostics = 1
	s := NewSession(dialect.MustResolve(dialect.Default), opts, &out, &errOut)

	require.True(t, s.Eval("{ pop(add(1)) pop(add(1)) }"))
	assert.Contains(t, errOut.String(), "1 error generated\n1 more diagnostic not shown\n")
}

func TestDialectCommand(t *testing.T) {
	s, out, errOut := newTestSession()

	require.True(t, s.Eval(":dialect"))
	assert.Equal(t, "petersburg\n", out.String())

	out.Reset()
	require.True(t, s.Eval(":dialect homestead"))
	assert.Equal(t, "using homestead\n", out.String())
	assert.Equal(t, "homestead", s.Dialect().Name())

	require.True(t, s.Eval("{ revert(0, 0) }"))
	assert.Contains(t, errOut.String(), "function 'revert' not found")

	errOut.Reset()
	require.True(t, s.Eval(":dialect bizantium"))
	assert.Contains(t, errOut.String(), "unknown EVM version 'bizantium'")
	assert.Equal(t, "homestead", s.Dialect().Name())
}

func TestQuitAndUnknownCommands(t *testing.T) {
	s, _, errOut := newTestSession()

	assert.True(t, s.Eval(":frobnicate"))
	assert.Contains(t, errOut.String(), "unknown command :frobnicate")
	assert.True(t, s.Eval("   "))
	assert.False(t, s.Eval(":quit"))
}

func TestComplete(t *testing.T) {
	s, _, _ := newTestSession()

	assert.Equal(t, []string{"mstore(0, mstore", "mstore(0, mstore8"}, s.complete("mstore(0, mst"))
	assert.Equal(t, []string{"leave", "let"}, s.complete("le"))
	assert.Equal(t, []string{":dialect"}, s.complete(":d"))
	assert.Nil(t, s.complete("mstore("))
}
