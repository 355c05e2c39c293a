package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuannh982/grayset/grayset"
)

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--power", "3", "--seed", "5", "--per_line", "8"})
	require.Nil(t, cmd.Execute())
	out := buf.String()
	require.True(t, strings.Contains(out, "SU: {\n\t000, 001, 011, 010, 110, 111, 101, 100, \n}"))
	require.True(t, strings.Contains(out, "S1 ^ S2: {"))
}

func TestRootCmdInvalidPower(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--power", "11"})
	require.ErrorIs(t, cmd.Execute(), grayset.ErrInvalidPower)
}
