package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunNames(t *testing.T) {
	resetGlobalFlags(t)
	path := testAdderNetlistPath(t)

	output, err := captureOutput(t, func() error {
		return runNames(path)
	})
	require.NoError(t, err, "Output: %s", output)
	assertContains(t, output, []string{"top.i_a", "top.i_b", "top.o_sum", "Name"})
}

func TestRunNamesJSON(t *testing.T) {
	resetGlobalFlags(t)
	jsonOut = true
	path := testAdderNetlistPath(t)

	output, err := captureOutput(t, func() error {
		return runNames(path)
	})
	require.NoError(t, err, "Output: %s", output)
	assertJSON(t, output)
	assertContains(t, output, []string{"top.i_a"})
}
