package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFanout(t *testing.T) {
	resetGlobalFlags(t)
	fanoutDegreeOnly = false
	path := testAdderNetlistPath(t)

	output, err := captureOutput(t, func() error {
		return runFanout(path, "i_a")
	})
	require.NoError(t, err, "Output: %s", output)
	assertContains(t, output, []string{"o_sum"})
}

func TestRunFanoutDegree(t *testing.T) {
	resetGlobalFlags(t)
	fanoutDegreeOnly = true
	path := testAdderNetlistPath(t)

	output, err := captureOutput(t, func() error {
		return runFanout(path, "i_a")
	})
	require.NoError(t, err, "Output: %s", output)
	assertContains(t, output, []string{"1"})
}

func TestRunFaninDegree(t *testing.T) {
	resetGlobalFlags(t)
	faninDegreeOnly = true
	path := testAdderNetlistPath(t)

	output, err := captureOutput(t, func() error {
		return runFanin(path, "o_sum")
	})
	require.NoError(t, err, "Output: %s", output)
	assertContains(t, output, []string{"2"})
}

func TestRunFanoutNonexistentStart(t *testing.T) {
	resetGlobalFlags(t)
	fanoutDegreeOnly = false
	path := testAdderNetlistPath(t)

	_, err := captureOutput(t, func() error {
		return runFanout(path, "does_not_exist")
	})
	require.Error(t, err, "expected an error for a nonexistent start point")
}
