package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunLoad(t *testing.T) {
	resetGlobalFlags(t)
	path := testAdderNetlistPath(t)

	output, err := captureOutput(t, func() error {
		return runLoad(path)
	})
	require.NoError(t, err, "Output: %s", output)
	assertContains(t, output, []string{"vertices:", "edges:", "files:", "dtypes:"})
}

func TestRunLoadJSON(t *testing.T) {
	resetGlobalFlags(t)
	jsonOut = true
	path := testAdderNetlistPath(t)

	output, err := captureOutput(t, func() error {
		return runLoad(path)
	})
	require.NoError(t, err, "Output: %s", output)
	assertJSON(t, output)
}

func TestRunLoadMissingFile(t *testing.T) {
	resetGlobalFlags(t)
	require.Error(t, runLoad("/nonexistent/path.xml"), "expected an error for a missing file")
}
