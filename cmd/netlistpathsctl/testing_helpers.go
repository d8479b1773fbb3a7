package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testAdderXML = `<?xml version="1.0"?>
<verilator_xml>
  <files>
    <file id="1" filename="adder.v" language="1800-2017"/>
  </files>
  <netlist>
    <module name="TOP">
      <topscope>
        <var name="top.i_a" dir="input" dtype_id="2"/>
        <var name="top.i_b" dir="input" dtype_id="2"/>
        <var name="top.o_sum" dir="output" dtype_id="2"/>
        <assignw>
          <varref name="i_a"/>
          <varref name="o_sum"/>
        </assignw>
        <assignw>
          <varref name="i_b"/>
          <varref name="o_sum"/>
        </assignw>
      </topscope>
    </module>
    <typetable>
      <basicdtype id="2" name="logic" left="7" right="0" loc="1,1,1,1,8"/>
    </typetable>
  </netlist>
</verilator_xml>`

// testAdderNetlistPath writes the adder fixture to a temp file and returns
// its path.
func testAdderNetlistPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adder.xml")
	if err := os.WriteFile(path, []byte(testAdderXML), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// captureOutput captures stdout while running fn.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON.
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains every string in expected.
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// resetGlobalFlags restores the root command's persistent-flag variables,
// since tests call run* functions directly rather than through
// rootCmd.Execute and flags persist across subtests otherwise. Subcommand
// flag variables (fanoutDegreeOnly, pathsStart, ...) are set by each test
// itself.
func resetGlobalFlags(t *testing.T) {
	t.Helper()
	verbose = false
	quiet = false
	jsonOut = false
	fullPaths = false
	showLogic = false
	maxPaths = 0
}
