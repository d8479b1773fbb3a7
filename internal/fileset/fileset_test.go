package fileset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry()
	r.Add("1", "adder.sv", "SystemVerilog2012")

	f, ok := r.Get("1")
	require.True(t, ok, "expected file 1 to be present")
	require.Equal(t, "adder.sv", f.Path)
	require.Equal(t, "SystemVerilog2012", f.Language)

	_, ok = r.Get("missing")
	require.False(t, ok, "expected Get(missing) to report false")
	require.Equal(t, 1, r.Len())
}

func TestRegistryMustGetPanics(t *testing.T) {
	require.Panics(t, func() {
		NewRegistry().MustGet("nope")
	})
}
