package dtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry()
	d := r.Add("1", Descriptor{Kind: KindBasic, Name: "logic", HasRange: true, Left: 7, Right: 0})

	got, ok := r.Get("1")
	require.True(t, ok, "expected descriptor 1 to be present")
	require.Same(t, d, got, "expected Get to return the same pointer as Add")
	require.Equal(t, 8, got.Width())
}

func TestDescriptorWidthDefaults(t *testing.T) {
	d := &Descriptor{Kind: KindBasic}
	require.Equal(t, 1, d.Width())
	ref := &Descriptor{Kind: KindRef}
	require.Equal(t, 1, ref.Width())
}

func TestRegistryMissing(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get("nope")
	require.False(t, ok, "expected Get(nope) to report false")
	require.Equal(t, 0, r.Len())
}
