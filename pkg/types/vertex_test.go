package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVertexKindRoundTrip(t *testing.T) {
	for name, kind := range namesToKind {
		require.Equal(t, kind, ParseVertexKind(name), "ParseVertexKind(%q)", name)
		require.Equal(t, name, kind.String(), "VertexKind(%v).String()", kind)
	}
}

func TestParseVertexKindUnknown(t *testing.T) {
	require.Equal(t, KindInvalid, ParseVertexKind("SOMETHING_ELSE"))
	require.Equal(t, "INVALID", KindInvalid.String())
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"input":  DirInput,
		"output": DirOutput,
		"inout":  DirInout,
		"":       DirNone,
		"bogus":  DirNone,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseDirection(in), "ParseDirection(%q)", in)
	}
}
