package pathengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/netlistpaths/netlistgraph/internal/graph"
	"github.com/netlistpaths/netlistgraph/pkg/types"
)

// buildChain builds src -(wire)-> ... -> dst style linear graph of register
// source to register destination through named mid-point wires.
func buildChain(t *testing.T, n int) (*graph.Graph, []graph.VertexID) {
	t.Helper()
	g := graph.New()
	ids := make([]graph.VertexID, n)
	ids[0] = g.AddVertex(graph.NewVarVertex(types.KindRegSrc, types.DirNone, types.Location{}, nil, "top.r0", false, ""))
	for i := 1; i < n-1; i++ {
		ids[i] = g.AddVertex(graph.NewVarVertex(types.KindWire, types.DirNone, types.Location{}, nil, "top.w", false, ""))
	}
	ids[n-1] = g.AddVertex(graph.NewVarVertex(types.KindRegDst, types.DirNone, types.Location{}, nil, "top.r1", false, ""))
	for i := 0; i < n-1; i++ {
		g.AddEdge(ids[i], ids[i+1])
	}
	return g, ids
}

func TestFanOutFindsEndpoint(t *testing.T) {
	g, ids := buildChain(t, 4)
	paths := FanOut(g, ids[0])
	require.Len(t, paths, 1)
	got := paths[0]
	require.Len(t, got, 4)
	require.Equal(t, ids[0], got[0])
	require.Equal(t, ids[3], got[3])
}

func TestFanInFindsStartpoint(t *testing.T) {
	g, ids := buildChain(t, 4)
	paths := FanIn(g, ids[3])
	require.Len(t, paths, 1)
	got := paths[0]
	require.Equal(t, ids[0], got[0])
	require.Equal(t, ids[3], got[len(got)-1])
}

func TestFanOutDegreeAndFanInDegree(t *testing.T) {
	g, ids := buildChain(t, 4)
	require.Equal(t, 1, FanOutDegree(g, ids[0]))
	require.Equal(t, 1, FanInDegree(g, ids[3]))
}

func TestSegmentPathAndPathExists(t *testing.T) {
	g, ids := buildChain(t, 4)
	seg, ok := SegmentPath(g, ids[0], ids[2])
	require.True(t, ok, "expected a segment path")
	require.Len(t, seg, 3)
	require.True(t, PathExists(g, ids[0], ids[3]), "expected path to exist end-to-end")
	require.False(t, PathExists(g, ids[3], ids[0]), "expected no path in reverse direction")
}

func TestAnyPointToPointConcatenatesSegmentsWithoutDuplicateJunction(t *testing.T) {
	g, ids := buildChain(t, 5)
	path, ok := AnyPointToPoint(g, []graph.VertexID{ids[0], ids[2], ids[4]})
	require.True(t, ok, "expected a path through all waypoints")
	require.Len(t, path, 5, "no duplicated junction")
	require.Equal(t, Path(ids), path)
}

func TestAnyPointToPointEmptySegmentFailsWhole(t *testing.T) {
	g, ids := buildChain(t, 4)
	isolated := g.AddVertex(graph.NewVarVertex(types.KindWire, types.DirNone, types.Location{}, nil, "top.orphan", false, ""))

	_, ok := AnyPointToPoint(g, []graph.VertexID{ids[0], isolated, ids[3]})
	require.False(t, ok, "expected failure when an intermediate waypoint is unreachable")
}

func TestAllPointToPointFindsMultipleRoutes(t *testing.T) {
	g := graph.New()
	start := g.AddVertex(graph.NewVarVertex(types.KindRegSrc, types.DirNone, types.Location{}, nil, "top.r0", false, ""))
	branchA := g.AddVertex(graph.NewVarVertex(types.KindWire, types.DirNone, types.Location{}, nil, "top.a", false, ""))
	branchB := g.AddVertex(graph.NewVarVertex(types.KindWire, types.DirNone, types.Location{}, nil, "top.b", false, ""))
	end := g.AddVertex(graph.NewVarVertex(types.KindRegDst, types.DirNone, types.Location{}, nil, "top.r1", false, ""))

	g.AddEdge(start, branchA)
	g.AddEdge(start, branchB)
	g.AddEdge(branchA, end)
	g.AddEdge(branchB, end)

	paths := AllPointToPoint(g, start, end, 0, nil)
	require.Len(t, paths, 2)
	for _, p := range paths {
		require.Equal(t, start, p[0])
		require.Equal(t, end, p[len(p)-1])
		require.Len(t, p, 3)
	}
}

func TestAllPointToPointRespectsMaxPaths(t *testing.T) {
	g := graph.New()
	start := g.AddVertex(graph.NewVarVertex(types.KindRegSrc, types.DirNone, types.Location{}, nil, "top.r0", false, ""))
	end := g.AddVertex(graph.NewVarVertex(types.KindRegDst, types.DirNone, types.Location{}, nil, "top.r1", false, ""))
	for i := 0; i < 5; i++ {
		mid := g.AddVertex(graph.NewVarVertex(types.KindWire, types.DirNone, types.Location{}, nil, "top.m", false, ""))
		g.AddEdge(start, mid)
		g.AddEdge(mid, end)
	}

	paths := AllPointToPoint(g, start, end, 2, nil)
	require.Len(t, paths, 2, "capped")
}

// TestDfsParentTreeRegisterBarrier exercises the register-severing invariant
// directly at the traversal layer: a REG_DST reached mid-walk blocks further
// expansion, but the same vertex expands normally when it is the walk's own
// origin.
func TestDfsParentTreeRegisterBarrier(t *testing.T) {
	g := graph.New()
	src := g.AddVertex(graph.NewVarVertex(types.KindPort, types.DirInput, types.Location{}, nil, "top.i_clk", false, ""))
	regDst := g.AddVertex(graph.NewVarVertex(types.KindVar, types.DirNone, types.Location{}, nil, "top.q", false, ""))
	g.PromoteToRegDst(regDst)
	downstream := g.AddVertex(graph.NewVarVertex(types.KindPort, types.DirOutput, types.Location{}, nil, "top.o", false, ""))

	g.AddEdge(src, regDst)
	g.AddEdge(regDst, downstream)

	require.True(t, PathExists(g, src, regDst), "clock should reach the register")
	require.False(t, PathExists(g, src, downstream), "register should sever reach past itself")
	require.True(t, PathExists(g, regDst, downstream), "register is a valid origin for its own fan-out")
}
