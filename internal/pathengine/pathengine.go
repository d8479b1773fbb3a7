// Package pathengine answers reachability queries over a canonicalised
// netlist graph: fan-out/fan-in from a named anchor, and point-to-point
// search across an ordered waypoint list.
//
// Traversal is iterative with an explicit frame stack and a Bitmap
// visited-set, modelled on a WalkerCore-style DFS (stack of resumable
// frames plus bitmap tracking) rather than recursion with a map.
package pathengine

import (
	"log/slog"

	"github.com/netlistpaths/netlistgraph/internal/graph"
)

// Path is an ordered sequence of vertices describing one data-flow route.
type Path []graph.VertexID

type frame struct {
	v   graph.VertexID
	idx int
}

// dfsParentTree runs an iterative DFS from start following neighbors(v),
// visiting children in adjacency order, and records a single parent per
// visited vertex (the tree edge that discovered it).
//
// A register vertex (REG_SRC/REG_DST) is a terminal for this walk unless it
// is start itself: its own in/out edges are never both traversable in the
// same search, so expanding past one mid-walk would let a path hop the
// write-then-read turn of a single promoted register and falsely connect
// its writer to its readers. Treating it as a leaf here is what keeps a
// REG_DST's effective out-degree zero for any path not originating at it,
// matching the register barrier invariant without splitting every promoted
// vertex into a synthetic REG_SRC/REG_DST pair.
func dfsParentTree(g *graph.Graph, start graph.VertexID, neighbors func(graph.VertexID) []graph.VertexID) (*Bitmap, map[graph.VertexID]graph.VertexID) {
	visited := NewBitmap(g.NumVertices())
	parent := make(map[graph.VertexID]graph.VertexID)
	visited.Set(start)

	stack := []frame{{start, 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.v != start && g.Vertex(top.v).IsReg() {
			stack = stack[:len(stack)-1]
			continue
		}
		adj := neighbors(top.v)
		if top.idx >= len(adj) {
			stack = stack[:len(stack)-1]
			continue
		}
		next := adj[top.idx]
		top.idx++
		if visited.IsSet(next) {
			continue
		}
		visited.Set(next)
		parent[next] = top.v
		stack = append(stack, frame{next, 0})
	}
	return visited, parent
}

func reconstruct(start, end graph.VertexID, parent map[graph.VertexID]graph.VertexID) Path {
	var rev Path
	cur := end
	for {
		rev = append(rev, cur)
		if cur == start {
			break
		}
		cur = parent[cur]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

func reversed(p Path) Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// fanReach runs dfsParentTree from start over neighbors and returns one
// Path (in neighbors-forward order, starting at start) per reachable
// vertex satisfying roleFilter, ordered by ascending vertex id.
func fanReach(g *graph.Graph, start graph.VertexID, neighbors func(graph.VertexID) []graph.VertexID, roleFilter func(*graph.Vertex) bool) []Path {
	visited, parent := dfsParentTree(g, start, neighbors)

	var paths []Path
	for id := graph.VertexID(0); int(id) < g.NumVertices(); id++ {
		if id == start || !visited.IsSet(id) {
			continue
		}
		v := g.Vertex(id)
		if v.Deleted || !roleFilter(v) {
			continue
		}
		paths = append(paths, reconstruct(start, id, parent))
	}
	return paths
}

// FanOut returns every path from v to a reachable end-point.
func FanOut(g *graph.Graph, v graph.VertexID) []Path {
	return fanReach(g, v, g.Out, (*graph.Vertex).IsEndPoint)
}

// FanIn returns every path from a reachable start-point to v. Computed as
// fan-out on the transpose view (g.In); each discovered path comes back
// v-first in transpose-forward order and is reversed so that it runs from
// the start-point to v.
func FanIn(g *graph.Graph, v graph.VertexID) []Path {
	paths := fanReach(g, v, g.In, (*graph.Vertex).IsStartPoint)
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = reversed(p)
	}
	return out
}

// FanOutDegree returns the number of distinct end-points reachable from v.
func FanOutDegree(g *graph.Graph, v graph.VertexID) int {
	return len(FanOut(g, v))
}

// FanInDegree returns the number of distinct start-points that reach v.
func FanInDegree(g *graph.Graph, v graph.VertexID) int {
	return len(FanIn(g, v))
}

// SegmentPath runs a single DFS tree from start and extracts the unique
// tree-edge path to target, if target is reachable.
func SegmentPath(g *graph.Graph, start, target graph.VertexID) (Path, bool) {
	visited, parent := dfsParentTree(g, start, g.Out)
	if !visited.IsSet(target) {
		return nil, false
	}
	return reconstruct(start, target, parent), true
}

// PathExists reports whether target is reachable from start by any path.
func PathExists(g *graph.Graph, start, target graph.VertexID) bool {
	_, ok := SegmentPath(g, start, target)
	return ok
}

// AnyPointToPoint walks the ordered waypoint list pairwise, running a
// fresh DFS tree-edge search between each adjacent pair and concatenating
// the segments, discarding the duplicated junction vertex between them.
// Returns (nil, false) if any segment is empty.
func AnyPointToPoint(g *graph.Graph, waypoints []graph.VertexID) (Path, bool) {
	if len(waypoints) < 2 {
		return nil, false
	}
	full := Path{waypoints[0]}
	for i := 0; i+1 < len(waypoints); i++ {
		seg, ok := SegmentPath(g, waypoints[i], waypoints[i+1])
		if !ok || len(seg) == 0 {
			return nil, false
		}
		full = append(full, seg[1:]...)
	}
	return full, true
}

// AllPointToPoint enumerates every simple path from start to target by
// recording, for every vertex reachable from start, the full set of
// in-edges whose source is also reachable from start (a multi-valued
// parent map over all examined edges, not just DFS tree edges), then
// recursively walking backward from target, pruning any parent already on
// the path under construction. This is worst-case exponential in the size
// of the reachable subgraph and is intended for short hops only; maxPaths
// bounds the result and is logged when it truncates the search.
func AllPointToPoint(g *graph.Graph, start, target graph.VertexID, maxPaths int, logger *slog.Logger) []Path {
	if logger == nil {
		logger = slog.Default()
	}

	reachable, _ := dfsParentTree(g, start, g.Out)

	multiParent := make(map[graph.VertexID][]graph.VertexID)
	for id := graph.VertexID(0); int(id) < g.NumVertices(); id++ {
		if !reachable.IsSet(id) {
			continue
		}
		for _, src := range g.In(id) {
			if reachable.IsSet(src) {
				multiParent[id] = append(multiParent[id], src)
			}
		}
	}

	var results []Path
	onPath := NewBitmap(g.NumVertices())
	var stackPath []graph.VertexID
	truncated := false

	var walk func(cur graph.VertexID)
	walk = func(cur graph.VertexID) {
		if maxPaths > 0 && len(results) >= maxPaths {
			truncated = true
			return
		}
		stackPath = append(stackPath, cur)
		onPath.Set(cur)

		if cur == start {
			p := make(Path, len(stackPath))
			for i, v := range stackPath {
				p[len(stackPath)-1-i] = v
			}
			results = append(results, p)
		} else {
			for _, p := range multiParent[cur] {
				if !onPath.IsSet(p) {
					walk(p)
				}
			}
		}

		onPath.Clear(cur)
		stackPath = stackPath[:len(stackPath)-1]
	}
	if reachable.IsSet(target) {
		walk(target)
	}

	if truncated {
		logger.Warn("all-paths search truncated", "start", start, "target", target, "limit", maxPaths)
	}
	return results
}
