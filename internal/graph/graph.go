// Package graph is the netlist data-flow graph store: a directed graph over
// dense integer vertex identifiers with a stable NullVertex sentinel.
// Deletion uses tombstones rather than removal because renumbering every
// adjacency list on every delete would be expensive under dense indexing.
//
// Grounded on the single-owner, dense-index-handle design of the original
// netlist_paths Netlist class (boost::adjacency_list<vecS, vecS, ...>) and
// on a single-owner Tree/Node ownership model.
package graph

import "github.com/netlistpaths/netlistgraph/pkg/types"

// VertexID is a dense handle into a Graph's vertex storage.
type VertexID int32

// NullVertex is returned by lookups that find nothing.
const NullVertex VertexID = -1

// Graph is a directed multigraph over Vertex values. Edges carry no
// attributes; self-loops and parallel edges are permitted.
type Graph struct {
	vertices []Vertex
	out      [][]VertexID // out[v] = destinations of edges from v, insertion order
	in       [][]VertexID // in[v] = sources of edges into v, insertion order
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddVertex appends v and returns its new id.
func (g *Graph) AddVertex(v Vertex) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, v)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return id
}

// AddEdge records a directed edge src -> dst in declaration order.
func (g *Graph) AddEdge(src, dst VertexID) {
	g.out[src] = append(g.out[src], dst)
	g.in[dst] = append(g.in[dst], src)
}

// NumVertices returns the number of vertices ever added, including deleted
// ones (tombstones are not removed from storage).
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns the total number of directed edges currently recorded.
func (g *Graph) NumEdges() int {
	n := 0
	for _, adj := range g.out {
		n += len(adj)
	}
	return n
}

// Vertex returns a mutable pointer to the vertex at id. The pointer is only
// valid until the next AddVertex call (which may grow the backing slice).
func (g *Graph) Vertex(id VertexID) *Vertex {
	return &g.vertices[id]
}

// Out returns the (insertion-order) destinations of edges from v. The
// returned slice aliases internal storage and must not be mutated.
func (g *Graph) Out(v VertexID) []VertexID { return g.out[v] }

// In returns the (insertion-order) sources of edges into v. The returned
// slice aliases internal storage and must not be mutated.
func (g *Graph) In(v VertexID) []VertexID { return g.in[v] }

// OutDegree returns len(Out(v)).
func (g *Graph) OutDegree(v VertexID) int { return len(g.out[v]) }

// InDegree returns len(In(v)).
func (g *Graph) InDegree(v VertexID) int { return len(g.in[v]) }

// MarkDeleted sets v's tombstone bit. Edges are left untouched; callers that
// need edges rewritten first (e.g. the canonicaliser) must do so explicitly.
func (g *Graph) MarkDeleted(v VertexID) {
	g.vertices[v].Deleted = true
}

// PromoteToRegDst changes v's kind to REG_DST. Used when the ingester
// discovers a non-blocking (delayed) write to a VAR.
func (g *Graph) PromoteToRegDst(v VertexID) {
	g.vertices[v].Kind = types.KindRegDst
}

// RedirectEdges rewrites every edge touching dup so it touches survivor
// instead, then clears dup's adjacency. Both directions are rewritten: a
// duplicate can have in-edges as well as out-edges, and leaving either side
// unrewritten would silently drop reachability through the merged vertex.
func (g *Graph) RedirectEdges(dup, survivor VertexID) {
	for _, dst := range g.out[dup] {
		g.in[dst] = removeOneOccurrence(g.in[dst], dup)
		g.out[survivor] = append(g.out[survivor], dst)
		g.in[dst] = append(g.in[dst], survivor)
	}
	g.out[dup] = nil

	for _, src := range g.in[dup] {
		g.out[src] = removeOneOccurrence(g.out[src], dup)
		g.in[survivor] = append(g.in[survivor], src)
		g.out[src] = append(g.out[src], survivor)
	}
	g.in[dup] = nil
}

func removeOneOccurrence(s []VertexID, v VertexID) []VertexID {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// Each calls fn for every non-deleted vertex id in ascending order.
func (g *Graph) Each(fn func(id VertexID, v *Vertex)) {
	for i := range g.vertices {
		if g.vertices[i].Deleted {
			continue
		}
		fn(VertexID(i), &g.vertices[i])
	}
}

// EachAll calls fn for every vertex id in ascending order, including deleted
// ones. Used by diagnostics (CheckGraph).
func (g *Graph) EachAll(fn func(id VertexID, v *Vertex)) {
	for i := range g.vertices {
		fn(VertexID(i), &g.vertices[i])
	}
}
