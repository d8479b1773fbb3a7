// Package netlist is the query façade: a stateful wrapper that owns a
// canonicalised netlist graph together with its type and file registries,
// accumulates waypoints, and delegates structural queries to the resolver
// and path engines.
//
// Grounded on the original NetlistPaths/Netlist classes (a single owner
// object wrapping a graph plus a Waypoints accumulator) and on the
// teacher's pkg/hive top-level package shape: an Open-style constructor,
// a stateful facade type, Options-style construction.
package netlist

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/netlistpaths/netlistgraph/internal/canon"
	"github.com/netlistpaths/netlistgraph/internal/dtype"
	"github.com/netlistpaths/netlistgraph/internal/fileset"
	"github.com/netlistpaths/netlistgraph/internal/graph"
	"github.com/netlistpaths/netlistgraph/internal/ingest"
	"github.com/netlistpaths/netlistgraph/internal/pathengine"
	"github.com/netlistpaths/netlistgraph/internal/resolver"
	"github.com/netlistpaths/netlistgraph/pkg/types"
)

// Path is a sequence of vertex handles describing one data-flow route, in
// real-world start-to-end order.
type Path = pathengine.Path

// Options controls façade construction and report formatting.
type Options struct {
	// Logger receives ingest/canon/query diagnostics. Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger

	// FullFileNames reports each vertex's complete location path in
	// pretty-printed reports instead of just the file's base name.
	FullFileNames bool

	// MaxAllPaths bounds get_all_paths_through_waypoints; zero means
	// unbounded. Unbounded enumeration of all simple paths is worst-case
	// exponential in the reachable subgraph's size.
	MaxAllPaths int
}

// Netlist is the query façade. It owns the graph, the waypoint
// accumulator, and the registries produced by ingest.
type Netlist struct {
	graph  *graph.Graph
	dtypes *dtype.Registry
	files  *fileset.Registry
	logger *slog.Logger
	opts   Options

	Waypoints Waypoints
}

// Load ingests the elaborator's XML dump, runs the post-ingest sanity
// checks, canonicalises the graph, and returns a ready-to-query façade.
// Warnings from CheckGraph are logged, not fatal; errors during ingest
// abort construction.
func Load(data []byte, opts Options) (*Netlist, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	res, err := ingest.Ingest(data, opts.Logger)
	if err != nil {
		return nil, err
	}

	// CheckGraph logs each finding itself; the count is enough here.
	if findings := graph.CheckGraph(res.Graph, opts.Logger); len(findings) > 0 {
		opts.Logger.Info("check_graph findings", "count", len(findings))
	}

	stats := canon.Run(res.Graph, opts.Logger)
	opts.Logger.Info("canonicalisation complete", "scanned", stats.Scanned, "merged", stats.Merged)

	return &Netlist{
		graph:  res.Graph,
		dtypes: res.DTypes,
		files:  res.Files,
		logger: opts.Logger,
		opts:   opts,
	}, nil
}

func (n *Netlist) resolveRole(name string, role resolver.Role) graph.VertexID {
	v, err := resolver.ResolveUnambiguous(n.graph, name, role)
	if err != nil {
		n.logger.Warn("resolver pattern rejected", "name", name, "error", err)
		return graph.NullVertex
	}
	return v
}

// StartpointExists reports whether name resolves to a (non-deleted)
// start-point vertex.
func (n *Netlist) StartpointExists(name string) bool {
	return n.resolveRole(name, resolver.RoleStartPoint) != graph.NullVertex
}

// EndpointExists reports whether name resolves to a (non-deleted)
// end-point vertex.
func (n *Netlist) EndpointExists(name string) bool {
	return n.resolveRole(name, resolver.RoleEndPoint) != graph.NullVertex
}

// RegExists reports whether name resolves to a (non-deleted) register
// vertex.
func (n *Netlist) RegExists(name string) bool {
	return n.resolveRole(name, resolver.RoleReg) != graph.NullVertex
}

func (n *Netlist) getStartVertexExcept(name string) (graph.VertexID, error) {
	v := n.resolveRole(name, resolver.RoleStartPoint)
	if v == graph.NullVertex {
		return graph.NullVertex, types.NewError(types.ErrKindNotFound, nil, "could not find start point %q", name)
	}
	return v, nil
}

func (n *Netlist) getEndVertexExcept(name string) (graph.VertexID, error) {
	v := n.resolveRole(name, resolver.RoleEndPoint)
	if v == graph.NullVertex {
		return graph.NullVertex, types.NewError(types.ErrKindNotFound, nil, "could not find end point %q", name)
	}
	return v, nil
}

// PathExists name-resolves start as a start-point and end as an end-point,
// then reports whether a direct path between them exists. Returns false,
// without error, if either name fails to resolve — an absent endpoint means
// no path, not a malformed query. Resolution is entirely local: this is a
// read-only query and must not disturb any waypoints the caller has already
// accumulated on n.Waypoints.
func (n *Netlist) PathExists(start, end string) bool {
	startV := n.resolveRole(start, resolver.RoleStartPoint)
	endV := n.resolveRole(end, resolver.RoleEndPoint)
	if startV == graph.NullVertex || endV == graph.NullVertex {
		return false
	}
	return pathengine.PathExists(n.graph, startV, endV)
}

// GetAnyPathThroughWaypoints resolves the accumulated waypoint names (as
// start-point/mid-point/end-point respectively for the first/middle/last
// entries) and returns a single path satisfying all of them, or an empty
// path if none exists.
func (n *Netlist) GetAnyPathThroughWaypoints() (Path, error) {
	ids, err := n.resolveWaypoints()
	if err != nil {
		return nil, err
	}
	if len(ids) < 2 {
		return nil, nil
	}
	p, ok := pathengine.AnyPointToPoint(n.graph, ids)
	if !ok {
		return nil, nil
	}
	return p, nil
}

// GetAllPathsThroughWaypoints enumerates every simple path from the first
// to the second accumulated waypoint. Matching the original engine, only
// the first two waypoints bound the search (all-paths enumeration does
// not thread through additional through-points); callers wanting a
// multi-hop all-paths query should chain single-hop calls themselves.
func (n *Netlist) GetAllPathsThroughWaypoints() ([]Path, error) {
	ids, err := n.resolveWaypoints()
	if err != nil {
		return nil, err
	}
	if len(ids) < 2 {
		return nil, nil
	}
	return pathengine.AllPointToPoint(n.graph, ids[0], ids[1], n.opts.MaxAllPaths, n.logger), nil
}

func (n *Netlist) resolveWaypoints() ([]graph.VertexID, error) {
	names := n.Waypoints.Names()
	ids := make([]graph.VertexID, len(names))
	for i, name := range names {
		role := resolver.RoleMidPoint
		switch {
		case i == 0:
			role = resolver.RoleStartPoint
		case i == len(names)-1:
			role = resolver.RoleEndPoint
		}
		v := n.resolveRole(name, role)
		if v == graph.NullVertex {
			return nil, types.NewError(types.ErrKindNotFound, nil, "could not find waypoint %q", name)
		}
		ids[i] = v
	}
	return ids, nil
}

// GetAllFanout returns every path fanning out from startName to a
// reachable end-point.
func (n *Netlist) GetAllFanout(startName string) ([]Path, error) {
	v, err := n.getStartVertexExcept(startName)
	if err != nil {
		return nil, err
	}
	return pathengine.FanOut(n.graph, v), nil
}

// GetAllFanin returns every path fanning into endName from a reachable
// start-point.
func (n *Netlist) GetAllFanin(endName string) ([]Path, error) {
	v, err := n.getEndVertexExcept(endName)
	if err != nil {
		return nil, err
	}
	return pathengine.FanIn(n.graph, v), nil
}

// FanoutDegree returns the count of distinct end-point paths startName fans
// out to. This keeps the simpler counted definition rather than the
// original's bit-width-weighted one; see (*graph.Vertex).DType.Width for
// callers that want a resolved vertex's weighted notion instead.
func (n *Netlist) FanoutDegree(startName string) (int, error) {
	v, err := n.getStartVertexExcept(startName)
	if err != nil {
		return 0, err
	}
	return pathengine.FanOutDegree(n.graph, v), nil
}

// FaninDegree returns the count of distinct start-point paths that fan into
// endName.
func (n *Netlist) FaninDegree(endName string) (int, error) {
	v, err := n.getEndVertexExcept(endName)
	if err != nil {
		return 0, err
	}
	return pathengine.FanInDegree(n.graph, v), nil
}

// GetNames returns every non-logic, non-src-reg, non-ignorable, non-deleted
// vertex, sorted by (name, kind, direction, location).
func (n *Netlist) GetNames() []graph.VertexID {
	var ids []graph.VertexID
	n.graph.Each(func(id graph.VertexID, v *graph.Vertex) {
		if v.IsLogic() || v.IsSrcReg() || v.CanIgnore() {
			return
		}
		ids = append(ids, id)
	})
	sort.Slice(ids, func(i, j int) bool {
		a, b := n.graph.Vertex(ids[i]), n.graph.Vertex(ids[j])
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Direction != b.Direction {
			return a.Direction < b.Direction
		}
		return a.Location.String() < b.Location.String()
	})
	return ids
}

func (n *Netlist) locationPath(v *graph.Vertex) string {
	f, ok := n.files.Get(v.Location.FileID)
	if !ok {
		return ""
	}
	if n.opts.FullFileNames {
		return f.Path
	}
	return filepath.Base(f.Path)
}

// FormatNames pretty-prints ids (as produced by GetNames) to w as a
// fixed-width table: name, type, direction, width, source location. When
// showLogic is false (the usual case, since GetNames already excludes
// logic vertices) it has no effect here; it is accepted for symmetry with
// FormatPath, which does receive raw, logic-including paths.
func (n *Netlist) FormatNames(w io.Writer, ids []graph.VertexID, showLogic bool) {
	maxWidth := 0
	for _, id := range ids {
		if l := len(n.graph.Vertex(id).Name); l > maxWidth {
			maxWidth = l
		}
	}
	maxWidth++

	fmt.Fprintf(w, "%-*s%-10s%-10s%-10s%s\n", maxWidth, "Name", "Type", "Direction", "Width", "Location")
	for _, id := range ids {
		v := n.graph.Vertex(id)
		if v.IsLogic() && !showLogic {
			continue
		}
		typeStr := v.Kind.String()
		if typeStr == "REG_DST" {
			typeStr = "REG"
		}
		fmt.Fprintf(w, "%-*s%-10s%-10s%-10d%s\n", maxWidth, v.Name, typeStr, v.Direction.String(), v.DType.Width(), n.locationPath(v))
	}
}

// FormatPath pretty-prints a single path to w, one vertex per line
// alongside its source location. Logic vertices are omitted unless
// showLogic is set; CanIgnore vertices (elaborator-introduced __Vdly,
// __Vcell and __Vconc names) are always omitted.
func (n *Netlist) FormatPath(w io.Writer, p []graph.VertexID, showLogic bool) {
	maxWidth := 0
	for _, id := range p {
		v := n.graph.Vertex(id)
		if v.CanIgnore() {
			continue
		}
		if l := len(v.Name); l > maxWidth {
			maxWidth = l
		}
	}
	maxWidth++

	for _, id := range p {
		v := n.graph.Vertex(id)
		if v.CanIgnore() {
			continue
		}
		if v.IsLogic() && !showLogic {
			continue
		}
		fmt.Fprintf(w, "  %-*s%s\n", maxWidth, v.Name, n.locationPath(v))
	}
}

// FormatPaths pretty-prints a collection of paths to w, numbered, with a
// trailing count summary.
func (n *Netlist) FormatPaths(w io.Writer, paths []Path, showLogic bool) {
	count := 0
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		count++
		fmt.Fprintf(w, "Path %d\n", count)
		n.FormatPath(w, p, showLogic)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Found %d path(s)\n", count)
}

// VertexName returns the name of the vertex at id, for callers printing
// individual handles returned by GetNames/GetAllFanout/GetAllFanin.
func (n *Netlist) VertexName(id graph.VertexID) string {
	return n.graph.Vertex(id).Name
}

// Stats summarises a loaded netlist's size, for a CLI's post-load report.
type Stats struct {
	Vertices int
	Edges    int
	Files    int
	DTypes   int
}

// Stats returns the vertex/edge/file/dtype counts of the loaded netlist.
func (n *Netlist) Stats() Stats {
	return Stats{
		Vertices: n.graph.NumVertices(),
		Edges:    n.graph.NumEdges(),
		Files:    n.files.Len(),
		DTypes:   n.dtypes.Len(),
	}
}
