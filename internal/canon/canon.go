// Package canon merges duplicate non-logic vertices that the ingester may
// have created for what is really one logical signal (hierarchical port
// passthrough, alias assignments) so that later queries have a single
// anchor per name.
//
// Grounded on Netlist::mergeDuplicateVertices (C++) and on a sort-then-scan
// adjacent-merge approach: sorting brings equivalent vertices together so
// the merge is a single linear pass rather than an all-pairs comparison.
package canon

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/netlistpaths/netlistgraph/internal/dtype"
	"github.com/netlistpaths/netlistgraph/internal/graph"
)

// Stats summarizes one Run.
type Stats struct {
	Scanned int
	Merged  int
}

// Run collects every non-logic, non-deleted vertex, sorts them under a
// total order over (name, kind, direction, location, dtype identity,
// deleted), and merges adjacent equivalents: the first vertex in each
// equivalence run survives, every later one has its edges redirected onto
// the survivor and is marked deleted.
//
// Equivalence is (name, kind, direction, location, dtype, is_param,
// paramValue, is_top, deleted) — the same fields the total order sorts on,
// plus is_param/paramValue/is_top, which do not affect relative order
// within an already-equal (name, kind, direction, location, dtype) group
// in practice (they are derived from name and declaration) but are checked
// explicitly so a future divergence fails safe rather than silently
// merging non-equivalent vertices.
func Run(g *graph.Graph, logger *slog.Logger) Stats {
	if logger == nil {
		logger = slog.Default()
	}

	var candidates []graph.VertexID
	g.Each(func(id graph.VertexID, v *graph.Vertex) {
		if !v.IsLogic() {
			candidates = append(candidates, id)
		}
	})

	sort.Slice(candidates, func(i, j int) bool {
		return less(g.Vertex(candidates[i]), g.Vertex(candidates[j]))
	})

	stats := Stats{Scanned: len(candidates)}
	if len(candidates) == 0 {
		return stats
	}

	survivor := candidates[0]
	for _, id := range candidates[1:] {
		if equivalent(g.Vertex(survivor), g.Vertex(id)) {
			g.RedirectEdges(id, survivor)
			g.MarkDeleted(id)
			stats.Merged++
			logger.Debug("merged duplicate vertex", "duplicate", id, "survivor", survivor, "name", g.Vertex(id).Name)
			continue
		}
		survivor = id
	}
	return stats
}

func dtypeIdentity(d *dtype.Descriptor) string { return fmt.Sprintf("%p", d) }

func less(a, b *graph.Vertex) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.Direction != b.Direction {
		return a.Direction < b.Direction
	}
	if a.Location.String() != b.Location.String() {
		return a.Location.String() < b.Location.String()
	}
	if ad, bd := dtypeIdentity(a.DType), dtypeIdentity(b.DType); ad != bd {
		return ad < bd
	}
	if a.Deleted != b.Deleted {
		return !a.Deleted && b.Deleted
	}
	return false
}

func equivalent(a, b *graph.Vertex) bool {
	return a.Name == b.Name &&
		a.Kind == b.Kind &&
		a.Direction == b.Direction &&
		a.Location == b.Location &&
		a.DType == b.DType &&
		a.IsParam == b.IsParam &&
		a.ParamValue == b.ParamValue &&
		a.IsTop == b.IsTop &&
		a.Deleted == b.Deleted
}
