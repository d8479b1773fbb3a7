package graph

import (
	"fmt"
	"log/slog"
	"strings"
)

// WarningKind classifies a CheckGraph finding.
type WarningKind int

const (
	WarnRegSrcHasInEdges WarningKind = iota
	WarnRegDstHasOutEdges
	WarnLvboundMarker
)

func (k WarningKind) String() string {
	switch k {
	case WarnRegSrcHasInEdges:
		return "RegSrcHasInEdges"
	case WarnRegDstHasOutEdges:
		return "RegDstHasOutEdges"
	case WarnLvboundMarker:
		return "LvboundMarker"
	default:
		return "Unknown"
	}
}

// Warning is a single non-fatal finding from CheckGraph.
type Warning struct {
	Kind   WarningKind
	Vertex VertexID
	Detail string
}

// CheckGraph runs post-ingest sanity checks: any REG_SRC with in-degree > 0,
// any REG_DST with out-degree > 0, and any vertex whose name still contains
// the elaborator-internal "__Vlvbound" marker (evidence of a lowering bug
// upstream). Findings are logged through the provided logger (nil selects
// slog.Default()) and also returned so a caller can act on them
// programmatically.
func CheckGraph(g *Graph, logger *slog.Logger) []Warning {
	if logger == nil {
		logger = slog.Default()
	}
	var warnings []Warning
	g.EachAll(func(id VertexID, v *Vertex) {
		if v.Kind.String() == "REG_SRC" && g.InDegree(id) > 0 {
			w := Warning{
				Kind:   WarnRegSrcHasInEdges,
				Vertex: id,
				Detail: fmt.Sprintf("source reg %q has %d in edges", v.Name, g.InDegree(id)),
			}
			warnings = append(warnings, w)
			logger.Warn(w.Detail, "vertex", id, "kind", w.Kind.String())
		}
		if v.Kind.String() == "REG_DST" && g.OutDegree(id) > 0 {
			w := Warning{
				Kind:   WarnRegDstHasOutEdges,
				Vertex: id,
				Detail: fmt.Sprintf("destination reg %q has %d out edges", v.Name, g.OutDegree(id)),
			}
			warnings = append(warnings, w)
			logger.Warn(w.Detail, "vertex", id, "kind", w.Kind.String())
		}
		if strings.Contains(v.Name, "__Vlvbound") {
			w := Warning{
				Kind:   WarnLvboundMarker,
				Vertex: id,
				Detail: fmt.Sprintf("vertex %q still carries an __Vlvbound marker", v.Name),
			}
			warnings = append(warnings, w)
			logger.Warn(w.Detail, "vertex", id, "kind", w.Kind.String())
		}
	})
	return warnings
}
