package graph

import (
	"strings"

	"github.com/netlistpaths/netlistgraph/internal/dtype"
	"github.com/netlistpaths/netlistgraph/pkg/types"
)

// ignorableMarkers are elaborator-introduced name fragments that mark a
// vertex as implementation detail rather than user-visible signal.
var ignorableMarkers = []string{"__Vdly", "__Vcell", "__Vconc"}

// Vertex is the per-vertex value object of the graph. Polymorphism over AST
// kind is expressed as a closed enum plus optional fields rather than an
// interface hierarchy — a single flat struct is cheaper to store in a
// dense, append-only slice, and the role predicates below are just as
// readable closed over the enum.
type Vertex struct {
	Kind       types.VertexKind
	Direction  types.Direction
	Location   types.Location
	DType      *dtype.Descriptor
	Name       string
	IsParam    bool
	ParamValue string
	IsTop      bool
	Deleted    bool
}

// NewLogicVertex builds a logic vertex (no name, no direction).
func NewLogicVertex(kind types.VertexKind, loc types.Location) Vertex {
	return Vertex{Kind: kind, Location: loc}
}

// NewVarVertex builds a named (VAR/WIRE/PORT) vertex. IsTop is derived here
// once and never recomputed afterwards.
func NewVarVertex(kind types.VertexKind, dir types.Direction, loc types.Location, dt *dtype.Descriptor, name string, isParam bool, paramValue string) Vertex {
	return Vertex{
		Kind:       kind,
		Direction:  dir,
		Location:   loc,
		DType:      dt,
		Name:       name,
		IsParam:    isParam,
		ParamValue: paramValue,
		IsTop:      DetermineIsTop(name),
	}
}

// DetermineIsTop reports whether name belongs to the top module: true iff
// the dotted name has fewer than three components.
func DetermineIsTop(name string) bool {
	if name == "" {
		return true
	}
	return strings.Count(name, ".") < 2
}

// IsLogic reports whether v is a logic (non-named) vertex.
func (v *Vertex) IsLogic() bool {
	switch v.Kind {
	case types.KindLogic, types.KindAssign, types.KindAssignAlias, types.KindAssignDly,
		types.KindAssignW, types.KindAlways, types.KindInitial, types.KindSenGate, types.KindSenItem:
		return true
	default:
		return false
	}
}

// IsReg reports whether v is a (non-deleted) register vertex.
func (v *Vertex) IsReg() bool {
	return !v.Deleted && (v.Kind == types.KindRegSrc || v.Kind == types.KindRegDst)
}

// IsSrcReg reports whether v is a non-deleted REG_SRC vertex.
func (v *Vertex) IsSrcReg() bool {
	return !v.Deleted && v.Kind == types.KindRegSrc
}

// IsStartPoint reports whether v may originate a data path: a register
// source, a register destination (its stored value is read out on a later
// cycle, so a promoted-but-never-split VAR->REG_DST is a start point too),
// or a top-level input/inout.
func (v *Vertex) IsStartPoint() bool {
	if v.Deleted {
		return false
	}
	if v.Kind == types.KindRegSrc || v.Kind == types.KindRegDst {
		return true
	}
	return v.IsTop && (v.Direction == types.DirInput || v.Direction == types.DirInout)
}

// IsEndPoint reports whether v may terminate a data path: a register
// destination, or a top-level output/inout.
func (v *Vertex) IsEndPoint() bool {
	if v.Deleted {
		return false
	}
	if v.Kind == types.KindRegDst {
		return true
	}
	return v.IsTop && (v.Direction == types.DirOutput || v.Direction == types.DirInout)
}

// IsMidPoint reports whether v is a named combinational signal a path may
// pass through: a variable, wire, or port (top-level ports included).
func (v *Vertex) IsMidPoint() bool {
	if v.Deleted {
		return false
	}
	switch v.Kind {
	case types.KindVar, types.KindWire, types.KindPort:
		return true
	default:
		return false
	}
}

// CanIgnore reports whether v is an elaborator-introduced vertex that should
// be suppressed from user-visible listings (it remains in the graph).
func (v *Vertex) CanIgnore() bool {
	for _, marker := range ignorableMarkers {
		if strings.Contains(v.Name, marker) {
			return true
		}
	}
	return false
}
