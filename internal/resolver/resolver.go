// Package resolver translates a user-supplied name into a vertex in the
// netlist graph. Names may be given in dotted, slash-separated, or
// flattened (underscore) hierarchical form, and may themselves be regular
// expressions; the resolver treats all three separator forms as
// equivalent and matches by regex scan rather than exact lookup.
//
// Grounded on Netlist::getVertexDesc (C++) for the normalise-then-scan
// algorithm, re-expressed in Go's regexp package.
package resolver

import (
	"regexp"
	"strings"

	"github.com/netlistpaths/netlistgraph/internal/graph"
	"github.com/netlistpaths/netlistgraph/pkg/types"
)

// Role selects which role-predicate a candidate vertex must satisfy.
type Role int

const (
	RoleAny Role = iota
	RoleStartPoint
	RoleEndPoint
	RoleMidPoint
	RoleReg
)

func satisfies(v *graph.Vertex, role Role) bool {
	switch role {
	case RoleStartPoint:
		return v.IsStartPoint()
	case RoleEndPoint:
		return v.IsEndPoint()
	case RoleMidPoint:
		return v.IsMidPoint()
	case RoleReg:
		return v.IsReg()
	default:
		return true
	}
}

// Normalise maps hierarchical separators ('/' and '_') onto '.' so that
// dotted, slash-separated, and flattened forms of the same name are
// interchangeable inputs to Resolve.
func Normalise(name string) string {
	name = strings.ReplaceAll(name, "/", ".")
	name = strings.ReplaceAll(name, "_", ".")
	return name
}

// Resolve compiles the normalised input as a regex and scans non-logic,
// non-deleted vertices in ascending id order, returning the first whose
// name matches and whose role predicate is satisfied. It returns
// graph.NullVertex, not an error, when nothing matches — a resolver miss
// is not itself a failure; callers that require a vertex turn a
// NullVertex result into a types.ErrNotFound.
func Resolve(g *graph.Graph, name string, role Role) (graph.VertexID, error) {
	pattern := Normalise(name)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return graph.NullVertex, types.NewError(types.ErrKindMalformedInput, err, "invalid resolver pattern %q", name)
	}

	found := graph.NullVertex
	g.Each(func(id graph.VertexID, v *graph.Vertex) {
		if found != graph.NullVertex {
			return
		}
		if v.IsLogic() {
			return
		}
		if re.MatchString(v.Name) && satisfies(v, role) {
			found = id
		}
	})
	return found, nil
}

// ResolveUnambiguous behaves like Resolve but additionally requires that at
// most one candidate among ties sharing the longest matching suffix of the
// compared name survives; if two or more non-logic vertices share the
// longest common suffix with name among the regex matches, it returns
// types.ErrAmbiguousRef instead of silently picking the first. This is the
// entry point the netlist façade uses for every user-supplied name query,
// so a query like "data_q" that regex-matches more than one pipeline
// stage's register is rejected rather than silently resolving to whichever
// one Resolve's ascending-id scan happened to reach first.
func ResolveUnambiguous(g *graph.Graph, name string, role Role) (graph.VertexID, error) {
	pattern := Normalise(name)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return graph.NullVertex, types.NewError(types.ErrKindMalformedInput, err, "invalid resolver pattern %q", name)
	}

	var matches []graph.VertexID
	g.Each(func(id graph.VertexID, v *graph.Vertex) {
		if v.IsLogic() {
			return
		}
		if re.MatchString(v.Name) && satisfies(v, role) {
			matches = append(matches, id)
		}
	})
	if len(matches) == 0 {
		return graph.NullVertex, nil
	}
	if len(matches) == 1 {
		return matches[0], nil
	}

	best := longestCommonSuffixLen(g.Vertex(matches[0]).Name, name)
	winner := matches[0]
	tie := false
	for _, id := range matches[1:] {
		l := longestCommonSuffixLen(g.Vertex(id).Name, name)
		switch {
		case l > best:
			best, winner, tie = l, id, false
		case l == best:
			tie = true
		}
	}
	if tie {
		return graph.NullVertex, types.NewError(types.ErrKindAmbiguousRef, nil, "reference %q matches multiple declarations with an equally long common suffix", name)
	}
	return winner, nil
}

func longestCommonSuffixLen(a, b string) int {
	i, j := len(a)-1, len(b)-1
	n := 0
	for i >= 0 && j >= 0 && a[i] == b[j] {
		n++
		i--
		j--
	}
	return n
}
