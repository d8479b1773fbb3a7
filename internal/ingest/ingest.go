// Package ingest lowers the elaborator's XML AST dump into a graph.Graph,
// a dtype.Registry, and a fileset.Registry.
//
// The visitor is a recursive descent over the decoded XML tree, structured
// the way the original ReadVerilatorXML dispatches on node name: scope
// context is a nesting depth and logic context a stack, so recursion in the
// traversal (not persistent state) carries ambient state across a subtree,
// and blocking vs. non-blocking assignment is distinguished by an
// isDelayedAssign flag scoped to the ASSIGN_DLY subtree.
package ingest

import (
	"encoding/xml"
	"log/slog"
	"strconv"
	"strings"

	"github.com/netlistpaths/netlistgraph/internal/dtype"
	"github.com/netlistpaths/netlistgraph/internal/fileset"
	"github.com/netlistpaths/netlistgraph/internal/graph"
	"github.com/netlistpaths/netlistgraph/pkg/types"
)

// Result bundles the three registries an ingest pass produces.
type Result struct {
	Graph  *graph.Graph
	DTypes *dtype.Registry
	Files  *fileset.Registry
}

type varEntry struct {
	name   string
	vertex graph.VertexID
}

type ingester struct {
	g      *graph.Graph
	dtypes *dtype.Registry
	files  *fileset.Registry
	logger *slog.Logger

	vars []varEntry

	scopeDepth int
	logicStack []graph.VertexID // graph.NullVertex = no enclosing logic

	isDelayedAssign bool
	isLValue        bool
}

// Ingest parses raw XML bytes (typically a memory-mapped elaborator dump)
// into a Result. logger may be nil, in which case slog.Default() is used
// for progress and warning messages.
func Ingest(data []byte, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, types.NewError(types.ErrKindMalformedInput, err, "could not parse elaborator XML")
	}
	if root.XMLName.Local != "verilator_xml" {
		return nil, types.NewError(types.ErrKindMalformedInput, nil, "root element is %q, want verilator_xml", root.XMLName.Local)
	}

	ing := &ingester{
		g:          graph.New(),
		dtypes:     dtype.NewRegistry(),
		files:      fileset.NewRegistry(),
		logger:     logger,
		logicStack: []graph.VertexID{graph.NullVertex},
	}

	if err := ing.readFiles(&root); err != nil {
		return nil, err
	}

	netlistNode, ok := root.Child("netlist")
	if !ok {
		return nil, types.NewError(types.ErrKindMalformedInput, nil, "missing netlist element")
	}
	if len(netlistNode.Nodes) != 2 {
		return nil, types.NewError(types.ErrKindMalformedInput, nil, "netlist element has %d children, want 2 (module, typetable)", len(netlistNode.Nodes))
	}

	moduleNode, ok := netlistNode.Child("module")
	if !ok {
		return nil, types.NewError(types.ErrKindMalformedInput, nil, "netlist element missing module child")
	}
	name, _ := moduleNode.Attr("name")
	if name != "TOP" {
		return nil, types.NewError(types.ErrKindMalformedInput, nil, "top module name is %q, want TOP", name)
	}

	typeTableNode, ok := netlistNode.Child("typetable")
	if !ok {
		return nil, types.NewError(types.ErrKindMalformedInput, nil, "netlist element missing typetable child")
	}
	if err := ing.visitTypeTable(typeTableNode); err != nil {
		return nil, err
	}

	if err := ing.visitModule(moduleNode); err != nil {
		return nil, err
	}

	logger.Info("ingest complete", "vertices", ing.g.NumVertices(), "edges", ing.g.NumEdges(), "vars", len(ing.vars), "dtypes", ing.dtypes.Len(), "files", ing.files.Len())
	return &Result{Graph: ing.g, DTypes: ing.dtypes, Files: ing.files}, nil
}

func (ing *ingester) readFiles(root *xmlNode) error {
	filesNode, ok := root.Child("files")
	if !ok {
		return types.NewError(types.ErrKindMalformedInput, nil, "missing files element")
	}
	for _, f := range filesNode.Children("file") {
		id, ok := f.Attr("id")
		if !ok {
			return types.NewError(types.ErrKindMalformedInput, nil, "file element missing id attribute")
		}
		path, _ := f.Attr("filename")
		lang, _ := f.Attr("language")
		ing.files.Add(id, path, lang)
	}
	return nil
}

func (ing *ingester) loc(n *xmlNode) types.Location {
	s, ok := n.Attr("loc")
	if !ok {
		return types.Location{}
	}
	l, err := types.ParseLocation(s)
	if err != nil {
		ing.logger.Warn("malformed location attribute, ignoring", "value", s, "error", err)
		return types.Location{}
	}
	return l
}

// currentLogic returns the innermost enclosing logic vertex, or NullVertex.
func (ing *ingester) currentLogic() graph.VertexID {
	return ing.logicStack[len(ing.logicStack)-1]
}

func (ing *ingester) pushLogic(v graph.VertexID) {
	ing.logicStack = append(ing.logicStack, v)
}

func (ing *ingester) popLogic() {
	ing.logicStack = ing.logicStack[:len(ing.logicStack)-1]
}

// dispatch visits node, routing on its recognised kind; unrecognised
// elements simply descend into their children.
func (ing *ingester) dispatch(n *xmlNode) error {
	switch resolveNode(n.XMLName.Local) {
	case "ALWAYS", "ALWAYS_PUBLIC":
		return ing.visitStatement(n, types.KindAlways)
	case "ASSIGN", "CONT_ASSIGN":
		return ing.visitAssign(n, types.KindAssign)
	case "ASSIGN_ALIAS":
		return ing.visitAssign(n, types.KindAssignAlias)
	case "ASSIGN_DLY":
		return ing.visitAssignDly(n)
	case "ASSIGN_W":
		return ing.visitAssign(n, types.KindAssignW)
	case "INITIAL":
		return ing.visitStatement(n, types.KindInitial)
	case "SEN_ITEM":
		return ing.visitSenItem(n)
	case "SEN_GATE":
		return ing.visitStatement(n, types.KindSenGate)
	case "C_FUNC":
		return ing.visitStatement(n, types.KindCFunc)
	case "SCOPE", "TOP_SCOPE":
		return ing.visitScope(n)
	case "VAR":
		return ing.visitVar(n)
	case "VAR_REF":
		return ing.visitVarRef(n)
	default:
		return ing.iterateChildren(n)
	}
}

func (ing *ingester) iterateChildren(n *xmlNode) error {
	for i := range n.Nodes {
		if err := ing.dispatch(&n.Nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ing *ingester) visitModule(n *xmlNode) error {
	return ing.iterateChildren(n)
}

func (ing *ingester) visitScope(n *xmlNode) error {
	ing.scopeDepth++
	err := ing.iterateChildren(n)
	ing.scopeDepth--
	return err
}

// visitStatement handles every statement-kind logic node that is not an
// assignment: a new logic vertex becomes current_logic, an edge is drawn
// from the enclosing logic (if any), and children are visited normally.
// Outside a scope the statement is silently skipped.
func (ing *ingester) visitStatement(n *xmlNode, kind types.VertexKind) error {
	if ing.scopeDepth == 0 {
		return nil
	}
	v := ing.g.AddVertex(graph.NewLogicVertex(kind, ing.loc(n)))
	if parent := ing.currentLogic(); parent != graph.NullVertex {
		ing.g.AddEdge(parent, v)
	}
	ing.pushLogic(v)
	err := ing.iterateChildren(n)
	ing.popLogic()
	return err
}

// visitSenItem is a transparent container when already inside a logic
// block (a sensitivity item listed within an ALWAYS's edge expression),
// and a statement in its own right otherwise.
func (ing *ingester) visitSenItem(n *xmlNode) error {
	if ing.currentLogic() != graph.NullVertex {
		return ing.iterateChildren(n)
	}
	return ing.visitStatement(n, types.KindSenItem)
}

// visitAssign handles ASSIGN/ASSIGN_ALIAS/ASSIGN_W/CONT_ASSIGN: exactly two
// children, r-value first then l-value, with is_l_value toggled around the
// second.
func (ing *ingester) visitAssign(n *xmlNode, kind types.VertexKind) error {
	if ing.scopeDepth == 0 {
		return nil
	}
	if len(n.Nodes) != 2 {
		return types.NewError(types.ErrKindMalformedInput, nil, "assignment statement has %d children, want 2", len(n.Nodes))
	}
	v := ing.g.AddVertex(graph.NewLogicVertex(kind, ing.loc(n)))
	if parent := ing.currentLogic(); parent != graph.NullVertex {
		ing.g.AddEdge(parent, v)
	}
	ing.pushLogic(v)

	if err := ing.dispatch(&n.Nodes[0]); err != nil {
		ing.popLogic()
		return err
	}
	ing.isLValue = true
	err := ing.dispatch(&n.Nodes[1])
	ing.isLValue = false
	ing.popLogic()
	return err
}

func (ing *ingester) visitAssignDly(n *xmlNode) error {
	ing.isDelayedAssign = true
	err := ing.visitAssign(n, types.KindAssignDly)
	ing.isDelayedAssign = false
	return err
}

// visitVar creates the named vertex for a declaration and registers it for
// later suffix-match lookup by visitVarRef.
func (ing *ingester) visitVar(n *xmlNode) error {
	name, ok := n.Attr("name")
	if !ok {
		return types.NewError(types.ErrKindMalformedInput, nil, "var element missing name attribute")
	}
	dir := types.DirNone
	if d, ok := n.Attr("dir"); ok {
		dir = types.ParseDirection(d)
	}
	var dt *dtype.Descriptor
	if id, ok := n.Attr("dtype_id"); ok {
		dt, _ = ing.dtypes.Get(id)
	}

	kind := types.KindVar
	isParam := false
	paramValue := ""
	if param, ok := n.Child("param"); ok {
		if resolveNode(param.XMLName.Local) != "CONST" {
			return types.NewError(types.ErrKindMalformedInput, nil, "var %q param child is not a const node", name)
		}
		isParam = true
		paramValue, _ = param.Attr("name")
	}

	v := ing.g.AddVertex(graph.NewVarVertex(kind, dir, ing.loc(n), dt, name, isParam, paramValue))
	ing.vars = append(ing.vars, varEntry{name: name, vertex: v})
	return nil
}

// visitVarRef resolves a reference by suffix match against every
// declaration seen so far and draws an edge whose direction depends on
// is_l_value; a delayed-assign l-value additionally promotes the
// referenced vertex to REG_DST.
func (ing *ingester) visitVarRef(n *xmlNode) error {
	name, ok := n.Attr("name")
	if !ok {
		return types.NewError(types.ErrKindMalformedInput, nil, "var_ref element missing name attribute")
	}
	if ing.currentLogic() == graph.NullVertex {
		return types.NewError(types.ErrKindMalformedInput, nil, "var_ref %q not under a logic block", name)
	}

	target, err := ing.resolveSuffix(name)
	if err != nil {
		return err
	}

	logicV := ing.currentLogic()
	if ing.isLValue {
		ing.g.AddEdge(logicV, target)
		if ing.isDelayedAssign {
			ing.g.PromoteToRegDst(target)
		}
	} else {
		ing.g.AddEdge(target, logicV)
	}
	return ing.iterateChildren(n)
}

// resolveSuffix finds the declaration whose fully-qualified name ends with
// ref, preferring the longest (most deeply qualified) declaration name when
// more than one declaration qualifies. Two qualifying declarations whose
// names are equally long are reported as ambiguous, since deterministically
// picking either would silently choose the wrong signal in a generate
// block.
func (ing *ingester) resolveSuffix(ref string) (graph.VertexID, error) {
	best := -1
	bestLen := -1
	ambiguous := false
	for i, e := range ing.vars {
		if !strings.HasSuffix(e.name, ref) {
			continue
		}
		l := len(e.name)
		switch {
		case l > bestLen:
			best, bestLen, ambiguous = i, l, false
		case l == bestLen:
			ambiguous = true
		}
	}
	if best < 0 {
		return graph.NullVertex, types.NewError(types.ErrKindUnresolvedRef, nil, "var_ref %q has no declaration suffix-match", ref)
	}
	if ambiguous {
		return graph.NullVertex, types.NewError(types.ErrKindAmbiguousRef, nil, "var_ref %q suffix-matches multiple declarations of equal length", ref)
	}
	return ing.vars[best].vertex, nil
}

func (ing *ingester) visitTypeTable(n *xmlNode) error {
	for i := range n.Nodes {
		child := &n.Nodes[i]
		id, ok := child.Attr("id")
		if !ok {
			continue
		}
		switch resolveNode(child.XMLName.Local) {
		case "BASIC_DTYPE":
			d := dtype.Descriptor{Kind: dtype.KindBasic, Loc: ing.loc(child)}
			d.Name, _ = child.Attr("name")
			if l, ok := child.Attr("left"); ok {
				if r, ok := child.Attr("right"); ok {
					left, errL := strconv.Atoi(l)
					right, errR := strconv.Atoi(r)
					if errL == nil && errR == nil {
						d.HasRange, d.Left, d.Right = true, left, right
					}
				}
			}
			ing.dtypes.Add(id, d)
		case "REF_DTYPE":
			d := dtype.Descriptor{Kind: dtype.KindRef, Loc: ing.loc(child)}
			d.Name, _ = child.Attr("name")
			ing.dtypes.Add(id, d)
		case "PACKED_ARRAY_DTYPE", "UNPACKED_ARRAY_DTYPE":
			d := dtype.Descriptor{Kind: dtype.KindArray, Loc: ing.loc(child), Packed: resolveNode(child.XMLName.Local) == "PACKED_ARRAY_DTYPE"}
			d.ElemName, _ = child.Attr("name")
			if rangeNode, ok := child.Child("range"); ok {
				lo, hi, err := parseRange(rangeNode)
				if err != nil {
					return err
				}
				d.RangeLo, d.RangeHi = lo, hi
			}
			ing.dtypes.Add(id, d)
		case "STRUCT_DTYPE":
			d := dtype.Descriptor{Kind: dtype.KindStruct, Loc: ing.loc(child)}
			for j := range child.Nodes {
				field := &child.Nodes[j]
				fname, _ := field.Attr("name")
				d.Fields = append(d.Fields, dtype.Field{Name: fname, Loc: ing.loc(field)})
			}
			ing.dtypes.Add(id, d)
		}
	}
	return nil
}

func parseRange(n *xmlNode) (lo, hi int, err error) {
	consts := n.Children("const")
	if len(consts) != 2 {
		return 0, 0, types.NewError(types.ErrKindMalformedInput, nil, "range element has %d const children, want 2", len(consts))
	}
	hiStr, _ := consts[0].Attr("name")
	loStr, _ := consts[1].Attr("name")
	hi, errHi := strconv.Atoi(hiStr)
	lo, errLo := strconv.Atoi(loStr)
	if errHi != nil || errLo != nil {
		return 0, 0, types.NewError(types.ErrKindMalformedInput, nil, "range bounds %q/%q are not integers", hiStr, loStr)
	}
	return lo, hi, nil
}
