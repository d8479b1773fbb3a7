package types

// VertexKind is the AST/graph kind of a vertex.
type VertexKind int

const (
	KindInvalid VertexKind = iota
	KindLogic
	KindAssign
	KindAssignAlias
	KindAssignDly
	KindAssignW
	KindAlways
	KindInitial
	KindRegSrc
	KindRegDst
	KindSenGate
	KindSenItem
	KindVar
	KindWire
	KindPort
	KindCFunc
)

var kindNames = map[VertexKind]string{
	KindLogic:       "LOGIC",
	KindAssign:      "ASSIGN",
	KindAssignAlias: "ASSIGN_ALIAS",
	KindAssignDly:   "ASSIGN_DLY",
	KindAssignW:     "ASSIGN_W",
	KindAlways:      "ALWAYS",
	KindInitial:     "INITIAL",
	KindRegSrc:      "REG_SRC",
	KindRegDst:      "REG_DST",
	KindSenGate:     "SEN_GATE",
	KindSenItem:     "SEN_ITEM",
	KindVar:         "VAR",
	KindWire:        "WIRE",
	KindPort:        "PORT",
	KindCFunc:       "C_FUNC",
}

var namesToKind = func() map[string]VertexKind {
	m := make(map[string]VertexKind, len(kindNames))
	for k, v := range kindNames {
		m[v] = k
	}
	return m
}()

// String returns the canonical name of a VertexKind, or "INVALID".
func (k VertexKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "INVALID"
}

// ParseVertexKind maps a source-emitted kind name to a VertexKind.
// Unknown names resolve to KindInvalid, mirroring the original's
// "unrecognised node name degrades to descend into children" dispatch.
func ParseVertexKind(name string) VertexKind {
	if k, ok := namesToKind[name]; ok {
		return k
	}
	return KindInvalid
}

// Direction is the port/variable direction.
type Direction int

const (
	DirNone Direction = iota
	DirInput
	DirOutput
	DirInout
)

var directionNames = map[Direction]string{
	DirNone:   "NONE",
	DirInput:  "INPUT",
	DirOutput: "OUTPUT",
	DirInout:  "INOUT",
}

var namesToDirection = map[string]Direction{
	"input":  DirInput,
	"output": DirOutput,
	"inout":  DirInout,
}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return "NONE"
}

// ParseDirection maps an XML "dir" attribute value to a Direction. Anything
// unrecognised (including an absent attribute) resolves to DirNone.
func ParseDirection(name string) Direction {
	if d, ok := namesToDirection[name]; ok {
		return d
	}
	return DirNone
}
