// Package dtype is the DType registry: an intern table mapping a
// source-emitted type identifier to a resolved type descriptor. Descriptor
// is a tagged variant (Basic/Ref/Array/Struct) expressed as a closed kind
// enum over a single flat struct — a kind field plus optional fields,
// rather than an interface hierarchy per case.
package dtype

import "github.com/netlistpaths/netlistgraph/pkg/types"

// Kind discriminates the variants of a Descriptor.
type Kind int

const (
	KindBasic Kind = iota
	KindRef
	KindArray
	KindStruct
)

// Field describes one member of a Struct descriptor.
type Field struct {
	Name string
	Loc  types.Location
}

// Descriptor is a DType: a tagged union over Kind. Only the fields relevant
// to the active Kind are meaningful; this mirrors the original's
// boost::variant-free approach (struct DType{ Kind; ... }) closely enough
// that the ingest code filling it in reads the same way.
type Descriptor struct {
	Kind Kind
	Name string         // Basic/Ref: the type name; Array: unused (see ElemName)
	Loc  types.Location // declaration location

	// Basic only.
	HasRange bool
	Left     int
	Right    int

	// Array only.
	ElemName string
	RangeLo  int
	RangeHi  int
	Packed   bool

	// Struct only.
	Fields []Field
}

// Width returns the bit width of a Basic descriptor's range, or 1 if no
// range was recorded. Not meaningful for non-Basic kinds.
func (d *Descriptor) Width() int {
	if d == nil || d.Kind != KindBasic || !d.HasRange {
		return 1
	}
	if d.Left >= d.Right {
		return d.Left - d.Right + 1
	}
	return d.Right - d.Left + 1
}

// Registry interns Descriptors by their XML-emitted id, shared by reference
// across every vertex that cites them: stored once per emitted id.
type Registry struct {
	byID map[string]*Descriptor
}

// NewRegistry returns an empty DType registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Descriptor)}
}

// Add interns a descriptor under id, returning the stored pointer so callers
// share the same instance future lookups will return.
func (r *Registry) Add(id string, d Descriptor) *Descriptor {
	stored := &d
	r.byID[id] = stored
	return stored
}

// Get looks up a descriptor by id.
func (r *Registry) Get(id string) (*Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int { return len(r.byID) }
