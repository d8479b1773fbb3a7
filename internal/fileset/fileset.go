// Package fileset is the File registry: a mapping from the source-emitted
// file identifier to a (path, language) record that Location values
// reference by id.
package fileset

import "fmt"

// File is a source file participating in the netlist.
type File struct {
	ID       string
	Path     string
	Language string
}

// Registry interns Files by their XML-emitted id.
type Registry struct {
	byID map[string]File
}

// NewRegistry returns an empty file registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]File)}
}

// Add records a file under its id. A later Add with the same id overwrites
// the earlier record; the ingester only calls this once per id in practice.
func (r *Registry) Add(id, path, language string) File {
	f := File{ID: id, Path: path, Language: language}
	r.byID[id] = f
	return f
}

// Get looks up a file by id.
func (r *Registry) Get(id string) (File, bool) {
	f, ok := r.byID[id]
	return f, ok
}

// MustGet looks up a file by id, panicking if absent. Used only where the
// caller has already validated the id came from the same ingest pass that
// populated the registry.
func (r *Registry) MustGet(id string) File {
	f, ok := r.byID[id]
	if !ok {
		panic(fmt.Sprintf("fileset: unknown file id %q", id))
	}
	return f
}

// Len returns the number of registered files.
func (r *Registry) Len() int { return len(r.byID) }
