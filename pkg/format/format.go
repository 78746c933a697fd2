// Package format is the import-parser registry for the originals bulk
// import endpoint. Each parser turns an uploaded source file into a list of
// original-string entries; the registry dispatches on a format
// discriminator and supports "auto" resolution by file extension.
package format

import (
	"sort"
)

// Entry is one original string read from an import file.
type Entry struct {
	Context    string
	Singular   string
	Plural     *string
	Comment    string
	References []string
}

// Parser reads original strings from a file on disk.
type Parser interface {
	Format() string
	Extensions() []string
	Read(path string) ([]Entry, error)
}

// KnownFormats is the fixed allow-list of format discriminators accepted by
// the import endpoint. "auto" resolves the parser by file extension.
var KnownFormats = []string{
	"auto", "android", "po", "mo", "resx", "strings", "properties", "json", "jed1x", "ngx",
}

// Known reports whether name is an accepted format discriminator.
func Known(name string) bool {
	for _, f := range KnownFormats {
		if f == name {
			return true
		}
	}
	return false
}

// Registry maps format names to parsers. It is populated once at startup
// and read-only afterwards.
type Registry struct {
	byFormat map[string]Parser
	byExt    map[string]Parser
}

func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{
		byFormat: make(map[string]Parser),
		byExt:    make(map[string]Parser),
	}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

func (r *Registry) Register(p Parser) {
	r.byFormat[p.Format()] = p
	for _, ext := range p.Extensions() {
		r.byExt[ext] = p
	}
}

// Get returns the parser registered for the given format name.
func (r *Registry) Get(name string) (Parser, bool) {
	p, ok := r.byFormat[name]
	return p, ok
}

// ByExtension returns the parser registered for a file extension (without
// the leading dot), used for "auto" format resolution.
func (r *Registry) ByExtension(ext string) (Parser, bool) {
	p, ok := r.byExt[ext]
	return p, ok
}

// Formats lists the registered parsers, sorted by format name.
func (r *Registry) Formats() []Parser {
	out := make([]Parser, 0, len(r.byFormat))
	for _, p := range r.byFormat {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Format() < out[j].Format() })
	return out
}
