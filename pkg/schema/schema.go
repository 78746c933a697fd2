// Package schema is a field-descriptor based projector for API resources.
// Each resource declares an ordered set of fields; controllers use
// Resource.Project to shape entities into response maps, optionally
// filtered down to a caller-selected subset via the "fields" query
// parameter.
package schema

import "strings"

// Access marks whether a field can be written through the API.
type Access int

const (
	ReadOnly Access = iota
	ReadWrite
)

// Field describes a single projected attribute of a resource.
type Field struct {
	Name             string
	Access           Access
	RequiredOnCreate bool
	// Get extracts the field value from the entity the resource was
	// declared for. Callers must pass the matching entity type.
	Get func(entity any) any
}

// Resource is an ordered field set for one resource type.
type Resource struct {
	Name   string
	fields []Field
	byName map[string]int
}

// New declares a resource schema. Field order is response order.
func New(name string, fields ...Field) *Resource {
	r := &Resource{
		Name:   name,
		fields: fields,
		byName: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		r.byName[f.Name] = i
	}
	return r
}

// DefaultFields returns every declared field name, in order.
func (r *Resource) DefaultFields() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// RequiredOnCreate returns the names of fields that must be present when
// creating the resource.
func (r *Resource) RequiredOnCreate() []string {
	var names []string
	for _, f := range r.fields {
		if f.RequiredOnCreate {
			names = append(names, f.Name)
		}
	}
	return names
}

// Project shapes an entity into a response map containing the requested
// fields. A nil or empty request selects all fields; unknown names are
// ignored.
func (r *Resource) Project(entity any, requested []string) map[string]any {
	if len(requested) == 0 {
		requested = r.DefaultFields()
	}
	out := make(map[string]any, len(requested))
	for _, name := range requested {
		i, ok := r.byName[name]
		if !ok {
			continue
		}
		out[name] = r.fields[i].Get(entity)
	}
	return out
}

// ParseFields splits a comma-separated "fields" parameter value into field
// names. Empty input selects the default field set.
func ParseFields(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
