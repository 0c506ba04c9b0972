package propertymapping

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Value maps one public field to one or more internal fields.
// When Revert is set the requested sort direction is inverted.
type Value struct {
	DestinationNames []string
	Revert           bool
}

// NewValue creates a Value for the given destination fields
func NewValue(revert bool, destinationNames ...string) Value {
	return Value{
		DestinationNames: destinationNames,
		Revert:           revert,
	}
}

// Mapping is a case-insensitive table from public field name to Value
type Mapping struct {
	entries map[string]Value
	names   []string
}

func newMapping(entries map[string]Value) (Mapping, error) {
	m := Mapping{entries: make(map[string]Value, len(entries))}
	for name, value := range entries {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return Mapping{}, fmt.Errorf("empty public field name")
		}
		if len(value.DestinationNames) == 0 {
			return Mapping{}, fmt.Errorf("public field %q has no destination fields", name)
		}
		if _, exists := m.entries[key]; exists {
			return Mapping{}, fmt.Errorf("public field %q is registered more than once", name)
		}
		m.entries[key] = value
		m.names = append(m.names, name)
	}
	sort.Strings(m.names)
	return m, nil
}

// Lookup returns the Value registered for a public field name
func (m Mapping) Lookup(name string) (Value, bool) {
	value, ok := m.entries[strings.ToLower(strings.TrimSpace(name))]
	return value, ok
}

// Has reports whether a public field name is mapped
func (m Mapping) Has(name string) bool {
	_, ok := m.Lookup(name)
	return ok
}

// Names returns the public field names as registered, sorted
func (m Mapping) Names() []string {
	return append([]string(nil), m.names...)
}

// Len returns the number of mapped public fields
func (m Mapping) Len() int {
	return len(m.entries)
}

type typePair struct {
	source      reflect.Type
	destination reflect.Type
}

func (p typePair) String() string {
	return fmt.Sprintf("<%s,%s>", p.source, p.destination)
}

// Registration binds a mapping table to a (source, destination) type pair
type Registration struct {
	pair    typePair
	entries map[string]Value
}

// For creates a Registration for TSource (public) to TDestination (entity)
func For[TSource, TDestination any](entries map[string]Value) Registration {
	return Registration{
		pair: typePair{
			source:      reflect.TypeOf((*TSource)(nil)).Elem(),
			destination: reflect.TypeOf((*TDestination)(nil)).Elem(),
		},
		entries: entries,
	}
}

// Registry holds every mapping table. It is read-only once constructed.
type Registry struct {
	mappings map[typePair]Mapping
}

// NewRegistry validates all registrations up front. Duplicate type pairs and
// malformed tables are reported here instead of on the first request.
func NewRegistry(registrations ...Registration) (*Registry, error) {
	r := &Registry{mappings: make(map[typePair]Mapping, len(registrations))}
	for _, reg := range registrations {
		if _, exists := r.mappings[reg.pair]; exists {
			return nil, &ConfigurationError{
				Pair:   reg.pair.String(),
				Reason: "more than one property mapping registered",
			}
		}
		if len(reg.entries) == 0 {
			return nil, &ConfigurationError{Pair: reg.pair.String(), Reason: "property mapping is empty"}
		}
		mapping, err := newMapping(reg.entries)
		if err != nil {
			return nil, &ConfigurationError{Pair: reg.pair.String(), Reason: err.Error()}
		}
		r.mappings[reg.pair] = mapping
	}
	return r, nil
}

// GetMapping returns the table registered for exactly <TSource,TDestination>
func GetMapping[TSource, TDestination any](r *Registry) (Mapping, error) {
	pair := typePair{
		source:      reflect.TypeOf((*TSource)(nil)).Elem(),
		destination: reflect.TypeOf((*TDestination)(nil)).Elem(),
	}
	mapping, ok := r.mappings[pair]
	if !ok {
		return Mapping{}, &MappingNotFoundError{Pair: pair.String()}
	}
	return mapping, nil
}

// MappingExistsFor reports whether every field reference in fields is mapped for
// <TSource,TDestination>. Anything after the first space of a reference (such as
// a direction keyword) is ignored. Blank input is trivially valid.
func MappingExistsFor[TSource, TDestination any](r *Registry, fields string) bool {
	if strings.TrimSpace(fields) == "" {
		return true
	}

	mapping, err := GetMapping[TSource, TDestination](r)
	if err != nil {
		return false
	}

	for _, field := range strings.Split(fields, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(field), " ")
		if !mapping.Has(name) {
			return false
		}
	}
	return true
}
