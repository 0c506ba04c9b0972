package shaping

import (
	"fmt"
	"strings"
)

// Field exposes one public field of T
type Field[T any] struct {
	Name string
	Get  func(T) any
}

// Accessors is the ordered table of public fields of T, built once at setup
type Accessors[T any] struct {
	fields []Field[T]
	index  map[string]int
}

// UnknownFieldError is returned when a requested field does not exist on the type
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("field %q does not exist", e.Field)
}

// NewAccessors builds an accessor table. Field names must be unique ignoring case.
func NewAccessors[T any](fields ...Field[T]) (*Accessors[T], error) {
	a := &Accessors[T]{
		fields: make([]Field[T], 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		key := strings.ToLower(f.Name)
		if key == "" || f.Get == nil {
			return nil, fmt.Errorf("shaping: field %q is incomplete", f.Name)
		}
		if _, exists := a.index[key]; exists {
			return nil, fmt.Errorf("shaping: duplicate field %q", f.Name)
		}
		a.index[key] = len(a.fields)
		a.fields = append(a.fields, f)
	}
	return a, nil
}

// MustAccessors is like NewAccessors but panics on an invalid table
func MustAccessors[T any](fields ...Field[T]) *Accessors[T] {
	a, err := NewAccessors(fields...)
	if err != nil {
		panic(err)
	}
	return a
}

// Names returns the field names in declaration order
func (a *Accessors[T]) Names() []string {
	names := make([]string, len(a.fields))
	for i, f := range a.fields {
		names[i] = f.Name
	}
	return names
}

func (a *Accessors[T]) lookup(name string) (Field[T], bool) {
	i, ok := a.index[strings.ToLower(name)]
	if !ok {
		return Field[T]{}, false
	}
	return a.fields[i], true
}

// HasFields reports whether every comma-separated name in fields exists on T.
// Anything after the first space of a name is ignored so ordering strings with
// direction keywords can be checked too. It stops at the first unknown name.
func (a *Accessors[T]) HasFields(fields string) bool {
	if strings.TrimSpace(fields) == "" {
		return true
	}
	for _, field := range strings.Split(fields, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(field), " ")
		if _, ok := a.lookup(name); !ok {
			return false
		}
	}
	return true
}

// Shape projects obj onto the requested fields. With no fields requested every
// field is emitted in declaration order, otherwise in the requested order. Keys
// use the declared field names.
func (a *Accessors[T]) Shape(obj T, fields string) (*Object, error) {
	out := NewObject()

	if strings.TrimSpace(fields) == "" {
		for _, f := range a.fields {
			out.Set(f.Name, f.Get(obj))
		}
		return out, nil
	}

	for _, name := range strings.Split(fields, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := a.lookup(name)
		if !ok {
			return nil, &UnknownFieldError{Field: name}
		}
		out.Set(f.Name, f.Get(obj))
	}
	return out, nil
}

// ShapeAll shapes every item. Any failure fails the whole batch.
func (a *Accessors[T]) ShapeAll(items []T, fields string) ([]*Object, error) {
	shaped := make([]*Object, 0, len(items))
	for _, item := range items {
		obj, err := a.Shape(item, fields)
		if err != nil {
			return nil, err
		}
		shaped = append(shaped, obj)
	}
	return shaped, nil
}
