package shaping

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an ordered, mutable field -> value mapping. Keys keep the position of
// their first insertion and marshal to a JSON object in that order.
type Object struct {
	values *orderedmap.OrderedMap[string, any]
}

func NewObject() *Object {
	return &Object{values: orderedmap.New[string, any]()}
}

// Set stores value under key. Setting an existing key replaces its value in place.
func (o *Object) Set(key string, value any) {
	o.values.Set(key, value)
}

func (o *Object) Get(key string) (any, bool) {
	return o.values.Get(key)
}

func (o *Object) Delete(key string) {
	o.values.Delete(key)
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.values.Len())
	for pair := o.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (o *Object) Len() int {
	return o.values.Len()
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return o.values.MarshalJSON()
}
