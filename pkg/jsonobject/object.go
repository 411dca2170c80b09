// Package jsonobject decodes JSON objects while keeping the order in which keys were sent.
package jsonobject

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a decoded JSON object whose values are left raw.
type Object struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// Parse decodes data, which must hold a single JSON object.
func Parse(data []byte) (*Object, error) {
	fields := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, fields); err != nil {
		return nil, fmt.Errorf("decode json object: %w", err)
	}
	return &Object{fields: fields}, nil
}

// Keys returns the object keys in the order they appeared in the input.
func (o *Object) Keys() []string {
	if o == nil || o.fields == nil {
		return nil
	}
	keys := make([]string, 0, o.fields.Len())
	for pair := o.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the raw value stored under key.
func (o *Object) Get(key string) (json.RawMessage, bool) {
	if o == nil || o.fields == nil {
		return nil, false
	}
	return o.fields.Get(key)
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

func (o *Object) Len() int {
	if o == nil || o.fields == nil {
		return 0
	}
	return o.fields.Len()
}

// Except returns the keys of o that are not in allowed, in input order.
func (o *Object) Except(allowed map[string]struct{}) []string {
	var extra []string
	for _, key := range o.Keys() {
		if _, ok := allowed[key]; !ok {
			extra = append(extra, key)
		}
	}
	return extra
}

// Without returns a copy of o minus the given keys, keeping the order of the rest.
func (o *Object) Without(keys ...string) *Object {
	skip := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		skip[key] = struct{}{}
	}

	fields := orderedmap.New[string, json.RawMessage]()
	if o != nil && o.fields != nil {
		for pair := o.fields.Oldest(); pair != nil; pair = pair.Next() {
			if _, ok := skip[pair.Key]; ok {
				continue
			}
			fields.Set(pair.Key, pair.Value)
		}
	}
	return &Object{fields: fields}
}
