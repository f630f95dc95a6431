package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// ValueSyntax is a compiled value-definition grammar, able to parse
// concrete value strings into values. The implementation lives in
// package valdef; the registry treats it as opaque.
type ValueSyntax interface {
	ParseValue(text string) (Value, error)
}

// Definition describes a registered CSS property: its key, its name,
// the compiled grammar for its values, and its initial value.
// Definitions are registered once and live for the lifetime of the
// registry.
type Definition struct {
	Key         int
	Name        string
	Syntax      ValueSyntax
	Initial     Value
	InitialText string
}

// Registry maps property keys to definitions. Keys index a dense
// array which grows as needed; gaps between non-contiguous keys hold
// nil. Name lookup goes through a map. Both lookups are O(1).
type Registry struct {
	props  []*Definition
	byName map[string]*Definition
	count  int
}

// NewProperties creates an empty property registry.
func NewProperties() *Registry {
	return &Registry{byName: make(map[string]*Definition)}
}

// Register adds a definition at the next free key and returns the
// assigned key.
func (r *Registry) Register(def *Definition) (int, error) {
	return r.RegisterAt(len(r.props), def)
}

// RegisterAt adds a definition at a caller-specified key. It fails on
// a negative key, an occupied key, or a duplicate name, and makes no
// partial state change on failure.
func (r *Registry) RegisterAt(key int, def *Definition) (int, error) {
	if key < 0 {
		return -1, fmt.Errorf("property key %d out of range", key)
	}
	if key < len(r.props) && r.props[key] != nil {
		return -1, fmt.Errorf("property key %d already registered as %q", key, r.props[key].Name)
	}
	if _, ok := r.byName[def.Name]; ok {
		return -1, fmt.Errorf("property %q already registered", def.Name)
	}
	for key >= len(r.props) {
		r.props = append(r.props, nil)
	}
	def.Key = key
	r.props[key] = def
	r.byName[def.Name] = def
	r.count++
	return key, nil
}

// ByName returns the definition for a property name, or nil.
func (r *Registry) ByName(name string) *Definition {
	return r.byName[name]
}

// ByKey returns the definition for a property key, or nil.
func (r *Registry) ByKey(key int) *Definition {
	if key < 0 || key >= len(r.props) {
		return nil
	}
	return r.props[key]
}

// Count returns the number of registered properties.
func (r *Registry) Count() int {
	return r.count
}

// MaxKey returns the smallest key greater than every registered key.
// Declarations use it to size their dense slot array.
func (r *Registry) MaxKey() int {
	return len(r.props)
}
