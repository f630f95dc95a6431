package cascade

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/style"
)

// Property is one entry of a property list: a property key and its
// value.
type Property struct {
	Key   int
	Value style.Value
}

// PropertyList is an ordered style payload, used while building a rule.
// Entries keep insertion order; duplicate keys are permitted, merge
// operations honor the first set one.
type PropertyList struct {
	entries []*Property
}

// NewPropertyList creates an empty property list.
func NewPropertyList() *PropertyList {
	return &PropertyList{}
}

// Len returns the number of entries.
func (l *PropertyList) Len() int {
	return len(l.entries)
}

// Add appends a fresh entry for key with an invalid placeholder value
// and returns the mutable entry.
func (l *PropertyList) Add(key int) *Property {
	p := &Property{Key: key, Value: style.Invalid()}
	l.entries = append(l.entries, p)
	return p
}

// Find returns the first entry with the given key, or nil.
func (l *PropertyList) Find(key int) *Property {
	for _, p := range l.entries {
		if p.Key == key {
			return p
		}
	}
	return nil
}

// Set stores a value for key, reusing an existing entry if present.
func (l *PropertyList) Set(key int, v style.Value) {
	p := l.Find(key)
	if p == nil {
		p = l.Add(key)
	}
	p.Value = v
}

// Remove drops the first entry with the given key and reports whether
// one was found.
func (l *PropertyList) Remove(key int) bool {
	for i, p := range l.entries {
		if p.Key == key {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Each walks the entries in insertion order until yield returns false.
func (l *PropertyList) Each(yield func(*Property) bool) {
	for _, p := range l.entries {
		if !yield(p) {
			return
		}
	}
}

// MergeDeclaration appends every set slot of decl as a cloned entry.
// Returns the number of entries appended.
func (l *PropertyList) MergeDeclaration(decl *Declaration) int {
	if decl == nil {
		return 0
	}
	count := 0
	for key := 0; key < decl.Len(); key++ {
		v := decl.Get(key)
		if !v.IsSet() {
			continue
		}
		l.entries = append(l.entries, &Property{Key: key, Value: v.Clone()})
		count++
	}
	return count
}

func (l *PropertyList) String() string {
	var b strings.Builder
	b.WriteString("{")
	for _, p := range l.entries {
		b.WriteString(" ")
		b.WriteString(propertyName(p.Key))
		b.WriteString(": ")
		b.WriteString(p.Value.String())
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

// Rule is one style rule bound in the library: an origin space, the
// canonical selector string, the declared properties, and the cascade
// precedence pair (specificity rank, registration batch).
type Rule struct {
	Space    string
	Selector string
	Props    *PropertyList
	rank     int
	batch    uint64
}

// Rank returns the rule's specificity rank, inherited from the
// selector at insert time.
func (r *Rule) Rank() int {
	return r.rank
}

// BatchNum returns the registration number of the selector the rule
// was inserted with.
func (r *Rule) BatchNum() uint64 {
	return r.batch
}

func (r *Rule) String() string {
	space := r.Space
	if space == "" {
		space = "<none>"
	}
	return fmt.Sprintf("[%s][rank: %d] %s %s", space, r.rank, r.Selector, r.Props)
}
