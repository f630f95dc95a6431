package cascade

import (
	"strings"

	"github.com/npillmayer/cascade/style"
)

// Declaration is a dense style sheet: a sequence of value slots indexed
// by property key. Slots hold the empty value until set. Declarations
// grow on demand, so keys above the initial size are legal.
type Declaration struct {
	slots []style.Value
}

// NewDeclaration creates a declaration with room for n property keys.
func NewDeclaration(n int) *Declaration {
	return &Declaration{slots: make([]style.Value, n)}
}

// Len returns the number of slots.
func (d *Declaration) Len() int {
	return len(d.slots)
}

// Get returns the value at key, or the empty value for out-of-range
// keys.
func (d *Declaration) Get(key int) style.Value {
	if key < 0 || key >= len(d.slots) {
		return style.None()
	}
	return d.slots[key]
}

// IsSet reports whether the slot at key holds a set value.
func (d *Declaration) IsSet(key int) bool {
	return d.Get(key).IsSet()
}

// Set stores a value at key, growing the declaration as needed.
func (d *Declaration) Set(key int, v style.Value) {
	if key < 0 {
		return
	}
	d.grow(key + 1)
	d.slots[key] = v
}

// Remove resets the slot at key to the empty value.
func (d *Declaration) Remove(key int) {
	if key >= 0 && key < len(d.slots) {
		d.slots[key] = style.None()
	}
}

func (d *Declaration) grow(n int) {
	for len(d.slots) < n {
		d.slots = append(d.slots, style.None())
	}
}

// Merge copies every set slot of src into an unset slot of d:
// first-wins, slots already set in d stay untouched. Values are cloned.
// Returns the number of slots copied.
func (d *Declaration) Merge(src *Declaration) int {
	if src == nil {
		return 0
	}
	d.grow(len(src.slots))
	count := 0
	for key, v := range src.slots {
		if !v.IsSet() || d.slots[key].IsSet() {
			continue
		}
		d.slots[key] = v.Clone()
		count++
	}
	return count
}

// Replace copies every set slot of src into d, overwriting: last-wins.
// Returns the number of slots copied.
func (d *Declaration) Replace(src *Declaration) int {
	if src == nil {
		return 0
	}
	d.grow(len(src.slots))
	count := 0
	for key, v := range src.slots {
		if !v.IsSet() {
			continue
		}
		d.slots[key] = v.Clone()
		count++
	}
	return count
}

// MergeProperties folds a property list into d in insertion order,
// first-wins per slot. Returns the number of slots copied.
func (d *Declaration) MergeProperties(list *PropertyList) int {
	if list == nil {
		return 0
	}
	count := 0
	for _, p := range list.entries {
		if !p.Value.IsSet() || d.IsSet(p.Key) {
			continue
		}
		d.Set(p.Key, p.Value.Clone())
		count++
	}
	return count
}

// Clear resets every slot to the empty value, keeping the slot count.
func (d *Declaration) Clear() {
	for i := range d.slots {
		d.slots[i] = style.None()
	}
}

// Clone returns a deep copy of the declaration, owned by the caller.
func (d *Declaration) Clone() *Declaration {
	c := &Declaration{slots: make([]style.Value, len(d.slots))}
	for i, v := range d.slots {
		c.slots[i] = v.Clone()
	}
	return c
}

func (d *Declaration) String() string {
	var b strings.Builder
	b.WriteString("{")
	for key, v := range d.slots {
		if !v.IsSet() {
			continue
		}
		b.WriteString(" ")
		b.WriteString(propertyName(key))
		b.WriteString(": ")
		b.WriteString(v.String())
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}
