package cascade

import (
	"fmt"
	"sync"

	"github.com/npillmayer/cascade/selector"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/valdef"
)

// Library is a CSS rule library: property, keyword and value-type
// registries, the style rule trie, and the computed-style cache. A
// Library is not safe for concurrent use; callers requiring
// concurrency must serialize externally.
type Library struct {
	keywords   *style.Keywords
	properties *style.Registry
	types      *valdef.Types
	groups     []map[string]*linkGroup
	cache      map[uint32]*Declaration

	// DisableCache bypasses the computed-style cache. Intended for
	// tests exercising the query path.
	DisableCache bool
}

// New creates a library seeded with the builtin keyword set, the
// builtin value types and grammar aliases, and the common CSS property
// set.
func New() *Library {
	l := &Library{
		cache: make(map[uint32]*Declaration),
	}
	l.keywords = style.NewKeywords()
	l.types = valdef.NewTypes(l.keywords)
	l.properties = style.NewProperties()
	l.registerAliases()
	l.registerBuiltinProperties()
	return l
}

var defaultLibrary *Library
var defaultOnce sync.Once

// Default returns a lazily created process-wide library, for callers
// not managing their own instance.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLibrary = New()
	})
	return defaultLibrary
}

// RegisterProperty registers a property at the next free key: the
// grammar is compiled and the initial value string parsed against it.
// Returns the assigned key.
func (l *Library) RegisterProperty(name string, grammar string, initial string) (int, error) {
	return l.RegisterPropertyAt(l.properties.MaxKey(), name, grammar, initial)
}

// RegisterPropertyAt registers a property at a caller-specified key.
// Compilation failure of the grammar aborts the registration; a
// non-parseable initial value does not, the definition then carries
// the invalid value as initial.
func (l *Library) RegisterPropertyAt(key int, name string, grammar string, initial string) (int, error) {
	syntax, err := valdef.Compile(l.types, grammar)
	if err != nil {
		return -1, fmt.Errorf("property %q: %w", name, err)
	}
	initialValue, err := syntax.ParseValue(initial)
	if err != nil {
		tracer().Infof("property %q: initial value %q does not parse: %v", name, initial, err)
	}
	def := &style.Definition{
		Name:        name,
		Syntax:      syntax,
		Initial:     initialValue,
		InitialText: initial,
	}
	return l.properties.RegisterAt(key, def)
}

// Property returns the definition registered under a property name, or
// nil.
func (l *Library) Property(name string) *style.Definition {
	return l.properties.ByName(name)
}

// PropertyByKey returns the definition registered under a property
// key, or nil.
func (l *Library) PropertyByKey(key int) *style.Definition {
	return l.properties.ByKey(key)
}

// PropertyCount returns the number of registered properties.
func (l *Library) PropertyCount() int {
	return l.properties.Count()
}

// RegisterKeyword registers a keyword under a caller-chosen
// identifier.
func (l *Library) RegisterKeyword(id int, name string) error {
	return l.keywords.Register(id, name)
}

// KeywordKey looks up a keyword identifier by name.
func (l *Library) KeywordKey(name string) (int, bool) {
	return l.keywords.ByName(name)
}

// KeywordName looks up a keyword name by identifier.
func (l *Library) KeywordName(id int) (string, bool) {
	return l.keywords.Name(id)
}

// RegisterValueType plugs a data-type parser into the grammar
// language.
func (l *Library) RegisterValueType(name string, parse valdef.ParseFunc) error {
	return l.types.Register(name, parse)
}

// RegisterValueTypeAlias declares `<name>` as shorthand for a grammar
// fragment.
func (l *Library) RegisterValueTypeAlias(name string, expansion string) error {
	return l.types.RegisterAlias(name, expansion)
}

// ParseValue parses a value string against the grammar of a registered
// property.
func (l *Library) ParseValue(propertyName string, text string) (style.Value, error) {
	def := l.properties.ByName(propertyName)
	if def == nil {
		return style.Invalid(), fmt.Errorf("unknown property %q", propertyName)
	}
	return def.Syntax.ParseValue(text)
}

// NewDeclaration creates a declaration sized for the registered
// property keys.
func (l *Library) NewDeclaration() *Declaration {
	return NewDeclaration(l.properties.MaxKey())
}

// AddStyleSheet inserts a rule binding decl to sel, tagged with an
// origin space for diagnostics. The computed-style cache is emptied
// unconditionally. A nil or empty selector is a no-op.
func (l *Library) AddStyleSheet(sel *selector.Selector, decl *Declaration, space string) error {
	l.cache = make(map[uint32]*Declaration)
	if sel == nil || sel.Len() == 0 {
		return nil
	}
	rule := l.insertRule(sel, space)
	rule.Props.MergeDeclaration(decl)
	tracer().Debugf("added rule %q from %q, rank %d", rule.Selector, space, rule.Rank())
	return nil
}

// QuerySelector returns every rule matching the presented selector
// path, ordered descending by (rank, batch number).
func (l *Library) QuerySelector(sel *selector.Selector) []*Rule {
	return l.queryRules(sel)
}

// ComputedStyle resolves the computed declaration for a selector path.
// The result is owned by the cache; callers must not mutate it, and
// must not hold it across the next AddStyleSheet. Use
// FillComputedStyle for a caller-owned copy.
func (l *Library) ComputedStyle(sel *selector.Selector) *Declaration {
	if !l.DisableCache {
		if cached, ok := l.cache[sel.Hash()]; ok {
			tracer().Debugf("computed style cache hit for %q", sel.String())
			return cached
		}
	}
	decl := l.NewDeclaration()
	for _, rule := range l.queryRules(sel) {
		decl.MergeProperties(rule.Props)
	}
	if !l.DisableCache {
		l.cache[sel.Hash()] = decl
	}
	return decl
}

// FillComputedStyle resolves the computed declaration for a selector
// path into a caller-owned declaration, which is cleared first.
func (l *Library) FillComputedStyle(sel *selector.Selector, out *Declaration) {
	computed := l.ComputedStyle(sel)
	out.Clear()
	out.Replace(computed)
}
