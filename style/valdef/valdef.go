package valdef

import (
	"fmt"

	"github.com/npillmayer/cascade/style"
)

// Sign tags a Valdef node with its combinator.
type Sign uint8

const (
	SignKeyword         Sign = iota // literal keyword leaf
	SignDataType                    // <type> reference leaf
	SignJuxtaposition               // components, in order
	SignDoubleAmpersand             // all components, any order
	SignDoubleBar                   // one or more components, any order
	SignSingleBar                   // exactly one component
)

func (s Sign) String() string {
	switch s {
	case SignKeyword:
		return "keyword"
	case SignDataType:
		return "data-type"
	case SignJuxtaposition:
		return "juxtaposition"
	case SignDoubleAmpersand:
		return "&&"
	case SignDoubleBar:
		return "||"
	case SignSingleBar:
		return "|"
	}
	return fmt.Sprintf("sign(%d)", s)
}

// ParseFunc parses a single value token into a style value.
type ParseFunc func(token string) (style.Value, error)

// TypeRecord is a named data-type parser, plugged in as a `<name>`
// grammar atom.
type TypeRecord struct {
	Name  string
	Parse ParseFunc
}

// Valdef is one node of a compiled value-definition tree. Leaves are
// keyword or data-type references; inner nodes carry a combinator sign
// and children. Min/Max express multipliers; both are 1 for plain
// nodes.
type Valdef struct {
	Sign     Sign
	Keyword  int    // keyword identifier for SignKeyword
	Name     string // keyword or data-type name
	Type     *TypeRecord
	Min, Max int
	Children []*Valdef
}

// Types is the registry of data-type parsers and type aliases used
// during grammar compilation. A fresh registry is seeded with the
// builtin types (number, integer, string, keyword, length, percentage,
// color, image).
type Types struct {
	types    map[string]*TypeRecord
	aliases  map[string]string
	keywords *style.Keywords
}

// NewTypes creates a type registry bound to a keyword registry (the
// `keyword` data type and literal grammar keywords resolve against
// it).
func NewTypes(keywords *style.Keywords) *Types {
	t := &Types{
		types:    make(map[string]*TypeRecord),
		aliases:  make(map[string]string),
		keywords: keywords,
	}
	t.registerBuiltins()
	return t
}

// Register plugs in a data-type parser for `<name>` grammar atoms.
// Re-registration of a name fails.
func (t *Types) Register(name string, parse ParseFunc) error {
	if _, ok := t.types[name]; ok {
		return fmt.Errorf("value type %q already registered", name)
	}
	t.types[name] = &TypeRecord{Name: name, Parse: parse}
	return nil
}

// RegisterAlias declares `<name>` to be shorthand for a grammar
// fragment, substituted at compile time.
func (t *Types) RegisterAlias(name string, expansion string) error {
	if _, ok := t.aliases[name]; ok {
		return fmt.Errorf("value type alias %q already registered", name)
	}
	t.aliases[name] = expansion
	return nil
}

// Lookup returns the data-type record for name, or nil.
func (t *Types) Lookup(name string) *TypeRecord {
	return t.types[name]
}

// ResolveAlias returns the expansion for an alias name.
func (t *Types) ResolveAlias(name string) (string, bool) {
	expansion, ok := t.aliases[name]
	return expansion, ok
}

// Syntax is a compiled value-definition grammar. It implements
// style.ValueSyntax.
type Syntax struct {
	root   *Valdef
	source string
}

// Source returns the grammar string the syntax was compiled from.
func (s *Syntax) Source() string {
	return s.source
}

// Root returns the root node of the compiled tree.
func (s *Syntax) Root() *Valdef {
	return s.root
}

var _ style.ValueSyntax = &Syntax{}
