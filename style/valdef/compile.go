package valdef

import (
	"fmt"
	"strconv"
	"strings"
)

// Maximum nesting of alias substitutions before compilation assumes a
// cycle.
const maxAliasDepth = 16

type tokenKind uint8

const (
	tokIdent tokenKind = iota
	tokType            // <name>
	tokSingleBar
	tokDoubleBar
	tokAmpersands
	tokOpenBracket
	tokCloseBracket
	tokMultiplier // {min,max}
	tokQuestion
	tokEOF
)

type token struct {
	kind     tokenKind
	text     string
	min, max int
	pos      int
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func scan(grammar string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(grammar) {
		c := grammar[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '|':
			if i+1 < len(grammar) && grammar[i+1] == '|' {
				toks = append(toks, token{kind: tokDoubleBar, pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokSingleBar, pos: i})
				i++
			}
		case c == '&':
			if i+1 >= len(grammar) || grammar[i+1] != '&' {
				return nil, fmt.Errorf("single '&' at offset %d in %q", i, grammar)
			}
			toks = append(toks, token{kind: tokAmpersands, pos: i})
			i += 2
		case c == '[':
			toks = append(toks, token{kind: tokOpenBracket, pos: i})
			i++
		case c == ']':
			toks = append(toks, token{kind: tokCloseBracket, pos: i})
			i++
		case c == '?':
			toks = append(toks, token{kind: tokQuestion, pos: i})
			i++
		case c == '<':
			end := strings.IndexByte(grammar[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unclosed '<' at offset %d in %q", i, grammar)
			}
			name := grammar[i+1 : i+end]
			if name == "" {
				return nil, fmt.Errorf("empty data-type reference at offset %d in %q", i, grammar)
			}
			toks = append(toks, token{kind: tokType, text: name, pos: i})
			i += end + 1
		case c == '{':
			end := strings.IndexByte(grammar[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed '{' at offset %d in %q", i, grammar)
			}
			min, max, err := scanMultiplier(grammar[i+1 : i+end])
			if err != nil {
				return nil, fmt.Errorf("%v at offset %d in %q", err, i, grammar)
			}
			toks = append(toks, token{kind: tokMultiplier, min: min, max: max, pos: i})
			i += end + 1
		case isIdentChar(c):
			start := i
			for i < len(grammar) && isIdentChar(grammar[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: grammar[start:i], pos: start})
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d in %q", c, i, grammar)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(grammar)})
	return toks, nil
}

func scanMultiplier(spec string) (int, int, error) {
	parts := strings.SplitN(spec, ",", 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed multiplier {%s}", spec)
	}
	max := min
	if len(parts) == 2 {
		max, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("malformed multiplier {%s}", spec)
		}
	}
	if min < 0 || max < min {
		return 0, 0, fmt.Errorf("invalid multiplier range {%s}", spec)
	}
	return min, max, nil
}

// compiler carries the token stream and the type registry through the
// recursive descent.
type compiler struct {
	types   *Types
	toks    []token
	pos     int
	grammar string
	depth   int // alias substitution depth
}

// Compile turns a value-definition grammar string into a parseable
// syntax. It fails with a diagnostic on unknown data types, unbalanced
// brackets, or malformed multipliers.
func Compile(types *Types, grammar string) (*Syntax, error) {
	root, err := compile(types, grammar, 0)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("compiled value grammar %q", grammar)
	return &Syntax{root: root, source: grammar}, nil
}

func compile(types *Types, grammar string, depth int) (*Valdef, error) {
	if depth > maxAliasDepth {
		return nil, fmt.Errorf("alias substitution too deep in %q", grammar)
	}
	toks, err := scan(grammar)
	if err != nil {
		return nil, err
	}
	c := &compiler{types: types, toks: toks, grammar: grammar, depth: depth}
	root, err := c.parseAlternatives()
	if err != nil {
		return nil, err
	}
	if tok := c.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("unexpected token at offset %d in %q", tok.pos, grammar)
	}
	return root, nil
}

func (c *compiler) peek() token {
	return c.toks[c.pos]
}

func (c *compiler) next() token {
	tok := c.toks[c.pos]
	if tok.kind != tokEOF {
		c.pos++
	}
	return tok
}

// parseAlternatives handles `|`, the loosest combinator.
func (c *compiler) parseAlternatives() (*Valdef, error) {
	return c.parseCombinator(tokSingleBar, SignSingleBar, c.parseAnyOf)
}

// parseAnyOf handles `||`.
func (c *compiler) parseAnyOf() (*Valdef, error) {
	return c.parseCombinator(tokDoubleBar, SignDoubleBar, c.parseAllOf)
}

// parseAllOf handles `&&`.
func (c *compiler) parseAllOf() (*Valdef, error) {
	return c.parseCombinator(tokAmpersands, SignDoubleAmpersand, c.parseSequence)
}

func (c *compiler) parseCombinator(sep tokenKind, sign Sign, sub func() (*Valdef, error)) (*Valdef, error) {
	first, err := sub()
	if err != nil {
		return nil, err
	}
	if c.peek().kind != sep {
		return first, nil
	}
	node := &Valdef{Sign: sign, Min: 1, Max: 1, Children: []*Valdef{first}}
	for c.peek().kind == sep {
		c.next()
		child, err := sub()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// parseSequence handles juxtaposition, the tightest combinator.
func (c *compiler) parseSequence() (*Valdef, error) {
	first, err := c.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []*Valdef{first}
	for {
		k := c.peek().kind
		if k != tokIdent && k != tokType && k != tokOpenBracket {
			break
		}
		term, err := c.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return &Valdef{Sign: SignJuxtaposition, Min: 1, Max: 1, Children: terms}, nil
}

func (c *compiler) parseTerm() (*Valdef, error) {
	var term *Valdef
	switch tok := c.next(); tok.kind {
	case tokIdent:
		// Literal keywords are interned on the fly; grammars may use
		// keywords no caller registered explicitly.
		id := c.types.keywords.Intern(tok.text)
		term = &Valdef{Sign: SignKeyword, Keyword: id, Name: tok.text, Min: 1, Max: 1}
	case tokType:
		sub, err := c.resolveType(tok)
		if err != nil {
			return nil, err
		}
		term = sub
	case tokOpenBracket:
		sub, err := c.parseAlternatives()
		if err != nil {
			return nil, err
		}
		if closing := c.next(); closing.kind != tokCloseBracket {
			return nil, fmt.Errorf("unbalanced '[' at offset %d in %q", tok.pos, c.grammar)
		}
		term = sub
	default:
		return nil, fmt.Errorf("unexpected token at offset %d in %q", tok.pos, c.grammar)
	}
	return c.applyMultiplier(term)
}

// resolveType handles a `<name>` atom: aliases expand into
// sub-grammars, everything else must be a registered data type.
func (c *compiler) resolveType(tok token) (*Valdef, error) {
	if expansion, ok := c.types.ResolveAlias(tok.text); ok {
		sub, err := compile(c.types, expansion, c.depth+1)
		if err != nil {
			return nil, fmt.Errorf("in alias <%s>: %v", tok.text, err)
		}
		return sub, nil
	}
	record := c.types.Lookup(tok.text)
	if record == nil {
		return nil, fmt.Errorf("unknown data type <%s> at offset %d in %q", tok.text, tok.pos, c.grammar)
	}
	return &Valdef{Sign: SignDataType, Name: tok.text, Type: record, Min: 1, Max: 1}, nil
}

func (c *compiler) applyMultiplier(term *Valdef) (*Valdef, error) {
	switch tok := c.peek(); tok.kind {
	case tokMultiplier:
		c.next()
		if term.Min != 1 || term.Max != 1 {
			term = &Valdef{Sign: SignJuxtaposition, Min: 1, Max: 1, Children: []*Valdef{term}}
		}
		term.Min, term.Max = tok.min, tok.max
	case tokQuestion:
		c.next()
		if term.Min != 1 || term.Max != 1 {
			term = &Valdef{Sign: SignJuxtaposition, Min: 1, Max: 1, Children: []*Valdef{term}}
		}
		term.Min = 0
	}
	return term, nil
}
