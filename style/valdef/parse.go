package valdef

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/style"
)

// ParseValue matches a concrete value string against the compiled
// grammar and returns the first fit as a tagged value. Matches
// spanning several tokens produce an array value. If no alternative
// fits, the invalid value is returned together with an error the
// caller may surface.
func (s *Syntax) ParseValue(text string) (style.Value, error) {
	toks := splitTokens(text)
	if len(toks) == 0 {
		return style.None(), nil
	}
	vals, n, ok := match(s.root, toks)
	if !ok || n != len(toks) {
		return style.Invalid(), fmt.Errorf("value %q does not match %q", text, s.source)
	}
	switch len(vals) {
	case 0:
		return style.None(), nil
	case 1:
		return vals[0], nil
	}
	return style.Array(vals...), nil
}

// splitTokens splits a value string at whitespace, keeping
// parenthesized groups ("rgba(0, 0, 0, 0.5)") and quoted strings
// together.
func splitTokens(text string) []string {
	var toks []string
	var b strings.Builder
	depth := 0
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			b.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
		case c == '(':
			depth++
			b.WriteByte(c)
		case c == ')':
			if depth > 0 {
				depth--
			}
			b.WriteByte(c)
		case (c == ' ' || c == '\t' || c == '\r' || c == '\n') && depth == 0:
			if b.Len() > 0 {
				toks = append(toks, b.String())
				b.Reset()
			}
		default:
			b.WriteByte(c)
		}
	}
	if b.Len() > 0 {
		toks = append(toks, b.String())
	}
	return toks
}

// match matches vd against a prefix of toks, honoring multipliers.
// It reports the produced values, the number of tokens consumed, and
// success.
func match(vd *Valdef, toks []string) ([]style.Value, int, bool) {
	if vd.Min == 1 && vd.Max == 1 {
		return matchOnce(vd, toks)
	}
	var vals []style.Value
	n := 0
	reps := 0
	for reps < vd.Max {
		vs, consumed, ok := matchOnce(vd, toks[n:])
		if !ok || consumed == 0 {
			break
		}
		vals = append(vals, vs...)
		n += consumed
		reps++
	}
	if reps < vd.Min {
		return nil, 0, false
	}
	return vals, n, true
}

func matchOnce(vd *Valdef, toks []string) ([]style.Value, int, bool) {
	switch vd.Sign {
	case SignKeyword:
		if len(toks) > 0 && toks[0] == vd.Name {
			return []style.Value{style.Keyword(vd.Keyword)}, 1, true
		}
		return nil, 0, false
	case SignDataType:
		if len(toks) == 0 {
			return nil, 0, false
		}
		v, err := vd.Type.Parse(toks[0])
		if err != nil {
			return nil, 0, false
		}
		return []style.Value{v}, 1, true
	case SignSingleBar:
		// alternatives are tried in declaration order, first fit wins
		for _, child := range vd.Children {
			if vs, n, ok := match(child, toks); ok {
				return vs, n, true
			}
		}
		return nil, 0, false
	case SignJuxtaposition:
		var vals []style.Value
		n := 0
		for _, child := range vd.Children {
			vs, consumed, ok := match(child, toks[n:])
			if !ok {
				return nil, 0, false
			}
			vals = append(vals, vs...)
			n += consumed
		}
		return vals, n, true
	case SignDoubleAmpersand, SignDoubleBar:
		return matchUnordered(vd, toks)
	}
	return nil, 0, false
}

// matchUnordered implements `&&` (all components, any order) and `||`
// (at least one component, any order). Components are consumed
// greedily in declaration order.
func matchUnordered(vd *Valdef, toks []string) ([]style.Value, int, bool) {
	used := make([]bool, len(vd.Children))
	var vals []style.Value
	n := 0
	matched := 0
	progress := true
	for progress {
		progress = false
		for i, child := range vd.Children {
			if used[i] {
				continue
			}
			vs, consumed, ok := match(child, toks[n:])
			if ok && consumed > 0 {
				used[i] = true
				vals = append(vals, vs...)
				n += consumed
				matched++
				progress = true
				break
			}
		}
	}
	if vd.Sign == SignDoubleBar {
		if matched == 0 {
			return nil, 0, false
		}
		return vals, n, true
	}
	// && requires every component; unmatched ones must be optional
	for i, child := range vd.Children {
		if used[i] || child.Min == 0 {
			continue
		}
		if _, zn, ok := match(child, nil); ok && zn == 0 {
			continue
		}
		return nil, 0, false
	}
	return vals, n, true
}
