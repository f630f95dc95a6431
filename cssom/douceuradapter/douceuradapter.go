/*
Package douceuradapter is a concrete implementation of interface
cssom.StyleSheet, backed by the douceur CSS parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS source text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns the style rules of a stylesheet. At-rules do not fit
// the rule interface and are not included; see FontFaces.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// FontFace is a font declared by an @font-face at-rule.
type FontFace struct {
	Family string
	Style  string
	Weight string
	Src    string
}

// FontFaces collects the stylesheet's @font-face declarations. Other
// at-rules are ignored.
func (sheet *CSSStyles) FontFaces() []FontFace {
	var faces []FontFace
	for _, r := range sheet.css.Rules {
		if r.Kind != css.AtRule || strings.TrimPrefix(r.Name, "@") != "font-face" {
			continue
		}
		var face FontFace
		for _, d := range r.Declarations {
			switch d.Property {
			case "font-family":
				face.Family = strings.Trim(d.Value, `"'`)
			case "font-style":
				face.Style = d.Value
			case "font-weight":
				face.Weight = d.Value
			case "src":
				face.Src = d.Value
			}
		}
		faces = append(faces, face)
	}
	return faces
}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML
// parse tree and searches for embedded <style>s. It returns the content
// of style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(head)
	return append(sheets, extractStyles(body)...)
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			c, err := parser.Parse(ch.FirstChild.Data)
			if err != nil {
				break
			}
			sheets = append(sheets, Wrap(c))
		}
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
