package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/selector"
	"github.com/npillmayer/cascade/style"
)

// StyleSheet is an interface to abstract away a stylesheet
// implementation. Clients of the cascade engine provide a concrete
// implementation (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// LoadStyleSheet feeds every rule of a stylesheet into a library,
// tagged with an origin space. Rule preludes may hold several
// comma-separated selectors; each gets the rule's declarations.
// Unparseable selectors and unknown properties are skipped with a
// warning; declaration values the property grammar rejects are kept
// verbatim as unparsed values. Returns an error stating how many rules
// were skipped, if any.
func LoadStyleSheet(l *cascade.Library, sheet StyleSheet, space string) error {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	skipped := 0
	for _, rule := range sheet.Rules() {
		decl := ruleDeclaration(l, rule)
		for _, text := range strings.Split(rule.Selector(), ",") {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			sel, err := selector.Parse(text)
			if err != nil {
				tracer().Infof("skipping rule: %v", err)
				skipped++
				continue
			}
			l.AddStyleSheet(sel, decl, space)
		}
	}
	if skipped > 0 {
		return fmt.Errorf("%d rule(s) of %q skipped", skipped, space)
	}
	return nil
}

// ruleDeclaration resolves a rule's property strings through the
// library's registry into a declaration.
func ruleDeclaration(l *cascade.Library, rule Rule) *cascade.Declaration {
	decl := l.NewDeclaration()
	for _, name := range rule.Properties() {
		def := l.Property(name)
		if def == nil {
			tracer().Infof("unknown property %q, ignored", name)
			continue
		}
		text := rule.Value(name)
		v, err := def.Syntax.ParseValue(text)
		if err != nil {
			tracer().Infof("property %q: %v, keeping raw text", name, err)
			v = style.Unparsed(text)
		}
		decl.Set(def.Key, v)
	}
	return decl
}
