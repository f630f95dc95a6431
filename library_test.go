package cascade_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/selector"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustParse(t *testing.T, text string) *selector.Selector {
	t.Helper()
	s, err := selector.Parse(text)
	if err != nil {
		t.Fatalf("expected selector %q to parse, got %v", text, err)
	}
	return s
}

// decl builds a declaration holding a single color property.
func colorDecl(t *testing.T, l *cascade.Library, hex string) *cascade.Declaration {
	t.Helper()
	v, err := l.ParseValue("color", hex)
	if err != nil {
		t.Fatalf("expected color %q to parse, got %v", hex, err)
	}
	d := l.NewDeclaration()
	d.Set(cascade.KeyColor, v)
	return d
}

func TestAddAndQuerySingleRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "div.card"), colorDecl(t, l, "#ff0000"), "test")
	rules := l.QuerySelector(mustParse(t, "div.card"))
	if len(rules) != 1 {
		t.Fatalf("expected 1 matching rule, got %d", len(rules))
	}
	if rules[0].Rank() != 11 {
		t.Errorf("expected rank 11 for 'div.card', got %d", rules[0].Rank())
	}
	if rules[0].Space != "test" {
		t.Errorf("expected origin space 'test', got %q", rules[0].Space)
	}
	if got := l.QuerySelector(mustParse(t, "div")); len(got) != 0 {
		t.Errorf("expected 'div' not to match 'div.card', got %d rules", len(got))
	}
	if got := l.QuerySelector(mustParse(t, ".card")); len(got) != 0 {
		t.Errorf("expected '.card' not to match 'div.card', got %d rules", len(got))
	}
}

func TestQueryOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "div"), colorDecl(t, l, "#ff0000"), "")
	l.AddStyleSheet(mustParse(t, ".x"), colorDecl(t, l, "#00ff00"), "")
	rules := l.QuerySelector(mustParse(t, "div.x"))
	if len(rules) != 2 {
		t.Fatalf("expected both rules to match 'div.x', got %d", len(rules))
	}
	// class rank 10 beats type rank 1
	if rules[0].Selector != ".x" || rules[1].Selector != "div" {
		t.Errorf("expected order ['.x' 'div'], got [%q %q]",
			rules[0].Selector, rules[1].Selector)
	}
}

func TestQueryDescendant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "a b"), colorDecl(t, l, "#111111"), "")
	l.AddStyleSheet(mustParse(t, "b"), colorDecl(t, l, "#222222"), "")
	rules := l.QuerySelector(mustParse(t, "a b"))
	if len(rules) != 2 {
		t.Fatalf("expected both rules to match 'a b', got %d", len(rules))
	}
	if rules[0].Selector != "a b" {
		t.Errorf("expected 'a b' (rank 2) first, got %q", rules[0].Selector)
	}
	rules = l.QuerySelector(mustParse(t, "b"))
	if len(rules) != 1 || rules[0].Selector != "b" {
		t.Fatalf("expected only the 'b' rule for a bare 'b', got %v", rules)
	}
}

func TestQueryNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "#main .btn:hover"), colorDecl(t, l, "#0000ff"), "")
	rules := l.QuerySelector(mustParse(t, "#main .btn:hover"))
	if len(rules) != 1 {
		t.Fatalf("expected the nested rule to match, got %d rules", len(rules))
	}
	if rules[0].Rank() != 120 {
		t.Errorf("expected rank 120, got %d", rules[0].Rank())
	}
	// without the ancestor the rule must not apply
	if got := l.QuerySelector(mustParse(t, ".btn:hover")); len(got) != 0 {
		t.Errorf("expected no match without '#main' ancestor, got %d rules", len(got))
	}
}

func TestQuerySkipsAncestors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "a b"), colorDecl(t, l, "#111111"), "")
	// descendant combinator: intermediate elements may sit in between
	rules := l.QuerySelector(mustParse(t, "a ul b"))
	if len(rules) != 1 {
		t.Fatalf("expected 'a b' to match the path 'a ul b', got %d rules", len(rules))
	}
	// each rule reported once, even if ancestors match at several positions
	rules = l.QuerySelector(mustParse(t, "a a b"))
	if len(rules) != 1 {
		t.Errorf("expected one rule for path 'a a b', got %d", len(rules))
	}
}

func TestQueryExtraFeatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, ".btn"), colorDecl(t, l, "#ff0000"), "")
	rules := l.QuerySelector(mustParse(t, "div.btn.primary:hover"))
	if len(rules) != 1 {
		t.Errorf("expected '.btn' to match a node with extra features, got %d rules", len(rules))
	}
}

func TestComputedStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "div"), colorDecl(t, l, "#ff0000"), "")
	more := l.NewDeclaration()
	w, err := l.ParseValue("width", "50%")
	if err != nil {
		t.Fatal(err)
	}
	more.Set(cascade.KeyWidth, w)
	l.AddStyleSheet(mustParse(t, "div.x"), more, "")
	//
	decl := l.ComputedStyle(mustParse(t, "div.x"))
	if !decl.IsSet(cascade.KeyColor) || !decl.IsSet(cascade.KeyWidth) {
		t.Fatalf("expected color and width to be set, got %s", decl)
	}
	if c := decl.Get(cascade.KeyColor).Color(); c.R != 255 || c.G != 0 {
		t.Errorf("expected red, got %v", c)
	}
}

func TestComputedStyleFirstWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "div"), colorDecl(t, l, "#ff0000"), "")
	l.AddStyleSheet(mustParse(t, ".x"), colorDecl(t, l, "#00ff00"), "")
	decl := l.ComputedStyle(mustParse(t, "div.x"))
	// the higher-ranked '.x' rule merges first and wins the slot
	if c := decl.Get(cascade.KeyColor).Color(); c.G != 255 {
		t.Errorf("expected the class rule's green to win, got %v", c)
	}
}

func TestCacheCoherence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	for i := 0; i < 1000; i++ {
		sel := mustParse(t, fmt.Sprintf(".c%d", i))
		l.AddStyleSheet(sel, colorDecl(t, l, "#ff0000"), "bulk")
	}
	query := mustParse(t, "div.c1")
	first := l.ComputedStyle(query)
	second := l.ComputedStyle(query)
	if first != second {
		t.Error("expected the second lookup to hit the cache, didn't")
	}
	l.AddStyleSheet(mustParse(t, ".fresh"), colorDecl(t, l, "#00ff00"), "")
	third := l.ComputedStyle(query)
	if third == first {
		t.Error("expected the cache to be emptied by the insert, wasn't")
	}
}

func TestDisableCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.DisableCache = true
	l.AddStyleSheet(mustParse(t, "div"), colorDecl(t, l, "#ff0000"), "")
	query := mustParse(t, "div")
	if l.ComputedStyle(query) == l.ComputedStyle(query) {
		t.Error("expected fresh declarations with the cache disabled")
	}
}

func TestFillComputedStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "div"), colorDecl(t, l, "#ff0000"), "")
	out := l.NewDeclaration()
	out.Set(cascade.KeyWidth, style.Keyword(style.KeywordAuto))
	l.FillComputedStyle(mustParse(t, "div"), out)
	if out.IsSet(cascade.KeyWidth) {
		t.Error("expected the output declaration to be cleared first")
	}
	if !out.IsSet(cascade.KeyColor) {
		t.Error("expected the computed color in the output declaration")
	}
	// the caller-owned copy is independent of the cache
	out.Set(cascade.KeyColor, style.Keyword(style.KeywordNone))
	if c := l.ComputedStyle(mustParse(t, "div")).Get(cascade.KeyColor); c.Type() != style.TypeColor {
		t.Error("expected the cached declaration to stay untouched")
	}
}

func TestNilSelectorNoOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	if err := l.AddStyleSheet(nil, nil, ""); err != nil {
		t.Errorf("expected nil selector insert to be a no-op, got %v", err)
	}
	if rules := l.QuerySelector(nil); rules != nil {
		t.Errorf("expected nil selector query to return nothing, got %v", rules)
	}
}

func TestParseValueBuiltins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	v, err := l.ParseValue("width", "32px")
	if err != nil || v.Type() != style.TypeUnit || v.Number() != 32 {
		t.Errorf("expected width '32px' to parse to a unit value, got %v (%v)", v, err)
	}
	v, err = l.ParseValue("width", "50%")
	if err != nil || !v.IsPercentage() {
		t.Errorf("expected width '50%%' to parse to a percentage, got %v (%v)", v, err)
	}
	v, err = l.ParseValue("width", "auto")
	if err != nil || v.KeywordID() != style.KeywordAuto {
		t.Errorf("expected width 'auto' to parse to the auto keyword, got %v (%v)", v, err)
	}
	if _, err = l.ParseValue("width", "red"); err == nil {
		t.Error("expected width 'red' to fail, didn't")
	}
	if _, err = l.ParseValue("no-such-property", "1"); err == nil {
		t.Error("expected unknown property to fail, didn't")
	}
}

func TestInitialValueRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	for key := 0; key < cascade.KeyTotal; key++ {
		def := l.PropertyByKey(key)
		if def == nil {
			continue
		}
		v, err := def.Syntax.ParseValue(def.InitialText)
		if err != nil {
			t.Errorf("property %q: initial %q does not parse: %v", def.Name, def.InitialText, err)
			continue
		}
		if !v.Equal(def.Initial) {
			t.Errorf("property %q: initial %q re-parses to %v, stored %v",
				def.Name, def.InitialText, v, def.Initial)
		}
	}
}

func TestRegisterRuntimeProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	key, err := l.RegisterProperty("columns", "auto | <integer>", "auto")
	if err != nil {
		t.Fatalf("expected runtime registration to succeed, got %v", err)
	}
	if key < cascade.KeyTotal-1 {
		t.Errorf("expected a key beyond the builtin enumeration, got %d", key)
	}
	if _, err = l.RegisterProperty("columns", "<integer>", "1"); err == nil {
		t.Error("expected duplicate property name to fail, didn't")
	}
	if _, err = l.RegisterProperty("broken", "<nosuchtype>", ""); err == nil {
		t.Error("expected unknown data type to fail registration, didn't")
	}
}

func TestDefaultLibrary(t *testing.T) {
	if cascade.Default() == nil || cascade.Default() != cascade.Default() {
		t.Error("expected a stable process-wide default library")
	}
}

func TestDebugString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade")
	defer teardown()
	//
	l := cascade.New()
	l.AddStyleSheet(mustParse(t, "#main .btn"), colorDecl(t, l, "#ff0000"), "app.css")
	dump := l.DebugString()
	if !strings.Contains(dump, ".btn") || !strings.Contains(dump, "#main") {
		t.Errorf("expected trie dump to mention both compounds, got:\n%s", dump)
	}
	t.Logf("trie:\n%s", dump)
}
