package selector

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	s, err := Parse(".btn")
	if err != nil {
		t.Fatalf("expected '.btn' to parse, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", s.Len())
	}
	n := s.Node(0)
	if n.Fullname() != ".btn" {
		t.Errorf("expected fullname '.btn', got %q", n.Fullname())
	}
	if s.Rank() != 10 {
		t.Errorf("expected rank 10 for a single class, got %d", s.Rank())
	}
}

func TestParseCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	s, err := Parse("navbar .list .btn#submit:hover")
	if err != nil {
		t.Fatalf("expected selector to parse, got %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", s.Len())
	}
	last := s.Node(2)
	if last.Fullname() != "#submit.btn:hover" {
		t.Errorf("expected canonical fullname '#submit.btn:hover', got %q", last.Fullname())
	}
	if last.Rank() != 100+10+10 {
		t.Errorf("expected node rank 120, got %d", last.Rank())
	}
	// 1 (type) + 10 (class) + 120
	if s.Rank() != 131 {
		t.Errorf("expected selector rank 131, got %d", s.Rank())
	}
	if s.String() != "navbar .list #submit.btn:hover" {
		t.Errorf("unexpected canonical form %q", s.String())
	}
}

func TestParseUniversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	s, err := Parse("*")
	if err != nil {
		t.Fatalf("expected '*' to parse, got %v", err)
	}
	if s.Node(0).Type() != "*" {
		t.Errorf("expected universal type, got %q", s.Node(0).Type())
	}
	// the universal selector carries no specificity
	if s.Rank() != 0 {
		t.Errorf("expected rank 0 for '*', got %d", s.Rank())
	}
	s, err = Parse("* .btn")
	if err != nil {
		t.Fatalf("expected '* .btn' to parse, got %v", err)
	}
	if s.Rank() != 10 {
		t.Errorf("expected rank 10 for '* .btn', got %d", s.Rank())
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	for _, text := range []string{
		"",
		"   ",
		".btn!",
		"div .",
		"#",
		"a*b",
		"*x",
	} {
		if _, err := Parse(text); err == nil {
			t.Errorf("expected %q to fail, didn't", text)
		} else {
			t.Logf("%q: %v", text, err)
		}
	}
	if _, err := Parse(strings.Repeat("x", maxSelectorLen+1)); err == nil {
		t.Error("expected overlong selector to fail, didn't")
	}
}

func TestFullnameCanonical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	a, err := Parse("div.b.a:focus:hover")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("div.a.b:hover:focus")
	if err != nil {
		t.Fatal(err)
	}
	if a.Node(0).Fullname() != "div.a.b:focus:hover" {
		t.Errorf("expected canonical fullname 'div.a.b:focus:hover', got %q", a.Node(0).Fullname())
	}
	if a.Node(0).Fullname() != b.Node(0).Fullname() || a.Hash() != b.Hash() {
		t.Error("expected feature order not to matter for fullname and hash")
	}
}

func TestParseDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	s, err := Parse(".btn.btn:hover:hover")
	if err != nil {
		t.Fatalf("expected selector to parse, got %v", err)
	}
	n := s.Node(0)
	if len(n.Classes()) != 1 || len(n.Statuses()) != 1 {
		t.Errorf("expected duplicate features to collapse, got %v / %v",
			n.Classes(), n.Statuses())
	}
}

func TestParseDepthClipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	text := strings.TrimSpace(strings.Repeat("div ", maxSelectorDepth+5))
	s, err := Parse(text)
	if err != nil {
		t.Fatalf("expected deep selector to parse, got %v", err)
	}
	if s.Len() != maxSelectorDepth {
		t.Errorf("expected chain clipped to %d nodes, got %d", maxSelectorDepth, s.Len())
	}
}

func TestBatchNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	a, err := Parse(".a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(".b")
	if err != nil {
		t.Fatal(err)
	}
	if b.BatchNum() <= a.BatchNum() {
		t.Errorf("expected batch numbers to increase, got %d then %d",
			a.BatchNum(), b.BatchNum())
	}
	d := a.Duplicate()
	if d.BatchNum() <= b.BatchNum() {
		t.Error("expected duplicate to carry a fresh batch number, doesn't")
	}
	if d.String() != a.String() || d.Rank() != a.Rank() || d.Hash() != a.Hash() {
		t.Error("expected duplicate to preserve nodes, rank and hash")
	}
}

func TestHashStability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	a, err := Parse("navbar .btn")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("navbar  .btn")
	if err != nil {
		t.Fatal(err)
	}
	if a.Hash() != b.Hash() {
		t.Error("expected hash to depend on canonical names only")
	}
	c, err := Parse("navbar .list")
	if err != nil {
		t.Fatal(err)
	}
	if a.Hash() == c.Hash() {
		t.Error("expected different selectors to hash differently")
	}
}

func TestNodeMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	node := NewNode("button", "submit", []string{"btn", "primary"}, []string{"hover"})
	for _, text := range []string{".btn", "button", "*", ".btn:hover", "#submit.primary"} {
		s, err := Parse(text)
		if err != nil {
			t.Fatal(err)
		}
		if !s.Node(0).Match(node) {
			t.Errorf("expected %q to match %q, didn't", text, node.Fullname())
		}
	}
	for _, text := range []string{".list", "div", "#other", ".btn:active"} {
		s, err := Parse(text)
		if err != nil {
			t.Fatal(err)
		}
		if s.Node(0).Match(node) {
			t.Errorf("expected %q not to match %q, did", text, node.Fullname())
		}
	}
}
