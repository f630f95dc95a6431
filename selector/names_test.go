package selector

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNamesSingleFeature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	n := NewNode("", "", []string{"btn"}, nil)
	names := n.Names()
	if len(names) != 1 || names[0] != ".btn" {
		t.Errorf("expected single name '.btn', got %v", names)
	}
}

func TestNamesCombinations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	n := NewNode("button", "submit", []string{"btn"}, []string{"hover"})
	names := n.Names()
	// 4 features yield 2^4-1 combinations
	if len(names) != 15 {
		t.Fatalf("expected 15 names, got %d: %v", len(names), names)
	}
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}
	for _, want := range []string{
		"button", "#submit", ".btn", ":hover",
		"button.btn", "#submit:hover", ".btn:hover",
		"button#submit.btn:hover",
	} {
		if !seen[want] {
			t.Errorf("expected name %q to be enumerated, isn't", want)
		}
	}
	if !seen[n.Fullname()] {
		t.Error("expected the node's own fullname among the names")
	}
}

func TestNamesPreserveFeatureOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	n := NewNode("div", "", []string{"a", "b"}, nil)
	names := n.Names()
	sort.Strings(names)
	// combinations keep canonical order, never permute
	for _, bad := range []string{".b.a", ".adiv", ".a.bdiv"} {
		i := sort.SearchStrings(names, bad)
		if i < len(names) && names[i] == bad {
			t.Errorf("unexpected permuted name %q", bad)
		}
	}
}

func TestEachNameEarlyStop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	n := NewNode("button", "submit", []string{"btn"}, nil)
	count := 0
	n.EachName(func(string) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Errorf("expected enumeration to stop after 3 names, did %d", count)
	}
}
