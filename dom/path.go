package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/selector"
	"golang.org/x/net/html"
)

// SelectorPath derives the selector path of an element: one compound
// per element in the ancestor chain, root first, each carrying the tag
// name plus the element's id and class attributes.
func SelectorPath(n *html.Node) (*selector.Selector, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, fmt.Errorf("selector path needs an element node")
	}
	var compounds []string
	for e := n; e != nil; e = e.Parent {
		if e.Type != html.ElementNode {
			continue
		}
		compounds = append(compounds, compound(e))
	}
	// collected leaf-first, the selector wants the root first
	for i, j := 0, len(compounds)-1; i < j; i, j = i+1, j-1 {
		compounds[i], compounds[j] = compounds[j], compounds[i]
	}
	text := strings.Join(compounds, " ")
	tracer().Debugf("element %q presents path %q", n.Data, text)
	return selector.Parse(text)
}

func compound(e *html.Node) string {
	var b strings.Builder
	b.WriteString(e.Data)
	for _, attr := range e.Attr {
		switch attr.Key {
		case "id":
			if attr.Val != "" {
				b.WriteString("#")
				b.WriteString(attr.Val)
			}
		case "class":
			for _, class := range strings.Fields(attr.Val) {
				b.WriteString(".")
				b.WriteString(class)
			}
		}
	}
	return b.String()
}

// ComputedStyle resolves the computed declaration for an element. The
// returned declaration is owned by the library's cache.
func ComputedStyle(l *cascade.Library, n *html.Node) (*cascade.Declaration, error) {
	path, err := SelectorPath(n)
	if err != nil {
		return nil, err
	}
	return l.ComputedStyle(path), nil
}
