package selector

import "strings"

// Nodes with more features than this enumerate only the leading ones.
const maxNameFeatures = 16

// features lists the node's features in canonical order: type, id,
// classes, statuses.
func (n *Node) features() []string {
	var feats []string
	if n.typ != "" {
		feats = append(feats, n.typ)
	}
	if n.id != "" {
		feats = append(feats, "#"+n.id)
	}
	for _, c := range n.classes {
		feats = append(feats, "."+c)
	}
	for _, s := range n.statuses {
		feats = append(feats, ":"+s)
	}
	return feats
}

// EachName enumerates the full names of every non-empty feature
// combination of the node, preserving canonical feature order. A node
// ".btn:hover" yields ".btn", ":hover" and ".btn:hover". The node's
// own full name is among the enumerated names. Enumeration stops early
// when yield returns false.
func (n *Node) EachName(yield func(name string) bool) {
	feats := n.features()
	if len(feats) > maxNameFeatures {
		tracer().Infof("node %q has %d features, enumerating %d",
			n.fullname, len(feats), maxNameFeatures)
		feats = feats[:maxNameFeatures]
	}
	total := 1 << len(feats)
	for mask := 1; mask < total; mask++ {
		var b strings.Builder
		for i, f := range feats {
			if mask&(1<<i) != 0 {
				b.WriteString(f)
			}
		}
		if !yield(b.String()) {
			return
		}
	}
}

// Names collects the enumerated names into a slice.
func (n *Node) Names() []string {
	var names []string
	n.EachName(func(name string) bool {
		names = append(names, name)
		return true
	})
	return names
}
