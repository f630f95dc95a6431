package selector

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Specificity weights of the node features.
const (
	typeRank   = 1
	classRank  = 10
	statusRank = 10
	idRank     = 100
)

// batchCounter numbers selectors in creation order. Ties in
// specificity rank are broken by batch number, so that later rules win.
var batchCounter uint64

func nextBatch() uint64 {
	return atomic.AddUint64(&batchCounter, 1)
}

// Node is one compound of a descendant selector: a type name, an id,
// classes and status pseudo-classes, in any combination.
type Node struct {
	typ      string
	id       string
	classes  []string
	statuses []string
	fullname string
	rank     int
}

// Type returns the node's element type name ("*" for the universal
// selector, empty if unspecified).
func (n *Node) Type() string {
	return n.typ
}

// ID returns the node's id, or the empty string.
func (n *Node) ID() string {
	return n.id
}

// Classes returns the node's class names, sorted.
func (n *Node) Classes() []string {
	return n.classes
}

// Statuses returns the node's status pseudo-class names, sorted.
func (n *Node) Statuses() []string {
	return n.statuses
}

// Fullname returns the canonical full name of the node, i.e. the
// concatenation of all its features: type, "#"-prefixed id,
// "."-prefixed classes, ":"-prefixed statuses.
func (n *Node) Fullname() string {
	return n.fullname
}

// Rank returns the node's specificity rank. The universal selector
// contributes nothing.
func (n *Node) Rank() int {
	return n.rank
}

// Copy returns an independent copy of the node.
func (n *Node) Copy() *Node {
	c := *n
	c.classes = append([]string(nil), n.classes...)
	c.statuses = append([]string(nil), n.statuses...)
	return &c
}

// Match reports whether the selector node applies to a concrete node:
// the selector's id and type must agree with the node's (a "*" or
// unspecified type agrees with everything), and the selector's classes
// and statuses must be a subset of the node's.
func (n *Node) Match(node *Node) bool {
	if n.id != "" && n.id != node.id {
		return false
	}
	if n.typ != "" && n.typ != "*" && n.typ != node.typ {
		return false
	}
	return subset(n.classes, node.classes) && subset(n.statuses, node.statuses)
}

func subset(sub, super []string) bool {
outer:
	for _, s := range sub {
		for _, t := range super {
			if s == t {
				continue outer
			}
		}
		return false
	}
	return true
}

func (n *Node) hasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (n *Node) hasStatus(name string) bool {
	for _, s := range n.statuses {
		if s == name {
			return true
		}
	}
	return false
}

// update normalizes the feature lists and recomputes full name and
// rank. Classes and statuses are kept sorted so that equivalent
// selectors produce identical full names.
func (n *Node) update() {
	sort.Strings(n.classes)
	sort.Strings(n.statuses)
	var b strings.Builder
	rank := 0
	if n.typ != "" {
		b.WriteString(n.typ)
		if n.typ != "*" {
			rank += typeRank
		}
	}
	if n.id != "" {
		b.WriteByte('#')
		b.WriteString(n.id)
		rank += idRank
	}
	for _, c := range n.classes {
		b.WriteByte('.')
		b.WriteString(c)
		rank += classRank
	}
	for _, s := range n.statuses {
		b.WriteByte(':')
		b.WriteString(s)
		rank += statusRank
	}
	n.fullname = b.String()
	n.rank = rank
}

// Selector is a parsed descendant selector: a chain of compound nodes,
// leftmost ancestor first.
type Selector struct {
	nodes []*Node
	rank  int
	batch uint64
	hash  uint32
}

// Len returns the number of compound nodes.
func (s *Selector) Len() int {
	return len(s.nodes)
}

// Node returns the i-th compound node, counting from the leftmost
// ancestor.
func (s *Selector) Node(i int) *Node {
	return s.nodes[i]
}

// Rank returns the selector's specificity rank, the sum of its nodes'
// ranks.
func (s *Selector) Rank() int {
	return s.rank
}

// BatchNum returns the selector's creation number.
func (s *Selector) BatchNum() uint64 {
	return s.batch
}

// Hash returns a hash over the nodes' full names.
func (s *Selector) Hash() uint32 {
	return s.hash
}

func (s *Selector) String() string {
	names := make([]string, len(s.nodes))
	for i, n := range s.nodes {
		names[i] = n.fullname
	}
	return strings.Join(names, " ")
}

// Duplicate returns a deep copy of the selector carrying a fresh batch
// number.
func (s *Selector) Duplicate() *Selector {
	d := &Selector{
		nodes: make([]*Node, len(s.nodes)),
		rank:  s.rank,
		batch: nextBatch(),
		hash:  s.hash,
	}
	for i, n := range s.nodes {
		d.nodes[i] = n.Copy()
	}
	return d
}

// finish computes rank and hash after the node chain is complete.
func (s *Selector) finish() {
	s.rank = 0
	h := uint32(5381)
	for _, n := range s.nodes {
		s.rank += n.rank
		for i := 0; i < len(n.fullname); i++ {
			h = h*33 + uint32(n.fullname[i])
		}
	}
	s.hash = h
	s.batch = nextBatch()
}
