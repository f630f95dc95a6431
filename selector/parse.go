package selector

import (
	"fmt"
	"strings"
)

// Hard limits on selector text. Overlong text is rejected, overlong
// node chains are truncated with a warning.
const (
	maxSelectorLen   = 1024
	maxSelectorDepth = 32
)

func isNameChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// NewNode builds a compound selector node programmatically, e.g. from
// document node attributes. Empty strings are ignored.
func NewNode(typ string, id string, classes []string, statuses []string) *Node {
	n := &Node{typ: typ, id: id}
	for _, c := range classes {
		if c != "" && !n.hasClass(c) {
			n.classes = append(n.classes, c)
		}
	}
	for _, s := range statuses {
		if s != "" && !n.hasStatus(s) {
			n.statuses = append(n.statuses, s)
		}
	}
	n.update()
	return n
}

type segmentKind uint8

const (
	segType segmentKind = iota
	segID
	segClass
	segStatus
)

// Parse parses descendant selector text into a selector. It fails on
// overlong text, on characters outside the selector alphabet, and on
// dangling feature markers.
func Parse(text string) (*Selector, error) {
	if len(text) > maxSelectorLen {
		return nil, fmt.Errorf("selector text exceeds %d characters", maxSelectorLen)
	}
	p := parser{text: text}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			if err := p.flushSegment(i); err != nil {
				return nil, err
			}
			p.flushNode()
		case c == '#':
			if err := p.startSegment(segID, i); err != nil {
				return nil, err
			}
		case c == '.':
			if err := p.startSegment(segClass, i); err != nil {
				return nil, err
			}
		case c == ':':
			if err := p.startSegment(segStatus, i); err != nil {
				return nil, err
			}
		case c == '*':
			if p.kind != segType || p.name.Len() > 0 {
				return nil, fmt.Errorf("unexpected '*' at offset %d in %q", i, text)
			}
			p.name.WriteByte(c)
			p.star = true
		case isNameChar(c):
			if p.star {
				return nil, fmt.Errorf("unexpected character after '*' at offset %d in %q", i, text)
			}
			p.name.WriteByte(c)
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d in %q", c, i, text)
		}
	}
	if err := p.flushSegment(len(text)); err != nil {
		return nil, err
	}
	p.flushNode()
	if len(p.nodes) == 0 {
		return nil, fmt.Errorf("empty selector %q", text)
	}
	s := &Selector{nodes: p.nodes}
	s.finish()
	tracer().Debugf("parsed selector %q, rank %d", s.String(), s.rank)
	return s, nil
}

type parser struct {
	text    string
	nodes   []*Node
	node    *Node
	kind    segmentKind
	name    strings.Builder
	star    bool
	open    bool // a marker has been seen, a name must follow
	clipped bool
}

// startSegment closes the current segment and opens one of the given
// kind.
func (p *parser) startSegment(kind segmentKind, pos int) error {
	if err := p.flushSegment(pos); err != nil {
		return err
	}
	p.kind = kind
	p.open = true
	return nil
}

// flushSegment stores the collected name into the current node.
func (p *parser) flushSegment(pos int) error {
	name := p.name.String()
	p.name.Reset()
	p.star = false
	if name == "" {
		if p.open {
			return fmt.Errorf("dangling feature marker at offset %d in %q", pos, p.text)
		}
		return nil
	}
	p.open = false
	if p.node == nil {
		p.node = &Node{}
	}
	switch p.kind {
	case segType:
		if p.node.typ != "" {
			tracer().Debugf("ignoring repeated type %q in selector %q", name, p.text)
			break
		}
		p.node.typ = name
	case segID:
		if p.node.id != "" {
			tracer().Debugf("ignoring repeated id %q in selector %q", name, p.text)
			break
		}
		p.node.id = name
	case segClass:
		if !p.node.hasClass(name) {
			p.node.classes = append(p.node.classes, name)
		}
	case segStatus:
		if !p.node.hasStatus(name) {
			p.node.statuses = append(p.node.statuses, name)
		}
	}
	p.kind = segType
	return nil
}

// flushNode appends the current compound node to the chain.
func (p *parser) flushNode() {
	if p.node == nil {
		return
	}
	node := p.node
	p.node = nil
	if len(p.nodes) >= maxSelectorDepth {
		if !p.clipped {
			tracer().Infof("selector %q exceeds depth %d, truncating", p.text, maxSelectorDepth)
			p.clipped = true
		}
		return
	}
	node.update()
	p.nodes = append(p.nodes, node)
}
