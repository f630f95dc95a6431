package style

import "fmt"

// Well-known keyword identifiers. Runtime-registered keywords take
// identifiers above the enumeration.
const (
	KeywordNone = iota
	KeywordAuto
	KeywordNormal
	KeywordInherit
	KeywordInitial
	KeywordContain
	KeywordCover
	KeywordLeft
	KeywordCenter
	KeywordRight
	KeywordTop
	KeywordTopLeft
	KeywordTopCenter
	KeywordTopRight
	KeywordMiddle
	KeywordCenterLeft
	KeywordCenterCenter
	KeywordCenterRight
	KeywordBottom
	KeywordBottomLeft
	KeywordBottomCenter
	KeywordBottomRight
	KeywordSolid
	KeywordDotted
	KeywordDouble
	KeywordDashed
	KeywordContentBox
	KeywordPaddingBox
	KeywordBorderBox
	KeywordGraphBox
	KeywordStatic
	KeywordRelative
	KeywordAbsolute
	KeywordBlock
	KeywordInlineBlock
	KeywordFlex
	KeywordFlexStart
	KeywordFlexEnd
	KeywordStretch
	KeywordSpaceBetween
	KeywordSpaceAround
	KeywordSpaceEvenly
	KeywordWrap
	KeywordNowrap
	KeywordRow
	KeywordColumn
	KeywordVisible
	KeywordHidden
	KeywordItalic
	KeywordOblique
	KeywordStart
	KeywordEnd
	keywordTotal
)

var builtinKeywords = []struct {
	id   int
	name string
}{
	{KeywordNone, "none"},
	{KeywordAuto, "auto"},
	{KeywordNormal, "normal"},
	{KeywordInherit, "inherit"},
	{KeywordInitial, "initial"},
	{KeywordContain, "contain"},
	{KeywordCover, "cover"},
	{KeywordLeft, "left"},
	{KeywordCenter, "center"},
	{KeywordRight, "right"},
	{KeywordTop, "top"},
	{KeywordTopLeft, "top left"},
	{KeywordTopCenter, "top center"},
	{KeywordTopRight, "top right"},
	{KeywordMiddle, "middle"},
	{KeywordCenterLeft, "center left"},
	{KeywordCenterCenter, "center center"},
	{KeywordCenterRight, "center right"},
	{KeywordBottom, "bottom"},
	{KeywordBottomLeft, "bottom left"},
	{KeywordBottomCenter, "bottom center"},
	{KeywordBottomRight, "bottom right"},
	{KeywordSolid, "solid"},
	{KeywordDotted, "dotted"},
	{KeywordDouble, "double"},
	{KeywordDashed, "dashed"},
	{KeywordContentBox, "content-box"},
	{KeywordPaddingBox, "padding-box"},
	{KeywordBorderBox, "border-box"},
	{KeywordGraphBox, "graph-box"},
	{KeywordStatic, "static"},
	{KeywordRelative, "relative"},
	{KeywordAbsolute, "absolute"},
	{KeywordBlock, "block"},
	{KeywordInlineBlock, "inline-block"},
	{KeywordFlex, "flex"},
	{KeywordFlexStart, "flex-start"},
	{KeywordFlexEnd, "flex-end"},
	{KeywordStretch, "stretch"},
	{KeywordSpaceBetween, "space-between"},
	{KeywordSpaceAround, "space-around"},
	{KeywordSpaceEvenly, "space-evenly"},
	{KeywordWrap, "wrap"},
	{KeywordNowrap, "nowrap"},
	{KeywordRow, "row"},
	{KeywordColumn, "column"},
	{KeywordVisible, "visible"},
	{KeywordHidden, "hidden"},
	{KeywordItalic, "italic"},
	{KeywordOblique, "oblique"},
	{KeywordStart, "start"},
	{KeywordEnd, "end"},
}

// Keywords is a bidirectional registry of keyword identifiers and
// their names. A fresh registry is pre-seeded with the well-known
// keyword set.
type Keywords struct {
	byName map[string]int
	byID   map[int]string
	next   int // candidate id for Intern
}

// NewKeywords creates a keyword registry seeded with the builtin
// keyword set.
func NewKeywords() *Keywords {
	k := &Keywords{
		byName: make(map[string]int),
		byID:   make(map[int]string),
		next:   keywordTotal,
	}
	for _, kw := range builtinKeywords {
		k.byName[kw.name] = kw.id
		k.byID[kw.id] = kw.name
	}
	return k
}

// Register inserts both the forward and the reverse mapping for a
// keyword. It fails if either the identifier or the name is already
// present.
func (k *Keywords) Register(id int, name string) error {
	if _, ok := k.byName[name]; ok {
		return fmt.Errorf("keyword %q already registered", name)
	}
	if _, ok := k.byID[id]; ok {
		return fmt.Errorf("keyword id %d already registered", id)
	}
	k.byName[name] = id
	k.byID[id] = name
	return nil
}

// ByName looks up a keyword identifier by name.
func (k *Keywords) ByName(name string) (int, bool) {
	id, ok := k.byName[name]
	return id, ok
}

// Name looks up a keyword name by identifier.
func (k *Keywords) Name(id int) (string, bool) {
	name, ok := k.byID[id]
	return name, ok
}

// Intern returns the identifier for name, registering it at the next
// free identifier if it is unknown. Grammar compilation uses this to
// accept literal keywords which no caller registered explicitly.
func (k *Keywords) Intern(name string) int {
	if id, ok := k.byName[name]; ok {
		return id
	}
	for {
		if _, taken := k.byID[k.next]; !taken {
			break
		}
		k.next++
	}
	id := k.next
	k.next++
	k.byName[name] = id
	k.byID[id] = name
	tracer().Debugf("interned keyword %q as %d", name, id)
	return id
}
