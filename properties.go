package cascade

import "fmt"

// Well-known property keys. The enumeration is dense; a handful of
// keys (background-size-width and friends) are computed sub-keys with
// no registered property of their own, their registry slots stay nil.
// Runtime-registered properties take keys at KeyTotal and above.
const (
	KeyLeft = iota
	KeyRight
	KeyTop
	KeyBottom
	KeyPosition
	KeyVisibility
	KeyDisplay
	KeyZIndex
	KeyOpacity
	KeyBoxSizing
	KeyWidth
	KeyHeight
	KeyMinWidth
	KeyMinHeight
	KeyMaxWidth
	KeyMaxHeight
	KeyMarginTop
	KeyMarginRight
	KeyMarginBottom
	KeyMarginLeft
	KeyPaddingTop
	KeyPaddingRight
	KeyPaddingBottom
	KeyPaddingLeft
	KeyVerticalAlign
	KeyBorderTopWidth
	KeyBorderTopStyle
	KeyBorderTopColor
	KeyBorderRightWidth
	KeyBorderRightStyle
	KeyBorderRightColor
	KeyBorderBottomWidth
	KeyBorderBottomStyle
	KeyBorderBottomColor
	KeyBorderLeftWidth
	KeyBorderLeftStyle
	KeyBorderLeftColor
	KeyBorderTopLeftRadius
	KeyBorderTopRightRadius
	KeyBorderBottomLeftRadius
	KeyBorderBottomRightRadius
	KeyBackgroundColor
	KeyBackgroundImage
	KeyBackgroundSize
	KeyBackgroundSizeWidth
	KeyBackgroundSizeHeight
	KeyBackgroundRepeat
	KeyBackgroundRepeatX
	KeyBackgroundRepeatY
	KeyBackgroundPosition
	KeyBackgroundPositionX
	KeyBackgroundPositionY
	KeyBackgroundOrigin
	KeyBoxShadow
	KeyBoxShadowX
	KeyBoxShadowY
	KeyBoxShadowSpread
	KeyBoxShadowBlur
	KeyBoxShadowColor
	KeyFlexBasis
	KeyFlexGrow
	KeyFlexShrink
	KeyFlexDirection
	KeyFlexWrap
	KeyJustifyContent
	KeyAlignContent
	KeyAlignItems
	KeyColor
	KeyFontSize
	KeyFontStyle
	KeyFontWeight
	KeyFontFamily
	KeyLineHeight
	KeyTextAlign
	KeyContent
	KeyWhiteSpace
	KeyPointerEvents
	KeyFocusable
	KeyTotal
)

// registerAliases seeds the grammar alias table.
func (l *Library) registerAliases() {
	aliases := []struct{ name, expansion string }{
		{"width", "auto | <length> | <percentage>"},
		{"shadow", "<length>{2,4} && <color>?"},
		{"content-position", "center | start | end | flex-start | flex-end"},
		{"content-distribution", "space-between | space-around | space-evenly | stretch"},
	}
	for _, a := range aliases {
		if err := l.types.RegisterAlias(a.name, a.expansion); err != nil {
			tracer().Errorf("alias <%s>: %v", a.name, err)
		}
	}
}

type propertySeed struct {
	key     int
	name    string
	grammar string
	initial string
}

// builtinProperties is the common CSS property set, registered into
// every fresh library.
var builtinProperties = []propertySeed{
	{KeyLeft, "left", "<length> | <percentage> | auto", "auto"},
	{KeyRight, "right", "<length> | <percentage> | auto", "auto"},
	{KeyTop, "top", "<length> | <percentage> | auto", "auto"},
	{KeyBottom, "bottom", "<length> | <percentage> | auto", "auto"},
	{KeyPosition, "position", "static | relative | absolute", "static"},
	{KeyVisibility, "visibility", "visible | hidden", "visible"},
	{KeyDisplay, "display", "none | block | inline-block | flex", "block"},
	{KeyZIndex, "z-index", "auto | <integer>", "auto"},
	{KeyOpacity, "opacity", "<number> | <percentage>", "1"},
	{KeyBoxSizing, "box-sizing", "content-box | border-box", "content-box"},
	{KeyWidth, "width", "auto | <length> | <percentage>", "auto"},
	{KeyHeight, "height", "auto | <length> | <percentage>", "auto"},
	{KeyMinWidth, "min-width", "auto | <length> | <percentage>", "auto"},
	{KeyMinHeight, "min-height", "auto | <length> | <percentage>", "auto"},
	{KeyMaxWidth, "max-width", "auto | <length> | <percentage>", "auto"},
	{KeyMaxHeight, "max-height", "auto | <length> | <percentage>", "auto"},
	{KeyMarginTop, "margin-top", "<length> | <percentage>", "0"},
	{KeyMarginRight, "margin-right", "<length> | <percentage>", "0"},
	{KeyMarginBottom, "margin-bottom", "<length> | <percentage>", "0"},
	{KeyMarginLeft, "margin-left", "<length> | <percentage>", "0"},
	{KeyPaddingTop, "padding-top", "<length> | <percentage>", "0"},
	{KeyPaddingRight, "padding-right", "<length> | <percentage>", "0"},
	{KeyPaddingBottom, "padding-bottom", "<length> | <percentage>", "0"},
	{KeyPaddingLeft, "padding-left", "<length> | <percentage>", "0"},
	{KeyVerticalAlign, "vertical-align", "middle | bottom | top", "top"},
	{KeyBorderTopWidth, "border-top-width", "<length>", "0"},
	{KeyBorderTopStyle, "border-top-style", "none | solid", "none"},
	{KeyBorderTopColor, "border-top-color", "<color>", "transparent"},
	{KeyBorderRightWidth, "border-right-width", "<length>", "0"},
	{KeyBorderRightStyle, "border-right-style", "none | solid", "none"},
	{KeyBorderRightColor, "border-right-color", "<color>", "transparent"},
	{KeyBorderBottomWidth, "border-bottom-width", "<length>", "0"},
	{KeyBorderBottomStyle, "border-bottom-style", "none | solid", "none"},
	{KeyBorderBottomColor, "border-bottom-color", "<color>", "transparent"},
	{KeyBorderLeftWidth, "border-left-width", "<length>", "0"},
	{KeyBorderLeftStyle, "border-left-style", "none | solid", "none"},
	{KeyBorderLeftColor, "border-left-color", "<color>", "transparent"},
	{KeyBorderTopLeftRadius, "border-top-left-radius", "<length> | <percentage>", "0"},
	{KeyBorderTopRightRadius, "border-top-right-radius", "<length> | <percentage>", "0"},
	{KeyBorderBottomLeftRadius, "border-bottom-left-radius", "<length> | <percentage>", "0"},
	{KeyBorderBottomRightRadius, "border-bottom-right-radius", "<length> | <percentage>", "0"},
	{KeyBackgroundColor, "background-color", "<color>", "transparent"},
	{KeyBackgroundImage, "background-image", "none | <image>", "none"},
	{KeyBackgroundSize, "background-size",
		"[ <length> | <percentage> | auto ]{1,2} | cover | contain", "auto auto"},
	// two-component alternative first: value parsing accepts the first
	// fitting alternative, so the longer form must be tried first
	{KeyBackgroundPosition, "background-position",
		"[ left | center | right | <length> | <percentage> ] " +
			"[ top | center | bottom | <length> | <percentage> ] " +
			"| [ left | center | right | top | bottom | <length> | <percentage> ]",
		"0% 0%"},
	{KeyBoxShadow, "box-shadow", "none | <shadow>", "none"},
	{KeyFlexBasis, "flex-basis", "auto | <width>", "auto"},
	{KeyFlexGrow, "flex-grow", "<number>", "0"},
	{KeyFlexShrink, "flex-shrink", "<number>", "1"},
	{KeyFlexDirection, "flex-direction", "row | column", "row"},
	{KeyFlexWrap, "flex-wrap", "nowrap | wrap", "nowrap"},
	{KeyJustifyContent, "justify-content",
		"normal | <content-position> | <content-distribution>", "normal"},
	{KeyAlignContent, "align-content",
		"normal | <content-position> | <content-distribution>", "normal"},
	{KeyAlignItems, "align-items", "normal | stretch", "normal"},
	{KeyColor, "color", "<color>", "#000"},
	{KeyFontSize, "font-size", "<length> | <percentage>", "16px"},
	{KeyFontStyle, "font-style", "normal | italic | oblique", "normal"},
	{KeyFontFamily, "font-family", "<string>", ""},
	{KeyLineHeight, "line-height", "<number> | <length> | <percentage>", "1.6"},
	{KeyTextAlign, "text-align", "left | center | right", "left"},
	{KeyContent, "content", "<string>", ""},
	{KeyWhiteSpace, "white-space", "normal | nowrap", "normal"},
	{KeyPointerEvents, "pointer-events", "auto | none", "auto"},
}

func (l *Library) registerBuiltinProperties() {
	for _, seed := range builtinProperties {
		if _, err := l.RegisterPropertyAt(seed.key, seed.name, seed.grammar, seed.initial); err != nil {
			tracer().Errorf("builtin property %q: %v", seed.name, err)
		}
	}
}

var keyNames = func() map[int]string {
	m := make(map[int]string, len(builtinProperties))
	for _, seed := range builtinProperties {
		m[seed.key] = seed.name
	}
	return m
}()

// propertyName resolves a key to the builtin property name, for
// printing. Runtime-registered keys render numerically.
func propertyName(key int) string {
	if name, ok := keyNames[key]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", key)
}
