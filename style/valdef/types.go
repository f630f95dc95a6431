package valdef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cascade/style"
)

// registerBuiltins seeds a fresh type registry with the data types
// every grammar may reference.
func (t *Types) registerBuiltins() {
	t.types["number"] = &TypeRecord{Name: "number", Parse: parseNumber}
	t.types["integer"] = &TypeRecord{Name: "integer", Parse: parseInteger}
	t.types["string"] = &TypeRecord{Name: "string", Parse: parseString}
	t.types["keyword"] = &TypeRecord{Name: "keyword", Parse: t.parseKeyword}
	t.types["length"] = &TypeRecord{Name: "length", Parse: parseLength}
	t.types["percentage"] = &TypeRecord{Name: "percentage", Parse: parsePercentage}
	t.types["color"] = &TypeRecord{Name: "color", Parse: parseColor}
	t.types["image"] = &TypeRecord{Name: "image", Parse: parseImage}
}

func parseNumber(tok string) (style.Value, error) {
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return style.Invalid(), fmt.Errorf("not a number: %q", tok)
	}
	return style.Number(x), nil
}

func parseInteger(tok string) (style.Value, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return style.Invalid(), fmt.Errorf("not an integer: %q", tok)
	}
	return style.Integer(int32(n)), nil
}

func parseString(tok string) (style.Value, error) {
	return style.String(unquote(tok)), nil
}

// parseKeyword resolves against the registered keyword set; unknown
// names do not match.
func (t *Types) parseKeyword(tok string) (style.Value, error) {
	if id, ok := t.keywords.ByName(tok); ok {
		return style.Keyword(id), nil
	}
	return style.Invalid(), fmt.Errorf("unknown keyword: %q", tok)
}

// lengthUnits is the set of accepted unit suffixes for <length>.
var lengthUnits = map[string]bool{
	"px": true, "pt": true, "dp": true, "sp": true,
	"em": true, "rem": true,
	"mm": true, "cm": true, "in": true,
	"vw": true, "vh": true,
}

func parseLength(tok string) (style.Value, error) {
	split := len(tok)
	for split > 0 && isUnitChar(tok[split-1]) {
		split--
	}
	numpart, unit := tok[:split], tok[split:]
	if unit == "" {
		// a bare zero is a valid length, anything else needs a unit
		if numpart == "0" {
			return style.Unit(0, "px"), nil
		}
		return style.Invalid(), fmt.Errorf("length without unit: %q", tok)
	}
	if !lengthUnits[unit] {
		return style.Invalid(), fmt.Errorf("unknown length unit in %q", tok)
	}
	x, err := strconv.ParseFloat(numpart, 64)
	if err != nil {
		return style.Invalid(), fmt.Errorf("not a length: %q", tok)
	}
	return style.Unit(x, unit), nil
}

func isUnitChar(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func parsePercentage(tok string) (style.Value, error) {
	if !strings.HasSuffix(tok, "%") {
		return style.Invalid(), fmt.Errorf("not a percentage: %q", tok)
	}
	x, err := strconv.ParseFloat(tok[:len(tok)-1], 64)
	if err != nil {
		return style.Invalid(), fmt.Errorf("not a percentage: %q", tok)
	}
	return style.Percent(x), nil
}

// namedColors is the CSS basic color set plus transparent.
var namedColors = map[string]style.Color{
	"transparent": {R: 0, G: 0, B: 0, A: 0},
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"silver":      {R: 192, G: 192, B: 192, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"maroon":      {R: 128, G: 0, B: 0, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"purple":      {R: 128, G: 0, B: 128, A: 255},
	"fuchsia":     {R: 255, G: 0, B: 255, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"lime":        {R: 0, G: 255, B: 0, A: 255},
	"olive":       {R: 128, G: 128, B: 0, A: 255},
	"yellow":      {R: 255, G: 255, B: 0, A: 255},
	"navy":        {R: 0, G: 0, B: 128, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"teal":        {R: 0, G: 128, B: 128, A: 255},
	"aqua":        {R: 0, G: 255, B: 255, A: 255},
	"orange":      {R: 255, G: 165, B: 0, A: 255},
}

func parseColor(tok string) (style.Value, error) {
	if c, ok := namedColors[strings.ToLower(tok)]; ok {
		return style.ColorValue(c), nil
	}
	if strings.HasPrefix(tok, "#") {
		c, err := parseHexColor(tok[1:])
		if err != nil {
			return style.Invalid(), err
		}
		return style.ColorValue(c), nil
	}
	if inner, ok := callArgs(tok, "rgb"); ok {
		return parseRGBFunc(inner, false)
	}
	if inner, ok := callArgs(tok, "rgba"); ok {
		return parseRGBFunc(inner, true)
	}
	return style.Invalid(), fmt.Errorf("not a color: %q", tok)
}

func parseHexColor(hex string) (style.Color, error) {
	switch len(hex) {
	case 3: // #rgb
		r, errR := strconv.ParseUint(hex[0:1], 16, 8)
		g, errG := strconv.ParseUint(hex[1:2], 16, 8)
		b, errB := strconv.ParseUint(hex[2:3], 16, 8)
		if errR != nil || errG != nil || errB != nil {
			break
		}
		return style.Color{R: uint8(r * 17), G: uint8(g * 17), B: uint8(b * 17), A: 255}, nil
	case 6, 8: // #rrggbb, #rrggbbaa
		n, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			break
		}
		if len(hex) == 6 {
			n = n<<8 | 0xff
		}
		return style.Color{
			R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n),
		}, nil
	}
	return style.Color{}, fmt.Errorf("malformed hex color #%s", hex)
}

// callArgs extracts the argument string of a `name(…)` token.
func callArgs(tok, name string) (string, bool) {
	if !strings.HasPrefix(tok, name+"(") || !strings.HasSuffix(tok, ")") {
		return "", false
	}
	return tok[len(name)+1 : len(tok)-1], true
}

func parseRGBFunc(args string, withAlpha bool) (style.Value, error) {
	want := 3
	if withAlpha {
		want = 4
	}
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return style.Invalid(), fmt.Errorf("expected %d color components, got %d", want, len(parts))
	}
	var comp [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return style.Invalid(), fmt.Errorf("bad color component %q", parts[i])
		}
		comp[i] = uint8(n)
	}
	alpha := uint8(255)
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return style.Invalid(), fmt.Errorf("bad alpha component %q", parts[3])
		}
		alpha = uint8(a*255 + 0.5)
	}
	return style.ColorValue(style.Color{R: comp[0], G: comp[1], B: comp[2], A: alpha}), nil
}

func parseImage(tok string) (style.Value, error) {
	if inner, ok := callArgs(tok, "url"); ok {
		return style.Image(unquote(strings.TrimSpace(inner))), nil
	}
	if len(tok) >= 2 && (tok[0] == '"' || tok[0] == '\'') {
		return style.Image(unquote(tok)), nil
	}
	return style.Invalid(), fmt.Errorf("not an image: %q", tok)
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
