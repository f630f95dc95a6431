package style

import (
	"fmt"
	"image/color"
	"strings"
)

// ValueType tags the variant held by a Value.
type ValueType uint8

// The closed set of value variants.
const (
	TypeNone ValueType = iota
	TypeInvalid
	TypeUnparsed
	TypeNumber
	TypeInteger
	TypeString
	TypeKeyword
	TypeColor
	TypeImage
	TypeUnit
	TypeArray
)

func (t ValueType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeInvalid:
		return "invalid"
	case TypeUnparsed:
		return "unparsed"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeString:
		return "string"
	case TypeKeyword:
		return "keyword"
	case TypeColor:
		return "color"
	case TypeImage:
		return "image"
	case TypeUnit:
		return "unit"
	case TypeArray:
		return "array"
	}
	return fmt.Sprintf("type(%d)", t)
}

// Color is a 32-bit RGBA color value.
type Color struct {
	R, G, B, A uint8
}

// RGBA converts to the standard library's color type.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) String() string {
	if c.A < 255 {
		return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, float64(c.A)/255.0)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

/*
Value is a tagged union for CSS property values.

   type Value
       = None
       | Invalid
       | Unparsed string
       | Number float
       | Integer int
       | String string
       | Keyword id
       | Color rgba
       | Image url
       | Unit float suffix
       | Array [Value]

The zero value of Value is the empty (unset) value.
*/
type Value struct {
	typ   ValueType
	num   float64
	ival  int32
	kword int
	str   string // string, image URL and unparsed text
	unit  string // unit suffix, "%" for percentages
	color Color
	arr   []Value
}

// None returns the empty value. Empty slots in declarations hold it.
func None() Value {
	return Value{}
}

// Invalid returns the invalid value, signalling a failed parse.
func Invalid() Value {
	return Value{typ: TypeInvalid}
}

// Unparsed wraps a raw value string which has not been run through a
// value-definition grammar.
func Unparsed(text string) Value {
	return Value{typ: TypeUnparsed, str: text}
}

// Number creates a numeric value.
func Number(x float64) Value {
	return Value{typ: TypeNumber, num: x}
}

// Integer creates an integer value.
func Integer(n int32) Value {
	return Value{typ: TypeInteger, ival: n}
}

// String creates a string value.
func String(s string) Value {
	return Value{typ: TypeString, str: s}
}

// Keyword creates a keyword value from a registered keyword identifier.
func Keyword(id int) Value {
	return Value{typ: TypeKeyword, kword: id}
}

// ColorValue creates a color value.
func ColorValue(c Color) Value {
	return Value{typ: TypeColor, color: c}
}

// Image creates an image value referencing url.
func Image(url string) Value {
	return Value{typ: TypeImage, str: url}
}

// Unit creates a unit value, i.e. a number with a unit suffix of up to
// 3 characters ("px", "pt", "em", …).
func Unit(x float64, unit string) Value {
	return Value{typ: TypeUnit, num: x, unit: unit}
}

// Percent creates a percentage value. Percentages are unit values with
// suffix "%".
func Percent(x float64) Value {
	return Value{typ: TypeUnit, num: x, unit: "%"}
}

// Array creates an array value from a list of values.
func Array(values ...Value) Value {
	return Value{typ: TypeArray, arr: values}
}

// Type returns the variant tag of v.
func (v Value) Type() ValueType {
	return v.typ
}

// IsSet is true for every variant except the empty and the invalid
// value. Merge operations only consider set values.
func (v Value) IsSet() bool {
	return v.typ != TypeNone && v.typ != TypeInvalid
}

// Number returns the numeric payload of number and unit values.
func (v Value) Number() float64 {
	return v.num
}

// Int returns the payload of integer values.
func (v Value) Int() int32 {
	return v.ival
}

// KeywordID returns the keyword identifier of keyword values.
func (v Value) KeywordID() int {
	return v.kword
}

// Text returns the payload of string, image and unparsed values.
func (v Value) Text() string {
	return v.str
}

// Color returns the payload of color values.
func (v Value) Color() Color {
	return v.color
}

// UnitName returns the unit suffix of unit values.
func (v Value) UnitName() string {
	return v.unit
}

// IsPercentage is true for unit values with suffix "%".
func (v Value) IsPercentage() bool {
	return v.typ == TypeUnit && v.unit == "%"
}

// Items returns the elements of array values.
func (v Value) Items() []Value {
	return v.arr
}

// Clone returns a deep copy of v. Scalar variants are trivially
// copied; array values are cloned recursively. (String payloads need
// no copying, Go strings are immutable.)
func (v Value) Clone() Value {
	if v.typ != TypeArray {
		return v
	}
	arr := make([]Value, len(v.arr))
	for i, item := range v.arr {
		arr[i] = item.Clone()
	}
	return Value{typ: TypeArray, arr: arr}
}

// Equal compares two values structurally.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeNone, TypeInvalid:
		return true
	case TypeUnparsed, TypeString, TypeImage:
		return v.str == other.str
	case TypeNumber:
		return v.num == other.num
	case TypeInteger:
		return v.ival == other.ival
	case TypeKeyword:
		return v.kword == other.kword
	case TypeColor:
		return v.color == other.color
	case TypeUnit:
		return v.num == other.num && v.unit == other.unit
	case TypeArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) String() string {
	switch v.typ {
	case TypeNone:
		return "<no value>"
	case TypeInvalid:
		return "<invalid value>"
	case TypeUnparsed:
		return v.str
	case TypeNumber:
		return fmt.Sprintf("%g", v.num)
	case TypeInteger:
		return fmt.Sprintf("%d", v.ival)
	case TypeString:
		return v.str
	case TypeKeyword:
		return fmt.Sprintf("keyword(%d)", v.kword)
	case TypeColor:
		return v.color.String()
	case TypeImage:
		return fmt.Sprintf("url(%s)", v.str)
	case TypeUnit:
		return fmt.Sprintf("%g%s", v.num, v.unit)
	case TypeArray:
		items := make([]string, len(v.arr))
		for i, item := range v.arr {
			items[i] = item.String()
		}
		return strings.Join(items, " ")
	}
	return "<invalid value>"
}
