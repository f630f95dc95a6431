package style

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// DU converts an absolute unit value into a typesetting dimension.
// Font-relative and viewport-relative units ("em", "rem", "vw", …)
// cannot be resolved without context and report false, as do all
// non-unit variants and percentages.
func (v Value) DU() (dimen.DU, bool) {
	if v.typ != TypeUnit {
		return 0, false
	}
	pt := float64(dimen.PT)
	switch v.unit {
	case "pt":
		return dimen.DU(v.num * pt), true
	case "px":
		// 1px = 1/96in = 3/4pt
		return dimen.DU(v.num * pt * 3 / 4), true
	case "in":
		return dimen.DU(v.num * pt * 72), true
	case "mm":
		return dimen.DU(v.num * pt * 72 / 25.4), true
	case "cm":
		return dimen.DU(v.num * pt * 72 / 2.54), true
	}
	return 0, false
}

// Percentage converts a percentage value, truncating to whole percent.
func (v Value) Percentage() (percent.Percent, bool) {
	if !v.IsPercentage() {
		var none percent.Percent
		return none, false
	}
	return percent.FromInt(int(v.num)), true
}
