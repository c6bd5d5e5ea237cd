package unit

import (
	"fmt"
	"math/big"
)

// Unit is a length's unit of measure, restricted to the closed set the
// specification allows (spec §3.1): cell, percentage, pixel, em, and the
// two root-relative units the ISD generator normalizes everything to.
type Unit int

const (
	Cell Unit = iota
	Percent
	Pixel
	Em
	RootHeight // rh — root-container-relative height unit
	RootWidth  // rw — root-container-relative width unit
)

func (u Unit) String() string {
	switch u {
	case Cell:
		return "c"
	case Percent:
		return "%"
	case Pixel:
		return "px"
	case Em:
		return "em"
	case RootHeight:
		return "rh"
	case RootWidth:
		return "rw"
	default:
		return "?"
	}
}

// ParseUnit maps a TTML unit suffix to a Unit, returning ok=false for an
// unrecognized suffix.
func ParseUnit(s string) (u Unit, ok bool) {
	switch s {
	case "c":
		return Cell, true
	case "%":
		return Percent, true
	case "px":
		return Pixel, true
	case "em":
		return Em, true
	case "rh":
		return RootHeight, true
	case "rw":
		return RootWidth, true
	default:
		return 0, false
	}
}

// Length is a (value, unit) pair (spec §3.1). Two Lengths are never
// implicitly comparable across units; callers must normalize first via
// ToRootRelative.
type Length struct {
	Value *big.Rat
	Unit  Unit
}

// NewLength constructs a Length of num/denom in the given unit.
func NewLength(num, denom int64, u Unit) Length {
	return Length{Value: big.NewRat(num, denom), Unit: u}
}

func (l Length) String() string {
	return fmt.Sprintf("%s%s", l.Value.RatString(), l.Unit)
}

// Match returns a Matcher over l, following the same pattern-match-by-kind
// idiom as the teacher's css.DimenT.Match(), adapted to TTML's unit set
// rather than CSS's.
func (l Length) Match() *LengthMatcher {
	return &LengthMatcher{length: l}
}

// LengthMatcher supports querying a Length's unit without a type switch.
type LengthMatcher struct {
	length Length
}

// IsUnit reports whether the matched length's unit equals u.
func (m *LengthMatcher) IsUnit(u Unit) bool {
	return m.length.Unit == u
}

// Resolution describes a document's root container in both cell and
// pixel dimensions (spec §3.2), the two frames of reference every
// non-root-relative length must be converted through en route to rh/rw.
type Resolution struct {
	CellColumns, CellRows int
	PixelWidth, PixelHeight int
}

// DefaultResolution is the spec's default root container: 32×15 cells,
// 1920×1080 pixels (spec §3.2).
var DefaultResolution = Resolution{
	CellColumns: 32, CellRows: 15,
	PixelWidth: 1920, PixelHeight: 1080,
}

// ToRootRelative converts l to an rh or rw length (horizontal lengths to
// rw, vertical lengths to rh) given the document's resolution, per the
// ISD generator's position/origin normalization step (spec §4.2 step 5).
// horizontal selects which axis l measures along, since percentage,
// pixel, and cell lengths need to know which resolution dimension to
// divide by.
func ToRootRelative(l Length, res Resolution, horizontal bool) Length {
	switch l.Unit {
	case RootHeight, RootWidth:
		return l // already normalized
	case Percent:
		u := RootHeight
		if horizontal {
			u = RootWidth
		}
		return Length{Value: new(big.Rat).Set(l.Value), Unit: u}
	case Pixel:
		dim := int64(res.PixelHeight)
		u := RootHeight
		if horizontal {
			dim = int64(res.PixelWidth)
			u = RootWidth
		}
		pct := new(big.Rat).Quo(l.Value, big.NewRat(dim, 100))
		return Length{Value: pct, Unit: u}
	case Cell:
		dim := int64(res.CellRows)
		u := RootHeight
		if horizontal {
			dim = int64(res.CellColumns)
			u = RootWidth
		}
		pct := new(big.Rat).Quo(l.Value, big.NewRat(dim, 100))
		return Length{Value: pct, Unit: u}
	default:
		// em is font-relative and cannot be resolved without a computed
		// font size; the caller (style resolution) must have already
		// converted it before reaching this step.
		return l
	}
}
