package style

import (
	"math/big"

	"github.com/sandflow/ttconv/fp"
	"github.com/sandflow/ttconv/unit"
)

// Kind tags the domain a Value belongs to (spec §4.4: "domain (enum /
// length / color / fraction / list of T)"). Following spec §9's guidance
// to prefer a tagged variant over per-domain Go types, Value is one
// struct with a Kind discriminator, in the same spirit as the teacher's
// css.DimenT (a flags-tagged struct covering several dimension kinds).
type Kind int

const (
	KindEnum Kind = iota
	KindLength
	KindLengthPair
	KindLengthQuad
	KindColor
	KindFraction
	KindStringList
)

// Value holds exactly one style value, tagged by Kind. Zero Value is not
// meaningful; always construct with one of the New*Value functions.
type Value struct {
	kind     Kind
	enum     string
	length   unit.Length
	pair     fp.Pair[unit.Length, unit.Length]
	quad     [4]unit.Length
	color    unit.Color
	fraction *big.Rat
	list     []string
}

func NewEnumValue(s string) Value             { return Value{kind: KindEnum, enum: s} }
func NewLengthValue(l unit.Length) Value      { return Value{kind: KindLength, length: l} }
func NewColorValue(c unit.Color) Value        { return Value{kind: KindColor, color: c} }
func NewFractionValue(r *big.Rat) Value       { return Value{kind: KindFraction, fraction: r} }
func NewStringListValue(list []string) Value  { return Value{kind: KindStringList, list: list} }

// NewLengthPairValue constructs a two-length domain value, used for
// `extent` and `origin` (spec §4.4).
func NewLengthPairValue(a, b unit.Length) Value {
	return Value{kind: KindLengthPair, pair: fp.P(a, b)}
}

// NewLengthQuadValue constructs a four-length domain value, used for
// `padding` (spec §4.4), in top/right/bottom/left order.
func NewLengthQuadValue(top, right, bottom, left unit.Length) Value {
	return Value{kind: KindLengthQuad, quad: [4]unit.Length{top, right, bottom, left}}
}

// Kind reports which domain v belongs to.
func (v Value) Kind() Kind { return v.kind }

// Enum returns v's enum value and whether v is of KindEnum.
func (v Value) Enum() (string, bool) { return v.enum, v.kind == KindEnum }

// Length returns v's length and whether v is of KindLength.
func (v Value) Length() (unit.Length, bool) { return v.length, v.kind == KindLength }

// LengthPair returns v's length pair and whether v is of KindLengthPair.
func (v Value) LengthPair() (fp.Pair[unit.Length, unit.Length], bool) {
	return v.pair, v.kind == KindLengthPair
}

// LengthQuad returns v's four lengths (top, right, bottom, left) and
// whether v is of KindLengthQuad.
func (v Value) LengthQuad() ([4]unit.Length, bool) { return v.quad, v.kind == KindLengthQuad }

// Color returns v's color and whether v is of KindColor.
func (v Value) Color() (unit.Color, bool) { return v.color, v.kind == KindColor }

// Fraction returns v's fraction and whether v is of KindFraction.
func (v Value) Fraction() (*big.Rat, bool) { return v.fraction, v.kind == KindFraction }

// StringList returns v's list and whether v is of KindStringList (used
// for `fontFamily`, spec §4.4).
func (v Value) StringList() ([]string, bool) { return v.list, v.kind == KindStringList }
