package style

import (
	"math/big"

	"github.com/sandflow/ttconv/unit"
)

// Name identifies a style property (spec §4.4). Using a distinct string
// type, rather than bare string, follows the teacher's own
// dom/style/property.go Property type, adapted from "a raw CSS value" to
// "a property name" since ttconv's Value type (value.go) already covers
// the raw-value side of that teacher type.
type Name string

const (
	Color           Name = "color"
	BackgroundColor Name = "backgroundColor"
	FontFamily      Name = "fontFamily"
	FontSize        Name = "fontSize"
	FontStyle       Name = "fontStyle"
	FontWeight      Name = "fontWeight"
	LineHeight      Name = "lineHeight"
	Opacity         Name = "opacity"
	TextAlign       Name = "textAlign"
	TextDecoration  Name = "textDecoration"
	Direction       Name = "direction"
	WritingMode     Name = "writingMode"
	Display         Name = "display"
	DisplayAlign    Name = "displayAlign"
	Extent          Name = "extent"
	Origin          Name = "origin"
	Position        Name = "position"
	Padding         Name = "padding"
	ShowBackground  Name = "showBackground"
	Overflow        Name = "overflow"
	WrapOption      Name = "wrapOption"
	UnicodeBidi     Name = "unicodeBidi"
	Visibility      Name = "visibility"
	Ruby            Name = "ruby"
	RubyPosition    Name = "rubyPosition"
	RubyAlign       Name = "rubyAlign"
)

// Metadata describes one property's domain, default value, inheritance
// and animatability, and allowed units (spec §4.4). It is the single
// per-property record the Table below is built from — "declared once as
// a table... derived from the table, not written per property" (spec
// §9).
type Metadata struct {
	Kind          Kind
	Default       Value
	Inheritable   bool
	Animatable    bool
	AllowedUnits  []unit.Unit // nil for non-length domains
	InheritsFromRegion bool   // "inherited from region" per spec §3.4
}

var lengthUnits = []unit.Unit{unit.Cell, unit.Percent, unit.Pixel, unit.Em, unit.RootHeight, unit.RootWidth}

// Table is the single source of truth for every property's metadata.
// Resolve (cascade.go) and the CDM's style setter (Element.SetStyle in
// cdm/element.go) both derive their behavior from this table rather than special-casing
// individual properties.
var Table = map[Name]Metadata{
	Color: {
		Kind: KindColor, Default: NewColorValue(unit.Color{R: 255, G: 255, B: 255, A: 255}),
		Inheritable: true, Animatable: true,
	},
	BackgroundColor: {
		Kind: KindColor, Default: NewColorValue(unit.Color{}),
		Inheritable: false, Animatable: true, InheritsFromRegion: true,
	},
	FontFamily: {
		Kind: KindStringList, Default: NewStringListValue([]string{"default"}),
		Inheritable: true, Animatable: false,
	},
	FontSize: {
		Kind: KindLength, Default: NewLengthValue(unit.NewLength(1, 1, unit.Cell)),
		Inheritable: true, Animatable: true, AllowedUnits: lengthUnits,
	},
	FontStyle: {
		Kind: KindEnum, Default: NewEnumValue("normal"),
		Inheritable: true, Animatable: true,
	},
	FontWeight: {
		Kind: KindEnum, Default: NewEnumValue("normal"),
		Inheritable: true, Animatable: true,
	},
	LineHeight: {
		Kind: KindEnum, Default: NewEnumValue("normal"),
		Inheritable: true, Animatable: true,
	},
	Opacity: {
		Kind: KindFraction, Default: NewFractionValue(big.NewRat(1, 1)),
		Inheritable: false, Animatable: true,
	},
	TextAlign: {
		Kind: KindEnum, Default: NewEnumValue("start"),
		Inheritable: true, Animatable: false,
	},
	TextDecoration: {
		Kind: KindEnum, Default: NewEnumValue("none"),
		Inheritable: true, Animatable: true,
	},
	Direction: {
		Kind: KindEnum, Default: NewEnumValue("ltr"),
		Inheritable: true, Animatable: false,
	},
	WritingMode: {
		Kind: KindEnum, Default: NewEnumValue("lrtb"),
		Inheritable: false, Animatable: false,
	},
	Display: {
		Kind: KindEnum, Default: NewEnumValue("auto"),
		Inheritable: false, Animatable: false,
	},
	DisplayAlign: {
		Kind: KindEnum, Default: NewEnumValue("before"),
		Inheritable: false, Animatable: false, InheritsFromRegion: true,
	},
	Extent: {
		Kind: KindLengthPair,
		Default: NewLengthPairValue(
			unit.NewLength(100, 1, unit.Percent), unit.NewLength(100, 1, unit.Percent)),
		Inheritable: false, Animatable: true, AllowedUnits: lengthUnits,
	},
	Origin: {
		Kind: KindLengthPair,
		Default: NewLengthPairValue(
			unit.NewLength(0, 1, unit.Percent), unit.NewLength(0, 1, unit.Percent)),
		Inheritable: false, Animatable: true, AllowedUnits: lengthUnits,
	},
	Position: {
		Kind: KindLengthPair,
		Default: NewLengthPairValue(
			unit.NewLength(50, 1, unit.Percent), unit.NewLength(50, 1, unit.Percent)),
		Inheritable: false, Animatable: true, AllowedUnits: lengthUnits,
	},
	Padding: {
		Kind: KindLengthQuad,
		Default: NewLengthQuadValue(
			unit.NewLength(0, 1, unit.Cell), unit.NewLength(0, 1, unit.Cell),
			unit.NewLength(0, 1, unit.Cell), unit.NewLength(0, 1, unit.Cell)),
		Inheritable: false, Animatable: false, AllowedUnits: lengthUnits,
	},
	ShowBackground: {
		Kind: KindEnum, Default: NewEnumValue("always"),
		Inheritable: false, Animatable: false,
	},
	Overflow: {
		Kind: KindEnum, Default: NewEnumValue("hidden"),
		Inheritable: false, Animatable: false,
	},
	WrapOption: {
		Kind: KindEnum, Default: NewEnumValue("wrap"),
		Inheritable: true, Animatable: false,
	},
	UnicodeBidi: {
		Kind: KindEnum, Default: NewEnumValue("normal"),
		Inheritable: false, Animatable: false,
	},
	Visibility: {
		Kind: KindEnum, Default: NewEnumValue("visible"),
		Inheritable: true, Animatable: true,
	},
	Ruby: {
		Kind: KindEnum, Default: NewEnumValue("none"),
		Inheritable: false, Animatable: false,
	},
	RubyPosition: {
		Kind: KindEnum, Default: NewEnumValue("outside"),
		Inheritable: true, Animatable: false,
	},
	RubyAlign: {
		Kind: KindEnum, Default: NewEnumValue("center"),
		Inheritable: true, Animatable: false,
	},
}

// AllowedUnit reports whether u is in the property's allowed unit set. A
// nil AllowedUnits set (non-length domains) allows nothing.
func (m Metadata) AllowedUnit(u unit.Unit) bool {
	for _, allowed := range m.AllowedUnits {
		if allowed == u {
			return true
		}
	}
	return false
}
