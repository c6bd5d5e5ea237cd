package filter

import (
	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/style"
	"github.com/sandflow/ttconv/unit"
)

// LCDOptions configures the "lcd" filter (spec §6.2's `lcd.*` keys),
// grounded on lcd.py's LCDDocFilterConfig.
type LCDOptions struct {
	// SafeArea is the safe-area inset, as a percentage 0..30 of the root
	// container on every side (lcd.py's `safe_area`, default 10).
	SafeArea int

	// PreserveTextAlign keeps each element's own textAlign instead of
	// forcing the document to center (lcd.py's `preserve_text_align`).
	PreserveTextAlign bool

	// Color, if set, overrides every text color with a single value
	// (lcd.py's `color`).
	Color *unit.Color

	// BackgroundColor, if set, overrides every paragraph's background
	// with a single value (lcd.py's `bg_color`).
	BackgroundColor *unit.Color
}

// DefaultLCDOptions returns lcd.py's defaults: a 10% safe area, no color
// overrides, textAlign not preserved.
func DefaultLCDOptions() LCDOptions {
	return LCDOptions{SafeArea: 10}
}

// lcdRegionID is the single region every reference to a removed region
// is rebound to.
const lcdRegionID = "lcd"

func init() {
	Register("lcd", NewLCD(DefaultLCDOptions()))
}

// NewLCD returns the "lcd" filter (spec §4.5): it merges every region
// into one safe-area region, strips all styling except color and
// (optionally) text alignment, and applies opts' color overrides.
// Grounded on lcd.py's LCDDocFilter.process.
func NewLCD(opts LCDOptions) Transform {
	if opts.SafeArea < 0 || opts.SafeArea > 30 {
		opts.SafeArea = 10
	}
	return func(doc *cdm.Document) (*cdm.Document, error) {
		body := doc.Body()
		if body == nil {
			return doc, nil
		}

		inset := unit.NewLength(int64(opts.SafeArea), 1, unit.Percent)
		extent := unit.NewLength(int64(100-2*opts.SafeArea), 1, unit.Percent)

		region := cdm.NewRegion(lcdRegionID)
		if err := region.SetStyle(style.Origin, style.NewLengthPairValue(inset, inset)); err != nil {
			return nil, &Error{Filter: "lcd", Message: err.Error()}
		}
		if err := region.SetStyle(style.Extent, style.NewLengthPairValue(extent, extent)); err != nil {
			return nil, &Error{Filter: "lcd", Message: err.Error()}
		}
		if err := region.SetStyle(style.ShowBackground, style.NewEnumValue("always")); err != nil {
			return nil, &Error{Filter: "lcd", Message: err.Error()}
		}

		// rebind every content reference to a merged region before the
		// old regions disappear, then swap in the single safe-area one
		// (lcd.py's _replace_regions / prune-aliased-regions pass).
		rebindRegions(body)
		body.SetRegionRef(lcdRegionID)

		for _, r := range doc.Regions() {
			doc.RemoveRegion(r.RegionID)
		}
		if err := doc.PutRegion(region); err != nil {
			return nil, &Error{Filter: "lcd", Message: err.Error()}
		}

		for _, e := range cdm.Descendants(body) {
			stripStyles(e, opts)
		}
		stripStyles(body, opts)

		if opts.Color != nil {
			if err := body.SetStyle(style.Color, style.NewColorValue(*opts.Color)); err != nil {
				return nil, &Error{Filter: "lcd", Message: err.Error()}
			}
		}
		if !opts.PreserveTextAlign {
			if err := body.SetStyle(style.TextAlign, style.NewEnumValue("center")); err != nil {
				return nil, &Error{Filter: "lcd", Message: err.Error()}
			}
		}
		if opts.BackgroundColor != nil {
			for _, p := range cdm.DescendantsOfKind(body, cdm.KindP) {
				if err := p.SetStyle(style.BackgroundColor, style.NewColorValue(*opts.BackgroundColor)); err != nil {
					return nil, &Error{Filter: "lcd", Message: err.Error()}
				}
			}
		}

		return doc, nil
	}
}

// rebindRegions points every element that referred to any region at the
// single merged "lcd" region (lcd.py's _replace_regions).
func rebindRegions(e *cdm.Element) {
	var id string
	switch m := e.RegionRef().Match(); m {
	case m.Just(&id):
		e.SetRegionRef(lcdRegionID)
	case m.Nothing():
	}
	for _, c := range cdm.Descendants(e) {
		var cid string
		switch m := c.RegionRef().Match(); m {
		case m.Just(&cid):
			c.SetRegionRef(lcdRegionID)
		case m.Nothing():
		}
	}
}

// stripStyles removes every inline style from e except color (when no
// override is configured) and textAlign (when preserved), grounded on
// lcd.py's SupportedStylePropertiesFilter.
func stripStyles(e *cdm.Element, opts LCDOptions) {
	for name := range style.Table {
		if name == style.Color && opts.Color == nil {
			continue
		}
		if name == style.TextAlign && opts.PreserveTextAlign {
			continue
		}
		e.UnsetStyle(name)
	}
}
