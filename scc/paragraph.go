package scc

import (
	"fmt"

	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/style"
	"github.com/sandflow/ttconv/unit"
)

// rowCount and columnCount are the CEA-608 safe-area grid dimensions,
// grounded on caption_paragraph.py's SCC_SAFE_AREA_CELL_RESOLUTION_ROWS/
// COLUMNS.
const (
	rowCount    = 15
	columnCount = 32
)

// pen is the styling CEA-608 mid-row/PAC codes toggle, grounded on
// context.py's SccCaptionStyle tracking of color/italics/underline.
type pen struct {
	color     string
	italic    bool
	underline bool
}

// run is a contiguous span of text sharing one pen.
type run struct {
	text string
	pen  pen
}

// buffer is the off-screen or on-screen caption grid a Pop-On/Roll-Up/
// Paint-On caption is built into one word at a time, grounded on
// context.py's SccCaptionParagraph (the `self.current_text` row model).
type buffer struct {
	rows [rowCount + 1][]run // rows[1..15], row 0 unused
	row  int
	col  int
	pen  pen

	begin    unit.Time
	hasBegin bool
}

// newBuffer returns an empty buffer with the cursor parked on the last
// row, the CEA-608 default for a freshly cleared caption.
func newBuffer() *buffer {
	return &buffer{row: rowCount}
}

// clear empties every row, grounded on context.py's
// SccCaptionParagraph.clear.
func (b *buffer) clear() {
	for i := range b.rows {
		b.rows[i] = nil
	}
	b.row, b.col = rowCount, 0
	b.pen = pen{}
	b.hasBegin = false
}

// touch records t as the buffer's paragraph-begin time, the first time
// b receives content after being cleared. Later touches are no-ops:
// the paragraph begins when its text started, not when it was last
// appended to.
func (b *buffer) touch(t unit.Time) {
	if !b.hasBegin {
		b.begin = t
		b.hasBegin = true
	}
}

// setBegin forcibly (re)sets b's paragraph-begin time, used when a
// buffer flip or roll-up shift redefines when the visible content
// started regardless of when it was composed (spec §4.3's EOC/CR
// transitions).
func (b *buffer) setBegin(t unit.Time) {
	b.begin = t
	b.hasBegin = true
}

// isEmpty reports whether b has no text on any row.
func (b *buffer) isEmpty() bool {
	for _, r := range b.rows {
		for _, run := range r {
			if run.text != "" {
				return false
			}
		}
	}
	return true
}

// setPAC moves the cursor to p's row and resets the pen to p's color/
// style, grounded on context.py's process_preamble_address_code.
func (b *buffer) setPAC(p PAC) {
	if p.Row < 1 || p.Row > rowCount {
		return
	}
	b.row = p.Row
	if p.Indent >= 0 {
		b.col = p.Indent
		b.pen = pen{}
	} else {
		b.pen = pen{color: p.Color, italic: p.Italic, underline: p.Underline}
	}
}

// setMidRow applies a mid-row style change at the cursor, grounded on
// context.py's process_mid_row_code. A mid-row code always writes a
// space first (CEA-608 convention: mid-row codes occupy a character
// cell of their own).
func (b *buffer) setMidRow(mr MidRowCode) {
	b.writeText(" ")
	b.pen = pen{color: mr.Color, italic: mr.Italic, underline: mr.Underline}
}

// setAttribute applies a background/foreground attribute at the
// cursor, grounded on context.py's process_attribute_code. Background
// attributes are not modeled per-character (cdm has no background-color
// run granularity below the span/P level in this reader); only the
// foreground (non-background) forms affect the pen.
func (b *buffer) setAttribute(ac AttributeCode) {
	if ac.Background {
		return
	}
	b.pen.color = ac.Color
	b.pen.underline = ac.Underline
}

// writeText appends s to the buffer at the cursor, grounded on
// context.py's process_text.
func (b *buffer) writeText(s string) {
	if s == "" {
		return
	}
	rows := b.rows[b.row]
	if n := len(rows); n > 0 && rows[n-1].pen == b.pen {
		rows[n-1].text += s
	} else {
		rows = append(rows, run{text: s, pen: b.pen})
	}
	b.rows[b.row] = rows
	b.col += len(s)
	if b.col > columnCount-1 {
		b.col = columnCount - 1
	}
}

// advanceColumn moves the cursor right by n columns, clamping at the
// last column (spec §8 boundary behavior: "TO advancing past column 31
// clamps at 31").
func (b *buffer) advanceColumn(n int) {
	b.col += n
	if b.col > columnCount-1 {
		b.col = columnCount - 1
	}
}

// backspace removes the last written character, grounded on
// context.py's process_standard_character's backspace handling (used to
// implement extended characters, which CEA-608 transmits as a
// backspace followed by the accented replacement). A no-op at column 0
// (spec §8 boundary behavior: "SCC BS at column 0 is a no-op").
func (b *buffer) backspace() {
	if b.col == 0 {
		return
	}
	rows := b.rows[b.row]
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].text == "" {
			continue
		}
		runes := []rune(rows[i].text)
		rows[i].text = string(runes[:len(runes)-1])
		b.rows[b.row] = rows
		b.col--
		return
	}
}

// rollUp shifts the rows of the bottom windowRows-row roll-up window up
// by one, discarding the window's top row and leaving the new bottom row
// empty; rows above the window are left as they are. Grounded on
// context.py's roll_up handling of
// the carriage-return control code.
func (b *buffer) rollUp(windowRows int) {
	base := rowCount - windowRows + 1
	if base < 1 {
		base = 1
	}
	for r := base; r < rowCount; r++ {
		b.rows[r] = b.rows[r+1]
	}
	b.rows[rowCount] = nil
}

// toCDM renders b as a P element: one Span per run, rows separated by
// Br (cdm's grammar allows P to directly contain Br, so no per-row Div
// is needed), grounded on caption_paragraph.py's to_paragraph.
func (b *buffer) toCDM(regionID string) (*cdm.Element, error) {
	p := cdm.New(cdm.KindP)
	p.SetRegionRef(regionID)
	first := true
	for row := 1; row <= rowCount; row++ {
		runs := b.rows[row]
		if len(runs) == 0 {
			continue
		}
		if !first {
			if err := pushChild(p, cdm.NewBr()); err != nil {
				return nil, err
			}
		}
		first = false
		for _, rn := range runs {
			if rn.text == "" {
				continue
			}
			span := cdm.New(cdm.KindSpan)
			if err := applyPen(span, rn.pen); err != nil {
				return nil, err
			}
			if err := pushChild(span, cdm.NewText(rn.text)); err != nil {
				return nil, err
			}
			if err := pushChild(p, span); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// pushChild pushes child onto parent, unwrapping cdm.PushChild's Result
// into a plain error for callers that don't need to keep parent on
// failure.
func pushChild(parent, child *cdm.Element) error {
	var err error
	var ok *cdm.Element
	switch m := cdm.PushChild(parent, child).Match(); m {
	case m.Err(&err):
		return fmt.Errorf("scc: %w", err)
	case m.Ok(&ok):
	}
	return nil
}

// applyPen sets span's inline styles from pn, leaving defaults (white,
// non-italic, non-underline) unset so the ISD generator's cascade
// default applies instead of a redundant inline override.
func applyPen(span *cdm.Element, pn pen) error {
	if pn.color != "" && pn.color != "white" {
		c, err := unit.ParseColor(pn.color)
		if err != nil {
			return fmt.Errorf("scc: %w", err)
		}
		if err := span.SetStyle(style.Color, style.NewColorValue(c)); err != nil {
			return err
		}
	}
	if pn.italic {
		if err := span.SetStyle(style.FontStyle, style.NewEnumValue("italic")); err != nil {
			return err
		}
	}
	if pn.underline {
		if err := span.SetStyle(style.TextDecoration, style.NewEnumValue("underline")); err != nil {
			return err
		}
	}
	return nil
}
