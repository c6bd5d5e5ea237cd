package scc

import (
	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/unit"
)

// captionStyle is the active caption presentation mode, grounded on
// context.py's SccCaptionStyle enum.
type captionStyle int

const (
	styleUnknown captionStyle = iota
	stylePopOn
	styleRollUp
	stylePaintOn
)

// Context is the CEA-608 decode state machine: it tracks the channel
// being decoded, the active caption style, the buffered (off-screen)
// and active (on-screen) captions, and emits finished paragraphs as
// they are displaced or closed. Grounded on context.py's SccContext.
//
// Paint-On is modeled identically to Roll-Up here (direct writes to the
// active caption, rolled rather than popped) rather than context.py's
// full in-place-overwrite semantics — a documented simplification,
// since SCC streams using Paint-On in practice almost always emit it as
// a degenerate Roll-Up with a one-row window.
type Context struct {
	channel Channel
	style   captionStyle

	buffered *buffer // built off-screen, flipped to active on EOC (Pop-On)
	active   *buffer // currently on-screen
	rollRows int     // Roll-Up/Paint-On window size, set by RU2/RU3/RU4

	lastWord Word // for duplicate-control-code collapsing

	paragraphs []*cdm.Element
}

// NewContext returns a Context decoding the given channel, grounded on
// context.py's SccContext.__init__.
func NewContext(ch Channel) *Context {
	return &Context{
		channel:  ch,
		buffered: newBuffer(),
		active:   newBuffer(),
		rollRows: 2,
	}
}

// Paragraphs returns every paragraph flush has emitted so far, as
// cdm.Elements not yet attached to any document, in emission order
// (not necessarily begin-time order — callers needing that invariant,
// spec §8, should sort by Begin()).
func (c *Context) Paragraphs() []*cdm.Element { return c.paragraphs }

// Process decodes one word at time t, dispatching to the matching code
// table and falling through to standard-character text when w is not a
// code word. Grounded on line.py's SccLine.to_disassembly / reader.py's
// per-word dispatch loop.
func (c *Context) Process(w Word, t unit.Time) {
	if w.IsNull() {
		return
	}
	if w.IsCode() && w == c.lastWord {
		// CEA-608 transmits control/PAC/mid-row codes twice for error
		// resilience; the second identical transmission is a no-op
		// (spec §4.3's duplicate-control-pair collapsing).
		c.lastWord = Word{}
		return
	}
	if w.IsCode() {
		c.lastWord = w
	} else {
		c.lastWord = Word{}
	}

	if w.Channel() != c.channel {
		return
	}

	if !w.IsCode() {
		target := c.targetBuffer()
		target.touch(t)
		target.writeText(w.ToText())
		if c.style == styleUnknown {
			c.style = stylePaintOn
		}
		return
	}
	c.processCode(w, t)
}

func (c *Context) processCode(w Word, t unit.Time) {
	if cc, ok := FindControlCode(w); ok {
		c.processControlCode(cc, t)
		return
	}
	if pac, ok := FindPAC(w); ok {
		target := c.targetBuffer()
		target.touch(t)
		target.setPAC(pac)
		if c.style == styleRollUp {
			// Roll-up ignores the PAC's column: text always starts at
			// column 0 (spec §4.3's PAC transition row).
			target.col = 0
		}
		return
	}
	if mr, ok := FindMidRowCode(w); ok {
		target := c.targetBuffer()
		target.touch(t)
		target.setMidRow(mr)
		return
	}
	if ac, ok := FindAttributeCode(w); ok {
		target := c.targetBuffer()
		target.touch(t)
		target.setAttribute(ac)
		return
	}
	if ch, ok := FindSpecialCharacter(w); ok {
		target := c.targetBuffer()
		target.touch(t)
		target.writeText(ch)
		return
	}
	if ch, ok := FindExtendedCharacter(w); ok {
		// An extended character replaces the standard-character fallback
		// the transmitter sent just before it (CEA-608 convention).
		target := c.targetBuffer()
		target.touch(t)
		target.backspace()
		target.writeText(ch)
		return
	}
	tracer().Debugf("scc: unrecognized code word %#04x %#04x", w.Byte1, w.Byte2)
}

// targetBuffer is the buffer new text/styling is currently written
// into: the off-screen buffer while Pop-On is composing, the on-screen
// one otherwise.
func (c *Context) targetBuffer() *buffer {
	if c.style == stylePopOn {
		return c.buffered
	}
	return c.active
}

func (c *Context) processControlCode(cc ControlCode, t unit.Time) {
	switch cc {
	case RCL:
		c.style = stylePopOn
	case RU2:
		c.setRollUp(2, t)
	case RU3:
		c.setRollUp(3, t)
	case RU4:
		c.setRollUp(4, t)
	case AOF, AON:
		c.style = stylePaintOn
	case RDC:
		// resume direct captioning: a synonym for Paint-On's
		// non-clearing continuation.
		c.style = stylePaintOn
	case EDM:
		c.flushActive(t)
		c.active.clear()
	case ENM:
		c.buffered.clear()
	case EOC:
		c.flipBuffers(t)
	case CR:
		if c.style == styleRollUp || c.style == stylePaintOn {
			c.flushActive(t)
			c.active.rollUp(c.rollRows)
			c.active.setBegin(t)
		}
	case BS:
		c.targetBuffer().backspace()
	case TO1:
		c.targetBuffer().advanceColumn(1)
	case TO2:
		c.targetBuffer().advanceColumn(2)
	case TO3:
		c.targetBuffer().advanceColumn(3)
	case DER, FON, TR, RTD:
		// Delete-to-end-of-row, font style and text/repeat controls are
		// accepted and ignored: DER does not delete any text already
		// written to the row.
	}
}

// setRollUp enters Roll-Up mode with the given window size, grounded on
// spec §4.3's RU2/3/4 row: a transition from Pop-On/Paint-On clears the
// display; a transition among roll-up sizes keeps the current content.
func (c *Context) setRollUp(rows int, t unit.Time) {
	if c.style != styleRollUp {
		c.flushActive(t)
		c.active.clear()
	}
	c.style = styleRollUp
	c.rollRows = rows
}

// flipBuffers implements Pop-On's End-Of-Caption: the buffered caption
// becomes the active one, beginning display at t, while whatever was
// previously active is flushed as a finished paragraph ending at t.
func (c *Context) flipBuffers(t unit.Time) {
	c.flushActive(t)
	c.active, c.buffered = c.buffered, newBuffer()
	c.active.setBegin(t)
}

// flushActive emits the current active caption as a finished
// paragraph ending at t, if it has any content.
func (c *Context) flushActive(t unit.Time) {
	c.flushBuffer(c.active, t)
}

func (c *Context) flushBuffer(b *buffer, end unit.Time) {
	if b.isEmpty() || !b.hasBegin {
		return
	}
	if !b.begin.Less(end) {
		// a zero-length (or inverted) interval is dropped, spec §8
		// boundary behavior: "a zero-length would-be paragraph is
		// dropped."
		return
	}
	p, err := b.toCDM(CaptionRegionID)
	if err != nil {
		tracer().Errorf("scc: rendering paragraph: %v", err)
		return
	}
	p.SetBegin(b.begin)
	p.SetEnd(end)
	c.paragraphs = append(c.paragraphs, p)
}

// Flush emits whatever captions are still pending at end of stream —
// the on-screen caption and, for a Pop-On caption that was composed
// off-screen but never flipped into view, the buffered one too — each
// ending at +∞ (closed to the document's end, spec §8 scenario 1).
func (c *Context) Flush() {
	c.flushBuffer(c.active, unit.PositiveInfinity)
	c.active.clear()
	c.flushBuffer(c.buffered, unit.PositiveInfinity)
	c.buffered.clear()
}
