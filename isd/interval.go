package isd

import (
	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/unit"
)

// span is an element's absolute active interval in document time, [begin,
// end) — end may be unit.PositiveInfinity (spec §3.5).
type span struct {
	begin, end unit.Time
}

// absoluteSpan folds e's own begin/end offset — relative to its parent —
// into the parent's already-absolute span, per spec §3.5's s(E)/e(E)
// recursion, grounded on isd.py's ISD._make_absolute: "begin_time =
// parent_begin + (begin_offset or 0)", "end_time = min(parent_begin +
// end_offset, parent_end) or parent_end if no end_offset".
func absoluteSpan(beginOffset, endOffset unit.Time, hasBegin, hasEnd bool, parent span) span {
	begin := parent.begin
	if hasBegin {
		begin = parent.begin.Add(beginOffset)
	}
	end := parent.end
	if hasEnd {
		candidate := parent.begin.Add(endOffset)
		end = unit.Min(candidate, parent.end)
	}
	return span{begin: begin, end: end}
}

// elementSpan computes e's absolute span given its parent's already-
// computed absolute span.
func elementSpan(e *cdm.Element, parent span) span {
	var b, en unit.Time
	hasB, hasE := false, false
	switch m := e.Begin().Match(); m {
	case m.Just(&b):
		hasB = true
	case m.Nothing():
	}
	switch m := e.End().Match(); m {
	case m.Just(&en):
		hasE = true
	case m.Nothing():
	}
	return absoluteSpan(b, en, hasB, hasE, parent)
}

// rootSpan is the absolute span an unparented root (a region, or the
// document body) starts folding offsets against: begins at zero, with no
// upper clip (isd.py's sig_times(region, 0, None) / from_model's use of
// region as its own root).
var rootSpan = span{begin: unit.Zero, end: unit.PositiveInfinity}

// active reports whether t falls in s's half-open interval (spec §3.5:
// "active at t iff s(E) <= t < e(E)").
func (s span) active(t unit.Time) bool {
	if t.Less(s.begin) {
		return false
	}
	return t.Less(s.end)
}
