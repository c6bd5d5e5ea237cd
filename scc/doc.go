// Package scc implements the CEA-608/SCC reader (C5): parsing a
// Scenarist-formatted SCC document's timecoded byte-pair stream into a
// cdm.Document. It covers the SMPTE time-code grammar, parity-stripped
// byte-pair classification (PAC / mid-row / control / attribute /
// standard / special / extended characters), and the Pop-On / Roll-Up /
// Paint-On caption-style state machine that turns that byte stream into
// timed paragraphs.
//
// Grounded throughout on original_source's ttconv/scc package (reader.py,
// line.py, word.py, time_codes.py, context.py, codes/*.py).
package scc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttconv.scc'.
func tracer() tracing.Trace {
	return tracing.Select("ttconv.scc")
}
