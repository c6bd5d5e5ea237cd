// Package unit implements the primitive value domains shared by every
// higher-level ttconv package (C2 in the specification): exact rational
// time, length-with-unit, and RGBA color.
//
// Time arithmetic never uses floating point (spec §3.1, §9 "Exact time"):
// Time wraps math/big.Rat so that begin/end offsets, animation-step
// boundaries, and the significant-time sequence sig(D) compare and
// combine exactly, with no accumulated rounding error across a long
// document. Conversion to/from frame counts and clock time happens only
// at format boundaries (the scc package), never inside the CDM
// or the ISD generator.
package unit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttconv.unit'.
func tracer() tracing.Trace {
	return tracing.Select("ttconv.unit")
}
