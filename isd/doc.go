// Package isd implements the Intermediate Synchronic Document generator
// (C4): snapshotting a timed CDM at an instant t into a flat,
// style-resolved, timing-free tree, per spec §4.2.
//
// The generator walks the CDM directly (package cdm) rather than
// building an intermediate copy first, resolving styles through the
// same style.Node the cascade already knows how to walk (cdm.Element
// implements it) so inheritance follows the document's real parent
// chain even though the result is reshaped per materialized region.
package isd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttconv.isd'.
func tracer() tracing.Trace {
	return tracing.Select("ttconv.isd")
}
