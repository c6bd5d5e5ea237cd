// Package cdm implements the Canonical Document Model (C3): the in-memory
// TTML-shaped document tree, its content-element grammar, and the typed
// mutation API spec §4.1 requires ("every mutation preserves grammar
// validity... referential integrity").
//
// Following spec §9's explicit guidance ("model elements form a closed
// variant set; implementers should prefer a tagged variant with pattern
// matching over virtual dispatch"), every content-element kind — Region,
// Body, Div, P, Span, the Ruby family, Br, Text — is realized as a single
// Element struct carrying a Kind tag, rather than six-plus Go types
// behind a common interface. Element embeds *tree.Node[*Element]
// (adapted from the teacher's generic tree package) for parent/children
// links, following the same embedding pattern as the teacher's
// dom/styledtree.StyNode.
package cdm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttconv.cdm'.
func tracer() tracing.Trace {
	return tracing.Select("ttconv.cdm")
}
