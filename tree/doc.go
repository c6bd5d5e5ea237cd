// Package tree implements a small generic tree type, Node[T], together
// with a Walker DSL for searching and transforming trees: finding
// ancestors/descendents matching a predicate, and running top-down or
// bottom-up actions over a selection.
//
// The canonical document model (package cdm) is built on Node[T]: a
// cdm.Element embeds *tree.Node[*cdm.Element], and cdm uses a Walker for
// its descendant searches. The ISD generator (package isd) reaches the
// same nodes through cdm.Element and walks them by plain recursion over
// their children, without a Walker.
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.tree'.
func tracer() tracing.Trace {
	return tracing.Select("fp.tree")
}
