// Package style implements the style vocabulary (C1) and the cascade
// algorithm (spec §3.4) that resolves a style property to its computed
// value for an element at a time. Per spec §9's explicit directive — "the
// style vocabulary should be declared once as a table mapping property to
// metadata; per-property code should be generated or derived from the
// table, not written per property" — every property's domain, default,
// inheritability and animatability lives in a single table in
// property.go; Resolve in cascade.go is the one function that walks it.
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttconv.style'.
func tracer() tracing.Trace {
	return tracing.Select("ttconv.style")
}
