// Package filter implements the CDM→CDM transform contract (spec §4.5):
// a named, registrable function that rewrites a cdm.Document in place
// and must preserve every document invariant spec §3.2 requires, or
// fail with a *filter-error*. Individual filters are chained with
// fp.Compose so a CLI invocation's `--filter a --filter b` becomes a
// single function applied once.
package filter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ttconv.filter'.
func tracer() tracing.Trace {
	return tracing.Select("ttconv.filter")
}
