/*
Package vector implements an immutable persistent vector, designed for use
cases similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: each
"modification" of the vector (insertion, replacement or deletion) creates
a copy, leaving the original unmodified. Immutable vectors are inherently
concurrency-safe. isd/significant.go uses one to accumulate the
significant-time sequence sig(D) during its document walk, and hands the
result to callers as a sorted plain slice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// props records construction-time options for a Vector.
type props struct {
	bits   uint32
	degree uint32
}

// tracer traces with key 'fp.vector'.
func tracer() tracing.Trace {
	return tracing.Select("fp.vector")
}
