package unit

import (
	"math/big"
)

// Time is a non-negative exact instant or duration in seconds, held as an
// arbitrary-precision rational. Every temporal computation in cdm and isd
// goes through Time so that begin/end offsets accumulate without rounding
// error, however deeply a document nests parallel time containers.
type Time struct {
	r *big.Rat
}

// Zero is the additive identity, and the start of every document's
// presentable time domain (spec §3.5).
var Zero = Time{r: big.NewRat(0, 1)}

// PositiveInfinity represents an open-ended end time (an element with no
// declared `end`, or a paragraph not yet closed by a following event).
var PositiveInfinity = Time{r: nil}

// NewTime constructs a Time equal to num/denom seconds.
func NewTime(num, denom int64) Time {
	return Time{r: big.NewRat(num, denom)}
}

// FromFrames converts a frame count at the given frames-per-second
// rational into a Time. Used only at format boundaries (scc).
func FromFrames(frames int64, fps *big.Rat) Time {
	r := new(big.Rat).SetInt64(frames)
	r.Quo(r, fps)
	return Time{r: r}
}

// IsInfinite reports whether t represents an open-ended (+∞) instant.
func (t Time) IsInfinite() bool {
	return t.r == nil
}

// Rat exposes the underlying rational for callers that need to format or
// further combine it (e.g. writers converting back to frame counts).
// Panics if t is infinite; callers must check IsInfinite first.
func (t Time) Rat() *big.Rat {
	if t.r == nil {
		panic("unit: Rat() called on an infinite Time")
	}
	return t.r
}

// Add returns t + d. Adding to an infinite time yields infinity.
func (t Time) Add(d Time) Time {
	if t.IsInfinite() || d.IsInfinite() {
		return PositiveInfinity
	}
	return Time{r: new(big.Rat).Add(t.r, d.r)}
}

// Sub returns t - d. Subtracting a finite time from infinity yields
// infinity. Subtracting infinity from a finite time is undefined and
// panics — callers must special-case open-ended intervals themselves.
func (t Time) Sub(d Time) Time {
	if t.IsInfinite() {
		return PositiveInfinity
	}
	if d.IsInfinite() {
		panic("unit: Sub(infinite) on a finite Time")
	}
	return Time{r: new(big.Rat).Sub(t.r, d.r)}
}

// Cmp compares t and u: -1 if t<u, 0 if t==u, +1 if t>u. Infinity compares
// greater than every finite value and equal to itself.
func (t Time) Cmp(u Time) int {
	switch {
	case t.IsInfinite() && u.IsInfinite():
		return 0
	case t.IsInfinite():
		return 1
	case u.IsInfinite():
		return -1
	default:
		return t.r.Cmp(u.r)
	}
}

// Less reports whether t < u.
func (t Time) Less(u Time) bool { return t.Cmp(u) < 0 }

// Min returns the smaller of t and u.
func Min(t, u Time) Time {
	if t.Less(u) {
		return t
	}
	return u
}

// Max returns the larger of t and u.
func Max(t, u Time) Time {
	if t.Less(u) {
		return u
	}
	return t
}

func (t Time) String() string {
	if t.IsInfinite() {
		return "+Inf"
	}
	return t.r.RatString()
}
