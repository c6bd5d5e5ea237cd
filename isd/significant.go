package isd

import (
	"sort"

	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/persistent/vector"
	"github.com/sandflow/ttconv/unit"
)

// SignificantTimes returns sig(D) (spec §4.2 step 1): the strictly
// increasing sequence of instants at which doc's ISD can change, starting
// at zero. Grounded on isd.py's ISD.significant_times, generalized from a
// Python set to the persistent vector.Vector[unit.Time] this module keeps
// specifically for this accumulation (see persistent/vector's doc
// comment): each recursive call extends its own immutable snapshot, so a
// writer walking sibling regions never sees another branch's partial
// state.
func SignificantTimes(doc *cdm.Document) []unit.Time {
	acc := vector.Immutable[unit.Time]()
	acc = acc.Push(unit.Zero)

	for _, region := range doc.Regions() {
		acc = collectSignificantTimes(region, rootSpan, acc)
	}
	if body := doc.Body(); body != nil {
		acc = collectSignificantTimes(body, rootSpan, acc)
	}

	return dedupeSorted(acc.Slice())
}

func collectSignificantTimes(e *cdm.Element, parent span, acc vector.Vector[unit.Time]) vector.Vector[unit.Time] {
	s := elementSpan(e, parent)
	acc = acc.Push(s.begin)
	if !s.end.IsInfinite() {
		acc = acc.Push(s.end)
	}

	for _, step := range e.AnimationSteps() {
		stepSpan := absoluteSpan(step.Begin, step.End, true, true, s)
		acc = acc.Push(stepSpan.begin)
		if !stepSpan.end.IsInfinite() {
			acc = acc.Push(stepSpan.end)
		}
	}

	for _, child := range e.Children() {
		acc = collectSignificantTimes(child, s, acc)
	}
	return acc
}

func dedupeSorted(times []unit.Time) []unit.Time {
	sort.Slice(times, func(i, j int) bool { return times[i].Less(times[j]) })
	out := times[:0:0]
	for i, t := range times {
		if i == 0 || t.Cmp(out[len(out)-1]) != 0 {
			out = append(out, t)
		}
	}
	return out
}
