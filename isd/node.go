package isd

import (
	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/style"
)

// Node is a single element of a flat, style-resolved, timing-free ISD tree
// (spec §4.2): a snapshot copy of a cdm.Element with its full style map
// resolved to computed values and its timing/animation stripped (spec §4.2
// step 7).
type Node struct {
	Kind     cdm.Kind
	ID       string
	Lang     string
	Text     string
	RegionID string
	Styles   map[style.Name]style.Value
	Children []*Node
}

// Document is the result of one ISD snapshot (spec §4.2): a flat list of
// regions materialized at the snapshot instant, in the order they appear
// in the source document (spec §3.5's determinism guarantee).
type Document struct {
	Regions         []*Node
	Lang            string
	CellResolution  cdm.CellResolution
	PixelResolution cdm.PixelResolution
}

// Region returns d's materialized region with the given id, if any.
func (d *Document) Region(id string) (*Node, bool) {
	for _, r := range d.Regions {
		if r.RegionID == id {
			return r, true
		}
	}
	return nil, false
}
