package cdm

import (
	"github.com/sandflow/ttconv/maybe"
	"github.com/sandflow/ttconv/style"
)

// CellResolution is the value of the ttp:cellResolution attribute (spec §3.2
// item c), used by the ISD generator to normalize `c`-unit lengths.
type CellResolution struct {
	Rows, Columns int
}

// PixelResolution is the extent of the root container in pixels (spec §3.2
// item c / §4.2 step 5), used to fold `px` lengths into `rh`/`rw`.
type PixelResolution struct {
	Width, Height int
}

// ActiveArea is the active area within the root container, as a fraction of
// its extent (model.py's ActiveAreaType).
type ActiveArea struct {
	LeftOffset, TopOffset, Width, Height float64
}

// DefaultCellResolution is model.py's Root.__init__ default: 15 rows by 32
// columns.
var DefaultCellResolution = CellResolution{Rows: 15, Columns: 32}

// DefaultPixelResolution is model.py's Root.__init__ default: 1920x1080.
var DefaultPixelResolution = PixelResolution{Width: 1920, Height: 1080}

// Document is the root of a Canonical Document Model tree (spec §3.2): it
// owns the body subtree, the out-of-line region set (in document order, per
// spec §3.5's determinism requirement that "region order [is] preserved as
// in D"), and the document's initial-values table used by cascade step 4
// (spec §3.4).
type Document struct {
	body    *Element
	regions map[string]*Element
	order   []string // region ids in insertion order

	Initial *style.InitialValueMap
	ids     map[string]bool

	cellRes    CellResolution
	pxRes      PixelResolution
	activeArea maybe.Maybe[ActiveArea]
	dar        maybe.Maybe[float64]
	lang       maybe.Maybe[string]
}

// NewDocument returns an empty document with the TTML2 default cell/pixel
// resolutions.
func NewDocument() *Document {
	return &Document{
		regions: make(map[string]*Element),
		ids:     make(map[string]bool),
		Initial: style.NewInitialValueMap(),
		cellRes: DefaultCellResolution,
		pxRes:   DefaultPixelResolution,

		activeArea: maybe.Nothing[ActiveArea](),
		dar:        maybe.Nothing[float64](),
		lang:       maybe.Nothing[string](),
	}
}

// registerID records id as taken, failing with KindDuplicateID (spec §4.1/
// §7) if another element in the document already carries it.
func (d *Document) registerID(id string) error {
	if d.ids[id] {
		return &Error{Kind: KindDuplicateID, Message: "duplicate element id: " + id}
	}
	d.ids[id] = true
	return nil
}

// Body returns the document's body element, or nil.
func (d *Document) Body() *Element { return d.body }

// SetBody sets d's body element. body must be a KindBody element with no
// parent that belongs to no document or to d already (model.py's
// Document.set_body: "Body must be a root element" and "Body does not
// belong to this document"); SetBody stamps body and its descendants
// with d.
func (d *Document) SetBody(body *Element) error {
	if body == nil {
		d.body = nil
		return nil
	}
	if body.Kind != KindBody {
		return &Error{Kind: KindStructure, Message: "document body must be a body element"}
	}
	if body.Node.Parent() != nil {
		return &Error{Kind: KindStructure, Message: "body must be a root element"}
	}
	if body.doc != nil && body.doc != d {
		return &Error{Kind: KindStructure, Message: "body belongs to a different document"}
	}
	if err := stampDocument(body, d); err != nil {
		return err
	}
	d.body = body
	return nil
}

// PutRegion adds region to the document, replacing any existing region with
// the same id but preserving its original position in region order
// (model.py's Document.put_region).
func (d *Document) PutRegion(region *Element) error {
	if region.Kind != KindRegion {
		return &Error{Kind: KindStructure, Message: "PutRegion requires a region element"}
	}
	if region.doc != nil && region.doc != d {
		return &Error{Kind: KindStructure, Message: "region belongs to a different document"}
	}
	region.doc = d
	if _, exists := d.regions[region.RegionID]; !exists {
		d.order = append(d.order, region.RegionID)
	}
	d.regions[region.RegionID] = region
	return nil
}

// RemoveRegion removes the region with the given id from the document and
// clears the region reference of every content element that referred to it
// (model.py's Document.remove_region).
func (d *Document) RemoveRegion(id string) {
	if _, ok := d.regions[id]; !ok {
		return
	}
	if d.body != nil {
		for _, e := range Descendants(d.body) {
			var refID string
			switch m := e.RegionRef().Match(); m {
			case m.Just(&refID):
				if refID == id {
					e.ClearRegionRef()
				}
			case m.Nothing():
			}
		}
	}
	delete(d.regions, id)
	for i, rid := range d.order {
		if rid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Region returns the region with the given id, if any.
func (d *Document) Region(id string) (*Element, bool) {
	r, ok := d.regions[id]
	return r, ok
}

// Regions returns the document's regions in insertion order (spec §3.5
// determinism: region order is preserved as in D).
func (d *Document) Regions() []*Element {
	out := make([]*Element, len(d.order))
	for i, id := range d.order {
		out[i] = d.regions[id]
	}
	return out
}

// SetCellResolution sets d's cell resolution (rows x columns), used to
// resolve `c`-unit lengths.
func (d *Document) SetCellResolution(r CellResolution) { d.cellRes = r }

// CellResolution returns d's cell resolution.
func (d *Document) CellResolution() CellResolution { return d.cellRes }

// SetPixelResolution sets d's root-container pixel extent, used to fold
// `px` lengths into `rh`/`rw` (spec §4.2 step 5).
func (d *Document) SetPixelResolution(r PixelResolution) { d.pxRes = r }

// PixelResolution returns d's root-container pixel extent.
func (d *Document) PixelResolution() PixelResolution { return d.pxRes }

// SetActiveArea sets d's active area, as a fraction of the root container.
func (d *Document) SetActiveArea(a ActiveArea) { d.activeArea = maybe.Just(a) }

// ActiveArea returns d's active area, if set.
func (d *Document) ActiveArea() maybe.Maybe[ActiveArea] { return d.activeArea }

// SetDisplayAspectRatio sets d's display aspect ratio; clear with
// maybe.Nothing to let the document fill the root container area.
func (d *Document) SetDisplayAspectRatio(dar maybe.Maybe[float64]) { d.dar = dar }

// DisplayAspectRatio returns d's display aspect ratio, if set.
func (d *Document) DisplayAspectRatio() maybe.Maybe[float64] { return d.dar }

// SetLang sets the document's default language tag (spec §3.2 item c).
func (d *Document) SetLang(lang string) { d.lang = maybe.Just(lang) }

// Lang returns the document's default language tag, if set.
func (d *Document) Lang() maybe.Maybe[string] { return d.lang }
