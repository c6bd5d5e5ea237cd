package isd

import (
	"math/big"

	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/either"
	"github.com/sandflow/ttconv/style"
	"github.com/sandflow/ttconv/unit"
)

// Generate snapshots doc at t into an ISD (spec §4.2): a flat list of
// regions materialized at t, each holding a deep, style-resolved,
// timing-free copy of doc's body restricted to content active at t.
// Grounded on isd.py's ISD.from_model, simplified to the seven steps
// spec §4.2 names (region materialization and subtree construction are
// folded into one walk per region rather than isd.py's single recursive
// _process_element parameterized by selected_region/inherited_region,
// since this module's default-region fallback, spec §4.2 step 3's last
// clause, removes the need for isd.py's "keep unbound transit nodes in
// every region" pass-through rule: an element's effective region is a
// single resolved id, not a per-region question).
func Generate(doc *cdm.Document, t unit.Time) (*Document, error) {
	if t.Cmp(unit.Zero) < 0 {
		return nil, &Error{Kind: KindDomain, Message: "negative snapshot time"}
	}

	res := unit.Resolution{
		CellColumns: doc.CellResolution().Columns, CellRows: doc.CellResolution().Rows,
		PixelWidth: doc.PixelResolution().Width, PixelHeight: doc.PixelResolution().Height,
	}

	defaultRegionID := ""
	regions := doc.Regions()
	if len(regions) > 0 {
		defaultRegionID = regions[0].RegionID
	}

	out := &Document{
		CellResolution:  doc.CellResolution(),
		PixelResolution: doc.PixelResolution(),
	}
	switch m := doc.Lang().Match(); m {
	case m.Just(&out.Lang):
	case m.Nothing():
	}

	for _, region := range regions {
		node, err := buildRegion(doc, region, defaultRegionID, t, res)
		if err != nil {
			return nil, err
		}
		if node != nil {
			out.Regions = append(out.Regions, node)
		}
	}
	return out, nil
}

// buildRegion materializes one region (spec §4.2 steps 2-3), returning
// nil if it is not materialized at t.
func buildRegion(doc *cdm.Document, region *cdm.Element, defaultRegionID string, t unit.Time, res unit.Resolution) (*Node, error) {
	regionSpan := elementSpan(region, rootSpan)
	regionActive := regionSpan.active(t)

	var children []*Node
	if body := doc.Body(); body != nil && regionActive {
		built, err := buildForRegion(doc, body, rootSpan, region, defaultRegionID, t, res)
		if err != nil {
			return nil, err
		}
		children = built
	}

	showBackground, _ := style.ComputedValue(region, style.ShowBackground, t, doc.Initial).Enum()
	if len(children) == 0 && showBackground != "always" {
		return nil, nil
	}

	node := resolveNode(doc, region, t, res, defaultRegionID)
	node.Children = children
	return node, nil
}

// buildForRegion walks e's subtree looking for content whose effective
// region is target (spec §4.2 step 3). An element that does not itself
// bind to target contributes no node of its own; its matching
// descendants are spliced directly into the nearest ancestor that does
// bind to target (or, if none does, into target's top-level child list),
// per spec's "attached to the nearest active ancestor that does bind to
// R" clause.
func buildForRegion(doc *cdm.Document, e *cdm.Element, parentSpan span, target *cdm.Element, defaultRegionID string, t unit.Time, res unit.Resolution) ([]*Node, error) {
	s := elementSpan(e, parentSpan)
	if !s.active(t) {
		return nil, nil
	}

	effID, err := effectiveRegionID(doc, e, defaultRegionID)
	if err != nil {
		return nil, err
	}

	if effID != target.RegionID {
		var out []*Node
		for _, c := range e.Children() {
			kids, err := buildForRegion(doc, c, s, target, defaultRegionID, t, res)
			if err != nil {
				return nil, err
			}
			out = append(out, kids...)
		}
		return out, nil
	}

	node := resolveNode(doc, e, t, res, defaultRegionID)
	for _, c := range e.Children() {
		kids, err := buildForRegion(doc, c, s, target, defaultRegionID, t, res)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, kids...)
	}

	node = postProcess(node)
	if node == nil {
		return nil, nil
	}
	return []*Node{node}, nil
}

// effectiveRegionID resolves E's effective region (spec §4.2 step 3): E's
// own region-ref if set, else the nearest ancestor's, else defaultID. A
// region-ref that does not resolve in the document is a missing-region
// error (spec §4.2 "Errors"), distinct from the "no ref anywhere" case
// that falls back to the default. cdm.Element.EffectiveRegion collapses
// both into ok=false, so this walks the chain itself rather than reusing
// it.
func effectiveRegionID(doc *cdm.Document, e *cdm.Element, defaultID string) (string, error) {
	for cur := e; cur != nil; cur = ancestorOf(cur) {
		var id string
		switch m := cur.RegionRef().Match(); m {
		case m.Just(&id):
			if _, ok := doc.Region(id); !ok {
				return "", &Error{Kind: KindMissingRegion, Message: "region-ref does not resolve: " + id}
			}
			return id, nil
		case m.Nothing():
		}
	}
	return defaultID, nil
}

func ancestorOf(e *cdm.Element) *cdm.Element {
	p, ok := e.StyleParent()
	if !ok {
		return nil
	}
	return p.(*cdm.Element)
}

// resolveNode builds a style-resolved, timing-stripped Node copy of e
// (spec §4.2 steps 4-5).
func resolveNode(doc *cdm.Document, e *cdm.Element, t unit.Time, res unit.Resolution, defaultRegionID string) *Node {
	node := &Node{Kind: e.Kind, Text: e.Text}

	var id string
	switch m := e.ID().Match(); m {
	case m.Just(&id):
		node.ID = id
	case m.Nothing():
	}

	var lang string
	switch m := e.Lang().Match(); m {
	case m.Just(&lang):
		node.Lang = lang
	case m.Nothing():
	}

	if e.Kind == cdm.KindRegion {
		node.RegionID = e.RegionID
	} else if effID, err := effectiveRegionID(doc, e, defaultRegionID); err == nil {
		node.RegionID = effID
	}

	if e.Kind != cdm.KindText && e.Kind != cdm.KindBr {
		node.Styles = computeStyles(doc, e, t, res)
	}

	return node
}

// computeStyles resolves every vocabulary property on e at t (spec §4.2
// step 4) and normalizes the length-domain results to rh/rw (step 5),
// folding `position` into `origin` when origin was not itself authored.
func computeStyles(doc *cdm.Document, e *cdm.Element, t unit.Time, res unit.Resolution) map[style.Name]style.Value {
	out := make(map[style.Name]style.Value, len(style.Table))

	extent := normalizeLengths(style.ComputedValue(e, style.Extent, t, doc.Initial), res)
	originResolved := style.Resolve(e, style.Origin, t, doc.Initial)
	positionResolved := style.Resolve(e, style.Position, t, doc.Initial)

	for name := range style.Table {
		switch name {
		case style.Position:
			continue // folded into origin below, never emitted on its own
		case style.Origin:
			out[style.Origin] = foldPositionIntoOrigin(originResolved, positionResolved, extent, res)
		case style.Extent:
			out[style.Extent] = extent
		default:
			out[name] = normalizeLengths(style.ComputedValue(e, name, t, doc.Initial), res)
		}
	}
	return out
}

// foldPositionIntoOrigin implements spec §4.2 step 5: if origin was
// explicitly authored (animation or inline, i.e. Either.Right), it wins
// outright, normalized as usual; otherwise an explicitly authored
// position is mapped onto origin via the CSS background-position
// formula (origin = position-fraction * (100% - extent), per axis,
// computed in already-root-relative percentages so the result needs no
// further unit conversion); if neither was authored, the origin the
// cascade resolved (inherited, document initial or table default
// (0%, 0%)) stands. The matchers are compared with nil rather than
// switched on, since style.Value is not comparable with ==.
func foldPositionIntoOrigin(origin, position either.Either[style.Value, style.Value], extent style.Value, res unit.Resolution) style.Value {
	var originLocal, positionLocal style.Value
	if origin.Match().Right(&originLocal) != nil {
		return normalizeLengths(originLocal, res)
	}
	origin.Match().Left(&originLocal)
	if position.Match().Right(&positionLocal) != nil {
		return backgroundPositionToOrigin(positionLocal, extent, res)
	}
	return normalizeLengths(originLocal, res)
}

// backgroundPositionToOrigin computes origin = position% * (100% -
// extent%) per axis, all three operands already normalized to rh/rw so
// their numeric values share a common 0-100 basis regardless of the
// units they were originally authored in.
func backgroundPositionToOrigin(position, extent style.Value, res unit.Resolution) style.Value {
	posPair, ok := normalizeLengths(position, res).LengthPair()
	if !ok {
		return position
	}
	extPair, ok := extent.LengthPair()
	if !ok {
		return position
	}

	originX := backgroundPositionAxis(posPair.Left, extPair.Left, unit.RootWidth)
	originY := backgroundPositionAxis(posPair.Right, extPair.Right, unit.RootHeight)
	return style.NewLengthPairValue(originX, originY)
}

func backgroundPositionAxis(position, extent unit.Length, u unit.Unit) unit.Length {
	hundred := big.NewRat(100, 1)
	room := new(big.Rat).Sub(hundred, extent.Value)
	fraction := new(big.Rat).Quo(position.Value, hundred)
	origin := new(big.Rat).Mul(fraction, room)
	return unit.Length{Value: origin, Unit: u}
}
