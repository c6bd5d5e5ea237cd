package isd

import (
	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/style"
	"github.com/sandflow/ttconv/unit"
)

// normalizeLengths converts every length carried by v to rh/rw (spec
// §4.2 step 5), leaving non-length domains untouched. The first element
// of a pair/quad is treated as the horizontal axis, matching the
// property table's (width, height) / (top, right, bottom, left)
// conventions; fontSize, the lone bare-length property, is treated as
// vertical since it is conventionally sized against cell rows.
func normalizeLengths(v style.Value, res unit.Resolution) style.Value {
	switch v.Kind() {
	case style.KindLength:
		l, _ := v.Length()
		return style.NewLengthValue(unit.ToRootRelative(l, res, false))
	case style.KindLengthPair:
		pair, _ := v.LengthPair()
		return style.NewLengthPairValue(
			unit.ToRootRelative(pair.Left, res, true),
			unit.ToRootRelative(pair.Right, res, false),
		)
	case style.KindLengthQuad:
		quad, _ := v.LengthQuad()
		return style.NewLengthQuadValue(
			unit.ToRootRelative(quad[0], res, false),
			unit.ToRootRelative(quad[1], res, true),
			unit.ToRootRelative(quad[2], res, false),
			unit.ToRootRelative(quad[3], res, true),
		)
	default:
		return v
	}
}

// postProcess applies spec §4.2 step 6 (text collapse, empty-subtree
// pruning) and the Display:none prune isd.py folds into the same pass
// over _process_element. Returns nil if node should not appear in its
// parent's child list at all.
func postProcess(node *Node) *Node {
	if node.Styles != nil {
		if d, ok := node.Styles[style.Display]; ok {
			if enum, ok := d.Enum(); ok && enum == "none" {
				return nil
			}
		}
	}

	node.Children = mergeAdjacentText(node.Children)

	if len(node.Children) == 0 && node.Text == "" && prunableEmpty(node.Kind) {
		return nil
	}
	return node
}

// prunableEmpty reports whether an empty node of this kind should be
// dropped (spec §4.2 step 6: "Empty Span/P subtrees... are pruned").
// Br and Text carry meaning even with no children/text of their own;
// Region is decided separately by buildRegion's showBackground check.
func prunableEmpty(k cdm.Kind) bool {
	switch k {
	case cdm.KindBr, cdm.KindText, cdm.KindRegion:
		return false
	default:
		return true
	}
}

// mergeAdjacentText merges consecutive Text siblings (spec §4.2 step 6).
func mergeAdjacentText(children []*Node) []*Node {
	out := make([]*Node, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Kind == cdm.KindText && c.Kind == cdm.KindText {
			out[n-1] = &Node{Kind: cdm.KindText, Text: out[n-1].Text + c.Text}
			continue
		}
		out = append(out, c)
	}
	return out
}
