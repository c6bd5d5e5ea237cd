package style

import (
	"github.com/sandflow/ttconv/either"
	"github.com/sandflow/ttconv/unit"
)

// Node is the minimal view of a styled element the cascade needs. package
// cdm's *Element implements it; keeping the interface here (rather than
// importing cdm) avoids a cascade->cdm->style import cycle, following the
// same separation the teacher keeps between dom/style (generic cascade
// machinery) and dom/styledtree (the concrete tree it operates over).
type Node interface {
	// InlineValue returns the element's own inline value for p, if any.
	InlineValue(p Name) (Value, bool)
	// ActiveValue returns the value an animation step contributes for p
	// at time t, if any step on this element is active at t.
	ActiveValue(p Name, t unit.Time) (Value, bool)
	// StyleParent returns the node style inheritance recurses to: the
	// element's parent in the content tree.
	StyleParent() (Node, bool)
	// Region returns the region node this element (or the nearest
	// ancestor that sets one) refers to, if any.
	Region() (Node, bool)
}

// InitialValues looks up a document's initial-values table (spec §3.2).
type InitialValues interface {
	InitialValue(p Name) (Value, bool)
}

// Resolve computes property p on node n at time t, per the five-step
// priority order of spec §3.4: active animation, inline value, inherited
// value (walking to the root, or to a referenced region for
// region-inherited properties), document initial value, and finally the
// property's table default.
//
// The returned Either reports provenance: Right holds a value found
// locally on n (an active animation step or an inline value); Left holds
// any other value: one obtained by walking up the inheritance chain
// (parent or region), the document initial value, or the table default.
// This lets callers (the ISD generator's position/origin folding)
// distinguish "this element set it" from "this element did not set it"
// without a second traversal.
func Resolve(n Node, p Name, t unit.Time, initial InitialValues) either.Either[Value, Value] {
	meta, ok := Table[p]
	if !ok {
		tracer().Errorf("style: resolving unknown property %q", p)
		return either.Right[Value, Value](Value{})
	}

	if v, ok := n.ActiveValue(p, t); ok {
		return either.Right[Value, Value](v)
	}
	if v, ok := n.InlineValue(p); ok {
		return either.Right[Value, Value](v)
	}

	if meta.Inheritable {
		if parent, ok := n.StyleParent(); ok {
			return either.Left[Value, Value](valueOf(Resolve(parent, p, t, initial)))
		}
	}
	if meta.InheritsFromRegion {
		if region, ok := n.Region(); ok {
			return either.Left[Value, Value](valueOf(Resolve(region, p, t, initial)))
		}
	}

	if v, ok := initial.InitialValue(p); ok {
		return either.Left[Value, Value](v)
	}
	return either.Left[Value, Value](meta.Default)
}

// valueOf extracts the Value out of an Either[Value,Value] regardless of
// which side it is tagged, since both sides of a cascade result hold the
// same underlying domain. The matcher results are compared with nil
// rather than in a switch on the matcher: Value holds a slice, so a
// matcher over Value cannot be compared with ==.
func valueOf(e either.Either[Value, Value]) Value {
	var v Value
	if e.Match().Left(&v) != nil {
		return v
	}
	if e.Match().Right(&v) != nil {
		return v
	}
	panic("unreachable: either value matches neither Left nor Right")
}

// ComputedValue is a convenience wrapper around Resolve that discards
// provenance, for callers (isd.generator) that only need the concrete
// value.
func ComputedValue(n Node, p Name, t unit.Time, initial InitialValues) Value {
	return valueOf(Resolve(n, p, t, initial))
}
