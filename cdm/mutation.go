package cdm

import (
	"github.com/sandflow/ttconv/result"
	"github.com/sandflow/ttconv/tree"
)

// PushChild appends child to parent's children, after checking the
// content-element grammar (spec §3.3, §4.1 "every mutation preserves
// grammar validity") and the referential-integrity rules model.py's base
// ContentElement.push_child enforces: child must be detached and must
// belong to the same document as parent (or be document-less, for a tree
// being built before attachment). On success it returns parent so callers
// can chain; on failure parent is left untouched and the *Error is
// returned through the Result.
func PushChild(parent, child *Element) result.Result[*Element] {
	if err := ValidateChild(parent.Kind, child.Kind); err != nil {
		return result.Err[*Element](err)
	}
	if err := attach(parent, child); err != nil {
		return result.Err[*Element](err)
	}
	parent.Node.AddChild(child.Node)
	return result.Ok(parent)
}

// PushRubyChildren replaces ruby's children with children as a group,
// after validating the sequence against ValidateRubyChildren (spec §3.3).
// ruby must have no existing children, mirroring model.py's
// Ruby.push_children guard.
func PushRubyChildren(ruby *Element, children []*Element) result.Result[*Element] {
	if ruby.Kind != KindRuby {
		return result.Err[*Element](&Error{Kind: KindStructure, Message: "PushRubyChildren requires a ruby element"})
	}
	if ruby.Node.ChildCount() > 0 {
		return result.Err[*Element](&Error{Kind: KindStructure, Message: "remove all ruby children before adding more"})
	}
	kinds := make([]Kind, len(children))
	for i, c := range children {
		kinds[i] = c.Kind
	}
	if err := ValidateRubyChildren(kinds); err != nil {
		return result.Err[*Element](err)
	}
	for _, c := range children {
		if err := attach(ruby, c); err != nil {
			return result.Err[*Element](err)
		}
		ruby.Node.AddChild(c.Node)
	}
	return result.Ok(ruby)
}

// PushRtcChildren appends children to rtc as a group, after validating
// the new children's sequence on its own against ValidateRtcChildren
// (spec §3.3); rtc's existing children are kept.
func PushRtcChildren(rtc *Element, children []*Element) result.Result[*Element] {
	if rtc.Kind != KindRtc {
		return result.Err[*Element](&Error{Kind: KindStructure, Message: "PushRtcChildren requires an rtc element"})
	}
	kinds := make([]Kind, len(children))
	for i, c := range children {
		kinds[i] = c.Kind
	}
	if err := ValidateRtcChildren(kinds); err != nil {
		return result.Err[*Element](err)
	}
	for _, c := range children {
		if err := attach(rtc, c); err != nil {
			return result.Err[*Element](err)
		}
		rtc.Node.AddChild(c.Node)
	}
	return result.Ok(rtc)
}

// attach validates the referential-integrity preconditions model.py's
// ContentElement.push_child checks before linking, and stamps child (and
// its whole subtree) with parent's document.
func attach(parent, child *Element) error {
	if child.Node.Parent() != nil {
		return &Error{Kind: KindStructure, Message: "element already has a parent"}
	}
	if child == parent {
		return &Error{Kind: KindStructure, Message: "cannot add an element to its own descendents"}
	}
	if child.doc != nil && parent.doc != nil && child.doc != parent.doc {
		return &Error{Kind: KindStructure, Message: "element belongs to a different document"}
	}
	if parent.doc != nil {
		return stampDocument(child, parent.doc)
	}
	return nil
}

// stampDocument sets doc on e and every descendant, registering the xml:id
// of each element that already has one so a subtree built while detached
// still surfaces duplicate-id (spec §4.1/§7) once attached.
func stampDocument(e *Element, doc *Document) error {
	if err := registerIfIDSet(e, doc); err != nil {
		return err
	}
	e.doc = doc
	nodes, err := tree.NewWalker[*Element](e.Node).AllDescendents().Get()
	if err != nil {
		return nil
	}
	for _, n := range nodes {
		if err := registerIfIDSet(n.Payload, doc); err != nil {
			return err
		}
		n.Payload.doc = doc
	}
	return nil
}

func registerIfIDSet(e *Element, doc *Document) error {
	var id string
	switch m := e.id.Match(); m {
	case m.Just(&id):
		return doc.registerID(id)
	case m.Nothing():
	}
	return nil
}

// RemoveChild detaches child from its parent. A no-op if child is already
// detached.
func RemoveChild(child *Element) {
	child.Node.Isolate()
}

// Children returns e's direct children in document order.
func (e *Element) Children() []*Element {
	nodes := e.Node.Children(true)
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = n.Payload
	}
	return out
}
