package cdm

import (
	"regexp"

	"github.com/sandflow/ttconv/maybe"
	"github.com/sandflow/ttconv/style"
	"github.com/sandflow/ttconv/tree"
	"github.com/sandflow/ttconv/unit"
)

// xmlIDPattern is the xml:id grammar model.py's ContentElement.set_id
// validates against.
var xmlIDPattern = regexp.MustCompile(`^[a-zA-Z_][\w.-]*$`)

// Kind tags an Element's position in the closed content-element variant
// set (spec §3.3).
type Kind int

const (
	KindBody Kind = iota
	KindDiv
	KindP
	KindSpan
	KindRuby
	KindRb
	KindRt
	KindRbc
	KindRtc
	KindRp
	KindBr
	KindText
	KindRegion
)

func (k Kind) String() string {
	switch k {
	case KindBody:
		return "body"
	case KindDiv:
		return "div"
	case KindP:
		return "p"
	case KindSpan:
		return "span"
	case KindRuby:
		return "ruby"
	case KindRb:
		return "rb"
	case KindRt:
		return "rt"
	case KindRbc:
		return "rbc"
	case KindRtc:
		return "rtc"
	case KindRp:
		return "rp"
	case KindBr:
		return "br"
	case KindText:
		return "text"
	case KindRegion:
		return "region"
	default:
		return "?"
	}
}

// AnimationStep is a single `(begin, end, property, value)` override
// (spec §3.3), in the element's own parallel time coordinate.
type AnimationStep struct {
	Begin, End unit.Time
	Property   style.Name
	Value      style.Value
}

// Element is a single content-element node (spec §3.3). *Element embeds
// *tree.Node[*Element] so it is itself both the tree node and its own
// payload — the same self-referential embedding the teacher's
// dom/styledtree.StyNode uses — so callers walk the tree with
// *tree.Node[*Element] machinery while reading/writing domain fields
// directly on the Element.
type Element struct {
	*tree.Node[*Element]

	Kind Kind
	doc  *Document
	id   maybe.Maybe[string]

	styles    map[style.Name]style.Value
	begin     maybe.Maybe[unit.Time]
	end       maybe.Maybe[unit.Time]
	steps     []AnimationStep
	regionRef maybe.Maybe[string]
	lang      maybe.Maybe[string]

	// RegionID is this Region element's own id (KindRegion only).
	RegionID string

	// Text is this element's character payload (KindText only).
	Text string
}

func newElement(kind Kind) *Element {
	e := &Element{
		Kind:      kind,
		id:        maybe.Nothing[string](),
		styles:    make(map[style.Name]style.Value),
		begin:     maybe.Nothing[unit.Time](),
		end:       maybe.Nothing[unit.Time](),
		regionRef: maybe.Nothing[string](),
		lang:      maybe.Nothing[string](),
	}
	e.Node = tree.NewNode(e)
	return e
}

// NewText creates a detached Text element carrying s.
func NewText(s string) *Element {
	e := newElement(KindText)
	e.Text = s
	return e
}

// NewBr creates a detached Br element.
func NewBr() *Element { return newElement(KindBr) }

// New creates a detached element of the given content kind (anything
// other than KindText/KindRegion, which have their own constructors).
func New(kind Kind) *Element { return newElement(kind) }

// NewRegion creates a detached Region element with the given id.
func NewRegion(id string) *Element {
	e := newElement(KindRegion)
	e.RegionID = id
	return e
}

// Document returns the document this element belongs to, or nil if it is
// detached (spec §3.6: "an element may belong to at most one document").
func (e *Element) Document() *Document { return e.doc }

// SetID sets e's xml:id, validating its lexical form (model.py's
// ContentElement.set_id) and, if e is attached to a document, its
// uniqueness within that document (spec §4.1/§7 duplicate-id, a fatal
// referential-integrity error).
func (e *Element) SetID(id string) error {
	if !xmlIDPattern.MatchString(id) {
		return &Error{Kind: KindDomain, Message: "element id must be a valid xml:id string: " + id}
	}
	if e.doc != nil {
		if err := e.doc.registerID(id); err != nil {
			return err
		}
	}
	e.id = maybe.Just(id)
	return nil
}

// ID returns e's xml:id, if set.
func (e *Element) ID() maybe.Maybe[string] { return e.id }

// --- inline style map ---------------------------------------------------

// SetStyle sets e's inline value for p, after validating it against the
// property's declared domain (spec §4.1 "type-mismatch" error).
func (e *Element) SetStyle(p style.Name, v style.Value) error {
	meta, ok := style.Table[p]
	if !ok {
		return &Error{Kind: KindDomain, Message: "unknown style property: " + string(p)}
	}
	if v.Kind() != meta.Kind {
		return &Error{Kind: KindTypeMismatch, Message: "style value for " + string(p) + " outside declared domain"}
	}
	e.styles[p] = v
	return nil
}

// InlineStyle returns e's inline value for p, if any, with no cascading.
func (e *Element) InlineStyle(p style.Name) (style.Value, bool) {
	v, ok := e.styles[p]
	return v, ok
}

// UnsetStyle removes e's inline value for p.
func (e *Element) UnsetStyle(p style.Name) {
	delete(e.styles, p)
}

// --- timing --------------------------------------------------------------

// SetBegin sets e's begin offset, relative to its parent (spec §3.3).
func (e *Element) SetBegin(t unit.Time) { e.begin = maybe.Just(t) }

// SetEnd sets e's end offset, relative to its parent (spec §3.3).
func (e *Element) SetEnd(t unit.Time) { e.end = maybe.Just(t) }

// Begin returns e's begin offset, if set.
func (e *Element) Begin() maybe.Maybe[unit.Time] { return e.begin }

// End returns e's end offset, if set.
func (e *Element) End() maybe.Maybe[unit.Time] { return e.end }

// --- animation steps -----------------------------------------------------

// AddAnimationStep appends an animation step to e.
func (e *Element) AddAnimationStep(step AnimationStep) {
	e.steps = append(e.steps, step)
}

// AnimationSteps returns e's animation steps in declaration order.
func (e *Element) AnimationSteps() []AnimationStep {
	return e.steps
}

// --- region reference ------------------------------------------------

// SetRegionRef sets e's region reference by id.
func (e *Element) SetRegionRef(id string) { e.regionRef = maybe.Just(id) }

// ClearRegionRef clears e's region reference.
func (e *Element) ClearRegionRef() { e.regionRef = maybe.Nothing[string]() }

// RegionRef returns e's own region reference, if set (does not walk
// ancestors; see EffectiveRegion for that).
func (e *Element) RegionRef() maybe.Maybe[string] { return e.regionRef }

// EffectiveRegion returns the region element e's content is displayed in:
// e's own region-ref if set, else the nearest ancestor's region-ref
// (spec §4.2 step 3). Returns ok=false if neither e nor any ancestor
// refers to a region.
func (e *Element) EffectiveRegion() (region *Element, ok bool) {
	for cur := e; cur != nil; cur = cur.parentElement() {
		var id string
		switch m := cur.regionRef.Match(); m {
		case m.Just(&id):
			if e.doc != nil {
				if r, found := e.doc.Region(id); found {
					return r, true
				}
			}
			return nil, false
		case m.Nothing():
		}
	}
	return nil, false
}

func (e *Element) parentElement() *Element {
	p := e.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// --- language tag ---------------------------------------------------

// SetLang sets e's language tag.
func (e *Element) SetLang(lang string) { e.lang = maybe.Just(lang) }

// Lang returns e's language tag, if set, else walks up to the nearest
// ancestor (or document) that sets one.
func (e *Element) Lang() maybe.Maybe[string] {
	var s string
	switch m := e.lang.Match(); m {
	case m.Just(&s):
		return e.lang
	case m.Nothing():
	}
	if p := e.parentElement(); p != nil {
		return p.Lang()
	}
	if e.doc != nil {
		return e.doc.Lang()
	}
	return maybe.Nothing[string]()
}

// --- style.Node implementation --------------------------------------

// InlineValue implements style.Node.
func (e *Element) InlineValue(p style.Name) (style.Value, bool) {
	return e.InlineStyle(p)
}

// ActiveValue implements style.Node: the value of the animation step
// covering p at time t, if any (spec §3.4 step 1, §3.5 for clipping).
// t is document time; step times are offsets from e's own begin, the
// sum of the begin offsets of e and its ancestors.
func (e *Element) ActiveValue(p style.Name, t unit.Time) (style.Value, bool) {
	origin := unit.Zero
	for cur := e; cur != nil; cur = cur.parentElement() {
		var b unit.Time
		switch m := cur.begin.Match(); m {
		case m.Just(&b):
			origin = origin.Add(b)
		case m.Nothing():
		}
	}
	for _, step := range e.steps {
		if step.Property != p {
			continue
		}
		if !t.Less(origin.Add(step.Begin)) && t.Less(origin.Add(step.End)) {
			return step.Value, true
		}
	}
	return style.Value{}, false
}

// StyleParent implements style.Node.
func (e *Element) StyleParent() (style.Node, bool) {
	p := e.parentElement()
	if p == nil {
		return nil, false
	}
	return p, true
}

// Region implements style.Node: the region e's content is bound to, for
// region-inherited properties (spec §3.4's last paragraph).
func (e *Element) Region() (style.Node, bool) {
	r, ok := e.EffectiveRegion()
	if !ok {
		return nil, false
	}
	return r, true
}
