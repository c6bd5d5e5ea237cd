package cdm

// allowedChildren maps a parent Kind to the set of Kinds it may directly
// contain, for parents whose grammar is a simple membership test (spec
// §3.3). Ruby and Rtc require their children to be validated as an ordered
// group (see ValidateRubyChildren, ValidateRtcChildren) and are handled
// separately in ValidateChild. Grounded on model.py's per-class push_child
// overrides (Body.push_child, Div.push_child, P.push_child, Span.push_child,
// Rb.push_child, Rbc.push_child, Rp.push_child, Rt.push_child).
var allowedChildren = map[Kind]map[Kind]bool{
	KindBody: {KindDiv: true},
	KindDiv:  {KindP: true, KindDiv: true},
	KindP:    {KindSpan: true, KindBr: true, KindRuby: true},
	KindSpan: {KindSpan: true, KindBr: true, KindText: true},
	KindRb:   {KindSpan: true},
	KindRbc:  {KindRb: true},
	KindRp:   {KindSpan: true},
	KindRt:   {KindSpan: true},
}

// ValidateChild reports whether child may be pushed onto parent as a single
// child (spec §3.3's grammar table). Br, Text and Region never accept
// children (model.py's Br.push_child, Text.push_child and
// Region.push_child all unconditionally raise). Ruby and Rtc only accept
// children as a validated group, mirroring model.py's Ruby.push_child and
// Rtc.push_child, which raise regardless of the child offered.
func ValidateChild(parent, child Kind) error {
	switch parent {
	case KindBr, KindText, KindRegion:
		return &Error{Kind: KindStructure, Message: parent.String() + " elements cannot have children"}
	case KindRuby:
		return &Error{Kind: KindStructure, Message: "ruby children must be added as a group with PushRubyChildren"}
	case KindRtc:
		return &Error{Kind: KindStructure, Message: "rtc children must be added as a group with PushRtcChildren"}
	}
	set, ok := allowedChildren[parent]
	if !ok || !set[child] {
		return &Error{Kind: KindStructure, Message: "children of " + parent.String() + " cannot be " + child.String()}
	}
	return nil
}

// rubyPatterns are the four child-kind sequences TTML2 permits under ruby
// (spec §3.3), grounded on model.py's Ruby.push_children.
var rubyPatterns = [][]Kind{
	{KindRb, KindRt},
	{KindRb, KindRp, KindRt, KindRp},
	{KindRbc, KindRtc},
	{KindRbc, KindRtc, KindRtc},
}

// ValidateRubyChildren reports whether the ordered kind sequence conforms to
// one of ruby's four permitted shapes.
func ValidateRubyChildren(kinds []Kind) error {
	for _, p := range rubyPatterns {
		if kindsEqual(kinds, p) {
			return nil
		}
	}
	return &Error{Kind: KindStructure, Message: "children of ruby do not conform to requirements"}
}

// ValidateRtcChildren reports whether the ordered kind sequence conforms to
// rtc's permitted shape: all Rt, optionally bracketed by a leading and
// trailing Rp, grounded on model.py's Rtc.push_children.
func ValidateRtcChildren(kinds []Kind) error {
	cs := kinds
	if len(cs) > 2 && cs[0] == KindRp && cs[len(cs)-1] == KindRp {
		cs = cs[1 : len(cs)-1]
	}
	for _, k := range cs {
		if k != KindRt {
			return &Error{Kind: KindStructure, Message: "children of rtc do not conform to requirements"}
		}
	}
	return nil
}

func kindsEqual(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
