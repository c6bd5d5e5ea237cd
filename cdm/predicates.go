package cdm

import "github.com/sandflow/ttconv/tree"

// IsKind returns a tree.Predicate matching elements of the given kind,
// intended for use with tree.Walker the way dom.NodeIsText matches DOM text
// nodes.
func IsKind(k Kind) tree.Predicate[*Element] {
	return func(test, node *tree.Node[*Element]) (*tree.Node[*Element], error) {
		if test.Payload.Kind == k {
			return test, nil
		}
		return nil, nil
	}
}

// IsText matches Text elements.
var IsText = IsKind(KindText)

// Descendants returns all descendants of e, in document order, via
// tree.Walker.AllDescendents.
func Descendants(e *Element) []*Element {
	nodes, err := tree.NewWalker[*Element](e.Node).AllDescendents().Get()
	if err != nil {
		return nil
	}
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = n.Payload
	}
	return out
}

// DescendantsOfKind returns e's descendants of the given kind, in document
// order.
func DescendantsOfKind(e *Element, k Kind) []*Element {
	nodes, err := tree.NewWalker[*Element](e.Node).DescendentsWith(IsKind(k)).Get()
	if err != nil {
		return nil
	}
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = n.Payload
	}
	return out
}
