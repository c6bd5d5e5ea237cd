package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is returned if a Walker filter/action argument is nil.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is returned if a Walker is called with an empty tree. Refer
// to the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and doing
// work on them. Clients usually create a Walker for a (sub-)tree to search
// for a selection of nodes matching certain criteria, and then perform
// some operation on this selection.
//
// A Walker carries a current selection of nodes and the last error
// encountered while building it. All conversion work in this module
// (cdm, isd) is single-threaded by design, so Walker evaluates its DSL
// chain synchronously — unlike the original, concurrent, pipeline-based
// implementation this package is derived from.
//
// A typical usage of a Walker looks like this ("FindNodesAndDoSomething()"
// is a placeholder for a sequence of method calls, see below):
//
//	w := NewWalker(node)
//	nodes, err := w.FindNodesAndDoSomething(...).Get()
//
// Walkers support a set of search & filter functions. Clients will chain
// some of these to perform tasks on tree nodes. You may think of the set
// of operations to form a small Domain Specific Language (DSL), similar in
// concept to JQuery.
type Walker[S, T comparable] struct {
	initial *Node[S] // initial node of (sub-)tree
	nodes   []*Node[T]
	err     error
}

// NewWalker creates a Walker for the initial node of a (sub-)tree. The
// first subsequent call to a node filter function will have this initial
// node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting in a
// NOP-chain of operations, resulting in an empty set of nodes and an error
// (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T, T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T, T]{initial: initial, nodes: []*Node[T]{initial}}
}

// Get drains the Walker, returning the current selection of nodes and the
// last error encountered while building it. It is the terminal call of a
// Walker DSL expression chain, replacing the asynchronous Promise() of the
// original pipeline-based design.
func (w *Walker[S, T]) Get() ([]*Node[T], error) {
	if w == nil {
		return nil, ErrEmptyTree
	}
	return w.nodes, w.err
}

func cloneWalker[S, T, U comparable](w *Walker[S, T], nodes []*Node[U]) *Walker[S, U] {
	return &Walker[S, U]{initial: w.initial, nodes: nodes, err: w.err}
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree. It is
// used as an argument for various Walker functions to collect a selection
// of nodes. test is the node under test, node is the input/origin node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate). It is
// useful to match every node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// ----------------------------------------------------------------------

// Parent returns the parent node of each node in the current selection.
//
// If w is nil, Parent will return nil.
func (w *Walker[S, T]) Parent() *Walker[S, T] {
	if w == nil {
		return nil
	}
	var result []*Node[T]
	for _, n := range w.nodes {
		if p := n.Parent(); p != nil {
			result = append(result, p)
		}
	}
	return cloneWalker(w, result)
}

// AncestorWith finds, for each node in the current selection, the nearest
// ancestor matching the given predicate. The search does not include the
// start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[S, T]) AncestorWith(predicate Predicate[T]) *Walker[S, T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return invalidFilter(w)
	}
	var result []*Node[T]
	for _, n := range w.nodes {
		anc := n.Parent()
		for anc != nil {
			matched, err := predicate(anc, n)
			if err != nil {
				w.err = err
				return cloneWalker(w, result)
			}
			if matched != nil {
				result = append(result, matched)
				break
			}
			anc = anc.Parent()
		}
	}
	return cloneWalker(w, result)
}

// DescendentsWith finds all descendents, of every node in the current
// selection, matching a predicate. The search does not include the start
// nodes.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[S, T]) DescendentsWith(predicate Predicate[T]) *Walker[S, T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return invalidFilter(w)
	}
	var result []*Node[T]
	for _, n := range w.nodes {
		if err := collectDescendentsWith(n, predicate, &result); err != nil {
			w.err = err
			return cloneWalker(w, result)
		}
	}
	return cloneWalker(w, result)
}

func collectDescendentsWith[T comparable](node *Node[T], predicate Predicate[T], result *[]*Node[T]) error {
	for i := 0; i < node.ChildCount(); i++ {
		ch, ok := node.Child(i)
		if !ok {
			continue
		}
		matched, err := predicate(ch, node)
		if err != nil {
			return err
		}
		tracer().Debugf("Predicate for node %s returned: %v", ch, matched)
		if matched != nil {
			*result = append(*result, matched)
		}
		if err := collectDescendentsWith(ch, predicate, result); err != nil {
			return err
		}
	}
	return nil
}

// AllDescendents traverses all descendents of every node in the current
// selection. The traversal does not include the start nodes. This is just
// a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[S, T]) AllDescendents() *Walker[S, T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided predicate on each node of the current
// selection, keeping only the nodes it accepts.
//
// If w is nil, Filter will return nil.
func (w *Walker[S, T]) Filter(f Predicate[T]) *Walker[S, T] {
	if w == nil {
		return nil
	}
	if f == nil {
		return invalidFilter(w)
	}
	var result []*Node[T]
	for _, n := range w.nodes {
		matched, err := f(n, n)
		if err != nil {
			w.err = err
			return cloneWalker(w, result)
		}
		if matched != nil {
			result = append(result, matched)
		}
	}
	return cloneWalker(w, result)
}

func invalidFilter[S, T comparable](w *Walker[S, T]) *Walker[S, T] {
	w.err = ErrInvalidFilter
	return w
}

// Action is a function type to operate on tree nodes. A non-nil result is
// carried forward into the resulting Walker's selection.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses a tree starting at (and including) every node in the
// current selection. The traversal guarantees that parents are always
// processed before their children.
//
// If the action function returns an error for a node, descending the
// branch below this node is aborted, but the error is not otherwise fatal
// to the overall traversal.
//
// If w is nil, TopDown will return nil.
func (w *Walker[S, T]) TopDown(action Action[T]) *Walker[S, T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return invalidFilter(w)
	}
	var result []*Node[T]
	for _, n := range w.nodes {
		topDown(n, n.Parent(), indexOfChild(n), action, &result)
	}
	return cloneWalker(w, result)
}

func indexOfChild[T comparable](n *Node[T]) int {
	if p := n.Parent(); p != nil {
		return p.IndexOfChild(n)
	}
	return 0
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T], result *[]*Node[T]) {
	res, err := action(node, parent, position)
	tracer().Debugf("Action for node %s returned: %v, err=%v", node, res, err)
	if err != nil {
		return // do not descend further
	}
	if res != nil {
		*result = append(*result, res)
	}
	for i := 0; i < node.ChildCount(); i++ {
		if ch, ok := node.Child(i); ok {
			topDown(ch, node, i, action, result)
		}
	}
}

// BottomUp traverses a tree starting at (and including) all the current
// nodes. Usually clients will select all of a tree's leafs before calling
// BottomUp(). The traversal guarantees that parents are not processed
// before all of their children (among the start nodes and their
// descendents).
//
// If the action function returns an error for a node, the parent is
// processed regardless.
//
// If w is nil, BottomUp will return nil.
func (w *Walker[S, T]) BottomUp(action Action[T]) *Walker[S, T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return invalidFilter(w)
	}
	visited := make(map[*Node[T]]bool)
	var result []*Node[T]
	for _, n := range w.nodes {
		bottomUp(n, action, visited, &result)
	}
	return cloneWalker(w, result)
}

func bottomUp[T comparable](node *Node[T], action Action[T], visited map[*Node[T]]bool, result *[]*Node[T]) {
	if visited[node] {
		return
	}
	visited[node] = true
	for i := 0; i < node.ChildCount(); i++ {
		if ch, ok := node.Child(i); ok {
			bottomUp(ch, action, visited, result)
		}
	}
	parent := node.Parent()
	position := 0
	if parent != nil {
		position = parent.IndexOfChild(node)
	}
	res, err := action(node, parent, position)
	if err == nil && res != nil {
		*result = append(*result, res)
	}
}

// CalcRank is an action for bottom-up processing. It calculates the
// 'Rank' member for each node, meaning: the number of descendent nodes + 1.
// The root node will hold the number of nodes in the entire tree. Leaf
// nodes will have a rank of 1.
func CalcRank[T comparable](n *Node[T], parent *Node[T], position int) (*Node[T], error) {
	r := uint32(1)
	for i := 0; i < n.ChildCount(); i++ {
		ch, ok := n.Child(i)
		if ok {
			r += ch.Rank
		}
	}
	n.Rank = r
	return n, nil
}
