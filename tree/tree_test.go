package tree_test

import (
	"testing"

	"github.com/sandflow/ttconv/tree"
)

func buildTestTree() *tree.Node[string] {
	root := tree.NewNode("root")
	a := tree.NewNode("a")
	b := tree.NewNode("b")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(tree.NewNode("a1"))
	a.AddChild(tree.NewNode("a2"))
	b.AddChild(tree.NewNode("b1"))
	return root
}

func TestWalkerAllDescendents(t *testing.T) {
	root := buildTestTree()
	nodes, err := tree.NewWalker(root).AllDescendents().Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 5 {
		t.Fatalf("expected 5 descendents, got %d", len(nodes))
	}
}

func TestWalkerParent(t *testing.T) {
	root := buildTestTree()
	a, _ := root.Child(0)
	a1, _ := a.Child(0)
	nodes, err := tree.NewWalker(a1).Parent().Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 || nodes[0] != a {
		t.Fatalf("expected parent to be 'a' node")
	}
}

func TestWalkerAncestorWith(t *testing.T) {
	root := buildTestTree()
	a, _ := root.Child(0)
	a1, _ := a.Child(0)
	isRoot := func(test, node *tree.Node[string]) (*tree.Node[string], error) {
		if test.Payload == "root" {
			return test, nil
		}
		return nil, nil
	}
	nodes, err := tree.NewWalker(a1).AncestorWith(isRoot).Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 || nodes[0] != root {
		t.Fatalf("expected to find root ancestor")
	}
}

func TestWalkerTopDown(t *testing.T) {
	root := buildTestTree()
	var visited []string
	_, err := tree.NewWalker(root).TopDown(func(n, parent *tree.Node[string], position int) (*tree.Node[string], error) {
		visited = append(visited, n.Payload)
		return n, nil
	}).Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if visited[0] != "root" {
		t.Fatalf("expected root to be visited first, got %v", visited)
	}
	if len(visited) != 6 {
		t.Fatalf("expected 6 nodes visited, got %d: %v", len(visited), visited)
	}
}

func TestWalkerBottomUpCalcRank(t *testing.T) {
	root := buildTestTree()
	_, err := tree.NewWalker(root).BottomUp(tree.CalcRank[string]).Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Rank != 6 {
		t.Errorf("expected root rank 6 (whole tree), got %d", root.Rank)
	}
	a, _ := root.Child(0)
	if a.Rank != 3 {
		t.Errorf("expected 'a' rank 3 (itself + 2 children), got %d", a.Rank)
	}
}

func TestWalkerFilter(t *testing.T) {
	root := buildTestTree()
	nodes, err := tree.NewWalker(root).AllDescendents().Filter(tree.NodeIsLeaf[string]()).Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 leaves, got %d", len(nodes))
	}
}

func TestNilWalker(t *testing.T) {
	var root *tree.Node[string]
	w := tree.NewWalker(root)
	if w != nil {
		t.Fatal("expected NewWalker(nil) to return a nil Walker")
	}
	if _, err := w.AllDescendents().Get(); err != tree.ErrEmptyTree {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
}
