package cdm

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders e's subtree as an indented tree, for debug logging and test
// failure output (grounded on the teacher's use of treeprint in
// persistent/vector's test helpers).
func Dump(e *Element) string {
	root := tp.New()
	dumpNode(root, e)
	return root.String()
}

func dumpNode(branch tp.Tree, e *Element) {
	label := e.Kind.String()
	switch e.Kind {
	case KindText:
		label = fmt.Sprintf("text %q", e.Text)
	case KindRegion:
		label = fmt.Sprintf("region %q", e.RegionID)
	}
	if len(e.styles) > 0 {
		label = fmt.Sprintf("%s (%d styles)", label, len(e.styles))
	}
	children := e.Children()
	if len(children) == 0 {
		branch.AddNode(label)
		return
	}
	sub := branch.AddBranch(label)
	for _, c := range children {
		dumpNode(sub, c)
	}
}
