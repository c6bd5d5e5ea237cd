package isd

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders an ISD as an indented tree, mirroring cdm.Dump's shape so
// a before/after diff between a CDM and its generated ISD reads
// naturally side by side.
func Dump(doc *Document) string {
	root := tp.New()
	for _, region := range doc.Regions {
		dumpNode(root, region)
	}
	return root.String()
}

func dumpNode(branch tp.Tree, n *Node) {
	label := n.Kind.String()
	if n.Text != "" {
		label = fmt.Sprintf("text %q", n.Text)
	}
	if n.RegionID != "" {
		label = fmt.Sprintf("%s [region=%s]", label, n.RegionID)
	}
	if len(n.Styles) > 0 {
		label = fmt.Sprintf("%s (%d styles)", label, len(n.Styles))
	}
	if len(n.Children) == 0 {
		branch.AddNode(label)
		return
	}
	sub := branch.AddBranch(label)
	for _, c := range n.Children {
		dumpNode(sub, c)
	}
}
