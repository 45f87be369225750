package vdom

import (
	tp "github.com/xlab/treeprint"
)

// Dump returns an ASCII drawing of a markup tree, e.g.
//
//    <form class="f1x2k9qz">
//    └── <label>
//        ├── <span>
//        │   └── #text "Password"
//        └── <input class="f0a8c1d" type="password">
//
func Dump(n *VNode) string {
	if n == nil {
		return "<nil>"
	}
	root := tp.NewWithRoot(n.String())
	dumpChildren(root, n)
	return root.String()
}

func dumpChildren(branch tp.Tree, n *VNode) {
	for _, ch := range n.Children {
		if ch.IsText() || len(ch.Children) == 0 {
			branch.AddNode(ch.String())
			continue
		}
		dumpChildren(branch.AddBranch(ch.String()), ch)
	}
}
