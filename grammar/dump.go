package grammar

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Dump renders a human-readable tree of every definition in the schema
// to w, using pterm's tree printer. This replaces the teacher's
// GraphViz-file export (lr.CFSM2GraphViz) with an in-process pretty
// tree suited to quick inspection from tests and docs, rather than an
// external dot-file toolchain.
func (s *Schema) Dump(w io.Writer) error {
	root := pterm.TreeNode{Text: "schema"}
	s.Each(func(id ID, def *Syntax) {
		root.Children = append(root.Children, treeNode(fmt.Sprintf("%v", id), def))
	})
	rendered, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}

func treeNode(label string, s *Syntax) pterm.TreeNode {
	node := pterm.TreeNode{Text: fmt.Sprintf("%s %s", label, s.Rep)}
	switch s.Kind {
	case KindTerminal:
		node.Children = []pterm.TreeNode{{Text: s.Matcher.Label()}}
	case KindAlias:
		node.Children = []pterm.TreeNode{{Text: fmt.Sprintf("-> %v", s.Alias)}}
	case KindSequence, KindChoice:
		for i, c := range s.Children {
			childLabel := fmt.Sprintf("%d", i)
			if s.Kind == KindChoice {
				childLabel = fmt.Sprintf("|%d", i)
			}
			node.Children = append(node.Children, treeNode(childLabel, c))
		}
	}
	return node
}
