package newick

import (
	"bytes"
	"fmt"
	"strings"
)

// Tree corresponds to any value representable in a Newick format. Each
// tree value corresponds to a single node.
type Tree struct {
	// All children of this node, which may be empty. Child order is
	// preserved exactly as it appeared in the input.
	Children []Tree

	// The label of this node. If it's empty, then this node does
	// not have a name. Tip labels identify taxa; labels on internal
	// nodes (support values and the like) are carried as opaque text.
	Label string

	// The branch length of this node corresponding to the distance between
	// it and its parent node. If it's `nil`, then no distance exists.
	Length *float64

	// The exact text of this subtree as it appeared in the normalized
	// input, label and length included. Empty for nodes constructed in
	// memory rather than parsed. The writer emits a non-empty Raw
	// verbatim, which keeps untouched subtrees byte-stable across a
	// parse/edit/write cycle.
	Raw string
}

// IsTip returns true if this node has no children.
func (tree *Tree) IsTip() bool {
	return len(tree.Children) == 0
}

// DetachChild removes the i'th child from this node and returns it, handing
// ownership of the detached subtree to the caller.
func (tree *Tree) DetachChild(i int) (Tree, error) {
	if i < 0 || i >= len(tree.Children) {
		return Tree{}, fmt.Errorf("newick: no child at index %d", i)
	}
	child := tree.Children[i]
	tree.Children = append(tree.Children[:i], tree.Children[i+1:]...)
	return child, nil
}

// String recursively converts a tree to a string, with whitespace indenting
// to indicate depth. It is meant for debugging; use a Writer to produce
// Newick output.
func (tree *Tree) String() string {
	buf := new(bytes.Buffer)

	var out func(t *Tree, depth int)
	out = func(t *Tree, depth int) {
		name, length := t.Label, ""
		if len(name) == 0 {
			name = "N/A"
		}
		if t.Length != nil {
			length = fmt.Sprintf(" (%f)", *t.Length)
		}
		fmt.Fprintf(buf, "%s%s%s\n", strings.Repeat("  ", depth), name, length)
		for i := range t.Children {
			out(&t.Children[i], depth+1)
		}
	}
	out(tree, 0)
	return buf.String()
}
