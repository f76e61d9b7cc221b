// Package reroot relocates the root of a phylogenetic tree to the midpoint
// of a designated outgroup's branch.
//
// Only an outgroup that appears as a direct top-level tip of the tree is
// supported: the tree produced by the inference tools in this pipeline
// always places the outgroup there, and guessing at a generalized reroot
// for deeper placements would silently change branch lengths.
package reroot

import (
	"fmt"
	"math"
	"strings"

	"github.com/ypchan/barcodephylo/newick"
)

// NotFoundError indicates that no top-level tip carries the outgroup label.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reroot: no top-level tip labeled '%s'", e.Label)
}

// AmbiguousError indicates that more than one top-level tip carries the
// outgroup label. Matches holds the conflicting renderings.
type AmbiguousError struct {
	Label   string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	sample := e.Matches
	if len(sample) > 3 {
		sample = sample[:3]
	}
	return fmt.Sprintf("reroot: %d top-level tips labeled '%s' (%s)",
		len(e.Matches), e.Label, strings.Join(sample, ", "))
}

// BranchLengthError indicates that the outgroup tip's branch length is
// missing or unusable for midpoint splitting.
type BranchLengthError struct {
	Label  string
	Length *float64
}

func (e *BranchLengthError) Error() string {
	if e.Length == nil {
		return fmt.Sprintf("reroot: tip '%s' has no branch length", e.Label)
	}
	return fmt.Sprintf("reroot: tip '%s' has invalid branch length %v",
		e.Label, *e.Length)
}

// RemovalError indicates that the located outgroup could not be detached
// from the root's child list.
type RemovalError struct {
	Label string
	Cause error
}

func (e *RemovalError) Error() string {
	return fmt.Sprintf("reroot: could not detach tip '%s': %s", e.Label, e.Cause)
}

// Outgroup builds a new tree rooted at the midpoint of the branch leading
// to the top-level tip labeled `label`. The returned root has exactly two
// children: the remainder of the original tree, and the outgroup tip, each
// carrying half of the outgroup's original branch length. Every other label
// and length is preserved verbatim.
//
// The input tree's children are moved into the result, so `t` must not be
// used afterwards.
func Outgroup(t *newick.Tree, label string) (*newick.Tree, error) {
	matched := locate(t, label)
	switch {
	case len(matched) == 0:
		return nil, &NotFoundError{label}
	case len(matched) > 1:
		raws := make([]string, len(matched))
		for i, idx := range matched {
			raws[i] = t.Children[idx].Raw
		}
		return nil, &AmbiguousError{label, raws}
	}
	idx := matched[0]

	out := &t.Children[idx]
	if out.Length == nil {
		return nil, &BranchLengthError{label, nil}
	}
	length := *out.Length
	if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
		return nil, &BranchLengthError{label, out.Length}
	}
	if len(t.Children) < 2 {
		return nil, &RemovalError{label,
			fmt.Errorf("the tree holds no taxa besides the outgroup")}
	}

	tip, err := t.DetachChild(idx)
	if err != nil || tip.Label != label {
		if err == nil {
			err = fmt.Errorf("detached '%s' instead", tip.Label)
		}
		return nil, &RemovalError{label, err}
	}

	// Split the outgroup edge at its midpoint. The detached remainder is
	// wrapped as-is: its children keep their raw renderings, so nothing
	// beyond the two new root-adjacent edges is reformatted.
	restHalf, tipHalf := length/2, length/2
	rest := newick.Tree{Children: t.Children, Length: &restHalf}
	outgroup := newick.Tree{Label: tip.Label, Length: &tipHalf}
	return &newick.Tree{Children: []newick.Tree{rest, outgroup}}, nil
}

// locate returns the indices of the root's direct children that are tips
// labeled exactly `label`. Matching is case-sensitive with no normalization.
func locate(t *newick.Tree, label string) []int {
	if len(label) == 0 {
		return nil
	}
	var matched []int
	for i := range t.Children {
		c := &t.Children[i]
		if c.IsTip() && c.Label == label {
			matched = append(matched, i)
		}
	}
	return matched
}
