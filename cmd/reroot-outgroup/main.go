// reroot-outgroup rewrites a Newick tree so that it is rooted at the
// midpoint of the branch leading to a designated outgroup taxon. The
// outgroup must be a direct top-level tip of the input tree; everything
// else in the tree is passed through byte for byte.
package main

import (
	"bytes"
	"os"

	"github.com/ypchan/barcodephylo/cmd/util"
	"github.com/ypchan/barcodephylo/newick"
	"github.com/ypchan/barcodephylo/reroot"
)

func init() {
	util.FlagParse("in-tree-file outgroup-label out-tree-file",
		"Reroot a Newick tree at the midpoint of a top-level outgroup tip.\n"+
			"The input file must hold a single ';'-terminated tree.")
	util.AssertNArg(3)
}

func main() {
	treePath := util.Arg(0)
	outgroup := util.Arg(1)
	outPath := util.Arg(2)

	tree := util.ReadTreeFile(treePath)

	rooted, err := reroot.Outgroup(tree, outgroup)
	util.Assert(err, "Could not reroot '%s' on '%s'", treePath, outgroup)

	// Serialize fully in memory so a failure can never leave a partial
	// output file behind.
	buf := new(bytes.Buffer)
	util.Assert(newick.NewWriter(buf).Write(rooted),
		"Could not serialize the rerooted tree")
	util.Assert(os.WriteFile(outPath, buf.Bytes(), 0666),
		"Could not write '%s'", outPath)
}
