// find-models runs IQ-TREE ModelFinder over one or more alignments, writes
// the winning partition scheme and the concatenated supermatrix, and can
// emit a ready-to-run MrBayes NEXUS file.
package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/ypchan/barcodephylo/apps/iqtree"
	"github.com/ypchan/barcodephylo/cmd/util"
	"github.com/ypchan/barcodephylo/fasta"
	"github.com/ypchan/barcodephylo/models"
	"github.com/ypchan/barcodephylo/msa"
	"github.com/ypchan/barcodephylo/nexus"
)

var (
	flagIQTreeBin    = "iqtree2"
	flagRestriction  = iqtree.RestrictMrBayes
	flagMrBayesNexus = false
	flagOutgroup     = ""
)

func init() {
	flag.StringVar(&flagIQTreeBin, "iqtree-bin", flagIQTreeBin,
		"The name of (or path to) the IQ-TREE executable.")
	flag.StringVar(&flagRestriction, "model-restriction", flagRestriction,
		"Restrict the model search to a supported set (mrbayes|iqtree).")
	flag.BoolVar(&flagMrBayesNexus, "mrbayes-nexus", flagMrBayesNexus,
		"When set, a ready-to-run MrBayes NEXUS file is written.")
	flag.StringVar(&flagOutgroup, "outgroup", flagOutgroup,
		"An outgroup taxon written into the MrBayes NEXUS file.")

	util.FlagUse("threads", "verbose")
	util.FlagParse("out-dir msa-file [msa-file ...]",
		"Find the best-fit substitution model per alignment with IQ-TREE\n"+
			"ModelFinder, then write 'best_scheme.txt' and 'concatenated.fna'\n"+
			"into out-dir.")
	util.AssertLeastNArg(2)

	if flagRestriction != iqtree.RestrictMrBayes &&
		flagRestriction != iqtree.RestrictIQTree {
		util.Fatalf("Unknown model restriction '%s'.", flagRestriction)
	}
}

func main() {
	outDir := util.Arg(0)
	msaFiles := flag.Args()[1:]
	util.MkDirAll(outDir)

	parts, err := msa.Lengths(msaFiles)
	util.Assert(err, "Could not read alignments")
	for _, p := range parts {
		util.Verbosef("Partition %s: %d columns", p.Label, p.Length)
	}

	conf := iqtree.ModelFinderConfig{
		Exec:        flagIQTreeBin,
		Threads:     util.FlagThreads,
		Restriction: flagRestriction,
		Redo:        true,
		Verbose:     util.FlagVerbose,
	}

	best := make(map[string]string, len(msaFiles))
	for i, path := range msaFiles {
		label := parts[i].Label
		prefix := filepath.Join(outDir, label+"_modelfinder")

		util.Verbosef("Running IQ-TREE ModelFinder for %s", filepath.Base(path))
		raw, err := conf.Run(path, prefix)
		util.Assert(err, "ModelFinder failed for '%s'", path)

		model := models.Clean(raw)
		if _, ok := models.MrBayes(model); !ok {
			util.Fatalf("Unknown/unsupported model '%s' (raw: '%s') for '%s'.",
				model, raw, path)
		}
		best[label] = model
		util.Verbosef("Best model for %s: %s (raw: %s)",
			filepath.Base(path), model, raw)
	}

	schemePath := filepath.Join(outDir, "best_scheme.txt")
	scheme := util.CreateFile(schemePath)
	util.Assert(nexus.WriteScheme(scheme, parts, best),
		"Could not write '%s'", schemePath)
	util.Assert(scheme.Close(), "Could not write '%s'", schemePath)
	fmt.Printf("Best scheme:%s\n", schemePath)

	taxa, seqs, err := msa.Concatenate(msaFiles)
	util.Assert(err, "Could not concatenate alignments")

	concatPath := filepath.Join(outDir, "concatenated.fna")
	concat := util.CreateFile(concatPath)
	w := fasta.NewWriter(concat)
	w.Cols = 0
	for _, taxon := range taxa {
		util.Assert(w.Write(fasta.Entry{Header: taxon, Sequence: []byte(seqs[taxon])}),
			"Could not write '%s'", concatPath)
	}
	util.Assert(w.Flush(), "Could not write '%s'", concatPath)
	util.Assert(concat.Close(), "Could not write '%s'", concatPath)

	if flagMrBayesNexus {
		job := nexus.MrBayesJob{
			Taxa:       taxa,
			Seqs:       seqs,
			Partitions: parts,
			Models:     best,
			Outgroup:   flagOutgroup,
		}
		mbPath := filepath.Join(outDir, "run_mrbayes.nexus")
		mb := util.CreateFile(mbPath)
		util.Assert(nexus.WriteMrBayes(mb, job), "Could not write '%s'", mbPath)
		util.Assert(mb.Close(), "Could not write '%s'", mbPath)
		util.Verbosef("Wrote MrBayes NEXUS: %s", mbPath)
	}
}
