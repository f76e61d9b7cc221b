// extract-barcodes pulls barcode-like regions out of genome assemblies.
// Each barcode's reference set is clustered with CD-HIT, the cluster
// representatives are blasted against every genome, and the best hit plus
// flanking sequence is written to one FASTA file per barcode.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ypchan/barcodephylo/apps/blast"
	"github.com/ypchan/barcodephylo/apps/cdhit"
	"github.com/ypchan/barcodephylo/cmd/util"
	"github.com/ypchan/barcodephylo/fasta"
)

var (
	flagSequences util.FlagStrings
	flagLabels    util.FlagStrings
	flagGenomes   util.FlagStrings
	flagFlank     = 100
	flagPrefix    = ""
)

func init() {
	flag.Var(&flagSequences, "sequence",
		"A reference barcode FASTA file. May be given multiple times;\n"+
			"pairs up with -label in order.")
	flag.Var(&flagLabels, "label",
		"A barcode label (e.g. ITS, TEF, RPB2). Must correspond 1:1 with\n"+
			"-sequence.")
	flag.Var(&flagGenomes, "genome",
		"A genome assembly (.fa/.fna/.fasta, optionally gzipped) or a text\n"+
			"file listing one genome path per line. May be given multiple times.")
	flag.IntVar(&flagFlank, "flank", flagFlank,
		"The number of bases kept on each side of the best BLAST hit.")
	flag.StringVar(&flagPrefix, "prefix", flagPrefix,
		"A prefix for the output FASTA files (e.g. prefix_ITS.fasta).")

	util.FlagUse("threads", "verbose")
	util.FlagParse("-sequence ref.fasta -label ITS -genome asm.fna [...]",
		"Extract barcode-like sequences from genome assemblies with CD-HIT\n"+
			"clustering, blastn and flank extension.")
	util.AssertNArg(0)

	if len(flagSequences) == 0 || len(flagSequences) != len(flagLabels) {
		util.Fatalf("Each -sequence must have a corresponding -label.")
	}
	if len(flagGenomes) == 0 {
		util.Fatalf("At least one -genome is required.")
	}
}

type search struct {
	label, genome, tab string
}

func main() {
	genomes := util.GenomePaths(flagGenomes)

	tmp := util.TempDir("extract-barcodes-")
	defer os.RemoveAll(tmp)

	// Cluster each reference set and give the representatives uniform
	// '<label>_N' names so hits are attributable in the BLAST tables.
	reps := make(map[string]string, len(flagLabels))
	clusterer := cdhit.Default
	clusterer.Verbose = util.FlagVerbose
	for i, label := range flagLabels {
		clustered := filepath.Join(tmp, label+".cdhit")
		util.Assert(clusterer.Cluster(flagSequences[i], clustered),
			"CD-HIT failed for '%s'", flagSequences[i])

		repPath := filepath.Join(tmp, label+".rep.fasta")
		n, err := cdhit.Representatives(clustered, repPath, label)
		util.Assert(err, "Could not rewrite representatives for '%s'", label)
		util.Verbosef("%s: %d representative sequences", label, n)
		reps[label] = repPath
	}

	searches := blastAll(reps, genomes, tmp)

	// Pick best hits and extract windows, caching each genome's contigs
	// the first time any barcode needs them.
	contigCache := make(map[string]map[string][]byte, len(genomes))
	for _, label := range flagLabels {
		entries := make([]fasta.Entry, 0, len(genomes))
		for _, genome := range genomes {
			hits, err := blast.ReadHitsFile(searches[[2]string{label, genome}])
			util.Assert(err, "Could not read BLAST results for %s vs %s",
				label, genome)
			best := blast.Best(hits)
			if best == nil {
				util.Verbosef("%s: no hits in %s", label, genome)
				continue
			}

			contigs, ok := contigCache[genome]
			if !ok {
				contigs = util.ReadContigs(genome)
				contigCache[genome] = contigs
			}
			seq, ok := contigs[best.Subject]
			if !ok {
				util.Warnf("WARNING: hit contig '%s' not found in %s",
					best.Subject, genome)
				continue
			}

			window := blast.Window(seq, best.SubjectStart, best.SubjectEnd,
				flagFlank)
			if len(window) == 0 {
				continue
			}
			entries = append(entries, fasta.Entry{
				Header:   util.GenomeName(genome),
				Sequence: bytes.ToUpper(window),
			})
		}

		outPath := fmt.Sprintf("%s%s.fasta", outPrefix(), label)
		out := util.CreateFile(outPath)
		w := fasta.NewWriter(out)
		w.Cols = 0
		util.Assert(w.WriteAll(entries), "Could not write '%s'", outPath)
		util.Assert(out.Close(), "Could not write '%s'", outPath)
		util.Verbosef("Wrote %d sequences to %s", len(entries), outPath)
	}
}

// blastAll runs every label x genome blastn search across a small worker
// pool and returns the per-pair result table paths.
func blastAll(reps map[string]string, genomes []string, tmp string) map[[2]string]string {
	searcher := blast.Default
	searcher.Verbose = util.FlagVerbose

	searches := make([]search, 0, len(reps)*len(genomes))
	results := make(map[[2]string]string, len(reps)*len(genomes))
	for _, label := range flagLabels {
		for _, genome := range genomes {
			tab := filepath.Join(tmp,
				fmt.Sprintf("%s_%s.blastn.tsv", label, filepath.Base(genome)))
			searches = append(searches, search{label, genome, tab})
			results[[2]string{label, genome}] = tab
		}
	}

	jobs := make(chan search)
	progress := util.NewProgress(len(searches))
	wg := new(sync.WaitGroup)
	for i := 0; i < max(1, util.FlagThreads); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				err := searcher.Subject(reps[s.label], s.genome, s.tab)
				if err != nil {
					err = fmt.Errorf("blastn failed for %s vs %s: %s",
						s.label, s.genome, err)
				}
				progress.JobDone(err)
			}
		}()
	}
	for _, s := range searches {
		jobs <- s
	}
	close(jobs)
	wg.Wait()
	progress.Close()
	return results
}

func outPrefix() string {
	if len(flagPrefix) == 0 {
		return ""
	}
	return flagPrefix + "_"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
