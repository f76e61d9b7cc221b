// Package nexus writes the NEXUS files consumed downstream of model
// selection: a partition scheme block and a complete MrBayes batch file.
package nexus

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ypchan/barcodephylo/models"
	"github.com/ypchan/barcodephylo/msa"
)

// WriteScheme writes a NEXUS sets block assigning each partition its
// best-fit model, in the layout IQ-TREE emits for partitioned analyses.
func WriteScheme(w io.Writer, parts []msa.Partition, best map[string]string) error {
	buf := bufio.NewWriter(w)
	buf.WriteString("#nexus\n")
	buf.WriteString("begin sets;\n")

	start := 1
	for _, p := range parts {
		end := start + p.Length - 1
		fmt.Fprintf(buf, "charset %s = %d-%d;\n", p.Label, start, end)
		start = end + 1
	}

	buf.WriteString("charpartition ModelFinder = ")
	for i, p := range parts {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%s:%s", best[p.Label], p.Label)
	}
	buf.WriteString(";\n")
	buf.WriteString("end;\n")
	return buf.Flush()
}

// A MrBayesJob is everything needed to render a ready-to-run MrBayes
// batch file for a partitioned, concatenated alignment.
type MrBayesJob struct {
	// Taxa in output order; Seqs maps each taxon to its concatenated
	// sequence, all of equal length.
	Taxa []string
	Seqs map[string]string

	// Partitions in supermatrix order and the cleaned best-fit model
	// per partition label.
	Partitions []msa.Partition
	Models     map[string]string

	// Outgroup, when non-empty, is emitted as a MrBayes outgroup command.
	Outgroup string
}

// matrixWidth is the number of columns per interleaved data block.
const matrixWidth = 80

// WriteMrBayes renders the job as a NEXUS file with an interleaved data
// matrix and a MrBayes block applying per-partition models.
func WriteMrBayes(w io.Writer, job MrBayesJob) error {
	nchar := 0
	for _, p := range job.Partitions {
		nchar += p.Length
	}
	longest := 0
	for _, taxon := range job.Taxa {
		if len(taxon) > longest {
			longest = len(taxon)
		}
		if len(job.Seqs[taxon]) != nchar {
			return fmt.Errorf(
				"nexus: taxon '%s' has %d characters, partitions sum to %d",
				taxon, len(job.Seqs[taxon]), nchar)
		}
	}

	buf := bufio.NewWriter(w)
	buf.WriteString("#NEXUS\n")
	buf.WriteString("Begin data;\n")
	fmt.Fprintf(buf, "  DIMENSIONS NTAX=%d NCHAR=%d;\n", len(job.Taxa), nchar)
	buf.WriteString("  FORMAT DATATYPE=DNA MISSING=? GAP=- INTERLEAVE;\n")
	buf.WriteString("  MATRIX\n")

	for start := 0; start < nchar; start += matrixWidth {
		end := start + matrixWidth
		if end > nchar {
			end = nchar
		}
		for _, taxon := range job.Taxa {
			fmt.Fprintf(buf, "  %-*s %s\n", longest, taxon, job.Seqs[taxon][start:end])
		}
		buf.WriteString("\n")
	}

	buf.WriteString(";\nEND;\n\n")

	buf.WriteString("BEGIN MRBAYES;\n")
	buf.WriteString("  log start filename=run_mrbayes.log;\n")
	buf.WriteString("  [! non-interactive, no prompts, no warnings]\n")
	buf.WriteString("  set autoclose=yes nowarnings=yes;\n")
	if len(job.Outgroup) > 0 {
		fmt.Fprintf(buf, "  outgroup %s;\n", job.Outgroup)
	}
	buf.WriteString("\n")

	start := 1
	for i, p := range job.Partitions {
		end := start + p.Length - 1
		fmt.Fprintf(buf, "  charset Subset%d = %d-%d;\n", i+1, start, end)
		start = end + 1
	}

	fmt.Fprintf(buf, "  partition ModelFinder = %d:", len(job.Partitions))
	for i := range job.Partitions {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "Subset%d", i+1)
	}
	buf.WriteString(";\n")
	buf.WriteString("  set partition=ModelFinder;\n\n")

	for i, p := range job.Partitions {
		model := job.Models[p.Label]
		setting, ok := models.MrBayes(model)
		if !ok {
			return fmt.Errorf("nexus: partition '%s' has a model MrBayes "+
				"cannot express: '%s'", p.Label, model)
		}
		fmt.Fprintf(buf, "  lset applyto=(%d) %s;\n", i+1, setting.Lset)
		if len(setting.Prset) > 0 {
			fmt.Fprintf(buf, "  prset applyto=(%d) %s;\n", i+1, setting.Prset)
		}
	}

	buf.WriteString("\n")
	buf.WriteString("  prset applyto=(all) ratepr=variable;\n")
	buf.WriteString("  unlink statefreq=(all) revmat=(all) shape=(all) " +
		"pinvar=(all) tratio=(all);\n\n")
	buf.WriteString("  mcmc ngen=20000000 Stoprule=yes Stopval=0.01;\n")
	buf.WriteString("  sump;\n  sumt;\n  log stop;\nEND;\n")
	return buf.Flush()
}
