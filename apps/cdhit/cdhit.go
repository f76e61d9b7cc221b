/*
Package cdhit provides a wrapper for clustering nucleotide reference sets
with CD-HIT. CD-HIT must be installed separately:
https://sites.google.com/view/cd-hit.
*/
package cdhit

import (
	"fmt"
	"os"

	"github.com/BurntSushi/cmd"

	"github.com/ypchan/barcodephylo/fasta"
)

type Config struct {
	Exec string

	// Identity is CD-HIT's '-c' sequence identity threshold.
	Identity float64

	// AlnCoverageLong is CD-HIT's '-aL' alignment coverage threshold on
	// the longer sequence.
	AlnCoverageLong float64

	// When true, the 'cd-hit' stdout and stderr will be mapped to the
	// current processes' stdout and stderr.
	Verbose bool
}

var Default = Config{
	Exec:            "cd-hit",
	Identity:        0.90,
	AlnCoverageLong: 0.8,
}

// Cluster clusters the sequences in the FASTA file `in`, writing the
// representative sequences to `out` (CD-HIT also writes `out`.clstr).
func (conf Config) Cluster(in, out string) error {
	c := cmd.New(conf.Exec,
		"-i", in,
		"-o", out,
		"-aL", fmt.Sprintf("%g", conf.AlnCoverageLong),
		"-c", fmt.Sprintf("%g", conf.Identity),
	)
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	return c.Run()
}

// Representatives rewrites the representative FASTA written by Cluster with
// uniform sequential headers 'label_1', 'label_2', ... and returns the
// number of representatives written.
func Representatives(src, dst, label string) (int, error) {
	entries, err := fasta.ReadFile(src)
	if err != nil {
		return 0, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}

	w := fasta.NewWriter(out)
	for i := range entries {
		entries[i].Header = fmt.Sprintf("%s_%d", label, i+1)
	}
	if err := w.WriteAll(entries); err != nil {
		out.Close()
		return 0, err
	}
	return len(entries), out.Close()
}
