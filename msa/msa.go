// Package msa handles sets of multiple sequence alignments destined for a
// partitioned phylogenetic analysis: per-alignment partition bookkeeping
// and concatenation into a supermatrix.
package msa

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ypchan/barcodephylo/fasta"
)

// A Partition is one alignment's slot in a concatenated supermatrix.
type Partition struct {
	// Label is the alignment's file name without directory or extension.
	Label string

	// Length is the number of columns in the alignment.
	Length int
}

// Label returns the partition label for an alignment file path.
func Label(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// An Alignment maps taxon names to aligned sequences of equal length.
type Alignment map[string]string

// ReadAlignment reads one FASTA alignment, requiring at least one sequence,
// unique taxon names and equal sequence lengths.
func ReadAlignment(path string) (Alignment, error) {
	entries, err := fasta.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("msa: empty alignment: %s", path)
	}
	aln := make(Alignment, len(entries))
	cols := len(entries[0].Sequence)
	for _, e := range entries {
		taxon := strings.TrimSpace(e.Header)
		if _, ok := aln[taxon]; ok {
			return nil, fmt.Errorf("msa: duplicate taxon '%s' in %s", taxon, path)
		}
		if len(e.Sequence) != cols {
			return nil, fmt.Errorf(
				"msa: ragged alignment in %s: '%s' has %d columns, want %d",
				path, taxon, len(e.Sequence), cols)
		}
		aln[taxon] = string(e.Sequence)
	}
	return aln, nil
}

// Lengths returns one Partition per alignment file, in input order.
func Lengths(paths []string) ([]Partition, error) {
	parts := make([]Partition, 0, len(paths))
	for _, path := range paths {
		aln, err := ReadAlignment(path)
		if err != nil {
			return nil, err
		}
		for _, seq := range aln {
			parts = append(parts, Partition{Label(path), len(seq)})
			break
		}
	}
	return parts, nil
}

// Concatenate joins the alignments in input order into one supermatrix.
// Taxa missing from an alignment are padded with '?' across that
// alignment's columns. The returned taxa are sorted so output is
// deterministic regardless of input order.
func Concatenate(paths []string) (taxa []string, seqs map[string]string, err error) {
	alns := make([]Alignment, len(paths))
	set := make(map[string]bool)
	for i, path := range paths {
		if alns[i], err = ReadAlignment(path); err != nil {
			return nil, nil, err
		}
		for taxon := range alns[i] {
			set[taxon] = true
		}
	}

	taxa = make([]string, 0, len(set))
	for taxon := range set {
		taxa = append(taxa, taxon)
	}
	sort.Strings(taxa)

	seqs = make(map[string]string, len(taxa))
	var b strings.Builder
	for _, taxon := range taxa {
		b.Reset()
		for _, aln := range alns {
			if seq, ok := aln[taxon]; ok {
				b.WriteString(seq)
			} else {
				for _, any := range aln {
					b.WriteString(strings.Repeat("?", len(any)))
					break
				}
			}
		}
		seqs[taxon] = b.String()
	}
	return taxa, seqs, nil
}
