package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ypchan/barcodephylo/fasta"
	"github.com/ypchan/barcodephylo/newick"
)

// ReadTreeFile parses the single Newick tree in the file at path, warning
// (but not failing) when non-whitespace content trails the first tree.
func ReadTreeFile(path string) *newick.Tree {
	f := OpenFile(path)
	defer f.Close()

	r := newick.NewReader(f)
	tree, err := r.ReadTree()
	Assert(err, "Could not parse tree from '%s'", path)

	if rest := r.Rest(); len(rest) > 0 {
		if len(rest) > 40 {
			rest = rest[:40] + "..."
		}
		Warnf("WARNING: ignoring content after the first tree in '%s': '%s'",
			path, rest)
	}
	return tree
}

// ReadContigs loads a genome FASTA (plain or gzipped) into a contig-id
// keyed map, warning about duplicated contig ids.
func ReadContigs(path string) map[string][]byte {
	f, err := fasta.Open(path)
	Assert(err, "Could not open genome '%s'", path)
	defer f.Close()

	contigs, dups, err := fasta.Contigs(f)
	Assert(err, "Could not read genome '%s'", path)
	for _, id := range dups {
		Warnf("WARNING: duplicated contig id '%s' in %s", id, path)
	}
	return contigs
}

// GenomePaths expands genome arguments into a deduplicated list of FASTA
// paths. Each argument is either a FASTA file (plain or gzipped) or a text
// file listing one genome path per line.
func GenomePaths(args []string) []string {
	paths := make([]string, 0, len(args))
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		if looksLikeFasta(arg) {
			add(arg)
			continue
		}
		f := OpenFile(arg)
		for _, line := range ReadLines(f) {
			if len(line) == 0 {
				continue
			}
			if !looksLikeFasta(line) {
				Fatalf("'%s' (from list '%s') does not look like a FASTA file.",
					line, arg)
			}
			add(line)
		}
		f.Close()
	}

	if len(paths) == 0 {
		Fatalf("No genome paths provided.")
	}
	return paths
}

var fastaSuffixes = []string{
	".fa", ".fna", ".fasta", ".fa.gz", ".fna.gz", ".fasta.gz",
}

func looksLikeFasta(path string) bool {
	for _, suffix := range fastaSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	// Not a common suffix; peek at the first byte.
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	var b [1]byte
	if _, err := f.Read(b[:]); err != nil {
		return false
	}
	return b[0] == '>'
}

// GenomeName strips the directory and any common FASTA extension from a
// genome path, giving the name used in output FASTA headers.
func GenomeName(path string) string {
	base := filepath.Base(path)
	for _, suffix := range fastaSuffixes {
		if strings.HasSuffix(base, suffix) {
			return base[:len(base)-len(suffix)]
		}
	}
	return base
}
