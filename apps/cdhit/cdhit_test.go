package cdhit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ypchan/barcodephylo/fasta"
)

func TestRepresentatives(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "reps")
	dst := filepath.Join(dir, "ITS.rep.fasta")

	in := ">cluster rep one\nACGT\n>cluster rep two\nTTTTGGGG\n"
	if err := os.WriteFile(src, []byte(in), 0666); err != nil {
		t.Fatal(err)
	}

	n, err := Representatives(src, dst, "ITS")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("wrote %d representatives, want 2", n)
	}

	entries, err := fasta.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Header != "ITS_1" || entries[1].Header != "ITS_2" {
		t.Errorf("bad headers: %q, %q", entries[0].Header, entries[1].Header)
	}
	if string(entries[1].Sequence) != "TTTTGGGG" {
		t.Errorf("sequence not preserved: %q", entries[1].Sequence)
	}
}
