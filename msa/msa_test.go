package msa

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeAln(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLengths(t *testing.T) {
	dir := t.TempDir()
	its := writeAln(t, dir, "ITS.fna", ">tax1\nACGTACGT\n>tax2\nACGTACGA\n")
	tef := writeAln(t, dir, "TEF.fna", ">tax1\nAAAA\n>tax3\nCCCC\n")

	parts, err := Lengths([]string{its, tef})
	if err != nil {
		t.Fatal(err)
	}
	want := []Partition{{"ITS", 8}, {"TEF", 4}}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("got %v, want %v", parts, want)
	}
}

func TestConcatenatePadsMissingTaxa(t *testing.T) {
	dir := t.TempDir()
	its := writeAln(t, dir, "ITS.fna", ">tax2\nACGTACGA\n>tax1\nACGTACGT\n")
	tef := writeAln(t, dir, "TEF.fna", ">tax1\nAAAA\n>tax3\nCCCC\n")

	taxa, seqs, err := Concatenate([]string{its, tef})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(taxa, []string{"tax1", "tax2", "tax3"}) {
		t.Fatalf("bad taxa: %v", taxa)
	}
	want := map[string]string{
		"tax1": "ACGTACGTAAAA",
		"tax2": "ACGTACGA????",
		"tax3": "????????CCCC",
	}
	if !reflect.DeepEqual(seqs, want) {
		t.Errorf("got %v, want %v", seqs, want)
	}
}

func TestReadAlignmentErrors(t *testing.T) {
	dir := t.TempDir()
	empty := writeAln(t, dir, "empty.fna", "")
	ragged := writeAln(t, dir, "ragged.fna", ">a\nACGT\n>b\nAC\n")
	dup := writeAln(t, dir, "dup.fna", ">a\nACGT\n>a\nACGT\n")

	for _, path := range []string{empty, ragged, dup} {
		if _, err := ReadAlignment(path); err == nil {
			t.Errorf("ReadAlignment(%s): expected error", filepath.Base(path))
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label("/data/aligned/ITS.trim.fna"); got != "ITS.trim" {
		t.Errorf("Label = %q", got)
	}
}
