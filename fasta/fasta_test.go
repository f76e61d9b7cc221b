package fasta

import (
	"bytes"
	"strings"
	"testing"
)

const sampleFasta = `>contig_1 assembly=GCA_000001
ACGTACGTAC
gtacgtacgt

>contig_2
NNNNACGT
`

func TestReadAll(t *testing.T) {
	entries, err := NewReader(strings.NewReader(sampleFasta)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Header != "contig_1 assembly=GCA_000001" {
		t.Errorf("bad header: %q", entries[0].Header)
	}
	if entries[0].Id() != "contig_1" {
		t.Errorf("bad id: %q", entries[0].Id())
	}
	if string(entries[0].Sequence) != "ACGTACGTACgtacgtacgt" {
		t.Errorf("bad sequence: %q", entries[0].Sequence)
	}
	if string(entries[1].Sequence) != "NNNNACGT" {
		t.Errorf("bad sequence: %q", entries[1].Sequence)
	}
}

func TestReadSequenceBeforeHeader(t *testing.T) {
	_, err := NewReader(strings.NewReader("ACGT\n>a\nACGT\n")).ReadAll()
	if err == nil {
		t.Fatal("expected an error for sequence data before any header")
	}
}

func TestContigs(t *testing.T) {
	in := ">a first\nACGT\n>b\nTTTT\n>a dup\nGGGG\n"
	contigs, dups, err := Contigs(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(contigs) != 2 {
		t.Fatalf("expected 2 contigs, got %d", len(contigs))
	}
	if string(contigs["a"]) != "ACGT" {
		t.Errorf("duplicate id should keep the first sequence, got %q", contigs["a"])
	}
	if len(dups) != 1 || dups[0] != "a" {
		t.Errorf("bad dups: %v", dups)
	}
}

func TestWriterWrap(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.Cols = 4
	err := w.WriteAll([]Entry{{Header: "x", Sequence: []byte("ACGTACGTAC")}})
	if err != nil {
		t.Fatal(err)
	}
	want := ">x\nACGT\nACGT\nAC\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriterNoWrap(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.Cols = 0
	if err := w.WriteAll([]Entry{{Header: "x", Sequence: []byte("ACGTACGTAC")}}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ">x\nACGTACGTAC\n" {
		t.Errorf("got %q", buf.String())
	}
}
