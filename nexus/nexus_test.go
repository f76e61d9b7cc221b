package nexus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ypchan/barcodephylo/msa"
)

func TestWriteScheme(t *testing.T) {
	parts := []msa.Partition{{Label: "ITS", Length: 8}, {Label: "TEF", Length: 4}}
	best := map[string]string{"ITS": "GTR+G", "TEF": "HKY"}

	buf := new(bytes.Buffer)
	if err := WriteScheme(buf, parts, best); err != nil {
		t.Fatal(err)
	}
	want := "#nexus\n" +
		"begin sets;\n" +
		"charset ITS = 1-8;\n" +
		"charset TEF = 9-12;\n" +
		"charpartition ModelFinder = GTR+G:ITS, HKY:TEF;\n" +
		"end;\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteMrBayes(t *testing.T) {
	job := MrBayesJob{
		Taxa: []string{"tax1", "taxon2"},
		Seqs: map[string]string{
			"tax1":   "ACGTACGTAAAA",
			"taxon2": "ACGTACGA????",
		},
		Partitions: []msa.Partition{{Label: "ITS", Length: 8}, {Label: "TEF", Length: 4}},
		Models:     map[string]string{"ITS": "GTR+G", "TEF": "K2P"},
		Outgroup:   "taxon2",
	}

	buf := new(bytes.Buffer)
	if err := WriteMrBayes(buf, job); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"#NEXUS\n",
		"  DIMENSIONS NTAX=2 NCHAR=12;\n",
		"  FORMAT DATATYPE=DNA MISSING=? GAP=- INTERLEAVE;\n",
		"  tax1   ACGTACGTAAAA\n",
		"  taxon2 ACGTACGA????\n",
		"  outgroup taxon2;\n",
		"  charset Subset1 = 1-8;\n",
		"  charset Subset2 = 9-12;\n",
		"  partition ModelFinder = 2:Subset1, Subset2;\n",
		"  lset applyto=(1) nst=6 rates=gamma;\n",
		"  lset applyto=(2) nst=2;\n",
		"  prset applyto=(2) statefreqpr=fixed(equal);\n",
		"  mcmc ngen=20000000 Stoprule=yes Stopval=0.01;\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "prset applyto=(1) statefreqpr") {
		t.Error("GTR+G must not constrain state frequencies")
	}
}

func TestWriteMrBayesInterleaves(t *testing.T) {
	seq := strings.Repeat("A", 100)
	job := MrBayesJob{
		Taxa:       []string{"t"},
		Seqs:       map[string]string{"t": seq},
		Partitions: []msa.Partition{{Label: "p", Length: 100}},
		Models:     map[string]string{"p": "JC"},
	}
	buf := new(bytes.Buffer)
	if err := WriteMrBayes(buf, job); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "  t "+strings.Repeat("A", 80)+"\n") {
		t.Error("first interleaved block should hold 80 columns")
	}
	if !strings.Contains(out, "  t "+strings.Repeat("A", 20)+"\n") {
		t.Error("second interleaved block should hold the remaining 20 columns")
	}
}

func TestWriteMrBayesBadModel(t *testing.T) {
	job := MrBayesJob{
		Taxa:       []string{"t"},
		Seqs:       map[string]string{"t": "ACGT"},
		Partitions: []msa.Partition{{Label: "p", Length: 4}},
		Models:     map[string]string{"p": "TIM2+G"},
	}
	if err := WriteMrBayes(new(bytes.Buffer), job); err == nil {
		t.Fatal("expected an error for a model MrBayes cannot express")
	}
}
