package blast

import (
	"strings"
	"testing"
)

const sampleTab = "ITS_1\tcontig_7\t98.510\t612\t0.0\t1088\t15000\t15611\n" +
	"\n" +
	"ITS_2\tcontig_7\t91.200\t590\t1e-180\t640\t15020\t15580\n" +
	"garbage line without tabs\n" +
	"ITS_3\tcontig_2\t88.000\tx\t1e-10\t200\t5\t100\n" +
	"ITS_4\tcontig_9\t95.000\t300\t1e-120\t450.5\t800\t501\n"

func TestReadHits(t *testing.T) {
	hits, err := ReadHits(strings.NewReader(sampleTab))
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits (malformed lines skipped), got %d", len(hits))
	}
	h := hits[0]
	if h.Query != "ITS_1" || h.Subject != "contig_7" || h.BitScore != 1088 ||
		h.SubjectStart != 15000 || h.SubjectEnd != 15611 {
		t.Errorf("bad first hit: %+v", h)
	}
}

func TestBest(t *testing.T) {
	hits, err := ReadHits(strings.NewReader(sampleTab))
	if err != nil {
		t.Fatal(err)
	}
	best := Best(hits)
	if best == nil || best.Query != "ITS_1" {
		t.Fatalf("Best = %+v, want the ITS_1 hit", best)
	}
	if Best(nil) != nil {
		t.Error("Best of no hits should be nil")
	}
}

func TestWindow(t *testing.T) {
	seq := []byte("AACCGGTTAACCGGTT")

	// 1-based inclusive 5..8 is "GGTT"; flank 2 widens it to "CCGGTTAA".
	if got := string(Window(seq, 5, 8, 2)); got != "CCGGTTAA" {
		t.Errorf("Window = %q, want CCGGTTAA", got)
	}

	// Minus-strand coordinates come reversed.
	if got := string(Window(seq, 8, 5, 0)); got != "GGTT" {
		t.Errorf("reversed Window = %q, want GGTT", got)
	}

	// Flanks clamp at both ends.
	if got := string(Window(seq, 1, 16, 100)); got != string(seq) {
		t.Errorf("clamped Window = %q", got)
	}
}
