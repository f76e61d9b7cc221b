/*
Package blast provides a wrapper for subject-mode blastn searches and a
reader for the tabular output format used throughout this pipeline.
BLAST+ must be installed separately:
https://blast.ncbi.nlm.nih.gov/doc/blast-help/downloadblastdata.html.
*/
package blast

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/cmd"
)

// The explicit outfmt 6 column list produced by Config.Subject and consumed
// by ReadHits.
const OutFormat = "6 qseqid sseqid pident length evalue bitscore sstart send"

type Config struct {
	Exec          string
	MaxTargetSeqs int
	MaxHSPs       int

	// When true, the 'blastn' stderr will be mapped to the current
	// processes' stderr. (stdout always carries the tabular results.)
	Verbose bool
}

var Default = Config{
	Exec:          "blastn",
	MaxTargetSeqs: 1000,
	MaxHSPs:       1,
}

// Subject runs blastn with `query` against the FASTA file `subject`
// directly (no database build), streaming tabular results to the file at
// `out`.
func (conf Config) Subject(query, subject, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}

	c := cmd.New(conf.Exec,
		"-query", query,
		"-subject", subject,
		"-outfmt", OutFormat,
		"-max_target_seqs", strconv.Itoa(conf.MaxTargetSeqs),
		"-max_hsps", strconv.Itoa(conf.MaxHSPs),
	)
	c.Cmd.Stdout = f
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// A Hit is one line of tabular blastn output. SubjectStart and SubjectEnd
// are 1-based inclusive coordinates and may be reversed for minus-strand
// hits.
type Hit struct {
	Query           string
	Subject         string
	PercentIdentity float64
	Length          int
	EValue          float64
	BitScore        float64
	SubjectStart    int
	SubjectEnd      int
}

// ReadHits reads tabular blastn output. Blank and malformed lines are
// skipped rather than reported, since blastn intersperses warnings on some
// platforms.
func ReadHits(r io.Reader) ([]Hit, error) {
	hits := make([]Hit, 0, 16)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 {
			continue
		}
		toks := strings.Split(line, "\t")
		if len(toks) < 8 {
			continue
		}
		hit := Hit{Query: toks[0], Subject: toks[1]}
		var err error
		if hit.PercentIdentity, err = strconv.ParseFloat(toks[2], 64); err != nil {
			continue
		}
		if hit.Length, err = strconv.Atoi(toks[3]); err != nil {
			continue
		}
		if hit.EValue, err = strconv.ParseFloat(toks[4], 64); err != nil {
			continue
		}
		if hit.BitScore, err = strconv.ParseFloat(toks[5], 64); err != nil {
			continue
		}
		if hit.SubjectStart, err = strconv.Atoi(toks[6]); err != nil {
			continue
		}
		if hit.SubjectEnd, err = strconv.Atoi(toks[7]); err != nil {
			continue
		}
		hits = append(hits, hit)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}

// ReadHitsFile reads tabular blastn output from the file at path.
func ReadHitsFile(path string) ([]Hit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadHits(f)
}

// Best returns the hit with the highest bit score, or nil if there are no
// hits.
func Best(hits []Hit) *Hit {
	var best *Hit
	for i := range hits {
		if best == nil || hits[i].BitScore > best.BitScore {
			best = &hits[i]
		}
	}
	return best
}

// Window slices seq around a hit's 1-based inclusive subject coordinates,
// extended by flank on both sides and clamped to the sequence bounds.
// Reversed coordinates (minus-strand hits) are reordered first.
func Window(seq []byte, sstart, send, flank int) []byte {
	if sstart > send {
		sstart, send = send, sstart
	}
	left := sstart - 1 - flank
	if left < 0 {
		left = 0
	}
	right := send + flank
	if right > len(seq) {
		right = len(seq)
	}
	if left >= right {
		return nil
	}
	return seq[left:right]
}
