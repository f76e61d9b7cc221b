package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// An Entry corresponds to an entry in a FASTA file: a single line header
// (without the leading '>') and a sequence concatenated over any number of
// following lines.
type Entry struct {
	Header   string
	Sequence []byte
}

// Id returns the first whitespace-separated token of the header, which is
// how BLAST and friends identify a sequence.
func (e Entry) Id() string {
	fields := strings.Fields(e.Header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// String is the entry in FASTA format with the sequence wrapped at 60
// columns.
func (e Entry) String() string {
	return string(format(e, 60))
}

func format(e Entry, cols int) []byte {
	buf := make([]byte, 0, len(e.Header)+len(e.Sequence)+8)
	buf = append(buf, '>')
	buf = append(buf, e.Header...)
	buf = append(buf, '\n')
	if cols <= 0 {
		buf = append(buf, e.Sequence...)
		buf = append(buf, '\n')
		return buf
	}
	for start := 0; start < len(e.Sequence); start += cols {
		end := start + cols
		if end > len(e.Sequence) {
			end = len(e.Sequence)
		}
		buf = append(buf, e.Sequence[start:end]...)
		buf = append(buf, '\n')
	}
	return buf
}

// A Reader reads entries from FASTA encoded input. Blank lines and leading
// or trailing whitespace are ignored. Sequence data is not validated: the
// genomes this pipeline consumes routinely carry soft-masked (lower case)
// and ambiguous bases.
type Reader struct {
	buf  *bufio.Scanner
	line int
	next string // pending header from the previous Read
	done bool
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<24)
	return &Reader{buf: sc}
}

// Read returns the next entry in the input, or io.EOF once the input is
// exhausted.
func (r *Reader) Read() (Entry, error) {
	var entry Entry
	started := false
	if len(r.next) > 0 {
		entry.Header = r.next
		r.next = ""
		started = true
	}
	for !r.done {
		if !r.buf.Scan() {
			r.done = true
			if err := r.buf.Err(); err != nil {
				return Entry{}, err
			}
			break
		}
		r.line++
		line := strings.TrimSpace(r.buf.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			header := strings.TrimSpace(line[1:])
			if started {
				r.next = header
				return entry, nil
			}
			entry.Header = header
			started = true
			continue
		}
		if !started {
			return Entry{}, fmt.Errorf(
				"fasta: line %d: sequence data before any header", r.line)
		}
		entry.Sequence = append(entry.Sequence, line...)
	}
	if !started {
		return Entry{}, io.EOF
	}
	return entry, nil
}

// ReadAll returns all entries in the input. The first error encountered is
// returned with no entries; the error is never io.EOF.
func (r *Reader) ReadAll() ([]Entry, error) {
	entries := make([]Entry, 0, 8)
	for {
		entry, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Contigs reads all of the FASTA input in r into a map keyed by each
// entry's id (the first header token). Ids seen more than once keep their
// first sequence and are returned in dups so that callers can warn.
func Contigs(r io.Reader) (contigs map[string][]byte, dups []string, err error) {
	entries, err := NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	contigs = make(map[string][]byte, len(entries))
	for _, e := range entries {
		id := e.Id()
		if _, ok := contigs[id]; ok {
			dups = append(dups, id)
			continue
		}
		contigs[id] = e.Sequence
	}
	return contigs, dups, nil
}

// A Writer writes entries as FASTA output, wrapping sequences at Cols
// columns. If Cols is zero or negative, sequences are written on a single
// line.
type Writer struct {
	wr *bufio.Writer

	// The column at which sequences are wrapped.
	Cols int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{wr: bufio.NewWriter(w), Cols: 60}
}

func (w *Writer) Write(entry Entry) error {
	_, err := w.wr.Write(format(entry, w.Cols))
	return err
}

func (w *Writer) WriteAll(entries []Entry) error {
	for _, entry := range entries {
		if err := w.Write(entry); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.wr.Flush()
}
