package newick

import (
	"bytes"
	"io"
	"strconv"
)

// A Writer writes trees as single-line Newick text.
type Writer struct {
	wr io.Writer
}

// NewWriter returns a writer that emits trees to `w`.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w}
}

// Write emits one tree, terminated by ';' and a newline. Any node with a
// non-empty Raw field is written verbatim; everything else is rendered as
// `(children)label:length` with lengths formatted to 10 significant digits.
func (w *Writer) Write(tree *Tree) error {
	buf := new(bytes.Buffer)
	writeTree(buf, tree)
	buf.WriteByte(terminal)
	buf.WriteByte('\n')
	_, err := w.wr.Write(buf.Bytes())
	return err
}

// WriteAll emits each tree in turn, one per line.
func (w *Writer) WriteAll(trees []*Tree) error {
	for _, tree := range trees {
		if err := w.Write(tree); err != nil {
			return err
		}
	}
	return nil
}

func writeTree(buf *bytes.Buffer, t *Tree) {
	if len(t.Raw) > 0 {
		buf.WriteString(t.Raw)
		return
	}
	if len(t.Children) > 0 {
		buf.WriteByte(descStart)
		for i := range t.Children {
			if i > 0 {
				buf.WriteByte(descDelimiter)
			}
			writeTree(buf, &t.Children[i])
		}
		buf.WriteByte(descEnd)
	}
	buf.WriteString(t.Label)
	if t.Length != nil {
		buf.WriteByte(lengthStart)
		buf.WriteString(FormatLength(*t.Length))
	}
}

// FormatLength renders a branch length with 10 significant digits, enough
// to reproduce any length observed in practice without drift.
func FormatLength(length float64) string {
	return strconv.FormatFloat(length, 'g', 10, 64)
}
