package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// A ParseError describes malformed Newick input. Offset is a byte offset
// into the normalized (whitespace stripped) input text.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("newick: parse error at offset %d: %s", e.Offset, e.Msg)
}

// Reader corresponds to the state necessary to read trees from Newick
// formatted input.
//
// The entire input is slurped and stripped of whitespace before any
// tokenizing happens, so trees may be formatted across any number of lines.
type Reader struct {
	src  io.Reader
	lx   *lexer
	text string
	rest string
	err  error
}

// NewReader returns a reader ready for reading trees from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: r}
}

func (r *Reader) init() error {
	if r.lx != nil || r.err != nil {
		return r.err
	}
	raw, err := io.ReadAll(r.src)
	if err != nil {
		r.err = err
		return err
	}
	r.text = stripSpace(string(raw))
	r.rest = r.text
	r.lx = lex(r.text)
	return nil
}

func stripSpace(s string) string {
	return strings.Map(func(ru rune) rune {
		if unicode.IsSpace(ru) {
			return -1
		}
		return ru
	}, s)
}

// ReadAll returns all of the Newick trees in the source input. The first
// error that occurs is returned with no trees. The error is never `io.EOF`.
func (r *Reader) ReadAll() ([]*Tree, error) {
	trees := make([]*Tree, 0)
	for {
		tree, err := r.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// ReadTree reads a single `;`-terminated tree from the source input. If the
// end of the input is reached, then a nil `Tree` is returned with `io.EOF`
// as the error.
func (r *Reader) ReadTree() (*Tree, error) {
	if err := r.init(); err != nil {
		return nil, err
	}

	it := r.lx.nextItem()
	parent := &Tree{}
	if it.typ == itemTerminal {
		r.rest = r.text[it.end:]
		return parent, nil
	} else if it.typ == itemEOF {
		return nil, io.EOF
	}

	if err := r.parse(parent, it); err != nil {
		return nil, err
	}

	it = r.lx.nextItem()
	if it.typ != itemTerminal {
		return nil, expectErr(it, fmt.Sprintf("a terminating '%c'", terminal))
	}
	r.rest = r.text[it.end:]
	return parent, nil
}

// Rest returns whatever input remains after the last tree successfully read
// with ReadTree. Callers expecting exactly one tree can use this to warn
// about (but not fail on) trailing content.
func (r *Reader) Rest() string {
	return r.rest
}

func (r *Reader) parse(parent *Tree, next item) error {
	switch next.typ {
	case itemSubtree:
		if err := setLabelLength(parent, next); err != nil {
			return err
		}
		parent.Raw = r.text[next.start:next.end]
		return nil
	case itemDescendentsStart:
		// good to go!
	default:
		return expectErr(next, "a descendent list or a subtree")
	}
	open := next.start

	// If we're here, then we're starting a descendent list.
	// Now we should expect one or more subtrees or descendent lists.
TOKENS:
	for {
		it := r.lx.nextItem()
		switch it.typ {
		case itemSubtree:
			child := Tree{}
			if err := setLabelLength(&child, it); err != nil {
				return err
			}
			child.Raw = r.text[it.start:it.end]
			parent.Children = append(parent.Children, child)
		case itemDescendentsStart:
			child := Tree{}
			if err := r.parse(&child, it); err != nil {
				return err
			}
			parent.Children = append(parent.Children, child)
		case itemDescendentsEnd:
			break TOKENS
		default:
			return expectErr(it, "a descendent list or a subtree")
		}
	}

	// After a descendent list is done, we should always expect a subtree
	// carrying the list's own (possibly empty) label and length.
	it := r.lx.nextItem()
	if it.typ != itemSubtree {
		return expectErr(it, "a subtree")
	}
	if err := setLabelLength(parent, it); err != nil {
		return err
	}
	parent.Raw = r.text[open:it.end]
	return nil
}

func setLabelLength(t *Tree, it item) error {
	if len(it.val) == 0 {
		return nil
	}
	pieces := strings.SplitN(it.val, ":", 2)
	t.Label = pieces[0]

	if len(pieces) == 2 {
		length, err := strconv.ParseFloat(pieces[1], 64)
		if err != nil {
			return &ParseError{
				Offset: it.start,
				Msg:    fmt.Sprintf("invalid branch length '%s'", pieces[1]),
			}
		}
		t.Length = &length
	}
	return nil
}

func expectErr(it item, expected string) error {
	if it.typ == itemError {
		return &ParseError{Offset: it.start, Msg: it.val}
	}
	return &ParseError{
		Offset: it.start,
		Msg:    fmt.Sprintf("unexpected %s, expected %s", it.typ, expected),
	}
}
