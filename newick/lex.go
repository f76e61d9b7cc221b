package newick

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemTerminal
	itemDescendentsStart
	itemDescendentsEnd
	itemSubtree
)

const (
	eof           = 0
	terminal      = ';'
	descDelimiter = ','
	descStart     = '('
	descEnd       = ')'
	lengthStart   = ':'
)

const labelBanned = "()[]':;,"

// Characters that may appear in a branch length. The lexer is permissive
// here; strconv.ParseFloat in the parser is the real validator.
const lengthChars = "0123456789.eE+-"

type stateFn func(lx *lexer) stateFn

// lexer tokenizes a single string of Newick text. The input must already
// have all whitespace removed, so every byte offset reported in an item
// refers to the normalized text.
type lexer struct {
	input string
	start int
	pos   int
	width int
	state stateFn
	items chan item
}

// item is a single token. start and end are byte offsets into the
// normalized input; the parser uses them to recover verbatim subtree text.
type item struct {
	typ        itemType
	val        string
	start, end int
}

func (lx *lexer) nextItem() item {
	for {
		select {
		case item := <-lx.items:
			return item
		default:
			lx.state = lx.state(lx)
		}
	}
}

func lex(input string) *lexer {
	return &lexer{
		input: input,
		state: lexDescendents,
		items: make(chan item, 10),
	}
}

func (lx *lexer) current() string {
	return lx.input[lx.start:lx.pos]
}

func (lx *lexer) emit(typ itemType) {
	lx.items <- item{typ, lx.current(), lx.start, lx.pos}
	lx.start = lx.pos
}

func (lx *lexer) next() (r rune) {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, lx.width = utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.pos += lx.width
	return r
}

// ignore skips over the pending input before this point.
func (lx *lexer) ignore() {
	lx.start = lx.pos
}

// backup steps back one rune. Can be called only once per call of next.
func (lx *lexer) backup() {
	lx.pos -= lx.width
}

// errorf stops all lexing by emitting an error and returning `nil`.
func (lx *lexer) errorf(format string, values ...interface{}) stateFn {
	lx.items <- item{itemError, fmt.Sprintf(format, values...), lx.start, lx.pos}
	return nil
}

func lexDescendents(lx *lexer) stateFn {
	r := lx.next()
	switch r {
	case descStart:
		lx.emit(itemDescendentsStart)
		return lexSubtreeStart
	case eof:
		if lx.pos > lx.start {
			return lx.errorf("unexpected end of input")
		}
		return lexEOF
	}
	lx.backup()
	return lexLabel
}

// lexEOF emits itemEOF forever so that callers which keep pulling items
// after the end of input see a stream of EOFs instead of a dead state.
func lexEOF(lx *lexer) stateFn {
	lx.emit(itemEOF)
	return lexEOF
}

func lexSubtreeStart(lx *lexer) stateFn {
	r := lx.next()
	if isSubtreeEnd(r) {
		lx.backup()
		return lexSubtreeEnd
	} else if r == descStart {
		lx.backup()
		return lexDescendents
	}
	lx.backup()
	return lexLabel
}

func lexSubtreeEnd(lx *lexer) stateFn {
	lx.emit(itemSubtree)
	r := lx.next()
	switch r {
	case descDelimiter:
		lx.ignore()
		return lexDescendents
	case descEnd:
		lx.emit(itemDescendentsEnd)
		return lexLabel
	case terminal:
		lx.emit(itemTerminal)
		return lexDescendents
	case eof:
		return lx.errorf("unexpected end of input, expected a terminating '%c'",
			terminal)
	}
	return lx.errorf("expected end of subtree ('%c', '%c' or '%c') but got "+
		"'%c' instead", descDelimiter, descEnd, terminal, r)
}

func lexLabel(lx *lexer) stateFn {
	r := lx.next()
	if r == lengthStart {
		return lexLength
	} else if isSubtreeEnd(r) {
		lx.backup()
		return lexSubtreeEnd
	} else if strings.ContainsRune(labelBanned, r) {
		return lx.errorf("found '%c' in an unquoted label, which may not "+
			"contain any of: %s", r, labelBanned)
	}
	return lexLabel
}

func lexLength(lx *lexer) stateFn {
	r := lx.next()
	if isSubtreeEnd(r) {
		lx.backup()
		return lexSubtreeEnd
	} else if strings.ContainsRune(lengthChars, r) {
		return lexLength
	}
	return lx.errorf("found '%c' in a branch length, expected a number or "+
		"the end of a subtree", r)
}

func isSubtreeEnd(r rune) bool {
	return r == descDelimiter || r == descEnd || r == terminal || r == eof
}

func (itype itemType) String() string {
	switch itype {
	case itemError:
		return "error"
	case itemEOF:
		return "end of input"
	case itemTerminal:
		return "terminal"
	case itemDescendentsStart:
		return "descendent list (start)"
	case itemDescendentsEnd:
		return "descendent list (end)"
	case itemSubtree:
		return "subtree"
	}
	panic(fmt.Sprintf("BUG: unknown item type %d", int(itype)))
}

func (item item) String() string {
	return fmt.Sprintf("(%s, %s)", item.typ.String(), item.val)
}
