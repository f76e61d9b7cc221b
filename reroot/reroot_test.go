package reroot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ypchan/barcodephylo/newick"
)

func parse(t *testing.T, s string) *newick.Tree {
	t.Helper()
	tree, err := newick.NewReader(strings.NewReader(s)).ReadTree()
	if err != nil {
		t.Fatalf("parse %q: %s", s, err)
	}
	return tree
}

func render(t *testing.T, tree *newick.Tree) string {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := newick.NewWriter(buf).Write(tree); err != nil {
		t.Fatal(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func TestOutgroup(t *testing.T) {
	cases := []struct {
		in, label, want string
	}{
		{"(A:1,B:2,(C:1,D:1):3,OUT:4);", "OUT",
			"((A:1,B:2,(C:1,D:1):3):2,OUT:2);"},
		{"(OUT:4,A:1,B:2);", "OUT",
			"((A:1,B:2):2,OUT:2);"},
		{"(A:1,OUT:5,B:2);", "OUT",
			"((A:1,B:2):2.5,OUT:2.5);"},
		// Support labels and lengths elsewhere stay untouched.
		{"(A:0.597492,(B:0.526213,C:0.457107)0.99:0.043387,OUT:0.25);", "OUT",
			"((A:0.597492,(B:0.526213,C:0.457107)0.99:0.043387):0.125,OUT:0.125);"},
		// Scientific notation lengths in the remainder are kept verbatim.
		{"(A:1e-3,B:2.5E2,OUT:1e-2);", "OUT",
			"((A:1e-3,B:2.5E2):0.005,OUT:0.005);"},
		// One remaining child is still wrapped, never merged.
		{"(X:1,OUT:4);", "OUT", "((X:1):2,OUT:2);"},
		// A zero-length outgroup branch splits into two zero halves.
		{"(A:1,OUT:0);", "OUT", "((A:1):0,OUT:0);"},
	}
	for _, c := range cases {
		rooted, err := Outgroup(parse(t, c.in), c.label)
		if err != nil {
			t.Errorf("Outgroup(%q, %q): %s", c.in, c.label, err)
			continue
		}
		if got := render(t, rooted); got != c.want {
			t.Errorf("Outgroup(%q, %q) = %q, want %q", c.in, c.label, got, c.want)
		}
	}
}

func TestOutgroupRootShape(t *testing.T) {
	rooted, err := Outgroup(parse(t, "(A:1,B:2,(C:1,D:1):3,OUT:4);"), "OUT")
	if err != nil {
		t.Fatal(err)
	}
	if len(rooted.Children) != 2 {
		t.Fatalf("new root has %d children, want 2", len(rooted.Children))
	}
	tip := &rooted.Children[1]
	if !tip.IsTip() || tip.Label != "OUT" {
		t.Fatalf("second child is not the outgroup tip: %s", tip)
	}
	sum := *rooted.Children[0].Length + *tip.Length
	if sum != 4 {
		t.Errorf("root-adjacent lengths sum to %v, want the original 4", sum)
	}
}

func TestOutgroupNotFound(t *testing.T) {
	for _, in := range []string{
		"(A:1,B:2);",
		// A tip nested below the top level never matches.
		"((OUT:1,A:1):2,B:3);",
		// An internal node labeled like the outgroup is not a tip.
		"((A:1,B:1)OUT:2,C:3);",
	} {
		_, err := Outgroup(parse(t, in), "OUT")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Outgroup(%q): got %v, want *NotFoundError", in, err)
		}
	}
}

func TestOutgroupEmptyLabel(t *testing.T) {
	_, err := Outgroup(parse(t, "(A:1,B:2);"), "")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("empty label: got %v, want *NotFoundError", err)
	}
}

func TestOutgroupAmbiguous(t *testing.T) {
	_, err := Outgroup(parse(t, "(OUT:1,OUT:2,X:1);"), "OUT")
	var amb *AmbiguousError
	if !errors.As(err, &amb) {
		t.Fatalf("got %v, want *AmbiguousError", err)
	}
	if len(amb.Matches) != 2 {
		t.Errorf("reported %d matches, want 2", len(amb.Matches))
	}
	if amb.Matches[0] != "OUT:1" || amb.Matches[1] != "OUT:2" {
		t.Errorf("bad match renderings: %v", amb.Matches)
	}
}

func TestOutgroupBadLength(t *testing.T) {
	for _, in := range []string{
		"(A:1,OUT);",    // missing
		"(A:1,OUT:-1);", // negative
	} {
		_, err := Outgroup(parse(t, in), "OUT")
		var bl *BranchLengthError
		if !errors.As(err, &bl) {
			t.Errorf("Outgroup(%q): got %v, want *BranchLengthError", in, err)
		}
	}
}

func TestOutgroupAlone(t *testing.T) {
	_, err := Outgroup(parse(t, "(OUT:4);"), "OUT")
	var rm *RemovalError
	if !errors.As(err, &rm) {
		t.Errorf("got %v, want *RemovalError", err)
	}
}
