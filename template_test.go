package pgnamed

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// parseOK parses src and fails the test on error.
func parseOK(t *testing.T, src string) *Template {
	t.Helper()
	tmpl, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return tmpl
}

func TestParseSegmentKinds(t *testing.T) {
	tmpl := parseOK(t, "INSERT INTO t ($[a, b]) VALUES ($[..], $c) ${tail}")
	var kinds []segmentKind
	for _, seg := range tmpl.segments {
		kinds = append(kinds, seg.kind)
	}
	want := []segmentKind{
		segLiteral, segColumns, segLiteral, segExpand,
		segLiteral, segName, segLiteral, segFragment,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("kinds: got %v, want %v", kinds, want)
	}
}

func TestParseColumnListNames(t *testing.T) {
	tmpl := parseOK(t, "($[ one ,\n two,three ])")
	if len(tmpl.segments) != 3 {
		t.Fatalf("segments: %v", tmpl.segments)
	}
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(tmpl.segments[1].names, want) {
		t.Fatalf("names: got %v, want %v", tmpl.segments[1].names, want)
	}
}

func TestParseNames(t *testing.T) {
	tmpl := parseOK(t, "WHERE a = $x AND b IN ($[p, q]) AND c = $x AND d = $y")
	want := []string{"x", "p", "q", "y"}
	if got := tmpl.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names: got %v, want %v", got, want)
	}
}

func TestParseFragmentRefs(t *testing.T) {
	tmpl := parseOK(t, "SELECT * FROM t ${where} ${order} ${where}")
	want := []string{"where", "order"}
	if got := tmpl.FragmentRefs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("FragmentRefs: got %v, want %v", got, want)
	}
}

func TestParseBracketErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"($[one, two,])", "identifier between all of `$[`, every `,` and final `]`"},
		{"($[,one])", "identifier between all of `$[`, every `,` and final `]`"},
		{"($[a.b])", "valid column identifier"},
		{"($[1up])", "valid column identifier"},
		{"($[a, .., b])", "valid column identifier"},
		{"($[a, b, a])", "distinct column names"},
	}
	for _, tc := range tests {
		_, err := Parse(tc.src)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("Parse(%q): got %v, want *SyntaxError", tc.src, err)
		}
		if !strings.Contains(serr.Expected, tc.want) {
			t.Fatalf("Parse(%q): expected %q does not mention %q", tc.src, serr.Expected, tc.want)
		}
	}
}

func TestParseExpandWithPadding(t *testing.T) {
	tmpl := parseOK(t, "VALUES ($[ .. ])")
	if tmpl.segments[1].kind != segExpand {
		t.Fatalf("got %v, want segExpand", tmpl.segments[1].kind)
	}
}

func TestParseKeepsSource(t *testing.T) {
	src := "SELECT * FROM t WHERE a = $a -- trailing comment"
	if got := MustParse(src).Source(); got != src {
		t.Fatalf("Source: got %q, want %q", got, src)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse did not panic on malformed input")
		}
	}()
	MustParse("SELECT $ one")
}
