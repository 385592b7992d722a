package pgnamed

import "strings"

// segmentKind classifies one parsed template segment.
type segmentKind int

const (
	segLiteral  segmentKind = iota // raw SQL text, pass-through
	segName                        // $name scalar placeholder
	segColumns                     // $[a, b, c] column-list expansion
	segExpand                      // $[..] value-list expansion
	segFragment                    // ${name} fragment reference
)

// segment is one element of a parsed template. Concatenating the segments,
// with placeholders replaced, reproduces the original SQL outside of quoted
// and commented regions.
type segment struct {
	kind  segmentKind
	text  string   // literal text, placeholder name, or fragment name
	names []string // column-list identifiers, in declared order
	pos   int      // byte offset of the segment in the template text
}

// Template is the parsed form of one SQL template: an ordered sequence of
// literal spans and placeholder references. A Template is immutable once
// built and safe for concurrent reuse across rewrites.
type Template struct {
	src      string
	segments []segment
}

// Parse parses a SQL template into a Template. It reports malformed
// placeholder syntax as a *SyntaxError naming the offending byte offset;
// invariants that involve the argument bundle (undeclared, unused, pairing)
// are checked later, during Rewrite.
func Parse(src string) (*Template, error) {
	toks, err := newScanner(src).scanAll()
	if err != nil {
		return nil, err
	}

	segs := make([]segment, 0, len(toks))
	for _, tok := range toks {
		switch tok.typ {
		case tokLiteral:
			segs = append(segs, segment{kind: segLiteral, text: tok.text, pos: tok.pos})
		case tokName:
			segs = append(segs, segment{kind: segName, text: tok.text, pos: tok.pos})
		case tokFragment:
			segs = append(segs, segment{kind: segFragment, text: tok.text, pos: tok.pos})
		case tokList:
			seg, err := parseBracket(tok)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		}
	}
	return &Template{src: src, segments: segs}, nil
}

// MustParse is like Parse but panics on error. Intended for templates that
// are compile-time constants.
func MustParse(src string) *Template {
	t, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return t
}

// parseBracket turns the raw content of a $[...] token into either a
// value-list expansion ($[..]) or a column list with validated identifiers.
func parseBracket(tok token) (segment, error) {
	if strings.TrimSpace(tok.text) == ".." {
		return segment{kind: segExpand, pos: tok.pos}, nil
	}

	parts := strings.Split(tok.text, ",")
	names := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return segment{}, NewSyntaxError(tok.pos, "identifier between all of `$[`, every `,` and final `]`")
		}
		if !isValidIdent(name) {
			return segment{}, NewSyntaxError(tok.pos, "valid column identifier, got `"+name+"`")
		}
		if _, dup := seen[name]; dup {
			return segment{}, NewSyntaxError(tok.pos, "distinct column names, got duplicate `"+name+"`")
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return segment{kind: segColumns, names: names, pos: tok.pos}, nil
}

// Source returns the original template text.
func (t *Template) Source() string { return t.src }

// Names returns the distinct argument names the template references, in
// order of first textual occurrence.
func (t *Template) Names() []string {
	var order []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}
	for _, seg := range t.segments {
		switch seg.kind {
		case segName:
			add(seg.text)
		case segColumns:
			for _, name := range seg.names {
				add(name)
			}
		}
	}
	return order
}

// FragmentRefs returns the distinct ${name} fragment references, in order of
// first textual occurrence.
func (t *Template) FragmentRefs() []string {
	var order []string
	seen := make(map[string]struct{})
	for _, seg := range t.segments {
		if seg.kind != segFragment {
			continue
		}
		if _, ok := seen[seg.text]; ok {
			continue
		}
		seen[seg.text] = struct{}{}
		order = append(order, seg.text)
	}
	return order
}
