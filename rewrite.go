package pgnamed

import (
	"strconv"
	"strings"
)

// positionAssignment maps argument names to their 1-based positional index.
// Positions are handed out in order of first occurrence in the rewritten
// text, so value i-1 of the output slice backs placeholder $i.
type positionAssignment struct {
	order   []string
	indexOf map[string]int
}

func newPositionAssignment() *positionAssignment {
	return &positionAssignment{indexOf: make(map[string]int)}
}

// index returns the position for name, assigning the next free one on first
// use. Repeated references to the same name yield the same position.
func (p *positionAssignment) index(name string) int {
	if idx, ok := p.indexOf[name]; ok {
		return idx
	}
	p.order = append(p.order, name)
	idx := len(p.order)
	p.indexOf[name] = idx
	return idx
}

// Rewrite validates the template against the argument bundle and produces
// the positional SQL text plus the bind values ordered 1..N. The template is
// not mutated and may be rewritten again with a different bundle.
func (t *Template) Rewrite(args Args) (string, []any, error) {
	tbl, err := newArgTable(args)
	if err != nil {
		return "", nil, err
	}
	if err := validate(t.segments, tbl); err != nil {
		return "", nil, err
	}
	return rewrite(t.segments, tbl)
}

// rewrite is the single deterministic pass over an already validated segment
// sequence.
func rewrite(segs []segment, tbl *argTable) (string, []any, error) {
	positions := newPositionAssignment()
	var out strings.Builder
	out.Grow(estimateSize(segs))

	var pending []string // names of the column list awaiting its $[..]
	for _, seg := range segs {
		switch seg.kind {
		case segLiteral:
			out.WriteString(seg.text)

		case segName:
			writePlaceholder(&out, positions.index(seg.text))

		case segColumns:
			// Rendered as the literal column names; positions are assigned
			// now, in declared order, so the paired $[..] expands to a
			// contiguous run when the names are fresh.
			for i, name := range seg.names {
				if i > 0 {
					out.WriteString(", ")
				}
				out.WriteString(name)
				positions.index(name)
			}
			pending = seg.names

		case segExpand:
			for i, name := range pending {
				if i > 0 {
					out.WriteString(", ")
				}
				writePlaceholder(&out, positions.index(name))
			}
			pending = nil
		}
	}

	values := make([]any, len(positions.order))
	for i, name := range positions.order {
		values[i] = tbl.values[name]
	}
	return out.String(), values, nil
}

func writePlaceholder(out *strings.Builder, idx int) {
	out.WriteByte('$')
	out.WriteString(strconv.Itoa(idx))
}

func estimateSize(segs []segment) int {
	n := 0
	for _, seg := range segs {
		n += len(seg.text) + 4
	}
	return n
}

// Rewrite parses the template (through the shared template cache), validates
// it against the bundle, and returns positional SQL plus ordered bind values.
func Rewrite(template string, args Args) (string, []any, error) {
	t, err := parseCached(template)
	if err != nil {
		return "", nil, err
	}
	return t.Rewrite(args)
}

// RewriteWithFragments is Rewrite with ${name} references resolved against
// frags before validation. Arguments bound to the spliced fragments are
// merged with args; the same name may appear in both only with an equal
// value.
func RewriteWithFragments(template string, args Args, frags Fragments) (string, []any, error) {
	t, err := parseCached(template)
	if err != nil {
		return "", nil, err
	}
	merged, fragArgs, err := t.Splice(frags)
	if err != nil {
		return "", nil, err
	}
	all, err := mergeArgs(args, fragArgs)
	if err != nil {
		return "", nil, err
	}
	return merged.Rewrite(all)
}
