package pgnamed

import "reflect"

// maxFragmentDepth bounds nested ${name} resolution so that fragments
// referencing each other in a cycle fail instead of looping.
const maxFragmentDepth = 8

// Fragment is an independently parsed partial template, optionally carrying
// the arguments for the names it references. Fragments are combined into a
// host template by ${name} splice references or by Concat before validation
// and rewriting.
type Fragment struct {
	tmpl *Template
	args Args
}

// ParseFragment parses a partial SQL template into a Fragment. Any bound
// arguments travel with the fragment and are merged into the host bundle
// when it is spliced.
func ParseFragment(src string, args ...Arg) (*Fragment, error) {
	t, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return &Fragment{tmpl: t, args: Args(args)}, nil
}

// MustParseFragment is like ParseFragment but panics on error.
func MustParseFragment(src string, args ...Arg) *Fragment {
	f, err := ParseFragment(src, args...)
	if err != nil {
		panic(err)
	}
	return f
}

// Template returns the fragment's parsed template.
func (f *Fragment) Template() *Template { return f.tmpl }

// Args returns the arguments bound to the fragment.
func (f *Fragment) Args() Args { return f.args }

// Concat combines fragments in the given order into one fragment. Segment
// order follows the concatenation order, so a column list in one fragment
// can be consumed by a $[..] in a later one.
func Concat(frags ...*Fragment) *Fragment {
	var segs []segment
	var src string
	var args Args
	for _, f := range frags {
		segs = append(segs, f.tmpl.segments...)
		src += f.tmpl.src
		args = append(args, f.args...)
	}
	return &Fragment{tmpl: &Template{src: src, segments: segs}, args: args}
}

// Fragments maps splice names to fragments; splice order is determined by
// the ${name} references in the host template, not by this map.
type Fragments map[string]*Fragment

// Splice resolves every ${name} reference in the template against frags and
// returns the merged template together with the arguments collected from the
// spliced fragments, in splice order. Fragments may reference further
// fragments; cyclic references are rejected.
func (t *Template) Splice(frags Fragments) (*Template, Args, error) {
	segs, args, err := splice(t.segments, frags, 0)
	if err != nil {
		return nil, nil, err
	}
	return &Template{src: t.src, segments: segs}, args, nil
}

func splice(segs []segment, frags Fragments, depth int) ([]segment, Args, error) {
	out := make([]segment, 0, len(segs))
	var args Args
	for _, seg := range segs {
		if seg.kind != segFragment {
			out = append(out, seg)
			continue
		}
		frag, ok := frags[seg.text]
		if !ok {
			return nil, nil, NewUndeclaredFragmentError(seg.text, seg.pos)
		}
		if depth >= maxFragmentDepth {
			return nil, nil, NewSyntaxError(seg.pos, "non-recursive fragment reference `"+seg.text+"`")
		}
		inner, innerArgs, err := splice(frag.tmpl.segments, frags, depth+1)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, inner...)
		args = append(args, frag.args...)
		args = append(args, innerArgs...)
	}
	return out, args, nil
}

// mergeArgs appends fragment-supplied arguments to the host bundle. A name
// supplied by both must carry an equal value; conflicting values are a
// DuplicateDeclarationError. Equal re-declarations collapse to the first.
func mergeArgs(host Args, extra Args) (Args, error) {
	if len(extra) == 0 {
		return host, nil
	}
	byName := make(map[string]any, len(host))
	for _, arg := range host {
		byName[arg.Name] = arg.Value
	}
	out := make(Args, len(host), len(host)+len(extra))
	copy(out, host)
	for _, arg := range extra {
		if have, ok := byName[arg.Name]; ok {
			if !reflect.DeepEqual(have, arg.Value) {
				return nil, NewDuplicateDeclarationError(arg.Name)
			}
			continue
		}
		byName[arg.Name] = arg.Value
		out = append(out, arg)
	}
	return out, nil
}
