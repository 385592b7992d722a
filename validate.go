package pgnamed

// validate cross-checks a template's references against the argument table
// and enforces the column-list / value-list pairing rules. It runs over the
// final (possibly fragment-merged) segment sequence, so a $[..] may pair
// with a column list contributed by a different fragment.
func validate(segs []segment, tbl *argTable) error {
	referenced := make(map[string]struct{})
	var pending *segment // column list awaiting its $[..]

	for i := range segs {
		seg := &segs[i]
		switch seg.kind {
		case segName:
			if !tbl.has(seg.text) {
				return NewUndeclaredArgumentError(seg.text, seg.pos)
			}
			referenced[seg.text] = struct{}{}

		case segColumns:
			for _, name := range seg.names {
				if !tbl.has(name) {
					return NewUndeclaredArgumentError(name, seg.pos)
				}
				referenced[name] = struct{}{}
			}
			if pending != nil {
				return NewUnpairedExpansionError(pending.pos, "column list is never consumed by a following $[..]")
			}
			pending = seg

		case segExpand:
			if pending == nil {
				return NewUnpairedExpansionError(seg.pos, "no preceding unconsumed column list for $[..]")
			}
			pending = nil

		case segFragment:
			// Splice resolves fragment references before rewriting; one
			// surviving here has no binding.
			return NewUndeclaredFragmentError(seg.text, seg.pos)
		}
	}
	if pending != nil {
		return NewUnpairedExpansionError(pending.pos, "column list is never consumed by a following $[..]")
	}

	for _, name := range tbl.order {
		if _, ok := referenced[name]; !ok {
			return NewUnusedArgumentError(name)
		}
	}
	return nil
}
