package pgnamed

// Arg is one named argument: a name and an opaque bind value. Values are
// passed through to the driver untouched.
type Arg struct {
	Name  string
	Value any
}

// Named creates a single named argument.
func Named(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Args is an ordered named-argument bundle. The order is preserved for
// diagnostics only; placeholder positions are assigned by first occurrence
// in the template, not by bundle order.
type Args []Arg

// With returns a copy of the bundle with one more argument appended.
func (a Args) With(name string, value any) Args {
	out := make(Args, len(a), len(a)+1)
	copy(out, a)
	return append(out, Arg{Name: name, Value: value})
}

// argTable is the lookup form of an argument bundle: name → value plus the
// declaration order. Duplicate names are rejected at construction.
type argTable struct {
	order  []string
	values map[string]any
}

// newArgTable builds an argTable from a bundle, rejecting duplicate names
// with a *DuplicateDeclarationError.
func newArgTable(args Args) (*argTable, error) {
	tbl := &argTable{
		order:  make([]string, 0, len(args)),
		values: make(map[string]any, len(args)),
	}
	for _, arg := range args {
		if _, dup := tbl.values[arg.Name]; dup {
			return nil, NewDuplicateDeclarationError(arg.Name)
		}
		tbl.order = append(tbl.order, arg.Name)
		tbl.values[arg.Name] = arg.Value
	}
	return tbl, nil
}

func (t *argTable) has(name string) bool {
	_, ok := t.values[name]
	return ok
}
