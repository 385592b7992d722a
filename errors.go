package pgnamed

import "fmt"

// SyntaxError represents malformed placeholder or bracket syntax in a query
// template. Offset is the byte offset of the offending token in the template
// text; Expected describes the token the parser was looking for.
type SyntaxError struct {
	Offset   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: expected %s", e.Offset, e.Expected)
}

// NewSyntaxError creates a new SyntaxError
func NewSyntaxError(offset int, expected string) *SyntaxError {
	return &SyntaxError{
		Offset:   offset,
		Expected: expected,
	}
}

// UndeclaredArgumentError reports a template reference with no backing value
// in the argument bundle.
type UndeclaredArgumentError struct {
	Name   string
	Offset int
}

func (e *UndeclaredArgumentError) Error() string {
	return fmt.Sprintf("argument %q is referenced at offset %d but not provided", e.Name, e.Offset)
}

// NewUndeclaredArgumentError creates a new UndeclaredArgumentError
func NewUndeclaredArgumentError(name string, offset int) *UndeclaredArgumentError {
	return &UndeclaredArgumentError{
		Name:   name,
		Offset: offset,
	}
}

// UnusedArgumentError reports a provided argument value that is never
// referenced by the template. Treated as an error to catch typos that would
// otherwise silently drop a filter.
type UnusedArgumentError struct {
	Name string
}

func (e *UnusedArgumentError) Error() string {
	return fmt.Sprintf("argument %q is provided but never referenced", e.Name)
}

// NewUnusedArgumentError creates a new UnusedArgumentError
func NewUnusedArgumentError(name string) *UnusedArgumentError {
	return &UnusedArgumentError{Name: name}
}

// DuplicateDeclarationError reports a name bound twice in one argument
// bundle, or bound to conflicting values across merged fragments.
type DuplicateDeclarationError struct {
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("argument %q is declared more than once", e.Name)
}

// NewDuplicateDeclarationError creates a new DuplicateDeclarationError
func NewDuplicateDeclarationError(name string) *DuplicateDeclarationError {
	return &DuplicateDeclarationError{Name: name}
}

// UnpairedExpansionError reports a $[..] with no available preceding column
// list, or a column list that is consumed more than once or never consumed.
type UnpairedExpansionError struct {
	Offset int
	Reason string
}

func (e *UnpairedExpansionError) Error() string {
	return fmt.Sprintf("unpaired expansion at offset %d: %s", e.Offset, e.Reason)
}

// NewUnpairedExpansionError creates a new UnpairedExpansionError
func NewUnpairedExpansionError(offset int, reason string) *UnpairedExpansionError {
	return &UnpairedExpansionError{
		Offset: offset,
		Reason: reason,
	}
}

// UndeclaredFragmentError reports a ${name} reference with no matching
// fragment in the supplied fragment set.
type UndeclaredFragmentError struct {
	Name   string
	Offset int
}

func (e *UndeclaredFragmentError) Error() string {
	return fmt.Sprintf("fragment %q is referenced at offset %d but not provided", e.Name, e.Offset)
}

// NewUndeclaredFragmentError creates a new UndeclaredFragmentError
func NewUndeclaredFragmentError(name string, offset int) *UndeclaredFragmentError {
	return &UndeclaredFragmentError{
		Name:   name,
		Offset: offset,
	}
}
