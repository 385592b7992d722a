package pgnamed

import "strings"

// tokenType is the lexical category of a scanner token.
type tokenType int

const (
	tokEOF tokenType = iota

	// tokLiteral is a run of raw SQL text passed through unmodified. It
	// includes any string literals, quoted identifiers, dollar-quoted
	// strings, and comments, which are never scanned for placeholders.
	tokLiteral

	// tokName is a $identifier named placeholder. Text holds the bare
	// identifier without the leading dollar sign.
	tokName

	// tokList is a $[...] bracket form. Text holds the raw content between
	// the brackets; the template parser decides whether it is a column list
	// or the $[..] value-list expansion.
	tokList

	// tokFragment is a ${identifier} fragment reference. Text holds the
	// bare identifier.
	tokFragment
)

// token is a single lexical token from a query template.
type token struct {
	typ  tokenType
	text string
	pos  int // byte offset of the first character (0-based)
}

// scanner walks raw SQL text and finds placeholder syntax while treating
// quoted strings, dollar-quoted strings, and comments as opaque. All byte
// offsets are 0-based indices into the original template string.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner { return &scanner{src: src} }

// peek returns the byte at position s.pos+offset, or 0 if out of bounds.
func (s *scanner) peek(offset int) byte {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

// scan returns the next token, or a token of type tokEOF when the input is
// exhausted. Literal runs are collected into a single tokLiteral; a run ends
// where a placeholder construct begins.
func (s *scanner) scan() (token, error) {
	if s.pos >= len(s.src) {
		return token{typ: tokEOF, pos: s.pos}, nil
	}
	start := s.pos

	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == '\'':
			s.quotedString()
		case ch == '"':
			s.quotedIdent()
		case (ch == 'e' || ch == 'E') && s.peek(1) == '\'' && !s.midWord():
			s.escapeString()
		case ch == '-' && s.peek(1) == '-':
			s.lineComment()
		case ch == '/' && s.peek(1) == '*':
			s.blockComment()
		case ch == '$':
			if tagLen := s.dollarQuoteTag(); tagLen >= 0 {
				// $tag$...$tag$ string, opaque like any other literal
				if err := s.dollarQuoted(tagLen); err != nil {
					return token{}, err
				}
				continue
			}
			if s.pos > start {
				return token{typ: tokLiteral, text: s.src[start:s.pos], pos: start}, nil
			}
			return s.placeholder()
		default:
			s.pos++
		}
	}
	return token{typ: tokLiteral, text: s.src[start:s.pos], pos: start}, nil
}

// scanAll tokenizes the entire template (no EOF entry).
func (s *scanner) scanAll() ([]token, error) {
	var toks []token
	for {
		t, err := s.scan()
		if err != nil {
			return nil, err
		}
		if t.typ == tokEOF {
			return toks, nil
		}
		toks = append(toks, t)
	}
}

// midWord reports whether the byte at the current position continues a longer
// word. An E before a quote opens an escape string only as its own token:
// in LIKE'...' the E belongs to the identifier and the string is a plain
// '...' literal.
func (s *scanner) midWord() bool {
	return s.pos > 0 && isIdentCont(s.src[s.pos-1])
}

// quotedString consumes a '...' string literal. A doubled quote '' is the
// standard SQL escape for a literal single-quote and does not end the string.
func (s *scanner) quotedString() {
	s.pos++ // consume opening '
	for s.pos < len(s.src) {
		if s.src[s.pos] != '\'' {
			s.pos++
			continue
		}
		s.pos++
		if s.pos < len(s.src) && s.src[s.pos] == '\'' {
			s.pos++ // '' escape, keep scanning
			continue
		}
		return
	}
}

// quotedIdent consumes a "..." double-quoted identifier, with "" as the
// escaped double-quote.
func (s *scanner) quotedIdent() {
	s.pos++ // consume opening "
	for s.pos < len(s.src) {
		if s.src[s.pos] != '"' {
			s.pos++
			continue
		}
		s.pos++
		if s.pos < len(s.src) && s.src[s.pos] == '"' {
			s.pos++ // "" escape
			continue
		}
		return
	}
}

// escapeString consumes an E'...' escape string. A backslash followed by any
// character is a two-byte escape sequence, so \' does not close the string.
func (s *scanner) escapeString() {
	s.pos += 2 // consume E'
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if ch == '\\' {
			s.pos += 2
			continue
		}
		if ch != '\'' {
			s.pos++
			continue
		}
		s.pos++
		if s.pos < len(s.src) && s.src[s.pos] == '\'' {
			s.pos++
			continue
		}
		return
	}
}

// lineComment consumes from "--" to end of line (newline not consumed).
func (s *scanner) lineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' && s.src[s.pos] != '\r' {
		s.pos++
	}
}

// blockComment consumes /* ... */ with PostgreSQL comment nesting.
func (s *scanner) blockComment() {
	s.pos += 2 // consume opening /*
	for depth := 1; s.pos < len(s.src) && depth > 0; {
		switch {
		case s.src[s.pos] == '/' && s.peek(1) == '*':
			depth++
			s.pos += 2
		case s.src[s.pos] == '*' && s.peek(1) == '/':
			depth--
			s.pos += 2
		default:
			s.pos++
		}
	}
}

// dollarQuoteTag checks whether the '$' at the current position opens a
// dollar-quote delimiter $tag$ (including the empty-tag $$ form). It returns
// the delimiter length, or -1 when the dollar sign starts a placeholder
// instead. The position is not advanced.
//
// A $identifier counts as a delimiter only when a second '$' immediately
// follows the tag word; $name followed by anything else is a placeholder.
func (s *scanner) dollarQuoteTag() int {
	j := s.pos + 1
	if j < len(s.src) && s.src[j] == '$' {
		return 2 // $$
	}
	if j >= len(s.src) || !isIdentStart(s.src[j]) {
		return -1
	}
	for j < len(s.src) && isIdentCont(s.src[j]) {
		j++
	}
	if j < len(s.src) && s.src[j] == '$' {
		return j - s.pos + 1
	}
	return -1
}

// dollarQuoted consumes a $tag$...$tag$ string whose opening delimiter has
// length tagLen. An unterminated dollar-quote is a SyntaxError, never
// reinterpreted as a placeholder.
func (s *scanner) dollarQuoted(tagLen int) error {
	start := s.pos
	delim := s.src[start : start+tagLen]
	s.pos += tagLen
	idx := strings.Index(s.src[s.pos:], delim)
	if idx < 0 {
		return NewSyntaxError(start, "closing dollar-quote delimiter "+delim)
	}
	s.pos += idx + len(delim)
	return nil
}

// placeholder scans one of the placeholder forms at the current '$':
// $identifier, $[...], or ${identifier}.
func (s *scanner) placeholder() (token, error) {
	start := s.pos
	s.pos++ // consume $

	switch {
	case s.pos < len(s.src) && s.src[s.pos] == '[':
		return s.bracketList(start)
	case s.pos < len(s.src) && s.src[s.pos] == '{':
		return s.fragmentRef(start)
	case s.pos < len(s.src) && isIdentStart(s.src[s.pos]):
		j := s.pos
		for j < len(s.src) && isIdentCont(s.src[j]) {
			j++
		}
		name := s.src[s.pos:j]
		s.pos = j
		return token{typ: tokName, text: name, pos: start}, nil
	default:
		return token{}, NewSyntaxError(start, "identifier or `[` after `$`")
	}
}

// bracketList scans $[ ... ] and returns the raw bracket content. The
// content may only contain identifier characters, whitespace, commas, and
// dots; anything else means the closing bracket is missing.
func (s *scanner) bracketList(start int) (token, error) {
	s.pos++ // consume [
	inner := s.pos
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if ch == ']' {
			text := s.src[inner:s.pos]
			s.pos++
			return token{typ: tokList, text: text, pos: start}, nil
		}
		if !isIdentCont(ch) && !isSpace(ch) && ch != ',' && ch != '.' {
			break
		}
		s.pos++
	}
	return token{}, NewSyntaxError(s.pos, "closing `]`")
}

// fragmentRef scans ${identifier}.
func (s *scanner) fragmentRef(start int) (token, error) {
	s.pos++ // consume {
	if s.pos >= len(s.src) || !isIdentStart(s.src[s.pos]) {
		return token{}, NewSyntaxError(s.pos, "identifier after `${`")
	}
	j := s.pos
	for j < len(s.src) && isIdentCont(s.src[j]) {
		j++
	}
	name := s.src[s.pos:j]
	if j >= len(s.src) || s.src[j] != '}' {
		return token{}, NewSyntaxError(j, "closing `}`")
	}
	s.pos = j + 1
	return token{typ: tokFragment, text: name, pos: start}, nil
}

// isIdentStart reports whether ch can open an identifier or dollar-quote tag.
func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdentCont reports whether ch can continue an identifier.
func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// isValidIdent reports whether name is a syntactically valid unquoted
// column or argument identifier.
func isValidIdent(name string) bool {
	if name == "" || !isIdentStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentCont(name[i]) {
			return false
		}
	}
	return true
}
