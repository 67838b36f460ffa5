package lexer

import "fmt"

// Token is the unit the lexer produces: a lexeme, its kind, and a byte
// offset into the owning code unit's source buffer (§3). Tokens are
// produced once; later stages change a Token's Kind in place rather than
// allocating a new slice — Wings blanks imports and reclassifies type
// names, and the parser reclassifies a class's own name when it parses
// the class declaration.
type Token struct {
	Lexeme   string
	Kind     TokenKind
	Position uint32
}

// String renders a Token for debugging and parser error messages.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Lexeme, t.Position)
}

// Is reports whether the token has the given kind.
func (t Token) Is(k TokenKind) bool { return t.Kind == k }
