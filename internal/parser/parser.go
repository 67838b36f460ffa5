// Package parser implements Spin's recursive-descent parser (§4.3): one
// function per precedence level, from assignment down to primary, plus the
// statement grammar and class-body grammar.
package parser

import (
	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/spinerr"
	"github.com/spin-lang/spin/internal/wings"
)

// SyntaxTree is one unit's parse result: its statements and the set of
// library ids it pulled in (§3 "SyntaxTree").
type SyntaxTree struct {
	Statements []ast.Statement
	Libraries  map[wings.Library]bool
}

// Parser walks a flat token slice, tracking the context booleans that
// validate break/continue/return/self (§4.3).
type Parser struct {
	unit    *wings.CodeUnit
	tokens  []lexer.Token
	pos     int
	errors  *spinerr.List

	inControlFlow bool
	inFunction    bool
	inProcedure   bool
	inClassBody   bool
}

// New creates a Parser over one resolved code unit.
func New(unit *wings.CodeUnit) *Parser {
	return &Parser{unit: unit, tokens: unit.Tokens, errors: &spinerr.List{}}
}

// Parse runs the statement grammar over the whole unit, hoists class and
// routine declarations to the front, and returns a ParserErrorException
// (the accumulated spinerr.List) if any errors were recorded (§4.3 "the
// parser collects all errors into a per-unit list... throws a
// ParserErrorException carrying the full list").
func (p *Parser) Parse() ([]ast.Statement, error) {
	var hoisted, rest []ast.Statement
	p.match(lexer.BeginFile)
	for !p.isAtEnd() {
		if p.check(lexer.EndFile) {
			break
		}
		stmt := p.declaration()
		if stmt == nil {
			continue
		}
		switch stmt.(type) {
		case *ast.Class, *ast.Function, *ast.Procedure:
			hoisted = append(hoisted, stmt)
		default:
			rest = append(rest, stmt)
		}
	}
	if p.errors.HasErrors() {
		return nil, p.errors
	}
	return append(hoisted, rest...), nil
}

// --- token stream helpers ---

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.tokens[p.pos].Kind == lexer.EndFile
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EndFile}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EndFile}
	}
	return p.tokens[idx]
}

func (p *Parser) previous() lexer.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(k lexer.TokenKind) bool {
	if p.isAtEnd() && k != lexer.EndFile {
		return false
	}
	return p.peek().Kind == k
}

// checkIdent reports whether the current token can stand as an identifier:
// Wings may have reclassified a Symbol to CustomType (§4.2), so the parser
// accepts either kind uniformly wherever an identifier is expected.
func (p *Parser) checkIdent() bool {
	k := p.peek().Kind
	return k == lexer.Symbol || k == lexer.CustomType
}

func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(k lexer.TokenKind, message string) (lexer.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	p.errAt(p.peek(), message)
	return lexer.Token{}, false
}

func (p *Parser) consumeIdent(message string) (lexer.Token, bool) {
	if p.checkIdent() {
		return p.advance(), true
	}
	p.errAt(p.peek(), message)
	return lexer.Token{}, false
}

func (p *Parser) errAt(tok lexer.Token, message string) {
	line, col := spinerr.ResolveLine(p.unit.Contents, tok.Position)
	p.errors.Add(spinerr.New(spinerr.Syntax, p.unit.Name, line, col, "%s", message))
}

// synchronize discards tokens until a ';' or a statement-starting keyword,
// per §4.3's panic-mode recovery.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.Semi {
			return
		}
		switch p.peek().Kind {
		case lexer.KwIf, lexer.KwWhile, lexer.KwDo, lexer.KwFor, lexer.KwLoop,
			lexer.KwRepeat, lexer.KwUntil, lexer.KwReturn, lexer.KwFunc,
			lexer.KwProc, lexer.KwClass, lexer.KwDelete, lexer.KwBreak, lexer.KwContinue:
			return
		}
		p.advance()
	}
}
