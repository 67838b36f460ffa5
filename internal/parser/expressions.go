package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/lexer"
)

// compoundBase maps each compound-assign operator to the arithmetic
// operator the Processor should look up before assigning (§4.4
// "Compound-assignment combines an arithmetic lookup with a pure/mixed
// assignment"). `$=` and `~=` lex as compound-assign operators per §4.1's
// lexical surface but have no corresponding entry in §4.4's binary
// operator tables; they parse to a Mutable node whose arithmetic op raises
// an evl diagnostic at evaluation time rather than being rejected here.
var compoundBase = map[lexer.TokenKind]lexer.TokenKind{
	lexer.OpPlusAssign:    lexer.OpPlus,
	lexer.OpMinusAssign:   lexer.OpMinus,
	lexer.OpStarAssign:    lexer.OpStar,
	lexer.OpSlashAssign:   lexer.OpSlash,
	lexer.OpPercentAssign: lexer.OpPercent,
	lexer.OpAmpAssign:     lexer.OpAmp,
	lexer.OpPipeAssign:    lexer.OpPipe,
	lexer.OpCaretAssign:   lexer.OpCaret,
	lexer.OpDollarAssign:  lexer.OpDollarAssign,
	lexer.OpTildeAssign:   lexer.OpTildeAssign,
}

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

// assignment is `shortOR ("=" assignment)?` (§4.3). The target must be an
// Identifier, DynamicGet, or StaticGet; it produces Assignment, DynamicSet,
// or StaticSet accordingly.
func (p *Parser) assignment() ast.Expression {
	expr := p.shortOR()
	if p.match(lexer.OpAssign) {
		eq := p.previous()
		value := p.assignment()
		switch target := expr.(type) {
		case *ast.Identifier:
			return &ast.Assignment{Token: eq, Target: target, Value: value}
		case *ast.DynamicGet:
			return &ast.DynamicSet{Token: eq, Object: target.Object, Name: target.Name, Value: value, SelfReference: target.SelfReference}
		case *ast.StaticGet:
			return &ast.StaticSet{Token: eq, Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errAt(eq, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) shortOR() ast.Expression {
	expr := p.shortAND()
	for p.check(lexer.OpOr) {
		op := p.advance()
		right := p.shortAND()
		expr = &ast.Logical{Token: op, Operator: op.Kind, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) shortAND() ast.Expression {
	expr := p.equality()
	for p.check(lexer.OpAnd) {
		op := p.advance()
		right := p.equality()
		expr = &ast.Logical{Token: op, Operator: op.Kind, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.check(lexer.OpEq) || p.check(lexer.OpNotEq) {
		op := p.advance()
		right := p.comparison()
		expr = &ast.Binary{Token: op, Operator: op.Kind, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expression {
	expr := p.lowPrio()
	for p.check(lexer.OpLess) || p.check(lexer.OpLessEq) || p.check(lexer.OpGreater) || p.check(lexer.OpGreaterEq) {
		op := p.advance()
		right := p.lowPrio()
		expr = &ast.Binary{Token: op, Operator: op.Kind, Left: expr, Right: right}
	}
	return expr
}

// lowPrio handles `+ - |` and their compound-assign forms (§4.3).
func (p *Parser) lowPrio() ast.Expression {
	expr := p.medPrio()
	for {
		switch {
		case p.check(lexer.OpPlus), p.check(lexer.OpMinus), p.check(lexer.OpPipe):
			op := p.advance()
			right := p.medPrio()
			expr = &ast.Binary{Token: op, Operator: op.Kind, Left: expr, Right: right}
		case p.isCompoundAssign():
			expr = p.mutable(expr)
		default:
			return expr
		}
	}
}

// medPrio handles `* / % & ^` and their compound-assign forms (§4.3); a
// `^` after an operand is taken by postfix first (see postfix).
func (p *Parser) medPrio() ast.Expression {
	expr := p.postfix()
	for {
		switch {
		case p.check(lexer.OpStar), p.check(lexer.OpSlash), p.check(lexer.OpPercent),
			p.check(lexer.OpAmp), p.check(lexer.OpCaret):
			op := p.advance()
			right := p.postfix()
			expr = &ast.Binary{Token: op, Operator: op.Kind, Left: expr, Right: right}
		case p.isCompoundAssign():
			expr = p.mutable(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) isCompoundAssign() bool {
	_, ok := compoundBase[p.peek().Kind]
	return ok
}

// mutable reduces a compound-assign operator into a Mutable node; the left
// side must be an identifier (§4.3 "the left side must be an identifier —
// the node produced is a Mutable").
func (p *Parser) mutable(left ast.Expression) ast.Expression {
	op := p.advance()
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.errAt(op, "compound assignment target must be an identifier")
	}
	right := p.medPrio()
	return &ast.Mutable{Token: op, Target: ident, Operator: compoundBase[op.Kind], Value: right}
}

// postfix handles `° ^ '` applied left-to-right after a prefix expression
// (§4.3 "postfix := prefix ( "°" | "^" | "'" )*"). postfix runs on each
// operand before medPrio looks for an operator, and this loop greedily
// consumes every trailing degree/caret/quote, so a `^` directly after an
// operand is always parsed as postfix transpose: medPrio's binary `^`
// (XOR) branch is never reached, and `a ^ b` is a parse error. The
// compound form `^=` is a separate token and is unaffected.
func (p *Parser) postfix() ast.Expression {
	expr := p.prefix()
	for p.check(lexer.OpDegree) || p.check(lexer.OpCaret) || p.check(lexer.OpQuote) {
		op := p.advance()
		expr = &ast.Postfix{Token: op, Operator: op.Kind, Operand: expr}
	}
	return expr
}

func (p *Parser) prefix() ast.Expression {
	if p.check(lexer.OpMinus) || p.check(lexer.OpPlus) || p.check(lexer.OpTilde) || p.check(lexer.OpBang) {
		op := p.advance()
		operand := p.prefix()
		return &ast.Unary{Token: op, Operator: op.Kind, Operand: operand}
	}
	return p.subscription()
}

func (p *Parser) subscription() ast.Expression {
	expr := p.call()
	for p.check(lexer.LBracket) {
		tok := p.advance()
		index := p.expression()
		p.consume(lexer.RBracket, "expected ']' after subscript")
		expr = &ast.Subscript{Token: tok, Target: expr, Index: index}
	}
	return expr
}

// call handles an optional leading `new`, then any chain of `(args)`,
// `.ident`, `::ident` (§4.3).
func (p *Parser) call() ast.Expression {
	isNew := false
	var newTok lexer.Token
	if p.check(lexer.KwNew) {
		newTok = p.advance()
		isNew = true
		// The primary after 'new' is not checked to be a type name here and
		// its token kind is left as it is: any primary is accepted, and
		// evaluation rejects a callee that is not a Class.
	}

	expr := p.primary()
	beganWithSelf := false
	if _, ok := expr.(*ast.SelfExpr); ok {
		beganWithSelf = true
	}

	for {
		switch {
		case p.check(lexer.LParen):
			tok := p.advance()
			args := p.arguments()
			p.consume(lexer.RParen, "expected ')' after arguments")
			call := &ast.Call{Token: tok, Callee: expr, Arguments: args, IsNew: isNew}
			isNew = false
			expr = call
		case p.check(lexer.Dot):
			tok := p.advance()
			name, _ := p.consumeMemberName("expected property name after '.'")
			expr = &ast.DynamicGet{Token: tok, Object: expr, Name: name.Lexeme, SelfReference: beganWithSelf}
		case p.check(lexer.OpDoubleColon):
			tok := p.advance()
			name, _ := p.consumeMemberName("expected member name after '::'")
			expr = &ast.StaticGet{Token: tok, Object: expr, Name: name.Lexeme}
		default:
			if isNew {
				p.errAt(newTok, "expected constructor call after 'new'")
			}
			return expr
		}
	}
}

// consumeMemberName accepts an identifier, or one of the keyword-lexed
// library member names (write, read, clock, sleep, random), after '.'/'::'.
func (p *Parser) consumeMemberName(message string) (lexer.Token, bool) {
	switch p.peek().Kind {
	case lexer.KwWrite, lexer.KwRead, lexer.KwClock, lexer.KwSleep, lexer.KwRandom:
		return p.advance(), true
	}
	return p.consumeIdent(message)
}

func (p *Parser) arguments() []ast.Expression {
	var args []ast.Expression
	if !p.check(lexer.RParen) {
		args = append(args, p.expression())
		for p.match(lexer.Comma) {
			args = append(args, p.expression())
		}
	}
	return args
}

// primary is the grammar's terminal production (§4.3).
func (p *Parser) primary() ast.Expression {
	tok := p.peek()
	switch tok.Kind {
	case lexer.IntegerLit:
		p.advance()
		n, _ := strconv.ParseInt(tok.Lexeme, 0, 64)
		return &ast.IntegerLiteral{Token: tok, Value: n}
	case lexer.RealLit:
		p.advance()
		f, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.RealLiteral{Token: tok, Value: f}
	case lexer.ImaginaryLit:
		p.advance()
		f, _ := strconv.ParseFloat(strings.TrimSuffix(tok.Lexeme, "i"), 64)
		return &ast.ImaginaryLiteral{Token: tok, Value: f}
	case lexer.StringLit:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}
	case lexer.CharacterLit:
		p.advance()
		r := rune(0)
		for _, c := range tok.Lexeme {
			r = c
			break
		}
		return &ast.CharacterLiteral{Token: tok, Value: r}
	case lexer.BooleanLit:
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Lexeme == "true"}
	case lexer.RealIdiom:
		p.advance()
		return &ast.RealIdiomLiteral{Token: tok, Name: tok.Lexeme}
	case lexer.KwSelf:
		p.advance()
		if !p.inClassBody {
			p.errAt(tok, "'self' outside a class body")
		}
		return &ast.SelfExpr{Token: tok}
	case lexer.Symbol, lexer.CustomType:
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Lexeme}
	case lexer.LParen:
		p.advance()
		expr := p.expression()
		p.consume(lexer.RParen, "expected ')' after expression")
		return &ast.Grouping{Token: tok, Inner: expr}
	case lexer.LBracket:
		p.advance()
		elems := p.arguments()
		p.consume(lexer.RBracket, "expected ']' after list literal")
		return &ast.ListLiteral{Token: tok, Elements: elems}
	case lexer.BasisBra, lexer.BraSymbol:
		p.advance()
		return &ast.Bra{Token: tok, Name: braOrKetName(tok.Lexeme)}
	case lexer.BasisKet, lexer.KetSymbol:
		p.advance()
		return &ast.Ket{Token: tok, Name: braOrKetName(tok.Lexeme)}
	case lexer.BraKet:
		p.advance()
		names := braKetNames(tok.Lexeme)
		return &ast.Inner{Token: tok, BraName: names[0], KetName: names[1]}
	case lexer.KetBra:
		p.advance()
		names := braKetNames(tok.Lexeme)
		return &ast.Outer{Token: tok, KetName: names[0], BraName: names[1]}
	default:
		p.errAt(tok, "expected expression")
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Lexeme}
	}
}

var braKetNameRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*|[01]`)

// braKetNames extracts the identifier(s) embedded in a bra/ket token's raw
// lexeme via regex (§4.3 "extracting the identifier(s) via regex over the
// token lexeme").
func braKetNames(lexeme string) []string {
	return braKetNameRe.FindAllString(lexeme, -1)
}

// braOrKetName extracts the single identifier from a vector declaration's
// bra/ket declarator lexeme.
func braOrKetName(lexeme string) string {
	names := braKetNames(lexeme)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
