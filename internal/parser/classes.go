package parser

import (
	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/lexer"
)

// reclassifyTypeName rewrites every Symbol token matching name to
// CustomType, mirroring wings' own reclassify so a same-unit class
// declaration and an imported one are indistinguishable to the rest of the
// grammar once their name has been seen once.
func reclassifyTypeName(tokens []lexer.Token, name string) {
	for i := range tokens {
		if tokens[i].Kind == lexer.Symbol && tokens[i].Lexeme == name {
			tokens[i].Kind = lexer.CustomType
		}
	}
}

// parameters parses a parenthesised `(name: Type, ...)` list, already
// positioned just before '('.
func (p *Parser) parameters() []*ast.Parameter {
	p.consume(lexer.LParen, "expected '(' to begin parameter list")
	var params []*ast.Parameter
	if !p.check(lexer.RParen) {
		for {
			nameTok, ok := p.consumeIdent("expected parameter name")
			if !ok {
				break
			}
			p.consume(lexer.OpColon, "expected ':' after parameter name")
			typeTok := p.advance() // BasicTypeName or CustomType
			params = append(params, &ast.Parameter{Token: nameTok, TypeName: typeTok.Lexeme, Name: nameTok.Lexeme})
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RParen, "expected ')' after parameters")
	return params
}

// functionDeclaration parses `func name(params) -> ReturnType { body }`.
func (p *Parser) functionDeclaration() ast.Statement {
	tok := p.advance() // 'func'
	name, _ := p.consumeIdent("expected function name")
	params := p.parameters()
	p.consume(lexer.OpArrow, "expected '->' before function return type")
	retTok := p.advance()

	wasFn := p.inFunction
	p.inFunction = true
	body := p.block()
	p.inFunction = wasFn

	return &ast.Function{Token: tok, Name: name.Lexeme, Parameters: params, ReturnType: retTok.Lexeme, Body: body}
}

// procedureDeclaration parses `proc name(params) { body }`.
func (p *Parser) procedureDeclaration() ast.Statement {
	tok := p.advance() // 'proc'
	name, _ := p.consumeIdent("expected procedure name")
	params := p.parameters()

	wasProc := p.inProcedure
	p.inProcedure = true
	body := p.block()
	p.inProcedure = wasProc

	return &ast.Procedure{Token: tok, Name: name.Lexeme, Parameters: params, Body: body}
}

// classDeclaration parses `class Name { member... }` (§4.3 "class body").
func (p *Parser) classDeclaration() ast.Statement {
	tok := p.advance() // 'class'
	name, _ := p.consumeIdent("expected class name")
	// Wings only reclassifies identifiers it already knows are types
	// (imported libraries, other wings); a class declared in this unit
	// names its own type for the first time, so every other occurrence of
	// its name in the token stream must be rewritten from Symbol to
	// CustomType here, the same way Wings does it for imports.
	reclassifyTypeName(p.tokens, name.Lexeme)
	p.consume(lexer.LBrace, "expected '{' after class name")

	wasInClass := p.inClassBody
	p.inClassBody = true

	var members []*ast.Member
	hasCreate, hasDelete := false, false
	for !p.check(lexer.RBrace) && !p.isAtEnd() {
		m := p.classMember(name.Lexeme)
		if m == nil {
			continue
		}
		if m.IsCreate {
			if hasCreate {
				p.errAt(m.Token, "duplicate constructor declaration")
			}
			hasCreate = true
		}
		if m.IsDelete {
			if hasDelete {
				p.errAt(m.Token, "duplicate destructor declaration")
			}
			hasDelete = true
		}
		members = append(members, m)
	}
	p.consume(lexer.RBrace, "expected '}' after class body")
	p.inClassBody = wasInClass

	return &ast.Class{Token: tok, Name: name.Lexeme, Members: members}
}

// classMember parses one class-body declaration: its leading modifier and
// storage/lifecycle specifiers, followed by a field or method declaration
// (§4.3 "Class body").
func (p *Parser) classMember(className string) *ast.Member {
	start := p.peek()
	modifier := ast.Public
	static := false
	isCreate, isDelete := false, false
	sawModifier := false

	for {
		switch {
		case p.check(lexer.ModPublic):
			p.advance()
			modifier, sawModifier = ast.Public, true
		case p.check(lexer.ModHidden):
			p.advance()
			modifier, sawModifier = ast.Hidden, true
		case p.check(lexer.ModSecure):
			p.advance()
			modifier, sawModifier = ast.Secure, true
		case p.check(lexer.ModImmune):
			p.advance()
			modifier, sawModifier = ast.Immune, true
		case p.check(lexer.ModStatic):
			p.advance()
			modifier, static, sawModifier = ast.Hidden, true, true
		case p.check(lexer.ModShared):
			p.advance()
			modifier, static, sawModifier = ast.Public, true, true
		case p.check(lexer.SpecCreate):
			p.advance()
			isCreate = true
		case p.check(lexer.SpecDelete):
			p.advance()
			isDelete = true
		default:
			goto body
		}
	}

body:
	if !sawModifier && !isCreate && !isDelete {
		p.errAt(p.peek(), "class member must begin with an access modifier or lifecycle specifier")
	}

	var decl ast.Statement
	switch {
	case p.check(lexer.KwProc):
		decl = p.procedureDeclaration()
		if isDelete {
			if proc, ok := decl.(*ast.Procedure); ok && len(proc.Parameters) != 0 {
				p.errAt(start, "destructor has no parameters")
			}
		}
		if isCreate || isDelete {
			if proc, ok := decl.(*ast.Procedure); ok && proc.Name != className {
				p.errAt(start, "@create/@delete procedure name must match the class name")
			}
		}
		if (isCreate || isDelete) && (modifier == ast.Secure || modifier == ast.Immune) {
			p.errAt(start, "@secure and @immune may not modify methods")
		}
	case p.check(lexer.KwFunc):
		decl = p.functionDeclaration()
		if modifier == ast.Secure || modifier == ast.Immune {
			p.errAt(start, "@secure and @immune may not modify methods")
		}
	case p.check(lexer.BasicTypeName):
		decl = p.variableDeclaration(false)
	case p.check(lexer.CustomType):
		decl = p.variableDeclaration(true)
	default:
		p.errAt(p.peek(), "expected field or method declaration in class body")
		p.synchronize()
		return nil
	}

	return &ast.Member{Token: start, Modifier: modifier, Static: static, IsCreate: isCreate, IsDelete: isDelete, Decl: decl}
}
