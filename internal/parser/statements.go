package parser

import (
	"github.com/spin-lang/spin/internal/ast"
	"github.com/spin-lang/spin/internal/lexer"
)

// declaration parses one top-level-or-block declaration/statement,
// recovering via synchronize() on error (§4.3 "Synchronisation after an
// error advances tokens until a ';' or a statement keyword").
func (p *Parser) declaration() ast.Statement {
	stmt := p.tryDeclaration()
	if p.errors.HasErrors() && stmt == nil {
		p.synchronize()
	}
	return stmt
}

func (p *Parser) tryDeclaration() ast.Statement {
	switch {
	case p.check(lexer.KwClass):
		return p.classDeclaration()
	case p.check(lexer.KwFunc):
		return p.functionDeclaration()
	case p.check(lexer.KwProc):
		return p.procedureDeclaration()
	case p.check(lexer.KwVec):
		return p.vectorDeclaration()
	case p.check(lexer.BasicTypeName):
		return p.variableDeclaration(false)
	case p.check(lexer.CustomType) && (p.peekAt(1).Kind == lexer.Symbol || p.peekAt(1).Kind == lexer.CustomType):
		return p.variableDeclaration(true)
	default:
		return p.statement()
	}
}

// statement parses the non-declaration statement forms (§4.3).
func (p *Parser) statement() ast.Statement {
	switch {
	case p.check(lexer.LBrace):
		return p.block()
	case p.check(lexer.KwIf):
		return p.ifStatement()
	case p.check(lexer.KwWhile):
		return p.whileStatement()
	case p.check(lexer.KwDo):
		return p.doWhileStatement()
	case p.check(lexer.KwUntil):
		return p.untilStatement()
	case p.check(lexer.KwRepeat):
		return p.repeatStatement()
	case p.check(lexer.KwLoop):
		return p.loopStatement()
	case p.check(lexer.KwFor):
		return p.forStatement()
	case p.check(lexer.KwBreak):
		return p.breakStatement()
	case p.check(lexer.KwContinue):
		return p.continueStatement()
	case p.check(lexer.KwRest):
		return p.restStatement()
	case p.check(lexer.KwReturn):
		return p.returnStatement()
	case p.check(lexer.KwDelete):
		return p.deleteStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() *ast.Block {
	tok := p.advance() // '{'
	var stmts []ast.Statement
	for !p.check(lexer.RBrace) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RBrace, "expected '}' after block")
	return &ast.Block{Token: tok, Statements: stmts}
}

func (p *Parser) ifStatement() ast.Statement {
	tok := p.advance()
	p.consume(lexer.LParen, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(lexer.RParen, "expected ')' after if condition")
	then := p.statement()
	var elseBranch ast.Statement
	if p.match(lexer.KwElse) {
		elseBranch = p.statement()
	}
	return &ast.If{Token: tok, Condition: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Statement {
	tok := p.advance()
	p.consume(lexer.LParen, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(lexer.RParen, "expected ')' after while condition")
	wasInLoop := p.inControlFlow
	p.inControlFlow = true
	body := p.statement()
	p.inControlFlow = wasInLoop
	return &ast.While{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) doWhileStatement() ast.Statement {
	tok := p.advance()
	wasInLoop := p.inControlFlow
	p.inControlFlow = true
	body := p.statement()
	p.inControlFlow = wasInLoop
	p.consume(lexer.KwWhile, "expected 'while' after do-block")
	p.consume(lexer.LParen, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(lexer.RParen, "expected ')' after while condition")
	p.consume(lexer.Semi, "expected ';' after do-while")
	return &ast.DoWhile{Token: tok, Body: body, Condition: cond}
}

func (p *Parser) untilStatement() ast.Statement {
	tok := p.advance()
	p.consume(lexer.LParen, "expected '(' after 'until'")
	cond := p.expression()
	p.consume(lexer.RParen, "expected ')' after until condition")
	wasInLoop := p.inControlFlow
	p.inControlFlow = true
	body := p.statement()
	p.inControlFlow = wasInLoop
	return &ast.Until{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) repeatStatement() ast.Statement {
	tok := p.advance()
	wasInLoop := p.inControlFlow
	p.inControlFlow = true
	body := p.statement()
	p.inControlFlow = wasInLoop
	p.consume(lexer.KwUntil, "expected 'until' after repeat-block")
	p.consume(lexer.LParen, "expected '(' after 'until'")
	cond := p.expression()
	p.consume(lexer.RParen, "expected ')' after until condition")
	p.consume(lexer.Semi, "expected ';' after repeat-until")
	return &ast.RepeatUntil{Token: tok, Body: body, Condition: cond}
}

func (p *Parser) loopStatement() ast.Statement {
	tok := p.advance()
	wasInLoop := p.inControlFlow
	p.inControlFlow = true
	body := p.statement()
	p.inControlFlow = wasInLoop
	return &ast.Loop{Token: tok, Body: body}
}

func (p *Parser) forStatement() ast.Statement {
	tok := p.advance()
	p.consume(lexer.LParen, "expected '(' after 'for'")
	decl := p.tryDeclaration()
	cond := p.expression()
	p.consume(lexer.Semi, "expected ';' after for condition")
	step := p.expression()
	p.consume(lexer.RParen, "expected ')' after for clauses")
	wasInLoop := p.inControlFlow
	p.inControlFlow = true
	body := p.statement()
	p.inControlFlow = wasInLoop
	return &ast.For{Token: tok, Declaration: decl, Condition: cond, Step: step, Body: body}
}

func (p *Parser) breakStatement() ast.Statement {
	tok := p.advance()
	p.consume(lexer.Semi, "expected ';' after 'break'")
	if !p.inControlFlow {
		p.errAt(tok, "'break' outside any loop")
	}
	return &ast.Break{Token: tok}
}

func (p *Parser) continueStatement() ast.Statement {
	tok := p.advance()
	p.consume(lexer.Semi, "expected ';' after 'continue'")
	if !p.inControlFlow {
		p.errAt(tok, "'continue' outside any loop")
	}
	return &ast.Continue{Token: tok}
}

func (p *Parser) restStatement() ast.Statement {
	tok := p.advance()
	p.consume(lexer.Semi, "expected ';' after 'rest'")
	return &ast.Rest{Token: tok}
}

func (p *Parser) returnStatement() ast.Statement {
	tok := p.advance()
	var val ast.Expression
	if !p.check(lexer.Semi) {
		val = p.expression()
	}
	p.consume(lexer.Semi, "expected ';' after return")
	if val != nil && !p.inFunction {
		p.errAt(tok, "'return' with a value outside a function")
	}
	if val == nil && !p.inProcedure && !p.inFunction {
		p.errAt(tok, "'return;' outside a procedure")
	}
	return &ast.Return{Token: tok, Value: val}
}

func (p *Parser) deleteStatement() ast.Statement {
	tok := p.advance()
	name, ok := p.consumeIdent("expected identifier after 'delete'")
	p.consume(lexer.Semi, "expected ';' after delete statement")
	if !ok {
		return &ast.Delete{Token: tok}
	}
	return &ast.Delete{Token: tok, Name: name.Lexeme}
}

func (p *Parser) expressionStatement() ast.Statement {
	tok := p.peek()
	expr := p.expression()
	p.consume(lexer.Semi, "expected ';' after expression")
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

// variableDeclaration parses `BasicType IDENT ("=" expr)? ";"` or the
// class-typed form `ClassName IDENT ("=" new ClassName(args))? ";"` (§4.3).
func (p *Parser) variableDeclaration(isClassType bool) ast.Statement {
	typeTok := p.advance()
	name, ok := p.consumeIdent("expected variable name")
	if !ok {
		p.consume(lexer.Semi, "expected ';'")
		return nil
	}
	var init ast.Expression
	if p.match(lexer.OpAssign) {
		init = p.expression()
	}
	p.consume(lexer.Semi, "expected ';' after variable declaration")
	return &ast.Variable{Token: typeTok, TypeName: typeTok.Lexeme, IsClassType: isClassType, Name: name.Lexeme, Initialiser: init}
}

// vectorDeclaration parses `vec <name| = expr? ;` / `vec |name> = expr? ;`
// (§4.3 "vector declaration").
func (p *Parser) vectorDeclaration() ast.Statement {
	tok := p.advance() // 'vec'
	var name string
	var isBra bool
	switch {
	case p.check(lexer.BraSymbol):
		t := p.advance()
		name = braOrKetName(t.Lexeme)
		isBra = true
	case p.check(lexer.KetSymbol):
		t := p.advance()
		name = braOrKetName(t.Lexeme)
		isBra = false
	case p.check(lexer.BasisBra):
		t := p.advance()
		name = braOrKetName(t.Lexeme)
		isBra = true
	case p.check(lexer.BasisKet):
		t := p.advance()
		name = braOrKetName(t.Lexeme)
		isBra = false
	default:
		p.errAt(p.peek(), "expected bra or ket declarator after 'vec'")
	}
	var init ast.Expression
	if p.match(lexer.OpAssign) {
		init = p.expression()
	}
	p.consume(lexer.Semi, "expected ';' after vector declaration")
	return &ast.VectorDecl{Token: tok, Name: name, IsBra: isBra, Initialiser: init}
}
