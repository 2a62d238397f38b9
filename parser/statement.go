/*
 * fr2nim - A French-keyword toy language transpiled to Nim
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package parser

import (
	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/parser/lexer"
)

func isStatementsEndToken(token lexer.Token) bool {
	return token.Is(lexer.TokenKeywordClose) ||
		token.Is(lexer.TokenBraceClose)
}

// parseStatements parses statements until `refermer`, `}`, or the end of the input.
// The end token is not consumed.
func parseStatements(p *parser) ([]ast.Statement, error) {
	var statements []ast.Statement

	for !isStatementsEndToken(p.current) && !p.atEnd() {
		p.skipNewlines()
		if isStatementsEndToken(p.current) {
			break
		}

		statement, err := parseStatement(p)
		if err != nil {
			return nil, err
		}

		statements = append(statements, statement)

		p.skipNewlines()
	}

	return statements, nil
}

func parseStatement(p *parser) (ast.Statement, error) {
	switch p.current.Type {
	case lexer.TokenKeywordReturn:
		return parseReturnStatement(p)

	case lexer.TokenKeywordVariable:
		return parseVariableDeclaration(p)

	case lexer.TokenKeywordFor:
		return parseForStatement(p)

	case lexer.TokenKeywordWhile:
		return parseWhileStatement(p)

	case lexer.TokenKeywordIf:
		return parseIfStatement(p)

	default:
		return parseExpressionOrAssignmentStatement(p)
	}
}

// simpleStatement is the result of parsing an expression statement or an assignment,
// which are both statements and top-level declarations.
type simpleStatement interface {
	ast.Statement
	ast.Declaration
}

var _ simpleStatement = &ast.ExpressionStatement{}
var _ simpleStatement = &ast.AssignmentStatement{}

// parseExpressionOrAssignmentStatement parses an expression,
// which is the target of an assignment if it is followed by `=`/`egal`.
func parseExpressionOrAssignmentStatement(p *parser) (simpleStatement, error) {
	expression, err := parseExpression(p)
	if err != nil {
		return nil, err
	}

	if !p.accept(lexer.TokenEqual) {
		return ast.NewExpressionStatement(expression), nil
	}

	value, err := parseExpression(p)
	if err != nil {
		return nil, err
	}

	return ast.NewAssignmentStatement(expression, value), nil
}

func parseReturnStatement(p *parser) (*ast.ReturnStatement, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordReturn, "Expected 'retourne'")
	if err != nil {
		return nil, err
	}

	expression, err := parseExpression(p)
	if err != nil {
		return nil, err
	}

	return ast.NewReturnStatement(expression, startToken.StartPos), nil
}

// parseBlock parses a body delimited by `ouvrir` and `refermer`.
func parseBlock(p *parser) (*ast.Block, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordOpen, "Expected 'ouvrir'")
	if err != nil {
		return nil, err
	}

	return parseBlockRest(p, startToken, lexer.TokenKeywordClose, "Expected 'refermer'")
}

// parseLoopBlock parses the body of a loop,
// which is delimited either by braces, or by `ouvrir` and `refermer`.
func parseLoopBlock(p *parser) (*ast.Block, error) {
	if p.current.Is(lexer.TokenBraceOpen) {
		startToken := p.next()
		return parseBlockRest(p, startToken, lexer.TokenBraceClose, "Expected '}'")
	}

	startToken, err := p.mustOne(lexer.TokenKeywordOpen, "Expected 'ouvrir' or '{'")
	if err != nil {
		return nil, err
	}

	return parseBlockRest(p, startToken, lexer.TokenKeywordClose, "Expected 'refermer'")
}

func parseBlockRest(
	p *parser,
	startToken lexer.Token,
	endTokenType lexer.TokenType,
	endMessage string,
) (*ast.Block, error) {
	p.skipNewlines()

	statements, err := parseStatements(p)
	if err != nil {
		return nil, err
	}

	endToken, err := p.mustOne(endTokenType, endMessage)
	if err != nil {
		return nil, err
	}

	return ast.NewBlock(
		statements,
		ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	), nil
}

// parseParenthesizedTest parses a parenthesized condition of an if or while statement.
func parseParenthesizedTest(p *parser) (ast.Expression, error) {
	_, err := p.mustOne(lexer.TokenParenOpen, "Expected '('")
	if err != nil {
		return nil, err
	}

	test, err := parseExpression(p)
	if err != nil {
		return nil, err
	}

	_, err = p.mustOne(lexer.TokenParenClose, "Expected ')'")
	if err != nil {
		return nil, err
	}

	return test, nil
}

// parseIfStatement parses an if statement.
// Both branches are delimited by `ouvrir` and `refermer`.
func parseIfStatement(p *parser) (*ast.IfStatement, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordIf, "Expected 'si'")
	if err != nil {
		return nil, err
	}

	test, err := parseParenthesizedTest(p)
	if err != nil {
		return nil, err
	}

	thenBlock, err := parseBlock(p)
	if err != nil {
		return nil, err
	}

	var elseBlock *ast.Block
	if p.accept(lexer.TokenKeywordElse) {
		elseBlock, err = parseBlock(p)
		if err != nil {
			return nil, err
		}
	}

	return ast.NewIfStatement(
		test,
		thenBlock,
		elseBlock,
		startToken.StartPos,
	), nil
}

func parseWhileStatement(p *parser) (*ast.WhileStatement, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordWhile, "Expected 'tantque'")
	if err != nil {
		return nil, err
	}

	test, err := parseParenthesizedTest(p)
	if err != nil {
		return nil, err
	}

	block, err := parseLoopBlock(p)
	if err != nil {
		return nil, err
	}

	return ast.NewWhileStatement(
		test,
		block,
		startToken.StartPos,
	), nil
}

// parseForStatement parses a for statement
//
//	pour ([init]; [test]; [increment]) body
func parseForStatement(p *parser) (*ast.ForStatement, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordFor, "Expected 'pour'")
	if err != nil {
		return nil, err
	}

	_, err = p.mustOne(lexer.TokenParenOpen, "Expected '('")
	if err != nil {
		return nil, err
	}

	var init ast.Statement
	if !p.current.Is(lexer.TokenSemicolon) {
		init, err = parseForClause(p)
		if err != nil {
			return nil, err
		}
	}

	_, err = p.mustOne(lexer.TokenSemicolon, "Expected ';'")
	if err != nil {
		return nil, err
	}

	var test ast.Expression
	if !p.current.Is(lexer.TokenSemicolon) {
		test, err = parseExpression(p)
		if err != nil {
			return nil, err
		}
	}

	_, err = p.mustOne(lexer.TokenSemicolon, "Expected ';'")
	if err != nil {
		return nil, err
	}

	var increment ast.Statement
	if !p.current.Is(lexer.TokenParenClose) {
		increment, err = parseForClause(p)
		if err != nil {
			return nil, err
		}
	}

	_, err = p.mustOne(lexer.TokenParenClose, "Expected ')'")
	if err != nil {
		return nil, err
	}

	block, err := parseLoopBlock(p)
	if err != nil {
		return nil, err
	}

	return ast.NewForStatement(
		init,
		test,
		increment,
		block,
		startToken.StartPos,
	), nil
}

// parseForClause parses the init or increment clause of a for statement:
// a variable declaration, an assignment, or an expression.
func parseForClause(p *parser) (ast.Statement, error) {
	if p.current.Is(lexer.TokenKeywordVariable) {
		return parseVariableDeclaration(p)
	}
	return parseExpressionOrAssignmentStatement(p)
}
