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

// expressionDepthLimit is a sensible limit for how deeply expressions may be nested
const expressionDepthLimit = 1 << 10

type parser struct {
	// tokens is the token sequence, terminated by an EOF token
	tokens []lexer.Token
	// cursor is the index of the current token
	cursor int
	// current is the current token being parsed
	current lexer.Token
	// expressionDepth is the current depth of nested expressions
	expressionDepth int
}

// ParseProgram parses the given source code into a program.
//
// Parsing stops at the first error: the returned error is an Error
// wrapping exactly one lexical or syntax error.
func ParseProgram(code []byte) (*ast.Program, error) {
	tokens, err := lexer.Lex(code)
	if err != nil {
		return nil, Error{
			Code:   code,
			Errors: []error{err},
		}
	}

	program, err := parseProgram(newParser(tokens))
	if err != nil {
		return nil, Error{
			Code:   code,
			Errors: []error{err},
		}
	}

	return program, nil
}

// ParseTokens parses the given token sequence into a program.
func ParseTokens(tokens []lexer.Token) (*ast.Program, error) {
	program, err := parseProgram(newParser(tokens))
	if err != nil {
		return nil, Error{
			Errors: []error{err},
		}
	}

	return program, nil
}

// ParseExpression parses the given source code into a single expression.
// Trailing newlines are allowed, any other trailing token is an error.
func ParseExpression(code []byte) (ast.Expression, error) {
	tokens, err := lexer.Lex(code)
	if err != nil {
		return nil, Error{
			Code:   code,
			Errors: []error{err},
		}
	}

	p := newParser(tokens)

	expression, err := parseExpression(p)
	if err == nil {
		p.skipNewlines()
		if !p.atEnd() {
			err = p.unexpectedTokenError()
		}
	}
	if err != nil {
		return nil, Error{
			Code:   code,
			Errors: []error{err},
		}
	}

	return expression, nil
}

func newParser(tokens []lexer.Token) *parser {
	count := len(tokens)
	if count == 0 || !tokens[count-1].Is(lexer.TokenEOF) {
		var eofPos ast.Position
		if count > 0 {
			eofPos = tokens[count-1].EndPos
		}
		tokens = append(
			tokens[:count:count],
			lexer.Token{
				Type:  lexer.TokenEOF,
				Range: ast.NewRange(eofPos, eofPos),
			},
		)
	}

	return &parser{
		tokens:  tokens,
		current: tokens[0],
	}
}

// next advances to the next token.
// The parser stays at the EOF token once it reached it.
func (p *parser) next() lexer.Token {
	token := p.current
	if !p.atEnd() {
		p.cursor++
		p.current = p.tokens[p.cursor]
	}
	return token
}

// previous returns the token before the current token.
func (p *parser) previous() lexer.Token {
	if p.cursor == 0 {
		return p.current
	}
	return p.tokens[p.cursor-1]
}

func (p *parser) atEnd() bool {
	return p.current.Is(lexer.TokenEOF)
}

// accept advances and returns true if the current token has the given type.
func (p *parser) accept(tokenType lexer.TokenType) bool {
	if !p.current.Is(tokenType) {
		return false
	}
	p.next()
	return true
}

// mustOne advances past the current token if it has the given type,
// and reports a syntax error with the given message otherwise.
func (p *parser) mustOne(tokenType lexer.TokenType, message string) (lexer.Token, error) {
	if !p.current.Is(tokenType) {
		return lexer.Token{}, p.expectedTokenError(tokenType, message)
	}
	return p.next(), nil
}

func (p *parser) mustIdentifier(message string) (ast.Identifier, error) {
	token, err := p.mustOne(lexer.TokenIdentifier, message)
	if err != nil {
		return ast.Identifier{}, err
	}
	return identifierFromToken(token), nil
}

func (p *parser) skipNewlines() {
	for p.accept(lexer.TokenNewline) {
		// NO-OP
	}
}

func identifierFromToken(token lexer.Token) ast.Identifier {
	return ast.NewIdentifier(token.Literal, token.StartPos)
}

func parseProgram(p *parser) (*ast.Program, error) {
	var declarations []ast.Declaration

	for !p.atEnd() {
		p.skipNewlines()
		if p.atEnd() {
			break
		}

		declaration, err := parseDeclaration(p)
		if err != nil {
			return nil, err
		}

		declarations = append(declarations, declaration)

		p.skipNewlines()
	}

	return ast.NewProgram(declarations), nil
}
