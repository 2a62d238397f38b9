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
	"strconv"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/parser/lexer"
)

// parseExpression parses an expression.
//
// The precedence levels are, from loosest to tightest:
// additive (`+`, `-`), comparison (`==`, `!=`, `<`, `<=`, `>`, `>=`),
// the postfix chain (member access, invocation, indexing), and primary expressions.
// Comparisons bind tighter than additions, so `a + b == c` is `a + (b == c)`.
//
// Newlines are not skipped inside of expressions.
func parseExpression(p *parser) (ast.Expression, error) {
	p.expressionDepth++
	defer func() {
		p.expressionDepth--
	}()

	if p.expressionDepth > expressionDepthLimit {
		return nil, ExpressionDepthLimitReachedError{
			Pos: p.current.StartPos,
		}
	}

	return parseAdditiveExpression(p)
}

func parseAdditiveExpression(p *parser) (ast.Expression, error) {
	left, err := parseComparisonExpression(p)
	if err != nil {
		return nil, err
	}

	for p.current.Type.IsAdditiveOperator() {
		operator := p.next().Literal

		right, err := parseComparisonExpression(p)
		if err != nil {
			return nil, err
		}

		left = ast.NewBinaryExpression(operator, left, right)
	}

	return left, nil
}

func parseComparisonExpression(p *parser) (ast.Expression, error) {
	left, err := parsePostfixExpression(p)
	if err != nil {
		return nil, err
	}

	for p.current.Type.IsComparisonOperator() {
		operator := p.next().Literal

		right, err := parsePostfixExpression(p)
		if err != nil {
			return nil, err
		}

		left = ast.NewBinaryExpression(operator, left, right)
	}

	return left, nil
}

// parsePostfixExpression parses a primary expression,
// followed by any chain of member accesses (`.` or `->`),
// invocations, and index expressions.
func parsePostfixExpression(p *parser) (ast.Expression, error) {
	expression, err := parsePrimaryExpression(p)
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case lexer.TokenDot, lexer.TokenRightArrow:
			arrow := p.next().Is(lexer.TokenRightArrow)

			identifier, err := p.mustIdentifier("Expected property name")
			if err != nil {
				return nil, err
			}

			expression = ast.NewMemberExpression(expression, identifier, arrow)

			// A member access immediately followed by arguments is a method call
			if p.current.Is(lexer.TokenParenOpen) {
				expression, err = parseInvocation(p, expression)
				if err != nil {
					return nil, err
				}
			}

		case lexer.TokenParenOpen:
			expression, err = parseInvocation(p, expression)
			if err != nil {
				return nil, err
			}

		case lexer.TokenBracketOpen:
			p.next()

			index, err := parseExpression(p)
			if err != nil {
				return nil, err
			}

			endToken, err := p.mustOne(lexer.TokenBracketClose, "Expected ']'")
			if err != nil {
				return nil, err
			}

			expression = ast.NewIndexExpression(expression, index, endToken.EndPos)

		default:
			return expression, nil
		}
	}
}

func parseInvocation(p *parser, invokedExpression ast.Expression) (*ast.InvocationExpression, error) {
	arguments, endToken, err := parseArgumentList(p)
	if err != nil {
		return nil, err
	}

	return ast.NewInvocationExpression(
		invokedExpression,
		arguments,
		endToken.EndPos,
	), nil
}

// parseArgumentList parses a parenthesized, comma-separated list of expressions.
// It returns the closing parenthesis token.
func parseArgumentList(p *parser) ([]ast.Expression, lexer.Token, error) {
	_, err := p.mustOne(lexer.TokenParenOpen, "Expected '('")
	if err != nil {
		return nil, lexer.Token{}, err
	}

	var arguments []ast.Expression

	if !p.current.Is(lexer.TokenParenClose) {
		for {
			argument, err := parseExpression(p)
			if err != nil {
				return nil, lexer.Token{}, err
			}
			arguments = append(arguments, argument)

			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}

	endToken, err := p.mustOne(lexer.TokenParenClose, "Expected ')'")
	if err != nil {
		return nil, lexer.Token{}, err
	}

	return arguments, endToken, nil
}

func parsePrimaryExpression(p *parser) (ast.Expression, error) {
	token := p.current

	switch token.Type {
	case lexer.TokenKeywordNew:
		return parseNewExpression(p)

	case lexer.TokenKeywordSelf:
		p.next()
		return ast.NewIdentifierExpression(
			ast.NewIdentifier(ast.SelfIdentifier, token.StartPos),
		), nil

	case lexer.TokenString:
		p.next()
		return ast.NewStringExpression(token.Literal, token.Range), nil

	case lexer.TokenIdentifier:
		p.next()
		return ast.NewIdentifierExpression(identifierFromToken(token)), nil

	case lexer.TokenNumber:
		p.next()
		return parseNumberLiteral(token), nil

	case lexer.TokenBoolean:
		p.next()
		return ast.NewBoolExpression(
			token.Literal == lexer.KeywordVrai,
			token.Range,
		), nil

	case lexer.TokenKeywordFunction:
		return parseFunctionExpression(p)

	case lexer.TokenAt:
		return parseRawCodeExpression(p)

	case lexer.TokenBracketOpen:
		return parseArrayExpression(p)

	case lexer.TokenParenOpen:
		p.next()

		expression, err := parseExpression(p)
		if err != nil {
			return nil, err
		}

		_, err = p.mustOne(lexer.TokenParenClose, "Expected ')'")
		if err != nil {
			return nil, err
		}

		return expression, nil

	default:
		return nil, p.unexpectedTokenError()
	}
}

func parseNumberLiteral(token lexer.Token) *ast.NumberExpression {
	// The lexer only produces digit runs with an optional fraction,
	// which always parse. Out-of-range literals become infinity.
	value, _ := strconv.ParseFloat(token.Literal, 64)

	return ast.NewNumberExpression(
		token.Literal,
		value,
		token.Range,
	)
}

// parseNewExpression parses a construction
//
//	nouveau Name(.Name)*(arguments)
func parseNewExpression(p *parser) (*ast.NewExpression, error) {
	startToken := p.next()

	identifier, err := p.mustIdentifier("Expected class name")
	if err != nil {
		return nil, err
	}

	var invokedExpression ast.Expression = ast.NewIdentifierExpression(identifier)

	for p.accept(lexer.TokenDot) {
		identifier, err := p.mustIdentifier("Expected property name")
		if err != nil {
			return nil, err
		}

		invokedExpression = ast.NewMemberExpression(invokedExpression, identifier, false)
	}

	arguments, endToken, err := parseArgumentList(p)
	if err != nil {
		return nil, err
	}

	return ast.NewNewExpression(
		invokedExpression,
		arguments,
		ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	), nil
}

func parseFunctionExpression(p *parser) (*ast.FunctionExpression, error) {
	startToken := p.next()

	parameters, err := parseParameterList(p)
	if err != nil {
		return nil, err
	}

	body, err := parseBlock(p)
	if err != nil {
		return nil, err
	}

	return ast.NewFunctionExpression(
		parameters,
		body,
		startToken.StartPos,
	), nil
}

func parseArrayExpression(p *parser) (*ast.ArrayExpression, error) {
	startToken := p.next()

	var values []ast.Expression

	if !p.current.Is(lexer.TokenBracketClose) {
		for {
			value, err := parseExpression(p)
			if err != nil {
				return nil, err
			}
			values = append(values, value)

			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}

	endToken, err := p.mustOne(lexer.TokenBracketClose, "Expected ']'")
	if err != nil {
		return nil, err
	}

	return ast.NewArrayExpression(
		values,
		ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	), nil
}
