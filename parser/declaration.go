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

// parseDeclaration parses a top-level element:
// a declaration, or one of the statements allowed at the top level.
func parseDeclaration(p *parser) (ast.Declaration, error) {
	switch p.current.Type {
	case lexer.TokenKeywordImport:
		return parseImportDeclaration(p)

	case lexer.TokenKeywordClass:
		return parseClassDeclaration(p)

	case lexer.TokenKeywordVariable:
		return parseVariableDeclaration(p)

	case lexer.TokenKeywordType:
		return parseTypeDeclaration(p)

	case lexer.TokenKeywordConstant:
		return parseConstantDeclaration(p)

	case lexer.TokenKeywordFunction:
		return parseFunctionDeclaration(p)

	case lexer.TokenKeywordIf:
		return parseIfStatement(p)

	case lexer.TokenKeywordFor:
		return parseForStatement(p)

	case lexer.TokenKeywordWhile:
		return parseWhileStatement(p)

	default:
		return parseExpressionOrAssignmentStatement(p)
	}
}

// parseImportDeclaration parses an import declaration
//
//	importer Module [comme Alias] de "path"
func parseImportDeclaration(p *parser) (*ast.ImportDeclaration, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordImport, "Expected 'import'")
	if err != nil {
		return nil, err
	}

	module, err := p.mustIdentifier("Expected module name")
	if err != nil {
		return nil, err
	}

	var alias *ast.Identifier
	if p.accept(lexer.TokenKeywordAs) {
		aliasIdentifier, err := p.mustIdentifier("Expected alias name")
		if err != nil {
			return nil, err
		}
		alias = &aliasIdentifier
	}

	_, err = p.mustOne(lexer.TokenKeywordFrom, "Expected 'from'")
	if err != nil {
		return nil, err
	}

	pathToken, err := p.mustOne(lexer.TokenString, "Expected path string")
	if err != nil {
		return nil, err
	}

	return ast.NewImportDeclaration(
		module,
		alias,
		pathToken.Literal,
		ast.NewRange(
			startToken.StartPos,
			pathToken.EndPos,
		),
	), nil
}

// parseClassDeclaration parses a class declaration.
//
// The constructor, if any, and the methods may appear in any order.
// A later constructor replaces an earlier one.
// Any other token inside of the class body is skipped.
func parseClassDeclaration(p *parser) (*ast.ClassDeclaration, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordClass, "Expected 'classe'")
	if err != nil {
		return nil, err
	}

	identifier, err := p.mustIdentifier("Expected class name")
	if err != nil {
		return nil, err
	}

	_, err = p.mustOne(lexer.TokenKeywordOpen, "Expected 'ouvrir'")
	if err != nil {
		return nil, err
	}
	p.skipNewlines()

	var constructor *ast.ConstructorDeclaration
	var methods []*ast.MethodDeclaration

	for !p.current.Is(lexer.TokenKeywordClose) && !p.atEnd() {
		p.skipNewlines()

		switch p.current.Type {
		case lexer.TokenKeywordConstructor:
			constructor, err = parseConstructorDeclaration(p)
			if err != nil {
				return nil, err
			}

		case lexer.TokenIdentifier:
			method, err := parseMethodDeclaration(p)
			if err != nil {
				return nil, err
			}
			methods = append(methods, method)

		default:
			p.next()
		}

		p.skipNewlines()
	}

	endToken, err := p.mustOne(lexer.TokenKeywordClose, "Expected 'refermer'")
	if err != nil {
		return nil, err
	}

	return ast.NewClassDeclaration(
		identifier,
		constructor,
		methods,
		ast.NewRange(
			startToken.StartPos,
			endToken.EndPos,
		),
	), nil
}

func parseConstructorDeclaration(p *parser) (*ast.ConstructorDeclaration, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordConstructor, "Expected 'constructeur'")
	if err != nil {
		return nil, err
	}

	parameters, err := parseParameterList(p)
	if err != nil {
		return nil, err
	}

	body, err := parseBlock(p)
	if err != nil {
		return nil, err
	}

	return ast.NewConstructorDeclaration(
		parameters,
		body,
		startToken.StartPos,
	), nil
}

func parseMethodDeclaration(p *parser) (*ast.MethodDeclaration, error) {
	identifier, err := p.mustIdentifier("Expected method name")
	if err != nil {
		return nil, err
	}

	parameters, err := parseParameterList(p)
	if err != nil {
		return nil, err
	}

	body, err := parseBlock(p)
	if err != nil {
		return nil, err
	}

	return ast.NewMethodDeclaration(
		identifier,
		parameters,
		body,
	), nil
}

func parseFunctionDeclaration(p *parser) (*ast.FunctionDeclaration, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordFunction, "Expected 'fonction'")
	if err != nil {
		return nil, err
	}

	identifier, err := p.mustIdentifier("Expected function name")
	if err != nil {
		return nil, err
	}

	parameters, err := parseParameterList(p)
	if err != nil {
		return nil, err
	}

	body, err := parseBlock(p)
	if err != nil {
		return nil, err
	}

	return ast.NewFunctionDeclaration(
		identifier,
		parameters,
		body,
		startToken.StartPos,
	), nil
}

// parseParameterList parses a parenthesized, comma-separated list of parameter names.
func parseParameterList(p *parser) ([]*ast.Parameter, error) {
	_, err := p.mustOne(lexer.TokenParenOpen, "Expected '('")
	if err != nil {
		return nil, err
	}

	var parameters []*ast.Parameter

	if !p.current.Is(lexer.TokenParenClose) {
		for {
			identifier, err := p.mustIdentifier("Expected parameter name")
			if err != nil {
				return nil, err
			}
			parameters = append(parameters, ast.NewParameter(identifier))

			if !p.accept(lexer.TokenComma) {
				break
			}
		}
	}

	_, err = p.mustOne(lexer.TokenParenClose, "Expected ')'")
	if err != nil {
		return nil, err
	}

	return parameters, nil
}

// parseTypeDeclaration parses a type declaration
//
//	type Name egal [external]
//
// Anything after `egal`, other than `external`, is not part of the declaration.
func parseTypeDeclaration(p *parser) (*ast.TypeDeclaration, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordType, "Expected 'type'")
	if err != nil {
		return nil, err
	}

	identifier, err := p.mustIdentifier("Expected type name")
	if err != nil {
		return nil, err
	}

	equalToken, err := p.mustOne(lexer.TokenEqual, "Expected 'egal'")
	if err != nil {
		return nil, err
	}

	endPos := equalToken.EndPos

	external := false
	if p.current.Is(lexer.TokenKeywordExternal) {
		external = true
		endPos = p.next().EndPos
	}

	return ast.NewTypeDeclaration(
		identifier,
		external,
		ast.NewRange(startToken.StartPos, endPos),
	), nil
}

func parseConstantDeclaration(p *parser) (*ast.ConstantDeclaration, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordConstant, "Expected 'constant'")
	if err != nil {
		return nil, err
	}

	identifier, err := p.mustIdentifier("Expected constant name")
	if err != nil {
		return nil, err
	}

	_, err = p.mustOne(lexer.TokenEqual, "Expected 'egal'")
	if err != nil {
		return nil, err
	}

	value, err := parseExpression(p)
	if err != nil {
		return nil, err
	}

	return ast.NewConstantDeclaration(
		identifier,
		value,
		startToken.StartPos,
	), nil
}

func parseVariableDeclaration(p *parser) (*ast.VariableDeclaration, error) {
	startToken, err := p.mustOne(lexer.TokenKeywordVariable, "Expected 'variable'")
	if err != nil {
		return nil, err
	}

	identifier, err := p.mustIdentifier("Expected variable name")
	if err != nil {
		return nil, err
	}

	_, err = p.mustOne(lexer.TokenEqual, "Expected 'egal'")
	if err != nil {
		return nil, err
	}

	value, err := parseExpression(p)
	if err != nil {
		return nil, err
	}

	return ast.NewVariableDeclaration(
		identifier,
		value,
		startToken.StartPos,
	), nil
}
