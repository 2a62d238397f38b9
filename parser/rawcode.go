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
	"strings"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/parser/lexer"
)

// parseRawCodeExpression parses embedded target-language code
//
//	@nim( tokens... )
//
// The code is re-serialized from the token literals until the matching closing parenthesis:
// tokens are separated by a single space, except before `)` and `,`,
// and after `(` and `,`. String tokens are re-quoted with double quotes.
// The code is otherwise not validated.
func parseRawCodeExpression(p *parser) (*ast.RawCodeExpression, error) {
	startToken := p.next()

	_, err := p.mustOne(lexer.TokenKeywordNim, "Expected 'nim'")
	if err != nil {
		return nil, err
	}

	_, err = p.mustOne(lexer.TokenParenOpen, "Expected '('")
	if err != nil {
		return nil, err
	}

	var code strings.Builder

	parenDepth := 1
	needSpace := false

	for !p.atEnd() && parenDepth > 0 {
		token := p.next()

		if needSpace &&
			!token.Is(lexer.TokenParenClose) &&
			!token.Is(lexer.TokenComma) {

			code.WriteByte(' ')
		}

		switch token.Type {
		case lexer.TokenParenOpen:
			parenDepth++
			code.WriteString(token.Literal)
			needSpace = false

		case lexer.TokenParenClose:
			parenDepth--
			if parenDepth > 0 {
				code.WriteString(token.Literal)
			}
			needSpace = true

		case lexer.TokenString:
			code.WriteByte('"')
			code.WriteString(token.Literal)
			code.WriteByte('"')
			needSpace = true

		default:
			code.WriteString(token.Literal)
			needSpace = !token.Is(lexer.TokenComma)
		}
	}

	return ast.NewRawCodeExpression(
		strings.TrimSpace(code.String()),
		ast.NewRange(
			startToken.StartPos,
			p.previous().EndPos,
		),
	), nil
}
