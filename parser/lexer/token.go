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

package lexer

import (
	"github.com/onflow/fr2nim/ast"
)

type Token struct {
	// Literal is the token's text.
	// For string tokens it is the decoded content, without quotes.
	// The EOF token has an empty literal.
	Literal string
	ast.Range
	Type TokenType
}

func (t Token) Is(ty TokenType) bool {
	return t.Type == ty
}

func (t Token) Source(input []byte) []byte {
	startOffset := t.StartPos.Offset
	endOffset := t.EndPos.Offset + 1
	if endOffset > len(input) {
		endOffset = len(input)
	}
	if startOffset > endOffset {
		return nil
	}
	return input[startOffset:endOffset]
}
