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
	"github.com/onflow/fr2nim/errors"
)

type TokenType uint8

const EOF rune = -1

const (
	TokenEOF TokenType = iota
	TokenNewline
	TokenIdentifier
	TokenNumber
	TokenString
	TokenBoolean
	// keywords
	TokenKeywordClass
	TokenKeywordConstructor
	TokenKeywordVariable
	TokenKeywordNew
	TokenKeywordReturn
	TokenKeywordSelf
	TokenKeywordOpen
	TokenKeywordClose
	TokenKeywordImport
	TokenKeywordFrom
	TokenKeywordAs
	TokenKeywordFor
	TokenKeywordWhile
	TokenKeywordFunction
	TokenKeywordType
	TokenKeywordExternal
	TokenKeywordConstant
	TokenKeywordNim
	TokenKeywordIf
	TokenKeywordElse
	// `egal` and `=`
	TokenEqual
	// operators
	TokenPlus
	TokenMinus
	TokenRightArrow
	TokenEqualEqual
	TokenNotEqual
	TokenLess
	TokenLessEqual
	TokenGreater
	TokenGreaterEqual
	// delimiters
	TokenParenOpen
	TokenParenClose
	TokenBraceOpen
	TokenBraceClose
	TokenBracketOpen
	TokenBracketClose
	TokenComma
	TokenDot
	TokenSemicolon
	TokenColon
	TokenAt
	// NOTE: not an actual token, must be last item
	TokenMax
)

func init() {
	// ensure all tokens have its string format
	for t := TokenType(0); t < TokenMax; t++ {
		_ = t.String()
	}
}

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "newline"
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenBoolean:
		return "boolean"
	case TokenKeywordClass:
		return "`classe`"
	case TokenKeywordConstructor:
		return "`constructeur`"
	case TokenKeywordVariable:
		return "`variable`"
	case TokenKeywordNew:
		return "`nouveau`"
	case TokenKeywordReturn:
		return "`retourne`"
	case TokenKeywordSelf:
		return "`ceci`"
	case TokenKeywordOpen:
		return "`ouvrir`"
	case TokenKeywordClose:
		return "`refermer`"
	case TokenKeywordImport:
		return "`importer`"
	case TokenKeywordFrom:
		return "`de`"
	case TokenKeywordAs:
		return "`comme`"
	case TokenKeywordFor:
		return "`pour`"
	case TokenKeywordWhile:
		return "`tantque`"
	case TokenKeywordFunction:
		return "`fonction`"
	case TokenKeywordType:
		return "`type`"
	case TokenKeywordExternal:
		return "`external`"
	case TokenKeywordConstant:
		return "`constant`"
	case TokenKeywordNim:
		return "`nim`"
	case TokenKeywordIf:
		return "`si`"
	case TokenKeywordElse:
		return "`sinon`"
	case TokenEqual:
		return "`egal`"
	case TokenPlus:
		return "`+`"
	case TokenMinus:
		return "`-`"
	case TokenRightArrow:
		return "`->`"
	case TokenEqualEqual:
		return "`==`"
	case TokenNotEqual:
		return "`!=`"
	case TokenLess:
		return "`<`"
	case TokenLessEqual:
		return "`<=`"
	case TokenGreater:
		return "`>`"
	case TokenGreaterEqual:
		return "`>=`"
	case TokenParenOpen:
		return "`(`"
	case TokenParenClose:
		return "`)`"
	case TokenBraceOpen:
		return "`{`"
	case TokenBraceClose:
		return "`}`"
	case TokenBracketOpen:
		return "`[`"
	case TokenBracketClose:
		return "`]`"
	case TokenComma:
		return "`,`"
	case TokenDot:
		return "`.`"
	case TokenSemicolon:
		return "`;`"
	case TokenColon:
		return "`:`"
	case TokenAt:
		return "`@`"
	default:
		panic(errors.NewUnreachableError())
	}
}

// IsKeyword reports whether the token type is the type of a keyword token.
func (t TokenType) IsKeyword() bool {
	return t >= TokenKeywordClass && t <= TokenKeywordElse
}

// IsComparisonOperator reports whether the token type is `==`, `!=`, `<`, `<=`, `>`, or `>=`.
func (t TokenType) IsComparisonOperator() bool {
	switch t {
	case TokenEqualEqual,
		TokenNotEqual,
		TokenLess,
		TokenLessEqual,
		TokenGreater,
		TokenGreaterEqual:
		return true

	default:
		return false
	}
}

// IsAdditiveOperator reports whether the token type is `+` or `-`.
func (t TokenType) IsAdditiveOperator() bool {
	return t == TokenPlus || t == TokenMinus
}
