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
	"strings"
)

// stateFn uses the input lexer to read runes and emit tokens.
//
// It either returns nil when reaching end of file,
// or returns another stateFn for more scanning work.
type stateFn func(*lexer) (stateFn, error)

// rootState returns a stateFn that scans the file and emits tokens until
// reaching the end of the file.
func rootState(l *lexer) (stateFn, error) {

	for {
		var ty TokenType

		r := l.next()
		switch r {
		case EOF:
			return nil, nil
		case '+':
			ty = TokenPlus
		case '-':
			if l.acceptOne('>') {
				ty = TokenRightArrow
			} else {
				ty = TokenMinus
			}
		case '(':
			ty = TokenParenOpen
		case ')':
			ty = TokenParenClose
		case '{':
			ty = TokenBraceOpen
		case '}':
			ty = TokenBraceClose
		case '[':
			ty = TokenBracketOpen
		case ']':
			ty = TokenBracketClose
		case ',':
			ty = TokenComma
		case ';':
			ty = TokenSemicolon
		case ':':
			ty = TokenColon
		case '.':
			ty = TokenDot
		case '@':
			ty = TokenAt
		case '=':
			if l.acceptOne('=') {
				ty = TokenEqualEqual
			} else {
				ty = TokenEqual
			}
		case '!':
			if !l.acceptOne('=') {
				// A lone exclamation mark is dropped
				l.ignore()
				continue
			}
			ty = TokenNotEqual
		case '<':
			if l.acceptOne('=') {
				ty = TokenLessEqual
			} else {
				ty = TokenLess
			}
		case '>':
			if l.acceptOne('=') {
				ty = TokenGreaterEqual
			} else {
				ty = TokenGreater
			}
		case '"', '\'':
			return stringState(r), nil
		case '/':
			if l.acceptOne('/') {
				return lineCommentState, nil
			}
			if l.acceptOne('*') {
				return blockCommentState, nil
			}
			l.ignore()
			continue
		case '\n':
			ty = TokenNewline
		case ' ', '\t', '\r':
			return spaceState, nil
		default:
			switch {
			case isLetter(r):
				return identifierState, nil
			case isDigit(r):
				return numberState, nil
			}
			// Any other rune is dropped
			l.ignore()
			continue
		}

		err := l.emitType(ty)
		if err != nil {
			return nil, err
		}
	}
}

func spaceState(l *lexer) (stateFn, error) {
	l.acceptWhile(func(r rune) bool {
		switch r {
		case ' ', '\t', '\r':
			return true
		default:
			return false
		}
	})
	l.ignore()
	return rootState, nil
}

func identifierState(l *lexer) (stateFn, error) {
	// lookahead is already lexed.
	// parse more, if any
	l.acceptWhile(func(r rune) bool {
		return isLetter(r) || isDigit(r)
	})

	word := string(l.word())
	ty, _ := KeywordTokenType(word)

	err := l.emit(ty, word)
	if err != nil {
		return nil, err
	}
	return rootState, nil
}

func numberState(l *lexer) (stateFn, error) {
	// lookahead is already lexed.
	// parse more, if any
	l.acceptWhile(isDigit)

	// A dot is only part of the number if a digit follows it,
	// so `1.toString` is a member access
	if l.peekByte(0) == '.' && isDigitByte(l.peekByte(1)) {
		l.next()
		l.acceptWhile(isDigit)
	}

	err := l.emitType(TokenNumber)
	if err != nil {
		return nil, err
	}
	return rootState, nil
}

func stringState(quote rune) stateFn {
	return func(l *lexer) (stateFn, error) {
		startPos := l.startPosition()

		var builder strings.Builder

		for {
			r := l.next()
			switch r {
			case EOF:
				l.backupOne()
				return nil, &UnterminatedStringError{
					Pos:  startPos,
					Line: l.currentLine(),
				}

			case quote:
				err := l.emit(TokenString, builder.String())
				if err != nil {
					return nil, err
				}
				return rootState, nil

			case '\\':
				r = l.next()
				switch r {
				case EOF:
					l.backupOne()
					return nil, &UnterminatedStringError{
						Pos:  startPos,
						Line: l.currentLine(),
					}
				case 'n':
					builder.WriteByte('\n')
				case 't':
					builder.WriteByte('\t')
				case 'r':
					builder.WriteByte('\r')
				default:
					// Any other escaped rune, including quotes and backslash,
					// stands for itself
					builder.WriteRune(r)
				}

			default:
				builder.WriteRune(r)
			}
		}
	}
}

func lineCommentState(l *lexer) (stateFn, error) {
	l.acceptWhile(func(r rune) bool {
		return !(r == '\n' || r == EOF)
	})
	l.ignore()
	return rootState, nil
}

func blockCommentState(l *lexer) (stateFn, error) {
	for {
		r := l.next()
		switch r {
		case EOF:
			// An unterminated block comment ends at the end of the input
			l.backupOne()
			l.ignore()
			return nil, nil
		case '*':
			if l.acceptOne('/') {
				l.ignore()
				return rootState, nil
			}
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z',
		r >= 'A' && r <= 'Z',
		r == '_':
		return true
	}
	return strings.ContainsRune(accentedLetters, r)
}

const accentedLetters = "àâäéèêëïîôöùûüÿçñÀÂÄÉÈÊËÏÎÔÖÙÛÜŸÇÑ"
