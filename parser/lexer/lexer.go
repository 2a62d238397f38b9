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
	"bytes"
	"unicode/utf8"

	"github.com/onflow/fr2nim/ast"
)

// tokenLimit is a sensible limit for how many tokens may be emitted
const tokenLimit = 1 << 19

type position struct {
	line   int
	column int
}

type lexer struct {
	// input is the entire input string
	input []byte
	// tokens contains all tokens of the stream
	tokens []Token
	// startPos is the start position of the current word
	startPos position
	// startOffset is the start offset of the current word
	startOffset int
	// endOffset is the end offset of the current word
	endOffset int
	// prevEndOffset is the previous end offset, used for stepping back
	prevEndOffset int
	// current is the currently scanned rune
	current rune
	// prev is the previously scanned rune, used for stepping back
	prev rune
	// canBackup indicates whether stepping back is allowed
	canBackup bool
}

// Lex scans the given input into a token sequence,
// which is always terminated by an EOF token.
func Lex(input []byte) ([]Token, error) {
	l := &lexer{
		input:    input,
		tokens:   make([]Token, 0, len(input)/4+1),
		startPos: position{line: 1},
		current:  EOF,
		prev:     EOF,
	}

	err := l.run(rootState)
	if err != nil {
		return nil, err
	}

	l.emitEOF()

	return l.tokens, nil
}

// run executes the stateFn, which will scan the runes in the input
// and emit tokens.
//
// stateFn might return another stateFn to indicate further scanning work,
// or nil if there is no scanning work left to be done,
// i.e. run will keep running the returned stateFn until no more
// stateFn is returned, which for example happens when reaching the end of the file.
func (l *lexer) run(state stateFn) error {
	for state != nil {
		var err error
		state, err = state(l)
		if err != nil {
			return err
		}
	}
	return nil
}

// next decodes the next rune (UTF8 character) from the input string.
//
// It returns EOF if it reaches the end of the file,
// otherwise returns the scanned rune.
func (l *lexer) next() rune {
	l.canBackup = true

	endOffset := l.endOffset

	// update prevEndOffset and prev so that we can step back one rune.
	l.prevEndOffset = endOffset
	l.prev = l.current

	r := EOF
	w := 1
	if endOffset < len(l.input) {
		r, w = utf8.DecodeRune(l.input[endOffset:])
	}

	l.endOffset += w
	l.current = r

	return r
}

// backupOne steps back one rune.
// Can be called only once per call of next.
func (l *lexer) backupOne() {
	if !l.canBackup {
		panic("second backup")
	}
	l.canBackup = false

	l.endOffset = l.prevEndOffset
	l.current = l.prev
}

// peekByte returns the byte at the given distance after the current word,
// or 0 if the input ends before it.
func (l *lexer) peekByte(distance int) byte {
	offset := l.endOffset + distance
	if offset >= len(l.input) {
		return 0
	}
	return l.input[offset]
}

func (l *lexer) word() []byte {
	start := l.startOffset
	end := l.endOffset
	if end > len(l.input) {
		end = len(l.input)
	}
	return l.input[start:end]
}

// acceptOne reads one rune ahead.
// It returns true if the next rune matches with the input rune,
// otherwise it steps back one rune and returns false.
func (l *lexer) acceptOne(r rune) bool {
	if l.next() == r {
		return true
	}
	l.backupOne()
	return false
}

func (l *lexer) acceptWhile(f func(rune) bool) {
	for {
		r := l.next()

		if f(r) {
			continue
		}

		l.backupOne()
		return
	}
}

// emit appends a token for the current word and starts a new word.
func (l *lexer) emit(ty TokenType, literal string) error {

	if len(l.tokens) >= tokenLimit {
		return TokenLimitReachedError{
			Position: l.startPosition(),
		}
	}

	endPos := l.endPos()
	_, lastWidth := utf8.DecodeLastRune(l.word())

	token := Token{
		Type:    ty,
		Literal: literal,
		Range: ast.NewRange(
			l.startPosition(),
			ast.NewPosition(
				l.endOffset-lastWidth,
				endPos.line,
				endPos.column,
			),
		),
	}

	l.tokens = append(l.tokens, token)

	l.ignore()

	return nil
}

func (l *lexer) emitType(ty TokenType) error {
	return l.emit(ty, string(l.word()))
}

func (l *lexer) emitEOF() {
	pos := l.startPosition()
	l.tokens = append(l.tokens, Token{
		Type:  TokenEOF,
		Range: ast.NewRange(pos, pos),
	})
}

// ignore skips the current word and starts a new word.
func (l *lexer) ignore() {
	word := l.word()
	if len(word) == 0 {
		return
	}

	endPos := l.endPos()
	r, _ := utf8.DecodeLastRune(word)

	l.startOffset = l.endOffset
	l.startPos = endPos

	if r == '\n' {
		l.startPos.line++
		l.startPos.column = 0
	} else {
		l.startPos.column++
	}
}

func (l *lexer) startPosition() ast.Position {
	return ast.NewPosition(
		l.startOffset,
		l.startPos.line,
		l.startPos.column,
	)
}

// endPos returns the position of the last rune of the current word.
func (l *lexer) endPos() position {
	word := l.word()
	_, lastWidth := utf8.DecodeLastRune(word)

	endPos := l.startPos

	for _, r := range string(word[:len(word)-lastWidth]) {
		if r == '\n' {
			endPos.line++
			endPos.column = 0
		} else {
			endPos.column++
		}
	}

	return endPos
}

// currentLine returns the line after the current word.
func (l *lexer) currentLine() int {
	return l.startPos.line + bytes.Count(l.word(), []byte{'\n'})
}
