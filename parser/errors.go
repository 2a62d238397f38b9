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
	"fmt"
	"strings"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/errors"
	"github.com/onflow/fr2nim/parser/lexer"
	"github.com/onflow/fr2nim/pretty"
)

// Error

type Error struct {
	Code   []byte
	Errors []error
}

var _ errors.UserError = Error{}
var _ errors.ParentError = Error{}

func (Error) IsUserError() {}

func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString("Parsing failed:\n")
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, "", e.Code)
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (e Error) ChildErrors() []error {
	return e.Errors
}

func (e Error) Unwrap() []error {
	return e.Errors
}

// ParseError

type ParseError interface {
	errors.UserError
	ast.HasPosition
	isParseError()
}

// SyntaxError is reported for the first grammar violation.
type SyntaxError struct {
	// Message describes the expectation, e.g. "Expected 'ouvrir'".
	// It is empty for an unexpected token in expression position.
	Message string
	// Got is the literal of the offending token
	Got string
	// GotType is the type of the offending token
	GotType lexer.TokenType
	Pos     ast.Position
	// Secondary is an optional hint, e.g. a keyword suggestion
	Secondary string
}

var _ ParseError = &SyntaxError{}
var _ errors.UserError = &SyntaxError{}
var _ errors.SecondaryError = &SyntaxError{}

func (*SyntaxError) isParseError() {}

func (*SyntaxError) IsUserError() {}

func (e *SyntaxError) StartPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) EndPosition() ast.Position {
	return e.Pos
}

func (e *SyntaxError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Unexpected token: %s at line %d", e.Got, e.Pos.Line)
	}
	return fmt.Sprintf("%s. Got %s at line %d", e.Message, e.Got, e.Pos.Line)
}

func (e *SyntaxError) SecondaryError() string {
	return e.Secondary
}

func (p *parser) expectedTokenError(expected lexer.TokenType, message string) *SyntaxError {
	return &SyntaxError{
		Message:   message,
		Got:       p.current.Literal,
		GotType:   p.current.Type,
		Pos:       p.current.StartPos,
		Secondary: suggestKeyword(expected, p.current),
	}
}

func (p *parser) unexpectedTokenError() *SyntaxError {
	return &SyntaxError{
		Got:     p.current.Literal,
		GotType: p.current.Type,
		Pos:     p.current.StartPos,
	}
}

// ExpressionDepthLimitReachedError is reported when expressions are nested too deeply.
type ExpressionDepthLimitReachedError struct {
	Pos ast.Position
}

var _ ParseError = ExpressionDepthLimitReachedError{}
var _ errors.UserError = ExpressionDepthLimitReachedError{}
var _ errors.SecondaryError = ExpressionDepthLimitReachedError{}

func (ExpressionDepthLimitReachedError) isParseError() {}

func (ExpressionDepthLimitReachedError) IsUserError() {}

func (e ExpressionDepthLimitReachedError) Error() string {
	return fmt.Sprintf(
		"program too complex, reached max expression depth limit %d",
		expressionDepthLimit,
	)
}

func (ExpressionDepthLimitReachedError) SecondaryError() string {
	return "split the expression into multiple variable declarations"
}

func (e ExpressionDepthLimitReachedError) StartPosition() ast.Position {
	return e.Pos
}

func (e ExpressionDepthLimitReachedError) EndPosition() ast.Position {
	return e.Pos
}

// IsIncompleteInput reports whether parsing failed because the input ended too early,
// i.e. more input might make it parse.
func IsIncompleteInput(err error) bool {
	switch err := err.(type) {
	case Error:
		for _, child := range err.Errors {
			if IsIncompleteInput(child) {
				return true
			}
		}
		return false
	case *SyntaxError:
		return err.GotType == lexer.TokenEOF
	case *lexer.UnterminatedStringError:
		return true
	default:
		return false
	}
}
