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
	"fmt"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/errors"
)

// UnterminatedStringError is reported when the input ends inside of a string literal.
// It is the only fatal lexical error.
type UnterminatedStringError struct {
	// Pos is the position of the opening quote
	Pos ast.Position
	// Line is the line at which the input ended
	Line int
}

var _ error = &UnterminatedStringError{}
var _ errors.UserError = &UnterminatedStringError{}
var _ ast.HasPosition = &UnterminatedStringError{}

func (*UnterminatedStringError) IsUserError() {}

func (e *UnterminatedStringError) StartPosition() ast.Position {
	return e.Pos
}

func (e *UnterminatedStringError) EndPosition() ast.Position {
	return e.Pos
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("Unterminated string at line %d", e.Line)
}

// TokenLimitReachedError is reported when the input produces more than tokenLimit tokens.
type TokenLimitReachedError struct {
	ast.Position
}

var _ error = TokenLimitReachedError{}
var _ errors.UserError = TokenLimitReachedError{}

func (TokenLimitReachedError) IsUserError() {}

func (TokenLimitReachedError) Error() string {
	return fmt.Sprintf("limit of %d tokens exceeded", tokenLimit)
}
