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

package ast

import (
	"unicode/utf8"

	"github.com/turbolent/prettier"
)

// SelfIdentifier is the name of the self-reference.
// Both `ceci` and `cette` are parsed to an identifier expression with this name.
const SelfIdentifier = "self"

// Identifier

type Identifier struct {
	Identifier string
	Pos        Position
}

func NewIdentifier(identifier string, pos Position) Identifier {
	return Identifier{
		Identifier: identifier,
		Pos:        pos,
	}
}

func (i Identifier) String() string {
	return i.Identifier
}

func (i Identifier) StartPosition() Position {
	return i.Pos
}

func (i Identifier) EndPosition() Position {
	length := len(i.Identifier)
	if length == 0 {
		return i.Pos
	}
	_, lastWidth := utf8.DecodeLastRuneInString(i.Identifier)
	return Position{
		Offset: i.Pos.Offset + length - lastWidth,
		Line:   i.Pos.Line,
		Column: i.Pos.Column + utf8.RuneCountInString(i.Identifier) - 1,
	}
}

func (i Identifier) Doc() prettier.Doc {
	return prettier.Text(i.Identifier)
}
