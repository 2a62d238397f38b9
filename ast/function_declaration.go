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
	"encoding/json"

	"github.com/turbolent/prettier"
)

// FunctionDeclaration

type FunctionDeclaration struct {
	Identifier Identifier
	Parameters []*Parameter
	Body       *Block
	StartPos   Position `json:"-"`
}

var _ Element = &FunctionDeclaration{}
var _ Declaration = &FunctionDeclaration{}

func NewFunctionDeclaration(
	identifier Identifier,
	parameters []*Parameter,
	body *Block,
	startPos Position,
) *FunctionDeclaration {
	return &FunctionDeclaration{
		Identifier: identifier,
		Parameters: parameters,
		Body:       body,
		StartPos:   startPos,
	}
}

func (*FunctionDeclaration) ElementType() ElementType {
	return ElementTypeFunctionDeclaration
}

func (*FunctionDeclaration) isDeclaration() {}

func (d *FunctionDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *FunctionDeclaration) EndPosition() Position {
	return d.Body.EndPosition()
}

func (d *FunctionDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Body)
}

const functionKeywordDoc = prettier.Text("fonction")

func (d *FunctionDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		functionKeywordDoc,
		prettier.Space,
		d.Identifier.Doc(),
		parametersDoc(d.Parameters),
		prettier.Space,
		d.Body.Doc(),
	}
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "FunctionDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
