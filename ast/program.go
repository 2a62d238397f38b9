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

// Program is the root of a parsed source file.
// Declarations are in source order, and include the statements
// which are allowed at the top level.
type Program struct {
	Declarations []Declaration
}

var _ Element = &Program{}

func NewProgram(declarations []Declaration) *Program {
	return &Program{
		Declarations: declarations,
	}
}

func (*Program) ElementType() ElementType {
	return ElementTypeProgram
}

func (p *Program) StartPosition() Position {
	if len(p.Declarations) == 0 {
		return EmptyPosition
	}
	return p.Declarations[0].StartPosition()
}

func (p *Program) EndPosition() Position {
	count := len(p.Declarations)
	if count == 0 {
		return EmptyPosition
	}
	return p.Declarations[count-1].EndPosition()
}

func (p *Program) Walk(walkChild func(Element)) {
	for _, declaration := range p.Declarations {
		walkChild(declaration)
	}
}

// ImportDeclarations returns the program's imports, in source order.
func (p *Program) ImportDeclarations() []*ImportDeclaration {
	var imports []*ImportDeclaration
	for _, declaration := range p.Declarations {
		if importDeclaration, ok := declaration.(*ImportDeclaration); ok {
			imports = append(imports, importDeclaration)
		}
	}
	return imports
}

func (p *Program) Doc() prettier.Doc {
	docs := make(prettier.Concat, 0, len(p.Declarations)*2)
	for i, declaration := range p.Declarations {
		if i > 0 {
			docs = append(docs, prettier.HardLine{})
			// Separate everything but consecutive imports by an empty line
			_, isImport := declaration.(*ImportDeclaration)
			_, previousIsImport := p.Declarations[i-1].(*ImportDeclaration)
			if !isImport || !previousIsImport {
				docs = append(docs, prettier.HardLine{})
			}
		}
		docs = append(docs, declaration.Doc())
	}
	return docs
}

func (p *Program) String() string {
	return Prettier(p)
}

func (p *Program) MarshalJSON() ([]byte, error) {
	type Alias Program
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "Program",
		Range: NewRangeFromPositioned(p),
		Alias: (*Alias)(p),
	})
}
