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

type Declaration interface {
	Element
	isDeclaration()
	Doc() prettier.Doc
	String() string
}

// ImportDeclaration

type ImportDeclaration struct {
	Module Identifier
	// Alias is nil if the import has no `comme` clause
	Alias *Identifier
	Path  string
	Range
}

var _ Element = &ImportDeclaration{}
var _ Declaration = &ImportDeclaration{}

func NewImportDeclaration(
	module Identifier,
	alias *Identifier,
	path string,
	declRange Range,
) *ImportDeclaration {
	return &ImportDeclaration{
		Module: module,
		Alias:  alias,
		Path:   path,
		Range:  declRange,
	}
}

func (*ImportDeclaration) ElementType() ElementType {
	return ElementTypeImportDeclaration
}

func (*ImportDeclaration) isDeclaration() {}

func (*ImportDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

const importDeclarationKeywordDoc = prettier.Text("importer ")
const importDeclarationAliasKeywordDoc = prettier.Text(" comme ")
const importDeclarationFromKeywordDoc = prettier.Text(" de ")

func (d *ImportDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		importDeclarationKeywordDoc,
		d.Module.Doc(),
	}
	if d.Alias != nil {
		doc = append(
			doc,
			importDeclarationAliasKeywordDoc,
			d.Alias.Doc(),
		)
	}
	return append(
		doc,
		importDeclarationFromKeywordDoc,
		prettier.Text(QuoteString(d.Path)),
	)
}

func (d *ImportDeclaration) String() string {
	return Prettier(d)
}

func (d *ImportDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ImportDeclaration
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ImportDeclaration",
		Alias: (*Alias)(d),
	})
}

// TypeDeclaration

type TypeDeclaration struct {
	Identifier Identifier
	External   bool
	Range
}

var _ Element = &TypeDeclaration{}
var _ Declaration = &TypeDeclaration{}

func NewTypeDeclaration(identifier Identifier, external bool, declRange Range) *TypeDeclaration {
	return &TypeDeclaration{
		Identifier: identifier,
		External:   external,
		Range:      declRange,
	}
}

func (*TypeDeclaration) ElementType() ElementType {
	return ElementTypeTypeDeclaration
}

func (*TypeDeclaration) isDeclaration() {}

func (*TypeDeclaration) Walk(_ func(Element)) {
	// NO-OP
}

const typeDeclarationKeywordDoc = prettier.Text("type ")
const typeDeclarationEqualDoc = prettier.Text(" egal")
const typeDeclarationExternalDoc = prettier.Text(" external")

func (d *TypeDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		typeDeclarationKeywordDoc,
		d.Identifier.Doc(),
		typeDeclarationEqualDoc,
	}
	if d.External {
		doc = append(doc, typeDeclarationExternalDoc)
	}
	return doc
}

func (d *TypeDeclaration) String() string {
	return Prettier(d)
}

func (d *TypeDeclaration) MarshalJSON() ([]byte, error) {
	type Alias TypeDeclaration
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "TypeDeclaration",
		Alias: (*Alias)(d),
	})
}

// ConstantDeclaration

type ConstantDeclaration struct {
	Identifier Identifier
	Value      Expression
	StartPos   Position `json:"-"`
}

var _ Element = &ConstantDeclaration{}
var _ Declaration = &ConstantDeclaration{}

func NewConstantDeclaration(identifier Identifier, value Expression, startPos Position) *ConstantDeclaration {
	return &ConstantDeclaration{
		Identifier: identifier,
		Value:      value,
		StartPos:   startPos,
	}
}

func (*ConstantDeclaration) ElementType() ElementType {
	return ElementTypeConstantDeclaration
}

func (*ConstantDeclaration) isDeclaration() {}

func (d *ConstantDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *ConstantDeclaration) EndPosition() Position {
	return d.Value.EndPosition()
}

func (d *ConstantDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Value)
}

const constantDeclarationKeywordDoc = prettier.Text("constant ")

func (d *ConstantDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		constantDeclarationKeywordDoc,
		d.Identifier.Doc(),
		assignmentDoc,
		d.Value.Doc(),
	}
}

func (d *ConstantDeclaration) String() string {
	return Prettier(d)
}

func (d *ConstantDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ConstantDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ConstantDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// QuoteString renders the given string as a double-quoted toy-language string literal.
func QuoteString(s string) string {
	quoted := make([]byte, 0, len(s)+2)
	quoted = append(quoted, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			quoted = append(quoted, '\\', 'n')
		case '\t':
			quoted = append(quoted, '\\', 't')
		case '\r':
			quoted = append(quoted, '\\', 'r')
		case '\\':
			quoted = append(quoted, '\\', '\\')
		case '"':
			quoted = append(quoted, '\\', '"')
		default:
			quoted = append(quoted, c)
		}
	}
	quoted = append(quoted, '"')
	return string(quoted)
}
