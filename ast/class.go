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

// ClassDeclaration

type ClassDeclaration struct {
	Identifier Identifier
	// Constructor is nil if the class declares none
	Constructor *ConstructorDeclaration
	Methods     []*MethodDeclaration
	Range
}

var _ Element = &ClassDeclaration{}
var _ Declaration = &ClassDeclaration{}

func NewClassDeclaration(
	identifier Identifier,
	constructor *ConstructorDeclaration,
	methods []*MethodDeclaration,
	declRange Range,
) *ClassDeclaration {
	return &ClassDeclaration{
		Identifier:  identifier,
		Constructor: constructor,
		Methods:     methods,
		Range:       declRange,
	}
}

func (*ClassDeclaration) ElementType() ElementType {
	return ElementTypeClassDeclaration
}

func (*ClassDeclaration) isDeclaration() {}

func (d *ClassDeclaration) Walk(walkChild func(Element)) {
	if d.Constructor != nil {
		walkChild(d.Constructor)
	}
	for _, method := range d.Methods {
		walkChild(method)
	}
}

// Fields returns the names of the fields of the class,
// which are exactly the parameter names of its constructor.
func (d *ClassDeclaration) Fields() []string {
	if d.Constructor == nil {
		return nil
	}
	return ParameterNames(d.Constructor.Parameters)
}

const classDeclarationKeywordDoc = prettier.Text("classe ")

func (d *ClassDeclaration) Doc() prettier.Doc {
	membersDoc := prettier.Concat{}

	addMember := func(memberDoc prettier.Doc) {
		membersDoc = append(
			membersDoc,
			prettier.HardLine{},
			memberDoc,
		)
	}

	if d.Constructor != nil {
		addMember(d.Constructor.Doc())
	}
	for _, method := range d.Methods {
		addMember(method.Doc())
	}

	doc := prettier.Concat{
		classDeclarationKeywordDoc,
		d.Identifier.Doc(),
		prettier.Space,
		blockStartDoc,
	}
	if len(membersDoc) > 0 {
		doc = append(doc, prettier.Indent{Doc: membersDoc})
	}
	return append(
		doc,
		prettier.HardLine{},
		blockEndDoc,
	)
}

func (d *ClassDeclaration) String() string {
	return Prettier(d)
}

func (d *ClassDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ClassDeclaration
	return json.Marshal(&struct {
		Type   string
		Fields []string
		*Alias
	}{
		Type:   "ClassDeclaration",
		Fields: d.Fields(),
		Alias:  (*Alias)(d),
	})
}

// ConstructorDeclaration

type ConstructorDeclaration struct {
	Parameters []*Parameter
	Body       *Block
	StartPos   Position `json:"-"`
}

var _ Element = &ConstructorDeclaration{}

func NewConstructorDeclaration(
	parameters []*Parameter,
	body *Block,
	startPos Position,
) *ConstructorDeclaration {
	return &ConstructorDeclaration{
		Parameters: parameters,
		Body:       body,
		StartPos:   startPos,
	}
}

func (*ConstructorDeclaration) ElementType() ElementType {
	return ElementTypeConstructorDeclaration
}

func (d *ConstructorDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *ConstructorDeclaration) EndPosition() Position {
	return d.Body.EndPosition()
}

func (d *ConstructorDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Body)
}

const constructorKeywordDoc = prettier.Text("constructeur")

func (d *ConstructorDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		constructorKeywordDoc,
		parametersDoc(d.Parameters),
		prettier.Space,
		d.Body.Doc(),
	}
}

func (d *ConstructorDeclaration) String() string {
	return Prettier(d)
}

func (d *ConstructorDeclaration) MarshalJSON() ([]byte, error) {
	type Alias ConstructorDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ConstructorDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// MethodDeclaration

type MethodDeclaration struct {
	Identifier Identifier
	Parameters []*Parameter
	Body       *Block
}

var _ Element = &MethodDeclaration{}

func NewMethodDeclaration(
	identifier Identifier,
	parameters []*Parameter,
	body *Block,
) *MethodDeclaration {
	return &MethodDeclaration{
		Identifier: identifier,
		Parameters: parameters,
		Body:       body,
	}
}

func (*MethodDeclaration) ElementType() ElementType {
	return ElementTypeMethodDeclaration
}

func (d *MethodDeclaration) StartPosition() Position {
	return d.Identifier.StartPosition()
}

func (d *MethodDeclaration) EndPosition() Position {
	return d.Body.EndPosition()
}

func (d *MethodDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Body)
}

func (d *MethodDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		d.Identifier.Doc(),
		parametersDoc(d.Parameters),
		prettier.Space,
		d.Body.Doc(),
	}
}

func (d *MethodDeclaration) String() string {
	return Prettier(d)
}

func (d *MethodDeclaration) MarshalJSON() ([]byte, error) {
	type Alias MethodDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "MethodDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
