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

type Statement interface {
	Element
	isStatement()
	Doc() prettier.Doc
	String() string
}

const assignmentDoc = prettier.Text(" = ")

// ReturnStatement

type ReturnStatement struct {
	Expression Expression
	StartPos   Position `json:"-"`
}

var _ Element = &ReturnStatement{}
var _ Statement = &ReturnStatement{}

func NewReturnStatement(expression Expression, startPos Position) *ReturnStatement {
	return &ReturnStatement{
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*ReturnStatement) ElementType() ElementType {
	return ElementTypeReturnStatement
}

func (*ReturnStatement) isStatement() {}

func (s *ReturnStatement) StartPosition() Position {
	return s.StartPos
}

func (s *ReturnStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

func (s *ReturnStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

const returnStatementKeywordDoc = prettier.Text("retourne ")

func (s *ReturnStatement) Doc() prettier.Doc {
	return prettier.Concat{
		returnStatementKeywordDoc,
		s.Expression.Doc(),
	}
}

func (s *ReturnStatement) String() string {
	return Prettier(s)
}

func (s *ReturnStatement) MarshalJSON() ([]byte, error) {
	type Alias ReturnStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ReturnStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// VariableDeclaration

type VariableDeclaration struct {
	Identifier Identifier
	Value      Expression
	StartPos   Position `json:"-"`
}

var _ Element = &VariableDeclaration{}
var _ Statement = &VariableDeclaration{}
var _ Declaration = &VariableDeclaration{}

func NewVariableDeclaration(identifier Identifier, value Expression, startPos Position) *VariableDeclaration {
	return &VariableDeclaration{
		Identifier: identifier,
		Value:      value,
		StartPos:   startPos,
	}
}

func (*VariableDeclaration) ElementType() ElementType {
	return ElementTypeVariableDeclaration
}

func (*VariableDeclaration) isStatement() {}

func (*VariableDeclaration) isDeclaration() {}

func (d *VariableDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *VariableDeclaration) EndPosition() Position {
	return d.Value.EndPosition()
}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	walkChild(d.Value)
}

const variableDeclarationKeywordDoc = prettier.Text("variable ")

func (d *VariableDeclaration) Doc() prettier.Doc {
	return prettier.Concat{
		variableDeclarationKeywordDoc,
		d.Identifier.Doc(),
		assignmentDoc,
		d.Value.Doc(),
	}
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

func (d *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "VariableDeclaration",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// AssignmentStatement

type AssignmentStatement struct {
	Target Expression
	Value  Expression
}

var _ Element = &AssignmentStatement{}
var _ Statement = &AssignmentStatement{}
var _ Declaration = &AssignmentStatement{}

func NewAssignmentStatement(target Expression, value Expression) *AssignmentStatement {
	return &AssignmentStatement{
		Target: target,
		Value:  value,
	}
}

func (*AssignmentStatement) ElementType() ElementType {
	return ElementTypeAssignmentStatement
}

func (*AssignmentStatement) isStatement() {}

func (*AssignmentStatement) isDeclaration() {}

func (s *AssignmentStatement) StartPosition() Position {
	return s.Target.StartPosition()
}

func (s *AssignmentStatement) EndPosition() Position {
	return s.Value.EndPosition()
}

func (s *AssignmentStatement) Walk(walkChild func(Element)) {
	walkChild(s.Target)
	walkChild(s.Value)
}

func (s *AssignmentStatement) Doc() prettier.Doc {
	return prettier.Concat{
		s.Target.Doc(),
		assignmentDoc,
		s.Value.Doc(),
	}
}

func (s *AssignmentStatement) String() string {
	return Prettier(s)
}

func (s *AssignmentStatement) MarshalJSON() ([]byte, error) {
	type Alias AssignmentStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "AssignmentStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Element = &ExpressionStatement{}
var _ Statement = &ExpressionStatement{}
var _ Declaration = &ExpressionStatement{}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{
		Expression: expression,
	}
}

func (*ExpressionStatement) ElementType() ElementType {
	return ElementTypeExpressionStatement
}

func (*ExpressionStatement) isStatement() {}

func (*ExpressionStatement) isDeclaration() {}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition() Position {
	return s.Expression.EndPosition()
}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

func (s *ExpressionStatement) Doc() prettier.Doc {
	return s.Expression.Doc()
}

func (s *ExpressionStatement) String() string {
	return Prettier(s)
}

func (s *ExpressionStatement) MarshalJSON() ([]byte, error) {
	type Alias ExpressionStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ExpressionStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// IfStatement

type IfStatement struct {
	Test Expression
	Then *Block
	// Else is nil if there is no `sinon` branch
	Else     *Block
	StartPos Position `json:"-"`
}

var _ Element = &IfStatement{}
var _ Statement = &IfStatement{}
var _ Declaration = &IfStatement{}

func NewIfStatement(test Expression, thenBlock *Block, elseBlock *Block, startPos Position) *IfStatement {
	return &IfStatement{
		Test:     test,
		Then:     thenBlock,
		Else:     elseBlock,
		StartPos: startPos,
	}
}

func (*IfStatement) ElementType() ElementType {
	return ElementTypeIfStatement
}

func (*IfStatement) isStatement() {}

func (*IfStatement) isDeclaration() {}

func (s *IfStatement) StartPosition() Position {
	return s.StartPos
}

func (s *IfStatement) EndPosition() Position {
	if s.Else != nil {
		return s.Else.EndPosition()
	}
	return s.Then.EndPosition()
}

func (s *IfStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
	walkChild(s.Then)
	if s.Else != nil {
		walkChild(s.Else)
	}
}

const ifStatementIfKeywordDoc = prettier.Text("si ")
const ifStatementElseKeywordDoc = prettier.Text(" sinon ")

func (s *IfStatement) Doc() prettier.Doc {
	doc := prettier.Concat{
		ifStatementIfKeywordDoc,
		parenthesizedDoc(s.Test.Doc()),
		prettier.Space,
		s.Then.Doc(),
	}
	if s.Else != nil {
		doc = append(
			doc,
			ifStatementElseKeywordDoc,
			s.Else.Doc(),
		)
	}
	return doc
}

func (s *IfStatement) String() string {
	return Prettier(s)
}

func (s *IfStatement) MarshalJSON() ([]byte, error) {
	type Alias IfStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IfStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// WhileStatement

type WhileStatement struct {
	Test     Expression
	Block    *Block
	StartPos Position `json:"-"`
}

var _ Element = &WhileStatement{}
var _ Statement = &WhileStatement{}
var _ Declaration = &WhileStatement{}

func NewWhileStatement(test Expression, block *Block, startPos Position) *WhileStatement {
	return &WhileStatement{
		Test:     test,
		Block:    block,
		StartPos: startPos,
	}
}

func (*WhileStatement) ElementType() ElementType {
	return ElementTypeWhileStatement
}

func (*WhileStatement) isStatement() {}

func (*WhileStatement) isDeclaration() {}

func (s *WhileStatement) StartPosition() Position {
	return s.StartPos
}

func (s *WhileStatement) EndPosition() Position {
	return s.Block.EndPosition()
}

func (s *WhileStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
	walkChild(s.Block)
}

const whileStatementKeywordDoc = prettier.Text("tantque ")

func (s *WhileStatement) Doc() prettier.Doc {
	return prettier.Concat{
		whileStatementKeywordDoc,
		parenthesizedDoc(s.Test.Doc()),
		prettier.Space,
		s.Block.Doc(),
	}
}

func (s *WhileStatement) String() string {
	return Prettier(s)
}

func (s *WhileStatement) MarshalJSON() ([]byte, error) {
	type Alias WhileStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "WhileStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ForStatement
//
// All three clauses are optional.
// The init and increment clauses are expression statements,
// assignment statements, or variable declarations.

type ForStatement struct {
	Init      Statement
	Test      Expression
	Increment Statement
	Block     *Block
	StartPos  Position `json:"-"`
}

var _ Element = &ForStatement{}
var _ Statement = &ForStatement{}
var _ Declaration = &ForStatement{}

func NewForStatement(
	init Statement,
	test Expression,
	increment Statement,
	block *Block,
	startPos Position,
) *ForStatement {
	return &ForStatement{
		Init:      init,
		Test:      test,
		Increment: increment,
		Block:     block,
		StartPos:  startPos,
	}
}

func (*ForStatement) ElementType() ElementType {
	return ElementTypeForStatement
}

func (*ForStatement) isStatement() {}

func (*ForStatement) isDeclaration() {}

func (s *ForStatement) StartPosition() Position {
	return s.StartPos
}

func (s *ForStatement) EndPosition() Position {
	return s.Block.EndPosition()
}

// HasClauses reports whether any of the three clauses is present.
func (s *ForStatement) HasClauses() bool {
	return s.Init != nil || s.Test != nil || s.Increment != nil
}

func (s *ForStatement) Walk(walkChild func(Element)) {
	if s.Init != nil {
		walkChild(s.Init)
	}
	if s.Test != nil {
		walkChild(s.Test)
	}
	if s.Increment != nil {
		walkChild(s.Increment)
	}
	walkChild(s.Block)
}

const forStatementKeywordDoc = prettier.Text("pour ")
const forStatementClauseSeparatorDoc = prettier.Text("; ")

func (s *ForStatement) Doc() prettier.Doc {
	clausesDoc := prettier.Concat{}
	if s.Init != nil {
		clausesDoc = append(clausesDoc, s.Init.Doc())
	}
	clausesDoc = append(clausesDoc, forStatementClauseSeparatorDoc)
	if s.Test != nil {
		clausesDoc = append(clausesDoc, s.Test.Doc())
	}
	clausesDoc = append(clausesDoc, forStatementClauseSeparatorDoc)
	if s.Increment != nil {
		clausesDoc = append(clausesDoc, s.Increment.Doc())
	}

	return prettier.Concat{
		forStatementKeywordDoc,
		parenthesizedDoc(clausesDoc),
		prettier.Space,
		s.Block.Doc(),
	}
}

func (s *ForStatement) String() string {
	return Prettier(s)
}

func (s *ForStatement) MarshalJSON() ([]byte, error) {
	type Alias ForStatement
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ForStatement",
		Range: NewRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}
