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

type Expression interface {
	Element
	isExpression()
	Doc() prettier.Doc
	String() string
}

func parenthesizedDoc(doc prettier.Doc) prettier.Doc {
	return prettier.Concat{
		prettier.Text("("),
		doc,
		prettier.Text(")"),
	}
}

var argumentSeparatorDoc prettier.Doc = prettier.Text(", ")

// argumentsDoc never breaks lines, as newlines are not allowed inside of expressions.
func argumentsDoc(arguments []Expression) prettier.Doc {
	argumentDocs := make([]prettier.Doc, len(arguments))
	for i, argument := range arguments {
		argumentDocs[i] = argument.Doc()
	}
	return parenthesizedDoc(
		prettier.Join(argumentSeparatorDoc, argumentDocs...),
	)
}

// BoolExpression

type BoolExpression struct {
	Value bool
	Range
}

var _ Element = &BoolExpression{}
var _ Expression = &BoolExpression{}

func NewBoolExpression(value bool, exprRange Range) *BoolExpression {
	return &BoolExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*BoolExpression) ElementType() ElementType {
	return ElementTypeBoolExpression
}

func (*BoolExpression) isExpression() {}

func (*BoolExpression) Walk(_ func(Element)) {
	// NO-OP
}

const boolExpressionTrueDoc = prettier.Text("vrai")
const boolExpressionFalseDoc = prettier.Text("faux")

func (e *BoolExpression) Doc() prettier.Doc {
	if e.Value {
		return boolExpressionTrueDoc
	}
	return boolExpressionFalseDoc
}

func (e *BoolExpression) String() string {
	return Prettier(e)
}

func (e *BoolExpression) MarshalJSON() ([]byte, error) {
	type Alias BoolExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "BoolExpression",
		Alias: (*Alias)(e),
	})
}

// NumberExpression

type NumberExpression struct {
	// Literal is the source text of the number
	Literal string
	Value   float64
	Range
}

var _ Element = &NumberExpression{}
var _ Expression = &NumberExpression{}

func NewNumberExpression(literal string, value float64, exprRange Range) *NumberExpression {
	return &NumberExpression{
		Literal: literal,
		Value:   value,
		Range:   exprRange,
	}
}

func (*NumberExpression) ElementType() ElementType {
	return ElementTypeNumberExpression
}

func (*NumberExpression) isExpression() {}

func (*NumberExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *NumberExpression) Doc() prettier.Doc {
	return prettier.Text(e.Literal)
}

func (e *NumberExpression) String() string {
	return e.Literal
}

func (e *NumberExpression) MarshalJSON() ([]byte, error) {
	type Alias NumberExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "NumberExpression",
		Alias: (*Alias)(e),
	})
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Element = &StringExpression{}
var _ Expression = &StringExpression{}

func NewStringExpression(value string, exprRange Range) *StringExpression {
	return &StringExpression{
		Value: value,
		Range: exprRange,
	}
}

func (*StringExpression) ElementType() ElementType {
	return ElementTypeStringExpression
}

func (*StringExpression) isExpression() {}

func (*StringExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(QuoteString(e.Value))
}

func (e *StringExpression) String() string {
	return QuoteString(e.Value)
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "StringExpression",
		Alias: (*Alias)(e),
	})
}

// ArrayExpression

type ArrayExpression struct {
	Values []Expression
	Range
}

var _ Element = &ArrayExpression{}
var _ Expression = &ArrayExpression{}

func NewArrayExpression(values []Expression, exprRange Range) *ArrayExpression {
	return &ArrayExpression{
		Values: values,
		Range:  exprRange,
	}
}

func (*ArrayExpression) ElementType() ElementType {
	return ElementTypeArrayExpression
}

func (*ArrayExpression) isExpression() {}

func (e *ArrayExpression) Walk(walkChild func(Element)) {
	walkExpressions(walkChild, e.Values)
}

func (e *ArrayExpression) Doc() prettier.Doc {
	if len(e.Values) == 0 {
		return prettier.Text("[]")
	}

	elementDocs := make([]prettier.Doc, len(e.Values))
	for i, value := range e.Values {
		elementDocs[i] = value.Doc()
	}
	return prettier.Concat{
		prettier.Text("["),
		prettier.Join(argumentSeparatorDoc, elementDocs...),
		prettier.Text("]"),
	}
}

func (e *ArrayExpression) String() string {
	return Prettier(e)
}

func (e *ArrayExpression) MarshalJSON() ([]byte, error) {
	type Alias ArrayExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ArrayExpression",
		Alias: (*Alias)(e),
	})
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Element = &IdentifierExpression{}
var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(identifier Identifier) *IdentifierExpression {
	return &IdentifierExpression{
		Identifier: identifier,
	}
}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (*IdentifierExpression) isExpression() {}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

// IsSelf reports whether the expression is the self-reference `ceci`.
func (e *IdentifierExpression) IsSelf() bool {
	return e.Identifier.Identifier == SelfIdentifier
}

func (*IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

const selfKeywordDoc = prettier.Text("ceci")

func (e *IdentifierExpression) Doc() prettier.Doc {
	if e.IsSelf() {
		return selfKeywordDoc
	}
	return e.Identifier.Doc()
}

func (e *IdentifierExpression) String() string {
	return Prettier(e)
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IdentifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         []Expression
	EndPos            Position `json:"-"`
}

var _ Element = &InvocationExpression{}
var _ Expression = &InvocationExpression{}

func NewInvocationExpression(
	invokedExpression Expression,
	arguments []Expression,
	endPos Position,
) *InvocationExpression {
	return &InvocationExpression{
		InvokedExpression: invokedExpression,
		Arguments:         arguments,
		EndPos:            endPos,
	}
}

func (*InvocationExpression) ElementType() ElementType {
	return ElementTypeInvocationExpression
}

func (*InvocationExpression) isExpression() {}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

func (e *InvocationExpression) Walk(walkChild func(Element)) {
	walkChild(e.InvokedExpression)
	walkExpressions(walkChild, e.Arguments)
}

func (e *InvocationExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.InvokedExpression.Doc(),
		argumentsDoc(e.Arguments),
	}
}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

func (e *InvocationExpression) MarshalJSON() ([]byte, error) {
	type Alias InvocationExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "InvocationExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// MemberExpression

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
	// Arrow is true if the member was accessed with `->` instead of `.`
	Arrow bool
}

var _ Element = &MemberExpression{}
var _ Expression = &MemberExpression{}

func NewMemberExpression(expression Expression, identifier Identifier, arrow bool) *MemberExpression {
	return &MemberExpression{
		Expression: expression,
		Identifier: identifier,
		Arrow:      arrow,
	}
}

func (*MemberExpression) ElementType() ElementType {
	return ElementTypeMemberExpression
}

func (*MemberExpression) isExpression() {}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *MemberExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

var memberExpressionSeparatorDoc prettier.Doc = prettier.Text(".")
var memberExpressionArrowSeparatorDoc prettier.Doc = prettier.Text("->")

func (e *MemberExpression) Doc() prettier.Doc {
	separatorDoc := memberExpressionSeparatorDoc
	if e.Arrow {
		separatorDoc = memberExpressionArrowSeparatorDoc
	}
	return prettier.Concat{
		e.Expression.Doc(),
		separatorDoc,
		e.Identifier.Doc(),
	}
}

func (e *MemberExpression) String() string {
	return Prettier(e)
}

func (e *MemberExpression) MarshalJSON() ([]byte, error) {
	type Alias MemberExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "MemberExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// IndexExpression

type IndexExpression struct {
	TargetExpression   Expression
	IndexingExpression Expression
	EndPos             Position `json:"-"`
}

var _ Element = &IndexExpression{}
var _ Expression = &IndexExpression{}

func NewIndexExpression(
	targetExpression Expression,
	indexingExpression Expression,
	endPos Position,
) *IndexExpression {
	return &IndexExpression{
		TargetExpression:   targetExpression,
		IndexingExpression: indexingExpression,
		EndPos:             endPos,
	}
}

func (*IndexExpression) ElementType() ElementType {
	return ElementTypeIndexExpression
}

func (*IndexExpression) isExpression() {}

func (e *IndexExpression) StartPosition() Position {
	return e.TargetExpression.StartPosition()
}

func (e *IndexExpression) EndPosition() Position {
	return e.EndPos
}

func (e *IndexExpression) Walk(walkChild func(Element)) {
	walkChild(e.TargetExpression)
	walkChild(e.IndexingExpression)
}

func (e *IndexExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.TargetExpression.Doc(),
		prettier.Text("["),
		e.IndexingExpression.Doc(),
		prettier.Text("]"),
	}
}

func (e *IndexExpression) String() string {
	return Prettier(e)
}

func (e *IndexExpression) MarshalJSON() ([]byte, error) {
	type Alias IndexExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IndexExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// BinaryExpression

type BinaryExpression struct {
	// Operator is the operator's source text, e.g. `+` or `<=`
	Operator string
	Left     Expression
	Right    Expression
}

var _ Element = &BinaryExpression{}
var _ Expression = &BinaryExpression{}

func NewBinaryExpression(operator string, left Expression, right Expression) *BinaryExpression {
	return &BinaryExpression{
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}

func (*BinaryExpression) ElementType() ElementType {
	return ElementTypeBinaryExpression
}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}

func (e *BinaryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Left)
	walkChild(e.Right)
}

// binaryOperandDoc parenthesizes nested binary expressions,
// so the rendered source parses back to the same tree.
func binaryOperandDoc(operand Expression) prettier.Doc {
	doc := operand.Doc()
	if _, ok := operand.(*BinaryExpression); ok {
		return parenthesizedDoc(doc)
	}
	return doc
}

func (e *BinaryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		binaryOperandDoc(e.Left),
		prettier.Space,
		prettier.Text(e.Operator),
		prettier.Space,
		binaryOperandDoc(e.Right),
	}
}

func (e *BinaryExpression) String() string {
	return Prettier(e)
}

func (e *BinaryExpression) MarshalJSON() ([]byte, error) {
	type Alias BinaryExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "BinaryExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// FunctionExpression

type FunctionExpression struct {
	Parameters []*Parameter
	Body       *Block
	StartPos   Position `json:"-"`
}

var _ Element = &FunctionExpression{}
var _ Expression = &FunctionExpression{}

func NewFunctionExpression(parameters []*Parameter, body *Block, startPos Position) *FunctionExpression {
	return &FunctionExpression{
		Parameters: parameters,
		Body:       body,
		StartPos:   startPos,
	}
}

func (*FunctionExpression) ElementType() ElementType {
	return ElementTypeFunctionExpression
}

func (*FunctionExpression) isExpression() {}

func (e *FunctionExpression) StartPosition() Position {
	return e.StartPos
}

func (e *FunctionExpression) EndPosition() Position {
	return e.Body.EndPosition()
}

func (e *FunctionExpression) Walk(walkChild func(Element)) {
	walkChild(e.Body)
}

func (e *FunctionExpression) Doc() prettier.Doc {
	return prettier.Concat{
		functionKeywordDoc,
		parametersDoc(e.Parameters),
		prettier.Space,
		e.Body.Doc(),
	}
}

func (e *FunctionExpression) String() string {
	return Prettier(e)
}

func (e *FunctionExpression) MarshalJSON() ([]byte, error) {
	type Alias FunctionExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "FunctionExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// NewExpression
//
// The invoked expression is an identifier expression,
// or a chain of member expressions on an identifier expression.

type NewExpression struct {
	InvokedExpression Expression
	Arguments         []Expression
	Range
}

var _ Element = &NewExpression{}
var _ Expression = &NewExpression{}

func NewNewExpression(invokedExpression Expression, arguments []Expression, exprRange Range) *NewExpression {
	return &NewExpression{
		InvokedExpression: invokedExpression,
		Arguments:         arguments,
		Range:             exprRange,
	}
}

func (*NewExpression) ElementType() ElementType {
	return ElementTypeNewExpression
}

func (*NewExpression) isExpression() {}

func (e *NewExpression) Walk(walkChild func(Element)) {
	walkChild(e.InvokedExpression)
	walkExpressions(walkChild, e.Arguments)
}

const newExpressionKeywordDoc = prettier.Text("nouveau ")

func (e *NewExpression) Doc() prettier.Doc {
	return prettier.Concat{
		newExpressionKeywordDoc,
		e.InvokedExpression.Doc(),
		argumentsDoc(e.Arguments),
	}
}

func (e *NewExpression) String() string {
	return Prettier(e)
}

func (e *NewExpression) MarshalJSON() ([]byte, error) {
	type Alias NewExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "NewExpression",
		Alias: (*Alias)(e),
	})
}

// RawCodeExpression is target-language code embedded with `@nim(...)`.
// The code is opaque and written to the output verbatim.

type RawCodeExpression struct {
	Code string
	Range
}

var _ Element = &RawCodeExpression{}
var _ Expression = &RawCodeExpression{}

func NewRawCodeExpression(code string, exprRange Range) *RawCodeExpression {
	return &RawCodeExpression{
		Code:  code,
		Range: exprRange,
	}
}

func (*RawCodeExpression) ElementType() ElementType {
	return ElementTypeRawCodeExpression
}

func (*RawCodeExpression) isExpression() {}

func (*RawCodeExpression) Walk(_ func(Element)) {
	// NO-OP
}

const rawCodeExpressionPrefixDoc = prettier.Text("@nim(")
const rawCodeExpressionSuffixDoc = prettier.Text(")")

func (e *RawCodeExpression) Doc() prettier.Doc {
	return prettier.Concat{
		rawCodeExpressionPrefixDoc,
		prettier.Text(e.Code),
		rawCodeExpressionSuffixDoc,
	}
}

func (e *RawCodeExpression) String() string {
	return Prettier(e)
}

func (e *RawCodeExpression) MarshalJSON() ([]byte, error) {
	type Alias RawCodeExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "RawCodeExpression",
		Alias: (*Alias)(e),
	})
}

func walkExpressions(walkChild func(Element), expressions []Expression) {
	for _, expression := range expressions {
		walkChild(expression)
	}
}
