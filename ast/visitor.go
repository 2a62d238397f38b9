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

// TopLevelStatementVisitor visits the statements
// which may appear both at the top level and inside of bodies.
type TopLevelStatementVisitor[T any] interface {
	VisitVariableDeclaration(*VariableDeclaration) T
	VisitIfStatement(*IfStatement) T
	VisitWhileStatement(*WhileStatement) T
	VisitForStatement(*ForStatement) T
	VisitAssignmentStatement(*AssignmentStatement) T
	VisitExpressionStatement(*ExpressionStatement) T
}

type DeclarationVisitor[T any] interface {
	TopLevelStatementVisitor[T]
	VisitImportDeclaration(*ImportDeclaration) T
	VisitClassDeclaration(*ClassDeclaration) T
	VisitFunctionDeclaration(*FunctionDeclaration) T
	VisitTypeDeclaration(*TypeDeclaration) T
	VisitConstantDeclaration(*ConstantDeclaration) T
}

func AcceptDeclaration[T any](declaration Declaration, visitor DeclarationVisitor[T]) (_ T) {

	if declaration == nil {
		panic(NewUnsupportedElementError(nil))
	}

	switch declaration.ElementType() {

	case ElementTypeImportDeclaration:
		return visitor.VisitImportDeclaration(declaration.(*ImportDeclaration))

	case ElementTypeClassDeclaration:
		return visitor.VisitClassDeclaration(declaration.(*ClassDeclaration))

	case ElementTypeFunctionDeclaration:
		return visitor.VisitFunctionDeclaration(declaration.(*FunctionDeclaration))

	case ElementTypeTypeDeclaration:
		return visitor.VisitTypeDeclaration(declaration.(*TypeDeclaration))

	case ElementTypeConstantDeclaration:
		return visitor.VisitConstantDeclaration(declaration.(*ConstantDeclaration))

	case ElementTypeVariableDeclaration:
		return visitor.VisitVariableDeclaration(declaration.(*VariableDeclaration))

	case ElementTypeIfStatement:
		return visitor.VisitIfStatement(declaration.(*IfStatement))

	case ElementTypeWhileStatement:
		return visitor.VisitWhileStatement(declaration.(*WhileStatement))

	case ElementTypeForStatement:
		return visitor.VisitForStatement(declaration.(*ForStatement))

	case ElementTypeAssignmentStatement:
		return visitor.VisitAssignmentStatement(declaration.(*AssignmentStatement))

	case ElementTypeExpressionStatement:
		return visitor.VisitExpressionStatement(declaration.(*ExpressionStatement))
	}

	panic(NewUnsupportedElementError(declaration))
}

type StatementVisitor[T any] interface {
	TopLevelStatementVisitor[T]
	VisitReturnStatement(*ReturnStatement) T
}

func AcceptStatement[T any](statement Statement, visitor StatementVisitor[T]) (_ T) {

	if statement == nil {
		panic(NewUnsupportedElementError(nil))
	}

	switch statement.ElementType() {

	case ElementTypeReturnStatement:
		return visitor.VisitReturnStatement(statement.(*ReturnStatement))

	case ElementTypeVariableDeclaration:
		return visitor.VisitVariableDeclaration(statement.(*VariableDeclaration))

	case ElementTypeIfStatement:
		return visitor.VisitIfStatement(statement.(*IfStatement))

	case ElementTypeWhileStatement:
		return visitor.VisitWhileStatement(statement.(*WhileStatement))

	case ElementTypeForStatement:
		return visitor.VisitForStatement(statement.(*ForStatement))

	case ElementTypeAssignmentStatement:
		return visitor.VisitAssignmentStatement(statement.(*AssignmentStatement))

	case ElementTypeExpressionStatement:
		return visitor.VisitExpressionStatement(statement.(*ExpressionStatement))
	}

	panic(NewUnsupportedElementError(statement))
}

type ExpressionVisitor[T any] interface {
	VisitBoolExpression(*BoolExpression) T
	VisitNumberExpression(*NumberExpression) T
	VisitStringExpression(*StringExpression) T
	VisitArrayExpression(*ArrayExpression) T
	VisitIdentifierExpression(*IdentifierExpression) T
	VisitInvocationExpression(*InvocationExpression) T
	VisitMemberExpression(*MemberExpression) T
	VisitIndexExpression(*IndexExpression) T
	VisitBinaryExpression(*BinaryExpression) T
	VisitFunctionExpression(*FunctionExpression) T
	VisitNewExpression(*NewExpression) T
	VisitRawCodeExpression(*RawCodeExpression) T
}

func AcceptExpression[T any](expression Expression, visitor ExpressionVisitor[T]) (_ T) {

	if expression == nil {
		panic(NewUnsupportedElementError(nil))
	}

	switch expression.ElementType() {

	case ElementTypeBoolExpression:
		return visitor.VisitBoolExpression(expression.(*BoolExpression))

	case ElementTypeNumberExpression:
		return visitor.VisitNumberExpression(expression.(*NumberExpression))

	case ElementTypeStringExpression:
		return visitor.VisitStringExpression(expression.(*StringExpression))

	case ElementTypeArrayExpression:
		return visitor.VisitArrayExpression(expression.(*ArrayExpression))

	case ElementTypeIdentifierExpression:
		return visitor.VisitIdentifierExpression(expression.(*IdentifierExpression))

	case ElementTypeInvocationExpression:
		return visitor.VisitInvocationExpression(expression.(*InvocationExpression))

	case ElementTypeMemberExpression:
		return visitor.VisitMemberExpression(expression.(*MemberExpression))

	case ElementTypeIndexExpression:
		return visitor.VisitIndexExpression(expression.(*IndexExpression))

	case ElementTypeBinaryExpression:
		return visitor.VisitBinaryExpression(expression.(*BinaryExpression))

	case ElementTypeFunctionExpression:
		return visitor.VisitFunctionExpression(expression.(*FunctionExpression))

	case ElementTypeNewExpression:
		return visitor.VisitNewExpression(expression.(*NewExpression))

	case ElementTypeRawCodeExpression:
		return visitor.VisitRawCodeExpression(expression.(*RawCodeExpression))
	}

	panic(NewUnsupportedElementError(expression))
}
