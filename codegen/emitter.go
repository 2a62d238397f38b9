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

package codegen

import (
	"strings"

	"github.com/onflow/fr2nim/ast"
)

const indentation = "  "

const (
	selfParameterName   = "self"
	constructorResult   = "result"
	emptyArrayLiteral   = "newSeq[string]()"
	closurePragmas      = "{.closure, gcsafe.}"
	sourceFileExtension = ".fr"
	relativePathPrefix  = "./"
)

// Member calls of these methods are always emitted without arguments
var argumentlessMethods = map[string]struct{}{
	"parler":       {},
	"recupererNom": {},
}

var stringEscaper = strings.NewReplacer(
	`"`, `\"`,
	`'`, `\'`,
)

// emitter generates code for a single element.
//
// It is passed by value: nested elements get a copy with their own depth,
// so state never leaks into siblings.
type emitter struct {
	depth         int
	inConstructor bool
}

var _ ast.DeclarationVisitor[string] = emitter{}
var _ ast.StatementVisitor[string] = emitter{}
var _ ast.ExpressionVisitor[string] = emitter{}

func (e emitter) nested() emitter {
	e.depth++
	return e
}

func (e emitter) constructorBody() emitter {
	e.inConstructor = true
	return e
}

func (e emitter) indent() string {
	return strings.Repeat(indentation, e.depth)
}

func (e emitter) expression(expression ast.Expression) string {
	return ast.AcceptExpression[string](expression, e)
}

func (e emitter) expressions(expressions []ast.Expression) string {
	generated := make([]string, 0, len(expressions))
	for _, expression := range expressions {
		generated = append(generated, e.expression(expression))
	}
	return strings.Join(generated, ", ")
}

func (e emitter) statement(statement ast.Statement) string {
	return ast.AcceptStatement[string](statement, e)
}

// block generates the statements of the block, one per line, at the emitter's depth
func (e emitter) block(block *ast.Block) string {
	if block == nil {
		return ""
	}

	var sb strings.Builder
	for _, statement := range block.Statements {
		sb.WriteString(e.statement(statement))
	}
	return sb.String()
}

func parameterList(parameters []*ast.Parameter, leading ...string) string {
	list := make([]string, 0, len(leading)+len(parameters))
	list = append(list, leading...)
	for _, parameter := range parameters {
		list = append(list, parameter.Identifier.Identifier+": auto")
	}
	return strings.Join(list, ", ")
}

// procedure generates a proc with exported name.
// The return type is inferred, and only declared
// if the body directly contains a return statement.
func (e emitter) procedure(name string, parameters string, body *ast.Block) string {
	var sb strings.Builder

	sb.WriteString("proc ")
	sb.WriteString(name)
	sb.WriteString("*(")
	sb.WriteString(parameters)
	sb.WriteByte(')')
	if body.HasImmediateReturn() {
		sb.WriteString(": auto")
	}
	sb.WriteString(" =\n")

	sb.WriteString(e.nested().block(body))

	return sb.String()
}

// Declarations

func (e emitter) VisitImportDeclaration(declaration *ast.ImportDeclaration) string {
	module := strings.TrimSuffix(declaration.Path, sourceFileExtension)
	module = strings.TrimPrefix(module, relativePathPrefix)

	if declaration.Alias != nil {
		return "import " + module + " as " + declaration.Alias.Identifier
	}
	return "import " + module
}

func (e emitter) VisitClassDeclaration(declaration *ast.ClassDeclaration) string {
	var sb strings.Builder

	className := declaration.Identifier.Identifier

	sb.WriteString("type ")
	sb.WriteString(className)
	sb.WriteString("* = ref object\n")

	fieldIndent := e.nested().indent()
	for _, field := range declaration.Fields() {
		sb.WriteString(fieldIndent)
		sb.WriteString(field)
		sb.WriteString("*: auto\n")
	}

	sb.WriteByte('\n')

	sb.WriteString(e.constructor(className, declaration.Constructor))
	sb.WriteByte('\n')

	for _, method := range declaration.Methods {
		sb.WriteString(
			e.procedure(
				method.Identifier.Identifier,
				parameterList(method.Parameters, selfParameterName+": "+className),
				method.Body,
			),
		)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// constructor generates the factory proc of a class.
// A class without a constructor gets a factory without parameters.
func (e emitter) constructor(className string, constructor *ast.ConstructorDeclaration) string {
	var sb strings.Builder

	var parameters []*ast.Parameter
	var body *ast.Block
	if constructor != nil {
		parameters = constructor.Parameters
		body = constructor.Body
	}

	sb.WriteString("proc new")
	sb.WriteString(className)
	sb.WriteString("*(")
	sb.WriteString(parameterList(parameters))
	sb.WriteString("): ")
	sb.WriteString(className)
	sb.WriteString(" =\n")

	bodyEmitter := e.nested().constructorBody()

	sb.WriteString(bodyEmitter.indent())
	sb.WriteString(constructorResult)
	sb.WriteString(" = ")
	sb.WriteString(className)
	sb.WriteString("()\n")

	sb.WriteString(bodyEmitter.block(body))

	return sb.String()
}

func (e emitter) VisitFunctionDeclaration(declaration *ast.FunctionDeclaration) string {
	return e.procedure(
		declaration.Identifier.Identifier,
		parameterList(declaration.Parameters),
		declaration.Body,
	)
}

func (e emitter) VisitTypeDeclaration(declaration *ast.TypeDeclaration) string {
	if declaration.External {
		return "# External type: " + declaration.Identifier.Identifier
	}
	return "type " + declaration.Identifier.Identifier + "* = object"
}

func (e emitter) VisitConstantDeclaration(declaration *ast.ConstantDeclaration) string {
	return "const " + declaration.Identifier.Identifier + "* = " + e.expression(declaration.Value)
}

// Statements

func (e emitter) VisitVariableDeclaration(declaration *ast.VariableDeclaration) string {
	var sb strings.Builder

	sb.WriteString(e.indent())
	sb.WriteString("var ")
	sb.WriteString(declaration.Identifier.Identifier)
	// only top-level variables are exported
	if e.depth == 0 {
		sb.WriteByte('*')
	}
	sb.WriteString(" = ")
	sb.WriteString(e.expression(declaration.Value))
	sb.WriteByte('\n')

	return sb.String()
}

func (e emitter) VisitReturnStatement(statement *ast.ReturnStatement) string {
	return e.indent() + "return " + e.expression(statement.Expression) + "\n"
}

func (e emitter) VisitAssignmentStatement(statement *ast.AssignmentStatement) string {
	return e.indent() +
		e.expression(statement.Target) +
		" = " +
		e.expression(statement.Value) +
		"\n"
}

func (e emitter) VisitExpressionStatement(statement *ast.ExpressionStatement) string {
	return e.indent() + e.expression(statement.Expression) + "\n"
}

func (e emitter) VisitIfStatement(statement *ast.IfStatement) string {
	var sb strings.Builder

	sb.WriteString(e.indent())
	sb.WriteString("if ")
	sb.WriteString(e.expression(statement.Test))
	sb.WriteString(":\n")
	sb.WriteString(e.nested().block(statement.Then))

	if !statement.Else.IsEmpty() {
		sb.WriteString(e.indent())
		sb.WriteString("else:\n")
		sb.WriteString(e.nested().block(statement.Else))
	}

	return sb.String()
}

func (e emitter) VisitWhileStatement(statement *ast.WhileStatement) string {
	var sb strings.Builder

	sb.WriteString(e.indent())
	sb.WriteString("while ")
	sb.WriteString(e.expression(statement.Test))
	sb.WriteString(":\n")
	sb.WriteString(e.nested().block(statement.Block))

	return sb.String()
}

// VisitForStatement lowers the loop to a while loop.
// The init clause is emitted before the loop,
// and the increment clause after the body, as the last statement of the loop.
func (e emitter) VisitForStatement(statement *ast.ForStatement) string {
	var sb strings.Builder

	if statement.Init != nil {
		sb.WriteString(e.statement(statement.Init))
	}

	sb.WriteString(e.indent())
	if statement.Test != nil {
		sb.WriteString("while ")
		sb.WriteString(e.expression(statement.Test))
		sb.WriteString(":\n")
	} else {
		sb.WriteString("while true:\n")
	}

	bodyEmitter := e.nested()
	sb.WriteString(bodyEmitter.block(statement.Block))

	if statement.Increment != nil {
		sb.WriteString(bodyEmitter.statement(statement.Increment))
	}

	return sb.String()
}

// Expressions

func (e emitter) VisitBoolExpression(expression *ast.BoolExpression) string {
	if expression.Value {
		return "true"
	}
	return "false"
}

func (e emitter) VisitNumberExpression(expression *ast.NumberExpression) string {
	return formatNumber(expression.Value)
}

func (e emitter) VisitStringExpression(expression *ast.StringExpression) string {
	return `"` + stringEscaper.Replace(expression.Value) + `"`
}

func (e emitter) VisitArrayExpression(expression *ast.ArrayExpression) string {
	if len(expression.Values) == 0 {
		return emptyArrayLiteral
	}
	return "@[" + e.expressions(expression.Values) + "]"
}

func (e emitter) VisitIdentifierExpression(expression *ast.IdentifierExpression) string {
	if expression.IsSelf() {
		// the constructor builds the instance in its result
		if e.inConstructor {
			return constructorResult
		}
		return selfParameterName
	}
	return expression.Identifier.Identifier
}

func (e emitter) VisitInvocationExpression(expression *ast.InvocationExpression) string {
	if member, ok := expression.InvokedExpression.(*ast.MemberExpression); ok {
		object := e.expression(member.Expression)
		name := member.Identifier.Identifier

		if _, ok := argumentlessMethods[name]; ok {
			return object + "." + name + "()"
		}

		return object + "." + name + "(" + e.expressions(expression.Arguments) + ")"
	}

	return e.expression(expression.InvokedExpression) +
		"(" + e.expressions(expression.Arguments) + ")"
}

func (e emitter) VisitMemberExpression(expression *ast.MemberExpression) string {
	return e.expression(expression.Expression) + "." + expression.Identifier.Identifier
}

func (e emitter) VisitIndexExpression(expression *ast.IndexExpression) string {
	return e.expression(expression.TargetExpression) +
		"[" + e.expression(expression.IndexingExpression) + "]"
}

func (e emitter) VisitBinaryExpression(expression *ast.BinaryExpression) string {
	return "(" +
		e.expression(expression.Left) +
		expression.Operator +
		e.expression(expression.Right) +
		")"
}

func (e emitter) VisitFunctionExpression(expression *ast.FunctionExpression) string {
	return "proc(" + parameterList(expression.Parameters) + "): auto " + closurePragmas + " =\n" +
		e.nested().block(expression.Body)
}

// VisitNewExpression emits a plain call of the callee,
// which is expected to be a proc defined elsewhere.
func (e emitter) VisitNewExpression(expression *ast.NewExpression) string {
	return e.expression(expression.InvokedExpression) +
		"(" + e.expressions(expression.Arguments) + ")"
}

func (e emitter) VisitRawCodeExpression(expression *ast.RawCodeExpression) string {
	return expression.Code
}
