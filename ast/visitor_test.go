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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type elementTypeVisitor struct{}

var _ ExpressionVisitor[ElementType] = elementTypeVisitor{}

func (elementTypeVisitor) VisitBoolExpression(e *BoolExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitNumberExpression(e *NumberExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitStringExpression(e *StringExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitArrayExpression(e *ArrayExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitIdentifierExpression(e *IdentifierExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitInvocationExpression(e *InvocationExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitMemberExpression(e *MemberExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitIndexExpression(e *IndexExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitBinaryExpression(e *BinaryExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitFunctionExpression(e *FunctionExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitNewExpression(e *NewExpression) ElementType {
	return e.ElementType()
}

func (elementTypeVisitor) VisitRawCodeExpression(e *RawCodeExpression) ElementType {
	return e.ElementType()
}

func TestAcceptExpression(t *testing.T) {

	t.Parallel()

	t.Run("known", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t,
			ElementTypeRawCodeExpression,
			AcceptExpression[ElementType](&RawCodeExpression{}, elementTypeVisitor{}),
		)
	})

	t.Run("nil", func(t *testing.T) {

		t.Parallel()

		defer func() {
			r := recover()
			require.IsType(t, &UnsupportedElementError{}, r)
			err := r.(*UnsupportedElementError)
			assert.Equal(t, ElementTypeUnknown, err.ElementType)
			assert.Equal(t, "unsupported element: ElementTypeUnknown", err.Error())
		}()

		AcceptExpression[ElementType](nil, elementTypeVisitor{})
	})
}

func TestElementType_String(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "ElementTypeForStatement", ElementTypeForStatement.String())
	assert.Equal(t, "ElementTypeRawCodeExpression", ElementTypeRawCodeExpression.String())
}
