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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlock_MarshalJSON(t *testing.T) {

	t.Parallel()

	block := &Block{
		Statements: []Statement{
			&ExpressionStatement{
				Expression: &BoolExpression{
					Value: false,
					Range: Range{
						StartPos: Position{Offset: 1, Line: 2, Column: 3},
						EndPos:   Position{Offset: 4, Line: 5, Column: 6},
					},
				},
			},
		},
		Range: Range{
			StartPos: Position{Offset: 7, Line: 8, Column: 9},
			EndPos:   Position{Offset: 10, Line: 11, Column: 12},
		},
	}

	actual, err := json.Marshal(block)
	require.NoError(t, err)

	assert.JSONEq(t,
		`
        {
            "Type": "Block",
            "Statements": [
                {
                    "Type": "ExpressionStatement",
                    "Expression": {
                        "Type": "BoolExpression",
                        "Value": false,
                        "StartPos": {"Offset": 1, "Line": 2, "Column": 3},
                        "EndPos": {"Offset": 4, "Line": 5, "Column": 6}
                    },
                    "StartPos": {"Offset": 1, "Line": 2, "Column": 3},
                    "EndPos": {"Offset": 4, "Line": 5, "Column": 6}
                }
            ],
            "StartPos": {"Offset": 7, "Line": 8, "Column": 9},
            "EndPos": {"Offset": 10, "Line": 11, "Column": 12}
        }
        `,
		string(actual),
	)
}

func TestBlock_String(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		block := &Block{}

		assert.Equal(t,
			"ouvrir\nrefermer",
			block.String(),
		)
	})

	t.Run("statements", func(t *testing.T) {

		t.Parallel()

		block := &Block{
			Statements: []Statement{
				&VariableDeclaration{
					Identifier: Identifier{Identifier: "x"},
					Value:      &NumberExpression{Literal: "1", Value: 1},
				},
				&ReturnStatement{
					Expression: &IdentifierExpression{
						Identifier: Identifier{Identifier: "x"},
					},
				},
			},
		}

		assert.Equal(t,
			"ouvrir\n"+
				"    variable x = 1\n"+
				"    retourne x\n"+
				"refermer",
			block.String(),
		)
	})
}

func TestBlock_HasImmediateReturn(t *testing.T) {

	t.Parallel()

	returnStatement := &ReturnStatement{
		Expression: &BoolExpression{Value: true},
	}

	t.Run("nil", func(t *testing.T) {

		t.Parallel()

		var block *Block
		assert.False(t, block.HasImmediateReturn())
	})

	t.Run("immediate", func(t *testing.T) {

		t.Parallel()

		block := &Block{
			Statements: []Statement{returnStatement},
		}
		assert.True(t, block.HasImmediateReturn())
	})

	t.Run("nested in if", func(t *testing.T) {

		t.Parallel()

		block := &Block{
			Statements: []Statement{
				&IfStatement{
					Test: &BoolExpression{Value: true},
					Then: &Block{
						Statements: []Statement{returnStatement},
					},
				},
			},
		}
		assert.False(t, block.HasImmediateReturn())
	})
}
