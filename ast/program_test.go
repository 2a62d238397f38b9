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

func newAnimalProgram() *Program {
	self := &IdentifierExpression{
		Identifier: Identifier{Identifier: SelfIdentifier},
	}
	nom := &IdentifierExpression{
		Identifier: Identifier{Identifier: "nom"},
	}
	selfNom := &MemberExpression{
		Expression: self,
		Identifier: Identifier{Identifier: "nom"},
	}

	return &Program{
		Declarations: []Declaration{
			&ImportDeclaration{
				Module: Identifier{Identifier: "outils"},
				Path:   "./outils.fr",
			},
			&ImportDeclaration{
				Module: Identifier{Identifier: "maths"},
				Alias:  &Identifier{Identifier: "m"},
				Path:   "./maths.fr",
			},
			&ClassDeclaration{
				Identifier: Identifier{Identifier: "Animal"},
				Constructor: &ConstructorDeclaration{
					Parameters: []*Parameter{
						{Identifier: Identifier{Identifier: "nom"}},
					},
					Body: &Block{
						Statements: []Statement{
							&AssignmentStatement{
								Target: selfNom,
								Value:  nom,
							},
						},
					},
				},
				Methods: []*MethodDeclaration{
					{
						Identifier: Identifier{Identifier: "parler"},
						Body: &Block{
							Statements: []Statement{
								&ReturnStatement{Expression: selfNom},
							},
						},
					},
				},
			},
		},
	}
}

func TestProgram_String(t *testing.T) {

	t.Parallel()

	assert.Equal(t,
		"importer outils de \"./outils.fr\"\n"+
			"importer maths comme m de \"./maths.fr\"\n"+
			"\n"+
			"classe Animal ouvrir\n"+
			"    constructeur(nom) ouvrir\n"+
			"        ceci.nom = nom\n"+
			"    refermer\n"+
			"    parler() ouvrir\n"+
			"        retourne ceci.nom\n"+
			"    refermer\n"+
			"refermer",
		newAnimalProgram().String(),
	)
}

func TestProgram_ImportDeclarations(t *testing.T) {

	t.Parallel()

	imports := newAnimalProgram().ImportDeclarations()
	require.Len(t, imports, 2)
	assert.Equal(t, "outils", imports[0].Module.Identifier)
	assert.Nil(t, imports[0].Alias)
	assert.Equal(t, "m", imports[1].Alias.Identifier)
}

func TestClassDeclaration_Fields(t *testing.T) {

	t.Parallel()

	t.Run("constructor", func(t *testing.T) {

		t.Parallel()

		class := &ClassDeclaration{
			Constructor: &ConstructorDeclaration{
				Parameters: []*Parameter{
					{Identifier: Identifier{Identifier: "b"}},
					{Identifier: Identifier{Identifier: "a"}},
				},
				Body: &Block{},
			},
		}

		assert.Equal(t, []string{"b", "a"}, class.Fields())
	})

	t.Run("no constructor", func(t *testing.T) {

		t.Parallel()

		class := &ClassDeclaration{}

		assert.Empty(t, class.Fields())
	})
}

func TestWalk(t *testing.T) {

	t.Parallel()

	var elementTypes []ElementType

	Walk(newAnimalProgram(), func(element Element) bool {
		elementTypes = append(elementTypes, element.ElementType())
		return true
	})

	assert.Equal(t,
		[]ElementType{
			ElementTypeProgram,
			ElementTypeImportDeclaration,
			ElementTypeImportDeclaration,
			ElementTypeClassDeclaration,
			ElementTypeConstructorDeclaration,
			ElementTypeBlock,
			ElementTypeAssignmentStatement,
			ElementTypeMemberExpression,
			ElementTypeIdentifierExpression,
			ElementTypeIdentifierExpression,
			ElementTypeMethodDeclaration,
			ElementTypeBlock,
			ElementTypeReturnStatement,
			ElementTypeMemberExpression,
			ElementTypeIdentifierExpression,
		},
		elementTypes,
	)
}

func TestWalk_SkipChildren(t *testing.T) {

	t.Parallel()

	var count int

	Walk(newAnimalProgram(), func(element Element) bool {
		count++
		_, isClass := element.(*ClassDeclaration)
		return !isClass
	})

	// program, two imports, class
	assert.Equal(t, 4, count)
}
