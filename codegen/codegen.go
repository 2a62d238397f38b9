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

// Package codegen lowers a parsed program to Nim source code.
//
// Generation is a pure function of the program and the stdlib prefix:
// the same inputs always produce the same text.
package codegen

import (
	"strings"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/errors"
)

// Generate returns the Nim source code for the given program.
//
// The output starts with an import of the stdlib module named by the prefix,
// followed by all imports of the program, and then all other declarations in order.
func Generate(program *ast.Program, prefix string) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()

	var sb strings.Builder

	sb.WriteString("import ")
	sb.WriteString(prefix)
	sb.WriteByte('\n')

	if program == nil {
		sb.WriteByte('\n')
		return sb.String(), nil
	}

	root := emitter{}

	for _, importDeclaration := range program.ImportDeclarations() {
		sb.WriteString(root.VisitImportDeclaration(importDeclaration))
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')

	for _, declaration := range program.Declarations {
		if _, ok := declaration.(*ast.ImportDeclaration); ok {
			continue
		}

		generated := ast.AcceptDeclaration[string](declaration, root)
		if strings.TrimSpace(generated) == "" {
			continue
		}

		sb.WriteString(generated)
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func recoveredError(r any) error {
	switch r := r.(type) {
	case *ast.UnsupportedElementError:
		return &UnsupportedNodeError{
			ElementType: r.ElementType,
			Range:       r.Range,
		}
	case error:
		return errors.NewUnexpectedErrorFromCause(r)
	default:
		return errors.NewUnexpectedError("%s", r)
	}
}
