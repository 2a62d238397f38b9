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
	"fmt"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/errors"
)

// UnsupportedNodeError is reported when the program contains a node
// which has no lowering, e.g. a missing expression.
type UnsupportedNodeError struct {
	ElementType ast.ElementType
	ast.Range
}

var _ errors.InternalError = &UnsupportedNodeError{}

func (*UnsupportedNodeError) IsInternalError() {}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf(
		"cannot generate code for unsupported node: %s",
		e.ElementType,
	)
}
