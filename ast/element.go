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
	"fmt"
)

type Element interface {
	HasPosition
	ElementType() ElementType
	Walk(walkChild func(Element))
}

// Walk traverses the given element and its children in depth-first order.
// The function f is called for each element, before its children.
// If f returns false, the children of the element are skipped.
func Walk(element Element, f func(Element) bool) {
	if element == nil {
		return
	}
	if !f(element) {
		return
	}
	element.Walk(func(child Element) {
		Walk(child, f)
	})
}

// UnsupportedElementError is reported when an element is passed to a visitor
// that does not know its element type.
type UnsupportedElementError struct {
	ElementType ElementType
	Range
}

func NewUnsupportedElementError(element Element) *UnsupportedElementError {
	if element == nil {
		return &UnsupportedElementError{
			ElementType: ElementTypeUnknown,
		}
	}
	return &UnsupportedElementError{
		ElementType: element.ElementType(),
		Range:       NewRangeFromPositioned(element),
	}
}

func (e *UnsupportedElementError) Error() string {
	return fmt.Sprintf("unsupported element: %s", e.ElementType)
}

func (*UnsupportedElementError) IsInternalError() {}
