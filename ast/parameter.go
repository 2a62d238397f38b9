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
	"strings"

	"github.com/turbolent/prettier"
)

// Parameter is a name-only parameter of a constructor, method, function, or closure.
type Parameter struct {
	Identifier Identifier
}

func NewParameter(identifier Identifier) *Parameter {
	return &Parameter{
		Identifier: identifier,
	}
}

func (p *Parameter) StartPosition() Position {
	return p.Identifier.StartPosition()
}

func (p *Parameter) EndPosition() Position {
	return p.Identifier.EndPosition()
}

func (p *Parameter) MarshalJSON() ([]byte, error) {
	type Alias Parameter
	return json.Marshal(&struct {
		*Alias
		Range
	}{
		Range: NewRangeFromPositioned(p),
		Alias: (*Alias)(p),
	})
}

// ParameterNames returns the names of the given parameters, in order.
func ParameterNames(parameters []*Parameter) []string {
	names := make([]string, 0, len(parameters))
	for _, parameter := range parameters {
		names = append(names, parameter.Identifier.Identifier)
	}
	return names
}

func parametersDoc(parameters []*Parameter) prettier.Doc {
	return prettier.Text("(" + strings.Join(ParameterNames(parameters), ", ") + ")")
}
