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

// Block is a statement list delimited by `ouvrir`/`refermer`,
// or by braces in the case of loops.
type Block struct {
	Statements []Statement
	Range
}

var _ Element = &Block{}

func NewBlock(statements []Statement, astRange Range) *Block {
	return &Block{
		Statements: statements,
		Range:      astRange,
	}
}

func (*Block) ElementType() ElementType {
	return ElementTypeBlock
}

func (b *Block) Walk(walkChild func(Element)) {
	walkStatements(walkChild, b.Statements)
}

func (b *Block) IsEmpty() bool {
	return b == nil || len(b.Statements) == 0
}

// HasImmediateReturn reports whether the block's own statement list
// contains a return statement. Statements nested in if, for, or while
// statements are not inspected.
func (b *Block) HasImmediateReturn() bool {
	if b == nil {
		return false
	}
	for _, statement := range b.Statements {
		if _, ok := statement.(*ReturnStatement); ok {
			return true
		}
	}
	return false
}

const blockStartDoc = prettier.Text("ouvrir")
const blockEndDoc = prettier.Text("refermer")

func (b *Block) Doc() prettier.Doc {
	if b.IsEmpty() {
		return prettier.Concat{
			blockStartDoc,
			prettier.HardLine{},
			blockEndDoc,
		}
	}

	statementsDoc := prettier.Concat{}
	for _, statement := range b.Statements {
		statementsDoc = append(
			statementsDoc,
			prettier.HardLine{},
			statement.Doc(),
		)
	}

	return prettier.Concat{
		blockStartDoc,
		prettier.Indent{
			Doc: statementsDoc,
		},
		prettier.HardLine{},
		blockEndDoc,
	}
}

func (b *Block) String() string {
	return Prettier(b)
}

func (b *Block) MarshalJSON() ([]byte, error) {
	type Alias Block
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "Block",
		Alias: (*Alias)(b),
	})
}

func walkStatements(walkChild func(Element), statements []Statement) {
	for _, statement := range statements {
		walkChild(statement)
	}
}
