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

package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onflow/fr2nim/ast"
)

type testError struct {
	ast.Range
}

func (testError) Error() string {
	return "test error"
}

type testSecondaryError struct {
	testError
}

func (testSecondaryError) SecondaryError() string {
	return "did you mean `ouvrir`?"
}

type testParentError struct {
	errs []error
}

func (testParentError) Error() string {
	return "parent"
}

func (e testParentError) ChildErrors() []error {
	return e.errs
}

type testUnpositionedError struct{}

func (testUnpositionedError) Error() string {
	return "unpositioned"
}

func (testUnpositionedError) SecondaryError() string {
	return "hint"
}

func singleLineRange(line, startColumn, endColumn int) ast.Range {
	return ast.Range{
		StartPos: ast.Position{Line: line, Column: startColumn},
		EndPos:   ast.Position{Line: line, Column: endColumn},
	}
}

func prettyPrint(t *testing.T, err error, location string, code string) string {
	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	printErr := printer.PrettyPrintError(err, location, []byte(code))
	require.NoError(t, printErr)
	return sb.String()
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `classe A ouvrir refermer`
	lineCount := len(strings.Split(code, "\n"))

	output := prettyPrint(t,
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		"test",
		code,
	)

	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		output,
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   variable x = 1"

	output := prettyPrint(t,
		testError{Range: singleLineRange(1, 7, 14)},
		"test",
		code,
	)

	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   variable x = 1\n"+
			"  | \t  \t   ^^^^^^^^\n",
		output,
	)
}

func TestPrintWideCharacters(t *testing.T) {

	t.Parallel()

	const code = "variable 名前 = vrai"

	output := prettyPrint(t,
		testError{Range: singleLineRange(1, 9, 10)},
		"",
		code,
	)

	require.Equal(t,
		"error: test error\n"+
			" --> 1:9\n"+
			"  |\n"+
			"1 | variable 名前 = vrai\n"+
			"  |          ^^^^\n",
		output,
	)
}

func TestPrintSecondary(t *testing.T) {

	t.Parallel()

	t.Run("with excerpt", func(t *testing.T) {

		t.Parallel()

		const code = "\n\nsi (x) ouvrr"

		output := prettyPrint(t,
			testSecondaryError{
				testError: testError{Range: singleLineRange(3, 7, 7)},
			},
			"main.fr",
			code,
		)

		require.Equal(t,
			"error: test error\n"+
				" --> main.fr:3:7\n"+
				"  |\n"+
				"3 | si (x) ouvrr\n"+
				"  |        ^ did you mean `ouvrir`?\n",
			output,
		)
	})

	t.Run("without position", func(t *testing.T) {

		t.Parallel()

		output := prettyPrint(t, testUnpositionedError{}, "main.fr", "")

		require.Equal(t,
			"error: unpositioned\n"+
				"  = hint\n",
			output,
		)
	})
}

func TestPrintMultiLineRange(t *testing.T) {

	t.Parallel()

	const code = "fonction f() ouvrir\nrefermer"

	output := prettyPrint(t,
		testError{
			Range: ast.Range{
				StartPos: ast.Position{Line: 1, Column: 13},
				EndPos:   ast.Position{Line: 2, Column: 7},
			},
		},
		"",
		code,
	)

	require.Equal(t,
		"error: test error\n"+
			" --> 1:13\n"+
			"  |\n"+
			"1 | fonction f() ouvrir\n"+
			"  |              ^^^^^^\n",
		output,
	)
}

func TestPrintParentError(t *testing.T) {

	t.Parallel()

	const code = "a\nb"

	output := prettyPrint(t,
		testParentError{
			errs: []error{
				testError{Range: singleLineRange(1, 0, 0)},
				testError{Range: singleLineRange(2, 0, 0)},
			},
		},
		"",
		code,
	)

	require.Equal(t,
		"error: test error\n"+
			" --> 1:0\n"+
			"  |\n"+
			"1 | a\n"+
			"  | ^\n"+
			"\n"+
			"error: test error\n"+
			" --> 2:0\n"+
			"  |\n"+
			"2 | b\n"+
			"  | ^\n",
		output,
	)
}

func TestPrintEndOfInput(t *testing.T) {

	t.Parallel()

	const code = "fonction f("

	output := prettyPrint(t,
		testError{Range: singleLineRange(1, 11, 11)},
		"",
		code,
	)

	require.Equal(t,
		"error: test error\n"+
			" --> 1:11\n"+
			"  |\n"+
			"1 | fonction f(\n"+
			"  |            ^\n",
		output,
	)
}
