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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/fr2nim/errors"
	"github.com/onflow/fr2nim/parser"
)

func writeSource(t *testing.T, name string, code string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(code), 0o644)
	require.NoError(t, err)
	return path
}

func TestREPL(t *testing.T) {

	t.Parallel()

	t.Run("multi-line input", func(t *testing.T) {

		t.Parallel()

		repl := NewREPL()

		generated, complete, _, err := repl.Accept("fonction f(x) ouvrir")
		require.NoError(t, err)
		assert.False(t, complete)
		assert.Empty(t, generated)
		assert.True(t, repl.IsContinuation())

		generated, complete, _, err = repl.Accept("    retourne x")
		require.NoError(t, err)
		assert.False(t, complete)
		assert.Empty(t, generated)

		generated, complete, _, err = repl.Accept("refermer")
		require.NoError(t, err)
		assert.True(t, complete)
		assert.Equal(t,
			"proc f*(x: auto): auto =\n"+
				"  return x\n"+
				"\n",
			generated,
		)
		assert.False(t, repl.IsContinuation())
		assert.Equal(t, 4, repl.LineNumber())
	})

	t.Run("error", func(t *testing.T) {

		t.Parallel()

		repl := NewREPL()

		generated, complete, _, err := repl.Accept("variable x = 1")
		require.NoError(t, err)
		require.True(t, complete)
		assert.Equal(t, "var x* = 1\n\n", generated)

		_, complete, code, err := repl.Accept("variable = 2")
		require.Error(t, err)
		assert.True(t, complete)
		assert.False(t, repl.IsContinuation())
		assert.True(t, errors.IsUserError(err))

		// the line number of the error matches the input line
		var syntaxErr *parser.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, 2, syntaxErr.Pos.Line)
		assert.Equal(t, "\nvariable = 2\n", string(code))
	})

	t.Run("empty line", func(t *testing.T) {

		t.Parallel()

		repl := NewREPL()

		generated, complete, _, err := repl.Accept("   ")
		require.NoError(t, err)
		assert.True(t, complete)
		assert.Empty(t, generated)
		assert.False(t, repl.IsContinuation())
	})

	t.Run("suggestions", func(t *testing.T) {

		t.Parallel()

		repl := NewREPL()

		suggestions := repl.Suggestions("cl")
		require.Len(t, suggestions, 1)
		assert.Equal(t, "classe", suggestions[0].Text)

		assert.Empty(t, repl.Suggestions(""))
	})
}

func TestRunFmt(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "main.fr", "variable   x egal   1\nafficher( x )")

	var out bytes.Buffer
	err := runFmt([]string{path}, &out)
	require.NoError(t, err)

	assert.Equal(t,
		"variable x = 1\n"+
			"\n"+
			"afficher(x)\n",
		out.String(),
	)

	err = runFmt([]string{"-w", path}, &out)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "variable x = 1\n\nafficher(x)\n", string(written))
}

func TestRunAST(t *testing.T) {

	t.Parallel()

	path := writeSource(t, "main.fr", "variable x = 1")

	var out bytes.Buffer
	err := runAST([]string{path}, &out)
	require.NoError(t, err)

	// prettified
	assert.True(t, strings.Contains(out.String(), "\n  "))

	var program map[string]any
	err = json.Unmarshal(out.Bytes(), &program)
	require.NoError(t, err)

	assert.Equal(t, "Program", program["Type"])

	declarations := program["Declarations"].([]any)
	require.Len(t, declarations, 1)
	assert.Equal(t, "VariableDeclaration", declarations[0].(map[string]any)["Type"])
}

func TestRunBuild(t *testing.T) {

	t.Parallel()

	t.Run("valid", func(t *testing.T) {

		t.Parallel()

		path := writeSource(t, "main.fr", "afficher(1)\n")

		var out bytes.Buffer
		err := runBuild([]string{"-prefix", "std_x", path}, &out)
		require.NoError(t, err)

		output := strings.TrimSuffix(path, ".fr") + ".nim"
		assert.Equal(t, "Transpiled "+path+" -> "+output+"\n", out.String())

		generated, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "import std_x\n\nafficher(1)\n\n", string(generated))
	})

	t.Run("no files", func(t *testing.T) {

		t.Parallel()

		var out bytes.Buffer
		err := runBuild(nil, &out)
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("invalid target", func(t *testing.T) {

		t.Parallel()

		path := writeSource(t, "main.fr", "afficher(1)\n")

		var out bytes.Buffer
		err := runBuild([]string{"-target", "amiga", path}, &out)
		require.Error(t, err)
	})

	t.Run("invalid source", func(t *testing.T) {

		t.Parallel()

		path := writeSource(t, "main.fr", "variable = 1")

		var out bytes.Buffer
		err := runBuild([]string{"-prefix", "std_x", path}, &out)
		require.Error(t, err)

		var errOut bytes.Buffer
		printError(&errOut, err, false)

		assert.Equal(t,
			"error: Expected variable name. Got = at line 1\n"+
				" --> "+path+":1:9\n"+
				"  |\n"+
				"1 | variable = 1\n"+
				"  |          ^\n",
			errOut.String(),
		)
	})
}

func TestPrintError(t *testing.T) {

	t.Parallel()

	var out bytes.Buffer
	printError(&out, errors.NewDefaultUserError("expected %s", "file"), false)
	assert.Equal(t, "expected file\n", out.String())
}

func TestPrintAvailableCommands(t *testing.T) {

	t.Parallel()

	var out bytes.Buffer
	printAvailableCommands(&out)

	for name := range commands {
		assert.Contains(t, out.String(), "  "+name)
	}
}
