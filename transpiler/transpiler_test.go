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

package transpiler

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/onflow/fr2nim/errors"
	"github.com/onflow/fr2nim/parser"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestTranspiler(t *testing.T, config Config) *Transpiler {
	config.Logger = zaptest.NewLogger(t)
	return New(config)
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	require.NoError(t, err)

	err = os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

const animalSource = `
classe Animal ouvrir
    constructeur(nom) ouvrir
        ceci.nom = nom
    refermer

    parler() ouvrir
        retourne ceci.nom
    refermer
refermer
`

const animalNim = "import std\n" +
	"\n" +
	"type Animal* = ref object\n" +
	"  nom*: auto\n" +
	"\n" +
	"proc newAnimal*(nom: auto): Animal =\n" +
	"  result = Animal()\n" +
	"  result.nom = nom\n" +
	"\n" +
	"proc parler*(self: Animal): auto =\n" +
	"  return self.nom\n" +
	"\n" +
	"\n"

func TestTranspileSource(t *testing.T) {

	t.Parallel()

	t.Run("animal", func(t *testing.T) {

		t.Parallel()

		transpiler := newTestTranspiler(t, DefaultConfig())

		generated, err := transpiler.TranspileSource([]byte(animalSource), "std")
		require.NoError(t, err)
		assert.Equal(t, animalNim, generated)
	})

	t.Run("traces", func(t *testing.T) {

		t.Parallel()

		var mutex sync.Mutex
		var operations []string
		attributes := map[string][]attribute.KeyValue{}

		config := DefaultConfig()
		config.OnRecordTrace = func(operationName string, duration time.Duration, attrs []attribute.KeyValue) {
			mutex.Lock()
			defer mutex.Unlock()

			assert.GreaterOrEqual(t, duration, time.Duration(0))
			operations = append(operations, operationName)
			attributes[operationName] = attrs
		}

		transpiler := newTestTranspiler(t, config)

		_, err := transpiler.TranspileSource([]byte("variable x = 1"), "std_abc")
		require.NoError(t, err)

		assert.Equal(t,
			[]string{
				tracingNormalize,
				tracingLex,
				tracingParse,
				tracingGenerate,
			},
			operations,
		)

		assert.Equal(t,
			[]attribute.KeyValue{
				attribute.Int("Declaration count", 1),
			},
			attributes[tracingParse],
		)
		assert.Contains(t,
			attributes[tracingGenerate],
			attribute.String("Prefix", "std_abc"),
		)
	})

	t.Run("normalization", func(t *testing.T) {

		t.Parallel()

		// decomposed accents
		const code = "variable e\u0301le\u0300ve = 1"

		normalizing := newTestTranspiler(t, DefaultConfig())

		generated, err := normalizing.TranspileSource([]byte(code), "std")
		require.NoError(t, err)
		assert.Equal(t, "import std\n\nvar \u00e9l\u00e8ve* = 1\n\n", generated)

		config := DefaultConfig()
		config.Normalize = false
		nonNormalizing := newTestTranspiler(t, config)

		_, err = nonNormalizing.TranspileSource([]byte(code), "std")
		require.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {

		t.Parallel()

		transpiler := newTestTranspiler(t, DefaultConfig())

		code := []byte("classe ouvrir")

		_, err := transpiler.TranspileSource(code, "std")
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))

		var parserErr parser.Error
		require.ErrorAs(t, err, &parserErr)
		assert.Equal(t, code, parserErr.Code)

		var syntaxErr *parser.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, "Expected class name. Got ouvrir at line 1", syntaxErr.Error())
	})

	t.Run("lexical error", func(t *testing.T) {

		t.Parallel()

		transpiler := newTestTranspiler(t, DefaultConfig())

		_, err := transpiler.TranspileSource([]byte(`variable s = "abc`), "std")
		require.Error(t, err)
		assert.True(t, parser.IsIncompleteInput(err))
	})
}

func TestTranspileFile(t *testing.T) {

	t.Parallel()

	t.Run("valid", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "animal.fr")
		writeFile(t, path, animalSource)

		transpiler := newTestTranspiler(t, DefaultConfig())

		generated, err := transpiler.TranspileFile(path, "std")
		require.NoError(t, err)
		assert.Equal(t, animalNim, generated)
	})

	t.Run("missing", func(t *testing.T) {

		t.Parallel()

		transpiler := newTestTranspiler(t, DefaultConfig())

		_, err := transpiler.TranspileFile(filepath.Join(t.TempDir(), "missing.fr"), "std")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "invalid.fr")
		writeFile(t, path, "variable = 1")

		transpiler := newTestTranspiler(t, DefaultConfig())

		_, err := transpiler.TranspileFile(path, "std")
		require.Error(t, err)

		var sourceErr *SourceError
		require.ErrorAs(t, err, &sourceErr)
		assert.Equal(t, path, sourceErr.Path)
		assert.Equal(t, []byte("variable = 1"), sourceErr.Code)
		assert.True(t, errors.IsUserError(err))
	})
}
