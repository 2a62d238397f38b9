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
	"context"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeProject writes an entry file importing a dependency
func writeProject(t *testing.T, dir string) string {
	entry := filepath.Join(dir, "main.fr")
	writeFile(t, entry,
		"importer outils de \"./outils.fr\"\n"+
			"afficher(outils.double(2))\n",
	)
	writeFile(t, filepath.Join(dir, "outils.fr"),
		"fonction double(x) ouvrir\n"+
			"    retourne x + x\n"+
			"refermer\n",
	)
	return entry
}

func writeStdlib(t *testing.T, dir string) {
	writeFile(t, filepath.Join(dir, "io.nim"), "proc afficher*(x: auto) = echo x\n")
	writeFile(t, filepath.Join(dir, "texte.fr"), "fonction majuscules(s) ouvrir\n    retourne s\nrefermer\n")
	writeFile(t, filepath.Join(dir, "LISEZMOI.md"), "ignored\n")
}

// writeCompiler writes a fake compiler script which runs the given shell commands
func writeCompiler(t *testing.T, dir string, commands string) string {
	if runtime.GOOS == "windows" {
		t.Skip("fake compiler requires a POSIX shell")
	}

	path := filepath.Join(dir, "fake-nim")
	writeFile(t, path, "#!/bin/sh\n"+commands+"\n")
	require.NoError(t, os.Chmod(path, 0o755))
	return path
}

func TestBuild(t *testing.T) {

	t.Parallel()

	t.Run("outputs next to sources", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		entry := writeProject(t, dir)

		config := DefaultConfig()
		config.Prefix = "std_0123456789abcdef"

		result, err := newTestTranspiler(t, config).Build(context.Background(), entry)
		require.NoError(t, err)

		assert.Equal(t, "std_0123456789abcdef", result.Prefix)
		assert.Equal(t,
			[]Output{
				{
					Source: filepath.Join(dir, "outils.fr"),
					Path:   filepath.Join(dir, "outils.nim"),
				},
				{
					Source: entry,
					Path:   filepath.Join(dir, "main.nim"),
				},
			},
			result.Outputs,
		)
		assert.Nil(t, result.Stdlib)
		assert.Empty(t, result.Binary)

		assert.Equal(t,
			"import std_0123456789abcdef\n"+
				"import outils\n"+
				"\n"+
				"afficher(outils.double(2))\n"+
				"\n",
			readFile(t, filepath.Join(dir, "main.nim")),
		)
		assert.Equal(t,
			"import std_0123456789abcdef\n"+
				"\n"+
				"proc double*(x: auto): auto =\n"+
				"  return (x+x)\n"+
				"\n",
			readFile(t, filepath.Join(dir, "outils.nim")),
		)
	})

	t.Run("random prefix", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		entry := writeProject(t, dir)

		result, err := newTestTranspiler(t, DefaultConfig()).Build(context.Background(), entry)
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^std_[0-9a-f]{16}$`), result.Prefix)
		assert.Contains(t,
			readFile(t, filepath.Join(dir, "main.nim")),
			"import "+result.Prefix+"\n",
		)
	})

	t.Run("output directory", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		entry := writeProject(t, dir)

		config := DefaultConfig()
		config.Prefix = "std_a"
		config.Output = filepath.Join(dir, "build")
		config.Jobs = 1

		result, err := newTestTranspiler(t, config).Build(context.Background(), entry)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "build", "main.nim"), result.Entry().Path)
		assert.FileExists(t, filepath.Join(dir, "build", "outils.nim"))
		assert.NoFileExists(t, filepath.Join(dir, "main.nim"))
	})

	t.Run("invalid source", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		entry := writeProject(t, dir)
		writeFile(t, entry, "importer outils de \"./outils.fr\"\nvariable = 1\n")

		config := DefaultConfig()
		config.Prefix = "std_a"

		_, err := newTestTranspiler(t, config).Build(context.Background(), entry)
		require.Error(t, err)

		var sourceErr *SourceError
		require.ErrorAs(t, err, &sourceErr)
		assert.Equal(t, entry, sourceErr.Path)
		assert.NoFileExists(t, filepath.Join(dir, "main.nim"))
	})

	t.Run("canceled", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		entry := writeProject(t, dir)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		config := DefaultConfig()
		config.Prefix = "std_a"

		_, err := newTestTranspiler(t, config).Build(ctx, entry)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestBundleStdlib(t *testing.T) {

	t.Parallel()

	t.Run("bundle", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		entry := writeProject(t, dir)

		stdlib := filepath.Join(t.TempDir(), "stdlib")
		writeStdlib(t, stdlib)

		config := DefaultConfig()
		config.Prefix = "std_0123456789abcdef"
		config.Stdlib = stdlib

		result, err := newTestTranspiler(t, config).Build(context.Background(), entry)
		require.NoError(t, err)

		require.NotNil(t, result.Stdlib)
		assert.Equal(t, filepath.Join(dir, "std_0123456789abcdef.nim"), result.Stdlib.Path)
		assert.Equal(t,
			[]string{
				filepath.Join(dir, "io_0123456789abcdef.nim"),
				filepath.Join(dir, "texte_0123456789abcdef.nim"),
			},
			result.Stdlib.Files,
		)

		assert.Equal(t,
			"# Standard Library - Auto-generated\n"+
				"\n"+
				"include \"./io_0123456789abcdef\"\n"+
				"include \"./texte_0123456789abcdef\"\n",
			readFile(t, result.Stdlib.Path),
		)

		assert.Equal(t,
			"proc afficher*(x: auto) = echo x\n",
			readFile(t, filepath.Join(dir, "io_0123456789abcdef.nim")),
		)

		// stdlib sources are generated with the default prefix
		assert.Equal(t,
			"import std\n"+
				"\n"+
				"proc majuscules*(s: auto): auto =\n"+
				"  return s\n"+
				"\n",
			readFile(t, filepath.Join(dir, "texte_0123456789abcdef.nim")),
		)
	})

	t.Run("existing bundle", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		stdlib := filepath.Join(t.TempDir(), "stdlib")
		writeStdlib(t, stdlib)

		writeFile(t, filepath.Join(dir, "std_a.nim"), "# existing\n")

		config := DefaultConfig()
		config.Stdlib = stdlib

		bundle, err := newTestTranspiler(t, config).BundleStdlib(dir, "std_a")
		require.NoError(t, err)
		assert.Nil(t, bundle)
		assert.Equal(t, "# existing\n", readFile(t, filepath.Join(dir, "std_a.nim")))
	})

	t.Run("missing stdlib", func(t *testing.T) {

		t.Parallel()

		config := DefaultConfig()
		config.Stdlib = filepath.Join(t.TempDir(), "missing")

		bundle, err := newTestTranspiler(t, config).BundleStdlib(t.TempDir(), "std_a")
		require.NoError(t, err)
		assert.Nil(t, bundle)
	})
}

func TestCompile(t *testing.T) {

	// Not parallel: executing a freshly written script
	// while another test forks may fail with ETXTBSY

	t.Run("success", func(t *testing.T) {

		dir := t.TempDir()
		entry := writeProject(t, dir)

		stdlib := filepath.Join(t.TempDir(), "stdlib")
		writeStdlib(t, stdlib)

		// the fake compiler checks all files are present,
		// and writes the arguments into the binary
		compiler := writeCompiler(t, t.TempDir(),
			`test -f outils.nim || exit 1
test -f std_a.nim || exit 1
test -f io_a.nim || exit 1
echo "$@" > main`,
		)

		config := DefaultConfig()
		config.Prefix = "std_a"
		config.Stdlib = stdlib
		config.Compile = true
		config.Compiler = compiler
		config.Target = TargetMacOS

		result, err := newTestTranspiler(t, config).Build(context.Background(), entry)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "main"), result.Binary)
		assert.Equal(t, "c --os:macosx main.nim\n", readFile(t, result.Binary))
	})

	t.Run("failure", func(t *testing.T) {

		dir := t.TempDir()
		entry := writeProject(t, dir)

		compiler := writeCompiler(t, t.TempDir(),
			`echo "main.nim(1, 1) Error: undeclared identifier"
exit 1`,
		)

		config := DefaultConfig()
		config.Prefix = "std_a"
		config.Compile = true
		config.Compiler = compiler

		_, err := newTestTranspiler(t, config).Build(context.Background(), entry)
		require.Error(t, err)

		var compileErr *CompileError
		require.ErrorAs(t, err, &compileErr)
		assert.Contains(t, compileErr.Output, "undeclared identifier")
		assert.Contains(t, err.Error(), "compilation failed")

		// outputs are kept
		assert.FileExists(t, filepath.Join(dir, "main.nim"))
		assert.FileExists(t, filepath.Join(dir, "outils.nim"))
		assert.NoFileExists(t, filepath.Join(dir, "main"))
	})

	t.Run("no binary", func(t *testing.T) {

		dir := t.TempDir()
		entry := writeProject(t, dir)

		compiler := writeCompiler(t, t.TempDir(), `exit 0`)

		config := DefaultConfig()
		config.Prefix = "std_a"
		config.Compile = true
		config.Compiler = compiler

		result, err := newTestTranspiler(t, config).Build(context.Background(), entry)
		require.NoError(t, err)
		assert.Empty(t, result.Binary)
	})

	t.Run("timeout", func(t *testing.T) {

		dir := t.TempDir()
		entry := writeProject(t, dir)

		compiler := writeCompiler(t, t.TempDir(), `exec sleep 10`)

		config := DefaultConfig()
		config.Prefix = "std_a"
		config.Compile = true
		config.Compiler = compiler
		config.Timeout = 100 * time.Millisecond

		start := time.Now()

		_, err := newTestTranspiler(t, config).Build(context.Background(), entry)
		require.Error(t, err)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}
