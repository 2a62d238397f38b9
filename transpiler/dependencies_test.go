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
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverDependencies(t *testing.T) {

	t.Parallel()

	t.Run("transitive", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()

		writeFile(t, filepath.Join(dir, "main.fr"),
			"importer a de \"./a.fr\"\n"+
				"importer b de \"./lib/b.fr\"\n"+
				"importer manquant de \"./manquant.fr\"\n"+
				"afficher(1)\n",
		)
		writeFile(t, filepath.Join(dir, "a.fr"),
			"importer c de \"./lib/c.fr\"\n",
		)
		writeFile(t, filepath.Join(dir, "lib", "b.fr"),
			"importer c de \"./c.fr\"\n"+
				// cycle
				"importer main de \"../main.fr\"\n",
		)
		writeFile(t, filepath.Join(dir, "lib", "c.fr"),
			"variable c = 1\n",
		)

		transpiler := newTestTranspiler(t, DefaultConfig())

		dependencies, err := transpiler.DiscoverDependencies(filepath.Join(dir, "main.fr"))
		require.NoError(t, err)

		assert.Equal(t,
			[]string{
				filepath.Join(dir, "lib", "c.fr"),
				filepath.Join(dir, "a.fr"),
				filepath.Join(dir, "lib", "b.fr"),
			},
			dependencies,
		)
	})

	t.Run("no imports", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "main.fr"), "afficher(1)\n")

		transpiler := newTestTranspiler(t, DefaultConfig())

		dependencies, err := transpiler.DiscoverDependencies(filepath.Join(dir, "main.fr"))
		require.NoError(t, err)
		assert.Empty(t, dependencies)
	})

	t.Run("invalid dependency", func(t *testing.T) {

		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "main.fr"), "importer a de \"./a.fr\"\n")
		writeFile(t, filepath.Join(dir, "a.fr"), "classe ouvrir\n")

		transpiler := newTestTranspiler(t, DefaultConfig())

		_, err := transpiler.DiscoverDependencies(filepath.Join(dir, "main.fr"))
		require.Error(t, err)

		var sourceErr *SourceError
		require.ErrorAs(t, err, &sourceErr)
		assert.Equal(t, filepath.Join(dir, "a.fr"), sourceErr.Path)
	})
}

func TestFileSet(t *testing.T) {

	t.Parallel()

	set := newFileSet()

	const workers = 8
	const paths = 100

	var wg sync.WaitGroup
	var mutex sync.Mutex
	inserted := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := 0; i < paths; i++ {
				if set.Insert(fmt.Sprintf("/src/%d.fr", i)) {
					mutex.Lock()
					inserted++
					mutex.Unlock()
				}
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, paths, inserted)
	assert.Equal(t, paths, set.Len())
}
