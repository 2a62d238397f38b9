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
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/onflow/fr2nim/ast"
)

// fileSet is a set of absolute file paths, safe for concurrent use
type fileSet struct {
	mutex sync.Mutex
	paths map[string]struct{}
}

func newFileSet() *fileSet {
	return &fileSet{
		paths: map[string]struct{}{},
	}
}

// Insert adds the path to the set,
// and reports whether it was not already present
func (s *fileSet) Insert(path string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.paths[path]; ok {
		return false
	}
	s.paths[path] = struct{}{}
	return true
}

func (s *fileSet) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.paths)
}

// DiscoverDependencies returns the absolute paths of all source files
// the entry file imports, directly or transitively.
//
// Every file is listed once, after all of its own dependencies.
// The entry file itself is not listed. Imports of missing files are ignored.
func (t *Transpiler) DiscoverDependencies(entry string) ([]string, error) {
	entry, err := filepath.Abs(entry)
	if err != nil {
		return nil, err
	}

	processed := newFileSet()
	processed.Insert(entry)

	return t.discoverDependencies(entry, processed, nil)
}

func (t *Transpiler) discoverDependencies(
	path string,
	processed *fileSet,
	dependencies []string,
) ([]string, error) {

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", path, err)
	}

	program, err := t.Parse(code)
	if err != nil {
		return nil, &SourceError{
			Path: path,
			Code: code,
			Err:  err,
		}
	}

	for _, importDeclaration := range program.ImportDeclarations() {
		importPath := resolveImport(path, importDeclaration)

		if _, err := os.Stat(importPath); err != nil {
			t.logger.Debug(
				"ignoring import of missing file",
				zap.String("source", path),
				zap.String("import", importDeclaration.Path),
			)
			continue
		}

		if !processed.Insert(importPath) {
			continue
		}

		dependencies, err = t.discoverDependencies(importPath, processed, dependencies)
		if err != nil {
			return nil, err
		}

		t.logger.Debug(
			"discovered dependency",
			zap.String("source", path),
			zap.String("dependency", importPath),
		)

		dependencies = append(dependencies, importPath)
	}

	return dependencies, nil
}

// resolveImport returns the absolute path of the imported file.
// Relative paths are relative to the directory of the importing file.
func resolveImport(importingPath string, importDeclaration *ast.ImportDeclaration) string {
	if filepath.IsAbs(importDeclaration.Path) {
		return filepath.Clean(importDeclaration.Path)
	}
	return filepath.Join(filepath.Dir(importingPath), importDeclaration.Path)
}
