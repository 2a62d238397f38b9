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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Output is a generated Nim file
type Output struct {
	Source string
	Path   string
}

type BuildResult struct {
	// Prefix is the stdlib prefix all files were generated with
	Prefix string
	// Outputs are the generated files, dependencies first, the entry last
	Outputs []Output
	// Stdlib is the bundled stdlib, if any was written
	Stdlib *StdlibBundle
	// Binary is the path of the compiled binary, if compiled
	Binary string
}

// Entry returns the output of the entry file
func (r *BuildResult) Entry() Output {
	return r.Outputs[len(r.Outputs)-1]
}

// outputPath returns the path of the Nim file generated for the given source file
func (t *Transpiler) outputPath(source string) string {
	name := strings.TrimSuffix(filepath.Base(source), sourceFileExtension) + nimFileExtension
	if t.config.Output != "" {
		return filepath.Join(t.config.Output, name)
	}
	return filepath.Join(filepath.Dir(source), name)
}

// Build transpiles the entry file and all its dependencies,
// bundles the stdlib next to the entry's output, and compiles the result if enabled.
func (t *Transpiler) Build(ctx context.Context, entry string) (*BuildResult, error) {
	entry, err := filepath.Abs(entry)
	if err != nil {
		return nil, err
	}

	prefix := t.config.Prefix
	if prefix == "" {
		prefix, err = RandomPrefix()
		if err != nil {
			return nil, err
		}
	}

	dependencies, err := t.DiscoverDependencies(entry)
	if err != nil {
		return nil, err
	}

	if t.config.Output != "" {
		err = os.MkdirAll(t.config.Output, 0o755)
		if err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	sources := append(dependencies, entry)
	outputs := make([]Output, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(t.config.Jobs)

	for i, source := range sources {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			output, err := t.buildFile(source, prefix)
			if err != nil {
				return err
			}
			outputs[i] = output
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		Prefix:  prefix,
		Outputs: outputs,
	}

	entryOutput := result.Entry()

	result.Stdlib, err = t.BundleStdlib(filepath.Dir(entryOutput.Path), prefix)
	if err != nil {
		return nil, err
	}

	if t.config.Compile {
		files := make([]string, 0, len(outputs))
		for _, output := range outputs[:len(outputs)-1] {
			files = append(files, output.Path)
		}
		files = append(files, t.bundledFiles(filepath.Dir(entryOutput.Path), prefix)...)

		result.Binary, err = t.Compile(ctx, entryOutput.Path, files, filepath.Dir(entry))
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (t *Transpiler) buildFile(source string, prefix string) (Output, error) {
	generated, err := t.TranspileFile(source, prefix)
	if err != nil {
		return Output{}, err
	}

	path := t.outputPath(source)

	err = os.WriteFile(path, []byte(generated), 0o644)
	if err != nil {
		return Output{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	t.logger.Info(
		"transpiled",
		zap.String("source", source),
		zap.String("output", path),
	)

	return Output{
		Source: source,
		Path:   path,
	}, nil
}

// bundledFiles returns the stdlib files bundled for the prefix in the directory,
// including the ones written by earlier builds
func (t *Transpiler) bundledFiles(directory string, prefix string) []string {
	bundle := filepath.Join(directory, prefix+nimFileExtension)
	if _, err := os.Stat(bundle); err != nil {
		return nil
	}

	pattern := filepath.Join(directory, "*_"+stdlibID(prefix)+nimFileExtension)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return []string{bundle}
	}

	files := []string{bundle}
	for _, match := range matches {
		// the bundle itself matches the pattern when the prefix is random
		if match == bundle {
			continue
		}
		files = append(files, match)
	}
	return files
}
