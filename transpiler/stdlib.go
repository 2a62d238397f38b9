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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	nimFileExtension    = ".nim"
	sourceFileExtension = ".fr"
	stdlibBundleHeader  = "# Standard Library - Auto-generated\n\n"
	randomPrefixPrefix  = DefaultStdlibPrefix + "_"
	randomPrefixBytes   = 8
)

// RandomPrefix returns a new random stdlib prefix, e.g. `std_0123456789abcdef`
func RandomPrefix() (string, error) {
	var id [randomPrefixBytes]byte
	if _, err := rand.Read(id[:]); err != nil {
		return "", fmt.Errorf("failed to generate stdlib prefix: %w", err)
	}
	return randomPrefixPrefix + hex.EncodeToString(id[:]), nil
}

// stdlibID returns the suffix appended to the stdlib files bundled for the given prefix
func stdlibID(prefix string) string {
	return strings.TrimPrefix(prefix, randomPrefixPrefix)
}

// StdlibBundle is the set of stdlib files written for a prefix
type StdlibBundle struct {
	// Path is the path of the bundle module, which includes all files
	Path string
	// Files are the paths of the included files
	Files []string
}

// BundleStdlib writes the stdlib into the destination directory:
// the bundle module `<prefix>.nim` includes every stdlib file under a name suffixed with the prefix's id.
// Nim files are copied, source files are transpiled with the default stdlib prefix.
//
// Returns nil if no stdlib is configured, the stdlib directory does not exist,
// or the bundle already exists.
func (t *Transpiler) BundleStdlib(destination string, prefix string) (*StdlibBundle, error) {
	if t.config.Stdlib == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(t.config.Stdlib)
	if os.IsNotExist(err) {
		t.logger.Debug("stdlib directory not found", zap.String("stdlib", t.config.Stdlib))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stdlib %s: %w", t.config.Stdlib, err)
	}

	bundle := &StdlibBundle{
		Path: filepath.Join(destination, prefix+nimFileExtension),
	}

	if _, err := os.Stat(bundle.Path); err == nil {
		t.logger.Debug("stdlib bundle exists", zap.String("bundle", bundle.Path))
		return nil, nil
	}

	var nimFiles, sourceFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch filepath.Ext(name) {
		case nimFileExtension:
			nimFiles = append(nimFiles, name)
		case sourceFileExtension:
			sourceFiles = append(sourceFiles, name)
		}
	}

	id := stdlibID(prefix)

	var content strings.Builder
	content.WriteString(stdlibBundleHeader)

	bundledName := func(name string) string {
		return strings.TrimSuffix(name, filepath.Ext(name)) + "_" + id
	}

	for _, name := range nimFiles {
		fmt.Fprintf(&content, "include \"./%s\"\n", bundledName(name))
	}
	for _, name := range sourceFiles {
		fmt.Fprintf(&content, "include \"./%s\"\n", bundledName(name))
	}

	err = os.WriteFile(bundle.Path, []byte(content.String()), 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to write stdlib bundle: %w", err)
	}

	for _, name := range nimFiles {
		code, err := os.ReadFile(filepath.Join(t.config.Stdlib, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read stdlib file %s: %w", name, err)
		}

		path := filepath.Join(destination, bundledName(name)+nimFileExtension)
		err = os.WriteFile(path, code, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to write stdlib file %s: %w", path, err)
		}

		bundle.Files = append(bundle.Files, path)
	}

	for _, name := range sourceFiles {
		generated, err := t.TranspileFile(filepath.Join(t.config.Stdlib, name), DefaultStdlibPrefix)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(destination, bundledName(name)+nimFileExtension)
		err = os.WriteFile(path, []byte(generated), 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to write stdlib file %s: %w", path, err)
		}

		bundle.Files = append(bundle.Files, path)
	}

	t.logger.Info(
		"bundled stdlib",
		zap.String("bundle", bundle.Path),
		zap.Int("files", len(bundle.Files)),
	)

	return bundle, nil
}
