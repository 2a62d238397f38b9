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
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// compilerWaitDelay bounds how long a killed compiler's output is waited for
const compilerWaitDelay = time.Second

// CompileError is reported when the Nim compiler fails
type CompileError struct {
	Output string
	Err    error
}

func (e *CompileError) Error() string {
	var sb strings.Builder
	sb.WriteString("compilation failed: ")
	sb.WriteString(e.Err.Error())
	if output := strings.TrimSpace(e.Output); output != "" {
		sb.WriteByte('\n')
		sb.WriteString(output)
	}
	return sb.String()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile compiles the main Nim file in a temporary directory,
// together with the other given files it depends on,
// and copies the produced binary into the destination directory.
//
// Returns the path of the binary, or an empty path if the compiler produced none.
// The given files are never modified.
func (t *Transpiler) Compile(
	ctx context.Context,
	main string,
	files []string,
	destination string,
) (string, error) {

	tempDir, err := os.MkdirTemp("", "fr2nim-")
	if err != nil {
		return "", fmt.Errorf("failed to create build directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	for _, file := range append([]string{main}, files...) {
		err := copyFile(file, filepath.Join(tempDir, filepath.Base(file)), 0o644)
		if err != nil {
			return "", err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, t.config.Timeout)
	defer cancel()

	mainName := filepath.Base(main)

	cmd := exec.CommandContext(
		ctx,
		t.config.Compiler,
		"c",
		"--os:"+t.config.Target.NimOS(),
		mainName,
	)
	cmd.Dir = tempDir
	cmd.WaitDelay = compilerWaitDelay

	t.logger.Info(
		"compiling",
		zap.String("main", main),
		zap.String("compiler", t.config.Compiler),
		zap.String("target", string(t.config.Target)),
	)

	start := time.Now()
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w after %s", ctx.Err(), t.config.Timeout)
		}
		return "", &CompileError{
			Output: string(output),
			Err:    err,
		}
	}

	t.logger.Debug(
		"compiler finished",
		zap.Duration("duration", time.Since(start)),
		zap.String("output", string(output)),
	)

	binaryName := t.config.Target.BinaryName(strings.TrimSuffix(mainName, nimFileExtension))
	tempBinary := filepath.Join(tempDir, binaryName)

	if _, err := os.Stat(tempBinary); err != nil {
		t.logger.Warn("compiler produced no binary", zap.String("binary", binaryName))
		return "", nil
	}

	binary := filepath.Join(destination, binaryName)
	err = copyFile(tempBinary, binary, 0o755)
	if err != nil {
		return "", err
	}

	t.logger.Info("compiled", zap.String("binary", binary))

	return binary, nil
}

func copyFile(source, destination string, mode os.FileMode) (err error) {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", source, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destination, err)
	}
	defer func() {
		closeErr := out.Close()
		if err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, in)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", source, err)
	}
	return nil
}
