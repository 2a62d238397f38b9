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

// Package transpiler composes lexing, parsing, and code generation,
// and builds programs spanning multiple source files.
package transpiler

import (
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/codegen"
	"github.com/onflow/fr2nim/errors"
	"github.com/onflow/fr2nim/parser"
	"github.com/onflow/fr2nim/parser/lexer"
)

const (
	tracingNormalize = "normalize"
	tracingLex       = "lex"
	tracingParse     = "parse"
	tracingGenerate  = "generate"
)

type Transpiler struct {
	config Config
	logger *zap.Logger
}

func New(config Config) *Transpiler {
	config = config.withDefaults()
	return &Transpiler{
		config: config,
		logger: config.Logger,
	}
}

func (t *Transpiler) Config() Config {
	return t.config
}

func (t *Transpiler) reportTrace(operationName string, start time.Time, attrs ...attribute.KeyValue) {
	if t.config.OnRecordTrace == nil {
		return
	}
	t.config.OnRecordTrace(operationName, time.Since(start), attrs)
}

// Parse lexes and parses the given source code
func (t *Transpiler) Parse(code []byte) (*ast.Program, error) {
	if t.config.Normalize {
		start := time.Now()
		code = norm.NFC.Bytes(code)
		t.reportTrace(tracingNormalize, start, attribute.Int("Size", len(code)))
	}

	start := time.Now()
	tokens, err := lexer.Lex(code)
	if err != nil {
		return nil, parser.Error{
			Code:   code,
			Errors: []error{err},
		}
	}
	t.reportTrace(tracingLex, start, attribute.Int("Token count", len(tokens)))

	start = time.Now()
	program, err := parser.ParseTokens(tokens)
	if err != nil {
		if parserErr, ok := err.(parser.Error); ok {
			parserErr.Code = code
			err = parserErr
		}
		return nil, err
	}
	t.reportTrace(tracingParse, start, attribute.Int("Declaration count", len(program.Declarations)))

	return program, nil
}

// TranspileSource returns the Nim code for the given source code
func (t *Transpiler) TranspileSource(code []byte, prefix string) (string, error) {
	program, err := t.Parse(code)
	if err != nil {
		return "", err
	}

	start := time.Now()
	generated, err := codegen.Generate(program, prefix)
	if err != nil {
		return "", err
	}
	t.reportTrace(tracingGenerate, start,
		attribute.String("Prefix", prefix),
		attribute.Int("Size", len(generated)),
	)

	return generated, nil
}

// TranspileFile returns the Nim code for the source file at the given path
func (t *Transpiler) TranspileFile(path string, prefix string) (string, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", path, err)
	}

	generated, err := t.TranspileSource(code, prefix)
	if err != nil {
		// positions refer to the normalized code
		if parserErr, ok := err.(parser.Error); ok && parserErr.Code != nil {
			code = parserErr.Code
		}
		return "", &SourceError{
			Path: path,
			Code: code,
			Err:  err,
		}
	}

	return generated, nil
}

// SourceError is reported when a source file cannot be transpiled
type SourceError struct {
	Path string
	Code []byte
	Err  error
}

var _ errors.ParentError = &SourceError{}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) ChildErrors() []error {
	return []error{e.Err}
}
