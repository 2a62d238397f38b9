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
	"encoding/json"
	"flag"
	"io"
	"os"

	jsonpretty "github.com/tidwall/pretty"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/errors"
	"github.com/onflow/fr2nim/transpiler"
)

// parseFile parses the single file argument of a command
func parseFile(flags *flag.FlagSet) (string, *ast.Program, error) {
	if flags.NArg() != 1 {
		return "", nil, errors.NewDefaultUserError("expected exactly one source file")
	}
	path := flags.Arg(0)

	code, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	program, err := transpiler.New(transpiler.DefaultConfig()).Parse(code)
	if err != nil {
		return "", nil, &transpiler.SourceError{
			Path: path,
			Code: code,
			Err:  err,
		}
	}

	return path, program, nil
}

func runAST(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("ast", flag.ContinueOnError)
	color := flags.Bool("color", false, "colorize the output")

	err := flags.Parse(args)
	if err != nil {
		return err
	}

	_, program, err := parseFile(flags)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(program)
	if err != nil {
		return err
	}

	encoded = jsonpretty.Pretty(encoded)
	if *color {
		encoded = jsonpretty.Color(encoded, nil)
	}

	_, err = out.Write(encoded)
	return err
}

func runFmt(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("fmt", flag.ContinueOnError)
	write := flags.Bool("w", false, "write the result to the file instead of printing it")

	err := flags.Parse(args)
	if err != nil {
		return err
	}

	path, program, err := parseFile(flags)
	if err != nil {
		return err
	}

	formatted := ast.Prettier(program) + "\n"

	if *write {
		return os.WriteFile(path, []byte(formatted), 0o644)
	}

	_, err = io.WriteString(out, formatted)
	return err
}
