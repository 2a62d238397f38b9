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
	goerrors "errors"
	"flag"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora/v4"

	"github.com/onflow/fr2nim/pretty"
	"github.com/onflow/fr2nim/transpiler"
)

func colorizeOutput(s string, useColor bool) string {
	if !useColor {
		return s
	}
	return aurora.Colorize(s, aurora.YellowFg|aurora.BrightFg).String()
}

func colorizeError(message string, useColor bool) string {
	if !useColor {
		return message
	}
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

// printError prints the error.
// Source errors are printed with an excerpt of the offending code.
func printError(w io.Writer, err error, useColor bool) {
	if goerrors.Is(err, flag.ErrHelp) {
		return
	}

	var sourceErr *transpiler.SourceError
	if goerrors.As(err, &sourceErr) {
		printErr := pretty.NewErrorPrettyPrinter(w, useColor).
			PrettyPrintError(sourceErr.Err, sourceErr.Path, sourceErr.Code)
		if printErr != nil {
			panic(printErr)
		}
		return
	}

	_, _ = fmt.Fprintln(w, colorizeError(err.Error(), useColor))
}
