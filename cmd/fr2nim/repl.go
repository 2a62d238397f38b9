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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/onflow/fr2nim/parser"
	"github.com/onflow/fr2nim/parser/lexer"
	"github.com/onflow/fr2nim/pretty"
	"github.com/onflow/fr2nim/transpiler"
)

const replLocation = "repl"

// REPL accumulates input lines until they form a complete program,
// and then transpiles them
type REPL struct {
	transpiler *transpiler.Transpiler
	prelude    string
	lineNumber int
	code       strings.Builder
}

func NewREPL() *REPL {
	return &REPL{
		transpiler: transpiler.New(transpiler.DefaultConfig()),
		prelude:    "import " + transpiler.DefaultStdlibPrefix + "\n\n",
		lineNumber: 1,
	}
}

// IsContinuation reports whether the previous lines are incomplete
func (r *REPL) IsContinuation() bool {
	return r.code.Len() > 0
}

func (r *REPL) LineNumber() int {
	return r.lineNumber
}

// Accept adds the line to the current input.
// Once the input is complete, it returns the generated code without the prelude,
// or the transpilation error, and the input is reset.
// The returned code is the complete input, for error reporting.
func (r *REPL) Accept(line string) (generated string, complete bool, code []byte, err error) {
	defer func() {
		r.lineNumber++
	}()

	if !r.IsContinuation() {
		// Prefix the code with empty lines,
		// so that error messages match the current line number
		r.code.WriteString(strings.Repeat("\n", r.lineNumber-1))
	}
	r.code.WriteString(line)
	r.code.WriteByte('\n')

	code = []byte(r.code.String())

	if strings.TrimSpace(string(code)) == "" {
		r.code.Reset()
		return "", true, code, nil
	}

	generated, err = r.transpiler.TranspileSource(code, transpiler.DefaultStdlibPrefix)
	if err != nil && parser.IsIncompleteInput(err) {
		return "", false, code, nil
	}

	r.code.Reset()

	if err != nil {
		return "", true, code, err
	}

	return strings.TrimPrefix(generated, r.prelude), true, code, nil
}

// Suggestions returns the keywords starting with the given word
func (r *REPL) Suggestions(word string) []prompt.Suggest {
	if word == "" {
		return nil
	}

	suggests := make([]prompt.Suggest, 0, len(lexer.Keywords))
	for _, keyword := range lexer.Keywords {
		suggests = append(suggests, prompt.Suggest{
			Text:        keyword,
			Description: "keyword",
		})
	}

	return prompt.FilterHasPrefix(suggests, word, false)
}

func runREPL(_ []string, out io.Writer) error {
	printReplWelcome(out)

	repl := NewREPL()
	errorPrettyPrinter := pretty.NewErrorPrettyPrinter(os.Stderr, true)

	executor := func(line string) {
		if !repl.IsContinuation() && strings.HasPrefix(line, ".") {
			handleCommand(out, line)
			return
		}

		generated, complete, code, err := repl.Accept(line)
		if !complete {
			return
		}

		if err != nil {
			printErr := errorPrettyPrinter.PrettyPrintError(err, replLocation, code)
			if printErr != nil {
				panic(printErr)
			}
			return
		}

		if generated != "" {
			_, _ = fmt.Fprint(out, colorizeOutput(generated, true))
		}
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		return repl.Suggestions(d.GetWordBeforeCursor())
	}

	changeLivePrefix := func() (string, bool) {
		separator := '>'
		if repl.IsContinuation() {
			separator = '.'
		}

		return fmt.Sprintf("%d%c ", repl.LineNumber(), separator), true
	}

	options := []prompt.Option{
		prompt.OptionLivePrefix(changeLivePrefix),
	}
	prompt.New(executor, suggest, options...).Run()

	return nil
}

const replHelpMessage = `
Enter declarations and statements to print their Nim code.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the session
.help     Print this help message

Press ^C to abort current input, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func handleCommand(out io.Writer, command string) {
	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		_, _ = fmt.Fprintln(out, replHelpMessage)
	default:
		_, _ = fmt.Fprintln(out, colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage), true))
	}
}

func printReplWelcome(out io.Writer) {
	_, _ = fmt.Fprintf(out, "Welcome to fr2nim %s!\n%s\n\n", version, replAssistanceMessage)
}
