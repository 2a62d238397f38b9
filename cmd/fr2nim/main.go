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
	"sort"
)

const version = "0.1.0"

type command struct {
	usage   string
	help    string
	handler func(args []string, out io.Writer) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"build": {
			usage:   "build [flags] files...",
			help:    "Transpiles the files and their imports to Nim, and optionally compiles them",
			handler: runBuild,
		},
		"ast": {
			usage:   "ast [-color] file",
			help:    "Prints the AST of the file as JSON",
			handler: runAST,
		},
		"fmt": {
			usage:   "fmt [-w] file",
			help:    "Prints the file in canonical form",
			handler: runFmt,
		},
		"repl": {
			usage:   "repl",
			help:    "Starts an interactive session printing the Nim code of each input",
			handler: runREPL,
		},
		"version": {
			usage: "version",
			help:  "Prints the version",
			handler: func(_ []string, out io.Writer) error {
				_, err := fmt.Fprintf(out, "fr2nim %s\n", version)
				return err
			},
		},
	}
}

func main() {
	if len(os.Args) < 2 {
		printAvailableCommands(os.Stderr)
		os.Exit(1)
	}

	commandName := os.Args[1]

	command, ok := commands[commandName]
	if !ok {
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command %s\n", commandName)
		printAvailableCommands(os.Stderr)
		os.Exit(1)
	}

	err := command.handler(os.Args[2:], os.Stdout)
	if err != nil {
		printError(os.Stderr, err, true)
		os.Exit(1)
	}
}

func printAvailableCommands(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	_, _ = fmt.Fprintln(w, "Usage: fr2nim <command> [arguments]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Available commands:")
	for _, name := range names {
		command := commands[name]
		_, _ = fmt.Fprintf(w, "  %-30s %s\n", command.usage, command.help)
	}
}
