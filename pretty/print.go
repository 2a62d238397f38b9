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

package pretty

import (
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/onflow/fr2nim/ast"
	"github.com/onflow/fr2nim/errors"
)

// ErrorPrettyPrinter prints errors with an excerpt of the offending source line
type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) colorize(s string, color aurora.Color) string {
	if !p.useColor {
		return s
	}
	return aurora.Colorize(s, color).String()
}

// PrettyPrintError prints the given error.
// Children of a parent error are printed one after another.
// The location names the source in the position line, and may be empty.
func (p ErrorPrettyPrinter) PrettyPrintError(err error, location string, code []byte) error {
	if parentErr, ok := err.(errors.ParentError); ok {
		for i, childErr := range parentErr.ChildErrors() {
			if i > 0 {
				_, writeErr := io.WriteString(p.writer, "\n")
				if writeErr != nil {
					return writeErr
				}
			}
			printErr := p.PrettyPrintError(childErr, location, code)
			if printErr != nil {
				return printErr
			}
		}
		return nil
	}

	var sb strings.Builder
	p.writeError(&sb, err, location, code)

	_, writeErr := io.WriteString(p.writer, sb.String())
	return writeErr
}

func (p ErrorPrettyPrinter) writeError(sb *strings.Builder, err error, location string, code []byte) {
	sb.WriteString(p.colorize("error", aurora.RedFg|aurora.BrightFg|aurora.BoldFm))
	sb.WriteString(p.colorize(": "+err.Error(), aurora.BoldFm))
	sb.WriteByte('\n')

	var secondary string
	if secondaryErr, ok := err.(errors.SecondaryError); ok {
		secondary = secondaryErr.SecondaryError()
	}

	positioned, ok := err.(ast.HasPosition)
	if !ok {
		p.writeSecondary(sb, secondary)
		return
	}

	startPos := positioned.StartPosition()
	endPos := positioned.EndPosition()

	p.writeLocation(sb, location, startPos)

	line, ok := sourceLine(code, startPos.Line)
	if !ok {
		p.writeSecondary(sb, secondary)
		return
	}

	lineNumber := strconv.Itoa(startPos.Line)
	gutter := strings.Repeat(" ", len(lineNumber))

	sb.WriteString(p.colorize(gutter+" |", aurora.BlueFg|aurora.BrightFg))
	sb.WriteByte('\n')

	sb.WriteString(p.colorize(lineNumber+" | ", aurora.BlueFg|aurora.BrightFg))
	sb.WriteString(line)
	sb.WriteByte('\n')

	indentation, carets := excerptMarker(line, startPos, endPos)

	sb.WriteString(p.colorize(gutter+" | ", aurora.BlueFg|aurora.BrightFg))
	sb.WriteString(indentation)
	sb.WriteString(p.colorize(carets, aurora.RedFg|aurora.BrightFg|aurora.BoldFm))
	if secondary != "" {
		sb.WriteByte(' ')
		sb.WriteString(p.colorize(secondary, aurora.YellowFg|aurora.BrightFg))
	}
	sb.WriteByte('\n')
}

func (p ErrorPrettyPrinter) writeLocation(sb *strings.Builder, location string, pos ast.Position) {
	sb.WriteString(p.colorize(" --> ", aurora.BlueFg|aurora.BrightFg))
	if location != "" {
		sb.WriteString(location)
		sb.WriteByte(':')
	}
	sb.WriteString(strconv.Itoa(pos.Line))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(pos.Column))
	sb.WriteByte('\n')
}

func (p ErrorPrettyPrinter) writeSecondary(sb *strings.Builder, secondary string) {
	if secondary == "" {
		return
	}
	sb.WriteString(p.colorize("  = ", aurora.BlueFg|aurora.BrightFg))
	sb.WriteString(p.colorize(secondary, aurora.YellowFg|aurora.BrightFg))
	sb.WriteByte('\n')
}

// sourceLine returns the 1-based line of the code
func sourceLine(code []byte, line int) (string, bool) {
	if line < 1 || len(code) == 0 {
		return "", false
	}

	lines := strings.Split(string(code), "\n")
	if line > len(lines) {
		return "", false
	}

	return strings.TrimSuffix(lines[line-1], "\r"), true
}

// excerptMarker returns the whitespace leading up to the start column,
// which keeps the tabs of the line, and carets spanning the display width
// of the marked runes. A range spanning multiple lines is marked until the end of the line.
func excerptMarker(line string, startPos, endPos ast.Position) (indentation string, carets string) {
	runes := []rune(line)

	startColumn := startPos.Column
	if startColumn > len(runes) {
		startColumn = len(runes)
	}

	endColumn := endPos.Column
	if endPos.Line != startPos.Line || endColumn >= len(runes) {
		endColumn = len(runes) - 1
	}

	var indentationBuilder strings.Builder
	for _, r := range runes[:startColumn] {
		if r == '\t' {
			indentationBuilder.WriteRune('\t')
			continue
		}
		indentationBuilder.WriteString(strings.Repeat(" ", uniseg.StringWidth(string(r))))
	}

	width := 0
	if endColumn >= startColumn {
		width = uniseg.StringWidth(string(runes[startColumn : endColumn+1]))
	}
	if width < 1 {
		width = 1
	}

	return indentationBuilder.String(), strings.Repeat("^", width)
}
