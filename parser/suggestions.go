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

package parser

import (
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/onflow/fr2nim/parser/lexer"
)

// maxSuggestionDistance is the maximum edit distance
// between a misspelled word and a suggested keyword
const maxSuggestionDistance = 2

// suggestKeyword returns a hint if the given token is an identifier
// which is likely a misspelling of a keyword with the expected token type,
// e.g. `refermr` instead of `refermer`.
func suggestKeyword(expected lexer.TokenType, got lexer.Token) string {
	if !got.Is(lexer.TokenIdentifier) {
		return ""
	}

	closestKeyword := closestKeyword(expected, got.Literal)
	if closestKeyword == "" {
		return ""
	}

	return fmt.Sprintf("did you mean `%s`?", closestKeyword)
}

func closestKeyword(expected lexer.TokenType, word string) (closest string) {
	wordRunes := []rune(word)

	closestDistance := maxSuggestionDistance + 1

	for _, keyword := range lexer.Keywords {
		tokenType, _ := lexer.KeywordTokenType(keyword)
		if tokenType != expected {
			continue
		}

		keywordRunes := []rune(keyword)

		distance := levenshtein.DistanceForStrings(
			wordRunes,
			keywordRunes,
			levenshtein.DefaultOptions,
		)

		// Don't suggest a keyword if the edits required
		// would involve a complete replacement of the word
		if distance < closestDistance && distance < len(keywordRunes) {
			closest = keyword
			closestDistance = distance
		}
	}

	return
}
