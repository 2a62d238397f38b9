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

package lexer

import "github.com/SaveTheRbtz/mph"

const (
	KeywordClasse       = "classe"
	KeywordConstructeur = "constructeur"
	KeywordVariable     = "variable"
	KeywordNouveau      = "nouveau"
	KeywordRetourne     = "retourne"
	KeywordRetourner    = "retourner"
	KeywordCeci         = "ceci"
	KeywordCette        = "cette"
	KeywordOuvrir       = "ouvrir"
	KeywordRefermer     = "refermer"
	KeywordEgal         = "egal"
	KeywordEgalAccent   = "égal"
	KeywordImporter     = "importer"
	KeywordDe           = "de"
	KeywordComme        = "comme"
	KeywordPour         = "pour"
	KeywordTantque      = "tantque"
	KeywordFonction     = "fonction"
	KeywordType         = "type"
	KeywordExternal     = "external"
	KeywordConstant     = "constant"
	KeywordNim          = "nim"
	KeywordSi           = "si"
	KeywordSinon        = "sinon"
	KeywordVrai         = "vrai"
	KeywordFaux         = "faux"
	// NOTE: ensure to update allKeywords when adding a new keyword
)

type keyword struct {
	word      string
	tokenType TokenType
}

var allKeywords = []keyword{
	{KeywordClasse, TokenKeywordClass},
	{KeywordConstructeur, TokenKeywordConstructor},
	{KeywordVariable, TokenKeywordVariable},
	{KeywordNouveau, TokenKeywordNew},
	{KeywordRetourne, TokenKeywordReturn},
	{KeywordRetourner, TokenKeywordReturn},
	{KeywordCeci, TokenKeywordSelf},
	{KeywordCette, TokenKeywordSelf},
	{KeywordOuvrir, TokenKeywordOpen},
	{KeywordRefermer, TokenKeywordClose},
	{KeywordEgal, TokenEqual},
	{KeywordEgalAccent, TokenEqual},
	{KeywordImporter, TokenKeywordImport},
	{KeywordDe, TokenKeywordFrom},
	{KeywordComme, TokenKeywordAs},
	{KeywordPour, TokenKeywordFor},
	{KeywordTantque, TokenKeywordWhile},
	{KeywordFonction, TokenKeywordFunction},
	{KeywordType, TokenKeywordType},
	{KeywordExternal, TokenKeywordExternal},
	{KeywordConstant, TokenKeywordConstant},
	{KeywordNim, TokenKeywordNim},
	{KeywordSi, TokenKeywordIf},
	{KeywordSinon, TokenKeywordElse},
	{KeywordVrai, TokenBoolean},
	{KeywordFaux, TokenBoolean},
}

// Keywords are all words which are not lexed as identifiers, in declaration order.
var Keywords = func() []string {
	words := make([]string, len(allKeywords))
	for i, keyword := range allKeywords {
		words[i] = keyword.word
	}
	return words
}()

var keywordsTable = mph.Build(Keywords)

// KeywordTokenType returns the token type of the given word,
// if the word is a keyword.
func KeywordTokenType(word string) (TokenType, bool) {
	index, ok := keywordsTable.Lookup(word)
	if !ok {
		return TokenIdentifier, false
	}
	return allKeywords[index].tokenType, true
}
