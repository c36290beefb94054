// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package tfidf

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lower-cases text and returns its tokens in order, optionally
// dropping English stop words.
func Tokenize(text string, dropStopWords bool) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if !dropStopWords {
		return tokens
	}
	kept := tokens[:0]
	for _, tok := range tokens {
		if !isStopWord(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}

// isStopWord reports whether token is in the built-in English stop-word list.
func isStopWord(token string) bool {
	_, ok := englishStopWords[token]
	return ok
}

var englishStopWords = makeSet(`
a about above after again against all almost alone along already also although always am among an and
another any anyhow anyone anything anyway anywhere are around as at back be became because become becomes
been before beforehand behind being below beside besides between beyond both but by can cannot could did do
does doing done down due during each either else elsewhere enough etc even ever every everyone everything
everywhere except few for former formerly from further had has have having he hence her here hers herself him
himself his how however i ie if in indeed into is it its itself just last latter least less made many may me
meanwhile might mine more moreover most mostly much must my myself namely neither never nevertheless next no
nobody none noone nor not nothing now nowhere of off often on once one only onto or other others otherwise our
ours ourselves out over own per perhaps please rather re same seem seemed seeming seems several she should
since so some somehow someone something sometime sometimes somewhere still such than that the their theirs
them themselves then thence there thereafter thereby therefore therein thereupon these they this those though
through throughout thru thus to together too toward towards under until up upon us very via was we well were
what whatever when whence whenever where whereafter whereas whereby wherein whereupon wherever whether which
while whither who whoever whole whom whose why will with within without would yet you your yours yourself
yourselves
`)

func makeSet(words string) map[string]struct{} {
	fields := strings.Fields(words)
	set := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		set[w] = struct{}{}
	}
	return set
}
