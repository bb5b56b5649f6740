// Package normalizer cleans up raw address text before tokenization:
// Unicode canonicalization, noise stripping, and the letter/digit
// separation that lets "Tucuman1300" tokenize the same as
// "Tucuman 1300".
package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// noise is the combined normalization regexp: one alternative per
// transformation, in the same order as the reference implementation's
// _NORMALIZATION_REGEXPS (address_parser.py:38-47), each match replaced
// by a single space:
//  1. parenthetical qualifiers: "(ex ...)", "(antes ...)", "(frente ...)",
//     "(mano ...)"/"(al lado ...)"
//  2. parenthesized cardinal-orientation markers: "(s)", "(n)", "(e)", "(o)"
//  3. commas used to separate text
//  4. stray unwanted characters: "(", ")", "\"", "?"
//  5. trailing dashes
//  6. dashes surrounded by whitespace
//  7. barrio/locality indicators, to the end of the string
var noise = regexp.MustCompile(`(?i)` +
	`\((ex|antes|frente|mano|(al\s)?lado).+?\)` + `|` +
	`\([sneo]\)` + `|` +
	`,(\s|$)|\s,` + `|` +
	`[()"?]` + `|` +
	`-+$` + `|` +
	`\s-\s` + `|` +
	`(b[°ºª]|barrio\s|bo\.\s).*`)

// alFiller strips the filler word "al" immediately before a door
// number ("Rivadavia al 1500" -> "Rivadavia 1500"). The reference
// implementation folds this into the same combined regexp via a
// lookahead (`\sal\s+(?=\d)`), which Go's RE2 engine can't express, so
// it runs as its own pass, consuming and replaying the digit it peeks
// at instead of a true zero-width lookahead.
var alFiller = regexp.MustCompile(`(?i)\sal\s+(\d)`)

// separation splits a run of ≥2 letters glued directly onto a following
// digit (e.g. "piso12" -> "piso 12"), inserting the space the tokenizer's
// word-boundary patterns rely on.
var separation = regexp.MustCompile(`([^\W\d]{2,}\.?)(\d)`)

var collapseWS = regexp.MustCompile(`\s+`)

// Normalize runs the full ordered normalization pipeline over raw
// address text: Unicode NFC folding, noise stripping, letter/digit
// separation, whitespace collapse.
func Normalize(raw string) string {
	s := norm.NFC.String(raw)
	s = noise.ReplaceAllString(s, " ")
	s = alFiller.ReplaceAllString(s, " $1")
	s = separation.ReplaceAllString(s, "$1 $2")
	s = collapseWS.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
