package token

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// matcher tries to recognize its kind at the very start of s. It
// returns the number of bytes consumed and true on success; lookahead
// context (the character that follows) is inspected but never
// consumed, mirroring the zero-width lookaheads of the reference
// tokenizer this alphabet was modeled on.
type matcher struct {
	kind  Kind
	match func(s string) (n int, ok bool)
}

func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?i:` + pattern + `)`)
}

func simple(k Kind, pattern string) matcher {
	re := anchored(pattern)
	return matcher{kind: k, match: func(s string) (int, bool) {
		loc := re.FindStringIndex(s)
		if loc == nil {
			return 0, false
		}
		return loc[1], true
	}}
}

var (
	reYSpace  = regexp.MustCompile(`^(?i:y\s)`)
	reESpace  = regexp.MustCompile(`^(?i:e\s)`)
	reNPlain  = regexp.MustCompile(`^(?i:n)`)
	reNMark   = anchored(`n\s?[°ºª*]`)
	reWordAll = regexp.MustCompile("^[\\p{L}\\p{N}_.'`´:/]+")
)

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// matchers is the ordered matcher table. Order here IS tokenizer
// priority: Scan tries each in turn and takes the first success.
var matchers = []matcher{
	// AND_WORD: "y " not followed by a digit, or "e " followed by "i".
	{kind: AndWord, match: func(s string) (int, bool) {
		if loc := reYSpace.FindStringIndex(s); loc != nil && loc[0] == 0 {
			rest := s[loc[1]:]
			if rest == "" || !isDigitByte(rest[0]) {
				return loc[1], true
			}
		}
		if loc := reESpace.FindStringIndex(s); loc != nil && loc[0] == 0 {
			rest := strings.ToLower(s[loc[1]:])
			if strings.HasPrefix(rest, "i") {
				return loc[1], true
			}
		}
		return 0, false
	}},
	// AND_NUM: "y " followed by a digit.
	{kind: AndNum, match: func(s string) (int, bool) {
		if loc := reYSpace.FindStringIndex(s); loc != nil && loc[0] == 0 {
			rest := s[loc[1]:]
			if rest != "" && isDigitByte(rest[0]) {
				return loc[1], true
			}
		}
		return 0, false
	}},
	simple(Of, `de\s`),
	simple(Floor, `piso(\s|$)`),
	simple(DoorType, `(d(e?p)?to\.?|departamento|oficina|of\.)\s`),
	simple(GroundLevel, `(p\.?b\.?|planta\sbaja)(\s|$)`),
	simple(IsctSep, `esquina|esq\.|esq\s|esq/`),
	simple(BtwnSep, `e/(calles)?|entre\scalles`),
	simple(Between, `entre\s`),
	simple(Km, `kil[oó]metro|km\.?`),
	simple(MissingName, `s/nombre`),
	simple(MissingNum, `(sin\s|s/)(n[uú]mero|n(ro\.?|[°º]))`),
	simple(SN, `(s[/-]n|s\s?n)(\s|$)`),
	simple(StreetTypeS, `(avda|av|bv|diag)[\s.]`),
	simple(StreetTypeL, `calle\s|avenida|bo?ulevard?|diagonal`),
	simple(Route, `ruta|(rta|rn|rp)[\s.]`),
	// NUM_LABEL_S: "n°"/"nº"/"nª"/"n*"/"#", or a bare "n" directly
	// glued to a following digit (not consumed).
	{kind: NumLabelS, match: func(s string) (int, bool) {
		if loc := reNMark.FindStringIndex(s); loc != nil && loc[0] == 0 {
			return loc[1], true
		}
		if strings.HasPrefix(s, "#") {
			return 1, true
		}
		if loc := reNPlain.FindStringIndex(s); loc != nil && loc[0] == 0 {
			rest := s[loc[1]:]
			if rest != "" && isDigitByte(rest[0]) {
				return loc[1], true
			}
		}
		return 0, false
	}},
	simple(NumLabelL, `nro[\s.]|n[uú]mero`),
	simple(Decimal, `\d+[.,]\d+`),
	simple(NumRange, `\d+[/-]\d+([/-]\d+)*`),
	simple(Ordinal, `\d+(era?|nd[oa]|[nmtvr][oa])(\s|$|\.)`),
	simple(Num, `\d+((\s|$)|[°º])`),
	simple(N, `n\s`),
	simple(Letter, `[A-Za-z_](\s|$|\.)`),
	simple(NumsLetter, `\d+[A-Za-z]+(\s|$|\.)`),
	{kind: Word, match: func(s string) (int, bool) {
		loc := reWordAll.FindStringIndex(s)
		if loc == nil {
			return 0, false
		}
		return loc[1], true
	}},
	simple(WS, `\s+`),
}

// Scan splits normalized text into tokens in priority order, dropping
// WS. Every lexeme has surrounding whitespace trimmed. Scan never
// fails: a byte that no matcher recognizes is consumed as a one-rune
// WORD so the scan always makes progress.
func Scan(text string) []Token {
	var out []Token
	rest := text
	for len(rest) > 0 {
		matched := false
		for _, m := range matchers {
			if n, ok := m.match(rest); ok && n > 0 {
				lexeme := strings.TrimSpace(rest[:n])
				rest = rest[n:]
				matched = true
				if m.kind == WS || lexeme == "" {
					break
				}
				out = append(out, Token{Kind: m.kind, Lexeme: lexeme})
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(rest)
			if size == 0 {
				size = 1
			}
			lexeme := strings.TrimSpace(rest[:size])
			rest = rest[size:]
			if lexeme != "" {
				out = append(out, Token{Kind: Word, Lexeme: lexeme})
			}
		}
	}
	return out
}

// KindSequence extracts the kind sequence of a token slice, the key the
// structure cache indexes on.
func KindSequence(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}
