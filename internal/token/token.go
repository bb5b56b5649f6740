// Package token defines the terminal alphabet of Argentine street
// addresses and scans normalized text into a sequence of kind/lexeme
// pairs.
package token

// Kind names one of the terminal symbols an address can be made of.
// The zero value is not a valid kind; callers get Kind values only from
// Scan.
type Kind string

// Terminal alphabet, in tokenizer priority order: at every scan
// position the first kind (in this order) whose pattern matches wins,
// regardless of whether a later kind would match a longer lexeme.
const (
	AndWord      Kind = "AND_WORD"
	AndNum       Kind = "AND_NUM"
	Of           Kind = "OF"
	Floor        Kind = "FLOOR"
	DoorType     Kind = "DOOR_TYPE"
	GroundLevel  Kind = "GROUNDL"
	IsctSep      Kind = "ISCT_SEP"
	BtwnSep      Kind = "BTWN_SEP"
	Between      Kind = "BETWEEN"
	Km           Kind = "KM"
	MissingName  Kind = "MISSING_NAME"
	MissingNum   Kind = "MISSING_NUM"
	SN           Kind = "S_N"
	StreetTypeS  Kind = "STREET_TYPE_S"
	StreetTypeL  Kind = "STREET_TYPE_L"
	Route        Kind = "ROUTE"
	NumLabelS    Kind = "NUM_LABEL_S"
	NumLabelL    Kind = "NUM_LABEL_L"
	Decimal      Kind = "DECIMAL"
	NumRange     Kind = "NUM_RANGE"
	Ordinal      Kind = "ORDINAL"
	Num          Kind = "NUM"
	N            Kind = "N"
	Letter       Kind = "LETTER"
	NumsLetter   Kind = "NUMS_LETTER"
	Word         Kind = "WORD"
	WS           Kind = "WS"
)

// Kinds lists the terminal alphabet in tokenizer priority order. The
// grammar loader validates every terminal name used in a production
// against this list.
var Kinds = []Kind{
	AndWord, AndNum, Of, Floor, DoorType, GroundLevel, IsctSep, BtwnSep,
	Between, Km, MissingName, MissingNum, SN, StreetTypeS, StreetTypeL,
	Route, NumLabelS, NumLabelL, Decimal, NumRange, Ordinal, Num, N,
	Letter, NumsLetter, Word, WS,
}

// IsKnown reports whether k names a terminal in the alphabet.
func IsKnown(k Kind) bool {
	for _, want := range Kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Token is one lexeme recognized at a position in the normalized
// input, tagged with its terminal kind.
type Token struct {
	Kind   Kind
	Lexeme string
}
