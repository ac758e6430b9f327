// Package model defines the Match type shared by the pattern matchers,
// the guess estimators, and the sequence optimizer. Its only dependency
// inside this module is internal/leet, which imports nothing else from
// the module, so every other internal package can depend on it without
// risk of an import cycle.
package model

import (
	"encoding/json"

	"github.com/rafaelsanzio/guesscheck/internal/leet"
)

// Kind discriminates the variant-specific fields of a Match. Only the
// fields documented for a Match's Kind are meaningful; the rest are
// zero-valued.
type Kind int

const (
	Bruteforce Kind = iota
	Dictionary
	Spatial
	Repeat
	Sequence
	Regex
	Date
)

func (k Kind) String() string {
	switch k {
	case Bruteforce:
		return "bruteforce"
	case Dictionary:
		return "dictionary"
	case Spatial:
		return "spatial"
	case Repeat:
		return "repeat"
	case Sequence:
		return "sequence"
	case Regex:
		return "regex"
	case Date:
		return "date"
	default:
		return "unknown"
	}
}

// MarshalJSON renders Kind as its string name so the HTTP API returns
// "dictionary" rather than an opaque integer.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// unsetGuesses marks a Match whose guess count has not yet been
// estimated. Every real guess count is >= 1, so a negative sentinel is
// unambiguous.
const unsetGuesses = -1

// Match is one recognized pattern spanning password[I:J+1]. It is a
// tagged union: Kind selects which of the variant-specific field groups
// below is populated.
type Match struct {
	Kind  Kind   `json:"pattern"`
	I     int    `json:"i"`
	J     int    `json:"j"`
	Token string `json:"token"`

	// Guesses and GuessesLog10 are filled in by the scoring package the
	// first time a match's guess count is estimated, then cached. Bonus
	// is an additive guess adjustment folded in at that point (used only
	// by dictionary matches).
	Guesses      float64 `json:"guesses"`
	GuessesLog10 float64 `json:"guesses_log10"`
	Bonus        float64 `json:"-"`

	// Dictionary fields.
	MatchedWord    string      `json:"matched_word,omitempty"`
	Rank           int         `json:"rank,omitempty"`
	DictionaryName string      `json:"dictionary_name,omitempty"`
	L33t           bool        `json:"l33t,omitempty"`
	Reversed       bool        `json:"reversed,omitempty"`
	Sub            leet.SubMap `json:"-"`

	// Spatial fields.
	Graph        string `json:"graph,omitempty"`
	Turns        int    `json:"turns,omitempty"`
	ShiftedCount int    `json:"shifted_count,omitempty"`

	// Repeat fields.
	BaseToken   string  `json:"base_token,omitempty"`
	BaseGuesses float64 `json:"base_guesses,omitempty"`
	BaseMatches []Match `json:"base_matches,omitempty"`
	RepeatCount float64 `json:"repeat_count,omitempty"`

	// Sequence fields.
	SequenceName  string `json:"sequence_name,omitempty"`
	SequenceSpace int    `json:"sequence_space,omitempty"`
	Ascending     bool   `json:"ascending,omitempty"`

	// Regex fields.
	RegexName  string   `json:"regex_name,omitempty"`
	RegexMatch []string `json:"regex_match,omitempty"`

	// Date fields.
	Separator   string `json:"separator,omitempty"`
	Year        int    `json:"year,omitempty"`
	Month       int    `json:"month,omitempty"`
	Day         int    `json:"day,omitempty"`
	HasFullYear bool   `json:"has_full_year,omitempty"`
}

// NewBruteforce builds an unscored bruteforce match spanning [i, j] of
// password.
func NewBruteforce(password string, i, j int) Match {
	return Match{
		Kind:    Bruteforce,
		I:       i,
		J:       j,
		Token:   password[i : j+1],
		Guesses: unsetGuesses,
	}
}

// GuessesKnown reports whether a Match's guess count has already been
// estimated.
func (m Match) GuessesKnown() bool {
	return m.Guesses != unsetGuesses
}

// SubDisplay renders Sub as a human-readable "3 -> e, @ -> a" string
// (substitute, then the letter it stands for), in ascending order of the
// substitute character.
func (m Match) SubDisplay() string {
	changed := leet.ChangedSubset(m.Sub)
	if len(changed) == 0 {
		return ""
	}
	out := make([]byte, 0, len(changed)*8)
	for i, s := range changed {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = append(out, string(s.Subbed)...)
		out = append(out, " -> "...)
		out = append(out, string(s.Letter)...)
	}
	return string(out)
}
