package matching

import (
	"strings"

	"github.com/rafaelsanzio/guesscheck/internal/dictionaries"
	"github.com/rafaelsanzio/guesscheck/internal/leet"
	"github.com/rafaelsanzio/guesscheck/internal/model"
)

// dictionaryMatch finds every substring of password that appears in any
// of dicts, trying every (i, j) span against every dictionary. This is
// deliberately exhaustive: a given password is short enough that the
// O(n^2 * dictionaries) scan costs nothing compared to the DP search
// that follows it.
func dictionaryMatch(password string, dicts dictionaries.Set) []model.Match {
	var matches []model.Match
	lower := strings.ToLower(password)
	length := len([]rune(lower))
	runes := []rune(lower)
	passwordRunes := []rune(password)

	for name, dict := range dicts {
		for i := 0; i < length; i++ {
			for j := i; j < length; j++ {
				word := string(runes[i : j+1])
				rank, ok := dict[word]
				if !ok {
					continue
				}
				matches = append(matches, model.Match{
					Kind:           model.Dictionary,
					I:              i,
					J:              j,
					Token:          string(passwordRunes[i : j+1]),
					MatchedWord:    word,
					Rank:           rank,
					DictionaryName: name,
					Guesses:        -1,
				})
			}
		}
	}
	return matches
}

// reverseRunes returns s with its runes reversed.
func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// reversedDictionaryMatch runs dictionaryMatch against the reversed
// password, then maps the resulting spans and tokens back onto the
// original orientation, so "drowssap" is reported as a reversed match on
// "password" at the original string's coordinates.
func reversedDictionaryMatch(password string, dicts dictionaries.Set) []model.Match {
	reversed := reverseRunes(password)
	matches := dictionaryMatch(reversed, dicts)
	n := len([]rune(password))
	for idx := range matches {
		m := &matches[idx]
		m.Token = reverseRunes(m.Token)
		m.Reversed = true
		i, j := m.I, m.J
		m.I, m.J = n-1-j, n-1-i
	}
	return matches
}

// leetMatch finds dictionary words hidden behind leetspeak
// substitutions: for every possible substitution map relevant to
// password, it de-obfuscates the password and re-runs dictionaryMatch,
// keeping only matches that required at least one substitution to
// surface and that span more than a single character (otherwise "1"
// trivially "matches" the word "i", adding noise with no signal).
func leetMatch(password string, dicts dictionaries.Set) []model.Match {
	var matches []model.Match
	table := leet.RelevantSubtable(password)

	for _, sub := range leet.EnumerateSubs(table) {
		if len(sub) == 0 {
			break
		}
		subbed := leet.Translate(password, sub)
		for _, m := range dictionaryMatch(subbed, dicts) {
			token := string([]rune(password)[m.I : m.J+1])
			if strings.ToLower(token) == m.MatchedWord {
				continue // only keep matches that actually used a substitution
			}
			matchSub := make(leet.SubMap)
			for subbedChr, letter := range sub {
				if strings.ContainsRune(token, subbedChr) {
					matchSub[subbedChr] = letter
				}
			}
			m.L33t = true
			m.Token = token
			m.Sub = matchSub
			matches = append(matches, m)
		}
	}

	filtered := matches[:0]
	for _, m := range matches {
		if len([]rune(m.Token)) > 1 {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
