// Package scoring estimates how many guesses an attacker needs to reach
// a given matched pattern, one estimator per Match Kind, and caches the
// result on the Match itself.
package scoring

import (
	"math"
	"strings"
	"unicode"

	"github.com/rafaelsanzio/guesscheck/internal/keyboard"
	"github.com/rafaelsanzio/guesscheck/internal/model"
)

const (
	bruteforceCardinality        = 10
	minSubmatchGuessesSingleChar = 10
	minSubmatchGuessesMultiChar  = 50
	minYearSpace                 = 20

	// DefaultReferenceYear is the year the original python-zxcvbn hardcodes
	// as REFERENCE_YEAR. Config.ReferenceYear defaults to this but can
	// override it per Estimate call.
	DefaultReferenceYear = 2016
)

// NCk computes the binomial coefficient n-choose-k using the
// multiplicative formula, avoiding the overflow a naive factorial-based
// computation would hit for even modest n.
func NCk(n, k int) float64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	r := 1.0
	nf := float64(n)
	for d := 1; d <= k; d++ {
		r *= nf
		r /= float64(d)
		nf--
	}
	return r
}

// Estimate computes (and caches on m) the number of guesses needed to
// reach m, given the full password it was matched against and the
// reference year date/year-based estimators anchor "recent" to (see
// Config.ReferenceYear at the root package). Calling Estimate again on
// an already-estimated match returns the cached value without
// recomputing.
func Estimate(password string, m *model.Match, referenceYear int) float64 {
	if m.GuessesKnown() {
		return m.Guesses
	}

	minGuesses := 1.0
	if len(m.Token) < len(password) {
		if len(m.Token) == 1 {
			minGuesses = minSubmatchGuessesSingleChar
		} else {
			minGuesses = minSubmatchGuessesMultiChar
		}
	}

	var guesses float64
	switch m.Kind {
	case model.Bruteforce:
		guesses = bruteforceGuesses(m)
	case model.Dictionary:
		guesses = dictionaryGuesses(m)
	case model.Spatial:
		guesses = spatialGuesses(m)
	case model.Repeat:
		guesses = repeatGuesses(m)
	case model.Sequence:
		guesses = sequenceGuesses(m)
	case model.Regex:
		guesses = regexGuesses(m, referenceYear)
	case model.Date:
		guesses = dateGuesses(m, referenceYear)
	}

	if guesses < minGuesses {
		guesses = minGuesses
	}
	guesses += m.Bonus

	m.Guesses = guesses
	m.GuessesLog10 = math.Log10(guesses)
	return guesses
}

func bruteforceGuesses(m *model.Match) float64 {
	guesses := math.Pow(bruteforceCardinality, float64(len([]rune(m.Token))))
	minGuesses := minSubmatchGuessesMultiChar + 1.0
	if len([]rune(m.Token)) == 1 {
		minGuesses = minSubmatchGuessesSingleChar + 1.0
	}
	if guesses < minGuesses {
		return minGuesses
	}
	return guesses
}

func repeatGuesses(m *model.Match) float64 {
	return m.BaseGuesses * m.RepeatCount
}

func sequenceGuesses(m *model.Match) float64 {
	first := rune(m.Token[0])
	var base float64
	switch first {
	case 'a', 'A', 'z', 'Z', '0', '1', '9':
		base = 4
	default:
		if unicode.IsDigit(first) {
			base = 10
		} else {
			base = 26
		}
	}
	if !m.Ascending {
		base *= 2
	}
	return base * float64(len([]rune(m.Token)))
}

func regexGuesses(m *model.Match, referenceYear int) float64 {
	if m.RegexName != "recent_year" {
		return 0
	}
	year := 0
	if len(m.RegexMatch) > 0 {
		year = atoiSafe(m.RegexMatch[0])
	}
	yearSpace := math.Abs(float64(year - referenceYear))
	if yearSpace < minYearSpace {
		yearSpace = minYearSpace
	}
	return yearSpace
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func dateGuesses(m *model.Match, referenceYear int) float64 {
	yearSpace := math.Abs(float64(m.Year - referenceYear))
	if yearSpace < minYearSpace {
		yearSpace = minYearSpace
	}
	guesses := yearSpace * 365
	if m.HasFullYear {
		guesses *= 2
	}
	if m.Separator != "" {
		guesses *= 4
	}
	return guesses
}

func spatialGuesses(m *model.Match) float64 {
	var startingPositions float64
	var avgDegree float64
	switch m.Graph {
	case "qwerty", "dvorak":
		g := keyboard.All[m.Graph]
		startingPositions = float64(g.KeyCount)
		avgDegree = g.AvgDegree
	default:
		g := keyboard.Keypad
		startingPositions = float64(g.KeyCount)
		avgDegree = g.AvgDegree
	}

	var guesses float64
	l := len([]rune(m.Token))
	t := m.Turns
	for i := 2; i < l; i++ {
		possibleTurns := t
		if i-1 < possibleTurns {
			possibleTurns = i - 1
		}
		for j := 1; j < possibleTurns; j++ {
			guesses += NCk(i-1, j-1) * startingPositions * math.Pow(avgDegree, float64(j))
		}
	}

	if m.ShiftedCount > 0 {
		s := m.ShiftedCount
		u := len([]rune(m.Token)) - s
		if s == 0 || u == 0 {
			guesses *= 2
		} else {
			var variations float64
			min := s
			if u < min {
				min = u
			}
			for i := 1; i < min; i++ {
				variations += NCk(s+u, i)
			}
			guesses *= variations
		}
	}
	return guesses
}

func dictionaryGuesses(m *model.Match) float64 {
	m.BaseGuesses = float64(m.Rank)
	uppercase := uppercaseVariations(m.Token)
	l33t := l33tVariations(m)
	reversed := 1.0
	if m.Reversed {
		reversed = 2
	}
	if m.DictionaryName == "user_inputs" {
		m.Bonus = 0
	} else {
		m.Bonus = 1
	}
	return m.BaseGuesses * uppercase * l33t * reversed
}

func uppercaseVariations(word string) float64 {
	if allLower(word) || strings.ToLower(word) == word {
		return 1
	}
	if startUpper(word) || endUpper(word) || allUpper(word) {
		return 2
	}

	upper, lower := 0, 0
	for _, r := range word {
		if unicode.IsUpper(r) {
			upper++
		}
		if unicode.IsLower(r) {
			lower++
		}
	}
	variations := 0.0
	min := upper
	if lower < min {
		min = lower
	}
	for i := 1; i < min; i++ {
		variations += NCk(upper+lower, i)
	}
	return variations
}

// allLower reports whether word contains no uppercase ASCII letters.
func allLower(word string) bool {
	for _, r := range word {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return true
}

// allUpper reports whether word contains no lowercase ASCII letters.
func allUpper(word string) bool {
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}

// startUpper matches ^[A-Z][^A-Z]+$: a single leading capital followed
// by at least one non-capital.
func startUpper(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 || runes[0] < 'A' || runes[0] > 'Z' {
		return false
	}
	for _, r := range runes[1:] {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return true
}

// endUpper matches ^[^A-Z]+[A-Z]$: at least one non-capital followed by
// a single trailing capital.
func endUpper(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 || runes[len(runes)-1] < 'A' || runes[len(runes)-1] > 'Z' {
		return false
	}
	for _, r := range runes[:len(runes)-1] {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return true
}

func l33tVariations(m *model.Match) float64 {
	if !m.L33t {
		return 1
	}
	variations := 1.0
	chars := strings.ToLower(m.Token)
	for subbed, unsubbed := range m.Sub {
		s, u := 0, 0
		for _, r := range chars {
			if r == subbed {
				s++
			}
			if r == unsubbed {
				u++
			}
		}
		if s == 0 || u == 0 {
			variations *= 2
			continue
		}
		p := s
		if u < p {
			p = u
		}
		possibilities := 0.0
		for i := 1; i < p; i++ {
			possibilities += NCk(u+s, i)
		}
		variations *= possibilities
	}
	return variations
}
