package matching

import "github.com/rafaelsanzio/guesscheck/internal/model"

const (
	dateMinYear = 1000
	dateMaxYear = 2050
)

// dateSplits lists, for each no-separator token length, every way to
// split it into three digit groups (the data is small and irregular
// enough per length that a lookup table reads far more clearly than a
// general formula).
var dateSplits = map[int][][2]int{
	4: {{1, 2}, {2, 3}},
	5: {{1, 3}, {2, 3}},
	6: {{1, 2}, {2, 4}, {4, 5}},
	7: {{1, 3}, {2, 3}, {4, 5}, {4, 6}},
	8: {{2, 4}, {4, 6}},
}

// isDateSeparator reports whether r is a separator character a
// date-with-separator token is allowed to use, matching the character
// class [\s/\\_.-].
func isDateSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v', '/', '\\', '_', '.', '-':
		return true
	}
	return false
}

type dmy struct{ day, month, year int }

// dateMatch finds date-shaped substrings: a day/month/year triple,
// optionally joined by a repeated separator character, with or without
// four-digit years. The separator must be the same character on both
// sides, which in the reference implementation this is ported from is
// expressed as a regex backreference; since no available regex engine
// here supports backreferences, separator matching is done by direct
// character comparison instead.
func dateMatch(password string, referenceYear int) []model.Match {
	runes := []rune(password)
	var matches []model.Match

	matches = append(matches, noSeparatorDateMatches(runes, referenceYear)...)
	matches = append(matches, separatorDateMatches(runes)...)

	return filterSubmatches(matches)
}

func noSeparatorDateMatches(runes []rune, referenceYear int) []model.Match {
	var matches []model.Match
	n := len(runes)
	for i := 0; i <= n-4; i++ {
		maxJ := i + 9
		if maxJ > n+1 {
			maxJ = n + 1
		}
		var token []rune
		for j := i + 4; j < maxJ; j++ {
			var candidates []dmy
			token = runes[i:j]
			if !allDigitsRunes(token) {
				continue
			}
			splits, ok := dateSplits[len(token)]
			if !ok {
				continue
			}
			for _, sp := range splits {
				k, l := sp[0], sp[1]
				d1 := atoiRunes(token[:k])
				d2 := atoiRunes(token[k:l])
				d3 := atoiRunes(token[l:])
				if candidate, ok := mapIntsToDMY(d1, d2, d3); ok {
					candidates = append(candidates, candidate)
				}
			}
			if len(candidates) == 0 {
				continue
			}
			best := candidates[0]
			minDist := abs(best.year - referenceYear)
			for _, c := range candidates[1:] {
				if d := abs(c.year - referenceYear); d < minDist {
					best, minDist = c, d
				}
			}
			matches = append(matches, model.Match{
				Kind:        model.Date,
				I:           i,
				J:           j - 1,
				Token:       string(token),
				Separator:   "",
				Year:        best.year,
				Month:       best.month,
				Day:         best.day,
				HasFullYear: len(token) >= 4 && hasFourDigitYear(token, best.year),
				Guesses:     -1,
			})
		}
	}
	return matches
}

func separatorDateMatches(runes []rune) []model.Match {
	var matches []model.Match
	n := len(runes)
	for i := 0; i <= n-6; i++ {
		maxJ := i + 11
		if maxJ > n+1 {
			maxJ = n + 1
		}
		for j := i + 6; j < maxJ; j++ {
			token := runes[i:j]
			dmyVal, sep, ok := matchSeparatorDate(token)
			if !ok {
				continue
			}
			matches = append(matches, model.Match{
				Kind:        model.Date,
				I:           i,
				J:           j - 1,
				Token:       string(token),
				Separator:   sep,
				Year:        dmyVal.year,
				Month:       dmyVal.month,
				Day:         dmyVal.day,
				HasFullYear: hasFourDigitYear(token, dmyVal.year),
				Guesses:     -1,
			})
		}
	}
	return matches
}

// matchSeparatorDate implements ^(\d{1,4})(SEP)(\d{1,2})\2(\d{1,4})$
// without backreferences: the separator is found by direct character
// comparison on both sides instead of a regex group reference.
func matchSeparatorDate(token []rune) (dmy, string, bool) {
	n := len(token)
	for d1Len := 1; d1Len <= 4 && d1Len < n; d1Len++ {
		sepIdx := d1Len
		if sepIdx >= n {
			break
		}
		sepChar := token[sepIdx]
		if !isDateSeparator(sepChar) {
			continue
		}
		for d2Len := 1; d2Len <= 2; d2Len++ {
			d2Start := sepIdx + 1
			d2End := d2Start + d2Len
			if d2End >= n {
				continue
			}
			if token[d2End] != sepChar {
				continue
			}
			d3Start := d2End + 1
			d3 := token[d3Start:]
			if len(d3) < 1 || len(d3) > 4 {
				continue
			}
			if d3Start+len(d3) != n {
				continue
			}
			d1 := token[:d1Len]
			d2 := token[d2Start:d2End]
			if !allDigitsRunes(d1) || !allDigitsRunes(d2) || !allDigitsRunes(d3) {
				continue
			}
			if candidate, ok := mapIntsToDMY(atoiRunes(d1), atoiRunes(d2), atoiRunes(d3)); ok {
				return candidate, string(sepChar), true
			}
		}
	}
	return dmy{}, "", false
}

func hasFourDigitYear(token []rune, year int) bool {
	target := []rune(itoa(year))
	if len(target) != 4 {
		return false
	}
	for i := 0; i+4 <= len(token); i++ {
		if string(token[i:i+4]) == string(target) {
			return true
		}
	}
	return false
}

func mapIntsToDMY(a, b, c int) (dmy, bool) {
	if b > 31 || b <= 0 {
		return dmy{}, false
	}
	ints := [3]int{a, b, c}
	over12, over31, under1 := 0, 0, 0
	for _, v := range ints {
		if (v > 99 && v < dateMinYear) || v > dateMaxYear {
			return dmy{}, false
		}
		if v > 31 {
			over31++
		}
		if v > 12 {
			over12++
		}
		if v <= 0 {
			under1++
		}
	}
	if over31 >= 2 || over12 == 3 || under1 >= 2 {
		return dmy{}, false
	}

	type split struct {
		year int
		rest [2]int
	}
	splits := []split{
		{ints[2], [2]int{ints[0], ints[1]}}, // year last
		{ints[0], [2]int{ints[1], ints[2]}}, // year first
	}

	for _, s := range splits {
		if s.year >= dateMinYear && s.year <= dateMaxYear {
			if day, month, ok := mapIntsToDM(s.rest[0], s.rest[1]); ok {
				return dmy{day: day, month: month, year: s.year}, true
			}
			return dmy{}, false
		}
	}

	for _, s := range splits {
		if day, month, ok := mapIntsToDM(s.rest[0], s.rest[1]); ok {
			return dmy{day: day, month: month, year: twoToFourDigitYear(s.year)}, true
		}
	}
	return dmy{}, false
}

func mapIntsToDM(a, b int) (day, month int, ok bool) {
	if a >= 1 && a <= 31 && b >= 1 && b <= 12 {
		return a, b, true
	}
	if b >= 1 && b <= 31 && a >= 1 && a <= 12 {
		return b, a, true
	}
	return 0, 0, false
}

func twoToFourDigitYear(year int) int {
	if year > 99 {
		return year
	}
	if year > 50 {
		return year + 1900
	}
	return year + 2000
}

func filterSubmatches(matches []model.Match) []model.Match {
	var out []model.Match
	for _, m := range matches {
		submatch := false
		for _, other := range matches {
			if other.I == m.I && other.J == m.J {
				continue
			}
			if other.I <= m.I && other.J >= m.J {
				submatch = true
				break
			}
		}
		if !submatch {
			out = append(out, m)
		}
	}
	return out
}

func allDigitsRunes(s []rune) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoiRunes(s []rune) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
