// Package matching implements the pattern matchers zxcvbn-style
// password guessing relies on — dictionary, reversed-dictionary, leet,
// spatial, repeat, sequence, regex, and date — plus Omnimatch, which
// runs all of them and returns their combined, sorted output.
package matching

import (
	"sort"

	"github.com/rafaelsanzio/guesscheck/internal/dictionaries"
	"github.com/rafaelsanzio/guesscheck/internal/model"
)

// DefaultReferenceYear is the year date/year-based estimators anchor
// "recent" to when the caller has no Config override (mirrors
// python-zxcvbn's hardcoded REFERENCE_YEAR = 2016).
const DefaultReferenceYear = 2016

// Omnimatch runs every matcher against password and returns their
// combined results, stably sorted by (start index, end index).
//
// dicts carries the ranked dictionaries to search, including any
// per-call user_inputs dictionary: unlike the reference implementation
// this is ported from, which installs user inputs into a shared
// process-global dictionary map, dicts is passed explicitly so
// concurrent calls with different inputs never interfere with each
// other.
func Omnimatch(password string, dicts dictionaries.Set, referenceYear int) []model.Match {
	return omnimatchDepth(password, dicts, referenceYear, 0)
}

// omnimatchDepth is Omnimatch with an explicit repeat-recursion depth,
// so the repeat matcher can cap how deep it recurses into nested
// repeated patterns (see maxRepeatDepth in repeat.go) without Omnimatch
// itself needing a public depth parameter.
func omnimatchDepth(password string, dicts dictionaries.Set, referenceYear int, depth int) []model.Match {
	if len(password) == 0 {
		return nil
	}

	var matches []model.Match
	matches = append(matches, dictionaryMatch(password, dicts)...)
	matches = append(matches, reversedDictionaryMatch(password, dicts)...)
	matches = append(matches, leetMatch(password, dicts)...)
	matches = append(matches, spatialMatch(password)...)
	matches = append(matches, repeatMatchDepth(password, dicts, referenceYear, depth)...)
	matches = append(matches, sequenceMatch(password)...)
	matches = append(matches, regexMatch(password)...)
	matches = append(matches, dateMatch(password, referenceYear)...)

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].I != matches[b].I {
			return matches[a].I < matches[b].I
		}
		return matches[a].J < matches[b].J
	})
	return matches
}
