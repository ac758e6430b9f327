package matching

import (
	"github.com/rafaelsanzio/guesscheck/internal/dictionaries"
	"github.com/rafaelsanzio/guesscheck/internal/model"
	"github.com/rafaelsanzio/guesscheck/internal/optimize"
	"github.com/rafaelsanzio/guesscheck/internal/scoring"
)

// maxRepeatDepth bounds how many times the repeat matcher will recurse
// into a repeated pattern's base token. Each recursion operates on a
// strictly shorter string (repeatCount >= 2 halves the length at
// worst), so recursion already terminates on its own within
// log2(len(password)) levels; this cap is a defensive backstop against
// pathological inputs rather than something real passwords reach.
const maxRepeatDepth = 8

// repeatMatch finds repeated substrings such as "aaa" or "abcabcabc".
//
// The reference implementation this is ported from expresses the search
// with backreferences: greedy (.+)\1+ and lazy (.+?)\1+ over the
// remaining password, comparing which produces the longer match at each
// position. Backreferences have no RE2-compatible equivalent (the
// regex engines available here are backtracking-free), so this scans
// for repeated spans directly: for a given start position, the greedy
// search tries the longest possible repeating unit first and the lazy
// search tries the shortest, each then extending as many full
// repetitions as fit.
func repeatMatch(password string, dicts dictionaries.Set, referenceYear int) []model.Match {
	return repeatMatchDepth(password, dicts, referenceYear, 0)
}

func repeatMatchDepth(password string, dicts dictionaries.Set, referenceYear int, depth int) []model.Match {
	runes := []rune(password)
	var matches []model.Match
	lastIndex := 0

	for lastIndex < len(runes) {
		i, gTotal, _, lTotal, lBase, found := findRepeatStart(runes, lastIndex)
		if !found {
			break
		}

		var token []rune
		var baseToken []rune
		var repeatCount float64

		if gTotal > lTotal {
			// greedy beats lazy: run an anchored search over the greedy
			// match to find the shortest string that tiles it exactly.
			token = runes[i : i+gTotal]
			baseToken = minimalPeriod(token)
		} else {
			token = runes[i : i+lTotal]
			baseToken = runes[i : i+lBase]
		}
		repeatCount = float64(len(token)) / float64(len(baseToken))

		baseStr := string(baseToken)
		var baseGuesses float64
		var baseSequence []model.Match
		if depth < maxRepeatDepth {
			baseResult := optimize.MostGuessableMatchSequence(baseStr, omnimatchDepth(baseStr, dicts, referenceYear, depth+1), referenceYear)
			baseGuesses = baseResult.Guesses
			baseSequence = baseResult.Sequence
		} else {
			bf := model.NewBruteforce(baseStr, 0, len(baseToken)-1)
			baseGuesses = scoring.Estimate(baseStr, &bf, referenceYear)
			baseSequence = []model.Match{bf}
		}

		j := i + len(token) - 1
		matches = append(matches, model.Match{
			Kind:        model.Repeat,
			I:           i,
			J:           j,
			Token:       string(token),
			BaseToken:   baseStr,
			BaseGuesses: baseGuesses,
			BaseMatches: baseSequence,
			RepeatCount: repeatCount,
			Guesses:     -1,
		})

		lastIndex = j + 1
	}

	return matches
}

// findRepeatStart finds the leftmost index at or after lastIndex where
// some substring repeats at least twice, returning both the greedy and
// lazy extents discovered there.
func findRepeatStart(s []rune, lastIndex int) (i, gTotal, gBase, lTotal, lBase int, found bool) {
	for start := lastIndex; start < len(s)-1; start++ {
		window := s[start:]
		if gt, gb, ok := greedyRepeat(window); ok {
			lt, lb, _ := lazyRepeat(window)
			return start, gt, gb, lt, lb, true
		}
	}
	return 0, 0, 0, 0, 0, false
}

// greedyRepeat tries the longest possible repeating unit first.
func greedyRepeat(s []rune) (total, base int, ok bool) {
	maxBase := len(s) / 2
	for k := maxBase; k >= 1; k-- {
		if reps := countReps(s, k); reps >= 2 {
			return reps * k, k, true
		}
	}
	return 0, 0, false
}

// lazyRepeat tries the shortest possible repeating unit first.
func lazyRepeat(s []rune) (total, base int, ok bool) {
	maxBase := len(s) / 2
	for k := 1; k <= maxBase; k++ {
		if reps := countReps(s, k); reps >= 2 {
			return reps * k, k, true
		}
	}
	return 0, 0, false
}

// countReps reports how many full, consecutive repetitions of s[0:k]
// appear starting at index 0 of s. It returns 0 if fewer than two.
func countReps(s []rune, k int) int {
	n := len(s)
	if 2*k > n {
		return 0
	}
	if !equalRunes(s[0:k], s[k:2*k]) {
		return 0
	}
	reps := 2
	for (reps+1)*k <= n && equalRunes(s[reps*k:(reps+1)*k], s[0:k]) {
		reps++
	}
	return reps
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// minimalPeriod returns the shortest prefix of s that, repeated, tiles
// s exactly. If s has no shorter tiling period, s itself is returned.
func minimalPeriod(s []rune) []rune {
	n := len(s)
	for k := 1; k <= n/2; k++ {
		if n%k != 0 {
			continue
		}
		if tiles(s, k) {
			return s[:k]
		}
	}
	return s
}

func tiles(s []rune, k int) bool {
	for i := k; i < len(s); i++ {
		if s[i] != s[i%k] {
			return false
		}
	}
	return true
}
