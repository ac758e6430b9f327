// Package leet provides the leetspeak substitution table and the
// subset-enumeration machinery the dictionary matcher uses to recognize
// passwords like "p@ssw0rd" as variants of "password".
//
// Unlike a simple one-substitute-per-letter normalizer, password guessing
// needs every *possible* substitution map a password could have used, so
// the dictionary matcher can try each one and report which subset was
// actually in play for a given match.
package leet

import "sort"

// Table maps a letter to every character commonly used to visually
// replace it. Order within a slice does not matter; Table is never
// mutated after init.
var Table = map[rune][]rune{
	'a': {'4', '@'},
	'b': {'8'},
	'c': {'(', '{', '[', '<'},
	'e': {'3'},
	'g': {'6', '9'},
	'i': {'1', '!', '|'},
	'l': {'1', '|', '7'},
	'o': {'0'},
	's': {'$', '5'},
	't': {'+', '7'},
	'x': {'%'},
	'z': {'2'},
}

// Sub is one entry of a substitution map: Subbed is the character that
// appears in the password, Letter is the alphabetic letter it stands in
// for.
type Sub struct {
	Subbed rune
	Letter rune
}

// SubMap is a substitution map, keyed by the substitute character that
// appears in the password.
type SubMap map[rune]rune

// RelevantSubtable returns the subset of Table containing only the
// substitute characters that actually occur somewhere in password. A
// letter with no relevant substitutes is omitted entirely.
func RelevantSubtable(password string) map[rune][]rune {
	present := make(map[rune]bool)
	for _, r := range password {
		present[r] = true
	}

	filtered := make(map[rune][]rune)
	for letter, subs := range Table {
		var relevant []rune
		for _, s := range subs {
			if present[s] {
				relevant = append(relevant, s)
			}
		}
		if len(relevant) > 0 {
			filtered[letter] = relevant
		}
	}
	return filtered
}

// EnumerateSubs returns every non-empty substitution map obtainable from
// table: for each letter with relevant substitutes, a map may omit the
// letter or bind it to exactly one of its substitutes. Results are
// deduplicated by their sorted (subbed, letter) content, so a substitute
// character relevant to more than one letter never yields two maps that
// differ only in construction order.
func EnumerateSubs(table map[rune][]rune) []SubMap {
	var subs [][]Sub
	subs = append(subs, nil) // seed with the empty map

	letters := make([]rune, 0, len(table))
	for letter := range table {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	for _, letter := range letters {
		chars := append([]rune(nil), table[letter]...)
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

		var next [][]Sub
		for _, partial := range subs {
			for _, subbed := range chars {
				dupIndex := -1
				for i, s := range partial {
					if s.Subbed == subbed {
						dupIndex = i
						break
					}
				}
				if dupIndex == -1 {
					extended := append(append([]Sub(nil), partial...), Sub{Subbed: subbed, Letter: letter})
					next = append(next, extended)
				} else {
					// subbed is already bound to a different letter in
					// this partial map: keep that branch, and fork one
					// that rebinds it to the current letter instead.
					alt := append([]Sub(nil), partial[:dupIndex]...)
					alt = append(alt, partial[dupIndex+1:]...)
					alt = append(alt, Sub{Subbed: subbed, Letter: letter})
					next = append(next, alt)
				}
			}
		}
		subs = dedupSubs(append(subs, next...))
	}

	out := make([]SubMap, 0, len(subs))
	for _, s := range subs {
		if len(s) == 0 {
			continue
		}
		m := make(SubMap, len(s))
		for _, e := range s {
			m[e.Subbed] = e.Letter
		}
		out = append(out, m)
	}
	return out
}

func dedupSubs(subs [][]Sub) [][]Sub {
	seen := make(map[string]bool, len(subs))
	var out [][]Sub
	for _, s := range subs {
		key := subKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func subKey(s []Sub) string {
	sorted := append([]Sub(nil), s...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Subbed != sorted[j].Subbed {
			return sorted[i].Subbed < sorted[j].Subbed
		}
		return sorted[i].Letter < sorted[j].Letter
	})
	buf := make([]rune, 0, len(sorted)*2)
	for _, e := range sorted {
		buf = append(buf, e.Subbed, e.Letter)
	}
	return string(buf)
}

// Translate applies sub to s, replacing every occurrence of a substitute
// character with the letter it stands in for. Characters not present in
// sub pass through unchanged.
func Translate(s string, sub SubMap) string {
	if len(sub) == 0 {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if letter, ok := sub[r]; ok {
			out = append(out, letter)
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// ChangedSubset returns the entries of sub sorted by substitute
// character, suitable for reporting which characters were treated as
// substitutions in a particular match.
func ChangedSubset(sub SubMap) []Sub {
	out := make([]Sub, 0, len(sub))
	for subbed, letter := range sub {
		out = append(out, Sub{Subbed: subbed, Letter: letter})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subbed != out[j].Subbed {
			return out[i].Subbed < out[j].Subbed
		}
		return out[i].Letter < out[j].Letter
	})
	return out
}
