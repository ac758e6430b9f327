package matching

import "github.com/rafaelsanzio/guesscheck/internal/model"

// maxSequenceDelta bounds how far apart two adjacent sequence members
// may be in codepoint value: beyond this, "abcdb975zy" style jumps are
// no longer considered part of the same sequence.
const maxSequenceDelta = 5

// sequenceMatch finds runs of characters with a constant codepoint
// delta, such as "abcd" (delta +1) or "9753" (delta -2). It also
// recognizes some non-Latin alphabets by codepoint, since the same
// constant-delta logic applies there too.
func sequenceMatch(password string) []model.Match {
	runes := []rune(password)
	if len(runes) == 1 {
		return nil
	}

	var result []model.Match
	update := func(i, j, delta int) {
		if !(j-i > 1 || abs(delta) == 1) {
			return
		}
		if delta == 0 || abs(delta) > maxSequenceDelta {
			return
		}
		token := runes[i : j+1]
		name, space := classifySequence(token)
		result = append(result, model.Match{
			Kind:          model.Sequence,
			I:             i,
			J:             j,
			Token:         string(token),
			SequenceName:  name,
			SequenceSpace: space,
			Ascending:     delta > 0,
			Guesses:       -1,
		})
	}

	i := 0
	lastDelta := 0
	deltaSet := false
	for k := 1; k < len(runes); k++ {
		delta := int(runes[k]) - int(runes[k-1])
		if !deltaSet {
			lastDelta = delta
			deltaSet = true
		}
		if delta == lastDelta {
			continue
		}
		j := k - 1
		update(i, j, lastDelta)
		i = j
		lastDelta = delta
	}
	update(i, len(runes)-1, lastDelta)
	return result
}

func classifySequence(token []rune) (name string, space int) {
	allIn := func(lo, hi rune) bool {
		for _, r := range token {
			if r < lo || r > hi {
				return false
			}
		}
		return true
	}
	switch {
	case allIn('a', 'z'):
		return "lower", 26
	case allIn('A', 'Z'):
		return "upper", 26
	case allIn('0', '9'):
		return "digits", 10
	default:
		return "unicode", 26
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
