// Package feedback turns the winning match sequence from a password
// estimate into a short warning and a list of actionable suggestions,
// mirroring the advice zxcvbn-style estimators are known for.
package feedback

import "github.com/rafaelsanzio/guesscheck/internal/model"

// Feedback is a warning sentence (empty when there's nothing notable to
// say) plus zero or more suggestions for improving the password.
type Feedback struct {
	Warning     string
	Suggestions []string
}

var defaultFeedback = Feedback{
	Suggestions: []string{
		"Use a few words, avoid common phrases.",
		"No need for symbols, digits, or uppercase letters.",
	},
}

// Generate builds feedback for a password given its winning match
// sequence and overall score. An empty sequence (only the empty password
// produces one, because the sequence optimizer fills every gap with
// bruteforce matches) falls back to the generic default; a strong score
// (> 2) suppresses feedback entirely.
func Generate(score int, sequence []model.Match) Feedback {
	if len(sequence) == 0 {
		return defaultFeedback
	}
	if score > 2 {
		return Feedback{}
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if len(m.Token) > len(longest.Token) {
			longest = m
		}
	}

	fb, ok := matchFeedback(longest, len(sequence) == 1)
	if !ok {
		return Feedback{Suggestions: []string{"Add another word or two. Uncommon words are better."}}
	}
	return fb
}

func matchFeedback(m model.Match, isSoleMatch bool) (Feedback, bool) {
	switch m.Kind {
	case model.Bruteforce:
		return Feedback{}, false
	case model.Dictionary:
		return dictionaryFeedback(m, isSoleMatch), true
	case model.Spatial:
		return spatialFeedback(m), true
	case model.Repeat:
		return repeatFeedback(m), true
	case model.Sequence:
		return Feedback{
			Warning:     "Sequences like abc or 6543 are easy to guess.",
			Suggestions: []string{"Avoid sequences."},
		}, true
	case model.Regex:
		return regexFeedback(m)
	case model.Date:
		return Feedback{
			Warning:     "Dates are often easy to guess.",
			Suggestions: []string{"Avoid dates and years that are associated with you."},
		}, true
	default:
		return Feedback{}, false
	}
}

func spatialFeedback(m model.Match) Feedback {
	if m.Turns == 1 {
		return Feedback{
			Warning:     "Straight rows of keys are easy to guess.",
			Suggestions: []string{"Use a longer keyboard pattern with more turns."},
		}
	}
	return Feedback{
		Warning:     "Short keyboard patterns are easy to guess.",
		Suggestions: []string{"Use a longer keyboard pattern with more turns."},
	}
}

func repeatFeedback(m model.Match) Feedback {
	if len([]rune(m.BaseToken)) == 1 {
		return Feedback{
			Warning:     `Repeats like "aaa" are easy to guess.`,
			Suggestions: []string{"Avoid repeated words and characters."},
		}
	}
	return Feedback{
		Warning:     `Repeats like "abcabcabc" are only slightly harder to guess than "abc"`,
		Suggestions: []string{"Avoid repeated words and characters."},
	}
}

func regexFeedback(m model.Match) (Feedback, bool) {
	if m.RegexName != "recent_year" {
		return Feedback{}, false
	}
	return Feedback{
		Warning: "Recent years are easy to guess.",
		Suggestions: []string{
			"Avoid recent years.",
			"Avoid years that are associated with you.",
		},
	}, true
}

func dictionaryFeedback(m model.Match, isSoleMatch bool) Feedback {
	var warning string
	var suggestions []string

	switch m.DictionaryName {
	case "passwords":
		if isSoleMatch && !m.L33t && !m.Reversed {
			switch {
			case m.Rank <= 10:
				warning = "This is a top-10 common password."
			case m.Rank <= 100:
				warning = "This is a top-100 common password."
			default:
				warning = "This is a very common password."
			}
		} else {
			warning = "This is similar to a commonly used password."
		}
	case "english":
		if isSoleMatch {
			warning = "A word by itself is easy to guess."
		}
	case "surnames", "male_names", "female_names":
		if isSoleMatch {
			warning = "Names and surnames by themselves are easy to guess."
		} else {
			warning = "Common names and surnames are easy to guess."
		}
	}

	word := m.Token
	switch {
	case startUpper(word):
		suggestions = append(suggestions, "Capitalization doesn't help very much.")
	case allUpper(word):
		suggestions = append(suggestions, "All-uppercase is almost as easy to guess as all-lowercase.")
	}
	if m.Reversed && len([]rune(m.Token)) >= 4 {
		suggestions = append(suggestions, "Reversed words aren't much harder to guess.")
	}
	if m.L33t {
		suggestions = append(suggestions, "Predictable substitutions like '@' instead of 'a' don't help very much.")
	}

	return Feedback{Warning: warning, Suggestions: suggestions}
}

// startUpper matches ^[A-Z][^A-Z]+$.
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

// allUpper matches ^[^a-z]+$.
func allUpper(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			return false
		}
	}
	return true
}
