package matching

import (
	"strings"

	"github.com/coregx/coregex"

	"github.com/rafaelsanzio/guesscheck/internal/model"
)

// recentYearPattern has no backreferences, so unlike the repeat and
// date matchers it maps directly onto coregex's RE2-style engine.
var recentYearPattern = coregex.MustCompile(`19\d\d|200\d|201\d`)

// regexMatch finds substrings matching a small set of named regular
// expressions. Only recent_year is registered today, but the matcher is
// written to scale to more regex_name entries without restructuring.
func regexMatch(password string) []model.Match {
	var matches []model.Match
	cursor := 0
	for _, token := range recentYearPattern.FindAllString(password, -1) {
		offset := strings.Index(password[cursor:], token)
		if offset == -1 {
			continue
		}
		start := cursor + offset
		end := start + len(token)
		matches = append(matches, model.Match{
			Kind:       model.Regex,
			I:          start,
			J:          end - 1,
			Token:      token,
			RegexName:  "recent_year",
			RegexMatch: []string{token},
			Guesses:    -1,
		})
		cursor = end
	}
	return matches
}
