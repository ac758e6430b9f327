// Package guesscheck is a password-strength estimator. Given a candidate
// password and optional user-specific context strings (usernames, email
// fragments, names typed into a signup form), it returns a structured
// estimate of how many guesses an attacker would need to find it, attack
// time projections across a handful of cracking scenarios, a 0-4 score,
// and actionable feedback.
//
// # Usage
//
//	res := guesscheck.Estimate("Tr0ub4dour&3", []string{"alice", "alice@example.com"})
//	fmt.Println(res.Score)                              // 4
//	fmt.Println(res.CrackTimesDisplay["offline_slow_hashing_1e4_per_second"])
//	fmt.Println(res.Feedback.Warning)
//
// # Custom Configuration
//
//	cfg := guesscheck.DefaultConfig()
//	cfg.Dictionaries = []string{"passwords", "english"}
//	cfg.MaxSuggestions = 2
//	result, err := guesscheck.EstimateWithConfig("hunter2", nil, cfg)
//
// Unlike the estimator this library is modeled on, which installs a
// caller's context strings into a process-global dictionary, guesscheck
// threads user-supplied inputs through explicitly on every call: two
// goroutines calling Estimate concurrently with different userInputs
// never see each other's dictionary.
//
// guesscheck never logs, prints, or persists the password argument.
// Result structs carry only aggregate data plus the matched substrings
// needed to explain the score, exactly as much as the estimator itself
// needed to see to produce that score.
package guesscheck

import (
	"time"

	"github.com/rafaelsanzio/guesscheck/internal/crackrisk"
	"github.com/rafaelsanzio/guesscheck/internal/dictionaries"
	"github.com/rafaelsanzio/guesscheck/internal/feedback"
	"github.com/rafaelsanzio/guesscheck/internal/matching"
	"github.com/rafaelsanzio/guesscheck/internal/model"
	"github.com/rafaelsanzio/guesscheck/internal/optimize"
)

// Match is one recognized pattern within the estimated password,
// spanning password[I:J+1]. Kind names which matcher produced it
// ("dictionary", "spatial", "repeat", "sequence", "regex", "date", or
// "bruteforce" for the gaps no matcher covered); only the fields
// documented for that Kind are meaningful.
type Match struct {
	Kind  string `json:"pattern"`
	I     int    `json:"i"`
	J     int    `json:"j"`
	Token string `json:"token"`

	Guesses      float64 `json:"guesses"`
	GuessesLog10 float64 `json:"guesses_log10"`

	// Dictionary fields.
	MatchedWord    string `json:"matched_word,omitempty"`
	Rank           int    `json:"rank,omitempty"`
	DictionaryName string `json:"dictionary_name,omitempty"`
	L33t           bool   `json:"l33t,omitempty"`
	Reversed       bool   `json:"reversed,omitempty"`
	// Substitutions renders any l33t substitutions applied to reach
	// MatchedWord, e.g. "3 -> e, @ -> a". Empty when L33t is false.
	Substitutions string `json:"substitutions,omitempty"`

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

// Feedback is a warning sentence (empty when there's nothing notable to
// say) plus zero or more suggestions for improving the password.
type Feedback struct {
	Warning     string   `json:"warning,omitempty"`
	Suggestions []string `json:"suggestions"`
}

// Result holds the outcome of estimating a password's strength.
type Result struct {
	// Password is the input password, returned unmodified.
	Password string `json:"password"`

	// Guesses is the estimated number of guesses needed to find the
	// password using the cheapest winning combination of patterns the
	// matchers found (falling back to bruteforce for any gaps).
	Guesses      float64 `json:"guesses"`
	GuessesLog10 float64 `json:"guesses_log10"`

	// Sequence is the winning non-overlapping match sequence covering
	// the whole password, left to right.
	Sequence []Match `json:"sequence"`

	// CalcTime is the wall-clock duration of the Estimate call.
	CalcTime time.Duration `json:"calc_time"`

	// CrackTimesSeconds and CrackTimesDisplay give, for each named
	// attack scenario ("online_throttling_100_per_hour",
	// "online_no_throttling_10_per_second",
	// "offline_slow_hashing_1e4_per_second",
	// "offline_fast_hashing_1e10_per_second"), the estimated crack time
	// in seconds and as a human-readable phrase.
	CrackTimesSeconds map[string]float64 `json:"crack_times_seconds"`
	CrackTimesDisplay map[string]string  `json:"crack_times_display"`

	// Score is an integer 0 (too guessable) to 4 (very unguessable),
	// derived from Guesses by fixed guess-count thresholds (10^3, 10^6,
	// 10^8, 10^10).
	Score int `json:"score"`

	// Feedback carries a warning and suggestions for improving the
	// password. Both are empty when Score is strong (> 2).
	Feedback Feedback `json:"feedback"`
}

// Estimate evaluates password using the default configuration.
//
// userInputs are context strings specific to the user or application
// (username, email address, company name, names typed earlier in a
// signup form) that should be treated as especially easy to guess; pass
// nil if there are none. Estimate never errors, since DefaultConfig is
// always valid.
func Estimate(password string, userInputs []string) Result {
	result, _ := EstimateWithConfig(password, userInputs, DefaultConfig())
	return result
}

// EstimateWithConfig evaluates password using a custom configuration.
// It returns an error if the configuration is invalid.
func EstimateWithConfig(password string, userInputs []string, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	dicts := dictionaries.WithUserInputsSubset(cfg.Dictionaries, userInputs)
	matches := matching.Omnimatch(password, dicts, cfg.ReferenceYear)
	opt := optimize.MostGuessableMatchSequence(password, matches, cfg.ReferenceYear)

	attack := crackrisk.Estimate(opt.Guesses)
	fb := feedback.Generate(attack.Score, opt.Sequence)
	suggestions := fb.Suggestions
	if cfg.MaxSuggestions > 0 && len(suggestions) > cfg.MaxSuggestions {
		suggestions = suggestions[:cfg.MaxSuggestions]
	}

	crackSeconds := make(map[string]float64, len(attack.Seconds))
	for scenario, secs := range attack.Seconds {
		crackSeconds[string(scenario)] = secs
	}
	crackDisplay := make(map[string]string, len(attack.Display))
	for scenario, disp := range attack.Display {
		crackDisplay[string(scenario)] = disp
	}

	return Result{
		Password:          password,
		Guesses:           opt.Guesses,
		GuessesLog10:      opt.GuessesLog10,
		Sequence:          convertMatches(opt.Sequence),
		CalcTime:          time.Since(start),
		CrackTimesSeconds: crackSeconds,
		CrackTimesDisplay: crackDisplay,
		Score:             attack.Score,
		Feedback:          Feedback{Warning: fb.Warning, Suggestions: suggestions},
	}, nil
}

func convertMatches(ms []model.Match) []Match {
	if len(ms) == 0 {
		return nil
	}
	out := make([]Match, len(ms))
	for i, m := range ms {
		out[i] = convertMatch(m)
	}
	return out
}

func convertMatch(m model.Match) Match {
	return Match{
		Kind:           m.Kind.String(),
		I:              m.I,
		J:              m.J,
		Token:          m.Token,
		Guesses:        m.Guesses,
		GuessesLog10:   m.GuessesLog10,
		MatchedWord:    m.MatchedWord,
		Rank:           m.Rank,
		DictionaryName: m.DictionaryName,
		L33t:           m.L33t,
		Reversed:       m.Reversed,
		Substitutions:  m.SubDisplay(),
		Graph:          m.Graph,
		Turns:          m.Turns,
		ShiftedCount:   m.ShiftedCount,
		BaseToken:      m.BaseToken,
		BaseGuesses:    m.BaseGuesses,
		BaseMatches:    convertMatches(m.BaseMatches),
		RepeatCount:    m.RepeatCount,
		SequenceName:   m.SequenceName,
		SequenceSpace:  m.SequenceSpace,
		Ascending:      m.Ascending,
		RegexName:      m.RegexName,
		RegexMatch:     m.RegexMatch,
		Separator:      m.Separator,
		Year:           m.Year,
		Month:          m.Month,
		Day:            m.Day,
		HasFullYear:    m.HasFullYear,
	}
}
