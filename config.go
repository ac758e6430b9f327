package guesscheck

import (
	"fmt"

	"github.com/rafaelsanzio/guesscheck/internal/scoring"
)

// Config holds configuration options for password strength estimation.
//
// Use [DefaultConfig] to obtain a Config with the estimator's native
// defaults, then override individual fields:
//
//	cfg := guesscheck.DefaultConfig()
//	cfg.MaxSuggestions = 2
//	result := guesscheck.EstimateWithConfig("Tr0ub4dour&3", nil, cfg)
type Config struct {
	// Dictionaries restricts which built-in word lists the dictionary
	// and reversed-dictionary matchers search: any of "passwords",
	// "english", "male_names", "female_names", "surnames". Nil or empty
	// means every built-in dictionary is installed.
	Dictionaries []string

	// ReferenceYear anchors "closeness to the present" for the date and
	// recent_year regex guess estimators (default: 2016, matching the
	// estimator this library is modeled on). Passwords containing a
	// year close to ReferenceYear are assumed easier to guess than ones
	// containing a distant year.
	ReferenceYear int

	// MaxSuggestions caps the number of suggestion strings returned in
	// Result.Feedback.Suggestions. Zero means no limit (default: 0).
	MaxSuggestions int
}

// DefaultConfig returns the configuration Estimate uses: every built-in
// dictionary installed, ReferenceYear 2016, and no suggestion cap.
func DefaultConfig() Config {
	return Config{
		ReferenceYear: scoring.DefaultReferenceYear,
	}
}

// Validate checks the configuration for invalid values and returns an
// error describing the first problem found.
//
// Rules:
//   - ReferenceYear must be > 0
//   - MaxSuggestions must be >= 0
//   - every name in Dictionaries must be a known built-in dictionary
func (c Config) Validate() error {
	if c.ReferenceYear <= 0 {
		return fmt.Errorf("guesscheck: ReferenceYear must be > 0, got %d", c.ReferenceYear)
	}
	if c.MaxSuggestions < 0 {
		return fmt.Errorf("guesscheck: MaxSuggestions must be >= 0, got %d", c.MaxSuggestions)
	}
	for _, name := range c.Dictionaries {
		if !knownDictionaryNames[name] {
			return fmt.Errorf("guesscheck: unknown dictionary name %q", name)
		}
	}
	return nil
}

var knownDictionaryNames = map[string]bool{
	"passwords":    true,
	"english":      true,
	"male_names":   true,
	"female_names": true,
	"surnames":     true,
}
