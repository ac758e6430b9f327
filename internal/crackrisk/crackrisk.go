// Package crackrisk turns a raw guess count into the numbers and
// human-readable sentences an end user actually cares about: how long
// each of four attack scenarios would take, and a single 0-4 score
// bucketed from the guess count.
package crackrisk

import (
	"fmt"
	"math"
)

// Scenario names an attack model: an online guess rate against a
// throttled or unthrottled endpoint, or an offline hash crack at a
// slow or fast rate.
type Scenario string

const (
	OnlineThrottling   Scenario = "online_throttling_100_per_hour"
	OnlineNoThrottling Scenario = "online_no_throttling_10_per_second"
	OfflineSlowHashing Scenario = "offline_slow_hashing_1e4_per_second"
	OfflineFastHashing Scenario = "offline_fast_hashing_1e10_per_second"
)

var scenarioRates = map[Scenario]float64{
	OnlineThrottling:   100.0 / 3600,
	OnlineNoThrottling: 10.0,
	OfflineSlowHashing: 1.0e4,
	OfflineFastHashing: 1.0e10,
}

// scenarioOrder fixes the order in which Estimate fills in the
// scenarios.
var scenarioOrder = []Scenario{OnlineThrottling, OnlineNoThrottling, OfflineSlowHashing, OfflineFastHashing}

// AttackTimes is the estimated crack time for guesses under each
// scenario, in both raw seconds and a human-readable rendering.
type AttackTimes struct {
	Seconds map[Scenario]float64
	Display map[Scenario]string
	Score   int
}

// Estimate computes AttackTimes for a given guess count.
func Estimate(guesses float64) AttackTimes {
	seconds := make(map[Scenario]float64, len(scenarioOrder))
	display := make(map[Scenario]string, len(scenarioOrder))
	for _, s := range scenarioOrder {
		secs := guesses / scenarioRates[s]
		seconds[s] = secs
		display[s] = DisplayTime(secs)
	}
	return AttackTimes{Seconds: seconds, Display: display, Score: GuessesToScore(guesses)}
}

// scoreDelta absorbs floating-point error at the score-band boundaries,
// so a guess count computed as 1000000.0001 due to accumulated rounding
// still falls into the band below 10^6.
const scoreDelta = 5

// GuessesToScore buckets a guess count into a 0 (too guessable) to 4
// (very unguessable) score.
func GuessesToScore(guesses float64) int {
	switch {
	case guesses < 1e3+scoreDelta:
		return 0
	case guesses < 1e6+scoreDelta:
		return 1
	case guesses < 1e8+scoreDelta:
		return 2
	case guesses < 1e10+scoreDelta:
		return 3
	default:
		return 4
	}
}

const (
	secondsPerMinute  = 60
	secondsPerHour    = secondsPerMinute * 60
	secondsPerDay     = secondsPerHour * 24
	secondsPerMonth   = secondsPerDay * 31
	secondsPerYear    = secondsPerMonth * 12
	secondsPerCentury = secondsPerYear * 100
)

// DisplayTime renders a crack time in seconds as a short, pluralized
// English phrase, picking the coarsest unit that keeps the number
// readable (e.g. "3 months" rather than "93 days").
func DisplayTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < secondsPerMinute:
		return pluralize(round(seconds), "second")
	case seconds < secondsPerHour:
		return pluralize(round(seconds/secondsPerMinute), "minute")
	case seconds < secondsPerDay:
		return pluralize(round(seconds/secondsPerHour), "hour")
	case seconds < secondsPerMonth:
		return pluralize(round(seconds/secondsPerDay), "day")
	case seconds < secondsPerYear:
		return pluralize(round(seconds/secondsPerMonth), "month")
	case seconds < secondsPerCentury:
		return pluralize(round(seconds/secondsPerYear), "year")
	default:
		return "centuries"
	}
}

func round(f float64) int64 {
	return int64(math.Round(f))
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
