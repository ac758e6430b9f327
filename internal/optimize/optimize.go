// Package optimize implements the dynamic-programming search for the
// lowest-guesses non-overlapping sequence of matches covering a
// password, filling any gaps the matchers left uncovered with
// bruteforce matches.
package optimize

import (
	"math"

	"github.com/rafaelsanzio/guesscheck/internal/model"
	"github.com/rafaelsanzio/guesscheck/internal/scoring"
)

// minGuessesBeforeGrowingSequence is the per-extra-pattern length
// penalty D in the minimization function l! * Product(guesses) +
// D^(l-1): it approximates the guesses an attacker spends ruling out
// shorter sequences before trying a length-l one.
const minGuessesBeforeGrowingSequence = 10000

// Result is the outcome of searching a password's candidate matches for
// the sequence requiring the fewest guesses.
type Result struct {
	Password     string
	Guesses      float64
	GuessesLog10 float64
	Sequence     []model.Match
}

// MostGuessableMatchSequence finds, among every way of combining
// non-overlapping matches (plus bruteforce filler for any uncovered
// character), the one needing the fewest attacker guesses.
//
// This is a length-n, O(l_max * (n + m)) dynamic program for a
// length-n password with m candidate matches: optimal[k][l] holds the
// cheapest length-l sequence covering password[0:k+1].
func MostGuessableMatchSequence(password string, matches []model.Match, referenceYear int) Result {
	n := len(password)
	if n == 0 {
		return Result{Password: password, Guesses: 1, GuessesLog10: 0, Sequence: nil}
	}

	matchesByJ := make([][]model.Match, n)
	for _, m := range matches {
		matchesByJ[m.J] = append(matchesByJ[m.J], m)
	}

	o := newOptimalState(n)

	update := func(m model.Match, l int) {
		k := m.J
		pi := scoring.Estimate(password, &m, referenceYear)
		if l > 1 {
			pi *= o.pi[m.I-1][l-1]
		}
		g := factorial(l) * pi
		g += math.Pow(minGuessesBeforeGrowingSequence, float64(l-1))
		if g < o.g[k] {
			o.g[k] = g
			o.l[k] = l
			o.setM(k, l, m)
			o.setPi(k, l, pi)
		}
	}

	bruteforceUpdate := func(k int) {
		m := model.NewBruteforce(password, 0, k)
		update(m, 1)
		if k == 0 {
			return
		}
		for l, lastM := range o.m[k-1] {
			if lastM.Kind == model.Bruteforce {
				update(model.NewBruteforce(password, lastM.I, k), l)
			} else {
				update(model.NewBruteforce(password, k, k), l+1)
			}
		}
	}

	for k := 0; k < n; k++ {
		for _, m := range matchesByJ[k] {
			if m.I > 0 {
				for l := range o.m[m.I-1] {
					update(m, l+1)
				}
			} else {
				update(m, 1)
			}
		}
		bruteforceUpdate(k)
	}

	sequence := unwind(o, n)

	guesses := o.g[n-1]
	return Result{
		Password:     password,
		Guesses:      guesses,
		GuessesLog10: math.Log10(guesses),
		Sequence:     sequence,
	}
}

// optimalState holds the DP tables, keyed by prefix end k and sequence
// length l.
type optimalState struct {
	m  []map[int]model.Match
	pi []map[int]float64
	g  []float64
	l  []int
}

func newOptimalState(n int) *optimalState {
	o := &optimalState{
		m:  make([]map[int]model.Match, n),
		pi: make([]map[int]float64, n),
		g:  make([]float64, n),
		l:  make([]int, n),
	}
	for k := 0; k < n; k++ {
		o.m[k] = make(map[int]model.Match)
		o.pi[k] = make(map[int]float64)
		o.g[k] = math.Inf(1)
	}
	return o
}

func (o *optimalState) setM(k, l int, m model.Match) { o.m[k][l] = m }
func (o *optimalState) setPi(k, l int, pi float64)   { o.pi[k][l] = pi }

func unwind(o *optimalState, n int) []model.Match {
	var seq []model.Match
	k := n - 1
	l := o.l[k]
	for k >= 0 {
		m, ok := o.m[k][l]
		if !ok {
			break
		}
		seq = append([]model.Match{m}, seq...)
		k = m.I - 1
		l--
	}
	return seq
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
