package optimize

import (
	"testing"

	"github.com/rafaelsanzio/guesscheck/internal/model"
	"github.com/rafaelsanzio/guesscheck/internal/scoring"
)

func TestEmptyPassword(t *testing.T) {
	res := MostGuessableMatchSequence("", nil, scoring.DefaultReferenceYear)
	if res.Guesses != 1 {
		t.Errorf("empty password guesses = %v, want 1", res.Guesses)
	}
	if len(res.Sequence) != 0 {
		t.Errorf("empty password sequence = %v, want empty", res.Sequence)
	}
}

func TestNoMatchesFallsBackToBruteforce(t *testing.T) {
	res := MostGuessableMatchSequence("xqz", nil, scoring.DefaultReferenceYear)
	if len(res.Sequence) == 0 {
		t.Fatal("expected a bruteforce-filled sequence")
	}
	for _, m := range res.Sequence {
		if m.Kind != model.Bruteforce {
			t.Errorf("expected only bruteforce matches, got %v", m.Kind)
		}
	}
	total := ""
	for _, m := range res.Sequence {
		total += m.Token
	}
	if total != "xqz" {
		t.Errorf("sequence tokens = %q, want full password coverage", total)
	}
}

func TestSingleFullCoverageMatchWins(t *testing.T) {
	full := model.Match{Kind: model.Dictionary, I: 0, J: 5, Token: "abcdef", Rank: 1, DictionaryName: "english", Guesses: -1}
	res := MostGuessableMatchSequence("abcdef", []model.Match{full}, scoring.DefaultReferenceYear)
	if len(res.Sequence) != 1 {
		t.Fatalf("expected single-match sequence, got %d matches", len(res.Sequence))
	}
	if res.Sequence[0].Kind != model.Dictionary {
		t.Errorf("expected the dictionary match to win over bruteforce filler, got %v", res.Sequence[0].Kind)
	}
}

func TestSequenceIsNonOverlappingAndOrdered(t *testing.T) {
	a := model.Match{Kind: model.Dictionary, I: 0, J: 2, Token: "abc", Rank: 1, DictionaryName: "english", Guesses: -1}
	b := model.Match{Kind: model.Dictionary, I: 3, J: 5, Token: "def", Rank: 1, DictionaryName: "english", Guesses: -1}
	res := MostGuessableMatchSequence("abcdef", []model.Match{a, b}, scoring.DefaultReferenceYear)
	lastJ := -1
	for _, m := range res.Sequence {
		if m.I <= lastJ {
			t.Errorf("sequence overlaps: match %v starts at %d, previous ended at %d", m, m.I, lastJ)
		}
		lastJ = m.J
	}
}
