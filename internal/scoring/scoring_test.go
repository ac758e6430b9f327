package scoring

import (
	"math"
	"testing"

	"github.com/rafaelsanzio/guesscheck/internal/model"
)

func TestNCk(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{10, 3, 120},
		{3, 5, 0},
	}
	for _, tt := range tests {
		got := NCk(tt.n, tt.k)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NCk(%d, %d) = %v, want %v", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestEstimateCaching(t *testing.T) {
	m := model.NewBruteforce("abc", 0, 2)
	first := Estimate("abc", &m, DefaultReferenceYear)
	m.Token = "xyz" // mutate after caching; Estimate must not recompute
	second := Estimate("abc", &m, DefaultReferenceYear)
	if first != second {
		t.Errorf("Estimate recomputed after caching: %v != %v", first, second)
	}
}

func TestBruteforceGuessesMinimum(t *testing.T) {
	m := model.NewBruteforce("a", 0, 0)
	got := Estimate("a", &m, DefaultReferenceYear)
	if got < minSubmatchGuessesSingleChar+1 {
		t.Errorf("single-char bruteforce guesses = %v, want >= %d", got, minSubmatchGuessesSingleChar+1)
	}
}

func TestDictionaryGuessesUserInputsNoBonus(t *testing.T) {
	m := model.Match{Kind: model.Dictionary, I: 0, J: 4, Token: "alice", Rank: 1, DictionaryName: "user_inputs", Guesses: -1}
	got := Estimate("alice", &m, DefaultReferenceYear)
	if got != 1 {
		t.Errorf("user_inputs dictionary guesses = %v, want 1 (no bonus, rank 1, no variations)", got)
	}
}

func TestDictionaryGuessesBuiltinBonus(t *testing.T) {
	m := model.Match{Kind: model.Dictionary, I: 0, J: 4, Token: "alice", Rank: 1, DictionaryName: "english", Guesses: -1}
	got := Estimate("alice", &m, DefaultReferenceYear)
	if got != 2 {
		t.Errorf("english dictionary guesses = %v, want 2 (rank 1 + bonus 1)", got)
	}
}

func TestUppercaseVariationsAllLower(t *testing.T) {
	if v := uppercaseVariations("hello"); v != 1 {
		t.Errorf("uppercaseVariations(hello) = %v, want 1", v)
	}
}

func TestUppercaseVariationsStartUpper(t *testing.T) {
	if v := uppercaseVariations("Hello"); v != 2 {
		t.Errorf("uppercaseVariations(Hello) = %v, want 2", v)
	}
}

func TestUppercaseVariationsAllUpper(t *testing.T) {
	if v := uppercaseVariations("HELLO"); v != 2 {
		t.Errorf("uppercaseVariations(HELLO) = %v, want 2", v)
	}
}

func TestSequenceGuessesAscendingVsDescending(t *testing.T) {
	asc := model.Match{Kind: model.Sequence, Token: "abc", Ascending: true, Guesses: -1}
	desc := model.Match{Kind: model.Sequence, Token: "zyx", Ascending: false, Guesses: -1}
	ascG := Estimate("abc", &asc, DefaultReferenceYear)
	descG := Estimate("zyx", &desc, DefaultReferenceYear)
	if descG != ascG*2 {
		t.Errorf("descending guesses = %v, want 2x ascending (%v)", descG, ascG)
	}
}

func TestRegexGuessesRecentYear(t *testing.T) {
	m := model.Match{Kind: model.Regex, Token: "2016", RegexName: "recent_year", RegexMatch: []string{"2016"}, Guesses: -1}
	got := Estimate("2016", &m, DefaultReferenceYear)
	if got != minYearSpace {
		t.Errorf("regex guesses for reference year = %v, want %v (minimum year space)", got, float64(minYearSpace))
	}
}

func TestDateGuessesSeparatorQuadruples(t *testing.T) {
	plain := model.Match{Kind: model.Date, Token: "1991", Year: 1991, Guesses: -1}
	withSep := model.Match{Kind: model.Date, Token: "1/1/91", Year: 1991, Separator: "/", Guesses: -1}
	plainG := Estimate("1991", &plain, DefaultReferenceYear)
	withSepG := Estimate("1/1/91", &withSep, DefaultReferenceYear)
	if withSepG != plainG*4 {
		t.Errorf("separator date guesses = %v, want 4x plain (%v)", withSepG, plainG)
	}
}
