package matching

import (
	"testing"

	"github.com/rafaelsanzio/guesscheck/internal/dictionaries"
	"github.com/rafaelsanzio/guesscheck/internal/model"
)

func hasKind(matches []model.Match, kind model.Kind) bool {
	for _, m := range matches {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

func TestOmnimatchEmptyPassword(t *testing.T) {
	if got := Omnimatch("", dictionaries.Builtin(), DefaultReferenceYear); got != nil {
		t.Errorf("Omnimatch(\"\") = %v, want nil", got)
	}
}

func TestOmnimatchFindsDictionaryWord(t *testing.T) {
	matches := Omnimatch("password", dictionaries.Builtin(), DefaultReferenceYear)
	if !hasKind(matches, model.Dictionary) {
		t.Error("expected a dictionary match for a common password")
	}
}

func TestOmnimatchFindsSpatialWalk(t *testing.T) {
	matches := Omnimatch("qwerty", dictionaries.Builtin(), DefaultReferenceYear)
	found := false
	for _, m := range matches {
		if m.Kind == model.Spatial && m.Graph == "qwerty" {
			found = true
		}
	}
	if !found {
		t.Error("expected a spatial qwerty match")
	}
}

func TestOmnimatchFindsSequence(t *testing.T) {
	matches := Omnimatch("xxxxabcdxxxx", dictionaries.Builtin(), DefaultReferenceYear)
	if !hasKind(matches, model.Sequence) {
		t.Error("expected a sequence match for 'abcd'")
	}
}

func TestOmnimatchFindsRecentYear(t *testing.T) {
	matches := Omnimatch("summer1991", dictionaries.Builtin(), DefaultReferenceYear)
	found := false
	for _, m := range matches {
		if m.Kind == model.Regex && m.RegexName == "recent_year" && m.Token == "1991" {
			found = true
		}
	}
	if !found {
		t.Error("expected a recent_year regex match for '1991'")
	}
}

func TestOmnimatchFindsDateWithSeparator(t *testing.T) {
	matches := Omnimatch("my-1/2/1990-pw", dictionaries.Builtin(), DefaultReferenceYear)
	found := false
	for _, m := range matches {
		if m.Kind == model.Date && m.Separator == "/" {
			found = true
		}
	}
	if !found {
		t.Error("expected a date match with '/' separator")
	}
}

func TestOmnimatchFindsRepeat(t *testing.T) {
	matches := Omnimatch("aaaaaaaa", dictionaries.Builtin(), DefaultReferenceYear)
	if !hasKind(matches, model.Repeat) {
		t.Error("expected a repeat match for 'aaaaaaaa'")
	}
}

func TestOmnimatchSortedByPosition(t *testing.T) {
	matches := Omnimatch("password1991qwerty", dictionaries.Builtin(), DefaultReferenceYear)
	for i := 1; i < len(matches); i++ {
		prev, cur := matches[i-1], matches[i]
		if prev.I > cur.I || (prev.I == cur.I && prev.J > cur.J) {
			t.Fatalf("matches not sorted: %v before %v", prev, cur)
		}
	}
}

func TestLeetMatchRequiresSubstitution(t *testing.T) {
	matches := leetMatch("p@ssw0rd", dictionaries.Builtin())
	if len(matches) == 0 {
		t.Fatal("expected at least one l33t match for 'p@ssw0rd'")
	}
	for _, m := range matches {
		if !m.L33t {
			t.Errorf("expected all leetMatch results to have L33t=true, got %v", m)
		}
	}
}

func TestReversedDictionaryMatchMapsCoordinates(t *testing.T) {
	dicts := dictionaries.Set{"english": dictionaries.BuildRanked([]string{"password"})}
	matches := reversedDictionaryMatch("drowssap", dicts)
	if len(matches) != 1 {
		t.Fatalf("expected 1 reversed match, got %d", len(matches))
	}
	m := matches[0]
	if m.I != 0 || m.J != 7 || m.Token != "drowssap" || !m.Reversed {
		t.Errorf("unexpected reversed match: %+v", m)
	}
}

func TestSpatialMatchIgnoresShortWalks(t *testing.T) {
	matches := spatialMatch("qw")
	for _, m := range matches {
		if len(m.Token) <= 2 {
			t.Errorf("expected short walks to be filtered, got %+v", m)
		}
	}
}

func TestSequenceMatchAscendingAndDescending(t *testing.T) {
	matches := sequenceMatch("abcdzyxw")
	if len(matches) == 0 {
		t.Fatal("expected sequence matches")
	}
	sawAscending, sawDescending := false, false
	for _, m := range matches {
		if m.Ascending {
			sawAscending = true
		} else {
			sawDescending = true
		}
	}
	if !sawAscending || !sawDescending {
		t.Errorf("expected both ascending and descending sequences, got %v", matches)
	}
}

func TestDateMatchNoSeparator(t *testing.T) {
	matches := dateMatch("19901231", DefaultReferenceYear)
	found := false
	for _, m := range matches {
		if m.Separator == "" && m.Year == 1990 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a no-separator date match with year 1990, got %v", matches)
	}
}

func TestRepeatMatchFindsBaseToken(t *testing.T) {
	matches := repeatMatch("abcabcabc", dictionaries.Builtin(), DefaultReferenceYear)
	if len(matches) != 1 {
		t.Fatalf("expected 1 repeat match, got %d: %v", len(matches), matches)
	}
	if matches[0].BaseToken != "abc" {
		t.Errorf("BaseToken = %q, want %q", matches[0].BaseToken, "abc")
	}
	if matches[0].RepeatCount != 3 {
		t.Errorf("RepeatCount = %v, want 3", matches[0].RepeatCount)
	}
}

func TestRepeatMatchSingleCharBase(t *testing.T) {
	matches := repeatMatch("aaaaa", dictionaries.Builtin(), DefaultReferenceYear)
	if len(matches) != 1 {
		t.Fatalf("expected 1 repeat match, got %d", len(matches))
	}
	if matches[0].BaseToken != "a" {
		t.Errorf("BaseToken = %q, want %q", matches[0].BaseToken, "a")
	}
	if matches[0].RepeatCount != 5 {
		t.Errorf("RepeatCount = %v, want 5", matches[0].RepeatCount)
	}
}

func TestMinimalPeriod(t *testing.T) {
	got := minimalPeriod([]rune("aaaaaa"))
	if string(got) != "a" {
		t.Errorf("minimalPeriod(aaaaaa) = %q, want %q", string(got), "a")
	}
	got2 := minimalPeriod([]rune("aabaab"))
	if string(got2) != "aab" {
		t.Errorf("minimalPeriod(aabaab) = %q, want %q", string(got2), "aab")
	}
}
