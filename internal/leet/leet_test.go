package leet

import (
	"sort"
	"testing"
)

func TestRelevantSubtable(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     map[rune][]rune
	}{
		{"no leet chars", "hello", map[rune][]rune{}},
		{"single sub", "p@ss", map[rune][]rune{'a': {'@'}}},
		{"at sign only relevant for a", "@", map[rune][]rune{'a': {'@'}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelevantSubtable(tt.password)
			for letter, subs := range tt.want {
				gotSubs, ok := got[letter]
				if !ok {
					t.Fatalf("missing letter %q in subtable", letter)
				}
				sort.Slice(gotSubs, func(i, j int) bool { return gotSubs[i] < gotSubs[j] })
				sort.Slice(subs, func(i, j int) bool { return subs[i] < subs[j] })
				if string(gotSubs) != string(subs) {
					t.Errorf("letter %q: got %q, want %q", letter, string(gotSubs), string(subs))
				}
			}
			if len(got) != len(tt.want) {
				t.Errorf("len(got) = %d, want %d", len(got), len(tt.want))
			}
		})
	}
}

func TestEnumerateSubsEmpty(t *testing.T) {
	subs := EnumerateSubs(map[rune][]rune{})
	if len(subs) != 0 {
		t.Errorf("EnumerateSubs(empty) = %d maps, want 0", len(subs))
	}
}

func TestEnumerateSubsSingleLetter(t *testing.T) {
	table := map[rune][]rune{'a': {'4', '@'}}
	subs := EnumerateSubs(table)
	if len(subs) != 2 {
		t.Fatalf("EnumerateSubs(single letter, 2 subs) = %d maps, want 2", len(subs))
	}
	for _, m := range subs {
		if len(m) != 1 {
			t.Errorf("expected single-entry map, got %v", m)
		}
	}
}

func TestEnumerateSubsSharedChar(t *testing.T) {
	// '1' is a valid substitute for both 'i' and 'l' — a map can bind it
	// to one or the other, but never both.
	table := map[rune][]rune{'i': {'1'}, 'l': {'1'}}
	subs := EnumerateSubs(table)
	for _, m := range subs {
		count := 0
		for _, letter := range m {
			if letter == 'i' || letter == 'l' {
				count++
			}
		}
		if count > 1 {
			t.Errorf("map %v binds '1' to more than one letter", m)
		}
	}
	seen := make(map[rune]bool)
	for _, m := range subs {
		seen[m['1']] = true
	}
	if !seen['i'] || !seen['l'] {
		t.Errorf("expected both i->1 and l->1 to appear across enumerated maps, got %v", subs)
	}
}

func TestEnumerateSubsDedup(t *testing.T) {
	table := RelevantSubtable("p@$$w0rd")
	subs := EnumerateSubs(table)
	seen := make(map[string]bool)
	for _, m := range subs {
		key := subKey(subsFromMap(m))
		if seen[key] {
			t.Errorf("duplicate substitution map produced: %v", m)
		}
		seen[key] = true
	}
}

func subsFromMap(m SubMap) []Sub {
	out := make([]Sub, 0, len(m))
	for k, v := range m {
		out = append(out, Sub{Subbed: k, Letter: v})
	}
	return out
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sub   SubMap
		want  string
	}{
		{"empty sub", "p@ss", nil, "p@ss"},
		{"single sub", "p@ss", SubMap{'@': 'a'}, "pass"},
		{"multi sub", "p@$$w0rd", SubMap{'@': 'a', '$': 's', '0': 'o'}, "password"},
		{"unicode passthrough", "héllö", SubMap{'@': 'a'}, "héllö"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.input, tt.sub)
			if got != tt.want {
				t.Errorf("Translate(%q, %v) = %q, want %q", tt.input, tt.sub, got, tt.want)
			}
		})
	}
}

func TestChangedSubset(t *testing.T) {
	sub := SubMap{'@': 'a', '0': 'o'}
	got := ChangedSubset(sub)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Subbed != '0' || got[1].Subbed != '@' {
		t.Errorf("expected sorted by Subbed, got %v", got)
	}
}

func BenchmarkEnumerateSubsFullTable(b *testing.B) {
	table := RelevantSubtable("p@$$w0rd!23@4(<9")
	for i := 0; i < b.N; i++ {
		EnumerateSubs(table)
	}
}
