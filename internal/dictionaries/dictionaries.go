// Package dictionaries builds the ranked word lists the dictionary
// matcher looks words up in: common passwords, English words, and three
// name lists, plus a per-call dictionary built from caller-supplied
// inputs (usernames, emails, names the user typed into a signup form).
//
// Ranked dictionaries are built once at package init from baked-in word
// lists and never mutated afterward. The user_inputs dictionary is the
// one exception: it is rebuilt fresh on every call instead of mutating a
// shared map, so concurrent callers never see each other's inputs.
package dictionaries

import "strings"

// Ranked is a word list with each word's frequency rank: rank 1 is the
// most common word in the list. Lookup is by lowercased word.
type Ranked map[string]int

// BuildRanked assigns ranks 1..len(words) in order, lowercasing each
// entry. Earlier entries in words are assumed to be more common.
func BuildRanked(words []string) Ranked {
	r := make(Ranked, len(words))
	for i, w := range words {
		lw := strings.ToLower(w)
		if _, exists := r[lw]; !exists {
			r[lw] = i + 1
		}
	}
	return r
}

// Set is a named collection of ranked dictionaries, searched together by
// the dictionary matcher.
type Set map[string]Ranked

var builtin Set

func init() {
	builtin = Set{
		"passwords":    BuildRanked(commonPasswords),
		"english":      BuildRanked(englishWords),
		"male_names":   BuildRanked(maleNames),
		"female_names": BuildRanked(femaleNames),
		"surnames":     BuildRanked(surnames),
	}
}

// Builtin returns the package's built-in ranked dictionaries. The
// returned set must not be mutated; callers that need to add
// user_inputs should use WithUserInputs instead.
func Builtin() Set {
	return builtin
}

// WithUserInputs returns a new Set containing the built-in dictionaries
// plus a "user_inputs" dictionary built from inputs, ranked in the order
// given. An empty inputs list omits the user_inputs entry entirely.
//
// The returned set is always newly allocated: it is call-scoped, never
// shared or cached, so concurrent Estimate calls with different inputs
// never interfere with each other.
func WithUserInputs(inputs []string) Set {
	out := make(Set, len(builtin)+1)
	for name, dict := range builtin {
		out[name] = dict
	}
	if len(inputs) > 0 {
		out["user_inputs"] = BuildRanked(inputs)
	}
	return out
}

// BuiltinSubset returns a new Set containing only the named built-in
// dictionaries, ignoring any name that isn't one of Builtin()'s keys.
// A nil or empty names installs every built-in dictionary, matching
// Builtin().
func BuiltinSubset(names []string) Set {
	if len(names) == 0 {
		out := make(Set, len(builtin))
		for name, dict := range builtin {
			out[name] = dict
		}
		return out
	}
	out := make(Set, len(names))
	for _, name := range names {
		if dict, ok := builtin[name]; ok {
			out[name] = dict
		}
	}
	return out
}

// WithUserInputsSubset is WithUserInputs restricted to the named
// built-in dictionaries (see BuiltinSubset); user_inputs is always
// included regardless of names.
func WithUserInputsSubset(names []string, inputs []string) Set {
	out := BuiltinSubset(names)
	if len(inputs) > 0 {
		out["user_inputs"] = BuildRanked(inputs)
	}
	return out
}

// Names returns the dictionary names present in s, in no particular
// order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}
