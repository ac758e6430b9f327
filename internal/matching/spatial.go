package matching

import (
	"strings"

	"github.com/rafaelsanzio/guesscheck/internal/keyboard"
	"github.com/rafaelsanzio/guesscheck/internal/model"
)

// spatialMatch finds keyboard walks such as "qwerty" or "1qaz" against
// every registered keyboard graph.
func spatialMatch(password string) []model.Match {
	var matches []model.Match
	for _, name := range keyboard.Names() {
		matches = append(matches, spatialMatchGraph(password, keyboard.All[name], name)...)
	}
	return matches
}

// spatialMatchGraph walks password character by character, extending a
// candidate pattern as long as each new character is a neighbor of the
// previous one on graph, and counting direction changes ("turns") and
// shifted-key usage along the way. Patterns of length 1 or 2 are
// discarded as noise.
func spatialMatchGraph(password string, graph *keyboard.Graph, name string) []model.Match {
	runes := []rune(password)
	var result []model.Match

	i := 0
	for i < len(runes)-1 {
		j := i + 1
		lastDirection := -1
		turns := 0
		shiftedCount := 0

		for {
			prevChar := runes[j-1]
			adjacents := graph.Slots[prevChar]

			found := false
			foundDirection := -1

			if j < len(runes) {
				curChar := runes[j]
				for dirIdx, adj := range adjacents {
					if adj == "" {
						continue
					}
					idx := strings.IndexRune(adj, curChar)
					if idx == -1 {
						continue
					}
					found = true
					foundDirection = dirIdx
					if idx == 1 {
						shiftedCount++
					}
					if lastDirection != foundDirection {
						turns++
						lastDirection = foundDirection
					}
					break
				}
			}

			if found {
				j++
				continue
			}

			if j-i > 2 {
				result = append(result, model.Match{
					Kind:         model.Spatial,
					I:            i,
					J:            j - 1,
					Token:        string(runes[i:j]),
					Graph:        name,
					Turns:        turns,
					ShiftedCount: shiftedCount,
					Guesses:      -1,
				})
			}
			i = j
			break
		}
	}
	return result
}
