// Package keyboard builds static keyboard-adjacency graphs used by the
// spatial matcher to recognize keyboard walks such as "qwerty" or "1qaz".
//
// Each graph maps a key character to a fixed-length, ordered list of
// neighbor slots. A slot is empty when no key occupies that direction, or
// a one- or two-character string where index 0 is the unshifted neighbor
// and index 1 (if present) is its shifted form — e.g. qwerty's "1" has a
// neighbor slot "2@": unshifted neighbor "2", shifted neighbor "@".
//
// Graphs are built once at package initialization from a small coordinate
// model (row, column, stagger) rather than loaded from serialized data;
// per the package's scope, real layout data is an external resource this
// package treats as baked-in constants.
package keyboard

import "sort"

// Graph is a static, read-only keyboard adjacency graph.
type Graph struct {
	Name string

	// Slots maps a key to its ordered, fixed-length list of neighbor slots.
	Slots map[rune][]string

	// KeyCount is the number of distinct starting positions in the graph.
	KeyCount int

	// AvgDegree is the mean number of occupied neighbor slots per key.
	AvgDegree float64
}

// All is the set of built-in graphs, keyed by name.
var All map[string]*Graph

// QWERTY, Dvorak, and Keypad are the built-in graphs, exported directly
// for callers that don't need to look one up by name.
var (
	QWERTY *Graph
	Dvorak *Graph
	Keypad *Graph
)

func init() {
	QWERTY = buildRowGraph("qwerty", qwertyRows, qwertyShiftRows, staggerDirs)
	Dvorak = buildRowGraph("dvorak", dvorakRows, dvorakShiftRows, staggerDirs)
	Keypad = buildRowGraph("keypad", keypadRows, nil, gridDirs)

	All = map[string]*Graph{
		"qwerty": QWERTY,
		"dvorak": Dvorak,
		"keypad": Keypad,
	}
}

var qwertyRows = []string{
	"`1234567890-=",
	"qwertyuiop[]\\",
	"asdfghjkl;'",
	"zxcvbnm,./",
}

var qwertyShiftRows = []string{
	"~!@#$%^&*()_+",
	"QWERTYUIOP{}|",
	"ASDFGHJKL:\"",
	"ZXCVBNM<>?",
}

var dvorakRows = []string{
	"`1234567890[]",
	"',.pyfgcrl/=\\",
	"aoeuidhtns-",
	";qjkxbmwvz",
}

var dvorakShiftRows = []string{
	"~!@#$%^&*(){}",
	"\"<>PYFGCRL?+|",
	"AOEUIDHTNS_",
	":QJKXBMWVZ",
}

var keypadRows = []string{
	"789/",
	"456*",
	"123-",
	"0.=+",
}

// point is a coordinate in a row/column keyboard plane. x may be
// fractional to model physical row stagger.
type point struct{ x, y float64 }

// staggerDirs models a staggered-row keyboard (real physical keyboards
// offset each row by about half a key width from the row above). Six
// neighbor directions in clockwise order starting at upper-left, matching
// the slot layout of keys on a typical QWERTY/Dvorak board.
var staggerDirs = []point{
	{-0.5, -1}, {0.5, -1}, {1, 0}, {0.5, 1}, {-0.5, 1}, {-1, 0},
}

// gridDirs models a grid-aligned keypad: eight neighbor directions
// including the straight up/down that a staggered layout lacks.
var gridDirs = []point{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

const staggerPerRow = 0.5

// buildRowGraph lays characters out on a coordinate grid (row index as y,
// column index plus cumulative row stagger as x), then for each key finds
// the occupant, if any, of each neighbor direction.
func buildRowGraph(name string, rows, shiftRows []string, dirs []point) *Graph {
	positions := make(map[rune]point)
	shiftOf := make(map[rune]rune)

	for r, row := range rows {
		runes := []rune(row)
		var shiftRunes []rune
		if shiftRows != nil {
			shiftRunes = []rune(shiftRows[r])
		}
		xOffset := staggerPerRow * float64(r)
		if len(dirs) == len(gridDirs) {
			xOffset = 0 // grid layouts (keypad) are axis-aligned, no stagger
		}
		for c, ch := range runes {
			positions[ch] = point{x: float64(c) + xOffset, y: float64(r)}
			if shiftRunes != nil && c < len(shiftRunes) && shiftRunes[c] != ch {
				shiftOf[ch] = shiftRunes[c]
			}
		}
	}

	slots := make(map[rune][]string, len(positions))
	for ch, p := range positions {
		slot := make([]string, len(dirs))
		for i, d := range dirs {
			target := point{p.x + d.x, p.y + d.y}
			if och, ok := findAt(positions, target, ch); ok {
				s := string(och)
				if sch, ok := shiftOf[och]; ok {
					s += string(sch)
				}
				slot[i] = s
			}
		}
		slots[ch] = slot
	}

	return &Graph{
		Name:      name,
		Slots:     slots,
		KeyCount:  len(slots),
		AvgDegree: averageDegree(slots),
	}
}

const epsilon = 1e-6

func findAt(positions map[rune]point, target point, exclude rune) (rune, bool) {
	for ch, p := range positions {
		if ch == exclude {
			continue
		}
		if absf(p.x-target.x) < epsilon && absf(p.y-target.y) < epsilon {
			return ch, true
		}
	}
	return 0, false
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func averageDegree(slots map[rune][]string) float64 {
	if len(slots) == 0 {
		return 0
	}
	total := 0
	for _, slot := range slots {
		for _, s := range slot {
			if s != "" {
				total++
			}
		}
	}
	return float64(total) / float64(len(slots))
}

// Names returns the registered graph names in a stable, sorted order.
func Names() []string {
	names := make([]string, 0, len(All))
	for name := range All {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
