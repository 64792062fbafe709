package config

import (
	"sort"
	"strings"

	"github.com/gbr1/matrix-editor/internal/grid"
)

// Presets are built-in starting patterns, '#' for on and '.' for off, one
// string per row.
var Presets = map[string][]string{
	"blank":   pattern(func(r, c int) bool { return false }),
	"full":    pattern(func(r, c int) bool { return true }),
	"checker": pattern(func(r, c int) bool { return (r+c)%2 == 0 }),
	"stripes": pattern(func(r, c int) bool { return c%2 == 0 }),
	"border": pattern(func(r, c int) bool {
		return r == 0 || r == grid.Rows-1 || c == 0 || c == grid.Cols-1
	}),
	"heart": {
		".............",
		"...##...##...",
		"..####.####..",
		"..#########..",
		"...#######...",
		"....#####....",
		".....###.....",
		"......#......",
	},
	"arrow": {
		"......#......",
		".......#.....",
		"........#....",
		"#############",
		"#############",
		"........#....",
		".......#.....",
		"......#......",
	},
}

func pattern(on func(r, c int) bool) []string {
	rows := make([]string, grid.Rows)
	for r := range rows {
		var b strings.Builder
		for c := 0; c < grid.Cols; c++ {
			if on(r, c) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}
	return rows
}

// GetPreset returns the preset as a linear state, or nil if unknown.
func GetPreset(name string) *grid.Grid {
	rows, ok := Presets[name]
	if !ok {
		return nil
	}
	state := strings.NewReplacer("#", "1", ".", "0").Replace(strings.Join(rows, ""))
	g, err := grid.FromState(state)
	if err != nil {
		return nil
	}
	return g
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
