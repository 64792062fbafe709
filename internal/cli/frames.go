package cli

import (
	"fmt"

	"github.com/gbr1/matrix-editor/internal/config"
	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/storyboard"
)

// parseFrame reads a preset name or any text holding exactly one frame of
// '0'/'1' characters.
func parseFrame(arg string) (*grid.Grid, error) {
	if p := config.GetPreset(arg); p != nil {
		return p, nil
	}
	g := grid.New()
	if err := storyboard.ImportFrame(arg, g); err != nil {
		return nil, fmt.Errorf("frame %q: %w", arg, err)
	}
	return g, nil
}

func parseBoard(args []string) (*storyboard.Storyboard, error) {
	sb := storyboard.New()
	for _, arg := range args {
		g, err := parseFrame(arg)
		if err != nil {
			return nil, err
		}
		sb.Save(g)
	}
	return sb, nil
}
