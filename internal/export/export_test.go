package export

import (
	"bytes"
	"image/gif"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/storyboard"
	"github.com/gbr1/matrix-editor/internal/viz"
)

func TestGridToSVG(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.Set(0, 0, true))

	out := GridToSVG(g, 10, viz.ThemeMinimal)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="130" height="80"`)
	// background plus one rect per cell
	assert.Equal(t, grid.Size+1, strings.Count(out, "<rect"))
	assert.Equal(t, 1, strings.Count(out, `fill="`+string(viz.ThemeMinimal.On)+`"`))
	assert.True(t, strings.HasSuffix(out, "</svg>"))

	assert.Empty(t, GridToSVG(nil, 10, viz.ThemeMinimal))
}

func TestStoryboardSheetSVG(t *testing.T) {
	assert.Empty(t, StoryboardSheetSVG(nil, 4, viz.ThemeOcean))

	sb := storyboard.New()
	g := grid.New()
	require.NoError(t, g.Set(0, 0, true))
	sb.Save(g)
	require.NoError(t, g.Set(7, 12, true))
	sb.Save(g)

	out := StoryboardSheetSVG(sb.Frames(), 4, viz.ThemeOcean)
	assert.Equal(t, 3, strings.Count(out, "<circle"))
}

func TestStoryboardGIF(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, StoryboardGIF(&buf, nil, 4, time.Second, viz.ThemeRetroGreen), ErrNoFrames)

	sb := storyboard.New()
	g := grid.New()
	sb.Save(g)
	require.NoError(t, g.Set(1, 2, true))
	sb.Save(g)

	require.NoError(t, StoryboardGIF(&buf, sb.Frames(), 3, 400*time.Millisecond, viz.ThemeRetroGreen))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, anim.Image, 2)
	assert.Equal(t, []int{40, 40}, anim.Delay)

	second := anim.Image[1]
	assert.Equal(t, grid.Cols*3, second.Bounds().Dx())
	assert.Equal(t, grid.Rows*3, second.Bounds().Dy())
	assert.Equal(t, uint8(onIndex), second.ColorIndexAt(2*3+1, 1*3+1))
	assert.Equal(t, uint8(offIndex), second.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(offIndex), anim.Image[0].ColorIndexAt(2*3+1, 1*3+1))
}

func TestPalette_Fallback(t *testing.T) {
	p := Palette(viz.Theme{On: "nope", Off: "#000000"})
	r, g, b, _ := p[onIndex].RGBA()
	assert.Equal(t, uint32(0xffff), r&g&b)
}
