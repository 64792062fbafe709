package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/storyboard"
	"github.com/gbr1/matrix-editor/internal/viz"
)

var ErrNoFrames = errors.New("export: storyboard is empty")

// Palette indexes for GIF frames.
const (
	offIndex = 0
	onIndex  = 1
)

// Palette returns the two-color palette for theme. Colors that fail to parse
// fall back to black and white.
func Palette(theme viz.Theme) color.Palette {
	return color.Palette{
		themeColor(string(theme.Off), color.RGBA{A: 0xff}),
		themeColor(string(theme.On), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	}
}

func themeColor(hex string, fallback color.RGBA) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// FrameImage renders one frame at one pixel per cell.
func FrameImage(g *grid.Grid, p color.Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, grid.Cols, grid.Rows), p)
	for r := 0; r < grid.Rows; r++ {
		for c, on := range g.Row(r) {
			idx := uint8(offIndex)
			if on {
				idx = onIndex
			}
			img.SetColorIndex(c, r, idx)
		}
	}
	return img
}

// StoryboardGIF writes the frames as a looping animated GIF. Each cell
// becomes a scale x scale block.
func StoryboardGIF(w io.Writer, frames []storyboard.Frame, scale int, delay time.Duration, theme viz.Theme) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if scale < 1 {
		scale = 1
	}
	centis := int(delay / (10 * time.Millisecond))
	if centis < 1 {
		centis = 1
	}

	p := Palette(theme)
	bounds := image.Rect(0, 0, grid.Cols*scale, grid.Rows*scale)
	anim := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		g, err := grid.FromState(f.State)
		if err != nil {
			return err
		}
		src := FrameImage(g, p)
		dst := image.NewPaletted(bounds, p)
		draw.NearestNeighbor.Scale(dst, bounds, src, src.Bounds(), draw.Src, nil)
		anim.Image = append(anim.Image, dst)
		anim.Delay = append(anim.Delay, centis)
	}
	return gif.EncodeAll(w, anim)
}
