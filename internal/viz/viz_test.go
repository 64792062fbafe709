package viz

import (
	"strings"
	"testing"

	"github.com/gbr1/matrix-editor/internal/grid"
	"github.com/gbr1/matrix-editor/internal/storyboard"
	"github.com/gbr1/matrix-editor/internal/words"
)

func TestCanvas_Plot(t *testing.T) {
	g := grid.New()
	_ = g.Set(0, 0, true)
	_ = g.Set(grid.Rows-1, grid.Cols-1, true)

	c := NewGridCanvas()
	if c.Width != 7 || c.Height != 2 {
		t.Fatalf("expected 7x2 canvas, got %dx%d", c.Width, c.Height)
	}
	c.Plot(g.State())

	if c.Grid[0][0] != '⠁' {
		t.Errorf("top-left: got %q", c.Grid[0][0])
	}
	if c.Grid[1][6] != '⡀' {
		t.Errorf("bottom-right: got %q", c.Grid[1][6])
	}
	if got := strings.Count(c.String(), "\n"); got != 1 {
		t.Errorf("expected 2 lines, got %d newlines", got)
	}

	c.Plot(strings.Repeat("0", grid.Size))
	for _, line := range c.Lines() {
		if strings.Trim(line, "⠀") != "" {
			t.Errorf("expected blank canvas, got %q", line)
		}
	}
}

func TestCanvas_IgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(-1, 0)
	c.Set(2, 0)
	c.Set(0, 4)
	if c.Grid[0][0] != brailleBlank {
		t.Errorf("expected blank, got %q", c.Grid[0][0])
	}
}

func TestPlainGrid(t *testing.T) {
	g := grid.New()
	_ = g.Set(1, 2, true)
	lines := strings.Split(strings.TrimSuffix(PlainGrid(g), "\n"), "\n")
	if len(lines) != grid.Rows {
		t.Fatalf("expected %d lines, got %d", grid.Rows, len(lines))
	}
	if lines[1] != "..#.........." {
		t.Errorf("row 1: got %q", lines[1])
	}
}

func TestWordLabel(t *testing.T) {
	got := WordLabel(0, words.Word{Value: 2147483648})
	if got != "#0: 2147483648 (0x80000000)" {
		t.Errorf("got %q", got)
	}
}

func TestRenderWordsAndGrid(t *testing.T) {
	s := NewStyles(ThemeMinimal)
	out := RenderWords(words.Encode(make([]bool, grid.Size)), s)
	for i := 0; i < words.WordCount; i++ {
		if !strings.Contains(out, WordLabel(i, words.Word{})) {
			t.Errorf("missing chip %d in %q", i, out)
		}
	}

	g := grid.New()
	gridView := RenderGrid(g, 0, 0, s)
	if strings.Count(gridView, "\n") != grid.Rows-1 {
		t.Errorf("grid should have %d lines", grid.Rows)
	}
	if !strings.Contains(gridView, "▒▒") {
		t.Error("cursor not drawn")
	}
	if strings.Contains(RenderGrid(g, -1, -1, s), "▒▒") {
		t.Error("hidden cursor drawn")
	}
}

func TestRenderThumbnails(t *testing.T) {
	s := NewStyles(ThemeOcean)
	if !strings.Contains(RenderThumbnails(nil, -1, -1, 80, s), "no frames") {
		t.Error("expected empty placeholder")
	}

	sb := storyboard.New()
	g := grid.New()
	for i := 0; i < 3; i++ {
		sb.Save(g)
	}
	out := RenderThumbnails(sb.Frames(), 1, -1, 80, s)
	for _, label := range []string{"#1", "#2", "#3"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing %s", label)
		}
	}
}

func TestDensityGraph(t *testing.T) {
	sb := storyboard.New()
	g := grid.New()
	sb.Save(g)
	if DensityGraph(sb.Frames()) != "" {
		t.Error("one frame should not plot")
	}
	g.Invert()
	sb.Save(g)
	out := DensityGraph(sb.Frames())
	if !strings.Contains(out, "cells on per frame") {
		t.Errorf("missing caption in %q", out)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nonexistent").Name != "cyberpunk" {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if !HasTheme("ocean") || HasTheme("plaid") {
		t.Error("HasTheme mismatch")
	}
	names := ThemeNames()
	last := names[len(names)-1]
	if NextTheme(last).Name != names[0] {
		t.Error("NextTheme should wrap")
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("empty input")
	}
	out := GradientText("MATRIX", "#00ffff", "#ff00ff")
	if !strings.Contains(stripANSI(out), "MATRIX") {
		t.Errorf("text lost: %q", out)
	}
}

func TestRenderNotice(t *testing.T) {
	if RenderNotice("", "info", 40, ThemeMinimal) != "" {
		t.Error("empty notice should render nothing")
	}
	out := RenderNotice("Invalid frame", "warn", 40, ThemeMinimal)
	if !strings.Contains(out, "! Invalid frame") {
		t.Errorf("got %q", out)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			esc = false
		case !esc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
