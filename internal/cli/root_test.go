package cli

import (
	"bytes"
	"encoding/json"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbr1/matrix-editor/internal/grid"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "matrixed", cmd.Use)
	assert.Contains(t, cmd.Long, "32-bit words")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"tui", "encode", "decode", "import", "presets", "play", "render", "version"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "debug"} {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "", f.DefValue)
	}
}

func TestEncode_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	out, err := execute(t, "", "encode")
	require.NoError(t, err)
	g.Assert(t, "encode_blank", []byte(out))

	out, err = execute(t, "", "encode", "--preset", "full")
	require.NoError(t, err)
	g.Assert(t, "encode_full", []byte(out))
}

func TestEncode_JSON(t *testing.T) {
	state := "1" + strings.Repeat("0", grid.Size-1)
	out, err := execute(t, "", "encode", state, "--format", "json")
	require.NoError(t, err)

	var res EncodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, state, res.State)
	assert.Equal(t, uint32(2147483648), res.Words[0])
	assert.Equal(t, "0x80000000", res.Hex[0])
	assert.Equal(t, "0x80000000,0x00000000,0x00000000,0x00000000", res.Export)
}

func TestEncode_Errors(t *testing.T) {
	_, err := execute(t, "", "encode", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")

	_, err = execute(t, "", "encode", "0101")
	assert.ErrorIs(t, err, grid.ErrInvalidFrame)
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "", "decode", "0x80000000,0x00000000,0x00000000,0x00000001")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "#............", lines[0])
	assert.Equal(t, "state   1"+strings.Repeat("0", grid.Size-1), lines[grid.Rows])

	_, err = execute(t, "", "decode", "0x1,0x2")
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	var rows []string
	for r := 0; r < grid.Rows; r++ {
		rows = append(rows, "row: 1 0 0 0 0 0 0 0 0 0 0 0 0")
	}
	out, err := execute(t, strings.Join(rows, "\n"), "import")
	require.NoError(t, err)
	assert.Contains(t, out, "#0: 2147745824 (0x80040020)")

	out, err = execute(t, "", "import", "1010 abc")
	assert.ErrorIs(t, err, grid.ErrInvalidFrame)
	assert.Contains(t, out, "Invalid frame")
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "", "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Checker")
	assert.Contains(t, out, "0xffffffff,0xffffffff,0xffffffff,0xff000000")

	out, err = execute(t, "", "presets", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "Heart\n")
}

func TestPlay(t *testing.T) {
	out, err := execute(t, "", "play", "blank", "full", "--interval", "1ms", "--loops", "2")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "frame #"))
	assert.Equal(t, 2, strings.Count(out, "frame #2\n"+strings.Repeat("#", grid.Cols)))

	_, err = execute(t, "", "play", "nope")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "frame.svg")
	sheetPath := filepath.Join(dir, "sheet.svg")
	gifPath := filepath.Join(dir, "board.gif")

	out, err := execute(t, "", "render", "heart", "arrow",
		"--svg", svgPath, "--sheet", sheetPath, "--gif", gifPath, "--scale", "4", "--theme", "retro")
	require.NoError(t, err)
	assert.Contains(t, out, "(2 frames)")

	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	sheet, err := os.ReadFile(sheetPath)
	require.NoError(t, err)
	assert.Contains(t, string(sheet), "<circle")

	f, err := os.Open(gifPath)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 2)

	_, err = execute(t, "", "render", "heart")
	assert.ErrorContains(t, err, "nothing to render")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrixed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: plaid\n"), 0644))
	_, err := execute(t, "", "--config", path, "play", "blank")
	assert.ErrorContains(t, err, "unknown theme")

	require.NoError(t, os.WriteFile(path, []byte("playback_ms: 1\n"), 0644))
	out, err := execute(t, "", "--config", path, "play", "blank")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "frame #1"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "matrixed dev\n", out)
}
