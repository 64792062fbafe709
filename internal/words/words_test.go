package words

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbr1/matrix-editor/internal/grid"
)

var hexPattern = regexp.MustCompile(`^0x[0-9a-f]{8}$`)

func TestEncode_AllZero(t *testing.T) {
	ws := Encode(make([]bool, grid.Size))
	assert.Equal(t, [WordCount]uint32{0, 0, 0, 0}, Values(ws))
	assert.Equal(t, [WordCount]string{"0x00000000", "0x00000000", "0x00000000", "0x00000000"}, Hex(ws))
	for _, w := range ws {
		assert.Equal(t, strings.Repeat("0", WordBits), w.Bits)
	}

	want := strings.TrimSpace(strings.Repeat("00000000 ", grid.Rows*grid.Cols/GroupBits))
	assert.Equal(t, want, BinaryDisplay(strings.Repeat("0", grid.Size)))
}

func TestEncode_FirstCellIsMostSignificant(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.Set(0, 0, true))

	ws := Encode(g.Bits())
	assert.True(t, strings.HasPrefix(g.State(), "1000"))
	assert.Equal(t, uint32(2147483648), ws[0].Value)
	assert.Equal(t, "0x80000000", ws[0].Hex())
	assert.Equal(t, uint32(0), ws[1].Value)
}

func TestEncode_LastWordIsPadded(t *testing.T) {
	g := grid.New()
	g.Invert()

	ws := Encode(g.Bits())
	for i := 0; i < 3; i++ {
		assert.Equal(t, uint32(0xffffffff), ws[i].Value, "word %d", i)
	}
	// 8 real bits followed by 24 zero padding bits
	assert.Equal(t, "11111111"+strings.Repeat("0", 24), ws[3].Bits)
	assert.Equal(t, uint32(0xff000000), ws[3].Value)
	assert.Equal(t, "0xffffffff,0xffffffff,0xffffffff,0xff000000", ExportText(ws))
}

func TestEncode_LastCell(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.Set(grid.Rows-1, grid.Cols-1, true))
	ws := Encode(g.Bits())
	// bit 103 is bit 7 of word 3, counting from the most significant end
	assert.Equal(t, uint32(1)<<24, ws[3].Value)
}

func TestEncode_IsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		g := grid.New()
		g.Randomize(rng)
		a, b := Encode(g.Bits()), Encode(g.Bits())
		assert.Equal(t, a, b)
		assert.Equal(t, a, EncodeState(g.State()))
		for _, h := range Hex(a) {
			assert.Regexp(t, hexPattern, h)
		}
	}
}

func TestDecode_InvertsEncode(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		g := grid.New()
		g.Randomize(rng)
		assert.Equal(t, g.State(), Decode(Values(Encode(g.Bits()))))
	}
}

func TestBinaryDisplay(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"1", "1"},
		{"10101010", "10101010"},
		{"101010101", "10101010 1"},
		{"1111000011110000111", "11110000 11110000 111"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BinaryDisplay(tt.in), "input %q", tt.in)
	}

	full := BinaryDisplay(strings.Repeat("1", grid.Size))
	assert.Len(t, strings.Fields(full), 13)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "0110", Clean("0x 1,a1-0\n"))
	assert.Equal(t, "", Clean("hello"))
}

func TestParseExport(t *testing.T) {
	v, err := ParseExport(" 0x80000000,0X0000000A, 0x00000000,0xff000000\n")
	require.NoError(t, err)
	assert.Equal(t, [WordCount]uint32{0x80000000, 10, 0, 0xff000000}, v)

	bad := []string{
		"",
		"0x00000000,0x00000000,0x00000000",
		"0x00000000,0x00000000,0x00000000,0x00000000,0x00000000",
		"0x0000000,0x00000000,0x00000000,0x00000000",
		"0x0000000g,0x00000000,0x00000000,0x00000000",
		"12345678ab,0x00000000,0x00000000,0x00000000",
	}
	for _, in := range bad {
		_, err := ParseExport(in)
		assert.ErrorIs(t, err, ErrBadExport, "input %q", in)
	}
}
