// Package words packs the grid's linear bit string into four unsigned 32-bit
// words and renders the textual forms shown to the user.
//
// The 104 grid bits fill words 0–2 completely and the first 8 bits of word 3;
// the remaining 24 bits of word 3 are zero padding appended at the end.
package words

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gbr1/matrix-editor/internal/grid"
)

const (
	WordCount = 4
	WordBits  = 32
	GroupBits = 8
)

var ErrBadExport = errors.New("words: malformed export text")

// Word is one 32-bit chunk of the linear state.
type Word struct {
	Bits  string // padded to WordBits
	Value uint32
}

// Encode packs bits (row-major) into WordCount words.
func Encode(bits []bool) [WordCount]Word {
	var b strings.Builder
	b.Grow(len(bits))
	for _, on := range bits {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return EncodeState(b.String())
}

// EncodeState packs a '0'/'1' string. Chunk i covers characters
// [32i, 32i+32); a short or missing chunk is right-padded with '0'.
// Characters other than '1' count as zero.
func EncodeState(s string) [WordCount]Word {
	var out [WordCount]Word
	for i := 0; i < WordCount; i++ {
		lo, hi := i*WordBits, (i+1)*WordBits
		var chunk string
		if lo < len(s) {
			chunk = s[lo:min(hi, len(s))]
		}
		padded := chunk + strings.Repeat("0", WordBits-len(chunk))
		out[i] = Word{Bits: padded, Value: parseBits(padded)}
	}
	return out
}

func parseBits(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		v <<= 1
		if s[i] == '1' {
			v |= 1
		}
	}
	return v
}

// Values extracts the numeric words.
func Values(ws [WordCount]Word) [WordCount]uint32 {
	var out [WordCount]uint32
	for i, w := range ws {
		out[i] = w.Value
	}
	return out
}

// Hex renders a word as 0x followed by eight lowercase hex digits.
func (w Word) Hex() string {
	return fmt.Sprintf("0x%08x", w.Value)
}

// Hex renders every word with Word.Hex.
func Hex(ws [WordCount]Word) [WordCount]string {
	var out [WordCount]string
	for i, w := range ws {
		out[i] = w.Hex()
	}
	return out
}

// ExportText is the clipboard export format: the hex words joined by commas.
func ExportText(ws [WordCount]Word) string {
	h := Hex(ws)
	return strings.Join(h[:], ",")
}

// BinaryDisplay groups s into runs of eight characters separated by a single
// space. A trailing group shorter than eight is kept as is.
func BinaryDisplay(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/GroupBits)
	for i := 0; i < len(s); i += GroupBits {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i:min(i+GroupBits, len(s))])
	}
	return b.String()
}

// Clean drops every character that is not '0' or '1'.
func Clean(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '0' || raw[i] == '1' {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// Decode is the inverse of EncodeState for grid-sized states: it concatenates
// the words most significant bit first and keeps the first grid.Size bits.
func Decode(values [WordCount]uint32) string {
	var b strings.Builder
	b.Grow(WordCount * WordBits)
	for _, v := range values {
		b.WriteString(fmt.Sprintf("%032b", v))
	}
	return b.String()[:grid.Size]
}

// ParseExport reads the ExportText format. Hex digits are accepted in either
// case and surrounding whitespace is ignored.
func ParseExport(text string) ([WordCount]uint32, error) {
	var out [WordCount]uint32
	tokens := strings.Split(strings.TrimSpace(text), ",")
	if len(tokens) != WordCount {
		return out, fmt.Errorf("%w: want %d words, got %d", ErrBadExport, WordCount, len(tokens))
	}
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if len(tok) != 10 || (tok[:2] != "0x" && tok[:2] != "0X") {
			return out, fmt.Errorf("%w: word %d %q", ErrBadExport, i, tok)
		}
		v, err := strconv.ParseUint(tok[2:], 16, 32)
		if err != nil {
			return out, fmt.Errorf("%w: word %d: %v", ErrBadExport, i, err)
		}
		out[i] = uint32(v)
	}
	return out, nil
}
