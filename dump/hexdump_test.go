package dump

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatEmpty(t *testing.T) {
	output, err := Format([]byte{}, 0, 16)
	require.Nil(t, err)
	require.Equal(t, "", output)

	output, err = Format(nil, 0x1000, 16)
	require.Nil(t, err)
	require.Equal(t, "", output)
}

func TestFormatShortLine(t *testing.T) {
	output, err := Format([]byte{0x00, 0x1F, 0x41, 0xFF}, 0, 16)
	require.Nil(t, err)
	expected := "00000000   00 1F 41 FF " + strings.Repeat(" ", 12+1+24+2) + "..A." + strings.Repeat(" ", 12)
	require.Equal(t, expected, output)
	require.Len(t, output, 78)
}

func TestFormatFullLine(t *testing.T) {
	output, err := Format([]byte("0123456789ABCDEF"), 0x10, 16)
	require.Nil(t, err)
	require.Equal(t, "00000010   30 31 32 33 34 35 36 37  38 39 41 42 43 44 45 46   0123456789ABCDEF", output)
	require.NotContains(t, output, "\n")
}

func TestFormatLineWidths(t *testing.T) {
	data := make([]byte, 17)
	for i := range data {
		data[i] = byte('a' + i)
	}
	output, err := Format(data, 0, 16)
	require.Nil(t, err)
	lines := strings.Split(output, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, len(lines[0]), len(lines[1]))
	require.True(t, strings.HasPrefix(lines[1], "00000010   71 "))
	require.True(t, strings.HasSuffix(lines[1], "q"+strings.Repeat(" ", 15)))

	layout, err := NewLayout(16)
	require.Nil(t, err)
	require.Equal(t, layout.Width, len(lines[0]))
	require.Equal(t, 62, layout.CharColumn)
}

func TestFormatOffsets(t *testing.T) {
	data := make([]byte, 100)
	output, err := Format(data, 0xABCD0000, 8)
	require.Nil(t, err)
	lines := strings.Split(output, "\n")
	require.Len(t, lines, 13)
	require.True(t, strings.HasPrefix(lines[0], "ABCD0000"))
	require.True(t, strings.HasPrefix(lines[1], "ABCD0008"))
	require.True(t, strings.HasPrefix(lines[12], "ABCD0060"))
	for _, line := range lines {
		require.Equal(t, len(lines[0]), len(line))
	}
}

func TestFormatOffsetWraps(t *testing.T) {
	output, err := Format(make([]byte, 32), 0xFFFFFFF0, 16)
	require.Nil(t, err)
	lines := strings.Split(output, "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "FFFFFFF0"))
	require.True(t, strings.HasPrefix(lines[1], "00000000"))
}

func TestFormatWideLine(t *testing.T) {
	data := make([]byte, 32)
	output, err := Format(data, 0, 32)
	require.Nil(t, err)
	layout, err := NewLayout(32)
	require.Nil(t, err)
	require.Equal(t, layout.Width, len(output))
	// extra separators before bytes 8, 16 and 24
	require.Equal(t, "00000000   "+strings.Repeat("00 ", 8)+" "+strings.Repeat("00 ", 8)+" "+strings.Repeat("00 ", 8)+" "+strings.Repeat("00 ", 8)+"  ", output[:layout.CharColumn])
}

func TestFormatDeterministic(t *testing.T) {
	data := []byte("deterministic output\x00\x01\x02")
	first, err := Format(data, 7, 16)
	require.Nil(t, err)
	second, err := Format(data, 7, 16)
	require.Nil(t, err)
	require.Equal(t, first, second)
}

func TestFormatInvalidBytesPerLine(t *testing.T) {
	for _, n := range []int{0, -1, -16, MaxBytesPerLine + 1, 1 << 61} {
		output, err := Format([]byte{1, 2, 3}, 0, n)
		require.NotNil(t, err)
		require.True(t, errors.Is(err, ErrInvalidArgument))
		require.Equal(t, "", output)
	}
}

func TestHexDump(t *testing.T) {
	output := HexDump([]byte("AB"))
	expected, err := Format([]byte("AB"), 0, 16)
	require.Nil(t, err)
	require.Equal(t, expected, output)
	require.True(t, strings.HasPrefix(output, "00000000   41 42 "))
}

func TestFormatMaxBytesPerLine(t *testing.T) {
	output, err := Format([]byte{0x41}, 0, MaxBytesPerLine)
	require.Nil(t, err)
	layout, err := NewLayout(MaxBytesPerLine)
	require.Nil(t, err)
	require.Equal(t, layout.Width, len(output))
}

func TestFormatHighBytes(t *testing.T) {
	output, err := Format([]byte{0x7E, 0x7F, 0x80, 0x20}, 0, 4)
	require.Nil(t, err)
	require.Equal(t, "00000000   7E 7F 80 20   ~.. ", output)
}
