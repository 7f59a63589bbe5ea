package dump

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned for a bytesPerLine outside 1..MaxBytesPerLine.
var ErrInvalidArgument = errors.New("invalid argument")

const hexDigits = "0123456789ABCDEF"

// DefaultBytesPerLine is the line width used by HexDump.
const DefaultBytesPerLine = 16

// MaxBytesPerLine is the widest line Format accepts.
const MaxBytesPerLine = 1 << 16

// offset digits plus separators
const offsetBlock = 8 + 3

// Layout holds the fixed column positions of a dump line.
type Layout struct {
	BytesPerLine int
	HexColumn    int
	CharColumn   int
	Width        int
}

// NewLayout computes the column positions for lines of bytesPerLine bytes.
func NewLayout(bytesPerLine int) (Layout, error) {
	if bytesPerLine <= 0 {
		return Layout{}, fmt.Errorf("%w: bytesPerLine must be positive, got %d", ErrInvalidArgument, bytesPerLine)
	}
	if bytesPerLine > MaxBytesPerLine {
		return Layout{}, fmt.Errorf("%w: bytesPerLine %d exceeds %d", ErrInvalidArgument, bytesPerLine, MaxBytesPerLine)
	}
	charColumn := offsetBlock + (bytesPerLine * 3) + ((bytesPerLine - 1) / 8) + 2
	return Layout{
		BytesPerLine: bytesPerLine,
		HexColumn:    offsetBlock,
		CharColumn:   charColumn,
		Width:        charColumn + bytesPerLine,
	}, nil
}

// HexDump formats data with a zero base offset and 16 bytes per line.
func HexDump(data []byte) string {
	output, _ := Format(data, 0, DefaultBytesPerLine)
	return output
}

// Format renders data as offset, hex and character columns.  Every line has
// the same width; unused slots on the final line are filled with spaces.
func Format(data []byte, baseOffset uint32, bytesPerLine int) (string, error) {
	layout, err := NewLayout(bytesPerLine)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", nil
	}

	lines := (len(data) + bytesPerLine - 1) / bytesPerLine
	var output strings.Builder
	output.Grow(lines * (layout.Width + 1))

	line := make([]byte, layout.Width)
	for i := 0; i < len(data); i += bytesPerLine {
		layout.render(line, data, i, baseOffset+uint32(i))
		output.Write(line)
		output.WriteByte('\n')
	}
	return strings.TrimSuffix(output.String(), "\n"), nil
}

func (l Layout) render(line, data []byte, start int, offset uint32) {
	for k := range line {
		line[k] = ' '
	}
	for k := 0; k < 8; k++ {
		line[k] = hexDigits[(offset>>(28-4*k))&0xF]
	}

	hexColumn := l.HexColumn
	charColumn := l.CharColumn
	for j := 0; j < l.BytesPerLine; j++ {
		if j > 0 && j%8 == 0 {
			hexColumn++
		}
		if start+j < len(data) {
			b := data[start+j]
			line[hexColumn] = hexDigits[b>>4]
			line[hexColumn+1] = hexDigits[b&0xF]
			line[charColumn] = displayChar(b)
		}
		hexColumn += 3
		charColumn++
	}
}

func displayChar(b byte) byte {
	if b < 32 || b > 126 {
		return '.'
	}
	return b
}
