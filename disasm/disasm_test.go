package disasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisassembleNopRet(t *testing.T) {
	d, err := NewDisassembler(Config{Bits: 64, Syntax: IntelSyntax})
	require.Nil(t, err)

	insts := d.All([]byte{0x90, 0xC3}, 0x401000)
	require.Len(t, insts, 2)
	require.Equal(t, "nop", insts[0].Text)
	require.Equal(t, uint64(0x401000), insts[0].Address)
	require.Equal(t, "ret", insts[1].Text)
	require.Equal(t, uint64(0x401001), insts[1].Address)
	require.Equal(t, []byte{0xC3}, insts[1].Bin)
}

func TestDisassembleCoversBuffer(t *testing.T) {
	d, err := NewDisassembler(Config{Bits: 64})
	require.Nil(t, err)

	// truncated mov imm32
	data := []byte{0x90, 0xB8, 0x01}
	insts := d.All(data, 0)
	total := 0
	for _, inst := range insts {
		total += inst.Len
	}
	require.Equal(t, len(data), total)
}

func TestNewDisassemblerErrors(t *testing.T) {
	_, err := NewDisassembler(Config{Bits: 8})
	require.NotNil(t, err)

	_, err = NewDisassembler(Config{Bits: 32, Syntax: "masm"})
	require.NotNil(t, err)
}

func TestFormatInsts(t *testing.T) {
	d, err := NewDisassembler(Config{Bits: 32, Syntax: IntelSyntax})
	require.Nil(t, err)
	insts := d.All([]byte{0x90, 0xC3}, 0x1000)
	lines := strings.Split(FormatInsts(insts), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "00001000   90 "))
	require.True(t, strings.HasSuffix(lines[0], " nop"))
	require.True(t, strings.HasPrefix(lines[1], "00001001   C3 "))
}
