package cmd

import (
	"strings"
	"testing"

	"github.com/rstms/xdump/disasm"
	"github.com/rstms/xdump/memory"
	"github.com/stretchr/testify/require"
)

func TestNewDumpOutput(t *testing.T) {
	region := memory.Region{Address: 0x2000, Data: []byte{0x90, 0x90, 0xC3}}
	output, err := newDumpOutput(region, 16, nil)
	require.Nil(t, err)
	require.Equal(t, "0x2000", output.Address)
	require.Equal(t, 3, output.Length)
	require.Len(t, output.Dump, 1)
	require.True(t, strings.HasPrefix(output.Dump[0], "00002000   90 90 C3 "))
	require.Nil(t, output.Disasm)

	d, err := disasm.NewDisassembler(disasm.Config{Bits: 64, Syntax: disasm.IntelSyntax})
	require.Nil(t, err)
	output, err = newDumpOutput(region, 16, d)
	require.Nil(t, err)
	require.Len(t, output.Disasm, 3)
	require.Contains(t, FormatJSON(output), `"address": "0x2000"`)

	_, err = newDumpOutput(region, 0, nil)
	require.NotNil(t, err)
}

func TestViperKey(t *testing.T) {
	require.Equal(t, "xdump.no_humanize", viperKey("no-humanize"))
	require.Equal(t, "xdump.width", viperKey("width"))
}
