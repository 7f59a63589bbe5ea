package memory

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSizeParse(t *testing.T) {

	size, err := SizeParse("512")
	require.Nil(t, err)
	require.Equal(t, int64(512), size)

	size, err = SizeParse("0x200")
	require.Nil(t, err)
	require.Equal(t, int64(512), size)

	size, err = SizeParse("0X1000")
	require.Nil(t, err)
	require.Equal(t, int64(4096), size)

	size, err = SizeParse("1K")
	require.Nil(t, err)
	require.Equal(t, int64(1024), size)

	size, err = SizeParse("1.5KB")
	require.Nil(t, err)
	require.Equal(t, int64(1024+512), size)

	size, err = SizeParse("2M")
	require.Nil(t, err)
	require.Equal(t, int64(2*1024*1024), size)

	size, err = SizeParse("1G")
	require.Nil(t, err)
	require.Equal(t, int64(1024*1024*1024), size)

	_, err = SizeParse("lots")
	require.NotNil(t, err)

	_, err = SizeParse("0xzz")
	require.NotNil(t, err)
}

func TestParseAddress(t *testing.T) {

	addr, err := ParseAddress("0x7ffd0000")
	require.Nil(t, err)
	require.Equal(t, uint64(0x7ffd0000), addr)

	addr, err = ParseAddress("4096")
	require.Nil(t, err)
	require.Equal(t, uint64(4096), addr)

	_, err = ParseAddress("-1")
	require.NotNil(t, err)
}

func TestSizeFormat(t *testing.T) {

	require.Equal(t, "0", FormatSize(int64(0)))
	require.Equal(t, "512", FormatSize(int64(512)))
	require.Equal(t, "1K", FormatSize(int64(1024)))
	require.Equal(t, "1.5K", FormatSize(int64(1024+512)))
	require.Equal(t, "1.25K", FormatSize(int64(1024+256)))
	require.Equal(t, "1K", FormatSize(int64(1025)))
	require.Equal(t, "4M", FormatSize(int64(4*1024*1024)))
	require.Equal(t, "1.25G", FormatSize(int64(1342177280)))
}
