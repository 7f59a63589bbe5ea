package memory

import (
	"fmt"
	"io"
	"log"

	"github.com/rstms/xdump/dump"
)

const DefaultDumpLength = 512

// Reader reads memory at a 64-bit address.  It behaves like io.ReaderAt.
type Reader interface {
	ReadMemory(buf []byte, addr uint64) (int, error)
}

type Region struct {
	Address uint64
	Data    []byte
}

func (r Region) End() uint64 {
	return r.Address + uint64(len(r.Data))
}

// Read copies length bytes starting at addr.  A short read is an error.
func Read(r Reader, addr uint64, length int) (Region, error) {
	if length <= 0 {
		return Region{}, Fatalf("%w: %d", ErrInvalidLength, length)
	}
	data := make([]byte, length)
	n, err := r.ReadMemory(data, addr)
	if n < length {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Region{}, Fatalf("%w: read %d of %d bytes at 0x%x: %v", ErrInaccessible, n, length, addr, err)
	}
	if ViperGetBool("verbose") {
		log.Printf("read %s at 0x%x\n", FormatSize(int64(length)), addr)
	}
	return Region{Address: addr, Data: data}, nil
}

// DumpMemory reads a block and returns its hexdump.  The low 32 bits of addr
// are shown in the offset column.
func DumpMemory(r Reader, addr uint64, length, bytesPerLine int) (string, error) {
	region, err := Read(r, addr, length)
	if err != nil {
		return "", err
	}
	output, err := dump.Format(region.Data, uint32(addr), bytesPerLine)
	if err != nil {
		return "", Fatal(err)
	}
	return output, nil
}

type bufferReader struct {
	base uint64
	data []byte
}

// NewBufferReader serves data as if it were mapped at base.
func NewBufferReader(base uint64, data []byte) Reader {
	return &bufferReader{base: base, data: data}
}

func (b *bufferReader) ReadMemory(buf []byte, addr uint64) (int, error) {
	if addr < b.base || addr-b.base >= uint64(len(b.data)) {
		return 0, fmt.Errorf("address 0x%x outside buffer", addr)
	}
	n := copy(buf, b.data[addr-b.base:])
	if n < len(buf) {
		return n, io.EOF
	}
	return n, nil
}

type fileReader struct {
	r io.ReaderAt
}

// NewFileReader addresses a file by byte offset.
func NewFileReader(r io.ReaderAt) Reader {
	return &fileReader{r: r}
}

func (f *fileReader) ReadMemory(buf []byte, addr uint64) (int, error) {
	if addr > 1<<63-1 {
		return 0, fmt.Errorf("offset 0x%x out of range", addr)
	}
	return f.r.ReadAt(buf, int64(addr))
}
