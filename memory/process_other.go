//go:build !linux

package memory

func OpenProcess(pid int) (*Process, error) {
	return nil, Fatalf("%w: pid %d", ErrUnsupported, pid)
}

func (p *Process) ReadMemory(buf []byte, addr uint64) (int, error) {
	return 0, ErrUnsupported
}
