//go:build linux

package memory

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/unix"
)

func OpenProcess(pid int) (*Process, error) {
	if pid <= 0 {
		return nil, Fatalf("%w: pid %d", ErrNoProcess, pid)
	}
	_, err := os.Stat(fmt.Sprintf("/proc/%d", pid))
	if err != nil {
		return nil, Fatalf("%w: pid %d: %v", ErrNoProcess, pid, err)
	}
	return &Process{Pid: pid}, nil
}

func (p *Process) ReadMemory(buf []byte, addr uint64) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	local := []unix.Iovec{{Base: &buf[0]}}
	local[0].SetLen(len(buf))
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}
	n, err := unix.ProcessVMReadv(p.Pid, local, remote, 0)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, unix.EPERM) || errors.Is(err, unix.ENOSYS) {
		if ViperGetBool("debug") {
			log.Printf("process_vm_readv pid=%d: %v, using /proc/%d/mem\n", p.Pid, err, p.Pid)
		}
		return p.readMemFile(buf, addr)
	}
	if n < 0 {
		n = 0
	}
	return n, err
}

func (p *Process) readMemFile(buf []byte, addr uint64) (int, error) {
	memFile, err := os.Open(fmt.Sprintf("/proc/%d/mem", p.Pid))
	if err != nil {
		return 0, err
	}
	defer memFile.Close()
	return NewFileReader(memFile).ReadMemory(buf, addr)
}
