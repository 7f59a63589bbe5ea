package memory

import (
	"os"
)

// Process reads the address space of a running process.
type Process struct {
	Pid int `json:"pid"`
}

func Self() (*Process, error) {
	return OpenProcess(os.Getpid())
}
